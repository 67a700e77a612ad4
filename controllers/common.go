package controllers

import (
	"errors"

	"shoe-store/clients"
)

// remoteMessage prefers the shop backend's own error message over a generic
// one, so the admin console shows the same text the browser client would.
func remoteMessage(err error, fallback string) string {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
