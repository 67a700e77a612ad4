package models

import "strings"

// PhonePlaceholder is what the remote API stores when a user never gave a
// phone number; it must not be offered as a prefill value.
const PhonePlaceholder = "NOT GIVEN"

type UserProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Image     string `json:"image,omitempty"`
	IsBlocked bool   `json:"isBlocked,omitempty"`
}

func (u UserProfile) FullName() string {
	parts := []string{}
	for _, p := range []string{u.FirstName, u.LastName} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " ")
}

// ContactPhone returns the stored phone number, or empty when it is the
// remote API's placeholder.
func (u UserProfile) ContactPhone() string {
	if u.Phone == PhonePlaceholder {
		return ""
	}
	return u.Phone
}
