package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"shoe-store/models"
)

// RequireAuth extracts the caller's bearer token and rejects missing or
// expired sessions before any remote call is made. The token's signature is
// the remote API's to verify; this layer only reads the claims it needs
// (expiry, role, email), the same way the browser client does.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success:  false,
				Message:  "Please sign in to continue.",
				Redirect: "/login",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success:  false,
				Message:  "Invalid authorization header format",
				Redirect: "/login",
			})
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(tokenParts[1], claims); err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success:  false,
				Message:  "Invalid or expired token",
				Error:    err.Error(),
				Redirect: "/login",
			})
			c.Abort()
			return
		}

		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success:  false,
				Message:  "Session expired. Please sign in again.",
				Redirect: "/login",
			})
			c.Abort()
			return
		}

		c.Set("token", tokenParts[1])
		if email, ok := claims["email"].(string); ok {
			c.Set("user_email", email)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("user_role", role)
		}
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			c.Abort()
			return
		}

		if role != "admin" {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
