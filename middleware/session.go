package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartSessionCookie = "cart_session"

// CartSession ties each browser profile to its own persisted cart. A new
// visitor gets a random session ID in a long-lived cookie; the derived cart
// key is what the cart store reads and writes under.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cartSessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cartSessionCookie, sessionID, 60*60*24*365, "/", "", false, true)
		}

		c.Set("cart_key", "cart:"+sessionID)
		c.Next()
	}
}
