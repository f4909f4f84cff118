package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
)

// setSessionCookie sets the session cookie with appropriate flags for dev/prod.
func setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	secure := os.Getenv(constants.EnvSessionSecureCookie) == "1"
	c.SetCookie(constants.CookieSessionName, token, int(ttl.Seconds()), "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(constants.CookieSessionName, "", -1, "/", "", false, true)
}

// AuthRequired validates the session cookie and injects the wallet identity
// into the context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.CookieSessionName)
		if err != nil || token == "" {
			abortWithError(c, http.StatusUnauthorized, constants.ErrAuthRequired)
			return
		}
		claims, err := parseAndValidateSession(token)
		if err != nil {
			clearSessionCookie(c)
			abortWithError(c, http.StatusUnauthorized, constants.ErrInvalidSession)
			return
		}
		c.Set(constants.ContextKeyWallet, claims.Sub)
		c.Set(constants.ContextKeyPlayer, claims.Name)
		c.Next()
	}
}
