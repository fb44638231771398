package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"agentcard/pkg/session"
)

// RequireAdmin gates the administrative routes. Anonymous requests are
// redirected to the login page, carrying the originally requested
// destination so login can send the administrator back there.
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		if _, err := sessions.Verify(token); err != nil {
			redirectToLogin(c)
			return
		}

		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/login?next="+next)
	c.Abort()
}

// IsAuthenticated reports whether the request carries a valid admin session.
func IsAuthenticated(c *gin.Context, sessions *session.Manager) bool {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		return false
	}
	_, err = sessions.Verify(token)
	return err == nil
}
