package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"agentcard/internal/shared/middleware"
	"agentcard/pkg/session"
)

// AuthHandler implements the two-state administrative session machine:
// anonymous and authenticated.
type AuthHandler struct {
	sessions      *session.Manager
	adminPassword string
}

func NewAuthHandler(sessions *session.Manager, adminPassword string) *AuthHandler {
	return &AuthHandler{
		sessions:      sessions,
		adminPassword: adminPassword,
	}
}

// Home - GET /
func (h *AuthHandler) Home(c *gin.Context) {
	if middleware.IsAuthenticated(c, h.sessions) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin - GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Next": c.Query("next"),
	})
}

// Login - POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	password := c.PostForm("password")

	if !h.passwordMatches(password) {
		// Generic message: no hint about how close the attempt was.
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid password",
			"Next":  c.PostForm("next"),
		})
		return
	}

	token, err := h.sessions.IssueAdminToken()
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Internal server error",
		})
		return
	}

	c.SetCookie(session.CookieName, token, int(session.TokenTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
}

// Logout - GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// passwordMatches accepts ADMIN_PASSWORD as either a bcrypt hash or the
// plain shared secret, compared in constant time.
func (h *AuthHandler) passwordMatches(password string) bool {
	if strings.HasPrefix(h.adminPassword, "$2a$") ||
		strings.HasPrefix(h.adminPassword, "$2b$") ||
		strings.HasPrefix(h.adminPassword, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(h.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.adminPassword), []byte(password)) == 1
}

// safeNext only honors local redirect targets.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/admin"
}
