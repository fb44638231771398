package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentcard/pkg/session"
)

func newGatedRouter(t *testing.T, sessions *session.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	admin := r.Group("/admin", RequireAdmin(sessions))
	admin.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "admin area")
	})
	return r
}

func TestRequireAdminRedirectsAnonymous(t *testing.T) {
	r := newGatedRouter(t, session.NewManager("secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fadmin", w.Header().Get("Location"))
}

func TestRequireAdminRejectsInvalidToken(t *testing.T) {
	r := newGatedRouter(t, session.NewManager("secret"))

	forged, err := session.NewManager("other-secret").IssueAdminToken()
	require.NoError(t, err)

	for _, token := range []string{"garbage", forged} {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
	}
}

func TestRequireAdminPassesValidSession(t *testing.T) {
	sessions := session.NewManager("secret")
	r := newGatedRouter(t, sessions)

	token, err := sessions.IssueAdminToken()
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin area", w.Body.String())
}
