package handler

import (
	"bytes"
	"html/template"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentcard/internal/domains/agent/model"
)

func newAdminRouter(t *testing.T, svc *stubService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))

	h := NewAdminHandler(svc)
	admin := r.Group("/admin")
	admin.GET("", h.List)
	admin.GET("/new", h.NewForm)
	admin.POST("/new", h.Create)
	admin.GET("/:slug/edit", h.EditForm)
	admin.POST("/:slug/edit", h.Update)
	admin.POST("/:slug/delete", h.Delete)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminList(t *testing.T) {
	r := newAdminRouter(t, seededService())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "list 1")
}

func TestAdminCreateRedirects(t *testing.T) {
	svc := seededService()
	r := newAdminRouter(t, svc)

	w := postForm(r, "/admin/new", url.Values{
		"slug": {"mrossi"},
		"name": {"Mario Rossi"},
	})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Contains(t, svc.agents, "mrossi")
}

func TestAdminCreateMultipartCollectsFiles(t *testing.T) {
	svc := seededService()
	r := newAdminRouter(t, svc)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("slug", "mrossi"))
	require.NoError(t, mw.WriteField("name", "Mario Rossi"))
	part, err := mw.CreateFormFile("photo", "face.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/admin/new", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, svc.agents, "mrossi")
}

func TestAdminEditFormUnknownSlug(t *testing.T) {
	r := newAdminRouter(t, seededService())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin/ghost/edit", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminUpdateRedirects(t *testing.T) {
	svc := seededService()
	r := newAdminRouter(t, svc)

	w := postForm(r, "/admin/jdoe/edit", url.Values{
		"slug": {"jdoe"},
		"name": {"Jane D. Doe"},
	})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "Jane D. Doe", svc.agents["jdoe"].Name)
}

func TestAdminDelete(t *testing.T) {
	svc := seededService()
	r := newAdminRouter(t, svc)

	w := postForm(r, "/admin/jdoe/delete", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.NotContains(t, svc.agents, "jdoe")

	w = postForm(r, "/admin/jdoe/delete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFormFromAgentRejoinsLists(t *testing.T) {
	a := &model.Agent{
		Slug:      "jdoe",
		Name:      "Jane Doe",
		Emails:    []string{"a@x.com", "b@y.com"},
		Addresses: []string{"Via Roma 1", "Via Po 2"},
	}

	form := formFromAgent(a)
	assert.Equal(t, "a@x.com, b@y.com", form.Emails)
	assert.Equal(t, "Via Roma 1\nVia Po 2", form.Addresses)
}
