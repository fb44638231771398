package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"agentcard/internal/domains/agent/model"
	"agentcard/internal/domains/agent/service"
	"agentcard/internal/qr"
	"agentcard/internal/vcard"
)

// PublicHandler serves the visitor-facing surface: the profile page, the
// vCard download and the QR code.
type PublicHandler struct {
	service       service.Service
	publicBaseURL string
}

func NewPublicHandler(svc service.Service, publicBaseURL string) *PublicHandler {
	return &PublicHandler{
		service:       svc,
		publicBaseURL: publicBaseURL,
	}
}

// Profile - GET /:slug and GET /:slug.vcf
//
// Route parameters cannot carry a literal suffix, so the vCard route shares
// this handler and is dispatched on the extension.
func (h *PublicHandler) Profile(c *gin.Context) {
	slug := c.Param("slug")

	if strings.HasSuffix(slug, ".vcf") {
		h.vCard(c, strings.TrimSuffix(slug, ".vcf"))
		return
	}

	agent, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		renderError(c, err)
		return
	}

	base := qr.BaseURL(h.publicBaseURL, c.Request)
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"View":       model.NewProfileView(agent),
		"ProfileURL": qr.ProfileURL(base, agent.Slug),
	})
}

func (h *PublicHandler) vCard(c *gin.Context, slug string) {
	agent, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		renderError(c, err)
		return
	}

	doc := vcard.Serialize(agent)

	c.Header("Content-Type", "text/vcard; charset=utf-8")
	if c.Query("download") != "" {
		c.Header("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s.vcf"`, agent.Slug))
	}
	c.String(http.StatusOK, doc)
}

// QRCode - GET /:slug/qr.png
func (h *PublicHandler) QRCode(c *gin.Context) {
	slug := c.Param("slug")

	agent, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		renderError(c, err)
		return
	}

	base := qr.BaseURL(h.publicBaseURL, c.Request)
	png, err := qr.Generate(qr.ProfileURL(base, agent.Slug))
	if err != nil {
		log.Error().Err(err).Str("slug", agent.Slug).Msg("failed to generate qr code")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
