package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"agentcard/internal/domains/agent/model"
	"agentcard/internal/domains/agent/service"
)

// AdminHandler serves the authenticated CRUD pages.
type AdminHandler struct {
	service service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{service: svc}
}

// List - GET /admin
func (h *AdminHandler) List(c *gin.Context) {
	agents, err := h.service.List(c.Request.Context())
	if err != nil {
		c.HTML(model.HTTPStatus(err), "admin_list.html", gin.H{
			"Error": model.UserMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "admin_list.html", gin.H{
		"Agents": agents,
	})
}

// NewForm - GET /admin/new
func (h *AdminHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "agent_form.html", gin.H{
		"Form":   &model.AgentForm{},
		"IsEdit": false,
		"Action": "/admin/new",
	})
}

// Create - POST /admin/new
func (h *AdminHandler) Create(c *gin.Context) {
	var form model.AgentForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "agent_form.html", gin.H{
			"Form":   &form,
			"IsEdit": false,
			"Action": "/admin/new",
			"Error":  "Invalid form submission",
		})
		return
	}

	_, err := h.service.Create(c.Request.Context(), &form, collectFiles(c))
	if err != nil {
		c.HTML(model.HTTPStatus(err), "agent_form.html", gin.H{
			"Form":   &form,
			"IsEdit": false,
			"Action": "/admin/new",
			"Error":  model.UserMessage(err),
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// EditForm - GET /admin/:slug/edit
func (h *AdminHandler) EditForm(c *gin.Context) {
	slug := c.Param("slug")

	agent, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "agent_form.html", gin.H{
		"Form":   formFromAgent(agent),
		"Agent":  agent,
		"IsEdit": true,
		"Action": fmt.Sprintf("/admin/%s/edit", agent.Slug),
	})
}

// Update - POST /admin/:slug/edit
func (h *AdminHandler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var form model.AgentForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "agent_form.html", gin.H{
			"Form":   &form,
			"IsEdit": true,
			"Action": fmt.Sprintf("/admin/%s/edit", slug),
			"Error":  "Invalid form submission",
		})
		return
	}

	_, err := h.service.Update(c.Request.Context(), slug, &form, collectFiles(c))
	if err != nil {
		if model.IsNotFound(err) {
			renderError(c, err)
			return
		}
		c.HTML(model.HTTPStatus(err), "agent_form.html", gin.H{
			"Form":   &form,
			"IsEdit": true,
			"Action": fmt.Sprintf("/admin/%s/edit", slug),
			"Error":  model.UserMessage(err),
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// Delete - POST /admin/:slug/delete
func (h *AdminHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.service.Delete(c.Request.Context(), slug); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// collectFiles gathers the optional uploads of a form submission. A missing
// multipart form (no file inputs used) yields an empty set.
func collectFiles(c *gin.Context) *model.AgentFiles {
	files := &model.AgentFiles{}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return files
	}

	files.Photo = firstFile(form, "photo")
	files.Gallery = form.File["gallery"]
	for i := 0; i < model.DocumentSlots; i++ {
		files.Documents[i] = firstFile(form, fmt.Sprintf("doc%d", i+1))
	}

	return files
}

func firstFile(form *multipart.Form, field string) *multipart.FileHeader {
	if headers := form.File[field]; len(headers) > 0 && headers[0].Size > 0 {
		return headers[0]
	}
	return nil
}

// formFromAgent pre-fills the edit form, rejoining the list fields into the
// delimited shape the text inputs use.
func formFromAgent(a *model.Agent) *model.AgentForm {
	return &model.AgentForm{
		Slug:        a.Slug,
		Name:        a.Name,
		Company:     a.Company,
		Role:        a.Role,
		Bio:         a.Bio,
		MobilePhone: a.MobilePhone,
		OfficePhone: a.OfficePhone,
		Emails:      joinForInput(a.Emails, ", "),
		Websites:    joinForInput(a.Websites, ", "),
		Addresses:   joinForInput(a.Addresses, "\n"),
		Facebook:    a.Facebook,
		Instagram:   a.Instagram,
		LinkedIn:    a.LinkedIn,
		Twitter:     a.Twitter,
		YouTube:     a.YouTube,
		TikTok:      a.TikTok,
		PEC:         a.PEC,
		VATNumber:   a.VATNumber,
		SDICode:     a.SDICode,
	}
}

func joinForInput(items []string, sep string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += sep
		}
		out += it
	}
	return out
}

func renderError(c *gin.Context, err error) {
	c.HTML(model.HTTPStatus(err), "error.html", gin.H{
		"Status":  model.HTTPStatus(err),
		"Message": model.UserMessage(err),
	})
}
