package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agentcard/internal/shared/middleware"
	"agentcard/internal/shared/response"
	"agentcard/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.LoadHTMLGlob(c.Config.App.TemplateGlob)

	router.GET("/", c.AuthHandler.Home)
	router.GET("/health", healthHandler)

	router.GET("/login", c.AuthHandler.ShowLogin)
	router.POST("/login", c.AuthHandler.Login)
	router.GET("/logout", c.AuthHandler.Logout)

	admin := router.Group("/admin",
		middleware.RequireAdmin(c.Sessions),
		middleware.BodyLimit(c.Config.App.MaxUploadBytes),
	)
	{
		admin.GET("", c.AdminHandler.List)
		admin.GET("/new", c.AdminHandler.NewForm)
		admin.POST("/new", c.AdminHandler.Create)
		admin.GET("/:slug/edit", c.AdminHandler.EditForm)
		admin.POST("/:slug/edit", c.AdminHandler.Update)
		admin.POST("/:slug/delete", c.AdminHandler.Delete)
	}

	// Public surface. "/:slug" also serves "/{slug}.vcf"; the handler
	// dispatches on the extension.
	router.GET("/:slug", c.PublicHandler.Profile)
	router.GET("/:slug/qr.png", c.PublicHandler.QRCode)

	return router
}

// healthHandler - GET /health liveness probe, fixed payload.
func healthHandler(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
