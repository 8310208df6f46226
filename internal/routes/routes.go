package routes

import (
	"net/http"

	"connect_backend/internal/handlers"
	"connect_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole API surface. Public routes cover the
// invitation and activation flows plus login; everything else requires a
// session, and the moderation group additionally requires the moderator flag.
func RegisterRoutes(engine *gin.Engine, h *handlers.AppHandlers) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	// Public: invitation request, token activation, login/logout
	h.Account.RegisterRoutes(api)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		h.Profile.RegisterRoutes(authed)
		h.Settings.RegisterRoutes(authed)
	}

	moderation := api.Group("")
	moderation.Use(middleware.AuthMiddleware(), middleware.ModeratorMiddleware())
	{
		h.Moderation.RegisterRoutes(moderation)
	}
}
