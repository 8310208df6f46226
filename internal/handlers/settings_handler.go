package handlers

import (
	"net/http"

	"connect_backend/internal/services"
	"connect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the authenticated account settings routes: email
// and password maintenance, and account closure.
type SettingsHandler struct {
	*BaseHandler
	settingsService services.SettingsService
}

func NewSettingsHandler(base *BaseHandler, settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler:     base,
		settingsService: settingsService,
	}
}

// UpdateSettings handles POST /settings. The password field is optional; an
// absent password keeps the current credential.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, ok := h.GetAuthedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.settingsService.UpdateSettings(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}

// CloseAccount handles POST /settings/close-account. The password is
// re-confirmed before the account is closed and every session revoked.
func (h *SettingsHandler) CloseAccount(c *gin.Context) {
	userID, ok := h.GetAuthedUserID(c)
	if !ok {
		return
	}

	var req dto.CloseAccountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.settingsService.CloseAccount(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account closed"})
}

// RegisterRoutes mounts the settings routes onto an authenticated group.
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.POST("", h.UpdateSettings)
		settings.POST("/close-account", h.CloseAccount)
	}
}
