package handlers

import (
	"net/http"

	"connect_backend/internal/services"
	"connect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ProfileHandler exposes the authenticated profile settings routes.
type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// GetProfile handles GET /profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAuthedUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SaveProfile handles POST /profile. The submitted skill and link rows
// replace the stored sets in full.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := h.GetAuthedUserID(c)
	if !ok {
		return
	}

	var req dto.SaveProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.profileService.SaveProfile(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// RegisterRoutes mounts the profile routes onto an authenticated group.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.POST("", h.SaveProfile)
	}
}
