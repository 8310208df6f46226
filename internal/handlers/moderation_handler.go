package handlers

import (
	"net/http"
	"strconv"

	"connect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const defaultLogsLimit = 100

// ModerationHandler exposes the moderator-only routes. Every route here sits
// behind both the session and the moderator middleware.
type ModerationHandler struct {
	*BaseHandler
	moderationService services.ModerationService
}

func NewModerationHandler(base *BaseHandler, moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		BaseHandler:       base,
		moderationService: moderationService,
	}
}

// ListModerators handles GET /moderation/moderators.
func (h *ModerationHandler) ListModerators(c *gin.Context) {
	moderators, err := h.moderationService.ListModerators()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"moderators": moderators})
}

// ReviewApplications handles GET /moderation/review-applications.
func (h *ModerationHandler) ReviewApplications(c *gin.Context) {
	applications, err := h.moderationService.ListPendingApplications()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

// ReviewAbuse handles GET /moderation/review-abuse.
func (h *ModerationHandler) ReviewAbuse(c *gin.Context) {
	reports, err := h.moderationService.ListAbuseReports()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// Logs handles GET /moderation/logs.
func (h *ModerationHandler) Logs(c *gin.Context) {
	limit := defaultLogsLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	logs, err := h.moderationService.ListLogs(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// InviteMember handles POST /moderation/invite-member.
func (h *ModerationHandler) InviteMember(c *gin.Context) {
	moderatorID, ok := h.GetAuthedUserID(c)
	if !ok {
		return
	}

	var req services.InviteMemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.moderationService.InviteMember(moderatorID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Invitation sent"})
}

// RegisterRoutes mounts the moderation routes onto a moderator-only group.
func (h *ModerationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	moderation := rg.Group("/moderation")
	{
		moderation.GET("/moderators", h.ListModerators)
		moderation.GET("/review-applications", h.ReviewApplications)
		moderation.GET("/review-abuse", h.ReviewAbuse)
		moderation.GET("/logs", h.Logs)
		moderation.POST("/invite-member", h.InviteMember)
	}
}
