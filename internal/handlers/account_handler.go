package handlers

import (
	"net/http"

	"connect_backend/internal/services"
	"connect_backend/internal/services/dto"
	"connect_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AccountHandler exposes the public account lifecycle routes: requesting an
// invitation, the two-step token activation, and session login/logout.
type AccountHandler struct {
	*BaseHandler
	accountService services.AccountService
	sessionService services.SessionService
}

func NewAccountHandler(
	base *BaseHandler,
	accountService services.AccountService,
	sessionService services.SessionService,
) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    base,
		accountService: accountService,
		sessionService: sessionService,
	}
}

// RequestInvitation handles POST /accounts/request-invitation.
func (h *AccountHandler) RequestInvitation(c *gin.Context) {
	var req dto.RequestInvitationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.accountService.RequestInvitation(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your request has been received and is awaiting moderator review",
	})
}

// ActivationState handles GET /accounts/activate/:token. It returns the
// prefilled form state for a fresh token, or the terminal used-token state.
func (h *AccountHandler) ActivationState(c *gin.Context) {
	token := c.Param("token")

	state, err := h.accountService.ActivationState(token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// ActivateAccount handles POST /accounts/activate/:token. A consumed token is
// a terminal state of the workflow and is reported before the submitted form
// is even looked at, whatever its validity.
func (h *AccountHandler) ActivateAccount(c *gin.Context) {
	token := c.Param("token")

	state, err := h.accountService.ActivationState(token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if state.TokenIsUsed {
		h.HandleServiceError(c, apperrors.ErrTokenAlreadyUsed)
		return
	}

	var req dto.ActivateAccountRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	session, err := h.accountService.ActivateAccount(token, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Login handles POST /auth/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	session, err := h.sessionService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Refresh handles POST /auth/refresh.
func (h *AccountHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	session, err := h.sessionService.Refresh(req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Logout handles POST /auth/logout.
func (h *AccountHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.sessionService.Logout(req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// RegisterRoutes mounts the account routes onto the router group.
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	{
		accounts.POST("/request-invitation", h.RequestInvitation)
		accounts.GET("/activate/:token", h.ActivationState)
		accounts.POST("/activate/:token", h.ActivateAccount)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}
