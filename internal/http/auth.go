package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/audit"
	"github.com/langschool/contentapi/internal/auth"
	"github.com/langschool/contentapi/internal/dto"
)

// AuthController serves registration, login, password reset and account
// blocking.
type AuthController struct {
	service      *auth.Service
	auditService *audit.Service
}

func NewAuthController(service *auth.Service, auditService *audit.Service) *AuthController {
	return &AuthController{service: service, auditService: auditService}
}

func (ac *AuthController) logAuth(c *gin.Context, action string, err error) {
	if ac.auditService != nil {
		ac.auditService.LogAuth(auditRequest(c), action, err == nil)
	}
}

// Register handles POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ac.service.RegisterUser(c.Request.Context(), req)
	ac.logAuth(c, "register", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/users/me")
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ac.service.Login(c.Request.Context(), c.ClientIP(), req)
	ac.logAuth(c, "login", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ForgotPassword handles POST /api/auth/forgot-password. The answer is the
// same whether or not the email belongs to an account.
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := ac.service.SendPasswordResetEmail(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	ac.logAuth(c, "forgot_password", nil)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "if the address is registered, a reset link has been sent"})
}

// ResetPassword handles POST /api/auth/reset-password
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	err := ac.service.ResetPassword(c.Request.Context(), req)
	ac.logAuth(c, "reset_password", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password has been reset"})
}

// ChangePassword handles POST /api/auth/change-password for the caller.
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	err := ac.service.ChangePassword(c.Request.Context(), auth.GetUserID(c), req)
	ac.logAuth(c, "change_password", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password changed"})
}

// Block handles POST /api/auth/block/:userId
func (ac *AuthController) Block(c *gin.Context) {
	ac.setBlocked(c, true)
}

// Unblock handles POST /api/auth/unblock/:userId
func (ac *AuthController) Unblock(c *gin.Context) {
	ac.setBlocked(c, false)
}

func (ac *AuthController) setBlocked(c *gin.Context, blocked bool) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var err error
	action, message := "unblock_user", "user unblocked"
	if blocked {
		action, message = "block_user", "user blocked"
		if userID == auth.GetUserID(c) {
			respondError(c, apperr.Forbidden("self_block", "administrators cannot block their own account"))
			return
		}
		err = ac.service.BlockUser(c.Request.Context(), userID)
	} else {
		err = ac.service.UnblockUser(c.Request.Context(), userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if ac.auditService != nil {
		ac.auditService.LogAdmin(auditRequest(c), action, userID)
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
