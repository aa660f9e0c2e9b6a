package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/audit"
	"github.com/langschool/contentapi/internal/auth"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/services"
)

// UsersController handles profile and user administration endpoints.
type UsersController struct {
	users        *services.UserService
	auditService *audit.Service
}

func NewUsersController(users *services.UserService, auditService *audit.Service) *UsersController {
	return &UsersController{users: users, auditService: auditService}
}

func (uc *UsersController) logUpdate(c *gin.Context, userID uint) {
	if uc.auditService != nil {
		uc.auditService.LogContent(auditRequest(c), entities.AuditEventUpdate, "User", userID)
	}
}

// List handles GET /api/users?limit=&offset=
func (uc *UsersController) List(c *gin.Context) {
	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}
	page, err := uc.users.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/users/:id
func (uc *UsersController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := uc.users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PUT and PATCH /api/users/:id
func (uc *UsersController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := uc.users.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	uc.logUpdate(c, id)
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:id
func (uc *UsersController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if id == auth.GetUserID(c) {
		respondError(c, apperr.Forbidden("self_delete", "administrators cannot delete their own account"))
		return
	}
	if _, err := uc.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	if uc.auditService != nil {
		uc.auditService.LogAdmin(auditRequest(c), "delete_user", id)
	}
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/users/me
func (uc *UsersController) Me(c *gin.Context) {
	user, err := uc.users.Get(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PATCH /api/users/me
func (uc *UsersController) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	userID := auth.GetUserID(c)
	user, err := uc.users.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	uc.logUpdate(c, userID)
	c.JSON(http.StatusOK, user)
}
