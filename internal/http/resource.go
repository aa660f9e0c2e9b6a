package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/audit"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/services"
)

// ResourceController exposes a services.CRUD as list, get, create, update
// and delete endpoints. Mutations are recorded in the audit log.
type ResourceController[E, C, U, R any] struct {
	service *services.CRUD[E, C, U, R]
	audit   *audit.Service
}

func NewResourceController[E, C, U, R any](service *services.CRUD[E, C, U, R], auditService *audit.Service) *ResourceController[E, C, U, R] {
	return &ResourceController[E, C, U, R]{service: service, audit: auditService}
}

// Register mounts the collection at group/path. Write routes run behind
// writeGuards.
func (rc *ResourceController[E, C, U, R]) Register(group *gin.RouterGroup, path string, writeGuards ...gin.HandlerFunc) {
	group.GET(path, rc.List)
	group.GET(path+"/:id", rc.Get)
	group.POST(path, guarded(writeGuards, rc.Create)...)
	group.PUT(path+"/:id", guarded(writeGuards, rc.Update)...)
	group.PATCH(path+"/:id", guarded(writeGuards, rc.Update)...)
	group.DELETE(path+"/:id", guarded(writeGuards, rc.Delete)...)
}

// guarded returns guards followed by h in a fresh slice.
func guarded(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(guards)+1)
	out = append(out, guards...)
	return append(out, h)
}

// List handles GET /api/<resource>
func (rc *ResourceController[E, C, U, R]) List(c *gin.Context) {
	items, err := rc.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items)
}

// Get handles GET /api/<resource>/:id
func (rc *ResourceController[E, C, U, R]) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := rc.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /api/<resource>
func (rc *ResourceController[E, C, U, R]) Create(c *gin.Context) {
	var req C
	if !bindJSON(c, &req) {
		return
	}
	item, err := rc.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	rc.logMutation(c, entities.AuditEventCreate, item)
	respondCreated(c, item)
}

// Update handles PUT and PATCH /api/<resource>/:id. Both are partial.
func (rc *ResourceController[E, C, U, R]) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req U
	if !bindJSON(c, &req) {
		return
	}
	item, err := rc.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	rc.logMutation(c, entities.AuditEventUpdate, item)
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/<resource>/:id
func (rc *ResourceController[E, C, U, R]) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := rc.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	rc.logMutation(c, entities.AuditEventDelete, item)
	c.Status(http.StatusNoContent)
}

func (rc *ResourceController[E, C, U, R]) logMutation(c *gin.Context, eventType entities.AuditEventType, item *R) {
	if rc.audit == nil {
		return
	}
	id, _ := services.IDOf(item)
	rc.audit.LogContent(auditRequest(c), eventType, rc.service.Name(), id)
}

// listChildren handles GET /api/<parent>/:param/<children>, where list is the
// service method returning the rows under one parent.
func listChildren[R any](param string, list func(ctx context.Context, parentID uint) ([]R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, param)
		if !ok {
			return
		}
		items, err := list(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respondList(c, items)
	}
}
