package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/audit"
	dbaudit "github.com/langschool/contentapi/internal/database/audit"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/entities"
)

type AuditController struct {
	auditService *audit.Service
}

func NewAuditController(auditService *audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

var auditEventTypes = map[entities.AuditEventType]bool{
	entities.AuditEventCreate: true,
	entities.AuditEventUpdate: true,
	entities.AuditEventDelete: true,
	entities.AuditEventImport: true,
	entities.AuditEventAuth:   true,
	entities.AuditEventAdmin:  true,
}

// GetAuditEvents returns paginated audit events.
// GET /api/admin/audit?type=&entityType=&userId=&limit=&offset=
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}

	filter := dbaudit.Filter{
		EntityType: c.Query("entityType"),
		Limit:      limit,
		Offset:     offset,
	}

	if eventType := c.Query("type"); eventType != "" {
		if !auditEventTypes[entities.AuditEventType(eventType)] {
			respondBadRequest(c, "invalid_query", "unknown event type "+strconv.Quote(eventType))
			return
		}
		filter.EventType = entities.AuditEventType(eventType)
	}

	if userID := c.Query("userId"); userID != "" {
		id, err := strconv.ParseUint(userID, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid_query", "userId must be a number")
			return
		}
		filter.UserID = uint(id)
	}

	events, total, err := ac.auditService.GetEvents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(events, total, limit, offset))
}
