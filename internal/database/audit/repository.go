package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
)

const defaultPageSize = 50

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Filter narrows GetEvents. Zero values mean "any".
type Filter struct {
	UserID     uint
	EventType  entities.AuditEventType
	EntityType string
	Limit      int
	Offset     int
}

// LogEvent saves an audit event to the database.
func (r *Repository) LogEvent(ctx context.Context, event *entities.AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return crud.TranslateError("AuditEvent", "create", nil, err)
	}
	return nil
}

// GetEvents retrieves paginated audit events, most recent first, with the
// total matching count.
func (r *Repository) GetEvents(ctx context.Context, f Filter) ([]entities.AuditEvent, int64, error) {
	events := make([]entities.AuditEvent, 0)
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.AuditEvent{})
	if f.UserID > 0 {
		query = query.Where("user_id = ?", f.UserID)
	}
	if f.EventType != "" {
		query = query.Where("event_type = ?", f.EventType)
	}
	if f.EntityType != "" {
		query = query.Where("entity_type = ?", f.EntityType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, crud.TranslateError("AuditEvent", "count", nil, err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&events).Error
	if err != nil {
		return nil, 0, crud.TranslateError("AuditEvent", "list", nil, err)
	}
	return events, total, nil
}

// DeleteOldEvents removes audit events older than the specified time.
// Returns the number of deleted events.
func (r *Repository) DeleteOldEvents(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", olderThan).Delete(&entities.AuditEvent{})
	if result.Error != nil {
		return 0, crud.TranslateError("AuditEvent", "cleanup", nil, result.Error)
	}
	return result.RowsAffected, nil
}
