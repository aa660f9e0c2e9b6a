package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/langschool/contentapi/internal/database/audit"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/logger"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
	wg   sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(ctx context.Context, event *entities.AuditEvent) error {
	return s.repo.LogEvent(ctx, event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.LogEvent(ctx, event); err != nil {
			logger.Error("failed to log audit event", "action", event.Action, "error", err)
		}
	}()
}

// Wait blocks until pending asynchronous events are written.
func (s *Service) Wait() {
	s.wg.Wait()
}

// Request describes who did something and from where.
type Request struct {
	UserID    uint
	IPAddress string
	UserAgent string
}

func (s *Service) newEvent(r Request, eventType entities.AuditEventType, action string) *entities.AuditEvent {
	return &entities.AuditEvent{
		UserID:    r.UserID,
		EventType: eventType,
		Action:    action,
		IPAddress: r.IPAddress,
		UserAgent: truncate(r.UserAgent, 500),
		Status:    entities.AuditStatusSuccess,
	}
}

// LogContent records a create, update or delete of a content entity.
func (s *Service) LogContent(r Request, eventType entities.AuditEventType, entityType string, entityID uint) {
	event := s.newEvent(r, eventType, entityType+"_"+string(eventType))
	event.EntityType = entityType
	event.EntityID = &entityID
	event.Description = fmt.Sprintf("%s %s #%d", eventType, entityType, entityID)
	s.LogAsync(event)
}

// LogImport records a bulk word import into a lesson.
func (s *Service) LogImport(r Request, lessonID uint, filename string, created, skipped, failed int, err error) {
	event := s.newEvent(r, entities.AuditEventImport, "lesson_words_import")
	event.EntityType = "Lesson"
	event.EntityID = &lessonID
	event.Description = truncate(fmt.Sprintf("%s: %d created, %d skipped, %d rejected", filename, created, skipped, failed), 500)
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
	s.LogAsync(event)
}

// LogAuth records an authentication event such as "login" or "register".
func (s *Service) LogAuth(r Request, action string, success bool) {
	event := s.newEvent(r, entities.AuditEventAuth, action)
	if !success {
		event.Status = entities.AuditStatusFailed
	}
	s.LogAsync(event)
}

// LogAdmin records an administrative action on another account.
func (s *Service) LogAdmin(r Request, action string, targetUserID uint) {
	event := s.newEvent(r, entities.AuditEventAdmin, action)
	event.EntityType = "User"
	event.EntityID = &targetUserID
	event.Description = fmt.Sprintf("%s user #%d", action, targetUserID)
	s.LogAsync(event)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(ctx context.Context, f audit.Filter) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(ctx, f)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
