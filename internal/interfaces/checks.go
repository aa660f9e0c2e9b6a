package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/langschool/contentapi/internal/audit"
	"github.com/langschool/contentapi/internal/database"
	"github.com/langschool/contentapi/internal/database/lessons"
	"github.com/langschool/contentapi/internal/database/users"
	"github.com/langschool/contentapi/internal/email"
	"github.com/langschool/contentapi/internal/http"
	"github.com/langschool/contentapi/internal/services"
	"github.com/langschool/contentapi/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// WordStore implementations
var _ services.WordStore = (*lessons.Repository)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Email Delivery
// =============================================================================

// Sender implementations
var _ email.Sender = (*email.SMTPSender)(nil)
var _ email.Sender = email.LogSender{}
var _ email.Sender = (*email.RecordingSender)(nil)
var _ email.Sender = (*tasks.QueuedSender)(nil)

// =============================================================================
// Background Tasks
// =============================================================================

// TaskAdder implementations
var _ tasks.TaskAdder = (*tasks.Client)(nil)

// Cleaner implementations
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)
var _ tasks.ResetTokenCleaner = (*users.Repository)(nil)
