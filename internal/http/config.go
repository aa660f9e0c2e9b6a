package http

import (
	"github.com/langschool/contentapi/internal/audit"
	"github.com/langschool/contentapi/internal/auth"
	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/database"
	"github.com/langschool/contentapi/internal/scheduler"
	"github.com/langschool/contentapi/internal/services"
	"github.com/langschool/contentapi/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Services *services.Services

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware

	// Audit trail and archived import reports
	AuditService *audit.Service
	Auditor      *audit.Auditor

	// Task queue client and maintenance scheduler (optional)
	TaskClient  *tasks.Client
	Maintenance *scheduler.MaintenanceScheduler

	CORS config.CORS

	// Adds Strict-Transport-Security when served behind TLS
	HSTS bool

	// Application info
	Version string
}
