package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/auth"
	"github.com/langschool/contentapi/internal/problem"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		problem.Abort(c, problem.New(http.StatusNotFound, "route_not_found", "no route for "+c.Request.Method+" "+c.Request.URL.Path))
	})
	router.NoMethod(func(c *gin.Context) {
		problem.Abort(c, problem.New(http.StatusMethodNotAllowed, "method_not_allowed", c.Request.Method+" is not allowed on "+c.Request.URL.Path))
	})

	router.Use(RequestIDMiddleware())
	router.Use(AccessLogMiddleware())
	router.Use(RecoveryMiddleware())
	router.Use(auth.SecurityHeadersMiddleware())
	if cfg.HSTS {
		router.Use(auth.StrictTransportSecurityMiddleware())
	}
	router.Use(CORSMiddleware(cfg.CORS))

	// Health endpoints
	var db Pinger
	if cfg.Database != nil {
		db = cfg.Database
	}
	health := NewHealthController(db, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	api := router.Group("/api")

	// Public auth endpoints
	var authController *AuthController
	if cfg.AuthService != nil {
		authController = NewAuthController(cfg.AuthService, cfg.AuditService)
		api.POST("/auth/register", authController.Register)
		api.POST("/auth/login", authController.Login)
		api.POST("/auth/forgot-password", authController.ForgotPassword)
		api.POST("/auth/reset-password", authController.ResetPassword)
	}

	// Everything below requires a valid token (or AUTH_MODE=none)
	protected := api.Group("")
	protected.Use(cfg.AuthMiddleware.Handler())
	editor := cfg.AuthMiddleware.RequireEditor()
	admin := cfg.AuthMiddleware.RequireAdmin()

	if authController != nil {
		protected.POST("/auth/change-password", authController.ChangePassword)
		protected.POST("/auth/block/:userId", admin, authController.Block)
		protected.POST("/auth/unblock/:userId", admin, authController.Unblock)
	}

	// Content
	svc := cfg.Services
	registerContentRoutes(protected, svc, cfg.AuditService, editor)

	wordImport := NewWordImportController(svc.Import, cfg.AuditService, cfg.Auditor)
	protected.POST("/Lessons/:id/words/import", editor, wordImport.Import)

	// Users
	users := NewUsersController(svc.Users, cfg.AuditService)
	protected.GET("/users/me", users.Me)
	protected.PATCH("/users/me", users.UpdateMe)
	protected.GET("/users", admin, users.List)
	protected.GET("/users/:id", admin, users.Get)
	protected.PUT("/users/:id", admin, users.Update)
	protected.PATCH("/users/:id", admin, users.Update)
	protected.DELETE("/users/:id", admin, users.Delete)

	// Progress
	progress := NewProgressController(svc.Progress)
	protected.POST("/UserProgress", progress.Record)
	protected.POST("/UserProgress/words", progress.RecordWord)
	protected.GET("/UserProgress/:id", progress.Get)
	protected.DELETE("/UserProgress/:id", progress.Delete)
	protected.GET("/UserProgress/user/:userId", progress.ForUser)
	protected.GET("/UserProgress/user/:userId/words", progress.WordsForUser)

	// Administration
	if cfg.AuditService != nil {
		auditController := NewAuditController(cfg.AuditService)
		protected.GET("/admin/audit", admin, auditController.GetAuditEvents)
	}

	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient, cfg.Maintenance)
		protected.GET("/tasks/:id", admin, tasksController.GetTaskStatus)
		protected.POST("/tasks/maintenance/run", admin, tasksController.RunMaintenance)
	}

	return router
}
