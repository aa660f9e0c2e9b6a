package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/audit"
	"github.com/langschool/contentapi/internal/auth"
	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/database"
	dbaudit "github.com/langschool/contentapi/internal/database/audit"
	"github.com/langschool/contentapi/internal/database/users"
	"github.com/langschool/contentapi/internal/email"
	http_controllers "github.com/langschool/contentapi/internal/http"
	"github.com/langschool/contentapi/internal/logger"
	"github.com/langschool/contentapi/internal/scheduler"
	"github.com/langschool/contentapi/internal/services"
	"github.com/langschool/contentapi/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App is the fully wired server: the router plus everything that must be
// released on shutdown.
type App struct {
	Router   *gin.Engine
	Shutdown ShutdownFunc
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if onShutdown != nil {
			onShutdown(context.Background())
		}
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String(), "timeout", timeout)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop accepting requests before tearing down what they depend on.
	shutdownErr := srv.Shutdown(ctx)
	if onShutdown != nil {
		onShutdown(ctx)
	}
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown: %w", shutdownErr)
	}

	logger.Info("server exited")
	return nil
}

// Build wires configuration into a ready router. The caller owns the returned
// App and must call Shutdown.
func Build(cfg *config.Config, version string) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	validator := services.NewValidator()
	svc := services.New(db.DB, validator)
	usersRepo := users.NewRepository(db.DB)

	auditService := audit.NewService(dbaudit.NewRepository(db.DB))
	auditor := audit.NewAuditor(cfg.Audit.Dir)

	var mailer email.Sender = email.NewSender(cfg.SMTP)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskPath := tasks.DatabasePath(cfg.Database)
		taskClient, err = tasks.NewClient(taskPath, tasks.ConfigFrom(cfg.Tasks))
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to initialize task queue: %w", err)
		}

		taskClient.Register(
			tasks.NewSendEmailQueue(mailer),
			tasks.NewCleanupAuditEventsQueue(auditService),
			tasks.NewCleanupResetTokensQueue(usersRepo),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		taskClient.Start(taskCtx)

		// Requests only enqueue; a worker talks to SMTP.
		mailer = tasks.NewQueuedSender(taskClient)
		logger.Info("emails are delivered through the task queue", "path", taskPath)
	}

	var maintenance *scheduler.MaintenanceScheduler
	if cfg.Maintenance.Enabled {
		if taskClient == nil {
			logger.Warn("MAINTENANCE_ENABLED needs TASKS_ENABLED, scheduled cleanup is off")
		} else {
			maintenance = scheduler.NewMaintenanceScheduler(taskClient, scheduler.MaintenanceConfig{
				Schedule:           cfg.Maintenance.Schedule,
				AuditRetentionDays: cfg.Audit.RetentionDays,
			})
			if err := maintenance.Start(context.Background()); err != nil {
				logger.Error("failed to start maintenance scheduler", "error", err)
				maintenance = nil
			}
		}
	}

	var authService *auth.Service
	var limiter *auth.RateLimiter
	if cfg.Auth.Mode == config.AuthModeLocal {
		logger.Info("authentication mode: local")
		limiter = auth.NewRateLimiter(auth.RateLimitConfigFromAuth(cfg.Auth))
		authService = auth.NewService(
			usersRepo,
			auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenExpiry),
			limiter,
			mailer,
			validator,
			cfg.Auth,
		)

		hasUsers, err := authService.HasUsers(context.Background())
		if err != nil {
			logger.Warn("could not count users", "error", err)
		} else if !hasUsers {
			logger.Info("no users found, run the create-admin command to add an administrator")
		}
	} else {
		logger.Warn("authentication mode: none, every request acts as an administrator")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       db,
		Services:       svc,
		AuthService:    authService,
		AuthMiddleware: auth.NewMiddleware(authService, cfg.Auth),
		AuditService:   auditService,
		Auditor:        auditor,
		TaskClient:     taskClient,
		Maintenance:    maintenance,
		CORS:           cfg.CORS,
		HSTS:           cfg.HTTP.HSTS,
		Version:        version,
	})

	shutdown := func(ctx context.Context) {
		if maintenance != nil {
			maintenance.Stop()
		}
		if taskClient != nil {
			if !taskClient.Stop(ctx) {
				logger.Warn("task workers did not stop before the deadline")
			}
			taskCtxCancel()
			if err := taskClient.Close(); err != nil {
				logger.Error("error closing task client", "error", err)
			}
		}
		if limiter != nil {
			limiter.Stop()
		}
		auditService.Wait()
		if err := db.Close(); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}

	return &App{Router: router, Shutdown: shutdown}, nil
}

func Run(cfg *config.Config, version string) error {
	logger.Info("starting content API", "version", version)

	app, err := Build(cfg, version)
	if err != nil {
		return err
	}
	return Serve(app.Router, cfg, app.Shutdown)
}
