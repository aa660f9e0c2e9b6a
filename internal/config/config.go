package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AuthMode string

const (
	AuthModeNone  AuthMode = "none"  // No authentication, every request acts as admin
	AuthModeLocal AuthMode = "local" // Local user table with JWT bearer tokens
)

type DatabaseDriver string

const (
	DriverSQLite DatabaseDriver = "sqlite"
	DriverMySQL  DatabaseDriver = "mysql"
)

type (
	Config struct {
		HTTP
		Global
		Log
		Database
		Auth
		SMTP
		Tasks
		Audit
		Maintenance
		CORS
	}

	HTTP struct {
		Port int32
		Host string
		HSTS bool // Send Strict-Transport-Security; enable only behind TLS
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Log struct {
		Level  string
		File   string
		Format string
	}
	Database struct {
		Driver   DatabaseDriver
		DSN      string // MySQL DSN, e.g. user:pass@tcp(host:3306)/db?parseTime=true
		Path     string // SQLite file path
		LogLevel string // gorm log level: silent, error, warn, info
	}
	Auth struct {
		Mode              AuthMode
		JWTSecret         string
		JWTIssuer         string
		TokenExpiry       time.Duration
		BcryptCost        int
		MinPasswordLength int

		// Rate limiting and lockout
		MaxLoginAttempts int           // Failed attempts before lockout (default: 5)
		RateLimitWindow  time.Duration // Window for counting attempts (default: 15m)
		LockoutDuration  time.Duration // How long an account stays locked (default: 30m)

		ResetTokenExpiry time.Duration
		ResetURL         string // Frontend page receiving ?token=&email=
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration // Stuck tasks go back to the queue after this
		CleanupInterval time.Duration // How often finished tasks are purged
	}
	Audit struct {
		RetentionDays int    // Days to keep audit events (default: 90)
		Dir           string // Where import reports are archived as JSON; empty disables
	}
	Maintenance struct {
		Enabled  bool
		Schedule string // Cron format: "30 3 * * *" = daily at 03:30
	}
	CORS struct {
		AllowedOrigins   []string
		AllowedMethods   []string
		AllowedHeaders   []string
		AllowCredentials bool
		MaxAge           time.Duration
	}
)

// LoadDotEnv reads variables from .env files into the process environment
// without overriding variables that are already set. Missing files are fine.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("http_hsts", false)
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_format", "text")

	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")

	// Auth defaults
	v.SetDefault("auth_mode", string(AuthModeLocal))
	v.SetDefault("auth_jwt_secret", "")
	v.SetDefault("auth_jwt_issuer", DefaultJWTIssuer)
	v.SetDefault("auth_token_expiry", "24h")
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_min_password_length", 8)
	v.SetDefault("auth_max_login_attempts", 5)
	v.SetDefault("auth_rate_limit_window", "15m")
	v.SetDefault("auth_lockout_duration", "30m")
	v.SetDefault("auth_reset_token_expiry", "1h")
	v.SetDefault("auth_reset_url", "http://localhost:3000/reset-password")

	v.SetDefault("smtp_host", "")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_from", "no-reply@localhost")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "10m")
	v.SetDefault("task_cleanup_interval", "1h")

	v.SetDefault("audit_retention_days", 90)
	v.SetDefault("maintenance_enabled", true)
	v.SetDefault("maintenance_schedule", "30 3 * * *")

	v.SetDefault("cors_allowed_origins", "http://localhost:3000")
	v.SetDefault("cors_allowed_methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
	v.SetDefault("cors_allowed_headers", "Authorization,Content-Type,X-Request-Id")
	v.SetDefault("cors_allow_credentials", false)
	v.SetDefault("cors_max_age", "12h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
			HSTS: v.GetBool("HTTP_HSTS"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			File:   v.GetString("LOG_FILE"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Database: Database{
			Driver:   DatabaseDriver(strings.ToLower(v.GetString("DATABASE_DRIVER"))),
			DSN:      v.GetString("DATABASE_DSN"),
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Auth: Auth{
			Mode:              AuthMode(v.GetString("AUTH_MODE")),
			JWTSecret:         v.GetString("AUTH_JWT_SECRET"),
			JWTIssuer:         v.GetString("AUTH_JWT_ISSUER"),
			TokenExpiry:       v.GetDuration("AUTH_TOKEN_EXPIRY"),
			BcryptCost:        v.GetInt("AUTH_BCRYPT_COST"),
			MinPasswordLength: v.GetInt("AUTH_MIN_PASSWORD_LENGTH"),
			MaxLoginAttempts:  v.GetInt("AUTH_MAX_LOGIN_ATTEMPTS"),
			RateLimitWindow:   v.GetDuration("AUTH_RATE_LIMIT_WINDOW"),
			LockoutDuration:   v.GetDuration("AUTH_LOCKOUT_DURATION"),
			ResetTokenExpiry:  v.GetDuration("AUTH_RESET_TOKEN_EXPIRY"),
			ResetURL:          v.GetString("AUTH_RESET_URL"),
		},
		SMTP: SMTP{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Audit: Audit{
			RetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
			Dir:           v.GetString("AUDIT_DIR"),
		},
		Maintenance: Maintenance{
			Enabled:  v.GetBool("MAINTENANCE_ENABLED"),
			Schedule: v.GetString("MAINTENANCE_SCHEDULE"),
		},
		CORS: CORS{
			AllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			AllowedMethods:   splitList(v.GetString("CORS_ALLOWED_METHODS")),
			AllowedHeaders:   splitList(v.GetString("CORS_ALLOWED_HEADERS")),
			AllowCredentials: v.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           v.GetDuration("CORS_MAX_AGE"),
		},
	}
}

// Validate reports configuration that would make the server misbehave.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.HTTP.Port))
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			errs = append(errs, errors.New("DATABASE_PATH is required for the sqlite driver"))
		}
	case DriverMySQL:
		if c.Database.DSN == "" {
			errs = append(errs, errors.New("DATABASE_DSN is required for the mysql driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be sqlite or mysql, got %q", c.Database.Driver))
	}

	switch c.Auth.Mode {
	case AuthModeNone:
	case AuthModeLocal:
		if len(c.Auth.JWTSecret) < MinJWTSecretLength {
			errs = append(errs, fmt.Errorf("AUTH_JWT_SECRET must be at least %d characters", MinJWTSecretLength))
		}
		if c.Auth.TokenExpiry <= 0 {
			errs = append(errs, errors.New("AUTH_TOKEN_EXPIRY must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("AUTH_MODE must be none or local, got %q", c.Auth.Mode))
	}

	if c.Tasks.Enabled && c.Tasks.Workers <= 0 {
		errs = append(errs, errors.New("TASK_WORKERS must be positive when tasks are enabled"))
	}

	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
