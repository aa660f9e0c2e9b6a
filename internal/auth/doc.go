// Package auth provides authentication and authorization for the API.
//
// It supports two authentication modes:
//   - "none": No authentication, every request acts as an administrator with
//     user id 0. Meant for local development only.
//   - "local": Accounts in the users table, HS256 JWT bearer tokens.
//
// # Configuration
//
//	AUTH_MODE=local
//	AUTH_JWT_SECRET=<at least 32 characters>
//	AUTH_TOKEN_EXPIRY=24h
//	AUTH_BCRYPT_COST=12
//	AUTH_MAX_LOGIN_ATTEMPTS=5
//	AUTH_LOCKOUT_DURATION=30m
//	AUTH_RESET_TOKEN_EXPIRY=1h
//	AUTH_RESET_URL=https://admin.example.com/reset-password
//
// # Blocking
//
// An account is blocked while its lockout end lies in the future. Repeated
// failed logins set a short lockout; BlockUser sets one that never expires.
// The middleware reloads the user on every request, so blocking takes
// effect immediately even for tokens that are still valid.
//
// # Usage
//
//	authService := auth.NewService(userRepo, jwt, limiter, mailer, validator, cfg.Auth)
//	mw := auth.NewMiddleware(authService, cfg.Auth)
//	api := router.Group("/api", mw.Handler())
//	api.DELETE("/users/:id", mw.RequireRole(entities.RoleAdmin), handler)
//
// Extract the caller in handlers:
//
//	userID := auth.GetUserID(c)
package auth
