package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/database/users"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/email"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/logger"
	"github.com/langschool/contentapi/internal/services"
)

// BlockedUntil is the lockout end written by BlockUser. It marks a block
// that only an administrator lifts.
var BlockedUntil = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

var (
	ErrInvalidCredentials = apperr.Unauthorized("invalid_credentials", "invalid login or password")
	ErrInvalidToken       = apperr.Unauthorized("invalid_token", "missing, invalid or expired token")
	ErrAccountBlocked     = apperr.Forbidden("account_blocked", "account is blocked")
	ErrEmailTaken         = apperr.Conflict("email_taken", "email is already registered")
	ErrUserNameTaken      = apperr.Conflict("username_taken", "user name is already taken")
	ErrInvalidResetToken  = apperr.NewValidationError("token", "is invalid or expired")
	ErrWrongPassword      = apperr.NewValidationError("currentPassword", "is incorrect")
)

// Service handles registration, login, lockout and password recovery.
type Service struct {
	users     *users.Repository
	jwt       *JWTManager
	limiter   *RateLimiter
	mailer    email.Sender
	validator *services.Validator
	config    config.Auth
	now       func() time.Time
}

// NewService creates a new authentication service.
func NewService(repo *users.Repository, jwt *JWTManager, limiter *RateLimiter, mailer email.Sender, v *services.Validator, cfg config.Auth) *Service {
	return &Service{
		users:     repo,
		jwt:       jwt,
		limiter:   limiter,
		mailer:    mailer,
		validator: v,
		config:    cfg,
		now:       time.Now,
	}
}

// CreateUser validates and stores a new account.
func (s *Service) CreateUser(ctx context.Context, req dto.RegisterRequest, role entities.UserRole) (*entities.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if err := ValidatePassword("password", req.Password, s.config.MinPasswordLength); err != nil {
		return nil, err
	}

	taken, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}
	taken, err = s.users.UserNameExists(ctx, req.UserName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserNameTaken
	}

	hash, err := HashPassword(req.Password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Email:        req.Email,
		UserName:     strings.TrimSpace(req.UserName),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, apperr.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	logger.Info("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// RegisterUser creates a learner account and signs it in.
func (s *Service) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := s.CreateUser(ctx, req, entities.RoleLearner)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Login verifies credentials. Failed attempts count towards a temporary
// lockout; a per IP and login limiter throttles guessing across accounts.
func (s *Service) Login(ctx context.Context, clientIP string, req dto.LoginRequest) (*dto.AuthResponse, error) {
	login := strings.TrimSpace(req.Identifier())
	if login == "" {
		return nil, apperr.NewValidationError("login", "is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	key := strings.ToLower(login)
	if allowed, retryAfter := s.limiter.Allow(clientIP, key); !allowed {
		return nil, &apperr.RateLimitError{RetryAfter: retryAfter}
	}

	user, err := s.users.GetByLogin(ctx, login)
	if errors.Is(err, apperr.ErrNotFound) {
		s.limiter.RecordFailure(clientIP, key)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	if user.IsLockedOut(now) {
		logger.Warn("login rejected for blocked account", "user_id", user.ID)
		return nil, ErrAccountBlocked
	}

	if err := CheckPassword(req.Password, user.PasswordHash); err != nil {
		if !errors.Is(err, ErrInvalidPassword) {
			return nil, err
		}
		s.limiter.RecordFailure(clientIP, key)
		if err := s.recordFailedLogin(ctx, user, now); err != nil {
			return nil, err
		}
		return nil, ErrInvalidCredentials
	}

	s.limiter.RecordSuccess(clientIP, key)
	if err := s.users.RecordSuccessfulLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	logger.Info("user logged in", "user_id", user.ID)
	return s.issue(user)
}

// recordFailedLogin increments the failure counter and locks the account
// once the threshold is reached.
func (s *Service) recordFailedLogin(ctx context.Context, user *entities.User, now time.Time) error {
	count := user.AccessFailedCount + 1
	var lockoutEnd *time.Time
	if s.config.MaxLoginAttempts > 0 && count >= s.config.MaxLoginAttempts {
		until := now.Add(s.config.LockoutDuration)
		lockoutEnd = &until
		count = 0
		logger.Warn("account locked after failed logins", "user_id", user.ID, "until", until)
	}
	return s.users.RecordFailedLogin(ctx, user.ID, count, lockoutEnd)
}

func (s *Service) issue(user *entities.User) (*dto.AuthResponse, error) {
	token, expires, err := s.jwt.Generate(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expires,
		UserID:    user.ID,
		Email:     user.Email,
		UserName:  user.UserName,
		Role:      string(user.Role),
	}, nil
}

// Authenticate validates a bearer token and reloads its user, so role changes
// and blocks apply to tokens already issued.
func (s *Service) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		logger.Debug("token rejected", "error", err)
		return nil, ErrInvalidToken
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if user.IsLockedOut(s.now()) {
		return nil, ErrAccountBlocked
	}
	return user, nil
}

// BlockUser locks the account until an administrator unblocks it.
func (s *Service) BlockUser(ctx context.Context, userID uint) error {
	until := BlockedUntil
	return s.users.SetLockout(ctx, userID, &until)
}

// UnblockUser clears the lockout and the failure counter.
func (s *Service) UnblockUser(ctx context.Context, userID uint) error {
	return s.users.SetLockout(ctx, userID, nil)
}

// GeneratePasswordResetToken stores a fresh token for the account with that
// email. It returns a nil user and no error when no such account exists.
func (s *Service) GeneratePasswordResetToken(ctx context.Context, emailAddr string) (string, *entities.User, error) {
	user, err := s.users.GetByEmail(ctx, emailAddr)
	if errors.Is(err, apperr.ErrNotFound) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	plaintext, hash, err := GenerateResetToken()
	if err != nil {
		return "", nil, err
	}
	if err := s.users.CreateResetToken(ctx, &entities.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: s.now().Add(s.config.ResetTokenExpiry),
	}); err != nil {
		return "", nil, err
	}
	return plaintext, user, nil
}

// SendPasswordResetEmail mails a reset link. Unknown addresses are accepted
// silently so the endpoint cannot be used to probe for accounts.
func (s *Service) SendPasswordResetEmail(ctx context.Context, req dto.ForgotPasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	token, user, err := s.GeneratePasswordResetToken(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		logger.Info("password reset requested for unknown email")
		return nil
	}

	link, err := s.resetLink(token, user.Email)
	if err != nil {
		return err
	}
	msg := email.PasswordResetMessage(user.Email, user.UserName, link, s.config.ResetTokenExpiry)
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	logger.Info("password reset email queued", "user_id", user.ID)
	return nil
}

func (s *Service) resetLink(token, emailAddr string) (string, error) {
	u, err := url.Parse(s.config.ResetURL)
	if err != nil {
		return "", fmt.Errorf("parse reset url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	q.Set("email", emailAddr)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ResetPassword sets a new password using an emailed token. The token must be
// unused, unexpired and belong to the given email.
func (s *Service) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	if err := ValidatePassword("newPassword", req.NewPassword, s.config.MinPasswordLength); err != nil {
		return err
	}

	token, err := s.users.GetResetToken(ctx, HashToken(req.Token))
	if errors.Is(err, apperr.ErrNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return err
	}
	now := s.now()
	if !token.IsUsable(now) {
		return ErrInvalidResetToken
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, apperr.ErrNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return err
	}
	if user.ID != token.UserID {
		return ErrInvalidResetToken
	}

	hash, err := HashPassword(req.NewPassword, s.config.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.CompletePasswordReset(ctx, user.ID, hash, now); err != nil {
		return err
	}
	logger.Info("password reset completed", "user_id", user.ID)
	return nil
}

// ChangePassword updates the password of a signed-in user.
func (s *Service) ChangePassword(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	if err := ValidatePassword("newPassword", req.NewPassword, s.config.MinPasswordLength); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := CheckPassword(req.CurrentPassword, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return ErrWrongPassword
		}
		return err
	}

	hash, err := HashPassword(req.NewPassword, s.config.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePasswordHash(ctx, userID, hash)
}

// HasUsers returns true if any users exist in the database.
func (s *Service) HasUsers(ctx context.Context) (bool, error) {
	n, err := s.users.Count(ctx)
	return n > 0, err
}

// IsAuthEnabled returns true if authentication is required.
func (s *Service) IsAuthEnabled() bool {
	return s.config.Mode == config.AuthModeLocal
}
