// Package users provides database operations for accounts, lockout state and
// password reset tokens.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByLogin(ctx, "alice@example.com")
package users

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/logger"
)

// Repository handles all user database operations.
type Repository struct {
	db    *gorm.DB
	Users *crud.Repository[entities.User]
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:    db,
		Users: crud.NewRepository[entities.User](db, "User"),
	}
}

// NormalizeEmail lower-cases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores a new user. Email and user name must be unique.
func (r *Repository) Create(ctx context.Context, user *entities.User) error {
	user.Email = NormalizeEmail(user.Email)
	return r.Users.Add(ctx, user)
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	return r.Users.GetByID(ctx, id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.first(ctx, "email = ?", NormalizeEmail(email))
}

func (r *Repository) GetByUserName(ctx context.Context, userName string) (*entities.User, error) {
	return r.first(ctx, "user_name = ?", strings.TrimSpace(userName))
}

// GetByLogin accepts either an email address or a user name.
func (r *Repository) GetByLogin(ctx context.Context, login string) (*entities.User, error) {
	if strings.Contains(login, "@") {
		return r.GetByEmail(ctx, login)
	}
	return r.GetByUserName(ctx, login)
}

func (r *Repository) first(ctx context.Context, query string, arg any) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		return nil, crud.TranslateError("User", "get", arg, err)
	}
	return &user, nil
}

func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	n, err := r.Users.Count(ctx, crud.Where("email = ?", NormalizeEmail(email)))
	return n > 0, err
}

func (r *Repository) UserNameExists(ctx context.Context, userName string) (bool, error) {
	n, err := r.Users.Count(ctx, crud.Where("user_name = ?", strings.TrimSpace(userName)))
	return n > 0, err
}

// Count returns the total number of users.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.Users.Count(ctx)
}

// List returns users ordered by id.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]entities.User, error) {
	return r.Users.GetAll(ctx, crud.Paginate(limit, offset))
}

func (r *Repository) Update(ctx context.Context, user *entities.User) error {
	return r.Users.Update(ctx, user)
}

func (r *Repository) Delete(ctx context.Context, id uint) (*entities.User, error) {
	return r.Users.Delete(ctx, id)
}

func (r *Repository) updateColumns(ctx context.Context, op string, userID uint, values map[string]any) error {
	result := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", userID).Updates(values)
	if result.Error != nil {
		return crud.TranslateError("User", op, userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return crud.TranslateError("User", op, userID, gorm.ErrRecordNotFound)
	}
	return nil
}

// SetLockout sets or clears (nil) the lockout end and resets the failure counter.
func (r *Repository) SetLockout(ctx context.Context, userID uint, until *time.Time) error {
	err := r.updateColumns(ctx, "lockout", userID, map[string]any{
		"lockout_end":         until,
		"access_failed_count": 0,
	})
	if err == nil {
		logger.Info("user lockout changed", "user_id", userID, "blocked", until != nil)
	}
	return err
}

// RecordFailedLogin stores the failure counter and, when the threshold was
// reached, the lockout end.
func (r *Repository) RecordFailedLogin(ctx context.Context, userID uint, failedCount int, lockoutEnd *time.Time) error {
	values := map[string]any{"access_failed_count": failedCount}
	if lockoutEnd != nil {
		values["lockout_end"] = lockoutEnd
	}
	return r.updateColumns(ctx, "failed_login", userID, values)
}

// RecordSuccessfulLogin resets the failure counter and stamps the login time.
func (r *Repository) RecordSuccessfulLogin(ctx context.Context, userID uint, at time.Time) error {
	return r.updateColumns(ctx, "login", userID, map[string]any{
		"access_failed_count": 0,
		"last_login_at":       at,
	})
}

func (r *Repository) UpdatePasswordHash(ctx context.Context, userID uint, hash string) error {
	return r.updateColumns(ctx, "password", userID, map[string]any{"password_hash": hash})
}

// CreateResetToken stores a new reset token hash.
func (r *Repository) CreateResetToken(ctx context.Context, token *entities.PasswordResetToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return crud.TranslateError("PasswordResetToken", "create", nil, err)
	}
	return nil
}

// GetResetToken looks a token up by its hash.
func (r *Repository) GetResetToken(ctx context.Context, tokenHash string) (*entities.PasswordResetToken, error) {
	var token entities.PasswordResetToken
	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&token).Error; err != nil {
		return nil, crud.TranslateError("PasswordResetToken", "get", "(hash)", err)
	}
	return &token, nil
}

// CompletePasswordReset sets the new hash, clears any lockout and burns every
// outstanding reset token of the user, atomically.
func (r *Repository) CompletePasswordReset(ctx context.Context, userID uint, newHash string, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.User{}).Where("id = ?", userID).Updates(map[string]any{
			"password_hash":       newHash,
			"lockout_end":         nil,
			"access_failed_count": 0,
		})
		if result.Error != nil {
			return crud.TranslateError("User", "reset_password", userID, result.Error)
		}
		if result.RowsAffected == 0 {
			return crud.TranslateError("User", "reset_password", userID, gorm.ErrRecordNotFound)
		}
		err := tx.Model(&entities.PasswordResetToken{}).
			Where("user_id = ? AND used_at IS NULL", userID).
			Update("used_at", at).Error
		if err != nil {
			return crud.TranslateError("PasswordResetToken", "use", userID, err)
		}
		return nil
	})
}

// DeleteStaleResetTokens removes tokens that expired or were used before cutoff.
func (r *Repository) DeleteStaleResetTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ? OR (used_at IS NOT NULL AND used_at < ?)", cutoff, cutoff).
		Delete(&entities.PasswordResetToken{})
	if result.Error != nil {
		return 0, crud.TranslateError("PasswordResetToken", "cleanup", nil, result.Error)
	}
	return result.RowsAffected, nil
}
