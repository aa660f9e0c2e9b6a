package entities

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleEditor  UserRole = "editor"
	RoleLearner UserRole = "learner"
)

// User is an account. It is blocked while LockoutEnd lies in the future.
type User struct {
	ID                uint     `gorm:"primaryKey"`
	Email             string   `gorm:"size:255;not null;uniqueIndex"`
	UserName          string   `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash      string   `gorm:"size:255;not null"`
	FirstName         string   `gorm:"size:100"`
	LastName          string   `gorm:"size:100"`
	Location          string   `gorm:"size:200"`
	Interests         string   `gorm:"size:1000"`
	Role              UserRole `gorm:"size:20;not null;default:learner;check:chk_users_role,role IN ('admin','editor','learner')"`
	LockoutEnd        *time.Time
	AccessFailedCount int `gorm:"not null;default:0"`
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Progress     []UserProgress       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	WordProgress []UserWordProgress   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ResetTokens  []PasswordResetToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// IsLockedOut reports whether the lockout timestamp is still in the future.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanEditContent reports whether the user may mutate course content.
func (u *User) CanEditContent() bool {
	return u.Role == RoleAdmin || u.Role == RoleEditor
}

// PasswordResetToken stores only the SHA-256 of the emailed token.
type PasswordResetToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	TokenHash string `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

func (t *PasswordResetToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
