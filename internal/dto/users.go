package dto

import (
	"strings"
	"time"

	"github.com/langschool/contentapi/internal/entities"
)

type UserResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	UserName    string     `json:"userName"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	FullName    string     `json:"fullName"`
	Location    string     `json:"location"`
	Interests   string     `json:"interests"`
	Role        string     `json:"role"`
	IsBlocked   bool       `json:"isBlocked"`
	LockoutEnd  *time.Time `json:"lockoutEnd,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// UserFromEntity maps a user; now decides whether the lockout is active.
func UserFromEntity(e *entities.User, now time.Time) UserResponse {
	blocked := e.IsLockedOut(now)
	var lockoutEnd *time.Time
	if blocked {
		lockoutEnd = timePtr(e.LockoutEnd)
	}
	return UserResponse{
		ID:          e.ID,
		Email:       e.Email,
		UserName:    e.UserName,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		FullName:    strings.TrimSpace(e.FirstName + " " + e.LastName),
		Location:    e.Location,
		Interests:   e.Interests,
		Role:        string(e.Role),
		IsBlocked:   blocked,
		LockoutEnd:  lockoutEnd,
		LastLoginAt: timePtr(e.LastLoginAt),
		CreatedAt:   e.CreatedAt,
	}
}

// UpdateProfileRequest is what a user may change about themselves.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	Location  *string `json:"location" validate:"omitempty,max=200"`
	Interests *string `json:"interests" validate:"omitempty,max=1000"`
}

// UpdateUserRequest is the admin form, which may also change the role.
type UpdateUserRequest struct {
	UpdateProfileRequest
	Role *string `json:"role" validate:"omitempty,oneof=admin editor learner"`
}

func ApplyProfileUpdate(r UpdateProfileRequest, e *entities.User) {
	set(&e.FirstName, r.FirstName)
	set(&e.LastName, r.LastName)
	set(&e.Location, r.Location)
	set(&e.Interests, r.Interests)
}

func ApplyUserUpdate(r UpdateUserRequest, e *entities.User) {
	ApplyProfileUpdate(r.UpdateProfileRequest, e)
	if r.Role != nil {
		e.Role = entities.UserRole(*r.Role)
	}
}
