package dto

import "time"

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	UserName  string `json:"userName" validate:"required,min=3,max=50,username"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
}

// LoginRequest accepts the login in any of the three fields.
type LoginRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Password string `json:"password" validate:"required"`
}

// Identifier returns the first non-empty login field.
func (r LoginRequest) Identifier() string {
	for _, v := range []string{r.Login, r.Email, r.UserName} {
		if v != "" {
			return v
		}
	}
	return ""
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    uint      `json:"userId"`
	Email     string    `json:"email"`
	UserName  string    `json:"userName"`
	Role      string    `json:"role"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// MessageResponse is returned by endpoints that have nothing else to say.
type MessageResponse struct {
	Message string `json:"message"`
}
