package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langschool/contentapi/internal/apperr"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid password", password: "validpassword123"},
		{name: "empty password", password: "", wantErr: ErrPasswordTooShort},
		{name: "password too long", password: strings.Repeat("a", 73), wantErr: ErrPasswordTooLong},
		{name: "password at maximum length", password: strings.Repeat("a", 72)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, 4)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
		})
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("testpassword123", 4)
	require.NoError(t, err)

	assert.NoError(t, CheckPassword("testpassword123", hash))
	assert.ErrorIs(t, CheckPassword("wrongpassword", hash), ErrInvalidPassword)
	assert.Error(t, CheckPassword("testpassword123", "not-a-bcrypt-hash"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("password", "12345678", 8))

	err := ValidatePassword("newPassword", "short", 8)
	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "newPassword", verr.Errors[0].Field)
	assert.Contains(t, verr.Errors[0].Message, "at least 8")

	assert.ErrorIs(t, ValidatePassword("password", strings.Repeat("x", 80), 8), apperr.ErrValidation)
}

func TestGenerateResetToken(t *testing.T) {
	plain, hash, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, hash, 64)
	assert.Equal(t, HashToken(plain), hash)
	assert.NotContains(t, plain, "+")
	assert.NotContains(t, plain, "/")

	other, _, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, plain, other)
}
