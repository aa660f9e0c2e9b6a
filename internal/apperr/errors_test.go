package apperr

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundWrapsSentinel(t *testing.T) {
	err := fmt.Errorf("loading lesson: %w", NotFound("Lesson", 42))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Lesson with id 42 not found")
	assert.Equal(t, "not_found", Code(err, "x"))
}

func TestValidationErrorUnwrapsToSentinel(t *testing.T) {
	err := NewValidationErrors([]FieldError{
		{Field: "title", Message: "is required"},
		{Field: "type", Message: "must be one of"},
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation: 2 errors (title, type)", err.Error())

	var ve *ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &ve))
	assert.Len(t, ve.Errors, 2)
}

func TestRepositoryKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Repository("insert Lesson", cause)

	assert.ErrorIs(t, err, ErrRepository)
	assert.ErrorIs(t, err, cause)
}

func TestCodeFallback(t *testing.T) {
	assert.Equal(t, "internal", Code(errors.New("boom"), "internal"))
	assert.Equal(t, "duplicate_phrase", Code(Conflict("duplicate_phrase", "exists"), "internal"))
}

func TestRateLimitError(t *testing.T) {
	err := fmt.Errorf("login: %w", &RateLimitError{RetryAfter: 90 * time.Second})

	assert.ErrorIs(t, err, ErrRateLimited)
	var rl *RateLimitError
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 90*time.Second, rl.RetryAfter)
}
