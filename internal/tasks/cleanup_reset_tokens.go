package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/langschool/contentapi/internal/logger"
)

// ResetTokenCleaner deletes password reset tokens that expired or were used
// before cutoff.
type ResetTokenCleaner interface {
	DeleteStaleResetTokens(ctx context.Context, cutoff time.Time) (int64, error)
}

// CleanupResetTokensTask purges spent password reset tokens. Tokens are kept
// for Grace after they stop being usable.
type CleanupResetTokensTask struct {
	Grace time.Duration `json:"grace"`
}

func (t CleanupResetTokensTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_reset_tokens",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration: 24 * time.Hour,
			Data:     &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func CleanupResetTokensProcessor(cleaner ResetTokenCleaner, now func() time.Time) backlite.QueueProcessor[CleanupResetTokensTask] {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context, task CleanupResetTokensTask) error {
		if cleaner == nil {
			return errors.New("reset token cleaner not configured")
		}

		deleted, err := cleaner.DeleteStaleResetTokens(ctx, now().Add(-task.Grace))
		if err != nil {
			return fmt.Errorf("cleanup reset tokens: %w", err)
		}

		logger.Info("cleaned up password reset tokens", "deleted", deleted)
		return nil
	}
}

func NewCleanupResetTokensQueue(cleaner ResetTokenCleaner) backlite.Queue {
	return backlite.NewQueue(CleanupResetTokensProcessor(cleaner, nil))
}
