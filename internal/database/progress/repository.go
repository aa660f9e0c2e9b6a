// Package progress provides database operations for learner progress on
// lessons, quizzes and individual words.
package progress

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
)

type Repository struct {
	db           *gorm.DB
	Progress     *crud.Repository[entities.UserProgress]
	WordProgress *crud.Repository[entities.UserWordProgress]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		Progress:     crud.NewRepository[entities.UserProgress](db, "UserProgress").WithOrder("updated_at DESC"),
		WordProgress: crud.NewRepository[entities.UserWordProgress](db, "UserWordProgress").WithOrder("lesson_word_id ASC"),
	}
}

func (r *Repository) ProgressForUser(ctx context.Context, userID uint) ([]entities.UserProgress, error) {
	return r.Progress.ListBy(ctx, "user_id", userID)
}

func (r *Repository) WordProgressForUser(ctx context.Context, userID uint) ([]entities.UserWordProgress, error) {
	return r.WordProgress.ListBy(ctx, "user_id", userID)
}

// RecordWordAnswer creates or bumps the (user, word) counter row.
func (r *Repository) RecordWordAnswer(ctx context.Context, userID, wordID uint, correct bool, at time.Time) (*entities.UserWordProgress, error) {
	var row entities.UserWordProgress
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND lesson_word_id = ?", userID, wordID).First(&row).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = entities.UserWordProgress{UserID: userID, LessonWordID: wordID}
		}
		row.Attempts++
		if correct {
			row.CorrectAttempts++
		}
		row.LastCorrect = correct
		row.LastAnsweredAt = &at
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, crud.TranslateError("UserWordProgress", "record", wordID, err)
	}
	return &row, nil
}
