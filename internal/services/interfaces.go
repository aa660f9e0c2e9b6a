package services

import (
	"context"

	"github.com/langschool/contentapi/internal/entities"
)

// WordStore persists imported lesson words.
// Implemented by lessons.Repository.
type WordStore interface {
	AddWords(ctx context.Context, lessonID uint, words []entities.LessonWord) (created, skipped int, err error)
}
