// Package lessons provides database operations for lessons and their words
// and phrases.
package lessons

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/logger"
)

// Repository handles lesson, lesson word and lesson phrase persistence.
type Repository struct {
	db      *gorm.DB
	Lessons *crud.Repository[entities.Lesson]
	Words   *crud.Repository[entities.LessonWord]
	Phrases *crud.Repository[entities.LessonPhrase]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:      db,
		Lessons: crud.NewRepository[entities.Lesson](db, "Lesson").WithPreload("Words", "Phrases", "Quizzes"),
		Words:   crud.NewRepository[entities.LessonWord](db, "LessonWord"),
		Phrases: crud.NewRepository[entities.LessonPhrase](db, "LessonPhrase"),
	}
}

func (r *Repository) WordsForLesson(ctx context.Context, lessonID uint) ([]entities.LessonWord, error) {
	return r.Words.ListBy(ctx, "lesson_id", lessonID)
}

func (r *Repository) PhrasesForLesson(ctx context.Context, lessonID uint) ([]entities.LessonPhrase, error) {
	return r.Phrases.ListBy(ctx, "lesson_id", lessonID)
}

// AddPhrase inserts a phrase unless an identical one (same lesson, text,
// translation and image) already exists. Check and insert share a transaction.
func (r *Repository) AddPhrase(ctx context.Context, phrase *entities.LessonPhrase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := rejectDuplicatePhrase(tx, phrase, "create"); err != nil {
			return err
		}
		return r.Phrases.WithTx(tx).Add(ctx, phrase)
	})
}

// UpdatePhrase saves an edited phrase unless the edit makes it identical to
// another phrase of its lesson.
func (r *Repository) UpdatePhrase(ctx context.Context, phrase *entities.LessonPhrase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := rejectDuplicatePhrase(tx, phrase, "update"); err != nil {
			return err
		}
		return r.Phrases.WithTx(tx).Update(ctx, phrase)
	})
}

func rejectDuplicatePhrase(tx *gorm.DB, phrase *entities.LessonPhrase, op string) error {
	q := tx.Model(&entities.LessonPhrase{}).
		Where("lesson_id = ? AND phrase_text = ? AND translation = ? AND image_url = ?",
			phrase.LessonID, phrase.PhraseText, phrase.Translation, phrase.ImageURL)
	if phrase.ID != 0 {
		q = q.Where("id <> ?", phrase.ID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return crud.TranslateError("LessonPhrase", op, nil, err)
	}
	if n > 0 {
		logger.Info("duplicate lesson phrase rejected", "lesson_id", phrase.LessonID, "op", op)
		return apperr.Conflict("duplicate_phrase", "an identical phrase already exists in this lesson")
	}
	return nil
}

// AddWords bulk-inserts words into a lesson, skipping words the lesson
// already has (case-insensitive). Returns how many were created and skipped.
func (r *Repository) AddWords(ctx context.Context, lessonID uint, words []entities.LessonWord) (created, skipped int, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(&entities.LessonWord{}).Where("lesson_id = ?", lessonID).
			Pluck("word", &existing).Error; err != nil {
			return crud.TranslateError("LessonWord", "import", lessonID, err)
		}
		seen := make(map[string]bool, len(existing)+len(words))
		for _, w := range existing {
			seen[strings.ToLower(strings.TrimSpace(w))] = true
		}

		var batch []entities.LessonWord
		for _, w := range words {
			key := strings.ToLower(strings.TrimSpace(w.Word))
			if seen[key] {
				skipped++
				continue
			}
			seen[key] = true
			w.LessonID = lessonID
			batch = append(batch, w)
		}
		if len(batch) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&batch, 100).Error; err != nil {
			return crud.TranslateError("LessonWord", "import", lessonID, err)
		}
		created = len(batch)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	logger.Info("lesson words imported", "lesson_id", lessonID, "created", created, "skipped", skipped)
	return created, skipped, nil
}
