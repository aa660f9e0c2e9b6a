// Package mainquestions provides database operations for main questions
// and their vocabulary.
package mainquestions

import (
	"context"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
)

type Repository struct {
	Questions *crud.Repository[entities.MainQuestion]
	Words     *crud.Repository[entities.MainQuestionWord]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Questions: crud.NewRepository[entities.MainQuestion](db, "MainQuestion").WithPreload("Words"),
		Words:     crud.NewRepository[entities.MainQuestionWord](db, "MainQuestionWord"),
	}
}

func (r *Repository) WordsForQuestion(ctx context.Context, questionID uint) ([]entities.MainQuestionWord, error) {
	return r.Words.ListBy(ctx, "main_question_id", questionID)
}
