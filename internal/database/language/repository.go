// Package language provides database operations for parts of speech and
// function words.
package language

import (
	"context"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
)

type Repository struct {
	PartsOfSpeech *crud.Repository[entities.PartOfSpeech]
	FunctionWords *crud.Repository[entities.FunctionWord]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		PartsOfSpeech: crud.NewRepository[entities.PartOfSpeech](db, "PartOfSpeech").WithPreload("FunctionWords"),
		FunctionWords: crud.NewRepository[entities.FunctionWord](db, "FunctionWord"),
	}
}

func (r *Repository) WordsForPartOfSpeech(ctx context.Context, posID uint) ([]entities.FunctionWord, error) {
	return r.FunctionWords.ListBy(ctx, "part_of_speech_id", posID)
}
