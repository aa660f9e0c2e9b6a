// Package pronunciation provides database operations for pronunciation
// categories and their word items.
package pronunciation

import (
	"context"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
)

type Repository struct {
	Categories *crud.Repository[entities.PronunciationCategory]
	Words      *crud.Repository[entities.WordItem]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Categories: crud.NewRepository[entities.PronunciationCategory](db, "PronunciationCategory").WithPreload("Words"),
		Words:      crud.NewRepository[entities.WordItem](db, "WordItem"),
	}
}

func (r *Repository) WordsForCategory(ctx context.Context, categoryID uint) ([]entities.WordItem, error) {
	return r.Words.ListBy(ctx, "category_id", categoryID)
}
