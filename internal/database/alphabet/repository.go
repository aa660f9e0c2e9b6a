// Package alphabet provides database operations for alphabet letters and the
// noun words illustrating them.
package alphabet

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
)

type Repository struct {
	db        *gorm.DB
	Letters   *crud.Repository[entities.AlphabetLetter]
	NounWords *crud.Repository[entities.NounWord]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:        db,
		Letters:   crud.NewRepository[entities.AlphabetLetter](db, "AlphabetLetter").WithPreload("NounWords").WithOrder("letter ASC"),
		NounWords: crud.NewRepository[entities.NounWord](db, "NounWord").WithOrder("word ASC"),
	}
}

// LetterByValue finds a letter regardless of the case it is asked in.
func (r *Repository) LetterByValue(ctx context.Context, letter string) (*entities.AlphabetLetter, error) {
	var l entities.AlphabetLetter
	err := r.db.WithContext(ctx).Where("letter = ?", strings.ToUpper(letter)).First(&l).Error
	if err != nil {
		return nil, crud.TranslateError("AlphabetLetter", "get", letter, err)
	}
	return &l, nil
}

func (r *Repository) NounsForLetter(ctx context.Context, letterID uint) ([]entities.NounWord, error) {
	return r.NounWords.ListBy(ctx, "alphabet_letter_id", letterID)
}
