// Package names provides database operations for English name groups and
// the male and female names in them.
package names

import (
	"context"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
)

type Repository struct {
	Groups      *crud.Repository[entities.EnglishName]
	MaleNames   *crud.Repository[entities.MaleName]
	FemaleNames *crud.Repository[entities.FemaleName]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Groups:      crud.NewRepository[entities.EnglishName](db, "EnglishName").WithPreload("MaleNames", "FemaleNames"),
		MaleNames:   crud.NewRepository[entities.MaleName](db, "MaleName").WithOrder("name ASC"),
		FemaleNames: crud.NewRepository[entities.FemaleName](db, "FemaleName").WithOrder("name ASC"),
	}
}

func (r *Repository) MaleNamesFor(ctx context.Context, groupID uint) ([]entities.MaleName, error) {
	return r.MaleNames.ListBy(ctx, "english_name_id", groupID)
}

func (r *Repository) FemaleNamesFor(ctx context.Context, groupID uint) ([]entities.FemaleName, error) {
	return r.FemaleNames.ListBy(ctx, "english_name_id", groupID)
}
