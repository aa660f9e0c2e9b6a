// Package crud provides a generic GORM repository shared by every domain
// repository.
//
// # Usage
//
//	lessons := crud.NewRepository[entities.Lesson](db, "Lesson").
//		WithPreload("Words", "Phrases").
//		WithOrder("id ASC")
//	lesson, err := lessons.GetByID(ctx, 7) // apperr.ErrNotFound when missing
package crud

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/logger"
)

// Scope narrows a query, e.g. Where("lesson_id = ?", id).
type Scope = func(*gorm.DB) *gorm.DB

// Repository implements the common data access contract for one model.
type Repository[T any] struct {
	db       *gorm.DB
	entity   string
	preloads []string
	order    string
}

// NewRepository creates a repository; entity names the model in errors and logs.
func NewRepository[T any](db *gorm.DB, entity string) *Repository[T] {
	return &Repository[T]{db: db, entity: entity, order: "id ASC"}
}

// WithPreload eager-loads the named associations on GetByID and GetAll.
func (r *Repository[T]) WithPreload(associations ...string) *Repository[T] {
	r.preloads = append(r.preloads, associations...)
	return r
}

// WithOrder sets the default ordering for GetAll.
func (r *Repository[T]) WithOrder(order string) *Repository[T] {
	r.order = order
	return r
}

// WithTx returns a copy bound to tx, for use inside a transaction.
func (r *Repository[T]) WithTx(tx *gorm.DB) *Repository[T] {
	clone := *r
	clone.db = tx
	return &clone
}

// Entity returns the model name used in errors.
func (r *Repository[T]) Entity() string {
	return r.entity
}

// DB returns the context-bound handle for custom queries.
func (r *Repository[T]) DB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *Repository[T]) withPreloads(q *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		q = q.Preload(p, func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
	}
	return q
}

// GetByID returns the row with its configured associations.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	logger.Debug("repository get", "entity", r.entity, "id", id)

	var entity T
	if err := r.withPreloads(r.DB(ctx)).First(&entity, id).Error; err != nil {
		return nil, r.fail("get", id, err)
	}
	return &entity, nil
}

// GetAll returns every row matching scopes. No rows is an empty slice.
func (r *Repository[T]) GetAll(ctx context.Context, scopes ...Scope) ([]T, error) {
	logger.Debug("repository list", "entity", r.entity)

	entities := make([]T, 0)
	q := r.withPreloads(r.DB(ctx)).Scopes(scopes...)
	if r.order != "" {
		q = q.Order(r.order)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, r.fail("list", nil, err)
	}
	logger.Debug("repository list done", "entity", r.entity, "count", len(entities))
	return entities, nil
}

// ListBy returns the rows whose column equals value, typically a parent id.
func (r *Repository[T]) ListBy(ctx context.Context, column string, value any) ([]T, error) {
	return r.GetAll(ctx, Where(column+" = ?", value))
}

// Count returns the number of rows matching scopes.
func (r *Repository[T]) Count(ctx context.Context, scopes ...Scope) (int64, error) {
	var n int64
	var model T
	if err := r.DB(ctx).Model(&model).Scopes(scopes...).Count(&n).Error; err != nil {
		return 0, r.fail("count", nil, err)
	}
	return n, nil
}

// Exists reports whether a row with id is present.
func (r *Repository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	n, err := r.Count(ctx, Where("id = ?", id))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Add inserts entity; the generated id is written back into it.
func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	if err := r.DB(ctx).Create(entity).Error; err != nil {
		return r.fail("create", nil, err)
	}
	logger.Info("repository created", "entity", r.entity)
	return nil
}

// Update writes the scalar columns of an already loaded entity. Associations
// are left alone.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.DB(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		return r.fail("update", nil, err)
	}
	logger.Info("repository updated", "entity", r.entity)
	return nil
}

// Delete loads the row, removes it and returns what was removed. Dependent
// rows go with it through ON DELETE CASCADE.
func (r *Repository[T]) Delete(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.DB(ctx).First(&entity, id).Error; err != nil {
		return nil, r.fail("delete", id, err)
	}
	if err := r.DB(ctx).Delete(&entity).Error; err != nil {
		return nil, r.fail("delete", id, err)
	}
	logger.Info("repository deleted", "entity", r.entity, "id", id)
	return &entity, nil
}

func (r *Repository[T]) fail(op string, id any, err error) error {
	translated := TranslateError(r.entity, op, id, err)
	if errors.Is(translated, apperr.ErrNotFound) {
		logger.Debug("repository miss", "entity", r.entity, "op", op, "id", id)
	} else {
		logger.Error("repository failure", "entity", r.entity, "op", op, "id", id, "error", err)
	}
	return translated
}

// TranslateError maps driver and GORM errors onto apperr kinds.
func TranslateError(entity, op string, id any, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s %s: %w", op, entity, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict("duplicate", fmt.Sprintf("%s already exists", entity))
	case errors.Is(err, gorm.ErrForeignKeyViolated), isForeignKeyViolation(err):
		if op == "delete" {
			return apperr.Conflict("in_use", fmt.Sprintf("%s %v is still referenced", entity, id))
		}
		return apperr.Conflict("invalid_reference", fmt.Sprintf("%s references a missing parent", entity))
	case isCheckViolation(err):
		return apperr.NewValidationError(strings.ToLower(entity), "value violates a check constraint")
	}
	return apperr.Repository(op+" "+entity, err)
}

func isForeignKeyViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

func isCheckViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "check constraint")
}

// Where builds a Scope from a condition.
func Where(query any, args ...any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

// Paginate limits results; non-positive limit means no limit.
func Paginate(limit, offset int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}
