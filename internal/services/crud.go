package services

import (
	"context"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/logger"
)

// Parent names a parent table whose row must exist before a child is
// written or listed.
type Parent struct {
	Entity string
	Exists func(ctx context.Context, id uint) (bool, error)
}

// ParentOf builds a Parent from a repository.
func ParentOf[T any](repo *crud.Repository[T]) Parent {
	return Parent{Entity: repo.Entity(), Exists: repo.Exists}
}

// Require returns apperr.ErrNotFound naming the parent when id is absent.
func (p Parent) Require(ctx context.Context, id uint) error {
	ok, err := p.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(p.Entity, id)
	}
	return nil
}

// ParentLink ties a Parent to the request fields carrying its id.
type ParentLink[C, U any] struct {
	Parent
	FromCreate func(C) uint
	FromUpdate func(U) *uint
}

// CRUDConfig wires a CRUD service for entity E, create request C, update
// request U and response R.
type CRUDConfig[E, C, U, R any] struct {
	Repo       *crud.Repository[E]
	Validator  *Validator
	New        func(C) E
	Apply      func(U, *E)
	ToResponse func(*E) R
	Parents    []ParentLink[C, U]
	// Insert replaces Repo.Add, e.g. for a transactional duplicate check.
	Insert func(context.Context, *E) error
	// Save replaces Repo.Update in the same way.
	Save func(context.Context, *E) error
}

// CRUD implements validate, parent check, map, persist and map back for one
// entity.
type CRUD[E, C, U, R any] struct {
	cfg CRUDConfig[E, C, U, R]
}

func NewCRUD[E, C, U, R any](cfg CRUDConfig[E, C, U, R]) *CRUD[E, C, U, R] {
	if cfg.Insert == nil {
		cfg.Insert = cfg.Repo.Add
	}
	if cfg.Save == nil {
		cfg.Save = cfg.Repo.Update
	}
	return &CRUD[E, C, U, R]{cfg: cfg}
}

// Name is the entity name used in logs, errors and audit entries.
func (s *CRUD[E, C, U, R]) Name() string {
	return s.cfg.Repo.Entity()
}

func (s *CRUD[E, C, U, R]) List(ctx context.Context) ([]R, error) {
	items, err := s.cfg.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapAll(items), nil
}

// ListBy lists the children of parentID, 404 when the parent is missing.
func (s *CRUD[E, C, U, R]) ListBy(ctx context.Context, parent Parent, column string, parentID uint) ([]R, error) {
	if err := parent.Require(ctx, parentID); err != nil {
		return nil, err
	}
	items, err := s.cfg.Repo.ListBy(ctx, column, parentID)
	if err != nil {
		return nil, err
	}
	return s.mapAll(items), nil
}

func (s *CRUD[E, C, U, R]) Get(ctx context.Context, id uint) (*R, error) {
	e, err := s.cfg.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r := s.cfg.ToResponse(e)
	return &r, nil
}

func (s *CRUD[E, C, U, R]) Create(ctx context.Context, req C) (*R, error) {
	logger.Debug("service create", "entity", s.Name())

	if err := s.cfg.Validator.Struct(req); err != nil {
		return nil, err
	}
	for _, p := range s.cfg.Parents {
		if err := p.Require(ctx, p.FromCreate(req)); err != nil {
			return nil, err
		}
	}

	entity := s.cfg.New(req)
	if err := s.cfg.Insert(ctx, &entity); err != nil {
		return nil, err
	}
	return s.reload(ctx, &entity)
}

func (s *CRUD[E, C, U, R]) Update(ctx context.Context, id uint, req U) (*R, error) {
	logger.Debug("service update", "entity", s.Name(), "id", id)

	if err := s.cfg.Validator.Struct(req); err != nil {
		return nil, err
	}
	for _, p := range s.cfg.Parents {
		if p.FromUpdate == nil {
			continue
		}
		if pid := p.FromUpdate(req); pid != nil {
			if err := p.Require(ctx, *pid); err != nil {
				return nil, err
			}
		}
	}

	entity, err := s.cfg.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cfg.Apply(req, entity)
	if err := s.cfg.Save(ctx, entity); err != nil {
		return nil, err
	}
	return s.reload(ctx, entity)
}

// Delete removes the row and returns its last state.
func (s *CRUD[E, C, U, R]) Delete(ctx context.Context, id uint) (*R, error) {
	logger.Debug("service delete", "entity", s.Name(), "id", id)

	removed, err := s.cfg.Repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	r := s.cfg.ToResponse(removed)
	return &r, nil
}

// reload re-reads the row so responses include defaults and associations.
func (s *CRUD[E, C, U, R]) reload(ctx context.Context, entity *E) (*R, error) {
	id, ok := IDOf(entity)
	if !ok {
		r := s.cfg.ToResponse(entity)
		return &r, nil
	}
	return s.Get(ctx, id)
}

func (s *CRUD[E, C, U, R]) mapAll(items []E) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, s.cfg.ToResponse(&items[i]))
	}
	return out
}
