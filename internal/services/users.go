package services

import (
	"context"
	"time"

	"github.com/langschool/contentapi/internal/database/users"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/logger"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// UserService exposes account profiles. Credentials and lockout live in the
// auth package.
type UserService struct {
	repo      *users.Repository
	validator *Validator
	now       func() time.Time
}

func NewUserService(repo *users.Repository, v *Validator) *UserService {
	return &UserService{repo: repo, validator: v, now: time.Now}
}

// NormalizePage clamps limit and offset to sane values.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *UserService) List(ctx context.Context, limit, offset int) (dto.Page[dto.UserResponse], error) {
	limit, offset = NormalizePage(limit, offset)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return dto.Page[dto.UserResponse]{}, err
	}
	rows, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return dto.Page[dto.UserResponse]{}, err
	}

	now := s.now()
	out := make([]dto.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.UserFromEntity(&rows[i], now))
	}
	return dto.NewPage(out, total, limit, offset), nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r := dto.UserFromEntity(u, s.now())
	return &r, nil
}

// Update is the administrator edit, which may change the role.
func (s *UserService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto.ApplyUserUpdate(req, u)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	logger.Info("user updated", "user_id", id)
	r := dto.UserFromEntity(u, s.now())
	return &r, nil
}

// UpdateProfile changes the caller's own profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto.ApplyProfileUpdate(req, u)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	r := dto.UserFromEntity(u, s.now())
	return &r, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Info("user deleted", "user_id", id)
	r := dto.UserFromEntity(u, s.now())
	return &r, nil
}
