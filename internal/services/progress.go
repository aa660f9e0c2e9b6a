package services

import (
	"context"
	"time"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/database/lessons"
	"github.com/langschool/contentapi/internal/database/progress"
	"github.com/langschool/contentapi/internal/database/quizzes"
	"github.com/langschool/contentapi/internal/database/users"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/entities"
)

// ProgressService records learner results. Learners see and write only their
// own rows; administrators may act for anyone.
type ProgressService struct {
	repo      *progress.Repository
	validator *Validator
	now       func() time.Time

	user   Parent
	lesson Parent
	quiz   Parent
	word   Parent
}

func NewProgressService(repo *progress.Repository, usersRepo *users.Repository, lessonsRepo *lessons.Repository, quizzesRepo *quizzes.Repository, v *Validator) *ProgressService {
	return &ProgressService{
		repo:      repo,
		validator: v,
		now:       time.Now,
		user:      ParentOf(usersRepo.Users),
		lesson:    ParentOf(lessonsRepo.Lessons),
		quiz:      ParentOf(quizzesRepo.Quizzes),
		word:      ParentOf(lessonsRepo.Words),
	}
}

func (s *ProgressService) Record(ctx context.Context, actor Actor, req dto.CreateUserProgressRequest) (*dto.UserProgressResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	userID, err := actor.resolveUser(req.UserID)
	if err != nil {
		return nil, err
	}
	req.UserID = userID

	if err := s.user.Require(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.lesson.Require(ctx, req.LessonID); err != nil {
		return nil, err
	}
	if req.QuizID != nil {
		if err := s.quiz.Require(ctx, *req.QuizID); err != nil {
			return nil, err
		}
	}

	row := dto.NewUserProgress(req, s.now())
	if err := s.repo.Progress.Add(ctx, &row); err != nil {
		return nil, err
	}
	r := dto.UserProgressFromEntity(&row)
	return &r, nil
}

func (s *ProgressService) Get(ctx context.Context, actor Actor, id uint) (*dto.UserProgressResponse, error) {
	row, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	r := dto.UserProgressFromEntity(row)
	return &r, nil
}

func (s *ProgressService) Delete(ctx context.Context, actor Actor, id uint) (*dto.UserProgressResponse, error) {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return nil, err
	}
	row, err := s.repo.Progress.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	r := dto.UserProgressFromEntity(row)
	return &r, nil
}

func (s *ProgressService) ForUser(ctx context.Context, actor Actor, userID uint) ([]dto.UserProgressResponse, error) {
	userID, err := actor.resolveUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.user.Require(ctx, userID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ProgressForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserProgressResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.UserProgressFromEntity(&rows[i]))
	}
	return out, nil
}

// RecordWordAnswer bumps the attempt counters for one vocabulary word.
func (s *ProgressService) RecordWordAnswer(ctx context.Context, actor Actor, req dto.RecordWordAnswerRequest) (*dto.UserWordProgressResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	userID, err := actor.resolveUser(req.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.user.Require(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.word.Require(ctx, req.LessonWordID); err != nil {
		return nil, err
	}

	row, err := s.repo.RecordWordAnswer(ctx, userID, req.LessonWordID, req.IsCorrect, s.now())
	if err != nil {
		return nil, err
	}
	r := dto.UserWordProgressFromEntity(row)
	return &r, nil
}

func (s *ProgressService) WordsForUser(ctx context.Context, actor Actor, userID uint) ([]dto.UserWordProgressResponse, error) {
	userID, err := actor.resolveUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.user.Require(ctx, userID); err != nil {
		return nil, err
	}
	rows, err := s.repo.WordProgressForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserWordProgressResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.UserWordProgressFromEntity(&rows[i]))
	}
	return out, nil
}

// owned loads a progress row and hides rows of other users from learners.
func (s *ProgressService) owned(ctx context.Context, actor Actor, id uint) (*entities.UserProgress, error) {
	row, err := s.repo.Progress.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, apperr.NotFound("UserProgress", id)
	}
	return row, nil
}
