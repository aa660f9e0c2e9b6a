package dto

import (
	"math"
	"time"

	"github.com/langschool/contentapi/internal/entities"
)

type CreateUserProgressRequest struct {
	// UserID defaults to the caller; only admins may record for others.
	UserID         uint  `json:"userId"`
	LessonID       uint  `json:"lessonId" validate:"required"`
	QuizID         *uint `json:"quizId" validate:"omitempty,min=1"`
	CorrectAnswers int   `json:"correctAnswers" validate:"min=0,ltefield=TotalQuestions"`
	TotalQuestions int   `json:"totalQuestions" validate:"min=0"`
	IsCompleted    bool  `json:"isCompleted"`
}

type UserProgressResponse struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"userId"`
	LessonID       uint       `json:"lessonId"`
	QuizID         *uint      `json:"quizId,omitempty"`
	CorrectAnswers int        `json:"correctAnswers"`
	TotalQuestions int        `json:"totalQuestions"`
	ScorePercent   int        `json:"scorePercent"`
	IsCompleted    bool       `json:"isCompleted"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func NewUserProgress(r CreateUserProgressRequest, now time.Time) entities.UserProgress {
	p := entities.UserProgress{
		UserID:         r.UserID,
		LessonID:       r.LessonID,
		QuizID:         r.QuizID,
		CorrectAnswers: r.CorrectAnswers,
		TotalQuestions: r.TotalQuestions,
		IsCompleted:    r.IsCompleted,
	}
	if r.IsCompleted {
		p.CompletedAt = &now
	}
	return p
}

func UserProgressFromEntity(e *entities.UserProgress) UserProgressResponse {
	return UserProgressResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		LessonID:       e.LessonID,
		QuizID:         e.QuizID,
		CorrectAnswers: e.CorrectAnswers,
		TotalQuestions: e.TotalQuestions,
		ScorePercent:   Percent(e.CorrectAnswers, e.TotalQuestions),
		IsCompleted:    e.IsCompleted,
		CompletedAt:    timePtr(e.CompletedAt),
		CreatedAt:      e.CreatedAt,
	}
}

type RecordWordAnswerRequest struct {
	UserID       uint `json:"userId"`
	LessonWordID uint `json:"lessonWordId" validate:"required"`
	IsCorrect    bool `json:"isCorrect"`
}

type UserWordProgressResponse struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"userId"`
	LessonWordID    uint       `json:"lessonWordId"`
	Attempts        int        `json:"attempts"`
	CorrectAttempts int        `json:"correctAttempts"`
	AccuracyPercent int        `json:"accuracyPercent"`
	LastCorrect     bool       `json:"lastCorrect"`
	LastAnsweredAt  *time.Time `json:"lastAnsweredAt,omitempty"`
}

func UserWordProgressFromEntity(e *entities.UserWordProgress) UserWordProgressResponse {
	return UserWordProgressResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		LessonWordID:    e.LessonWordID,
		Attempts:        e.Attempts,
		CorrectAttempts: e.CorrectAttempts,
		AccuracyPercent: Percent(e.CorrectAttempts, e.Attempts),
		LastCorrect:     e.LastCorrect,
		LastAnsweredAt:  timePtr(e.LastAnsweredAt),
	}
}

// Percent returns part/total as a rounded percentage, 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
