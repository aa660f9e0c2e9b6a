package entities

import "time"

// UserProgress records a learner's result for a lesson (optionally a quiz in it).
type UserProgress struct {
	ID             uint  `gorm:"primaryKey"`
	UserID         uint  `gorm:"not null;index"`
	LessonID       uint  `gorm:"not null;index"`
	QuizID         *uint `gorm:"index"`
	CorrectAnswers int   `gorm:"not null;default:0"`
	TotalQuestions int   `gorm:"not null;default:0"`
	IsCompleted    bool  `gorm:"not null;default:false"`
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserWordProgress is one row per (user, word) counting answer attempts.
type UserWordProgress struct {
	ID              uint `gorm:"primaryKey"`
	UserID          uint `gorm:"not null;uniqueIndex:idx_user_word"`
	LessonWordID    uint `gorm:"not null;uniqueIndex:idx_user_word"`
	Attempts        int  `gorm:"not null;default:0"`
	CorrectAttempts int  `gorm:"not null;default:0"`
	LastCorrect     bool
	LastAnsweredAt  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
