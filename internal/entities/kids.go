package entities

import "time"

type KidLesson struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	WordCards []KidWordCard `gorm:"foreignKey:KidLessonID;constraint:OnDelete:CASCADE"`
}

type KidWordCard struct {
	ID          uint   `gorm:"primaryKey"`
	KidLessonID uint   `gorm:"not null;index"`
	Word        string `gorm:"size:200;not null"`
	Translation string `gorm:"size:200"`
	ImageURL    string `gorm:"size:500"`
	AudioURL    string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Questions []KidQuizQuestion `gorm:"foreignKey:KidWordCardID;constraint:OnDelete:CASCADE"`
}

// KidQuizType is a seeded lookup (e.g. "pick_picture", "listen_and_choose").
type KidQuizType struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Questions []KidQuizQuestion `gorm:"foreignKey:KidQuizTypeID;constraint:OnDelete:RESTRICT"`
}

type KidQuizQuestion struct {
	ID            uint   `gorm:"primaryKey"`
	KidWordCardID uint   `gorm:"not null;index"`
	KidQuizTypeID uint   `gorm:"not null;index"`
	QuestionText  string `gorm:"size:1000"`
	ImageURL      string `gorm:"size:500"`
	AudioURL      string `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Answers []KidQuizAnswer `gorm:"foreignKey:KidQuizQuestionID;constraint:OnDelete:CASCADE"`
}

type KidQuizAnswer struct {
	ID                uint   `gorm:"primaryKey"`
	KidQuizQuestionID uint   `gorm:"not null;index"`
	AnswerText        string `gorm:"size:500"`
	ImageURL          string `gorm:"size:500"`
	IsCorrect         bool   `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
