package entities

import "time"

// Lesson is the root of adult course content.
type Lesson struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"size:500"`
	VideoURL    string `gorm:"size:500"`
	AudioURL    string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Words    []LessonWord   `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`
	Phrases  []LessonPhrase `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`
	Quizzes  []Quiz         `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`
	Progress []UserProgress `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`
}

type LessonWord struct {
	ID            uint   `gorm:"primaryKey"`
	LessonID      uint   `gorm:"not null;index"`
	Word          string `gorm:"size:200;not null"`
	Translation   string `gorm:"size:200;not null"`
	Transcription string `gorm:"size:200"`
	ImageURL      string `gorm:"size:500"`
	AudioURL      string `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Progress []UserWordProgress `gorm:"foreignKey:LessonWordID;constraint:OnDelete:CASCADE"`
}

type LessonPhrase struct {
	ID          uint   `gorm:"primaryKey"`
	LessonID    uint   `gorm:"not null;index"`
	PhraseText  string `gorm:"size:500;not null"`
	Translation string `gorm:"size:500;not null"`
	ImageURL    string `gorm:"size:500"`
	AudioURL    string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuizType values accepted by the quizzes.type CHECK constraint.
type QuizType string

const (
	QuizTypeMultipleChoice QuizType = "multiple_choice"
	QuizTypeTrueFalse      QuizType = "true_false"
	QuizTypeMatching       QuizType = "matching"
	QuizTypeFillInBlank    QuizType = "fill_in_blank"
)

var QuizTypes = []QuizType{QuizTypeMultipleChoice, QuizTypeTrueFalse, QuizTypeMatching, QuizTypeFillInBlank}

type Quiz struct {
	ID        uint     `gorm:"primaryKey"`
	LessonID  uint     `gorm:"not null;index"`
	Title     string   `gorm:"size:200"`
	Type      QuizType `gorm:"size:30;not null;check:chk_quizzes_type,type IN ('multiple_choice','true_false','matching','fill_in_blank')"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Progress  []UserProgress `gorm:"foreignKey:QuizID;constraint:OnDelete:SET NULL"`
}

// QuestionType values accepted by the quiz_questions.question_type CHECK constraint.
type QuestionType string

const (
	QuestionTypeSingleChoice   QuestionType = "single_choice"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeText           QuestionType = "text"
	QuestionTypeAudio          QuestionType = "audio"
	QuestionTypeImage          QuestionType = "image"
)

var QuestionTypes = []QuestionType{
	QuestionTypeSingleChoice, QuestionTypeMultipleChoice, QuestionTypeText, QuestionTypeAudio, QuestionTypeImage,
}

type QuizQuestion struct {
	ID           uint         `gorm:"primaryKey"`
	QuizID       uint         `gorm:"not null;index"`
	QuestionText string       `gorm:"size:1000;not null"`
	QuestionType QuestionType `gorm:"size:30;not null;check:chk_quiz_questions_type,question_type IN ('single_choice','multiple_choice','text','audio','image')"`
	ImageURL     string       `gorm:"size:500"`
	AudioURL     string       `gorm:"size:500"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Answers []QuizAnswer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

type QuizAnswer struct {
	ID         uint   `gorm:"primaryKey"`
	QuestionID uint   `gorm:"not null;index"`
	AnswerText string `gorm:"size:500;not null"`
	IsCorrect  bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
