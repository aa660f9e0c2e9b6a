package dto

import (
	"time"

	"github.com/langschool/contentapi/internal/entities"
)

// --- Lesson ---

type CreateLessonRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=4000"`
	ImageURL    string `json:"imageUrl" validate:"max=500"`
	VideoURL    string `json:"videoUrl" validate:"max=500"`
	AudioURL    string `json:"audioUrl" validate:"max=500"`
}

type UpdateLessonRequest struct {
	Title       *string `json:"title" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=4000"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=500"`
	VideoURL    *string `json:"videoUrl" validate:"omitempty,max=500"`
	AudioURL    *string `json:"audioUrl" validate:"omitempty,max=500"`
}

type LessonResponse struct {
	ID          uint                   `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	ImageURL    string                 `json:"imageUrl"`
	VideoURL    string                 `json:"videoUrl"`
	AudioURL    string                 `json:"audioUrl"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	WordCount   int                    `json:"wordCount"`
	PhraseCount int                    `json:"phraseCount"`
	QuizCount   int                    `json:"quizCount"`
	Words       []LessonWordResponse   `json:"words,omitempty"`
	Phrases     []LessonPhraseResponse `json:"phrases,omitempty"`
	Quizzes     []QuizResponse         `json:"quizzes,omitempty"`
}

func NewLesson(r CreateLessonRequest) entities.Lesson {
	return entities.Lesson{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		VideoURL:    r.VideoURL,
		AudioURL:    r.AudioURL,
	}
}

func ApplyLessonUpdate(r UpdateLessonRequest, e *entities.Lesson) {
	set(&e.Title, r.Title)
	set(&e.Description, r.Description)
	set(&e.ImageURL, r.ImageURL)
	set(&e.VideoURL, r.VideoURL)
	set(&e.AudioURL, r.AudioURL)
}

func LessonFromEntity(e *entities.Lesson) LessonResponse {
	return LessonResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		VideoURL:    e.VideoURL,
		AudioURL:    e.AudioURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		WordCount:   len(e.Words),
		PhraseCount: len(e.Phrases),
		QuizCount:   len(e.Quizzes),
		Words:       optionalSlice(e.Words, LessonWordFromEntity),
		Phrases:     optionalSlice(e.Phrases, LessonPhraseFromEntity),
		Quizzes:     optionalSlice(e.Quizzes, QuizFromEntity),
	}
}

// --- LessonWord ---

type CreateLessonWordRequest struct {
	LessonID      uint   `json:"lessonId" validate:"required"`
	Word          string `json:"word" validate:"required,notblank,max=200"`
	Translation   string `json:"translation" validate:"required,notblank,max=200"`
	Transcription string `json:"transcription" validate:"max=200"`
	ImageURL      string `json:"imageUrl" validate:"max=500"`
	AudioURL      string `json:"audioUrl" validate:"max=500"`
}

type UpdateLessonWordRequest struct {
	LessonID      *uint   `json:"lessonId" validate:"omitempty,min=1"`
	Word          *string `json:"word" validate:"omitempty,notblank,max=200"`
	Translation   *string `json:"translation" validate:"omitempty,notblank,max=200"`
	Transcription *string `json:"transcription" validate:"omitempty,max=200"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,max=500"`
	AudioURL      *string `json:"audioUrl" validate:"omitempty,max=500"`
}

type LessonWordResponse struct {
	ID            uint      `json:"id"`
	LessonID      uint      `json:"lessonId"`
	Word          string    `json:"word"`
	Translation   string    `json:"translation"`
	Transcription string    `json:"transcription"`
	ImageURL      string    `json:"imageUrl"`
	AudioURL      string    `json:"audioUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewLessonWord(r CreateLessonWordRequest) entities.LessonWord {
	return entities.LessonWord{
		LessonID:      r.LessonID,
		Word:          r.Word,
		Translation:   r.Translation,
		Transcription: r.Transcription,
		ImageURL:      r.ImageURL,
		AudioURL:      r.AudioURL,
	}
}

func ApplyLessonWordUpdate(r UpdateLessonWordRequest, e *entities.LessonWord) {
	set(&e.LessonID, r.LessonID)
	set(&e.Word, r.Word)
	set(&e.Translation, r.Translation)
	set(&e.Transcription, r.Transcription)
	set(&e.ImageURL, r.ImageURL)
	set(&e.AudioURL, r.AudioURL)
}

func LessonWordFromEntity(e *entities.LessonWord) LessonWordResponse {
	return LessonWordResponse{
		ID:            e.ID,
		LessonID:      e.LessonID,
		Word:          e.Word,
		Translation:   e.Translation,
		Transcription: e.Transcription,
		ImageURL:      e.ImageURL,
		AudioURL:      e.AudioURL,
		CreatedAt:     e.CreatedAt,
	}
}

// --- LessonPhrase ---

type CreateLessonPhraseRequest struct {
	LessonID    uint   `json:"lessonId" validate:"required"`
	PhraseText  string `json:"phraseText" validate:"required,notblank,max=500"`
	Translation string `json:"translation" validate:"required,notblank,max=500"`
	ImageURL    string `json:"imageUrl" validate:"max=500"`
	AudioURL    string `json:"audioUrl" validate:"max=500"`
}

type UpdateLessonPhraseRequest struct {
	LessonID    *uint   `json:"lessonId" validate:"omitempty,min=1"`
	PhraseText  *string `json:"phraseText" validate:"omitempty,notblank,max=500"`
	Translation *string `json:"translation" validate:"omitempty,notblank,max=500"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=500"`
	AudioURL    *string `json:"audioUrl" validate:"omitempty,max=500"`
}

type LessonPhraseResponse struct {
	ID          uint      `json:"id"`
	LessonID    uint      `json:"lessonId"`
	PhraseText  string    `json:"phraseText"`
	Translation string    `json:"translation"`
	ImageURL    string    `json:"imageUrl"`
	AudioURL    string    `json:"audioUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewLessonPhrase(r CreateLessonPhraseRequest) entities.LessonPhrase {
	return entities.LessonPhrase{
		LessonID:    r.LessonID,
		PhraseText:  r.PhraseText,
		Translation: r.Translation,
		ImageURL:    r.ImageURL,
		AudioURL:    r.AudioURL,
	}
}

func ApplyLessonPhraseUpdate(r UpdateLessonPhraseRequest, e *entities.LessonPhrase) {
	set(&e.LessonID, r.LessonID)
	set(&e.PhraseText, r.PhraseText)
	set(&e.Translation, r.Translation)
	set(&e.ImageURL, r.ImageURL)
	set(&e.AudioURL, r.AudioURL)
}

func LessonPhraseFromEntity(e *entities.LessonPhrase) LessonPhraseResponse {
	return LessonPhraseResponse{
		ID:          e.ID,
		LessonID:    e.LessonID,
		PhraseText:  e.PhraseText,
		Translation: e.Translation,
		ImageURL:    e.ImageURL,
		AudioURL:    e.AudioURL,
		CreatedAt:   e.CreatedAt,
	}
}

// --- Word import ---

type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	LessonID  uint             `json:"lessonId"`
	Processed int              `json:"processed"`
	Created   int              `json:"created"`
	Skipped   int              `json:"skipped"`
	Errors    []ImportRowError `json:"errors"`
}
