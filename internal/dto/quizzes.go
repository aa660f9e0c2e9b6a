package dto

import (
	"time"

	"github.com/langschool/contentapi/internal/entities"
)

// --- Quiz ---

type CreateQuizRequest struct {
	LessonID uint   `json:"lessonId" validate:"required"`
	Title    string `json:"title" validate:"max=200"`
	Type     string `json:"type" validate:"required,oneof=multiple_choice true_false matching fill_in_blank"`
}

type UpdateQuizRequest struct {
	LessonID *uint   `json:"lessonId" validate:"omitempty,min=1"`
	Title    *string `json:"title" validate:"omitempty,max=200"`
	Type     *string `json:"type" validate:"omitempty,oneof=multiple_choice true_false matching fill_in_blank"`
}

type QuizResponse struct {
	ID            uint                   `json:"id"`
	LessonID      uint                   `json:"lessonId"`
	Title         string                 `json:"title"`
	Type          string                 `json:"type"`
	CreatedAt     time.Time              `json:"createdAt"`
	QuestionCount int                    `json:"questionCount"`
	Questions     []QuizQuestionResponse `json:"questions,omitempty"`
}

func NewQuiz(r CreateQuizRequest) entities.Quiz {
	return entities.Quiz{LessonID: r.LessonID, Title: r.Title, Type: entities.QuizType(r.Type)}
}

func ApplyQuizUpdate(r UpdateQuizRequest, e *entities.Quiz) {
	set(&e.LessonID, r.LessonID)
	set(&e.Title, r.Title)
	if r.Type != nil {
		e.Type = entities.QuizType(*r.Type)
	}
}

func QuizFromEntity(e *entities.Quiz) QuizResponse {
	return QuizResponse{
		ID:            e.ID,
		LessonID:      e.LessonID,
		Title:         e.Title,
		Type:          string(e.Type),
		CreatedAt:     e.CreatedAt,
		QuestionCount: len(e.Questions),
		Questions:     optionalSlice(e.Questions, QuizQuestionFromEntity),
	}
}

// --- QuizQuestion ---

// AnswerInput creates an answer together with its question.
type AnswerInput struct {
	AnswerText string `json:"answerText" validate:"required,notblank,max=500"`
	IsCorrect  bool   `json:"isCorrect"`
}

type CreateQuizQuestionRequest struct {
	QuizID       uint          `json:"quizId" validate:"required"`
	QuestionText string        `json:"questionText" validate:"required,notblank,max=1000"`
	QuestionType string        `json:"questionType" validate:"required,oneof=single_choice multiple_choice text audio image"`
	ImageURL     string        `json:"imageUrl" validate:"max=500"`
	AudioURL     string        `json:"audioUrl" validate:"max=500"`
	Answers      []AnswerInput `json:"answers" validate:"omitempty,dive"`
}

type UpdateQuizQuestionRequest struct {
	QuizID       *uint   `json:"quizId" validate:"omitempty,min=1"`
	QuestionText *string `json:"questionText" validate:"omitempty,notblank,max=1000"`
	QuestionType *string `json:"questionType" validate:"omitempty,oneof=single_choice multiple_choice text audio image"`
	ImageURL     *string `json:"imageUrl" validate:"omitempty,max=500"`
	AudioURL     *string `json:"audioUrl" validate:"omitempty,max=500"`
}

type QuizQuestionResponse struct {
	ID           uint                 `json:"id"`
	QuizID       uint                 `json:"quizId"`
	QuestionText string               `json:"questionText"`
	QuestionType string               `json:"questionType"`
	ImageURL     string               `json:"imageUrl"`
	AudioURL     string               `json:"audioUrl"`
	Answers      []QuizAnswerResponse `json:"answers"`
}

func NewQuizQuestion(r CreateQuizQuestionRequest) entities.QuizQuestion {
	q := entities.QuizQuestion{
		QuizID:       r.QuizID,
		QuestionText: r.QuestionText,
		QuestionType: entities.QuestionType(r.QuestionType),
		ImageURL:     r.ImageURL,
		AudioURL:     r.AudioURL,
	}
	for _, a := range r.Answers {
		q.Answers = append(q.Answers, entities.QuizAnswer{AnswerText: a.AnswerText, IsCorrect: a.IsCorrect})
	}
	return q
}

func ApplyQuizQuestionUpdate(r UpdateQuizQuestionRequest, e *entities.QuizQuestion) {
	set(&e.QuizID, r.QuizID)
	set(&e.QuestionText, r.QuestionText)
	if r.QuestionType != nil {
		e.QuestionType = entities.QuestionType(*r.QuestionType)
	}
	set(&e.ImageURL, r.ImageURL)
	set(&e.AudioURL, r.AudioURL)
}

func QuizQuestionFromEntity(e *entities.QuizQuestion) QuizQuestionResponse {
	return QuizQuestionResponse{
		ID:           e.ID,
		QuizID:       e.QuizID,
		QuestionText: e.QuestionText,
		QuestionType: string(e.QuestionType),
		ImageURL:     e.ImageURL,
		AudioURL:     e.AudioURL,
		Answers:      mapSlice(e.Answers, QuizAnswerFromEntity),
	}
}

// --- QuizAnswer ---

type CreateQuizAnswerRequest struct {
	QuestionID uint   `json:"questionId" validate:"required"`
	AnswerText string `json:"answerText" validate:"required,notblank,max=500"`
	IsCorrect  bool   `json:"isCorrect"`
}

type UpdateQuizAnswerRequest struct {
	QuestionID *uint   `json:"questionId" validate:"omitempty,min=1"`
	AnswerText *string `json:"answerText" validate:"omitempty,notblank,max=500"`
	IsCorrect  *bool   `json:"isCorrect"`
}

type QuizAnswerResponse struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"questionId"`
	AnswerText string `json:"answerText"`
	IsCorrect  bool   `json:"isCorrect"`
}

func NewQuizAnswer(r CreateQuizAnswerRequest) entities.QuizAnswer {
	return entities.QuizAnswer{QuestionID: r.QuestionID, AnswerText: r.AnswerText, IsCorrect: r.IsCorrect}
}

func ApplyQuizAnswerUpdate(r UpdateQuizAnswerRequest, e *entities.QuizAnswer) {
	set(&e.QuestionID, r.QuestionID)
	set(&e.AnswerText, r.AnswerText)
	set(&e.IsCorrect, r.IsCorrect)
}

func QuizAnswerFromEntity(e *entities.QuizAnswer) QuizAnswerResponse {
	return QuizAnswerResponse{ID: e.ID, QuestionID: e.QuestionID, AnswerText: e.AnswerText, IsCorrect: e.IsCorrect}
}
