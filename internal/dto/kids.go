package dto

import (
	"time"

	"github.com/langschool/contentapi/internal/entities"
)

// --- KidLesson ---

type CreateKidLessonRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=4000"`
	ImageURL    string `json:"imageUrl" validate:"max=500"`
}

type UpdateKidLessonRequest struct {
	Title       *string `json:"title" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=4000"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=500"`
}

type KidLessonResponse struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	ImageURL    string                `json:"imageUrl"`
	CreatedAt   time.Time             `json:"createdAt"`
	CardCount   int                   `json:"cardCount"`
	WordCards   []KidWordCardResponse `json:"wordCards,omitempty"`
}

func NewKidLesson(r CreateKidLessonRequest) entities.KidLesson {
	return entities.KidLesson{Title: r.Title, Description: r.Description, ImageURL: r.ImageURL}
}

func ApplyKidLessonUpdate(r UpdateKidLessonRequest, e *entities.KidLesson) {
	set(&e.Title, r.Title)
	set(&e.Description, r.Description)
	set(&e.ImageURL, r.ImageURL)
}

func KidLessonFromEntity(e *entities.KidLesson) KidLessonResponse {
	return KidLessonResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
		CardCount:   len(e.WordCards),
		WordCards:   optionalSlice(e.WordCards, KidWordCardFromEntity),
	}
}

// --- KidWordCard ---

type CreateKidWordCardRequest struct {
	KidLessonID uint   `json:"kidLessonId" validate:"required"`
	Word        string `json:"word" validate:"required,notblank,max=200"`
	Translation string `json:"translation" validate:"max=200"`
	ImageURL    string `json:"imageUrl" validate:"max=500"`
	AudioURL    string `json:"audioUrl" validate:"max=500"`
}

type UpdateKidWordCardRequest struct {
	KidLessonID *uint   `json:"kidLessonId" validate:"omitempty,min=1"`
	Word        *string `json:"word" validate:"omitempty,notblank,max=200"`
	Translation *string `json:"translation" validate:"omitempty,max=200"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=500"`
	AudioURL    *string `json:"audioUrl" validate:"omitempty,max=500"`
}

type KidWordCardResponse struct {
	ID          uint                      `json:"id"`
	KidLessonID uint                      `json:"kidLessonId"`
	Word        string                    `json:"word"`
	Translation string                    `json:"translation"`
	ImageURL    string                    `json:"imageUrl"`
	AudioURL    string                    `json:"audioUrl"`
	Questions   []KidQuizQuestionResponse `json:"questions,omitempty"`
}

func NewKidWordCard(r CreateKidWordCardRequest) entities.KidWordCard {
	return entities.KidWordCard{
		KidLessonID: r.KidLessonID,
		Word:        r.Word,
		Translation: r.Translation,
		ImageURL:    r.ImageURL,
		AudioURL:    r.AudioURL,
	}
}

func ApplyKidWordCardUpdate(r UpdateKidWordCardRequest, e *entities.KidWordCard) {
	set(&e.KidLessonID, r.KidLessonID)
	set(&e.Word, r.Word)
	set(&e.Translation, r.Translation)
	set(&e.ImageURL, r.ImageURL)
	set(&e.AudioURL, r.AudioURL)
}

func KidWordCardFromEntity(e *entities.KidWordCard) KidWordCardResponse {
	return KidWordCardResponse{
		ID:          e.ID,
		KidLessonID: e.KidLessonID,
		Word:        e.Word,
		Translation: e.Translation,
		ImageURL:    e.ImageURL,
		AudioURL:    e.AudioURL,
		Questions:   optionalSlice(e.Questions, KidQuizQuestionFromEntity),
	}
}

// --- KidQuizType ---

type CreateKidQuizTypeRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateKidQuizTypeRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type KidQuizTypeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewKidQuizType(r CreateKidQuizTypeRequest) entities.KidQuizType {
	return entities.KidQuizType{Name: r.Name, Description: r.Description}
}

func ApplyKidQuizTypeUpdate(r UpdateKidQuizTypeRequest, e *entities.KidQuizType) {
	set(&e.Name, r.Name)
	set(&e.Description, r.Description)
}

func KidQuizTypeFromEntity(e *entities.KidQuizType) KidQuizTypeResponse {
	return KidQuizTypeResponse{ID: e.ID, Name: e.Name, Description: e.Description}
}

// --- KidQuizQuestion ---

type KidAnswerInput struct {
	AnswerText string `json:"answerText" validate:"max=500"`
	ImageURL   string `json:"imageUrl" validate:"max=500"`
	IsCorrect  bool   `json:"isCorrect"`
}

type CreateKidQuizQuestionRequest struct {
	KidWordCardID uint             `json:"kidWordCardId" validate:"required"`
	KidQuizTypeID uint             `json:"kidQuizTypeId" validate:"required"`
	QuestionText  string           `json:"questionText" validate:"max=1000"`
	ImageURL      string           `json:"imageUrl" validate:"max=500"`
	AudioURL      string           `json:"audioUrl" validate:"max=500"`
	Answers       []KidAnswerInput `json:"answers" validate:"omitempty,dive"`
}

type UpdateKidQuizQuestionRequest struct {
	KidWordCardID *uint   `json:"kidWordCardId" validate:"omitempty,min=1"`
	KidQuizTypeID *uint   `json:"kidQuizTypeId" validate:"omitempty,min=1"`
	QuestionText  *string `json:"questionText" validate:"omitempty,max=1000"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,max=500"`
	AudioURL      *string `json:"audioUrl" validate:"omitempty,max=500"`
}

type KidQuizQuestionResponse struct {
	ID            uint                    `json:"id"`
	KidWordCardID uint                    `json:"kidWordCardId"`
	KidQuizTypeID uint                    `json:"kidQuizTypeId"`
	QuestionText  string                  `json:"questionText"`
	ImageURL      string                  `json:"imageUrl"`
	AudioURL      string                  `json:"audioUrl"`
	Answers       []KidQuizAnswerResponse `json:"answers"`
}

func NewKidQuizQuestion(r CreateKidQuizQuestionRequest) entities.KidQuizQuestion {
	q := entities.KidQuizQuestion{
		KidWordCardID: r.KidWordCardID,
		KidQuizTypeID: r.KidQuizTypeID,
		QuestionText:  r.QuestionText,
		ImageURL:      r.ImageURL,
		AudioURL:      r.AudioURL,
	}
	for _, a := range r.Answers {
		q.Answers = append(q.Answers, entities.KidQuizAnswer{AnswerText: a.AnswerText, ImageURL: a.ImageURL, IsCorrect: a.IsCorrect})
	}
	return q
}

func ApplyKidQuizQuestionUpdate(r UpdateKidQuizQuestionRequest, e *entities.KidQuizQuestion) {
	set(&e.KidWordCardID, r.KidWordCardID)
	set(&e.KidQuizTypeID, r.KidQuizTypeID)
	set(&e.QuestionText, r.QuestionText)
	set(&e.ImageURL, r.ImageURL)
	set(&e.AudioURL, r.AudioURL)
}

func KidQuizQuestionFromEntity(e *entities.KidQuizQuestion) KidQuizQuestionResponse {
	return KidQuizQuestionResponse{
		ID:            e.ID,
		KidWordCardID: e.KidWordCardID,
		KidQuizTypeID: e.KidQuizTypeID,
		QuestionText:  e.QuestionText,
		ImageURL:      e.ImageURL,
		AudioURL:      e.AudioURL,
		Answers:       mapSlice(e.Answers, KidQuizAnswerFromEntity),
	}
}

// --- KidQuizAnswer ---

type CreateKidQuizAnswerRequest struct {
	KidQuizQuestionID uint   `json:"kidQuizQuestionId" validate:"required"`
	AnswerText        string `json:"answerText" validate:"required_without=ImageURL,max=500"`
	ImageURL          string `json:"imageUrl" validate:"max=500"`
	IsCorrect         bool   `json:"isCorrect"`
}

type UpdateKidQuizAnswerRequest struct {
	KidQuizQuestionID *uint   `json:"kidQuizQuestionId" validate:"omitempty,min=1"`
	AnswerText        *string `json:"answerText" validate:"omitempty,max=500"`
	ImageURL          *string `json:"imageUrl" validate:"omitempty,max=500"`
	IsCorrect         *bool   `json:"isCorrect"`
}

type KidQuizAnswerResponse struct {
	ID                uint   `json:"id"`
	KidQuizQuestionID uint   `json:"kidQuizQuestionId"`
	AnswerText        string `json:"answerText"`
	ImageURL          string `json:"imageUrl"`
	IsCorrect         bool   `json:"isCorrect"`
}

func NewKidQuizAnswer(r CreateKidQuizAnswerRequest) entities.KidQuizAnswer {
	return entities.KidQuizAnswer{
		KidQuizQuestionID: r.KidQuizQuestionID,
		AnswerText:        r.AnswerText,
		ImageURL:          r.ImageURL,
		IsCorrect:         r.IsCorrect,
	}
}

func ApplyKidQuizAnswerUpdate(r UpdateKidQuizAnswerRequest, e *entities.KidQuizAnswer) {
	set(&e.KidQuizQuestionID, r.KidQuizQuestionID)
	set(&e.AnswerText, r.AnswerText)
	set(&e.ImageURL, r.ImageURL)
	set(&e.IsCorrect, r.IsCorrect)
}

func KidQuizAnswerFromEntity(e *entities.KidQuizAnswer) KidQuizAnswerResponse {
	return KidQuizAnswerResponse{
		ID:                e.ID,
		KidQuizQuestionID: e.KidQuizQuestionID,
		AnswerText:        e.AnswerText,
		ImageURL:          e.ImageURL,
		IsCorrect:         e.IsCorrect,
	}
}
