package services

import (
	"context"

	"github.com/langschool/contentapi/internal/database/kids"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/entities"
)

type (
	KidLessonCRUD       = CRUD[entities.KidLesson, dto.CreateKidLessonRequest, dto.UpdateKidLessonRequest, dto.KidLessonResponse]
	KidWordCardCRUD     = CRUD[entities.KidWordCard, dto.CreateKidWordCardRequest, dto.UpdateKidWordCardRequest, dto.KidWordCardResponse]
	KidQuizTypeCRUD     = CRUD[entities.KidQuizType, dto.CreateKidQuizTypeRequest, dto.UpdateKidQuizTypeRequest, dto.KidQuizTypeResponse]
	KidQuizQuestionCRUD = CRUD[entities.KidQuizQuestion, dto.CreateKidQuizQuestionRequest, dto.UpdateKidQuizQuestionRequest, dto.KidQuizQuestionResponse]
	KidQuizAnswerCRUD   = CRUD[entities.KidQuizAnswer, dto.CreateKidQuizAnswerRequest, dto.UpdateKidQuizAnswerRequest, dto.KidQuizAnswerResponse]
)

// KidService manages the kids course.
type KidService struct {
	Lessons   *KidLessonCRUD
	WordCards *KidWordCardCRUD
	QuizTypes *KidQuizTypeCRUD
	Questions *KidQuizQuestionCRUD
	Answers   *KidQuizAnswerCRUD

	lesson   Parent
	card     Parent
	question Parent
}

func NewKidService(repo *kids.Repository, v *Validator) *KidService {
	lesson := ParentOf(repo.Lessons)
	card := ParentOf(repo.WordCards)
	quizType := ParentOf(repo.QuizTypes)
	question := ParentOf(repo.Questions)

	return &KidService{
		lesson:   lesson,
		card:     card,
		question: question,
		Lessons: NewCRUD(CRUDConfig[entities.KidLesson, dto.CreateKidLessonRequest, dto.UpdateKidLessonRequest, dto.KidLessonResponse]{
			Repo:       repo.Lessons,
			Validator:  v,
			New:        dto.NewKidLesson,
			Apply:      dto.ApplyKidLessonUpdate,
			ToResponse: dto.KidLessonFromEntity,
		}),
		WordCards: NewCRUD(CRUDConfig[entities.KidWordCard, dto.CreateKidWordCardRequest, dto.UpdateKidWordCardRequest, dto.KidWordCardResponse]{
			Repo:       repo.WordCards,
			Validator:  v,
			New:        dto.NewKidWordCard,
			Apply:      dto.ApplyKidWordCardUpdate,
			ToResponse: dto.KidWordCardFromEntity,
			Parents: []ParentLink[dto.CreateKidWordCardRequest, dto.UpdateKidWordCardRequest]{{
				Parent:     lesson,
				FromCreate: func(r dto.CreateKidWordCardRequest) uint { return r.KidLessonID },
				FromUpdate: func(r dto.UpdateKidWordCardRequest) *uint { return r.KidLessonID },
			}},
		}),
		QuizTypes: NewCRUD(CRUDConfig[entities.KidQuizType, dto.CreateKidQuizTypeRequest, dto.UpdateKidQuizTypeRequest, dto.KidQuizTypeResponse]{
			Repo:       repo.QuizTypes,
			Validator:  v,
			New:        dto.NewKidQuizType,
			Apply:      dto.ApplyKidQuizTypeUpdate,
			ToResponse: dto.KidQuizTypeFromEntity,
		}),
		Questions: NewCRUD(CRUDConfig[entities.KidQuizQuestion, dto.CreateKidQuizQuestionRequest, dto.UpdateKidQuizQuestionRequest, dto.KidQuizQuestionResponse]{
			Repo:       repo.Questions,
			Validator:  v,
			New:        dto.NewKidQuizQuestion,
			Apply:      dto.ApplyKidQuizQuestionUpdate,
			ToResponse: dto.KidQuizQuestionFromEntity,
			Parents: []ParentLink[dto.CreateKidQuizQuestionRequest, dto.UpdateKidQuizQuestionRequest]{
				{
					Parent:     card,
					FromCreate: func(r dto.CreateKidQuizQuestionRequest) uint { return r.KidWordCardID },
					FromUpdate: func(r dto.UpdateKidQuizQuestionRequest) *uint { return r.KidWordCardID },
				},
				{
					Parent:     quizType,
					FromCreate: func(r dto.CreateKidQuizQuestionRequest) uint { return r.KidQuizTypeID },
					FromUpdate: func(r dto.UpdateKidQuizQuestionRequest) *uint { return r.KidQuizTypeID },
				},
			},
		}),
		Answers: NewCRUD(CRUDConfig[entities.KidQuizAnswer, dto.CreateKidQuizAnswerRequest, dto.UpdateKidQuizAnswerRequest, dto.KidQuizAnswerResponse]{
			Repo:       repo.Answers,
			Validator:  v,
			New:        dto.NewKidQuizAnswer,
			Apply:      dto.ApplyKidQuizAnswerUpdate,
			ToResponse: dto.KidQuizAnswerFromEntity,
			Parents: []ParentLink[dto.CreateKidQuizAnswerRequest, dto.UpdateKidQuizAnswerRequest]{{
				Parent:     question,
				FromCreate: func(r dto.CreateKidQuizAnswerRequest) uint { return r.KidQuizQuestionID },
				FromUpdate: func(r dto.UpdateKidQuizAnswerRequest) *uint { return r.KidQuizQuestionID },
			}},
		}),
	}
}

func (s *KidService) CardsForLesson(ctx context.Context, kidLessonID uint) ([]dto.KidWordCardResponse, error) {
	return s.WordCards.ListBy(ctx, s.lesson, "kid_lesson_id", kidLessonID)
}

func (s *KidService) QuestionsForCard(ctx context.Context, cardID uint) ([]dto.KidQuizQuestionResponse, error) {
	return s.Questions.ListBy(ctx, s.card, "kid_word_card_id", cardID)
}

func (s *KidService) AnswersForQuestion(ctx context.Context, questionID uint) ([]dto.KidQuizAnswerResponse, error) {
	return s.Answers.ListBy(ctx, s.question, "kid_quiz_question_id", questionID)
}
