package services

import (
	"context"

	"github.com/langschool/contentapi/internal/database/quizzes"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/entities"
)

type (
	QuizCRUD         = CRUD[entities.Quiz, dto.CreateQuizRequest, dto.UpdateQuizRequest, dto.QuizResponse]
	QuizQuestionCRUD = CRUD[entities.QuizQuestion, dto.CreateQuizQuestionRequest, dto.UpdateQuizQuestionRequest, dto.QuizQuestionResponse]
	QuizAnswerCRUD   = CRUD[entities.QuizAnswer, dto.CreateQuizAnswerRequest, dto.UpdateQuizAnswerRequest, dto.QuizAnswerResponse]
)

// QuizService manages lesson quizzes, their questions and answers.
type QuizService struct {
	Quizzes   *QuizCRUD
	Questions *QuizQuestionCRUD
	Answers   *QuizAnswerCRUD

	lesson   Parent
	quiz     Parent
	question Parent
}

func NewQuizService(repo *quizzes.Repository, lesson Parent, v *Validator) *QuizService {
	quiz := ParentOf(repo.Quizzes)
	question := ParentOf(repo.Questions)
	return &QuizService{
		lesson:   lesson,
		quiz:     quiz,
		question: question,
		Quizzes: NewCRUD(CRUDConfig[entities.Quiz, dto.CreateQuizRequest, dto.UpdateQuizRequest, dto.QuizResponse]{
			Repo:       repo.Quizzes,
			Validator:  v,
			New:        dto.NewQuiz,
			Apply:      dto.ApplyQuizUpdate,
			ToResponse: dto.QuizFromEntity,
			Parents: []ParentLink[dto.CreateQuizRequest, dto.UpdateQuizRequest]{{
				Parent:     lesson,
				FromCreate: func(r dto.CreateQuizRequest) uint { return r.LessonID },
				FromUpdate: func(r dto.UpdateQuizRequest) *uint { return r.LessonID },
			}},
		}),
		Questions: NewCRUD(CRUDConfig[entities.QuizQuestion, dto.CreateQuizQuestionRequest, dto.UpdateQuizQuestionRequest, dto.QuizQuestionResponse]{
			Repo:       repo.Questions,
			Validator:  v,
			New:        dto.NewQuizQuestion,
			Apply:      dto.ApplyQuizQuestionUpdate,
			ToResponse: dto.QuizQuestionFromEntity,
			Insert:     repo.AddQuestion,
			Parents: []ParentLink[dto.CreateQuizQuestionRequest, dto.UpdateQuizQuestionRequest]{{
				Parent:     quiz,
				FromCreate: func(r dto.CreateQuizQuestionRequest) uint { return r.QuizID },
				FromUpdate: func(r dto.UpdateQuizQuestionRequest) *uint { return r.QuizID },
			}},
		}),
		Answers: NewCRUD(CRUDConfig[entities.QuizAnswer, dto.CreateQuizAnswerRequest, dto.UpdateQuizAnswerRequest, dto.QuizAnswerResponse]{
			Repo:       repo.Answers,
			Validator:  v,
			New:        dto.NewQuizAnswer,
			Apply:      dto.ApplyQuizAnswerUpdate,
			ToResponse: dto.QuizAnswerFromEntity,
			Parents: []ParentLink[dto.CreateQuizAnswerRequest, dto.UpdateQuizAnswerRequest]{{
				Parent:     question,
				FromCreate: func(r dto.CreateQuizAnswerRequest) uint { return r.QuestionID },
				FromUpdate: func(r dto.UpdateQuizAnswerRequest) *uint { return r.QuestionID },
			}},
		}),
	}
}

func (s *QuizService) QuizzesForLesson(ctx context.Context, lessonID uint) ([]dto.QuizResponse, error) {
	return s.Quizzes.ListBy(ctx, s.lesson, "lesson_id", lessonID)
}

func (s *QuizService) QuestionsForQuiz(ctx context.Context, quizID uint) ([]dto.QuizQuestionResponse, error) {
	return s.Questions.ListBy(ctx, s.quiz, "quiz_id", quizID)
}

func (s *QuizService) AnswersForQuestion(ctx context.Context, questionID uint) ([]dto.QuizAnswerResponse, error) {
	return s.Answers.ListBy(ctx, s.question, "question_id", questionID)
}
