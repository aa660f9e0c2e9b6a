// Package quizzes provides database operations for lesson quizzes, their
// questions and answers.
package quizzes

import (
	"context"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
)

type Repository struct {
	Quizzes   *crud.Repository[entities.Quiz]
	Questions *crud.Repository[entities.QuizQuestion]
	Answers   *crud.Repository[entities.QuizAnswer]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Quizzes:   crud.NewRepository[entities.Quiz](db, "Quiz").WithPreload("Questions.Answers"),
		Questions: crud.NewRepository[entities.QuizQuestion](db, "QuizQuestion").WithPreload("Answers"),
		Answers:   crud.NewRepository[entities.QuizAnswer](db, "QuizAnswer"),
	}
}

func (r *Repository) QuizzesForLesson(ctx context.Context, lessonID uint) ([]entities.Quiz, error) {
	return r.Quizzes.ListBy(ctx, "lesson_id", lessonID)
}

func (r *Repository) QuestionsForQuiz(ctx context.Context, quizID uint) ([]entities.QuizQuestion, error) {
	return r.Questions.ListBy(ctx, "quiz_id", quizID)
}

func (r *Repository) AnswersForQuestion(ctx context.Context, questionID uint) ([]entities.QuizAnswer, error) {
	return r.Answers.ListBy(ctx, "question_id", questionID)
}

// AddQuestion inserts a question together with any answers it carries.
// GORM wraps the nested insert in a single transaction.
func (r *Repository) AddQuestion(ctx context.Context, q *entities.QuizQuestion) error {
	return r.Questions.Add(ctx, q)
}
