// Package kids provides database operations for the kids course: lessons,
// word cards, quiz types, quiz questions and quiz answers.
package kids

import (
	"context"

	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/crud"
	"github.com/langschool/contentapi/internal/entities"
)

type Repository struct {
	db        *gorm.DB
	Lessons   *crud.Repository[entities.KidLesson]
	WordCards *crud.Repository[entities.KidWordCard]
	QuizTypes *crud.Repository[entities.KidQuizType]
	Questions *crud.Repository[entities.KidQuizQuestion]
	Answers   *crud.Repository[entities.KidQuizAnswer]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:        db,
		Lessons:   crud.NewRepository[entities.KidLesson](db, "KidLesson").WithPreload("WordCards"),
		WordCards: crud.NewRepository[entities.KidWordCard](db, "KidWordCard").WithPreload("Questions.Answers"),
		QuizTypes: crud.NewRepository[entities.KidQuizType](db, "KidQuizType").WithOrder("name ASC"),
		Questions: crud.NewRepository[entities.KidQuizQuestion](db, "KidQuizQuestion").WithPreload("Answers"),
		Answers:   crud.NewRepository[entities.KidQuizAnswer](db, "KidQuizAnswer"),
	}
}

func (r *Repository) CardsForLesson(ctx context.Context, kidLessonID uint) ([]entities.KidWordCard, error) {
	return r.WordCards.ListBy(ctx, "kid_lesson_id", kidLessonID)
}

func (r *Repository) QuestionsForCard(ctx context.Context, cardID uint) ([]entities.KidQuizQuestion, error) {
	return r.Questions.ListBy(ctx, "kid_word_card_id", cardID)
}

func (r *Repository) AnswersForQuestion(ctx context.Context, questionID uint) ([]entities.KidQuizAnswer, error) {
	return r.Answers.ListBy(ctx, "kid_quiz_question_id", questionID)
}

// QuizTypeByName returns the lookup row with the given name.
func (r *Repository) QuizTypeByName(ctx context.Context, name string) (*entities.KidQuizType, error) {
	var qt entities.KidQuizType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&qt).Error; err != nil {
		return nil, crud.TranslateError("KidQuizType", "get", name, err)
	}
	return &qt, nil
}
