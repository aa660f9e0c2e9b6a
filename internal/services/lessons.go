package services

import (
	"context"

	"github.com/langschool/contentapi/internal/database/lessons"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/entities"
)

type (
	LessonCRUD       = CRUD[entities.Lesson, dto.CreateLessonRequest, dto.UpdateLessonRequest, dto.LessonResponse]
	LessonWordCRUD   = CRUD[entities.LessonWord, dto.CreateLessonWordRequest, dto.UpdateLessonWordRequest, dto.LessonWordResponse]
	LessonPhraseCRUD = CRUD[entities.LessonPhrase, dto.CreateLessonPhraseRequest, dto.UpdateLessonPhraseRequest, dto.LessonPhraseResponse]
)

// LessonService manages lessons and their words and phrases.
type LessonService struct {
	Lessons *LessonCRUD
	Words   *LessonWordCRUD
	Phrases *LessonPhraseCRUD

	lesson Parent
}

func NewLessonService(repo *lessons.Repository, v *Validator) *LessonService {
	lesson := ParentOf(repo.Lessons)
	return &LessonService{
		lesson: lesson,
		Lessons: NewCRUD(CRUDConfig[entities.Lesson, dto.CreateLessonRequest, dto.UpdateLessonRequest, dto.LessonResponse]{
			Repo:       repo.Lessons,
			Validator:  v,
			New:        dto.NewLesson,
			Apply:      dto.ApplyLessonUpdate,
			ToResponse: dto.LessonFromEntity,
		}),
		Words: NewCRUD(CRUDConfig[entities.LessonWord, dto.CreateLessonWordRequest, dto.UpdateLessonWordRequest, dto.LessonWordResponse]{
			Repo:       repo.Words,
			Validator:  v,
			New:        dto.NewLessonWord,
			Apply:      dto.ApplyLessonWordUpdate,
			ToResponse: dto.LessonWordFromEntity,
			Parents: []ParentLink[dto.CreateLessonWordRequest, dto.UpdateLessonWordRequest]{{
				Parent:     lesson,
				FromCreate: func(r dto.CreateLessonWordRequest) uint { return r.LessonID },
				FromUpdate: func(r dto.UpdateLessonWordRequest) *uint { return r.LessonID },
			}},
		}),
		Phrases: NewCRUD(CRUDConfig[entities.LessonPhrase, dto.CreateLessonPhraseRequest, dto.UpdateLessonPhraseRequest, dto.LessonPhraseResponse]{
			Repo:       repo.Phrases,
			Validator:  v,
			New:        dto.NewLessonPhrase,
			Apply:      dto.ApplyLessonPhraseUpdate,
			ToResponse: dto.LessonPhraseFromEntity,
			Insert:     repo.AddPhrase,
			Save:       repo.UpdatePhrase,
			Parents: []ParentLink[dto.CreateLessonPhraseRequest, dto.UpdateLessonPhraseRequest]{{
				Parent:     lesson,
				FromCreate: func(r dto.CreateLessonPhraseRequest) uint { return r.LessonID },
				FromUpdate: func(r dto.UpdateLessonPhraseRequest) *uint { return r.LessonID },
			}},
		}),
	}
}

func (s *LessonService) WordsForLesson(ctx context.Context, lessonID uint) ([]dto.LessonWordResponse, error) {
	return s.Words.ListBy(ctx, s.lesson, "lesson_id", lessonID)
}

func (s *LessonService) PhrasesForLesson(ctx context.Context, lessonID uint) ([]dto.LessonPhraseResponse, error) {
	return s.Phrases.ListBy(ctx, s.lesson, "lesson_id", lessonID)
}

// LessonParent exposes the lesson existence check to other services.
func (s *LessonService) LessonParent() Parent {
	return s.lesson
}
