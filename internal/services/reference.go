package services

import (
	"context"

	"github.com/langschool/contentapi/internal/database/alphabet"
	"github.com/langschool/contentapi/internal/database/language"
	"github.com/langschool/contentapi/internal/database/mainquestions"
	"github.com/langschool/contentapi/internal/database/names"
	"github.com/langschool/contentapi/internal/database/pronunciation"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/entities"
)

type (
	AlphabetLetterCRUD        = CRUD[entities.AlphabetLetter, dto.CreateAlphabetLetterRequest, dto.UpdateAlphabetLetterRequest, dto.AlphabetLetterResponse]
	NounWordCRUD              = CRUD[entities.NounWord, dto.CreateNounWordRequest, dto.UpdateNounWordRequest, dto.NounWordResponse]
	PartOfSpeechCRUD          = CRUD[entities.PartOfSpeech, dto.CreatePartOfSpeechRequest, dto.UpdatePartOfSpeechRequest, dto.PartOfSpeechResponse]
	FunctionWordCRUD          = CRUD[entities.FunctionWord, dto.CreateFunctionWordRequest, dto.UpdateFunctionWordRequest, dto.FunctionWordResponse]
	PronunciationCategoryCRUD = CRUD[entities.PronunciationCategory, dto.CreatePronunciationCategoryRequest, dto.UpdatePronunciationCategoryRequest, dto.PronunciationCategoryResponse]
	WordItemCRUD              = CRUD[entities.WordItem, dto.CreateWordItemRequest, dto.UpdateWordItemRequest, dto.WordItemResponse]
	MainQuestionCRUD          = CRUD[entities.MainQuestion, dto.CreateMainQuestionRequest, dto.UpdateMainQuestionRequest, dto.MainQuestionResponse]
	MainQuestionWordCRUD      = CRUD[entities.MainQuestionWord, dto.CreateMainQuestionWordRequest, dto.UpdateMainQuestionWordRequest, dto.MainQuestionWordResponse]
	EnglishNameCRUD           = CRUD[entities.EnglishName, dto.CreateEnglishNameRequest, dto.UpdateEnglishNameRequest, dto.EnglishNameResponse]
	MaleNameCRUD              = CRUD[entities.MaleName, dto.CreateGivenNameRequest, dto.UpdateGivenNameRequest, dto.GivenNameResponse]
	FemaleNameCRUD            = CRUD[entities.FemaleName, dto.CreateGivenNameRequest, dto.UpdateGivenNameRequest, dto.GivenNameResponse]
)

// AlphabetService manages alphabet letters and their example nouns.
type AlphabetService struct {
	Letters   *AlphabetLetterCRUD
	NounWords *NounWordCRUD

	repo   *alphabet.Repository
	letter Parent
}

func NewAlphabetService(repo *alphabet.Repository, v *Validator) *AlphabetService {
	letter := ParentOf(repo.Letters)
	return &AlphabetService{
		repo:   repo,
		letter: letter,
		Letters: NewCRUD(CRUDConfig[entities.AlphabetLetter, dto.CreateAlphabetLetterRequest, dto.UpdateAlphabetLetterRequest, dto.AlphabetLetterResponse]{
			Repo:       repo.Letters,
			Validator:  v,
			New:        dto.NewAlphabetLetter,
			Apply:      dto.ApplyAlphabetLetterUpdate,
			ToResponse: dto.AlphabetLetterFromEntity,
		}),
		NounWords: NewCRUD(CRUDConfig[entities.NounWord, dto.CreateNounWordRequest, dto.UpdateNounWordRequest, dto.NounWordResponse]{
			Repo:       repo.NounWords,
			Validator:  v,
			New:        dto.NewNounWord,
			Apply:      dto.ApplyNounWordUpdate,
			ToResponse: dto.NounWordFromEntity,
			Parents: []ParentLink[dto.CreateNounWordRequest, dto.UpdateNounWordRequest]{{
				Parent:     letter,
				FromCreate: func(r dto.CreateNounWordRequest) uint { return r.AlphabetLetterID },
				FromUpdate: func(r dto.UpdateNounWordRequest) *uint { return r.AlphabetLetterID },
			}},
		}),
	}
}

func (s *AlphabetService) NounsForLetter(ctx context.Context, letterID uint) ([]dto.NounWordResponse, error) {
	return s.NounWords.ListBy(ctx, s.letter, "alphabet_letter_id", letterID)
}

// LetterByValue looks a letter up by its character, case-insensitively.
func (s *AlphabetService) LetterByValue(ctx context.Context, letter string) (*dto.AlphabetLetterResponse, error) {
	e, err := s.repo.LetterByValue(ctx, letter)
	if err != nil {
		return nil, err
	}
	r := dto.AlphabetLetterFromEntity(e)
	return &r, nil
}

// LanguageService manages parts of speech and their function words.
type LanguageService struct {
	PartsOfSpeech *PartOfSpeechCRUD
	FunctionWords *FunctionWordCRUD

	pos Parent
}

func NewLanguageService(repo *language.Repository, v *Validator) *LanguageService {
	pos := ParentOf(repo.PartsOfSpeech)
	return &LanguageService{
		pos: pos,
		PartsOfSpeech: NewCRUD(CRUDConfig[entities.PartOfSpeech, dto.CreatePartOfSpeechRequest, dto.UpdatePartOfSpeechRequest, dto.PartOfSpeechResponse]{
			Repo:       repo.PartsOfSpeech,
			Validator:  v,
			New:        dto.NewPartOfSpeech,
			Apply:      dto.ApplyPartOfSpeechUpdate,
			ToResponse: dto.PartOfSpeechFromEntity,
		}),
		FunctionWords: NewCRUD(CRUDConfig[entities.FunctionWord, dto.CreateFunctionWordRequest, dto.UpdateFunctionWordRequest, dto.FunctionWordResponse]{
			Repo:       repo.FunctionWords,
			Validator:  v,
			New:        dto.NewFunctionWord,
			Apply:      dto.ApplyFunctionWordUpdate,
			ToResponse: dto.FunctionWordFromEntity,
			Parents: []ParentLink[dto.CreateFunctionWordRequest, dto.UpdateFunctionWordRequest]{{
				Parent:     pos,
				FromCreate: func(r dto.CreateFunctionWordRequest) uint { return r.PartOfSpeechID },
				FromUpdate: func(r dto.UpdateFunctionWordRequest) *uint { return r.PartOfSpeechID },
			}},
		}),
	}
}

func (s *LanguageService) WordsForPartOfSpeech(ctx context.Context, posID uint) ([]dto.FunctionWordResponse, error) {
	return s.FunctionWords.ListBy(ctx, s.pos, "part_of_speech_id", posID)
}

// PronunciationService manages pronunciation categories and their words.
type PronunciationService struct {
	Categories *PronunciationCategoryCRUD
	Words      *WordItemCRUD

	category Parent
}

func NewPronunciationService(repo *pronunciation.Repository, v *Validator) *PronunciationService {
	category := ParentOf(repo.Categories)
	return &PronunciationService{
		category: category,
		Categories: NewCRUD(CRUDConfig[entities.PronunciationCategory, dto.CreatePronunciationCategoryRequest, dto.UpdatePronunciationCategoryRequest, dto.PronunciationCategoryResponse]{
			Repo:       repo.Categories,
			Validator:  v,
			New:        dto.NewPronunciationCategory,
			Apply:      dto.ApplyPronunciationCategoryUpdate,
			ToResponse: dto.PronunciationCategoryFromEntity,
		}),
		Words: NewCRUD(CRUDConfig[entities.WordItem, dto.CreateWordItemRequest, dto.UpdateWordItemRequest, dto.WordItemResponse]{
			Repo:       repo.Words,
			Validator:  v,
			New:        dto.NewWordItem,
			Apply:      dto.ApplyWordItemUpdate,
			ToResponse: dto.WordItemFromEntity,
			Parents: []ParentLink[dto.CreateWordItemRequest, dto.UpdateWordItemRequest]{{
				Parent:     category,
				FromCreate: func(r dto.CreateWordItemRequest) uint { return r.CategoryID },
				FromUpdate: func(r dto.UpdateWordItemRequest) *uint { return r.CategoryID },
			}},
		}),
	}
}

func (s *PronunciationService) WordsForCategory(ctx context.Context, categoryID uint) ([]dto.WordItemResponse, error) {
	return s.Words.ListBy(ctx, s.category, "category_id", categoryID)
}

// MainQuestionService manages question words ("what", "where") and their
// example words.
type MainQuestionService struct {
	Questions *MainQuestionCRUD
	Words     *MainQuestionWordCRUD

	question Parent
}

func NewMainQuestionService(repo *mainquestions.Repository, v *Validator) *MainQuestionService {
	question := ParentOf(repo.Questions)
	return &MainQuestionService{
		question: question,
		Questions: NewCRUD(CRUDConfig[entities.MainQuestion, dto.CreateMainQuestionRequest, dto.UpdateMainQuestionRequest, dto.MainQuestionResponse]{
			Repo:       repo.Questions,
			Validator:  v,
			New:        dto.NewMainQuestion,
			Apply:      dto.ApplyMainQuestionUpdate,
			ToResponse: dto.MainQuestionFromEntity,
		}),
		Words: NewCRUD(CRUDConfig[entities.MainQuestionWord, dto.CreateMainQuestionWordRequest, dto.UpdateMainQuestionWordRequest, dto.MainQuestionWordResponse]{
			Repo:       repo.Words,
			Validator:  v,
			New:        dto.NewMainQuestionWord,
			Apply:      dto.ApplyMainQuestionWordUpdate,
			ToResponse: dto.MainQuestionWordFromEntity,
			Parents: []ParentLink[dto.CreateMainQuestionWordRequest, dto.UpdateMainQuestionWordRequest]{{
				Parent:     question,
				FromCreate: func(r dto.CreateMainQuestionWordRequest) uint { return r.MainQuestionID },
				FromUpdate: func(r dto.UpdateMainQuestionWordRequest) *uint { return r.MainQuestionID },
			}},
		}),
	}
}

func (s *MainQuestionService) WordsForQuestion(ctx context.Context, questionID uint) ([]dto.MainQuestionWordResponse, error) {
	return s.Words.ListBy(ctx, s.question, "main_question_id", questionID)
}

// NamesService manages English name groups with their male and female names.
type NamesService struct {
	Groups      *EnglishNameCRUD
	MaleNames   *MaleNameCRUD
	FemaleNames *FemaleNameCRUD

	group Parent
}

func NewNamesService(repo *names.Repository, v *Validator) *NamesService {
	group := ParentOf(repo.Groups)
	link := ParentLink[dto.CreateGivenNameRequest, dto.UpdateGivenNameRequest]{
		Parent:     group,
		FromCreate: func(r dto.CreateGivenNameRequest) uint { return r.EnglishNameID },
		FromUpdate: func(r dto.UpdateGivenNameRequest) *uint { return r.EnglishNameID },
	}
	return &NamesService{
		group: group,
		Groups: NewCRUD(CRUDConfig[entities.EnglishName, dto.CreateEnglishNameRequest, dto.UpdateEnglishNameRequest, dto.EnglishNameResponse]{
			Repo:       repo.Groups,
			Validator:  v,
			New:        dto.NewEnglishName,
			Apply:      dto.ApplyEnglishNameUpdate,
			ToResponse: dto.EnglishNameFromEntity,
		}),
		MaleNames: NewCRUD(CRUDConfig[entities.MaleName, dto.CreateGivenNameRequest, dto.UpdateGivenNameRequest, dto.GivenNameResponse]{
			Repo:       repo.MaleNames,
			Validator:  v,
			New:        dto.NewMaleName,
			Apply:      dto.ApplyMaleNameUpdate,
			ToResponse: dto.MaleNameFromEntity,
			Parents:    []ParentLink[dto.CreateGivenNameRequest, dto.UpdateGivenNameRequest]{link},
		}),
		FemaleNames: NewCRUD(CRUDConfig[entities.FemaleName, dto.CreateGivenNameRequest, dto.UpdateGivenNameRequest, dto.GivenNameResponse]{
			Repo:       repo.FemaleNames,
			Validator:  v,
			New:        dto.NewFemaleName,
			Apply:      dto.ApplyFemaleNameUpdate,
			ToResponse: dto.FemaleNameFromEntity,
			Parents:    []ParentLink[dto.CreateGivenNameRequest, dto.UpdateGivenNameRequest]{link},
		}),
	}
}

func (s *NamesService) MaleNamesFor(ctx context.Context, groupID uint) ([]dto.GivenNameResponse, error) {
	return s.MaleNames.ListBy(ctx, s.group, "english_name_id", groupID)
}

func (s *NamesService) FemaleNamesFor(ctx context.Context, groupID uint) ([]dto.GivenNameResponse, error) {
	return s.FemaleNames.ListBy(ctx, s.group, "english_name_id", groupID)
}
