package dto

import (
	"strings"

	"github.com/langschool/contentapi/internal/entities"
)

// --- AlphabetLetter ---

type CreateAlphabetLetterRequest struct {
	Letter   string `json:"letter" validate:"required,max=2,alphaunicode"`
	ImageURL string `json:"imageUrl" validate:"max=500"`
	AudioURL string `json:"audioUrl" validate:"max=500"`
}

type UpdateAlphabetLetterRequest struct {
	Letter   *string `json:"letter" validate:"omitempty,max=2,alphaunicode"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,max=500"`
	AudioURL *string `json:"audioUrl" validate:"omitempty,max=500"`
}

type AlphabetLetterResponse struct {
	ID        uint               `json:"id"`
	Letter    string             `json:"letter"`
	LowerCase string             `json:"lowerCase"`
	ImageURL  string             `json:"imageUrl"`
	AudioURL  string             `json:"audioUrl"`
	NounWords []NounWordResponse `json:"nounWords,omitempty"`
}

func NewAlphabetLetter(r CreateAlphabetLetterRequest) entities.AlphabetLetter {
	return entities.AlphabetLetter{
		Letter:   strings.ToUpper(strings.TrimSpace(r.Letter)),
		ImageURL: r.ImageURL,
		AudioURL: r.AudioURL,
	}
}

func ApplyAlphabetLetterUpdate(r UpdateAlphabetLetterRequest, e *entities.AlphabetLetter) {
	if r.Letter != nil {
		e.Letter = strings.ToUpper(strings.TrimSpace(*r.Letter))
	}
	set(&e.ImageURL, r.ImageURL)
	set(&e.AudioURL, r.AudioURL)
}

func AlphabetLetterFromEntity(e *entities.AlphabetLetter) AlphabetLetterResponse {
	return AlphabetLetterResponse{
		ID:        e.ID,
		Letter:    e.Letter,
		LowerCase: strings.ToLower(e.Letter),
		ImageURL:  e.ImageURL,
		AudioURL:  e.AudioURL,
		NounWords: optionalSlice(e.NounWords, NounWordFromEntity),
	}
}

// --- NounWord ---

type CreateNounWordRequest struct {
	AlphabetLetterID uint   `json:"alphabetLetterId" validate:"required"`
	Word             string `json:"word" validate:"required,notblank,max=200"`
	Translation      string `json:"translation" validate:"max=200"`
	ImageURL         string `json:"imageUrl" validate:"max=500"`
	AudioURL         string `json:"audioUrl" validate:"max=500"`
}

type UpdateNounWordRequest struct {
	AlphabetLetterID *uint   `json:"alphabetLetterId" validate:"omitempty,min=1"`
	Word             *string `json:"word" validate:"omitempty,notblank,max=200"`
	Translation      *string `json:"translation" validate:"omitempty,max=200"`
	ImageURL         *string `json:"imageUrl" validate:"omitempty,max=500"`
	AudioURL         *string `json:"audioUrl" validate:"omitempty,max=500"`
}

type NounWordResponse struct {
	ID               uint   `json:"id"`
	AlphabetLetterID uint   `json:"alphabetLetterId"`
	Word             string `json:"word"`
	Translation      string `json:"translation"`
	ImageURL         string `json:"imageUrl"`
	AudioURL         string `json:"audioUrl"`
}

func NewNounWord(r CreateNounWordRequest) entities.NounWord {
	return entities.NounWord{
		AlphabetLetterID: r.AlphabetLetterID,
		Word:             r.Word,
		Translation:      r.Translation,
		ImageURL:         r.ImageURL,
		AudioURL:         r.AudioURL,
	}
}

func ApplyNounWordUpdate(r UpdateNounWordRequest, e *entities.NounWord) {
	set(&e.AlphabetLetterID, r.AlphabetLetterID)
	set(&e.Word, r.Word)
	set(&e.Translation, r.Translation)
	set(&e.ImageURL, r.ImageURL)
	set(&e.AudioURL, r.AudioURL)
}

func NounWordFromEntity(e *entities.NounWord) NounWordResponse {
	return NounWordResponse{
		ID:               e.ID,
		AlphabetLetterID: e.AlphabetLetterID,
		Word:             e.Word,
		Translation:      e.Translation,
		ImageURL:         e.ImageURL,
		AudioURL:         e.AudioURL,
	}
}

// --- PartOfSpeech ---

type CreatePartOfSpeechRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type UpdatePartOfSpeechRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type PartOfSpeechResponse struct {
	ID            uint                   `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	FunctionWords []FunctionWordResponse `json:"functionWords,omitempty"`
}

func NewPartOfSpeech(r CreatePartOfSpeechRequest) entities.PartOfSpeech {
	return entities.PartOfSpeech{Name: r.Name, Description: r.Description}
}

func ApplyPartOfSpeechUpdate(r UpdatePartOfSpeechRequest, e *entities.PartOfSpeech) {
	set(&e.Name, r.Name)
	set(&e.Description, r.Description)
}

func PartOfSpeechFromEntity(e *entities.PartOfSpeech) PartOfSpeechResponse {
	return PartOfSpeechResponse{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		FunctionWords: optionalSlice(e.FunctionWords, FunctionWordFromEntity),
	}
}

// --- FunctionWord ---

type CreateFunctionWordRequest struct {
	PartOfSpeechID uint   `json:"partOfSpeechId" validate:"required"`
	Word           string `json:"word" validate:"required,notblank,max=200"`
	Translation    string `json:"translation" validate:"max=200"`
	Example        string `json:"example" validate:"max=1000"`
}

type UpdateFunctionWordRequest struct {
	PartOfSpeechID *uint   `json:"partOfSpeechId" validate:"omitempty,min=1"`
	Word           *string `json:"word" validate:"omitempty,notblank,max=200"`
	Translation    *string `json:"translation" validate:"omitempty,max=200"`
	Example        *string `json:"example" validate:"omitempty,max=1000"`
}

type FunctionWordResponse struct {
	ID             uint   `json:"id"`
	PartOfSpeechID uint   `json:"partOfSpeechId"`
	Word           string `json:"word"`
	Translation    string `json:"translation"`
	Example        string `json:"example"`
}

func NewFunctionWord(r CreateFunctionWordRequest) entities.FunctionWord {
	return entities.FunctionWord{PartOfSpeechID: r.PartOfSpeechID, Word: r.Word, Translation: r.Translation, Example: r.Example}
}

func ApplyFunctionWordUpdate(r UpdateFunctionWordRequest, e *entities.FunctionWord) {
	set(&e.PartOfSpeechID, r.PartOfSpeechID)
	set(&e.Word, r.Word)
	set(&e.Translation, r.Translation)
	set(&e.Example, r.Example)
}

func FunctionWordFromEntity(e *entities.FunctionWord) FunctionWordResponse {
	return FunctionWordResponse{ID: e.ID, PartOfSpeechID: e.PartOfSpeechID, Word: e.Word, Translation: e.Translation, Example: e.Example}
}

// --- PronunciationCategory ---

type CreatePronunciationCategoryRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=1000"`
	ImageURL    string `json:"imageUrl" validate:"max=500"`
}

type UpdatePronunciationCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=500"`
}

type PronunciationCategoryResponse struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ImageURL    string             `json:"imageUrl"`
	Words       []WordItemResponse `json:"words,omitempty"`
}

func NewPronunciationCategory(r CreatePronunciationCategoryRequest) entities.PronunciationCategory {
	return entities.PronunciationCategory{Name: r.Name, Description: r.Description, ImageURL: r.ImageURL}
}

func ApplyPronunciationCategoryUpdate(r UpdatePronunciationCategoryRequest, e *entities.PronunciationCategory) {
	set(&e.Name, r.Name)
	set(&e.Description, r.Description)
	set(&e.ImageURL, r.ImageURL)
}

func PronunciationCategoryFromEntity(e *entities.PronunciationCategory) PronunciationCategoryResponse {
	return PronunciationCategoryResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		Words:       optionalSlice(e.Words, WordItemFromEntity),
	}
}

// --- WordItem ---

type CreateWordItemRequest struct {
	CategoryID    uint   `json:"categoryId" validate:"required"`
	Word          string `json:"word" validate:"required,notblank,max=200"`
	Transcription string `json:"transcription" validate:"max=200"`
	AudioURL      string `json:"audioUrl" validate:"max=500"`
	ImageURL      string `json:"imageUrl" validate:"max=500"`
}

type UpdateWordItemRequest struct {
	CategoryID    *uint   `json:"categoryId" validate:"omitempty,min=1"`
	Word          *string `json:"word" validate:"omitempty,notblank,max=200"`
	Transcription *string `json:"transcription" validate:"omitempty,max=200"`
	AudioURL      *string `json:"audioUrl" validate:"omitempty,max=500"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,max=500"`
}

type WordItemResponse struct {
	ID            uint   `json:"id"`
	CategoryID    uint   `json:"categoryId"`
	Word          string `json:"word"`
	Transcription string `json:"transcription"`
	AudioURL      string `json:"audioUrl"`
	ImageURL      string `json:"imageUrl"`
}

func NewWordItem(r CreateWordItemRequest) entities.WordItem {
	return entities.WordItem{
		CategoryID:    r.CategoryID,
		Word:          r.Word,
		Transcription: r.Transcription,
		AudioURL:      r.AudioURL,
		ImageURL:      r.ImageURL,
	}
}

func ApplyWordItemUpdate(r UpdateWordItemRequest, e *entities.WordItem) {
	set(&e.CategoryID, r.CategoryID)
	set(&e.Word, r.Word)
	set(&e.Transcription, r.Transcription)
	set(&e.AudioURL, r.AudioURL)
	set(&e.ImageURL, r.ImageURL)
}

func WordItemFromEntity(e *entities.WordItem) WordItemResponse {
	return WordItemResponse{
		ID:            e.ID,
		CategoryID:    e.CategoryID,
		Word:          e.Word,
		Transcription: e.Transcription,
		AudioURL:      e.AudioURL,
		ImageURL:      e.ImageURL,
	}
}

// --- MainQuestion ---

type CreateMainQuestionRequest struct {
	Question    string `json:"question" validate:"required,notblank,max=500"`
	Translation string `json:"translation" validate:"max=500"`
	AudioURL    string `json:"audioUrl" validate:"max=500"`
}

type UpdateMainQuestionRequest struct {
	Question    *string `json:"question" validate:"omitempty,notblank,max=500"`
	Translation *string `json:"translation" validate:"omitempty,max=500"`
	AudioURL    *string `json:"audioUrl" validate:"omitempty,max=500"`
}

type MainQuestionResponse struct {
	ID          uint                       `json:"id"`
	Question    string                     `json:"question"`
	Translation string                     `json:"translation"`
	AudioURL    string                     `json:"audioUrl"`
	Words       []MainQuestionWordResponse `json:"words,omitempty"`
}

func NewMainQuestion(r CreateMainQuestionRequest) entities.MainQuestion {
	return entities.MainQuestion{Question: r.Question, Translation: r.Translation, AudioURL: r.AudioURL}
}

func ApplyMainQuestionUpdate(r UpdateMainQuestionRequest, e *entities.MainQuestion) {
	set(&e.Question, r.Question)
	set(&e.Translation, r.Translation)
	set(&e.AudioURL, r.AudioURL)
}

func MainQuestionFromEntity(e *entities.MainQuestion) MainQuestionResponse {
	return MainQuestionResponse{
		ID:          e.ID,
		Question:    e.Question,
		Translation: e.Translation,
		AudioURL:    e.AudioURL,
		Words:       optionalSlice(e.Words, MainQuestionWordFromEntity),
	}
}

// --- MainQuestionWord ---

type CreateMainQuestionWordRequest struct {
	MainQuestionID uint   `json:"mainQuestionId" validate:"required"`
	Word           string `json:"word" validate:"required,notblank,max=200"`
	Translation    string `json:"translation" validate:"max=200"`
	Example        string `json:"example" validate:"max=1000"`
}

type UpdateMainQuestionWordRequest struct {
	MainQuestionID *uint   `json:"mainQuestionId" validate:"omitempty,min=1"`
	Word           *string `json:"word" validate:"omitempty,notblank,max=200"`
	Translation    *string `json:"translation" validate:"omitempty,max=200"`
	Example        *string `json:"example" validate:"omitempty,max=1000"`
}

type MainQuestionWordResponse struct {
	ID             uint   `json:"id"`
	MainQuestionID uint   `json:"mainQuestionId"`
	Word           string `json:"word"`
	Translation    string `json:"translation"`
	Example        string `json:"example"`
}

func NewMainQuestionWord(r CreateMainQuestionWordRequest) entities.MainQuestionWord {
	return entities.MainQuestionWord{MainQuestionID: r.MainQuestionID, Word: r.Word, Translation: r.Translation, Example: r.Example}
}

func ApplyMainQuestionWordUpdate(r UpdateMainQuestionWordRequest, e *entities.MainQuestionWord) {
	set(&e.MainQuestionID, r.MainQuestionID)
	set(&e.Word, r.Word)
	set(&e.Translation, r.Translation)
	set(&e.Example, r.Example)
}

func MainQuestionWordFromEntity(e *entities.MainQuestionWord) MainQuestionWordResponse {
	return MainQuestionWordResponse{ID: e.ID, MainQuestionID: e.MainQuestionID, Word: e.Word, Translation: e.Translation, Example: e.Example}
}

// --- EnglishName ---

type CreateEnglishNameRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=1000"`
}

type UpdateEnglishNameRequest struct {
	Title       *string `json:"title" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type EnglishNameResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	MaleNames   []GivenNameResponse `json:"maleNames,omitempty"`
	FemaleNames []GivenNameResponse `json:"femaleNames,omitempty"`
}

func NewEnglishName(r CreateEnglishNameRequest) entities.EnglishName {
	return entities.EnglishName{Title: r.Title, Description: r.Description}
}

func ApplyEnglishNameUpdate(r UpdateEnglishNameRequest, e *entities.EnglishName) {
	set(&e.Title, r.Title)
	set(&e.Description, r.Description)
}

func EnglishNameFromEntity(e *entities.EnglishName) EnglishNameResponse {
	return EnglishNameResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		MaleNames:   optionalSlice(e.MaleNames, MaleNameFromEntity),
		FemaleNames: optionalSlice(e.FemaleNames, FemaleNameFromEntity),
	}
}

// --- MaleName / FemaleName ---

// CreateGivenNameRequest is shared by male and female names.
type CreateGivenNameRequest struct {
	EnglishNameID uint   `json:"englishNameId" validate:"required"`
	Name          string `json:"name" validate:"required,notblank,max=100"`
	Pronunciation string `json:"pronunciation" validate:"max=200"`
	Meaning       string `json:"meaning" validate:"max=500"`
}

type UpdateGivenNameRequest struct {
	EnglishNameID *uint   `json:"englishNameId" validate:"omitempty,min=1"`
	Name          *string `json:"name" validate:"omitempty,notblank,max=100"`
	Pronunciation *string `json:"pronunciation" validate:"omitempty,max=200"`
	Meaning       *string `json:"meaning" validate:"omitempty,max=500"`
}

type GivenNameResponse struct {
	ID            uint   `json:"id"`
	EnglishNameID uint   `json:"englishNameId"`
	Name          string `json:"name"`
	Pronunciation string `json:"pronunciation"`
	Meaning       string `json:"meaning"`
	Gender        string `json:"gender"`
}

func NewMaleName(r CreateGivenNameRequest) entities.MaleName {
	return entities.MaleName{EnglishNameID: r.EnglishNameID, Name: r.Name, Pronunciation: r.Pronunciation, Meaning: r.Meaning}
}

func NewFemaleName(r CreateGivenNameRequest) entities.FemaleName {
	return entities.FemaleName{EnglishNameID: r.EnglishNameID, Name: r.Name, Pronunciation: r.Pronunciation, Meaning: r.Meaning}
}

func ApplyMaleNameUpdate(r UpdateGivenNameRequest, e *entities.MaleName) {
	set(&e.EnglishNameID, r.EnglishNameID)
	set(&e.Name, r.Name)
	set(&e.Pronunciation, r.Pronunciation)
	set(&e.Meaning, r.Meaning)
}

func ApplyFemaleNameUpdate(r UpdateGivenNameRequest, e *entities.FemaleName) {
	set(&e.EnglishNameID, r.EnglishNameID)
	set(&e.Name, r.Name)
	set(&e.Pronunciation, r.Pronunciation)
	set(&e.Meaning, r.Meaning)
}

func MaleNameFromEntity(e *entities.MaleName) GivenNameResponse {
	return GivenNameResponse{ID: e.ID, EnglishNameID: e.EnglishNameID, Name: e.Name, Pronunciation: e.Pronunciation, Meaning: e.Meaning, Gender: "male"}
}

func FemaleNameFromEntity(e *entities.FemaleName) GivenNameResponse {
	return GivenNameResponse{ID: e.ID, EnglishNameID: e.EnglishNameID, Name: e.Name, Pronunciation: e.Pronunciation, Meaning: e.Meaning, Gender: "female"}
}
