package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/audit"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/services"
)

// registerContentRoutes mounts the lesson, quiz, kids and reference
// collections. GETs are open to any caller that passed authentication;
// writes run behind write.
func registerContentRoutes(api *gin.RouterGroup, svc *services.Services, auditService *audit.Service, write gin.HandlerFunc) {
	// Lessons
	NewResourceController(svc.Lessons.Lessons, auditService).Register(api, "/Lessons", write)
	api.GET("/Lessons/:id/words", listChildren("id", svc.Lessons.WordsForLesson))
	api.GET("/Lessons/:id/phrases", listChildren("id", svc.Lessons.PhrasesForLesson))
	api.GET("/Lessons/:id/quizzes", listChildren("id", svc.Quizzes.QuizzesForLesson))
	NewResourceController(svc.Lessons.Words, auditService).Register(api, "/words", write)
	NewResourceController(svc.Lessons.Phrases, auditService).Register(api, "/phrases", write)

	// Quizzes
	NewResourceController(svc.Quizzes.Quizzes, auditService).Register(api, "/LessonQuiz", write)
	NewResourceController(svc.Quizzes.Questions, auditService).Register(api, "/QuizQuestion", write)
	api.GET("/QuizQuestion/quiz/:quizId", listChildren("quizId", svc.Quizzes.QuestionsForQuiz))
	api.GET("/QuizQuestion/:id/answers", listChildren("id", svc.Quizzes.AnswersForQuestion))
	NewResourceController(svc.Quizzes.Answers, auditService).Register(api, "/QuizAnswer", write)

	// Kids
	NewResourceController(svc.Kids.Lessons, auditService).Register(api, "/kid-lessons", write)
	api.GET("/kid-lessons/:id/cards", listChildren("id", svc.Kids.CardsForLesson))
	NewResourceController(svc.Kids.WordCards, auditService).Register(api, "/KidWordCard", write)
	api.GET("/KidWordCard/:id/questions", listChildren("id", svc.Kids.QuestionsForCard))
	NewResourceController(svc.Kids.QuizTypes, auditService).Register(api, "/KidQuizTypes", write)
	NewResourceController(svc.Kids.Questions, auditService).Register(api, "/KidQuizQuestions", write)
	api.GET("/KidQuizQuestions/:id/answers", listChildren("id", svc.Kids.AnswersForQuestion))
	NewResourceController(svc.Kids.Answers, auditService).Register(api, "/KidQuizAnswer", write)

	// Alphabet
	NewResourceController(svc.Alphabet.Letters, auditService).Register(api, "/AlphabetLetter", write)
	api.GET("/AlphabetLetter/:id/nouns", listChildren("id", svc.Alphabet.NounsForLetter))
	api.GET("/AlphabetLetter/by-letter/:letter", letterByValue(svc.Alphabet))
	NewResourceController(svc.Alphabet.NounWords, auditService).Register(api, "/NounWord", write)

	// Parts of speech and function words
	NewResourceController(svc.Language.PartsOfSpeech, auditService).Register(api, "/PartOfSpeech", write)
	api.GET("/PartOfSpeech/:id/function-words", listChildren("id", svc.Language.WordsForPartOfSpeech))
	NewResourceController(svc.Language.FunctionWords, auditService).Register(api, "/Language/function-word", write)

	// Pronunciation
	NewResourceController(svc.Pronunciation.Categories, auditService).Register(api, "/Pronunciation/categories", write)
	api.GET("/Pronunciation/categories/:id/words", listChildren("id", svc.Pronunciation.WordsForCategory))
	NewResourceController(svc.Pronunciation.Words, auditService).Register(api, "/Pronunciation/words", write)

	// Main questions
	NewResourceController(svc.MainQuestions.Questions, auditService).Register(api, "/MainQuestion", write)
	api.GET("/MainQuestion/:id/words", listChildren("id", svc.MainQuestions.WordsForQuestion))
	NewResourceController(svc.MainQuestions.Words, auditService).Register(api, "/MainQuestionWord", write)

	// Names
	NewResourceController(svc.Names.Groups, auditService).Register(api, "/EnglishName", write)
	api.GET("/EnglishName/:id/names", namesForGroup(svc.Names))
	NewResourceController(svc.Names.MaleNames, auditService).Register(api, "/MaleName", write)
	NewResourceController(svc.Names.FemaleNames, auditService).Register(api, "/FemaleName", write)
}

// letterByValue handles GET /api/AlphabetLetter/by-letter/:letter
func letterByValue(alphabet *services.AlphabetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		letter, err := alphabet.LetterByValue(c.Request.Context(), c.Param("letter"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, letter)
	}
}

// EnglishNameNames lists the male and female names of one English name group.
type EnglishNameNames struct {
	MaleNames   []dto.GivenNameResponse `json:"maleNames"`
	FemaleNames []dto.GivenNameResponse `json:"femaleNames"`
}

// namesForGroup handles GET /api/EnglishName/:id/names
func namesForGroup(names *services.NamesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		ctx := c.Request.Context()

		male, err := names.MaleNamesFor(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		female, err := names.FemaleNamesFor(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, EnglishNameNames{MaleNames: male, FemaleNames: female})
	}
}
