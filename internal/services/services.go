package services

import (
	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/database/alphabet"
	"github.com/langschool/contentapi/internal/database/kids"
	"github.com/langschool/contentapi/internal/database/language"
	"github.com/langschool/contentapi/internal/database/lessons"
	"github.com/langschool/contentapi/internal/database/mainquestions"
	"github.com/langschool/contentapi/internal/database/names"
	"github.com/langschool/contentapi/internal/database/progress"
	"github.com/langschool/contentapi/internal/database/pronunciation"
	"github.com/langschool/contentapi/internal/database/quizzes"
	"github.com/langschool/contentapi/internal/database/users"
)

// Services bundles every feature service over one database.
type Services struct {
	Validator     *Validator
	Lessons       *LessonService
	Quizzes       *QuizService
	Kids          *KidService
	Alphabet      *AlphabetService
	Language      *LanguageService
	Pronunciation *PronunciationService
	MainQuestions *MainQuestionService
	Names         *NamesService
	Users         *UserService
	Progress      *ProgressService
	Import        *ImportService
}

func New(db *gorm.DB, v *Validator) *Services {
	lessonRepo := lessons.NewRepository(db)
	quizRepo := quizzes.NewRepository(db)
	userRepo := users.NewRepository(db)

	ls := NewLessonService(lessonRepo, v)
	return &Services{
		Validator:     v,
		Lessons:       ls,
		Quizzes:       NewQuizService(quizRepo, ls.LessonParent(), v),
		Kids:          NewKidService(kids.NewRepository(db), v),
		Alphabet:      NewAlphabetService(alphabet.NewRepository(db), v),
		Language:      NewLanguageService(language.NewRepository(db), v),
		Pronunciation: NewPronunciationService(pronunciation.NewRepository(db), v),
		MainQuestions: NewMainQuestionService(mainquestions.NewRepository(db), v),
		Names:         NewNamesService(names.NewRepository(db), v),
		Users:         NewUserService(userRepo, v),
		Progress:      NewProgressService(progress.NewRepository(db), userRepo, lessonRepo, quizRepo, v),
		Import:        NewImportService(lessonRepo, ls.LessonParent(), v),
	}
}
