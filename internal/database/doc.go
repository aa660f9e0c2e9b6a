// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages built on
// a generic repository:
//
//	database/
//	├── database.go      # Connection setup (mysql or sqlite), migrations, seeding
//	├── gorm_logger.go   # GORM -> slog adapter
//	├── crud/            # Generic Repository[T]: GetByID, GetAll, Add, Update, Delete
//	├── lessons/         # Lessons, lesson words, lesson phrases
//	├── quizzes/         # Lesson quizzes, questions, answers
//	├── kids/            # Kid lessons, word cards, quiz types/questions/answers
//	├── alphabet/        # Alphabet letters and noun words
//	├── language/        # Parts of speech and function words
//	├── pronunciation/   # Pronunciation categories and word items
//	├── mainquestions/   # Main questions and their words
//	├── names/           # English names, male names, female names
//	├── users/           # Accounts, lockout, password reset tokens
//	├── progress/        # Lesson and word progress
//	└── audit/           # Audit trail
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database)
//	lessonsRepo := lessons.NewRepository(db.DB)
//	lesson, err := lessonsRepo.Lessons.GetByID(ctx, 7)
//
// Every repository returns apperr.ErrNotFound (wrapped) for missing rows and
// apperr.ErrConflict for unique or foreign key violations, so services never
// inspect driver errors.
//
// # Adding a New Domain
//
//  1. Add the model to internal/entities and to entities.All()
//  2. Create a sub-package with a Repository composed of crud.Repository[T]
//  3. Add NewRepository(db *gorm.DB) and any domain queries
//  4. Add a compile-time interface check in internal/interfaces/checks.go
package database
