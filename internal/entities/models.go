// Package entities holds the GORM models persisted by the database layer.
package entities

// All lists every model in dependency order for auto-migration.
func All() []any {
	return []any{
		&User{},
		&Lesson{},
		&LessonWord{},
		&LessonPhrase{},
		&Quiz{},
		&QuizQuestion{},
		&QuizAnswer{},
		&KidLesson{},
		&KidWordCard{},
		&KidQuizType{},
		&KidQuizQuestion{},
		&KidQuizAnswer{},
		&AlphabetLetter{},
		&NounWord{},
		&PartOfSpeech{},
		&FunctionWord{},
		&PronunciationCategory{},
		&WordItem{},
		&MainQuestion{},
		&MainQuestionWord{},
		&EnglishName{},
		&MaleName{},
		&FemaleName{},
		&UserProgress{},
		&UserWordProgress{},
		&PasswordResetToken{},
		&AuditEvent{},
	}
}
