package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langschool/contentapi/internal/entities"
)

func strPtr(s string) *string { return &s }

func TestApplyKidLessonUpdateIgnoresNullFields(t *testing.T) {
	lesson := entities.KidLesson{Title: "Animals", Description: "Farm animals", ImageURL: "https://cdn/animals.png"}

	ApplyKidLessonUpdate(UpdateKidLessonRequest{Title: strPtr("Zoo animals")}, &lesson)

	assert.Equal(t, "Zoo animals", lesson.Title)
	assert.Equal(t, "Farm animals", lesson.Description)
	assert.Equal(t, "https://cdn/animals.png", lesson.ImageURL)
}

func TestApplyUpdateCanClearWithEmptyString(t *testing.T) {
	word := entities.LessonWord{Word: "cat", Transcription: "/kæt/"}

	ApplyLessonWordUpdate(UpdateLessonWordRequest{Transcription: strPtr("")}, &word)

	assert.Equal(t, "cat", word.Word)
	assert.Empty(t, word.Transcription)
}

func TestAlphabetLetterCasing(t *testing.T) {
	letter := NewAlphabetLetter(CreateAlphabetLetterRequest{Letter: " b "})
	assert.Equal(t, "B", letter.Letter)

	resp := AlphabetLetterFromEntity(&letter)
	assert.Equal(t, "B", resp.Letter)
	assert.Equal(t, "b", resp.LowerCase)

	ApplyAlphabetLetterUpdate(UpdateAlphabetLetterRequest{Letter: strPtr("sh")}, &letter)
	assert.Equal(t, "SH", letter.Letter)
}

func TestUserFromEntityDerivedFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name        string
		lockoutEnd  *time.Time
		wantBlocked bool
	}{
		{"never locked", nil, false},
		{"lockout expired", &past, false},
		{"locked", &future, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &entities.User{FirstName: "Ann", LastName: "Lee", Role: entities.RoleEditor, LockoutEnd: tt.lockoutEnd}
			resp := UserFromEntity(u, now)
			assert.Equal(t, tt.wantBlocked, resp.IsBlocked)
			assert.Equal(t, "Ann Lee", resp.FullName)
			assert.Equal(t, "editor", resp.Role)
			if tt.wantBlocked {
				require.NotNil(t, resp.LockoutEnd)
			} else {
				assert.Nil(t, resp.LockoutEnd)
			}
		})
	}
}

func TestLessonFromEntityCountsChildren(t *testing.T) {
	lesson := &entities.Lesson{
		ID:    3,
		Title: "Food",
		Words: []entities.LessonWord{{ID: 1, Word: "bread"}, {ID: 2, Word: "water"}},
	}
	resp := LessonFromEntity(lesson)
	assert.Equal(t, 2, resp.WordCount)
	assert.Len(t, resp.Words, 2)
	assert.Zero(t, resp.PhraseCount)
	assert.Nil(t, resp.Phrases)
}

func TestNewQuizQuestionCarriesAnswers(t *testing.T) {
	q := NewQuizQuestion(CreateQuizQuestionRequest{
		QuizID:       1,
		QuestionText: "Translate 'cat'",
		QuestionType: "single_choice",
		Answers:      []AnswerInput{{AnswerText: "mushuk", IsCorrect: true}, {AnswerText: "it"}},
	})
	require.Len(t, q.Answers, 2)
	assert.True(t, q.Answers[0].IsCorrect)
	assert.Equal(t, entities.QuestionTypeSingleChoice, q.QuestionType)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(5, 5))
}

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 5, 2, 0)
	assert.True(t, p.HasMore)

	empty := NewPage[int](nil, 0, 10, 0)
	assert.NotNil(t, empty.Data)
	assert.False(t, empty.HasMore)
}

func TestLoginIdentifier(t *testing.T) {
	assert.Equal(t, "a@b.c", LoginRequest{Email: "a@b.c"}.Identifier())
	assert.Equal(t, "ann", LoginRequest{Login: "ann", Email: "x@y.z"}.Identifier())
	assert.Empty(t, LoginRequest{}.Identifier())
}
