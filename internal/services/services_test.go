package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/database/kids"
	"github.com/langschool/contentapi/internal/database/lessons"
	"github.com/langschool/contentapi/internal/database/progress"
	"github.com/langschool/contentapi/internal/database/quizzes"
	"github.com/langschool/contentapi/internal/database/users"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/testutil"
)

type fixture struct {
	lessons  *LessonService
	quizzes  *QuizService
	kids     *KidService
	users    *UserService
	progress *ProgressService
	importer *ImportService
	userRepo *users.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDatabase(t).DB
	v := NewValidator()

	lessonRepo := lessons.NewRepository(db)
	quizRepo := quizzes.NewRepository(db)
	userRepo := users.NewRepository(db)

	ls := NewLessonService(lessonRepo, v)
	return &fixture{
		lessons:  ls,
		quizzes:  NewQuizService(quizRepo, ls.LessonParent(), v),
		kids:     NewKidService(kids.NewRepository(db), v),
		users:    NewUserService(userRepo, v),
		progress: NewProgressService(progress.NewRepository(db), userRepo, lessonRepo, quizRepo, v),
		importer: NewImportService(lessonRepo, ls.LessonParent(), v),
		userRepo: userRepo,
	}
}

func (f *fixture) lesson(t *testing.T) *dto.LessonResponse {
	t.Helper()
	l, err := f.lessons.Lessons.Create(context.Background(), dto.CreateLessonRequest{Title: "Greetings"})
	require.NoError(t, err)
	return l
}

func (f *fixture) user(t *testing.T, name string, role entities.UserRole) *entities.User {
	t.Helper()
	u := &entities.User{Email: name + "@example.com", UserName: name, PasswordHash: "x", Role: role}
	require.NoError(t, f.userRepo.Create(context.Background(), u))
	return u
}

func strp(s string) *string { return &s }

func TestLessonService_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.lesson(t)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 0, created.WordCount)

	_, err := f.lessons.Words.Create(ctx, dto.CreateLessonWordRequest{LessonID: created.ID, Word: "hello", Translation: "salom"})
	require.NoError(t, err)

	got, err := f.lessons.Lessons.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Greetings", got.Title)
	assert.Equal(t, 1, got.WordCount)
}

func TestLessonService_GetMissingIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.lessons.Lessons.Get(context.Background(), 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLessonService_ValidationErrorsUseJSONNames(t *testing.T) {
	f := newFixture(t)

	_, err := f.lessons.Words.Create(context.Background(), dto.CreateLessonWordRequest{})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]string{}
	for _, fe := range verr.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "is required", fields["lessonId"])
	assert.Equal(t, "is required", fields["word"])
	assert.Equal(t, "is required", fields["translation"])
}

func TestLessonService_ChildOfMissingParentIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.lessons.Words.Create(ctx, dto.CreateLessonWordRequest{LessonID: 42, Word: "hi", Translation: "salom"})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "Lesson")

	_, err = f.lessons.WordsForLesson(ctx, 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLessonService_UpdateMovingToMissingParentIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.lesson(t)

	w, err := f.lessons.Words.Create(ctx, dto.CreateLessonWordRequest{LessonID: l.ID, Word: "hi", Translation: "salom"})
	require.NoError(t, err)

	missing := uint(77)
	_, err = f.lessons.Words.Update(ctx, w.ID, dto.UpdateLessonWordRequest{LessonID: &missing})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLessonService_DuplicatePhraseIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.lesson(t)

	req := dto.CreateLessonPhraseRequest{LessonID: l.ID, PhraseText: "Good morning", Translation: "Xayrli tong"}
	_, err := f.lessons.Phrases.Create(ctx, req)
	require.NoError(t, err)

	_, err = f.lessons.Phrases.Create(ctx, req)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestLessonService_PhraseUpdateCannotDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.lesson(t)

	_, err := f.lessons.Phrases.Create(ctx, dto.CreateLessonPhraseRequest{LessonID: l.ID, PhraseText: "hi", Translation: "salut"})
	require.NoError(t, err)
	hey, err := f.lessons.Phrases.Create(ctx, dto.CreateLessonPhraseRequest{LessonID: l.ID, PhraseText: "hey", Translation: "salut"})
	require.NoError(t, err)

	_, err = f.lessons.Phrases.Update(ctx, hey.ID, dto.UpdateLessonPhraseRequest{PhraseText: strp("hi")})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	got, err := f.lessons.Phrases.Get(ctx, hey.ID)
	require.NoError(t, err)
	assert.Equal(t, "hey", got.PhraseText)
}

func TestValidator_RejectsBlankText(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.kids.Lessons.Create(ctx, dto.CreateKidLessonRequest{Title: "   "})
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "title", verr.Errors[0].Field)
	assert.Equal(t, "must not be blank", verr.Errors[0].Message)

	l, err := f.kids.Lessons.Create(ctx, dto.CreateKidLessonRequest{Title: "Animals"})
	require.NoError(t, err)

	_, err = f.kids.Lessons.Update(ctx, l.ID, dto.UpdateKidLessonRequest{Title: strp(" \t ")})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.lessons.Words.Update(ctx, 1, dto.UpdateLessonWordRequest{Word: strp("  ")})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	got, err := f.kids.Lessons.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Animals", got.Title)
}

func TestLessonService_DeleteReturnsRemovedRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.lesson(t)

	removed, err := f.lessons.Lessons.Delete(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, removed.ID)

	_, err = f.lessons.Lessons.Delete(ctx, l.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestQuizService_QuestionWithInlineAnswers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.lesson(t)

	quiz, err := f.quizzes.Quizzes.Create(ctx, dto.CreateQuizRequest{LessonID: l.ID, Title: "Check", Type: string(entities.QuizTypeMultipleChoice)})
	require.NoError(t, err)

	q, err := f.quizzes.Questions.Create(ctx, dto.CreateQuizQuestionRequest{
		QuizID:       quiz.ID,
		QuestionText: "Hello means?",
		QuestionType: string(entities.QuestionTypeSingleChoice),
		Answers: []dto.AnswerInput{
			{AnswerText: "salom", IsCorrect: true},
			{AnswerText: "xayr"},
		},
	})
	require.NoError(t, err)
	require.Len(t, q.Answers, 2)

	answers, err := f.quizzes.AnswersForQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, answers, 2)
}

func TestKidService_PartialUpdateKeepsOmittedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	l, err := f.kids.Lessons.Create(ctx, dto.CreateKidLessonRequest{Title: "Animals", Description: "Farm animals"})
	require.NoError(t, err)

	updated, err := f.kids.Lessons.Update(ctx, l.ID, dto.UpdateKidLessonRequest{Title: strp("Pets")})
	require.NoError(t, err)
	assert.Equal(t, "Pets", updated.Title)
	assert.Equal(t, "Farm animals", updated.Description)
}

func TestKidService_QuestionChecksBothParents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	l, err := f.kids.Lessons.Create(ctx, dto.CreateKidLessonRequest{Title: "Animals"})
	require.NoError(t, err)
	card, err := f.kids.WordCards.Create(ctx, dto.CreateKidWordCardRequest{KidLessonID: l.ID, Word: "cat"})
	require.NoError(t, err)

	_, err = f.kids.Questions.Create(ctx, dto.CreateKidQuizQuestionRequest{KidWordCardID: card.ID, KidQuizTypeID: 999})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "KidQuizType")

	types, err := f.kids.QuizTypes.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, types)

	q, err := f.kids.Questions.Create(ctx, dto.CreateKidQuizQuestionRequest{
		KidWordCardID: card.ID,
		KidQuizTypeID: types[0].ID,
		Answers:       []dto.KidAnswerInput{{AnswerText: "cat", IsCorrect: true}},
	})
	require.NoError(t, err)

	listed, err := f.kids.QuestionsForCard(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, q.ID, listed[0].ID)
}

func TestUserService_UpdateAndPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "alice", entities.RoleLearner)
	f.user(t, "bob", entities.RoleLearner)

	role := "editor"
	updated, err := f.users.Update(ctx, u.ID, dto.UpdateUserRequest{
		UpdateProfileRequest: dto.UpdateProfileRequest{FirstName: strp("Alice"), LastName: strp("Smith")},
		Role:                 &role,
	})
	require.NoError(t, err)
	assert.Equal(t, "editor", updated.Role)
	assert.Equal(t, "Alice Smith", updated.FullName)

	bad := "owner"
	_, err = f.users.Update(ctx, u.ID, dto.UpdateUserRequest{Role: &bad})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	page, err := f.users.List(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Data, 1)
	assert.True(t, page.HasMore)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name           string
		limit, offset  int
		wantL, wantOff int
	}{
		{"defaults", 0, -5, DefaultPageSize, 0},
		{"clamped", 10000, 3, MaxPageSize, 3},
		{"kept", 20, 40, 20, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, o := NormalizePage(tt.limit, tt.offset)
			assert.Equal(t, tt.wantL, l)
			assert.Equal(t, tt.wantOff, o)
		})
	}
}

func TestProgressService_OwnershipRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.lesson(t)
	alice := f.user(t, "alice", entities.RoleLearner)
	bob := f.user(t, "bob", entities.RoleLearner)
	admin := f.user(t, "root", entities.RoleAdmin)

	asAlice := Actor{UserID: alice.ID, Role: alice.Role}
	asBob := Actor{UserID: bob.ID, Role: bob.Role}
	asAdmin := Actor{UserID: admin.ID, Role: admin.Role}

	p, err := f.progress.Record(ctx, asAlice, dto.CreateUserProgressRequest{LessonID: l.ID, CorrectAnswers: 3, TotalQuestions: 4, IsCompleted: true})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, p.UserID)
	assert.Equal(t, 75, p.ScorePercent)
	assert.NotNil(t, p.CompletedAt)

	_, err = f.progress.Record(ctx, asBob, dto.CreateUserProgressRequest{UserID: alice.ID, LessonID: l.ID})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = f.progress.Get(ctx, asBob, p.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	rows, err := f.progress.ForUser(ctx, asAdmin, alice.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = f.progress.Record(ctx, asAlice, dto.CreateUserProgressRequest{LessonID: l.ID, CorrectAnswers: 5, TotalQuestions: 4})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestProgressService_RecordWordAnswer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.lesson(t)
	alice := f.user(t, "alice", entities.RoleLearner)
	actor := Actor{UserID: alice.ID, Role: alice.Role}

	w, err := f.lessons.Words.Create(ctx, dto.CreateLessonWordRequest{LessonID: l.ID, Word: "one", Translation: "bir"})
	require.NoError(t, err)

	_, err = f.progress.RecordWordAnswer(ctx, actor, dto.RecordWordAnswerRequest{LessonWordID: w.ID, IsCorrect: true})
	require.NoError(t, err)
	row, err := f.progress.RecordWordAnswer(ctx, actor, dto.RecordWordAnswerRequest{LessonWordID: w.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, row.Attempts)
	assert.Equal(t, 1, row.CorrectAttempts)
	assert.Equal(t, 50, row.AccuracyPercent)
	assert.False(t, row.LastCorrect)

	_, err = f.progress.RecordWordAnswer(ctx, actor, dto.RecordWordAnswerRequest{LessonWordID: 404})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestImportService_CSV(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.lesson(t)

	_, err := f.lessons.Words.Create(ctx, dto.CreateLessonWordRequest{LessonID: l.ID, Word: "apple", Translation: "olma"})
	require.NoError(t, err)

	body := strings.Join([]string{
		"word,translation,transcription",
		"Apple,olma,",
		"pear,nok,/peə/",
		",missing word,",
		"",
		"plum,olxo'ri,",
	}, "\n")

	res, err := f.importer.ImportWords(ctx, l.ID, "words.CSV", strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 4, res.Errors[0].Row)
	assert.Contains(t, res.Errors[0].Message, "word is required")

	words, err := f.lessons.WordsForLesson(ctx, l.ID)
	require.NoError(t, err)
	assert.Len(t, words, 3)
}

func TestImportService_Excel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.lesson(t)

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	require.NoError(t, book.SetSheetRow(sheet, "A1", &[]any{"Word", "Translation"}))
	require.NoError(t, book.SetSheetRow(sheet, "A2", &[]any{"dog", "it"}))
	require.NoError(t, book.SetSheetRow(sheet, "A3", &[]any{"cat", "mushuk"}))
	var buf bytes.Buffer
	require.NoError(t, book.Write(&buf))

	res, err := f.importer.ImportWords(ctx, l.ID, "animals.xlsx", &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 2, res.Created)
	assert.Empty(t, res.Errors)
}

func TestImportService_RejectsUnknownFormatAndLesson(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.lesson(t)

	_, err := f.importer.ImportWords(ctx, l.ID, "words.txt", strings.NewReader("a,b"))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.importer.ImportWords(ctx, 999, "words.csv", strings.NewReader("a,b"))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
