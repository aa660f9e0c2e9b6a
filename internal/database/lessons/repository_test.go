package lessons

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langschool/contentapi/internal/apperr"
	dbaudit "github.com/langschool/contentapi/internal/database/audit"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/testutil"
)

func setupLesson(t *testing.T) (*Repository, *entities.Lesson) {
	repo := NewRepository(testutil.NewDatabase(t).DB)
	lesson := &entities.Lesson{Title: "At the cafe"}
	require.NoError(t, repo.Lessons.Add(context.Background(), lesson))
	return repo, lesson
}

func TestRepository_AddPhraseRejectsDuplicate(t *testing.T) {
	repo, lesson := setupLesson(t)
	ctx := context.Background()

	phrase := func() *entities.LessonPhrase {
		return &entities.LessonPhrase{
			LessonID:    lesson.ID,
			PhraseText:  "A cup of tea, please",
			Translation: "Bir piyola choy, iltimos",
			ImageURL:    "https://cdn.example.com/tea.png",
		}
	}

	first := phrase()
	require.NoError(t, repo.AddPhrase(ctx, first))
	assert.NotZero(t, first.ID)

	err := repo.AddPhrase(ctx, phrase())
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, "duplicate_phrase", apperr.Code(err, ""))

	different := phrase()
	different.ImageURL = ""
	require.NoError(t, repo.AddPhrase(ctx, different))

	phrases, err := repo.PhrasesForLesson(ctx, lesson.ID)
	require.NoError(t, err)
	assert.Len(t, phrases, 2)
}

func TestRepository_UpdatePhraseRejectsDuplicate(t *testing.T) {
	repo, lesson := setupLesson(t)
	ctx := context.Background()

	hi := &entities.LessonPhrase{LessonID: lesson.ID, PhraseText: "hi", Translation: "salut", ImageURL: "u"}
	hey := &entities.LessonPhrase{LessonID: lesson.ID, PhraseText: "hey", Translation: "salut", ImageURL: "u"}
	require.NoError(t, repo.AddPhrase(ctx, hi))
	require.NoError(t, repo.AddPhrase(ctx, hey))

	hey.PhraseText = "hi"
	err := repo.UpdatePhrase(ctx, hey)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, "duplicate_phrase", apperr.Code(err, ""))

	stored, err := repo.Phrases.GetByID(ctx, hey.ID)
	require.NoError(t, err)
	assert.Equal(t, "hey", stored.PhraseText)

	// Saving a phrase unchanged must not collide with itself.
	hi.AudioURL = "https://cdn.example.com/hi.mp3"
	require.NoError(t, repo.UpdatePhrase(ctx, hi))

	hey.ImageURL = "other"
	require.NoError(t, repo.UpdatePhrase(ctx, hey))
}

func TestRepository_AddPhraseWithConcurrentWriters(t *testing.T) {
	repo, lesson := setupLesson(t)
	auditRepo := dbaudit.NewRepository(repo.db)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs <- auditRepo.LogEvent(ctx, &entities.AuditEvent{
				EventType:  entities.AuditEventCreate,
				Action:     "LessonPhrase_create",
				EntityType: "LessonPhrase",
				Status:     entities.AuditStatusSuccess,
			})
		}()
		go func(i int) {
			defer wg.Done()
			errs <- repo.AddPhrase(ctx, &entities.LessonPhrase{
				LessonID:    lesson.ID,
				PhraseText:  fmt.Sprintf("phrase %d", i),
				Translation: "ibora",
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	phrases, err := repo.PhrasesForLesson(ctx, lesson.ID)
	require.NoError(t, err)
	assert.Len(t, phrases, n)

	_, total, err := auditRepo.GetEvents(ctx, dbaudit.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(n), total)
}

func TestRepository_AddWordsSkipsExisting(t *testing.T) {
	repo, lesson := setupLesson(t)
	ctx := context.Background()
	require.NoError(t, repo.Words.Add(ctx, &entities.LessonWord{LessonID: lesson.ID, Word: "Coffee", Translation: "qahva"}))

	created, skipped, err := repo.AddWords(ctx, lesson.ID, []entities.LessonWord{
		{Word: "coffee", Translation: "qahva"},
		{Word: "tea", Translation: "choy"},
		{Word: "Tea ", Translation: "choy"},
		{Word: "milk", Translation: "sut"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 2, skipped)

	words, err := repo.WordsForLesson(ctx, lesson.ID)
	require.NoError(t, err)
	assert.Len(t, words, 3)
}

func TestRepository_GetLessonPreloadsChildren(t *testing.T) {
	repo, lesson := setupLesson(t)
	ctx := context.Background()
	require.NoError(t, repo.Words.Add(ctx, &entities.LessonWord{LessonID: lesson.ID, Word: "menu", Translation: "menyu"}))
	require.NoError(t, repo.AddPhrase(ctx, &entities.LessonPhrase{LessonID: lesson.ID, PhraseText: "Check, please", Translation: "Hisob, iltimos"}))

	got, err := repo.Lessons.GetByID(ctx, lesson.ID)
	require.NoError(t, err)
	assert.Len(t, got.Words, 1)
	assert.Len(t, got.Phrases, 1)
	assert.Empty(t, got.Quizzes)
}
