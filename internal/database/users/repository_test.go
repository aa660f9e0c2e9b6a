package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/testutil"
)

func setupRepo(t *testing.T) *Repository {
	return NewRepository(testutil.NewDatabase(t).DB)
}

func newUser(email, userName string) *entities.User {
	return &entities.User{Email: email, UserName: userName, PasswordHash: "hash", Role: entities.RoleLearner}
}

func TestRepository_CreateNormalizesEmail(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	user := newUser("  Alice@Example.COM ", "alice")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	got, err := repo.GetByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRepository_DuplicateEmailIsConflict(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("bob@example.com", "bob")))
	err := repo.Create(ctx, newUser("bob@example.com", "bobby"))
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRepository_GetByLogin(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newUser("carol@example.com", "carol")))

	byEmail, err := repo.GetByLogin(ctx, "carol@example.com")
	require.NoError(t, err)
	byName, err := repo.GetByLogin(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, byEmail.ID, byName.ID)

	_, err = repo.GetByLogin(ctx, "nobody")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRepository_Exists(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newUser("dave@example.com", "dave")))

	ok, err := repo.EmailExists(ctx, "DAVE@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UserNameExists(ctx, "someone")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_LockoutLifecycle(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	user := newUser("eve@example.com", "eve")
	require.NoError(t, repo.Create(ctx, user))

	until := time.Now().Add(time.Hour)
	require.NoError(t, repo.RecordFailedLogin(ctx, user.ID, 5, &until))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.AccessFailedCount)
	assert.True(t, got.IsLockedOut(time.Now()))

	require.NoError(t, repo.SetLockout(ctx, user.ID, nil))
	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LockoutEnd)
	assert.Zero(t, got.AccessFailedCount)

	err = repo.SetLockout(ctx, 9999, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRepository_RecordSuccessfulLogin(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	user := newUser("frank@example.com", "frank")
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.RecordFailedLogin(ctx, user.ID, 2, nil))

	require.NoError(t, repo.RecordSuccessfulLogin(ctx, user.ID, time.Now()))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, got.AccessFailedCount)
	require.NotNil(t, got.LastLoginAt)
}

func TestRepository_PasswordResetTokens(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	user := newUser("gina@example.com", "gina")
	require.NoError(t, repo.Create(ctx, user))
	locked := time.Now().Add(time.Hour)
	require.NoError(t, repo.SetLockout(ctx, user.ID, &locked))

	token := &entities.PasswordResetToken{UserID: user.ID, TokenHash: "abc", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateResetToken(ctx, token))

	got, err := repo.GetResetToken(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, got.IsUsable(time.Now()))

	require.NoError(t, repo.CompletePasswordReset(ctx, user.ID, "new-hash", time.Now()))

	got, err = repo.GetResetToken(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, got.IsUsable(time.Now()))

	u, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", u.PasswordHash)
	assert.False(t, u.IsLockedOut(time.Now()))

	_, err = repo.GetResetToken(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRepository_DeleteStaleResetTokens(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	user := newUser("hank@example.com", "hank")
	require.NoError(t, repo.Create(ctx, user))

	now := time.Now()
	require.NoError(t, repo.CreateResetToken(ctx, &entities.PasswordResetToken{UserID: user.ID, TokenHash: "expired", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.CreateResetToken(ctx, &entities.PasswordResetToken{UserID: user.ID, TokenHash: "fresh", ExpiresAt: now.Add(time.Hour)}))

	deleted, err := repo.DeleteStaleResetTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetResetToken(ctx, "fresh")
	assert.NoError(t, err)
}

func TestRepository_DeleteCascadesProgress(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	user := newUser("ivy@example.com", "ivy")
	require.NoError(t, repo.Create(ctx, user))
	lesson := &entities.Lesson{Title: "L"}
	require.NoError(t, db.DB.Create(lesson).Error)
	require.NoError(t, db.DB.Create(&entities.UserProgress{UserID: user.ID, LessonID: lesson.ID}).Error)

	_, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.DB.Model(&entities.UserProgress{}).Count(&n).Error)
	assert.Zero(t, n)
}
