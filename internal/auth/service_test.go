package auth

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/database/users"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/email"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/services"
	"github.com/langschool/contentapi/internal/testutil"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		Mode:              config.AuthModeLocal,
		JWTSecret:         testSecret,
		JWTIssuer:         "langschool-api",
		TokenExpiry:       time.Hour,
		BcryptCost:        4,
		MinPasswordLength: 8,
		MaxLoginAttempts:  3,
		RateLimitWindow:   time.Minute,
		LockoutDuration:   15 * time.Minute,
		ResetTokenExpiry:  time.Hour,
		ResetURL:          "https://admin.example.com/reset-password",
	}
}

type authFixture struct {
	svc    *Service
	repo   *users.Repository
	mailer *email.RecordingSender
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	cfg := testAuthConfig()
	repo := users.NewRepository(testutil.NewDatabase(t).DB)
	mailer := &email.RecordingSender{}
	// A generous limiter so account lockout is what the tests observe.
	limiter := NewRateLimiter(RateLimitConfig{MaxAttempts: 100})
	t.Cleanup(limiter.Stop)

	svc := NewService(repo, NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenExpiry), limiter, mailer, services.NewValidator(), cfg)
	return &authFixture{svc: svc, repo: repo, mailer: mailer}
}

func (f *authFixture) register(t *testing.T, name string) *dto.AuthResponse {
	t.Helper()
	res, err := f.svc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    strings.ToUpper(name) + "@Example.com",
		UserName: name,
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return res
}

func TestService_RegisterUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	res := f.register(t, "alice")
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice@example.com", res.Email)
	assert.Equal(t, string(entities.RoleLearner), res.Role)

	_, err := f.svc.RegisterUser(ctx, dto.RegisterRequest{Email: "alice@example.com", UserName: "other", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = f.svc.RegisterUser(ctx, dto.RegisterRequest{Email: "new@example.com", UserName: "alice", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrUserNameTaken)

	_, err = f.svc.RegisterUser(ctx, dto.RegisterRequest{Email: "x@example.com", UserName: "bad name!", Password: "short"})
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "userName", verr.Errors[0].Field)

	_, err = f.svc.RegisterUser(ctx, dto.RegisterRequest{Email: "x@example.com", UserName: "xavier", Password: "short"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Errors[0].Field)
}

func TestService_LoginByEmailOrUserName(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	res, err := f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Email: "ALICE@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	res, err = f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Login: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	user, err := f.svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)
	assert.NotNil(t, user.LastLoginAt)

	_, err = f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Login: "nobody", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Password: "correct-horse"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_LoginLocksOutAfterFailures(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	reg := f.register(t, "alice")

	for i := 0; i < 3; i++ {
		_, err := f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Login: "alice", Password: "wrong-password"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err := f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Login: "alice", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrAccountBlocked)

	user, err := f.repo.GetByID(ctx, reg.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.LockoutEnd)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), *user.LockoutEnd, time.Minute)

	f.svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Login: "alice", Password: "correct-horse"})
	assert.NoError(t, err, "temporary lockout expires")
}

func TestService_LockoutReachableFromOneClient(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.svc.limiter = NewRateLimiter(RateLimitConfigFromAuth(f.svc.config))
	t.Cleanup(f.svc.limiter.Stop)
	f.register(t, "carol")

	for i := 0; i < f.svc.config.MaxLoginAttempts; i++ {
		_, err := f.svc.Login(ctx, "10.0.0.5", dto.LoginRequest{Login: "carol", Password: "wrong-password"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err := f.svc.Login(ctx, "10.0.0.5", dto.LoginRequest{Login: "carol", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

func TestService_LoginRateLimited(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.svc.limiter = NewRateLimiter(RateLimitConfig{MaxAttempts: 2, LockoutDuration: time.Minute})
	t.Cleanup(f.svc.limiter.Stop)

	for i := 0; i < 2; i++ {
		_, err := f.svc.Login(ctx, "10.0.0.9", dto.LoginRequest{Login: "ghost", Password: "whatever1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
	_, err := f.svc.Login(ctx, "10.0.0.9", dto.LoginRequest{Login: "ghost", Password: "whatever1"})
	var rl *apperr.RateLimitError
	require.ErrorAs(t, err, &rl)
	assert.Greater(t, rl.RetryAfter, time.Duration(0))
}

func TestService_BlockAndUnblock(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	reg := f.register(t, "alice")

	require.NoError(t, f.svc.BlockUser(ctx, reg.UserID))

	_, err := f.svc.Authenticate(ctx, reg.Token)
	assert.ErrorIs(t, err, ErrAccountBlocked, "existing tokens stop working")

	_, err = f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Login: "alice", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrAccountBlocked)

	user, err := f.repo.GetByID(ctx, reg.UserID)
	require.NoError(t, err)
	assert.True(t, user.IsLockedOut(time.Now().AddDate(100, 0, 0)))

	require.NoError(t, f.svc.UnblockUser(ctx, reg.UserID))
	_, err = f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Login: "alice", Password: "correct-horse"})
	assert.NoError(t, err)

	assert.ErrorIs(t, f.svc.BlockUser(ctx, 9999), apperr.ErrNotFound)
}

func TestService_PasswordResetFlow(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	reg := f.register(t, "alice")
	require.NoError(t, f.svc.BlockUser(ctx, reg.UserID))

	require.NoError(t, f.svc.SendPasswordResetEmail(ctx, dto.ForgotPasswordRequest{Email: "alice@example.com"}))
	sent := f.mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "alice@example.com", sent[0].To)

	link := extractLink(t, sent[0].Body)
	token := link.Query().Get("token")
	assert.Equal(t, "alice@example.com", link.Query().Get("email"))
	require.NotEmpty(t, token)

	err := f.svc.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "bob@example.com", Token: token, NewPassword: "brand-new-pass"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	require.NoError(t, f.svc.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "alice@example.com", Token: token, NewPassword: "brand-new-pass"}))

	err = f.svc.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "alice@example.com", Token: token, NewPassword: "another-pass"})
	assert.ErrorIs(t, err, ErrInvalidResetToken, "tokens are single use")

	_, err = f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Login: "alice", Password: "brand-new-pass"})
	assert.NoError(t, err, "reset also clears the lockout")
}

func TestService_ResetTokenExpires(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	token, user, err := f.svc.GeneratePasswordResetToken(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	f.svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	err = f.svc.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "alice@example.com", Token: token, NewPassword: "brand-new-pass"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestService_ForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	f := newAuthFixture(t)

	require.NoError(t, f.svc.SendPasswordResetEmail(context.Background(), dto.ForgotPasswordRequest{Email: "ghost@example.com"}))
	assert.Empty(t, f.mailer.Sent())
}

func TestService_ChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	reg := f.register(t, "alice")

	err := f.svc.ChangePassword(ctx, reg.UserID, dto.ChangePasswordRequest{CurrentPassword: "nope-nope", NewPassword: "brand-new-pass"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, f.svc.ChangePassword(ctx, reg.UserID, dto.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "brand-new-pass"}))
	_, err = f.svc.Login(ctx, "10.0.0.1", dto.LoginRequest{Login: "alice", Password: "brand-new-pass"})
	assert.NoError(t, err)
}

func extractLink(t *testing.T, body string) *url.URL {
	t.Helper()
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "https://") {
			u, err := url.Parse(strings.TrimSpace(line))
			require.NoError(t, err)
			return u
		}
	}
	t.Fatalf("no link in body: %q", body)
	return nil
}
