package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/database"
	"github.com/langschool/contentapi/internal/database/users"
	"github.com/langschool/contentapi/internal/entities"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.Database{
			Driver:   config.DriverSQLite,
			Path:     filepath.Join(t.TempDir(), "cli.db"),
			LogLevel: "silent",
		},
		Auth: config.Auth{
			Mode:              config.AuthModeLocal,
			JWTSecret:         "0123456789abcdef0123456789abcdef",
			JWTIssuer:         config.DefaultJWTIssuer,
			TokenExpiry:       time.Hour,
			BcryptCost:        4,
			MinPasswordLength: 8,
		},
	}
}

func openDB(t *testing.T, cfg *config.Config) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateAdminCommand_ParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     string
		wantErr string
	}{
		{"all flags", []string{"-email", "a@example.com", "-username", "admin", "-password", "secret123"}, "", ""},
		{"password from env", []string{"-email", "a@example.com", "-username", "admin"}, "from-env-1", ""},
		{"missing email", []string{"-username", "admin", "-password", "x"}, "", "-email"},
		{"missing username", []string{"-email", "a@example.com", "-password", "x"}, "", "-username"},
		{"missing password", []string{"-email", "a@example.com", "-username", "admin"}, "", PasswordEnv},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(PasswordEnv, tt.env)
			cmd := NewCreateAdminCommand(testConfig(t))
			err := cmd.ParseFlags(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.env != "" {
				assert.Equal(t, tt.env, cmd.Password)
			}
		})
	}
}

func TestCreateAdminCommand_Run(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	cmd := NewCreateAdminCommand(cfg)
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-email", "root@example.com", "-username", "root", "-password", "secret123"}))
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), `Created administrator "root"`)

	db := openDB(t, cfg)
	user, err := users.NewRepository(db.DB).GetByLogin(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	t.Run("refuses a second admin without force", func(t *testing.T) {
		again := NewCreateAdminCommand(cfg)
		again.out = &out
		require.NoError(t, again.ParseFlags([]string{"-email", "two@example.com", "-username", "two", "-password", "secret123"}))
		err := again.Run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "-force")
	})

	t.Run("force adds another", func(t *testing.T) {
		again := NewCreateAdminCommand(cfg)
		again.out = &out
		require.NoError(t, again.ParseFlags([]string{"-email", "two@example.com", "-username", "two", "-password", "secret123", "-force"}))
		require.NoError(t, again.Run())
	})

	t.Run("short password is rejected", func(t *testing.T) {
		again := NewCreateAdminCommand(cfg)
		again.out = &out
		require.NoError(t, again.ParseFlags([]string{"-email", "three@example.com", "-username", "three", "-password", "short", "-force"}))
		assert.Error(t, again.Run())
	})
}

func TestImportWordsCommand(t *testing.T) {
	cfg := testConfig(t)

	db := openDB(t, cfg)
	lesson := entities.Lesson{Title: "Animals"}
	require.NoError(t, db.DB.Create(&lesson).Error)

	path := filepath.Join(t.TempDir(), "animals.csv")
	require.NoError(t, os.WriteFile(path, []byte("word,translation\ncat,mushuk\ndog,it\nbird,\n"), 0o644))

	var out bytes.Buffer
	cmd := NewImportWordsCommand(cfg)
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-lesson", "1", "-file", path, "-verbose"}))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "3 rows processed, 2 created, 0 skipped, 1 rejected")
	assert.Contains(t, out.String(), "row 4:")

	var count int64
	require.NoError(t, db.DB.Model(&entities.LessonWord{}).Where("lesson_id = ?", lesson.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestImportWordsCommand_Errors(t *testing.T) {
	cfg := testConfig(t)

	t.Run("missing flags", func(t *testing.T) {
		assert.Error(t, NewImportWordsCommand(cfg).ParseFlags([]string{"-file", "x.csv"}))
		assert.Error(t, NewImportWordsCommand(cfg).ParseFlags([]string{"-lesson", "3"}))
	})

	t.Run("missing file", func(t *testing.T) {
		cmd := NewImportWordsCommand(cfg)
		require.NoError(t, cmd.ParseFlags([]string{"-lesson", "1", "-file", filepath.Join(t.TempDir(), "nope.csv")}))
		assert.Error(t, cmd.Run())
	})

	t.Run("unknown lesson", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "w.csv")
		require.NoError(t, os.WriteFile(path, []byte("cat,mushuk\n"), 0o644))
		cmd := NewImportWordsCommand(cfg)
		cmd.out = &bytes.Buffer{}
		require.NoError(t, cmd.ParseFlags([]string{"-lesson", "42", "-file", path}))
		assert.Error(t, cmd.Run())
	})
}
