package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/entities"
)

func sqliteConfig(t *testing.T) config.Database {
	t.Helper()
	return config.Database{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "silent",
	}
}

func TestNewDatabase(t *testing.T) {
	cfg := sqliteConfig(t)

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	defer db.Close()

	t.Run("migrates every model", func(t *testing.T) {
		for _, model := range entities.All() {
			assert.True(t, db.DB.Migrator().HasTable(model), "%T", model)
		}
	})

	t.Run("seeds lookup tables", func(t *testing.T) {
		var quizTypes, parts int64
		require.NoError(t, db.DB.Model(&entities.KidQuizType{}).Count(&quizTypes).Error)
		require.NoError(t, db.DB.Model(&entities.PartOfSpeech{}).Count(&parts).Error)
		assert.Equal(t, int64(len(defaultKidQuizTypes)), quizTypes)
		assert.Equal(t, int64(len(defaultPartsOfSpeech)), parts)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, db.Ping(context.Background()))
	})
}

func TestNewDatabase_SeedIsIdempotent(t *testing.T) {
	cfg := sqliteConfig(t)

	first, err := NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewDatabase(cfg)
	require.NoError(t, err)
	defer second.Close()

	var quizTypes int64
	require.NoError(t, second.DB.Model(&entities.KidQuizType{}).Count(&quizTypes).Error)
	assert.Equal(t, int64(len(defaultKidQuizTypes)), quizTypes)
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabase(config.Database{Driver: "postgres"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestNewDatabase_InMemory(t *testing.T) {
	db, err := NewDatabase(config.Database{Driver: config.DriverSQLite, Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	defer db.Close()

	// A single pooled connection keeps the seeded rows visible.
	var parts int64
	require.NoError(t, db.DB.Model(&entities.PartOfSpeech{}).Count(&parts).Error)
	assert.NotZero(t, parts)
}

func TestForeignKeysCascade(t *testing.T) {
	db, err := NewDatabase(sqliteConfig(t))
	require.NoError(t, err)
	defer db.Close()

	lesson := entities.Lesson{Title: "Numbers"}
	require.NoError(t, db.DB.Create(&lesson).Error)
	require.NoError(t, db.DB.Create(&entities.LessonWord{LessonID: lesson.ID, Word: "one", Translation: "bir"}).Error)

	require.NoError(t, db.DB.Delete(&entities.Lesson{}, lesson.ID).Error)

	var words int64
	require.NoError(t, db.DB.Model(&entities.LessonWord{}).Count(&words).Error)
	assert.Zero(t, words)

	t.Run("orphans are rejected", func(t *testing.T) {
		err := db.DB.Create(&entities.LessonWord{LessonID: 999, Word: "two", Translation: "ikki"}).Error
		assert.Error(t, err)
	})
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"app.db", "app.db?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate&_journal_mode=WAL"},
		{"file:app.db?cache=shared", "file:app.db?cache=shared&_foreign_keys=on&_busy_timeout=5000&_txlock=immediate&_journal_mode=WAL"},
		{"app.db?_foreign_keys=off", "app.db?_foreign_keys=off&_busy_timeout=5000&_txlock=immediate&_journal_mode=WAL"},
		{"app.db?_fk=1&_timeout=100&_txlock=deferred&_journal=DELETE", "app.db?_fk=1&_timeout=100&_txlock=deferred&_journal=DELETE"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, SQLiteDSN(tt.path))
		})
	}
}

func TestIsInMemory(t *testing.T) {
	assert.True(t, isInMemory(":memory:"))
	assert.True(t, isInMemory("file:test?mode=memory&cache=shared"))
	assert.False(t, isInMemory("./langschool.db"))
}

func TestNewGormLogger(t *testing.T) {
	tests := []struct {
		value   string
		want    gormlogger.LogLevel
		wantErr bool
	}{
		{"", gormlogger.Warn, false},
		{"silent", gormlogger.Silent, false},
		{"ERROR", gormlogger.Error, false},
		{" info ", gormlogger.Info, false},
		{"verbose", gormlogger.Warn, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			l, err := NewGormLogger(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			require.NotNil(t, l)
			assert.Equal(t, tt.want, l.(*gormSlogLogger).logLevel)
		})
	}
}
