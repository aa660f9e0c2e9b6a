package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/logger"
)

var defaultKidQuizTypes = []entities.KidQuizType{
	{Name: "pick_picture", Description: "Choose the picture that matches the word"},
	{Name: "listen_and_choose", Description: "Listen to the word and choose the right card"},
	{Name: "match_words", Description: "Match the word with its translation"},
	{Name: "spell_word", Description: "Put the letters in the right order"},
}

var defaultPartsOfSpeech = []entities.PartOfSpeech{
	{Name: "article", Description: "a, an, the"},
	{Name: "preposition", Description: "Words that show relations: in, on, at"},
	{Name: "pronoun", Description: "Words that replace nouns: I, you, they"},
	{Name: "conjunction", Description: "Words that join clauses: and, but, because"},
	{Name: "auxiliary_verb", Description: "be, do, have and modal verbs"},
	{Name: "determiner", Description: "this, that, some, any"},
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the configured driver, migrates every model and seeds
// lookup tables.
func NewDatabase(cfg config.Database) (*Database, error) {
	gormLogger, err := NewGormLogger(cfg.LogLevel)
	if err != nil {
		logger.Warn("invalid database log level, using default", "value", cfg.LogLevel, "error", err)
	}

	gormCfg := &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.DSN)
	case config.DriverSQLite, "":
		dialector = sqlite.Open(SQLiteDSN(cfg.Path))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver != config.DriverMySQL && isInMemory(cfg.Path) {
		// Every pooled connection would otherwise get its own empty database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(entities.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seed(); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Info("database initialized", "driver", string(cfg.Driver), "path", cfg.Path)

	return database, nil
}

// sqliteParams are the connection options applied unless the path already
// sets them. Each entry lists the option and the aliases go-sqlite3 accepts.
var sqliteParams = []struct {
	keys  []string
	value string
}{
	// Enforce foreign keys so ON DELETE CASCADE works.
	{[]string{"_foreign_keys", "_fk"}, "_foreign_keys=on"},
	// Audit writes run concurrently with request transactions; wait for the
	// lock instead of failing with SQLITE_BUSY.
	{[]string{"_busy_timeout", "_timeout"}, "_busy_timeout=5000"},
	// Take the write lock at BEGIN so read-then-write transactions never
	// need a lock upgrade, which SQLite refuses without waiting.
	{[]string{"_txlock"}, "_txlock=immediate"},
	{[]string{"_journal_mode", "_journal"}, "_journal_mode=WAL"},
}

// SQLiteDSN appends the connection options the service relies on.
func SQLiteDSN(path string) string {
	dsn := path
	for _, p := range sqliteParams {
		if hasParam(path, p.keys...) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + p.value
	}
	return dsn
}

func hasParam(path string, keys ...string) bool {
	i := strings.Index(path, "?")
	if i < 0 {
		return false
	}
	for _, kv := range strings.Split(path[i+1:], "&") {
		name, _, _ := strings.Cut(kv, "=")
		for _, k := range keys {
			if name == k {
				return true
			}
		}
	}
	return false
}

func isInMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) seed() error {
	for _, qt := range defaultKidQuizTypes {
		var existing entities.KidQuizType
		result := d.DB.Where("name = ?", qt.Name).Limit(1).Find(&existing)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			if err := d.DB.Create(&qt).Error; err != nil {
				return fmt.Errorf("failed to create kid quiz type %s: %w", qt.Name, err)
			}
			logger.Debug("seeded kid quiz type", "name", qt.Name)
		}
	}
	for _, pos := range defaultPartsOfSpeech {
		var existing entities.PartOfSpeech
		result := d.DB.Where("name = ?", pos.Name).Limit(1).Find(&existing)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			if err := d.DB.Create(&pos).Error; err != nil {
				return fmt.Errorf("failed to create part of speech %s: %w", pos.Name, err)
			}
			logger.Debug("seeded part of speech", "name", pos.Name)
		}
	}
	return nil
}
