package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/email"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(filepath.Join(t.TempDir(), "test-tasks.db"), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "queue.db")

	client, err := NewClient(dbPath, DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, client)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "tasks database should be created")

	assert.NoError(t, client.Close())
}

func TestDatabasePath(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Database
		want string
	}{
		{"sqlite file", config.Database{Driver: config.DriverSQLite, Path: "/data/app.db"}, "/data/app-tasks.db"},
		{"sqlite with params", config.Database{Driver: config.DriverSQLite, Path: "/data/app.db?_fk=1"}, "/data/app-tasks.db"},
		{"in memory", config.Database{Driver: config.DriverSQLite, Path: ":memory:"}, "langschool-tasks.db"},
		{"mysql", config.Database{Driver: config.DriverMySQL, DSN: "u:p@tcp(db)/x"}, "langschool-tasks.db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatabasePath(tt.cfg))
		})
	}
}

func TestClientStartStop(t *testing.T) {
	client := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go client.Start(ctx)
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	assert.True(t, client.Stop(stopCtx), "stop should succeed gracefully")
}

func TestStopBeforeStart(t *testing.T) {
	client := newTestClient(t)
	assert.True(t, client.Stop(context.Background()))
}

func TestQueuedSenderDeliversThroughQueue(t *testing.T) {
	client := newTestClient(t)

	recorder := &email.RecordingSender{}
	client.Register(NewSendEmailQueue(recorder))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	sender := NewQueuedSender(client)
	msg := email.Message{To: "ann@example.com", Subject: "Hi", Body: "Hello"}
	require.NoError(t, sender.Send(context.Background(), msg))

	require.Eventually(t, func() bool {
		return len(recorder.Sent()) == 1
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, msg, recorder.Sent()[0])
}

func TestQueuedSenderHonoursCancelledContext(t *testing.T) {
	client := newTestClient(t)
	client.Register(NewSendEmailQueue(&email.RecordingSender{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewQueuedSender(client).Send(ctx, email.Message{To: "a@b.c"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSendEmailProcessorPropagatesFailure(t *testing.T) {
	process := SendEmailProcessor(&email.RecordingSender{Err: errors.New("relay down")})
	err := process(context.Background(), SendEmailTask{Message: email.Message{To: "a@b.c"}})
	assert.ErrorContains(t, err, "relay down")

	assert.Error(t, SendEmailProcessor(nil)(context.Background(), SendEmailTask{}))
}

type fakeAuditCleaner struct {
	retention time.Duration
	deleted   int64
}

func (f *fakeAuditCleaner) DeleteOldEvents(_ context.Context, retention time.Duration) (int64, error) {
	f.retention = retention
	return f.deleted, nil
}

func TestCleanupAuditEventsProcessor(t *testing.T) {
	cleaner := &fakeAuditCleaner{deleted: 4}

	process := CleanupAuditEventsProcessor(cleaner)
	require.NoError(t, process(context.Background(), CleanupAuditEventsTask{RetentionDays: 7}))
	assert.Equal(t, 7*24*time.Hour, cleaner.retention)

	require.NoError(t, process(context.Background(), CleanupAuditEventsTask{}))
	assert.Equal(t, DefaultAuditRetentionDays*24*time.Hour, cleaner.retention)

	assert.Error(t, CleanupAuditEventsProcessor(nil)(context.Background(), CleanupAuditEventsTask{}))
}

type fakeTokenCleaner struct {
	cutoff time.Time
	err    error
}

func (f *fakeTokenCleaner) DeleteStaleResetTokens(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return 2, f.err
}

func TestCleanupResetTokensProcessor(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cleaner := &fakeTokenCleaner{}

	process := CleanupResetTokensProcessor(cleaner, func() time.Time { return now })
	require.NoError(t, process(context.Background(), CleanupResetTokensTask{Grace: time.Hour}))
	assert.Equal(t, now.Add(-time.Hour), cleaner.cutoff)

	cleaner.err = errors.New("locked")
	assert.ErrorContains(t, process(context.Background(), CleanupResetTokensTask{}), "locked")
}

func TestTaskConfigs(t *testing.T) {
	tests := []struct {
		task        backlite.Task
		name        string
		maxAttempts int
	}{
		{SendEmailTask{}, "send_email", 3},
		{CleanupAuditEventsTask{}, "cleanup_audit_events", 3},
		{CleanupResetTokensTask{}, "cleanup_reset_tokens", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.task.Config()
			assert.Equal(t, tt.name, cfg.Name)
			assert.Equal(t, tt.maxAttempts, cfg.MaxAttempts)
			assert.NotNil(t, cfg.Retention)
		})
	}
}

func TestConfigFrom(t *testing.T) {
	cfg := ConfigFrom(config.Tasks{Workers: 4})
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 10*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "pending", StatusName(backlite.TaskStatusPending))
	assert.Equal(t, "success", StatusName(backlite.TaskStatusSuccess))
	assert.Equal(t, "not_found", StatusName(backlite.TaskStatusNotFound))
}
