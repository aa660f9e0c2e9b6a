package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{" INFO ", INFO, false},
		{"warning", WARN, false},
		{"error", ERROR, false},
		{"verbose", INFO, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	defer SetLevel(INFO)

	var buf bytes.Buffer
	SetLevel(ERROR)
	SetOutput(&buf)

	Info("hidden message")
	Error("visible message", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "visible message")
	assert.Contains(t, out, "key=value")
}

func TestConfigureWritesToFile(t *testing.T) {
	defer SetLevel(INFO)

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, Configure(Options{Level: "debug", File: path}))
	assert.True(t, Enabled(DEBUG))
	assert.FileExists(t, path)
}

func TestConfigureReportsBadLevel(t *testing.T) {
	defer SetLevel(INFO)

	err := Configure(Options{Level: "loud"})
	assert.Error(t, err)
	assert.True(t, Enabled(INFO))
}
