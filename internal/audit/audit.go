package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/langschool/contentapi/internal/logger"
)

// Auditor archives raw payloads (import reports) as JSON files so rejected
// rows can be inspected after the fact.
type Auditor struct {
	AuditDir string
}

// NewAuditor returns nil when dir is empty; a nil Auditor archives nothing.
func NewAuditor(dir string) *Auditor {
	if dir == "" {
		return nil
	}
	return &Auditor{AuditDir: dir}
}

type archived struct {
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
	Data      any       `json:"data"`
}

// SaveJSON saves data to <dir>/<uuid>.json and returns the file name.
func (a *Auditor) SaveJSON(kind string, data any) (string, error) {
	if a == nil {
		return "", nil
	}
	if err := os.MkdirAll(a.AuditDir, 0o755); err != nil {
		return "", fmt.Errorf("create audit directory: %w", err)
	}

	filename := uuid.New().String() + ".json"
	path := filepath.Join(a.AuditDir, filename)

	payload, err := json.MarshalIndent(archived{Kind: kind, CreatedAt: time.Now().UTC(), Data: data}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal audit payload: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write audit file: %w", err)
	}

	logger.Debug("audit file saved", "path", path, "kind", kind)
	return filename, nil
}
