package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// MaxFilenameLength bounds upload names kept in logs and audit rows.
const MaxFilenameLength = 200

var (
	// Characters invalid in filenames on most filesystems, plus control characters
	invalidFilenameChars = regexp.MustCompile(`[<>:"|?*\x00-\x1f\x7f]`)
	// Multiple spaces to collapse
	multipleSpaces = regexp.MustCompile(`\s+`)
)

// SanitizeFilename reduces a client supplied upload name to a plain base name.
// Directory parts and control characters are dropped; the extension survives
// truncation because the importer picks its reader from it.
func SanitizeFilename(filename string) string {
	// Browsers on Windows may send the full path
	filename = strings.ReplaceAll(filename, `\`, "/")
	if i := strings.LastIndex(filename, "/"); i >= 0 {
		filename = filename[i+1:]
	}

	filename = invalidFilenameChars.ReplaceAllString(filename, "")
	filename = multipleSpaces.ReplaceAllString(filename, " ")
	filename = strings.TrimSpace(filename)

	if len(filename) > MaxFilenameLength {
		ext := filepath.Ext(filename)
		if len(ext) > 10 {
			ext = ""
		}
		stem := strings.ToValidUTF8(filename[:MaxFilenameLength-len(ext)], "")
		filename = strings.TrimSpace(stem) + ext
	}

	if filename == "" || filename == "." || filename == ".." {
		filename = "upload"
	}
	return filename
}
