package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/audit"
	"github.com/langschool/contentapi/internal/logger"
	"github.com/langschool/contentapi/internal/services"
	"github.com/langschool/contentapi/internal/utils"
)

const (
	maxImportFileSize = 10 * 1024 * 1024 // 10 MB
	importFileField   = "file"
)

// WordImportController loads lesson words from uploaded spreadsheets.
type WordImportController struct {
	importer     *services.ImportService
	auditService *audit.Service
	auditor      *audit.Auditor
}

func NewWordImportController(importer *services.ImportService, auditService *audit.Service, auditor *audit.Auditor) *WordImportController {
	return &WordImportController{
		importer:     importer,
		auditService: auditService,
		auditor:      auditor,
	}
}

// importReport is what gets archived for each upload.
type importReport struct {
	LessonID uint   `json:"lessonId"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	UserID   uint   `json:"userId"`
	Result   any    `json:"result,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Import handles POST /api/Lessons/:id/words/import (multipart, field "file").
func (wc *WordImportController) Import(c *gin.Context) {
	lessonID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportFileSize+1024*1024)
	file, header, err := c.Request.FormFile(importFileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondBadRequest(c, "file_too_large", fmt.Sprintf("file too large (max %d MB)", maxImportFileSize/(1024*1024)))
			return
		}
		respondBadRequest(c, "file_missing", `multipart field "file" is required`)
		return
	}
	defer file.Close()

	if header.Size > maxImportFileSize {
		respondBadRequest(c, "file_too_large", fmt.Sprintf("file too large (max %d MB)", maxImportFileSize/(1024*1024)))
		return
	}

	filename := utils.SanitizeFilename(header.Filename)
	result, err := wc.importer.ImportWords(c.Request.Context(), lessonID, filename, file)

	report := importReport{LessonID: lessonID, Filename: filename, Size: header.Size, UserID: auditRequest(c).UserID}
	if err != nil {
		report.Error = err.Error()
	} else {
		report.Result = result
	}
	if path, saveErr := wc.auditor.SaveJSON("lesson_words_import", report); saveErr != nil {
		logger.Warn("failed to archive import report", "error", saveErr)
	} else if path != "" {
		logger.Debug("import report archived", "path", path)
	}

	if err != nil {
		if wc.auditService != nil {
			wc.auditService.LogImport(auditRequest(c), lessonID, filename, 0, 0, 0, err)
		}
		respondError(c, err)
		return
	}

	if wc.auditService != nil {
		wc.auditService.LogImport(auditRequest(c), lessonID, filename, result.Created, result.Skipped, len(result.Errors), nil)
	}
	c.JSON(http.StatusOK, result)
}
