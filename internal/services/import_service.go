package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/entities"
	"github.com/langschool/contentapi/internal/logger"
)

// MaxImportRows bounds a single upload.
const MaxImportRows = 5000

// Column order of an import sheet.
const (
	colWord = iota
	colTranslation
	colTranscription
	colImageURL
	colAudioURL
)

// ImportService bulk-loads lesson words from spreadsheets.
type ImportService struct {
	store     WordStore
	lesson    Parent
	validator *Validator
}

func NewImportService(store WordStore, lesson Parent, v *Validator) *ImportService {
	return &ImportService{store: store, lesson: lesson, validator: v}
}

// ImportWords reads rows from an .xlsx or .csv file and adds them to the
// lesson. Invalid rows are reported and skipped; words already in the lesson
// are counted as skipped.
func (s *ImportService) ImportWords(ctx context.Context, lessonID uint, filename string, r io.Reader) (*dto.ImportResult, error) {
	if err := s.lesson.Require(ctx, lessonID); err != nil {
		return nil, err
	}

	rows, err := readRows(filename, r)
	if err != nil {
		return nil, err
	}
	if len(rows) > MaxImportRows {
		return nil, apperr.NewValidationError("file", fmt.Sprintf("must contain at most %d rows", MaxImportRows))
	}

	result := &dto.ImportResult{LessonID: lessonID, Errors: []dto.ImportRowError{}}
	words := make([]entities.LessonWord, 0, len(rows))

	for i, row := range rows {
		rowNum := i + 1
		if i == 0 && isHeader(row) {
			continue
		}
		if isBlank(row) {
			continue
		}
		result.Processed++

		req := dto.CreateLessonWordRequest{
			LessonID:      lessonID,
			Word:          cell(row, colWord),
			Translation:   cell(row, colTranslation),
			Transcription: cell(row, colTranscription),
			ImageURL:      cell(row, colImageURL),
			AudioURL:      cell(row, colAudioURL),
		}
		if err := s.validator.Struct(req); err != nil {
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Message: rowMessage(err)})
			continue
		}
		words = append(words, dto.NewLessonWord(req))
	}

	if len(words) > 0 {
		created, skipped, err := s.store.AddWords(ctx, lessonID, words)
		if err != nil {
			return nil, err
		}
		result.Created = created
		result.Skipped = skipped
	}

	logger.Info("word import finished",
		"lesson_id", lessonID,
		"file", filename,
		"processed", result.Processed,
		"created", result.Created,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}

func readRows(filename string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readExcel(r)
	case ".csv":
		return readCSV(r)
	default:
		return nil, apperr.NewValidationError("file", "must be an .xlsx or .csv file")
	}
}

// readExcel returns the rows of the first sheet.
func readExcel(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperr.NewValidationError("file", "is not a readable spreadsheet")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperr.NewValidationError("file", "contains no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, apperr.NewValidationError("file", "is not valid CSV: "+err.Error())
		}
		rows = append(rows, row)
	}
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isHeader(row []string) bool {
	return strings.EqualFold(strings.TrimPrefix(cell(row, colWord), "\ufeff"), "word")
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func rowMessage(err error) string {
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	parts := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return strings.Join(parts, "; ")
}
