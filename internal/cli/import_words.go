package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/database"
	"github.com/langschool/contentapi/internal/services"
)

// ImportWordsCommand bulk-loads lesson words from an .xlsx or .csv file.
type ImportWordsCommand struct {
	LessonID uint
	FilePath string
	Verbose  bool

	cfg *config.Config
	out io.Writer
}

func NewImportWordsCommand(cfg *config.Config) *ImportWordsCommand {
	return &ImportWordsCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *ImportWordsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-words", flag.ContinueOnError)

	fs.UintVar(&cmd.LessonID, "lesson", 0, "ID of the lesson receiving the words (required)")
	fs.StringVar(&cmd.FilePath, "file", "", "Path to an .xlsx or .csv file (required)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print every rejected row")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-words -lesson <id> -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Columns: word, translation, transcription, imageUrl, audioUrl.\n")
		fmt.Fprintf(os.Stderr, "A header row starting with \"word\" is skipped. Words already in the\n")
		fmt.Fprintf(os.Stderr, "lesson are skipped.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.LessonID == 0 {
		return fmt.Errorf("required flag -lesson not provided")
	}
	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	return nil
}

func (cmd *ImportWordsCommand) Run() error {
	f, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", cmd.FilePath, err)
	}
	defer f.Close()

	db, err := database.NewDatabase(cmd.cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	svc := services.New(db.DB, services.NewValidator())
	result, err := svc.Import.ImportWords(context.Background(), cmd.LessonID, filepath.Base(cmd.FilePath), f)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Lesson %d: %d rows processed, %d created, %d skipped, %d rejected\n",
		result.LessonID, result.Processed, result.Created, result.Skipped, len(result.Errors))
	if cmd.Verbose {
		for _, rowErr := range result.Errors {
			fmt.Fprintf(cmd.out, "  row %d: %s\n", rowErr.Row, rowErr.Message)
		}
	}
	return nil
}
