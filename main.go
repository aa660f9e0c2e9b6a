package main

import (
	"fmt"
	"os"

	"github.com/langschool/contentapi/internal/cli"
	"github.com/langschool/contentapi/internal/config"
	"github.com/langschool/contentapi/internal/entrypoint"
	"github.com/langschool/contentapi/internal/logger"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	config.LoadDotEnv()
	cfg := config.NewConfig()
	if err := logger.Configure(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File, Format: cfg.Log.Format}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logger configuration: %v\n", err)
	}

	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		if err := entrypoint.Run(cfg, Version+" ("+Commit+")"); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "create-admin":
		cmd = cli.NewCreateAdminCommand(cfg)
	case "import-words":
		cmd = cli.NewImportWordsCommand(cfg)
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve          Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  create-admin   Create the first administrator account\n")
	fmt.Fprintf(os.Stderr, "  import-words   Import lesson words from an .xlsx or .csv file\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
