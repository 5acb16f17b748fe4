// Package main is the entry point for the marktide editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/marktide/marktide/internal/app"
	"github.com/marktide/marktide/internal/config"
	"github.com/marktide/marktide/internal/editor"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logPath    string
	logLevel   string
	readOnly   bool
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		// Defaults still apply; the editor starts anyway.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	logger := app.NullLogger
	if opts.logPath != "" {
		logger = app.FileLogger(opts.logPath, app.ParseLogLevel(opts.logLevel))
	}

	application, err := app.New(cfg, logger, editor.WithReadOnly(opts.readOnly))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Session().Close()

	if opts.file != "" {
		if err := application.OpenDocument(opts.file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Session().Close()
		os.Exit(130)
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logPath, "log", "", "Append logs to this file (logging is off without it)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.readOnly, "readonly", false, "Open the file in read-only mode")
	flag.BoolVar(&opts.readOnly, "R", false, "Open the file in read-only mode (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "marktide - terminal Markdown editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: marktide [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  marktide                    Open with an empty document\n")
		fmt.Fprintf(os.Stderr, "  marktide notes.md           Open a Markdown file\n")
		fmt.Fprintf(os.Stderr, "  marktide report.docx        Import a document via pandoc\n")
		fmt.Fprintf(os.Stderr, "  marktide -R notes.md        Open read-only\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("marktide %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		abs, err := filepath.Abs(args[0])
		if err == nil {
			opts.file = abs
		} else {
			opts.file = args[0]
		}
	}

	return opts
}
