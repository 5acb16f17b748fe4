// Package app wires the configuration, editing session, hooks, converter,
// and terminal surface into one running application.
package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/marktide/marktide/internal/config"
	"github.com/marktide/marktide/internal/convert"
	"github.com/marktide/marktide/internal/editor"
	"github.com/marktide/marktide/internal/hook"
	"github.com/marktide/marktide/internal/render"
	"github.com/marktide/marktide/internal/storage"
	"github.com/marktide/marktide/internal/ui"
)

// Application owns the long-lived components of one editor run.
type Application struct {
	cfg     config.Config
	logger  *Logger
	session *editor.Session
	hooks   *hook.Runner
	conv    *convert.Converter
}

// New builds the application from configuration. A broken hook script is
// logged and disabled rather than refusing to start.
func New(cfg config.Config, logger *Logger, opts ...editor.Option) (*Application, error) {
	if logger == nil {
		logger = NullLogger
	}

	hooks, err := hook.Load(cfg.HooksPath)
	if err != nil {
		logger.Warn("hooks disabled: %v", err)
		hooks = nil
	}

	opts = append([]editor.Option{
		editor.WithHistoryDepth(cfg.HistoryDepth),
		editor.WithDebounce(cfg.Debounce()),
	}, opts...)

	return &Application{
		cfg:     cfg,
		logger:  logger,
		session: editor.New(opts...),
		hooks:   hooks,
		conv:    convert.New(cfg.PandocPath),
	}, nil
}

// Session returns the editing session.
func (a *Application) Session() *editor.Session {
	return a.session
}

// Run starts the terminal surface and blocks until quit.
func (a *Application) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	u := ui.New(screen, a.session, a, ui.Options{
		Preview:    a.cfg.Preview,
		LineHeight: a.cfg.LineHeight,
		Render:     render.ToHTML,
	})
	a.logger.Info("starting")
	defer a.logger.Info("stopped")
	return u.Run()
}

// OpenDocument loads a file into the session. Markdown files are read
// directly; other known formats go through pandoc import, arriving without a
// backing path so the first save prompts for a Markdown destination. The
// on_open hook may rewrite the text.
func (a *Application) OpenDocument(path string) error {
	var (
		text     string
		err      error
		imported bool
	)
	if format := importFormat(path); format != "" {
		text, err = a.conv.ToMarkdown(path, format)
		imported = true
	} else {
		text, err = storage.ReadDocument(path)
	}
	if err != nil {
		a.logger.Error("open %s: %v", path, err)
		return err
	}

	text, err = a.hooks.Transform(hook.OnOpen, text)
	if err != nil {
		a.logger.Warn("on_open hook: %v", err)
	}

	savePath := path
	if imported {
		savePath = ""
	}
	a.session.SetDocument(text, savePath)
	a.logger.Info("opened %s (%d bytes)", path, len(text))
	return nil
}

// SaveDocument writes the session's text. A Markdown destination is a plain
// save and marks the session clean; a known export format writes a converted
// copy through pandoc and leaves the session untouched. The on_save hook may
// rewrite the text being written.
func (a *Application) SaveDocument(path string) error {
	if path == "" {
		path = a.session.Path()
	}
	if path == "" {
		return fmt.Errorf("no file path")
	}

	text, err := a.hooks.Transform(hook.OnSave, a.session.Text())
	if err != nil {
		a.logger.Warn("on_save hook: %v", err)
	}

	if format := exportFormat(path); format != "" {
		if format == "pdf" && !convert.EngineInstalled() {
			return fmt.Errorf("pdf export requires wkhtmltopdf")
		}
		if err := a.conv.FromMarkdown(text, path, format); err != nil {
			a.logger.Error("export %s: %v", path, err)
			return err
		}
		a.logger.Info("exported %s", path)
		return nil
	}

	if err := storage.WriteDocument(path, text); err != nil {
		a.logger.Error("save %s: %v", path, err)
		return err
	}
	a.session.MarkSaved(path)
	a.logger.Info("saved %s", path)
	return nil
}

// ExportHTML renders the current document to a temp HTML file and returns its
// path, for handing to a browser.
func (a *Application) ExportHTML() (string, error) {
	return convert.ExportHTMLToTemp(render.ToHTML(a.session.Text()))
}

// importFormat maps a file extension to a pandoc source format. Empty means
// the file is read as-is.
func importFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return "docx"
	case ".odt":
		return "odt"
	case ".html", ".htm":
		return "html"
	case ".epub":
		return "epub"
	case ".tex":
		return "latex"
	case ".rst":
		return "rst"
	default:
		return ""
	}
}

// exportFormat maps a file extension to a pandoc target format. Empty means a
// plain Markdown save.
func exportFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	case ".odt":
		return "odt"
	case ".html", ".htm":
		return "html"
	case ".epub":
		return "epub"
	case ".tex":
		return "latex"
	case ".rst":
		return "rst"
	default:
		return ""
	}
}
