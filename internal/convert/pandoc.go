// Package convert shells out to pandoc to import foreign document formats
// into Markdown and export Markdown to them. Converters are black boxes:
// failures surface as a single error message and never touch the in-memory
// document or history.
package convert

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// importTarget keeps pandoc from emitting raw HTML spans/divs that the
// editing engine would have to round-trip.
const importTarget = "markdown-raw_html-native_spans-native_divs"

// tempExportName is the fixed name of the preview HTML hand-off file.
const tempExportName = "marktide_export.html"

// Converter invokes pandoc. The zero value is not usable; construct with New.
type Converter struct {
	pandocPath string
}

// New creates a Converter using the given pandoc binary path ("pandoc" when
// empty).
func New(pandocPath string) *Converter {
	if pandocPath == "" {
		pandocPath = "pandoc"
	}
	return &Converter{pandocPath: pandocPath}
}

// ToMarkdown converts the file at path from the given source format into
// Markdown text.
func (c *Converter) ToMarkdown(path, fromFormat string) (string, error) {
	cmd := exec.Command(c.pandocPath, importArgs(path, fromFormat)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("pandoc failed: %s", strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("running pandoc: %w (is pandoc installed?)", err)
	}

	return cleanImported(stdout.String()), nil
}

// FromMarkdown exports Markdown text to outPath in the given target format.
// PDF export routes through wkhtmltopdf.
func (c *Converter) FromMarkdown(text, outPath, toFormat string) error {
	cmd := exec.Command(c.pandocPath, exportArgs(outPath, toFormat)...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("pandoc failed: %s", strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("running pandoc: %w (is pandoc installed?)", err)
	}
	return nil
}

// EngineInstalled probes for the wkhtmltopdf PDF engine.
func EngineInstalled() bool {
	return exec.Command("wkhtmltopdf", "--version").Run() == nil
}

// ExportHTMLToTemp writes preview HTML to a fixed file in the system temp
// directory and returns its path, for hand-off to print/PDF surfaces.
func ExportHTMLToTemp(html string) (string, error) {
	path := filepath.Join(os.TempDir(), tempExportName)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write temp export: %w", err)
	}
	return path, nil
}

// importArgs builds the pandoc argument list for an import.
func importArgs(path, fromFormat string) []string {
	return []string{
		"-f", fromFormat,
		"-t", importTarget,
		"--wrap=none",
		"--extract-media=.",
		path,
	}
}

// exportArgs builds the pandoc argument list for an export.
func exportArgs(outPath, toFormat string) []string {
	args := []string{
		"-f", "markdown",
		"-t", toFormat,
		"--wrap=none",
		"-o", outPath,
	}
	if toFormat == "pdf" {
		args = append(args, "--pdf-engine=wkhtmltopdf")
	}
	return args
}

// cleanImported rewrites superscript and subscript HTML tags that pandoc can
// leave behind into their Markdown marker equivalents.
func cleanImported(text string) string {
	r := strings.NewReplacer(
		"<sup>", "^",
		"</sup>", "^",
		"<sub>", "~",
		"</sub>", "~",
	)
	return r.Replace(text)
}
