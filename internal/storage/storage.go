// Package storage reads and writes document files. It is a collaborator of
// the editing engine: the engine itself performs no I/O.
package storage

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when a file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// ReadDocument reads the file at path and returns its text. Missing files,
// permission denials, and encoding failures surface as errors; the caller's
// in-memory state is never touched on failure.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}

// WriteDocument writes text to the file at path, creating it if needed.
func WriteDocument(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
