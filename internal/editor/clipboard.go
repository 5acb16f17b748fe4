package editor

import "github.com/atotto/clipboard"

// Clipboard abstracts the system clipboard so tests can substitute a fake.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemClipboard is the default Clipboard backed by the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
