// Package summarizer builds and writes the manifest of an export batch:
// the quote, the resolved style, the settings and one row per preset.
package summarizer

import (
	"fmt"
	"path/filepath"

	"github.com/user/quotegen/pkg/ports"
)

// Formatter renders a Summary as text.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc adapts a function to Formatter.
type FormatFunc func(summary *Summary) string

// Format implements Formatter.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// Writer writes formatted summaries through a FileSystem.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem
}

// NewWriter creates a Writer.
func NewWriter(formatter Formatter, fs ports.FileSystem) *Writer {
	return &Writer{
		formatter: formatter,
		fs:        fs,
	}
}

// Write formats summary and writes it to path, creating the parent
// directory when needed.
func (w *Writer) Write(path string, summary *Summary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("create summary directory %s: %w", dir, err)
		}
	}

	if err := w.fs.WriteFile(path, []byte(w.formatter.Format(summary))); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}
