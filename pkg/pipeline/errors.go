package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText is returned when the quote has no words to lay out.
	ErrEmptyText = errors.New("pipeline: empty text")

	// ErrInvalidDimensions is returned for a width or height <= 0.
	ErrInvalidDimensions = errors.New("pipeline: invalid dimensions")

	// ErrUnsupportedFormat is returned for an unknown output format.
	ErrUnsupportedFormat = errors.New("pipeline: unsupported format")
)

// ConfigError reports an incomplete or invalid style or configuration.
// It is raised before any rendering starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown id (preset, template, brand kit, asset).
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// EncodeError reports a failed export of a single preset. It never
// affects other presets in the same batch.
type EncodeError struct {
	PresetID string
	Format   Format
	Err      error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("export %s as %s: %v", e.PresetID, e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
