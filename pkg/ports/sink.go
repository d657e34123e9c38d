package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving per-preset layout and render results for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveLayoutJSON saves the layout calculation result for a preset as JSON.
	SaveLayoutJSON(presetID string, data []byte) error

	// SaveRender saves the rendered image for a preset.
	SaveRender(presetID string, img image.Image) error
}
