// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/quotegen/pkg/ports"
)

// Sink saves per-preset debug output under baseDir/<preset>/.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveLayoutJSON writes <preset>/layout.json.
func (s *Sink) SaveLayoutJSON(presetID string, data []byte) error {
	dir, err := s.presetDir(presetID)
	if err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(dir, "layout.json"), data)
}

// SaveRender writes <preset>/render.png.
func (s *Sink) SaveRender(presetID string, img image.Image) error {
	dir, err := s.presetDir(presetID)
	if err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode render: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(dir, "render.png"), data)
}

func (s *Sink) presetDir(presetID string) (string, error) {
	if presetID == "" {
		presetID = "_"
	}
	dir := filepath.Join(s.baseDir, presetID)
	if err := s.fs.MkdirAll(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
