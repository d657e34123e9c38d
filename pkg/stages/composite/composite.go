// Package composite implements the quote composition stage.
package composite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

// Stage renders a quote onto a freshly created surface.
type Stage struct {
	renderer ports.Renderer
	composer *Composer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new composite stage.
func NewStage(renderer ports.Renderer, composer *Composer, sink ports.DebugSink, logger ports.Logger) *Stage {
	if composer == nil {
		composer = NewComposer(DefaultOptions())
	}
	return &Stage{
		renderer: renderer,
		composer: composer,
		sink:     sink,
		logger:   logger.WithComponent("composite"),
	}
}

// Execute creates a surface of the requested size and renders onto it.
// Each call owns its surface exclusively.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ComposeResult{}, err
	}

	surface, err := s.renderer.CreateSurface(input.Width, input.Height)
	if err != nil {
		return pipeline.ComposeResult{}, fmt.Errorf("create surface: %w", err)
	}

	s.logger.Debug("Composing %s at %dx%d", input.PresetID, input.Width, input.Height)

	layout, err := s.composer.Render(surface, input.Content, input.Style)
	if err != nil {
		return pipeline.ComposeResult{}, err
	}

	s.logger.Debug("Laid out %d lines, line height %.1fpx", len(layout.Lines), layout.LineHeightPx)

	img := surface.ToImage()

	if s.sink.Enabled() {
		if data, err := json.MarshalIndent(layout, "", "  "); err == nil {
			if err := s.sink.SaveLayoutJSON(input.PresetID, data); err != nil {
				s.logger.Warn("Failed to save layout debug output: %v", err)
			}
		}
		if err := s.sink.SaveRender(input.PresetID, img); err != nil {
			s.logger.Warn("Failed to save render debug output: %v", err)
		}
	}

	return pipeline.ComposeResult{Image: img, Layout: layout}, nil
}
