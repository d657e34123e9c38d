// Package encode implements the image serialization stage.
package encode

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

// DefaultJPEGQuality is used when a request leaves the quality unset.
const DefaultJPEGQuality = 90

// Stage serializes a rendered image to PNG or JPEG.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes the image. Every failure is returned as a
// *pipeline.EncodeError carrying the preset id.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	fail := func(err error) (pipeline.EncodeResult, error) {
		return result, &pipeline.EncodeError{PresetID: input.PresetID, Format: input.Format, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if input.Image == nil {
		return fail(errors.New("no image to encode"))
	}

	format, err := toImageFormat(input.Format)
	if err != nil {
		return fail(err)
	}

	quality := NormalizeQuality(input.Quality)

	data, err := s.renderer.EncodeImage(input.Image, format, quality)
	if err != nil {
		return fail(err)
	}

	s.logger.Debug("Encoded %s as %s (%d bytes)", input.PresetID, input.Format, len(data))

	result.Data = data
	return result, nil
}

// NormalizeQuality maps an unset quality to DefaultJPEGQuality and clamps
// the rest into 1..100.
func NormalizeQuality(q int) int {
	switch {
	case q <= 0:
		return DefaultJPEGQuality
	case q > 100:
		return 100
	default:
		return q
	}
}

func toImageFormat(f pipeline.Format) (ports.ImageFormat, error) {
	switch f {
	case pipeline.FormatPNG:
		return ports.FormatPNG, nil
	case pipeline.FormatJPEG:
		return ports.FormatJPEG, nil
	default:
		return 0, fmt.Errorf("%w: %q", pipeline.ErrUnsupportedFormat, f)
	}
}
