package encode

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/user/quotegen/pkg/adapters/ggrenderer"
	"github.com/user/quotegen/pkg/adapters/logger"
	"github.com/user/quotegen/pkg/mocks"
	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 8), B: 128, A: 255})
		}
	}
	return img
}

func TestStage_Execute_PNG(t *testing.T) {
	stage := NewStage(ggrenderer.New(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		PresetID: "square",
		Image:    testImage(),
		Format:   pipeline.FormatPNG,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("expected valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 64 || decoded.Bounds().Dy() != 32 {
		t.Errorf("unexpected size %v", decoded.Bounds())
	}
}

func TestStage_Execute_JPEG(t *testing.T) {
	stage := NewStage(ggrenderer.New(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		PresetID: "square",
		Image:    testImage(),
		Format:   pipeline.FormatJPEG,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := jpeg.Decode(bytes.NewReader(result.Data)); err != nil {
		t.Fatalf("expected valid JPEG: %v", err)
	}
}

func TestStage_Execute_DefaultQuality(t *testing.T) {
	var gotQuality int
	var gotFormat ports.ImageFormat
	r := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			gotQuality = quality
			gotFormat = format
			return []byte{1}, nil
		},
	}
	stage := NewStage(r, logger.NewNoop())

	if _, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: testImage(), Format: pipeline.FormatJPEG}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuality != DefaultJPEGQuality {
		t.Errorf("expected quality %d, got %d", DefaultJPEGQuality, gotQuality)
	}
	if gotFormat != ports.FormatJPEG {
		t.Errorf("expected JPEG, got %v", gotFormat)
	}
}

func TestNormalizeQuality(t *testing.T) {
	tests := map[int]int{0: 90, -5: 90, 1: 1, 75: 75, 100: 100, 150: 100}
	for in, want := range tests {
		if got := NormalizeQuality(in); got != want {
			t.Errorf("NormalizeQuality(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestStage_Execute_Errors(t *testing.T) {
	encodeFailure := errors.New("disk full")

	tests := []struct {
		name     string
		renderer ports.Renderer
		input    pipeline.EncodeInput
		wrapped  error
	}{
		{
			name:     "unsupported format",
			renderer: &mocks.Renderer{},
			input:    pipeline.EncodeInput{PresetID: "tall", Image: testImage(), Format: "webp"},
			wrapped:  pipeline.ErrUnsupportedFormat,
		},
		{
			name: "renderer failure",
			renderer: &mocks.Renderer{
				EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
					return nil, encodeFailure
				},
			},
			input:   pipeline.EncodeInput{PresetID: "tall", Image: testImage(), Format: pipeline.FormatPNG},
			wrapped: encodeFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := NewStage(tt.renderer, logger.NewNoop())

			_, err := stage.Execute(context.Background(), tt.input)

			var encErr *pipeline.EncodeError
			if !errors.As(err, &encErr) {
				t.Fatalf("expected EncodeError, got %v", err)
			}
			if encErr.PresetID != "tall" {
				t.Errorf("expected preset id tall, got %q", encErr.PresetID)
			}
			if !errors.Is(err, tt.wrapped) {
				t.Errorf("expected %v to be wrapped, got %v", tt.wrapped, err)
			}
		})
	}
}

func TestStage_Execute_NilImage(t *testing.T) {
	stage := NewStage(&mocks.Renderer{}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{PresetID: "square", Format: pipeline.FormatPNG})
	var encErr *pipeline.EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodeError, got %v", err)
	}
}
