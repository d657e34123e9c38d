package mocks

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateSurfaceFunc func(width, height int) (ports.Surface, error)
	DecodeImageFunc   func(data []byte) (image.Image, error)
	EncodeImageFunc   func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)

	mu       sync.Mutex
	surfaces []*Surface
}

func (m *Renderer) CreateSurface(width, height int) (ports.Surface, error) {
	if m.CreateSurfaceFunc != nil {
		return m.CreateSurfaceFunc(width, height)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pipeline.ErrInvalidDimensions, width, height)
	}
	s := NewSurface(width, height)
	m.mu.Lock()
	m.surfaces = append(m.surfaces, s)
	m.mu.Unlock()
	return s, nil
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	b := img.Bounds()
	return []byte(fmt.Sprintf("%s:%dx%d:q%d", format, b.Dx(), b.Dy(), quality)), nil
}

// Surfaces returns the surfaces created by the default CreateSurface.
func (m *Renderer) Surfaces() []*Surface {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Surface(nil), m.surfaces...)
}

var _ ports.Renderer = (*Renderer)(nil)

// TextCall records a DrawText invocation.
type TextCall struct {
	Text  string
	X, Y  float64
	Style ports.TextStyle
}

// ImageCall records a DrawImageScaled invocation.
type ImageCall struct {
	X, Y, Width, Height float64
}

// Surface is a recording mock of ports.Surface. Text measures CharWidth
// pixels per byte at any font size unless MeasureFunc is set.
type Surface struct {
	width  int
	height int

	CharWidth   float64
	MeasureFunc func(text string, style ports.TextStyle) (float64, float64)

	Fills     []color.Color
	Gradients []ports.LinearGradient
	Rects     int
	Texts     []TextCall
	Images    []ImageCall
}

// NewSurface creates a recording surface with CharWidth 10.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height, CharWidth: 10}
}

func (m *Surface) Width() int  { return m.width }
func (m *Surface) Height() int { return m.height }

func (m *Surface) Fill(c color.Color) {
	m.Fills = append(m.Fills, c)
}

func (m *Surface) FillGradient(g ports.LinearGradient) {
	m.Gradients = append(m.Gradients, g)
}

func (m *Surface) DrawRect(x, y, w, h float64, c color.Color) {
	m.Rects++
}

func (m *Surface) DrawText(text string, x, y float64, style ports.TextStyle) {
	m.Texts = append(m.Texts, TextCall{Text: text, X: x, Y: y, Style: style})
}

func (m *Surface) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	if m.MeasureFunc != nil {
		return m.MeasureFunc(text, style)
	}
	return float64(len(text)) * m.CharWidth, style.FontSize
}

func (m *Surface) DrawImageScaled(img image.Image, x, y, width, height float64) {
	m.Images = append(m.Images, ImageCall{X: x, Y: y, Width: width, Height: height})
}

func (m *Surface) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Surface = (*Surface)(nil)
