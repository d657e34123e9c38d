// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	fonts *FontRegistry
}

// New creates a new Renderer with the embedded Go fonts.
func New() *Renderer {
	return &Renderer{fonts: NewFontRegistry()}
}

// NewWithFonts creates a Renderer that resolves families through fonts.
func NewWithFonts(fonts *FontRegistry) *Renderer {
	return &Renderer{fonts: fonts}
}

// Fonts returns the font registry used by the renderer.
func (r *Renderer) Fonts() *FontRegistry {
	return r.fonts
}

// CreateSurface creates a new transparent drawing surface.
func (r *Renderer) CreateSurface(width, height int) (ports.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pipeline.ErrInvalidDimensions, width, height)
	}
	dc := gg.NewContext(width, height)
	return &Surface{dc: dc, faces: newFaceCache(r.fonts)}, nil
}

// DecodeImage decodes PNG or JPEG data into an image.Image.
func (r *Renderer) DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Surface implements ports.Surface using gg.Context.
type Surface struct {
	dc    *gg.Context
	faces *faceCache
}

// Width returns the surface width.
func (s *Surface) Width() int {
	return s.dc.Width()
}

// Height returns the surface height.
func (s *Surface) Height() int {
	return s.dc.Height()
}

// Fill paints the whole surface with a solid color.
func (s *Surface) Fill(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

// FillGradient paints the whole surface with a linear gradient.
func (s *Surface) FillGradient(g ports.LinearGradient) {
	grad := gg.NewLinearGradient(g.X0, g.Y0, g.X1, g.Y1)
	grad.AddColorStop(0, g.From)
	grad.AddColorStop(1, g.To)

	s.dc.Push()
	defer s.dc.Pop()
	s.dc.SetFillStyle(grad)
	s.dc.DrawRectangle(0, 0, float64(s.dc.Width()), float64(s.dc.Height()))
	s.dc.Fill()
}

// DrawRect draws a filled rectangle.
func (s *Surface) DrawRect(x, y, w, h float64, col color.Color) {
	s.dc.SetColor(col)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

// DrawText draws a line of text anchored at (x, y).
func (s *Surface) DrawText(text string, x, y float64, style ports.TextStyle) {
	s.useFace(style)
	s.dc.SetColor(style.Color)

	ax := 0.0
	switch style.Align {
	case ports.AlignCenter:
		ax = 0.5
	case ports.AlignRight:
		ax = 1.0
	}

	s.dc.DrawStringAnchored(text, x, y, ax, 0.5)
}

// MeasureText returns the advance width and line height of text.
func (s *Surface) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	s.useFace(style)
	return s.dc.MeasureString(text)
}

// DrawImageScaled draws an image resampled to the specified dimensions.
func (s *Surface) DrawImageScaled(img image.Image, x, y, width, height float64) {
	w := int(math.Round(width))
	h := int(math.Round(height))
	if w <= 0 || h <= 0 {
		return
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	s.dc.DrawImage(dst, int(math.Round(x)), int(math.Round(y)))
}

// ToImage returns the surface as an image.Image.
func (s *Surface) ToImage() image.Image {
	return s.dc.Image()
}

func (s *Surface) useFace(style ports.TextStyle) {
	face, err := s.faces.face(style.FontFamily, style.FontSize)
	if err != nil {
		// Keep gg's built-in face.
		return
	}
	s.dc.SetFontFace(face)
}

// Ensure Surface implements ports.Surface
var _ ports.Surface = (*Surface)(nil)
