package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts the 2D graphics backend.
type Renderer interface {
	// CreateSurface creates a new transparent drawing surface.
	// Returns an error for non-positive dimensions.
	CreateSurface(width, height int) (Surface, error)

	// DecodeImage decodes PNG or JPEG data into an image.Image.
	DecodeImage(data []byte) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// Surface provides the drawing operations used by the composer.
// A surface is owned by exactly one render call at a time.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Fill paints the entire surface with a solid color.
	Fill(c color.Color)

	// FillGradient paints the entire surface with a linear gradient.
	FillGradient(g LinearGradient)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h float64, c color.Color)

	// DrawText draws a single line of text anchored at (x, y).
	// The horizontal anchor follows style.Align; vertically the text is centered on y.
	DrawText(text string, x, y float64, style TextStyle)

	// MeasureText returns the width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// DrawImageScaled draws an image scaled to the specified dimensions.
	DrawImageScaled(img image.Image, x, y, width, height float64)

	// ToImage returns the surface as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	Color      color.Color
	Align      TextAlign
}

// TextAlign specifies text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// LinearGradient is a two-stop gradient between (X0,Y0) and (X1,Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	From, To       color.Color
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	default:
		return "unknown"
	}
}
