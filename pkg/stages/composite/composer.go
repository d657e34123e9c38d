package composite

import (
	"fmt"
	"math"
	"strings"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
	"github.com/user/quotegen/pkg/stages/layout"
)

// Overlay proportions. Sizes are relative to the surface width unless noted.
const (
	logoBoxRatio     = 0.1 // logo fits in a square of width*logoBoxRatio
	authorFontRatio  = 0.6 // relative to the quote font size
	authorOpacity    = 0.9
	watermarkRatio   = 0.02
	watermarkMinPx   = 12.0
	watermarkOpacity = 0.3
	authorPrefix     = "— "
)

// Options configures the composer geometry.
type Options struct {
	// MarginPx is the horizontal text margin at ReferenceWidth.
	MarginPx float64
	// ReferenceWidth is the surface width at which MarginPx applies unscaled.
	ReferenceWidth float64
}

// DefaultOptions returns a 50px margin at 1080px width.
func DefaultOptions() Options {
	return Options{MarginPx: 50, ReferenceWidth: 1080}
}

// Composer paints a quote onto a surface.
// It holds no per-render state and may be shared between goroutines.
type Composer struct {
	opts Options
}

// NewComposer creates a composer. Zero option values fall back to defaults.
func NewComposer(opts Options) *Composer {
	def := DefaultOptions()
	if opts.MarginPx <= 0 {
		opts.MarginPx = def.MarginPx
	}
	if opts.ReferenceWidth <= 0 {
		opts.ReferenceWidth = def.ReferenceWidth
	}
	return &Composer{opts: opts}
}

// Margin returns the scaled text margin for a surface width.
func (c *Composer) Margin(width int) float64 {
	return c.opts.MarginPx * float64(width) / c.opts.ReferenceWidth
}

// Render draws content onto surface in this order: background, logo,
// quote lines, author, watermark. The background always covers the whole
// surface first, so rendering onto a reused surface leaves no residue.
func (c *Composer) Render(surface ports.Surface, content pipeline.QuoteContent, style pipeline.StyleSpec) (pipeline.LayoutResult, error) {
	width, height := surface.Width(), surface.Height()
	if width <= 0 || height <= 0 {
		return pipeline.LayoutResult{}, fmt.Errorf("%w: %dx%d", pipeline.ErrInvalidDimensions, width, height)
	}
	if strings.TrimSpace(content.Text) == "" {
		return pipeline.LayoutResult{}, pipeline.ErrEmptyText
	}

	c.paintBackground(surface, style)

	margin := c.Margin(width)
	if style.Logo != nil {
		c.drawLogo(surface, style, margin)
	}

	textStyle := ports.TextStyle{
		FontFamily: style.FontFamily,
		FontSize:   style.FontSizePx,
		Color:      pipeline.MustParseColor(style.TextColor),
		Align:      toPortsAlign(style.TextAlign),
	}

	measure := func(line string) float64 {
		w, _ := surface.MeasureText(line, textStyle)
		return w
	}
	lines, err := layout.Wrap(content.Text, measure, float64(width)-2*margin)
	if err != nil {
		return pipeline.LayoutResult{}, err
	}

	result := layout.Compute(lines, style.FontSizePx, style.LineHeightMultiplier, height)

	x := anchorX(style.TextAlign, width, margin)
	for i, line := range result.Lines {
		surface.DrawText(line, x, result.LineY(i), textStyle)
	}

	if author := strings.TrimSpace(content.Author); author != "" {
		authorSize := style.FontSizePx * authorFontRatio
		authorGap := margin / 2
		y := result.LastLineY() + result.LineHeightPx/2 + authorGap + authorSize/2

		surface.DrawText(authorPrefix+author, x, y, ports.TextStyle{
			FontFamily: style.FontFamily,
			FontSize:   authorSize,
			Color:      pipeline.WithOpacity(pipeline.MustParseColor(style.AccentColor), authorOpacity),
			Align:      textStyle.Align,
		})
	}

	if style.Watermark.Enabled && strings.TrimSpace(style.Watermark.Text) != "" {
		size := math.Max(watermarkMinPx, float64(width)*watermarkRatio)
		inset := margin / 2

		surface.DrawText(style.Watermark.Text, float64(width)-inset, float64(height)-inset-size/2, ports.TextStyle{
			FontFamily: style.FontFamily,
			FontSize:   size,
			Color:      pipeline.WithOpacity(pipeline.MustParseColor(style.TextColor), watermarkOpacity),
			Align:      ports.AlignRight,
		})
	}

	return result, nil
}

func (c *Composer) paintBackground(surface ports.Surface, style pipeline.StyleSpec) {
	if g := style.BackgroundGradient; g != nil {
		x0, y0, x1, y1 := GradientLine(surface.Width(), surface.Height(), g.AngleDeg)
		surface.FillGradient(ports.LinearGradient{
			X0: x0, Y0: y0, X1: x1, Y1: y1,
			From: pipeline.MustParseColor(g.From),
			To:   pipeline.MustParseColor(g.To),
		})
		return
	}
	surface.Fill(pipeline.MustParseColor(style.BackgroundColor))
}

func (c *Composer) drawLogo(surface ports.Surface, style pipeline.StyleSpec, margin float64) {
	b := style.Logo.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}

	box := float64(surface.Width()) * logoBoxRatio
	scale := math.Min(box/float64(b.Dx()), box/float64(b.Dy()))
	inset := margin / 2

	surface.DrawImageScaled(style.Logo, inset, inset, float64(b.Dx())*scale, float64(b.Dy())*scale)
}

// GradientLine returns the endpoints of a CSS-style linear gradient at
// angleDeg (0 = bottom to top, 90 = left to right) over a width x height box.
// The line passes through the center and is long enough that the corners
// get the pure stop colors.
func GradientLine(width, height int, angleDeg float64) (x0, y0, x1, y1 float64) {
	rad := angleDeg * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)

	w, h := float64(width), float64(height)
	half := (math.Abs(w*dx) + math.Abs(h*dy)) / 2

	cx, cy := w/2, h/2
	return cx - dx*half, cy - dy*half, cx + dx*half, cy + dy*half
}

func anchorX(align pipeline.TextAlign, width int, margin float64) float64 {
	switch align {
	case pipeline.AlignLeft:
		return margin
	case pipeline.AlignRight:
		return float64(width) - margin
	default:
		return float64(width) / 2
	}
}

func toPortsAlign(align pipeline.TextAlign) ports.TextAlign {
	switch align {
	case pipeline.AlignLeft:
		return ports.AlignLeft
	case pipeline.AlignRight:
		return ports.AlignRight
	default:
		return ports.AlignCenter
	}
}
