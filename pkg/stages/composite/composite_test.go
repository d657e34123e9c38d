package composite

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/user/quotegen/pkg/adapters/ggrenderer"
	"github.com/user/quotegen/pkg/adapters/logger"
	"github.com/user/quotegen/pkg/mocks"
	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

func testStyle() pipeline.StyleSpec {
	return pipeline.StyleSpec{
		BackgroundColor:      "#1e3a8a",
		TextColor:            "#ffffff",
		AccentColor:          "#ff0000",
		FontFamily:           "Go",
		FontSizePx:           40,
		TextAlign:            pipeline.AlignCenter,
		LineHeightMultiplier: 1.5,
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComposer_SingleLineIsCentered(t *testing.T) {
	c := NewComposer(DefaultOptions())
	surface := mocks.NewSurface(1080, 1080)

	result, err := c.Render(surface, pipeline.QuoteContent{Text: "Hello world"}, testStyle())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(surface.Fills) != 1 {
		t.Fatalf("expected one background fill, got %d", len(surface.Fills))
	}
	if got := surface.Fills[0].(color.NRGBA); got != (color.NRGBA{R: 0x1e, G: 0x3a, B: 0x8a, A: 255}) {
		t.Errorf("unexpected background %v", got)
	}

	if len(result.Lines) != 1 || len(surface.Texts) != 1 {
		t.Fatalf("expected one line, got %q", result.Lines)
	}

	call := surface.Texts[0]
	if call.Text != "Hello world" || !near(call.X, 540) || !near(call.Y, 540) {
		t.Errorf("unexpected draw: %+v", call)
	}
	if call.Style.Align != ports.AlignCenter || call.Style.FontSize != 40 || call.Style.FontFamily != "Go" {
		t.Errorf("unexpected text style: %+v", call.Style)
	}
}

func TestComposer_ThreeLinesSpreadAroundMidline(t *testing.T) {
	c := NewComposer(DefaultOptions())
	surface := mocks.NewSurface(1080, 1080)

	// 10px per char against a 980px content width: two 60-char words never share a line.
	word := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	text := word + " " + word + " " + word

	result, err := c.Render(surface, pipeline.QuoteContent{Text: text}, testStyle())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(result.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(result.Lines))
	}
	if !near(result.StartY, 540-60) {
		t.Errorf("expected startY 480, got %v", result.StartY)
	}
	if !near(surface.Texts[2].Y, 540+60) {
		t.Errorf("expected last line at 600, got %v", surface.Texts[2].Y)
	}
	if !near(result.BlockHeightPx, 180) {
		t.Errorf("expected block height 180, got %v", result.BlockHeightPx)
	}
}

func TestComposer_WrapsAgainstContentWidth(t *testing.T) {
	c := NewComposer(DefaultOptions())
	surface := mocks.NewSurface(1080, 1080)

	var widths []float64
	surface.MeasureFunc = func(text string, style ports.TextStyle) (float64, float64) {
		if style.FontSize != 40 || style.FontFamily != "Go" {
			t.Errorf("measure called with unexpected style %+v", style)
		}
		widths = append(widths, float64(len(text))*10)
		return float64(len(text)) * 10, style.FontSize
	}

	// a + " b" is 98 chars = 980px, which is not strictly less than the content width.
	a := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	result, err := c.Render(surface, pipeline.QuoteContent{Text: a + " b"}, testStyle())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(widths) == 0 {
		t.Fatal("expected text to be measured")
	}
	if len(result.Lines) != 2 {
		t.Errorf("expected 2 lines at the width boundary, got %q", result.Lines)
	}
}

func TestComposer_Alignment(t *testing.T) {
	tests := []struct {
		align     pipeline.TextAlign
		expectedX float64
		portAlign ports.TextAlign
	}{
		{pipeline.AlignLeft, 50, ports.AlignLeft},
		{pipeline.AlignCenter, 540, ports.AlignCenter},
		{pipeline.AlignRight, 1030, ports.AlignRight},
	}

	for _, tt := range tests {
		t.Run(string(tt.align), func(t *testing.T) {
			c := NewComposer(DefaultOptions())
			surface := mocks.NewSurface(1080, 1080)
			style := testStyle()
			style.TextAlign = tt.align

			if _, err := c.Render(surface, pipeline.QuoteContent{Text: "Quote", Author: "Someone"}, style); err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			for _, call := range surface.Texts {
				if !near(call.X, tt.expectedX) || call.Style.Align != tt.portAlign {
					t.Errorf("%q: expected x=%v align=%v, got x=%v align=%v", call.Text, tt.expectedX, tt.portAlign, call.X, call.Style.Align)
				}
			}
		})
	}
}

func TestComposer_MarginScalesWithWidth(t *testing.T) {
	c := NewComposer(DefaultOptions())

	if !near(c.Margin(1080), 50) {
		t.Errorf("expected 50px margin at 1080, got %v", c.Margin(1080))
	}
	if !near(c.Margin(2160), 100) {
		t.Errorf("expected 100px margin at 2160, got %v", c.Margin(2160))
	}
}

func TestComposer_Author(t *testing.T) {
	c := NewComposer(DefaultOptions())
	surface := mocks.NewSurface(1080, 1080)

	if _, err := c.Render(surface, pipeline.QuoteContent{Text: "Stay hungry", Author: "Steve Jobs"}, testStyle()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(surface.Texts) != 2 {
		t.Fatalf("expected quote and author, got %d draws", len(surface.Texts))
	}

	author := surface.Texts[1]
	if author.Text != "— Steve Jobs" {
		t.Errorf("unexpected author text %q", author.Text)
	}
	if !near(author.Style.FontSize, 24) {
		t.Errorf("expected author size 24, got %v", author.Style.FontSize)
	}

	// last line 540 + half line 30 + gap 25 + half author 12
	if !near(author.Y, 607) {
		t.Errorf("expected author at y=607, got %v", author.Y)
	}

	col := author.Style.Color.(color.NRGBA)
	if col.R != 255 || col.G != 0 || col.A < 228 || col.A > 231 {
		t.Errorf("expected accent color at 90%% opacity, got %v", col)
	}
}

func TestComposer_BlankAuthorSkipped(t *testing.T) {
	c := NewComposer(DefaultOptions())
	surface := mocks.NewSurface(1080, 1080)

	if _, err := c.Render(surface, pipeline.QuoteContent{Text: "Quote", Author: "   "}, testStyle()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(surface.Texts) != 1 {
		t.Errorf("expected only the quote, got %d draws", len(surface.Texts))
	}
}

func TestComposer_Watermark(t *testing.T) {
	c := NewComposer(DefaultOptions())
	surface := mocks.NewSurface(1080, 1080)
	style := testStyle()
	style.Watermark = pipeline.Watermark{Enabled: true, Text: "Quote Engine"}

	if _, err := c.Render(surface, pipeline.QuoteContent{Text: "Quote"}, style); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	wm := surface.Texts[len(surface.Texts)-1]
	if wm.Text != "Quote Engine" {
		t.Fatalf("expected watermark last, got %q", wm.Text)
	}
	if wm.Style.Align != ports.AlignRight {
		t.Errorf("expected right aligned watermark")
	}
	if !near(wm.X, 1055) || !near(wm.Y, 1080-25-10.8) {
		t.Errorf("unexpected watermark position (%v, %v)", wm.X, wm.Y)
	}
	if col := wm.Style.Color.(color.NRGBA); col.A != 77 {
		t.Errorf("expected 30%% opacity, got alpha %d", col.A)
	}

	// Small surfaces keep a readable minimum size.
	small := mocks.NewSurface(300, 300)
	if _, err := c.Render(small, pipeline.QuoteContent{Text: "Q"}, style); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := small.Texts[len(small.Texts)-1].Style.FontSize; got != 12 {
		t.Errorf("expected minimum watermark size 12, got %v", got)
	}
}

func TestComposer_WatermarkDisabled(t *testing.T) {
	c := NewComposer(DefaultOptions())
	surface := mocks.NewSurface(1080, 1080)
	style := testStyle()
	style.Watermark = pipeline.Watermark{Enabled: false, Text: "Quote Engine"}

	if _, err := c.Render(surface, pipeline.QuoteContent{Text: "Quote"}, style); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(surface.Texts) != 1 {
		t.Errorf("expected no watermark, got %d draws", len(surface.Texts))
	}
}

func TestComposer_Logo(t *testing.T) {
	c := NewComposer(DefaultOptions())
	surface := mocks.NewSurface(1080, 1080)
	style := testStyle()
	style.Logo = image.NewRGBA(image.Rect(0, 0, 200, 100))

	if _, err := c.Render(surface, pipeline.QuoteContent{Text: "Quote"}, style); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(surface.Images) != 1 {
		t.Fatalf("expected logo to be drawn once, got %d", len(surface.Images))
	}
	logo := surface.Images[0]
	// 108px box, 2:1 aspect
	if !near(logo.X, 25) || !near(logo.Y, 25) || !near(logo.Width, 108) || !near(logo.Height, 54) {
		t.Errorf("unexpected logo placement %+v", logo)
	}
}

func TestComposer_NoLogo(t *testing.T) {
	c := NewComposer(DefaultOptions())
	surface := mocks.NewSurface(1080, 1080)

	if _, err := c.Render(surface, pipeline.QuoteContent{Text: "Quote"}, testStyle()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(surface.Images) != 0 {
		t.Errorf("expected no logo, got %d", len(surface.Images))
	}
}

func TestComposer_Gradient(t *testing.T) {
	c := NewComposer(DefaultOptions())
	surface := mocks.NewSurface(1000, 500)
	style := testStyle()
	style.BackgroundGradient = &pipeline.Gradient{From: "#667eea", To: "#764ba2", AngleDeg: 90}

	if _, err := c.Render(surface, pipeline.QuoteContent{Text: "Quote"}, style); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(surface.Fills) != 0 || len(surface.Gradients) != 1 {
		t.Fatalf("expected a single gradient fill, got %d fills and %d gradients", len(surface.Fills), len(surface.Gradients))
	}
	g := surface.Gradients[0]
	if !near(g.X0, 0) || !near(g.Y0, 250) || !near(g.X1, 1000) || !near(g.Y1, 250) {
		t.Errorf("unexpected gradient line %+v", g)
	}
}

func TestGradientLine(t *testing.T) {
	tests := []struct {
		angle          float64
		x0, y0, x1, y1 float64
	}{
		{0, 50, 100, 50, 0},
		{90, 0, 50, 100, 50},
		{180, 50, 0, 50, 100},
		{135, 0, 0, 100, 100},
	}

	for _, tt := range tests {
		x0, y0, x1, y1 := GradientLine(100, 100, tt.angle)
		if !near(x0, tt.x0) || !near(y0, tt.y0) || !near(x1, tt.x1) || !near(y1, tt.y1) {
			t.Errorf("angle %v: got (%v,%v)-(%v,%v)", tt.angle, x0, y0, x1, y1)
		}
	}
}

func TestComposer_Errors(t *testing.T) {
	c := NewComposer(DefaultOptions())

	if _, err := c.Render(mocks.NewSurface(100, 100), pipeline.QuoteContent{Text: "  "}, testStyle()); !errors.Is(err, pipeline.ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
	if _, err := c.Render(mocks.NewSurface(100, 0), pipeline.QuoteContent{Text: "Quote"}, testStyle()); !errors.Is(err, pipeline.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestComposer_Idempotent(t *testing.T) {
	r := ggrenderer.New()
	c := NewComposer(DefaultOptions())

	style := testStyle()
	style.BackgroundGradient = &pipeline.Gradient{From: "#667eea", To: "#764ba2", AngleDeg: 135}
	style.Watermark = pipeline.Watermark{Enabled: true, Text: "Quote Engine"}
	content := pipeline.QuoteContent{Text: "The only way to do great work is to love what you do", Author: "Steve Jobs"}

	render := func(s ports.Surface) []byte {
		if _, err := c.Render(s, content, style); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		data, err := r.EncodeImage(s.ToImage(), ports.FormatPNG, 0)
		if err != nil {
			t.Fatalf("EncodeImage failed: %v", err)
		}
		return data
	}

	first, _ := r.CreateSurface(540, 540)
	second, _ := r.CreateSurface(540, 540)

	a := render(first)
	b := render(second)
	if !bytes.Equal(a, b) {
		t.Error("expected identical output on two fresh surfaces")
	}

	// Rendering other content first must not leave residue.
	other := style
	other.BackgroundGradient = nil
	other.BackgroundColor = "#000000"
	if _, err := c.Render(first, pipeline.QuoteContent{Text: "Something else entirely"}, other); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Equal(render(first), a) {
		t.Error("expected re-render on a used surface to match a fresh render")
	}
}

func TestStage_Execute(t *testing.T) {
	mockRenderer := &mocks.Renderer{}
	sink := mocks.NewDebugSink(true)

	stage := NewStage(mockRenderer, nil, sink, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ComposeInput{
		PresetID: "square",
		Width:    1080,
		Height:   1080,
		Content:  pipeline.QuoteContent{Text: "Hello world"},
		Style:    testStyle(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bounds := result.Image.Bounds()
	if bounds.Dx() != 1080 || bounds.Dy() != 1080 {
		t.Errorf("expected 1080x1080, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if len(result.Layout.Lines) != 1 {
		t.Errorf("expected 1 line, got %d", len(result.Layout.Lines))
	}

	if _, ok := sink.Layout("square"); !ok {
		t.Error("expected layout debug output")
	}
	if sink.Renders["square"] == nil {
		t.Error("expected render debug output")
	}
}

func TestStage_Execute_InvalidDimensions(t *testing.T) {
	stage := NewStage(&mocks.Renderer{}, nil, &mocks.NullSink{}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ComposeInput{
		PresetID: "tall",
		Width:    1080,
		Height:   0,
		Content:  pipeline.QuoteContent{Text: "Hello"},
		Style:    testStyle(),
	})
	if !errors.Is(err, pipeline.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestStage_Execute_Cancelled(t *testing.T) {
	stage := NewStage(&mocks.Renderer{}, nil, &mocks.NullSink{}, logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.ComposeInput{Width: 10, Height: 10, Content: pipeline.QuoteContent{Text: "x"}, Style: testStyle()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
