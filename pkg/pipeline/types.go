package pipeline

import (
	"fmt"
	"image"
	"strings"
	"time"
)

// =============================================================================
// Common Types
// =============================================================================

// QuoteContent is the text snapshot rendered by one export.
type QuoteContent struct {
	Text   string `json:"text" yaml:"text"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
}

// TextAlign specifies horizontal alignment of the quote lines.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// Valid reports whether a is one of the known alignments.
func (a TextAlign) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// Gradient is a two-stop linear gradient. AngleDeg follows CSS
// linear-gradient semantics: 0 points up, 90 points right.
type Gradient struct {
	From     string  `json:"from" yaml:"from"`
	To       string  `json:"to" yaml:"to"`
	AngleDeg float64 `json:"angle" yaml:"angle"`
}

// Watermark is small low-opacity text drawn at the bottom-right corner.
type Watermark struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Text    string `json:"text" yaml:"text"`
}

// =============================================================================
// Style Types
// =============================================================================

// StyleSpec is the fully resolved set of visual parameters for one render.
// Values produced by the style resolver always have every field the
// composer reads.
type StyleSpec struct {
	BackgroundColor      string
	BackgroundGradient   *Gradient // takes precedence over BackgroundColor
	TextColor            string
	AccentColor          string // author line color
	FontFamily           string
	FontSizePx           float64
	TextAlign            TextAlign
	LineHeightMultiplier float64
	Logo                 image.Image // optional
	Watermark            Watermark
}

// StylePatch is a partial StyleSpec. Nil fields are unset and leave the
// lower-precedence value in place.
type StylePatch struct {
	BackgroundColor      *string     `yaml:"background_color,omitempty"`
	BackgroundGradient   *Gradient   `yaml:"background_gradient,omitempty"`
	TextColor            *string     `yaml:"text_color,omitempty"`
	AccentColor          *string     `yaml:"accent_color,omitempty"`
	FontFamily           *string     `yaml:"font_family,omitempty"`
	FontSizePx           *float64    `yaml:"font_size,omitempty"`
	TextAlign            *TextAlign  `yaml:"text_align,omitempty"`
	LineHeightMultiplier *float64    `yaml:"line_height,omitempty"`
	Watermark            *Watermark  `yaml:"watermark,omitempty"`
	Logo                 image.Image `yaml:"-"`
}

// IsZero reports whether no field of the patch is set.
func (p StylePatch) IsZero() bool {
	return p.BackgroundColor == nil && p.BackgroundGradient == nil &&
		p.TextColor == nil && p.AccentColor == nil && p.FontFamily == nil &&
		p.FontSizePx == nil && p.TextAlign == nil && p.LineHeightMultiplier == nil &&
		p.Watermark == nil && p.Logo == nil
}

// Template is a named, reusable style.
type Template struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Scope string     `yaml:"scope"` // "global" or "user"
	Style StylePatch `yaml:"style"`
}

// BrandKit holds brand identity values applied on top of a template.
type BrandKit struct {
	ID             string     `yaml:"id"`
	PrimaryColor   string     `yaml:"primary_color"`
	SecondaryColor string     `yaml:"secondary_color"`
	AccentColor    string     `yaml:"accent_color"`
	TextColor      string     `yaml:"text_color"`
	FontFamily     string     `yaml:"font_family"`
	LogoPath       string     `yaml:"logo_path"`
	ApplyColors    bool       `yaml:"apply_colors"`
	Watermark      *Watermark `yaml:"watermark"`
}

// Patch converts the brand kit into a style patch. Colors only take part
// when ApplyColors is set: primary alone becomes a solid background,
// primary and secondary become a 135° gradient.
func (b BrandKit) Patch() StylePatch {
	var p StylePatch

	if b.ApplyColors {
		switch {
		case b.PrimaryColor != "" && b.SecondaryColor != "":
			p.BackgroundGradient = &Gradient{From: b.PrimaryColor, To: b.SecondaryColor, AngleDeg: 135}
		case b.PrimaryColor != "":
			p.BackgroundColor = strPtr(b.PrimaryColor)
		}
		if b.AccentColor != "" {
			p.AccentColor = strPtr(b.AccentColor)
		}
		if b.TextColor != "" {
			p.TextColor = strPtr(b.TextColor)
		}
	}

	if b.FontFamily != "" {
		p.FontFamily = strPtr(b.FontFamily)
	}
	if b.Watermark != nil {
		wm := *b.Watermark
		p.Watermark = &wm
	}

	return p
}

func strPtr(s string) *string { return &s }

// =============================================================================
// Size Preset Types
// =============================================================================

// SizePreset is a named output size for a target platform.
type SizePreset struct {
	ID     string `json:"id" yaml:"id"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Label  string `json:"label" yaml:"label"`
}

// DisplayLabel returns the label, or "<id> (WxH)" when no label is set.
func (p SizePreset) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return fmt.Sprintf("%s (%dx%d)", p.ID, p.Width, p.Height)
}

// =============================================================================
// Layout Types
// =============================================================================

// LayoutResult is the wrapped and vertically placed block of quote lines.
type LayoutResult struct {
	Lines         []string `json:"lines"`
	LineHeightPx  float64  `json:"lineHeight"`
	BlockHeightPx float64  `json:"blockHeight"`
	StartY        float64  `json:"startY"` // center y of the first line
}

// LineY returns the center y coordinate of line i.
func (l LayoutResult) LineY(i int) float64 {
	return l.StartY + float64(i)*l.LineHeightPx
}

// LastLineY returns the center y coordinate of the final line.
func (l LayoutResult) LastLineY() float64 {
	if len(l.Lines) == 0 {
		return l.StartY
	}
	return l.LineY(len(l.Lines) - 1)
}

// =============================================================================
// Format Types
// =============================================================================

// Format is an output image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ParseFormat parses a format name. "jpg" is accepted as an alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// =============================================================================
// Compose Stage Types
// =============================================================================

// ComposeInput contains everything needed to render one surface.
type ComposeInput struct {
	PresetID string // for logging and debug output only
	Width    int
	Height   int
	Content  QuoteContent
	Style    StyleSpec
}

// ComposeResult contains the rendered image and the layout used.
type ComposeResult struct {
	Image  image.Image
	Layout LayoutResult
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for image serialization.
type EncodeInput struct {
	PresetID string
	Image    image.Image
	Format   Format
	Quality  int // JPEG only, 1-100
}

// EncodeResult contains the encoded buffer.
type EncodeResult struct {
	Data []byte
}

// =============================================================================
// Export Types
// =============================================================================

// ExportRequest describes one export call.
type ExportRequest struct {
	Content   QuoteContent
	Style     StyleSpec
	PresetIDs []string
	Format    Format
	Quality   int // 0 uses the pipeline default
}

// ExportOutput is the outcome for a single preset.
type ExportOutput struct {
	PresetID string
	Data     []byte
	Asset    *ExportedAsset // nil when Err is set
	Err      error
}

// ExportResult holds outputs in the order the presets were requested.
type ExportResult struct {
	Outputs []ExportOutput
}

// Succeeded returns the outputs without an error.
func (r ExportResult) Succeeded() []ExportOutput {
	var out []ExportOutput
	for _, o := range r.Outputs {
		if o.Err == nil {
			out = append(out, o)
		}
	}
	return out
}

// Failed returns the outputs with an error.
func (r ExportResult) Failed() []ExportOutput {
	var out []ExportOutput
	for _, o := range r.Outputs {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

// ExportedAsset is the metadata record handed to the asset library.
// ID is assigned by the asset store, never by the pipeline.
type ExportedAsset struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	PresetID    string    `json:"presetId"`
	SizeLabel   string    `json:"sizeLabel"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Format      Format    `json:"format"`
	CreatedAt   time.Time `json:"createdAt"`
	PreviewText string    `json:"previewText"`
	Bytes       int64     `json:"bytes"`
}
