package quotegen

import (
	"github.com/user/quotegen/pkg/pipeline"
)

// Request describes one quote to generate.
type Request struct {
	Content pipeline.QuoteContent

	// Style selection
	TemplateID string
	BrandKitID string
	NoBrandKit bool                // ignore the default brand kit
	Style      pipeline.StylePatch // per-quote overrides, highest precedence

	// RewriteStyle passes the text through the text transform first.
	RewriteStyle string

	// Export
	PresetIDs []string
	Format    pipeline.Format
	Quality   int
}

// RequestBuilder provides a fluent interface for building Request.
type RequestBuilder struct {
	req Request
}

// NewRequestBuilder creates a RequestBuilder for the given quote text.
func NewRequestBuilder(text string) *RequestBuilder {
	return &RequestBuilder{
		req: Request{
			Content: pipeline.QuoteContent{Text: text},
			Format:  pipeline.FormatPNG,
		},
	}
}

// Build returns the final Request.
func (b *RequestBuilder) Build() Request {
	req := b.req
	req.PresetIDs = append([]string(nil), b.req.PresetIDs...)
	return req
}

// WithAuthor sets the attribution line.
func (b *RequestBuilder) WithAuthor(author string) *RequestBuilder {
	b.req.Content.Author = author
	return b
}

// WithTemplate selects a template by id.
func (b *RequestBuilder) WithTemplate(id string) *RequestBuilder {
	b.req.TemplateID = id
	return b
}

// WithBrandKit selects a brand kit by id.
func (b *RequestBuilder) WithBrandKit(id string) *RequestBuilder {
	b.req.BrandKitID = id
	b.req.NoBrandKit = false
	return b
}

// WithoutBrandKit disables brand kits, including the default one.
func (b *RequestBuilder) WithoutBrandKit() *RequestBuilder {
	b.req.BrandKitID = ""
	b.req.NoBrandKit = true
	return b
}

// WithPresets sets the size presets to export, in output order.
func (b *RequestBuilder) WithPresets(ids ...string) *RequestBuilder {
	b.req.PresetIDs = append(b.req.PresetIDs, ids...)
	return b
}

// WithFormat sets the output format.
func (b *RequestBuilder) WithFormat(format pipeline.Format) *RequestBuilder {
	b.req.Format = format
	return b
}

// WithQuality sets the JPEG quality (1-100).
func (b *RequestBuilder) WithQuality(quality int) *RequestBuilder {
	b.req.Quality = quality
	return b
}

// WithRewrite rewrites the text in the given style before rendering.
func (b *RequestBuilder) WithRewrite(style string) *RequestBuilder {
	b.req.RewriteStyle = style
	return b
}

// WithBackgroundColor overrides the background with a solid color.
func (b *RequestBuilder) WithBackgroundColor(hex string) *RequestBuilder {
	b.req.Style.BackgroundColor = &hex
	b.req.Style.BackgroundGradient = nil
	return b
}

// WithGradient overrides the background with a linear gradient.
func (b *RequestBuilder) WithGradient(from, to string, angleDeg float64) *RequestBuilder {
	b.req.Style.BackgroundGradient = &pipeline.Gradient{From: from, To: to, AngleDeg: angleDeg}
	b.req.Style.BackgroundColor = nil
	return b
}

// WithTextColor overrides the quote text color.
func (b *RequestBuilder) WithTextColor(hex string) *RequestBuilder {
	b.req.Style.TextColor = &hex
	return b
}

// WithAccentColor overrides the author line color.
func (b *RequestBuilder) WithAccentColor(hex string) *RequestBuilder {
	b.req.Style.AccentColor = &hex
	return b
}

// WithFontFamily overrides the font family.
func (b *RequestBuilder) WithFontFamily(family string) *RequestBuilder {
	b.req.Style.FontFamily = &family
	return b
}

// WithFontSize overrides the font size in pixels.
func (b *RequestBuilder) WithFontSize(px float64) *RequestBuilder {
	b.req.Style.FontSizePx = &px
	return b
}

// WithAlign overrides the text alignment.
func (b *RequestBuilder) WithAlign(align pipeline.TextAlign) *RequestBuilder {
	b.req.Style.TextAlign = &align
	return b
}

// WithLineHeight overrides the line height multiplier.
func (b *RequestBuilder) WithLineHeight(multiplier float64) *RequestBuilder {
	b.req.Style.LineHeightMultiplier = &multiplier
	return b
}

// WithWatermark enables a watermark with the given text.
func (b *RequestBuilder) WithWatermark(text string) *RequestBuilder {
	b.req.Style.Watermark = &pipeline.Watermark{Enabled: true, Text: text}
	return b
}
