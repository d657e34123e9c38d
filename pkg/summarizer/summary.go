package summarizer

import (
	"time"

	"github.com/user/quotegen/pkg/pipeline"
)

// Summary contains everything known about one export batch.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Quote content
	Quote QuoteInfo

	// Resolved style
	Style StyleInfo

	// Export settings
	Settings Settings

	// Per-preset outputs in request order
	Outputs []OutputInfo
}

// QuoteInfo describes the rendered text.
type QuoteInfo struct {
	Text   string
	Author string
}

// StyleInfo describes the style the batch was rendered with.
type StyleInfo struct {
	Template   string
	BrandKit   string
	FontFamily string
	FontSizePx float64
	Background string
}

// Settings contains the export configuration.
type Settings struct {
	Format  pipeline.Format
	Quality int // JPEG only
	Workers int
}

// OutputInfo describes one preset's outcome.
type OutputInfo struct {
	PresetID string
	Label    string
	Width    int
	Height   int
	Filename string
	Bytes    int64
	AssetID  string
	Error    string // empty on success
}

// OK reports whether the output succeeded.
func (o OutputInfo) OK() bool {
	return o.Error == ""
}

// Succeeded returns the number of successful outputs.
func (s *Summary) Succeeded() int {
	n := 0
	for _, o := range s.Outputs {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of failed outputs.
func (s *Summary) Failed() int {
	return len(s.Outputs) - s.Succeeded()
}

// TotalBytes returns the combined size of the successful outputs.
func (s *Summary) TotalBytes() int64 {
	var total int64
	for _, o := range s.Outputs {
		total += o.Bytes
	}
	return total
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithGeneratedAt overrides the timestamp.
func (b *Builder) WithGeneratedAt(t time.Time) *Builder {
	b.summary.GeneratedAt = t
	return b
}

// WithQuote sets the quote content.
func (b *Builder) WithQuote(content pipeline.QuoteContent) *Builder {
	b.summary.Quote = QuoteInfo{
		Text:   content.Text,
		Author: content.Author,
	}
	return b
}

// WithStyle records the template, brand kit and resolved style.
func (b *Builder) WithStyle(templateID, brandKitID string, spec pipeline.StyleSpec) *Builder {
	bg := spec.BackgroundColor
	if g := spec.BackgroundGradient; g != nil {
		bg = g.From + " → " + g.To
	}
	b.summary.Style = StyleInfo{
		Template:   templateID,
		BrandKit:   brandKitID,
		FontFamily: spec.FontFamily,
		FontSizePx: spec.FontSizePx,
		Background: bg,
	}
	return b
}

// WithSettings sets export settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithExport records every output of an export result. Size details for
// failed presets come from lookup when it is non-nil.
func (b *Builder) WithExport(result pipeline.ExportResult, lookup func(id string) (pipeline.SizePreset, error)) *Builder {
	for _, out := range result.Outputs {
		info := OutputInfo{PresetID: out.PresetID}

		if a := out.Asset; a != nil {
			info.Label = a.SizeLabel
			info.Width = a.Width
			info.Height = a.Height
			info.Filename = a.Filename
			info.Bytes = a.Bytes
			info.AssetID = a.ID
		} else if lookup != nil {
			if p, err := lookup(out.PresetID); err == nil {
				info.Label = p.DisplayLabel()
				info.Width = p.Width
				info.Height = p.Height
			}
		}

		if out.Err != nil {
			info.Error = out.Err.Error()
			info.Bytes = 0
		}

		b.summary.Outputs = append(b.summary.Outputs, info)
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
