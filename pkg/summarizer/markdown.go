package summarizer

import (
	"fmt"
	"strings"

	"github.com/user/quotegen/pkg/pipeline"
)

// MarkdownFormatter renders a Summary as a markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used for headings and labels.
func WithTranslator(t func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion adds the generator version to the footer.
func WithVersion(v string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = v
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t("Export Summary"))
	fmt.Fprintf(&sb, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	// Quote
	fmt.Fprintf(&sb, "## %s\n\n", t("Quote"))
	sb.WriteString(tableHeader(t("Item"), t("Value")))
	sb.WriteString(tableRow(t("Text"), escapeCell(s.Quote.Text)))
	sb.WriteString(tableRow(t("Author"), orDash(escapeCell(s.Quote.Author))))
	sb.WriteString("\n")

	// Style
	fmt.Fprintf(&sb, "## %s\n\n", t("Style"))
	sb.WriteString(tableHeader(t("Item"), t("Value")))
	sb.WriteString(tableRow(t("Template"), orDash(s.Style.Template)))
	sb.WriteString(tableRow(t("Brand Kit"), orDash(s.Style.BrandKit)))
	if s.Style.FontFamily != "" {
		sb.WriteString(tableRow(t("Font"), fmt.Sprintf("%s %gpx", s.Style.FontFamily, s.Style.FontSizePx)))
	}
	sb.WriteString(tableRow(t("Background"), orDash(s.Style.Background)))
	sb.WriteString("\n")

	// Settings
	fmt.Fprintf(&sb, "## %s\n\n", t("Settings"))
	sb.WriteString(tableHeader(t("Item"), t("Value")))
	sb.WriteString(tableRow(t("Format"), orDash(string(s.Settings.Format))))
	if s.Settings.Format == pipeline.FormatJPEG {
		sb.WriteString(tableRow(t("Quality"), fmt.Sprintf("%d", s.Settings.Quality)))
	}
	if s.Settings.Workers > 0 {
		sb.WriteString(tableRow(t("Workers"), fmt.Sprintf("%d", s.Settings.Workers)))
	}
	sb.WriteString("\n")

	// Outputs
	fmt.Fprintf(&sb, "## %s\n\n", t("Outputs"))
	fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", t("Preset"), t("Size"), t("File"), t("File Size"), t("Status"))
	sb.WriteString("|---|---|---|---|---|\n")
	for _, o := range s.Outputs {
		size := "-"
		if o.Width > 0 || o.Height > 0 {
			size = fmt.Sprintf("%dx%d", o.Width, o.Height)
		}
		status := t("OK")
		bytes := formatBytes(o.Bytes)
		if !o.OK() {
			status = fmt.Sprintf("%s: %s", t("Failed"), escapeCell(o.Error))
			bytes = "-"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", o.PresetID, size, orDash(o.Filename), bytes, status)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s: %d, %s: %d, %s: %s\n",
		t("Succeeded"), s.Succeeded(), t("Failed"), s.Failed(), t("Total Size"), formatBytes(s.TotalBytes()))

	if f.version != "" {
		fmt.Fprintf(&sb, "\n---\n%s quotegen %s\n", t("Generated by"), f.version)
	}

	return sb.String()
}

func tableHeader(a, b string) string {
	return fmt.Sprintf("| %s | %s |\n|---|---|\n", a, b)
}

func tableRow(a, b string) string {
	return fmt.Sprintf("| %s | %s |\n", a, b)
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.Join(strings.Fields(s), " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatBytes formats a byte count with binary units.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(b)/float64(div), "KMG"[exp])
}
