package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/quotegen/pkg/adapters/filesink"
	"github.com/user/quotegen/pkg/adapters/nullsink"
	"github.com/user/quotegen/pkg/adapters/rulerewrite"
	"github.com/user/quotegen/pkg/orchestrator"
	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
	"github.com/user/quotegen/pkg/quotegen"
	"github.com/user/quotegen/pkg/stages/composite"
	"github.com/user/quotegen/pkg/stages/encode"
	"github.com/user/quotegen/pkg/summarizer"
)

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     l10n.T("Render a quote at one or more size presets"),
		ArgsUsage: l10n.T("[quote text]"),
		Flags: []cli.Flag{
			// Content
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: l10n.T("Quote text (or pass it as arguments)"), Category: l10n.T("Content")},
			&cli.StringFlag{Name: "author", Aliases: []string{"a"}, Usage: l10n.T("Author shown under the quote"), Category: l10n.T("Content")},
			&cli.StringFlag{Name: "rewrite", Usage: l10n.T("Rewrite the quote first (shorter, punchier, motivational)"), Category: l10n.T("Content")},

			// Style
			&cli.StringFlag{Name: "template", Aliases: []string{"T"}, Usage: l10n.T("Template id"), EnvVars: []string{"QUOTEGEN_TEMPLATE"}, Category: l10n.T("Style")},
			&cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: l10n.T("Brand kit id"), EnvVars: []string{"QUOTEGEN_BRAND_KIT"}, Category: l10n.T("Style")},
			&cli.BoolFlag{Name: "no-brand", Usage: l10n.T("Ignore the default brand kit"), Category: l10n.T("Style")},
			&cli.StringFlag{Name: "background", Usage: l10n.T("Solid background color (hex, e.g., #1e3a8a)"), Category: l10n.T("Style")},
			&cli.StringFlag{Name: "gradient", Usage: l10n.T("Gradient background: from,to[,angle]"), Category: l10n.T("Style")},
			&cli.StringFlag{Name: "text-color", Usage: l10n.T("Quote text color (hex)"), Category: l10n.T("Style")},
			&cli.StringFlag{Name: "accent-color", Usage: l10n.T("Author text color (hex)"), Category: l10n.T("Style")},
			&cli.StringFlag{Name: "font", Usage: l10n.T("Font family"), Category: l10n.T("Style")},
			&cli.Float64Flag{Name: "font-size", Usage: l10n.T("Font size in pixels"), Category: l10n.T("Style")},
			&cli.StringFlag{Name: "align", Usage: l10n.T("Text alignment (left, center, right)"), Category: l10n.T("Style")},
			&cli.Float64Flag{Name: "line-height", Usage: l10n.T("Line height multiplier"), Category: l10n.T("Style")},
			&cli.StringFlag{Name: "watermark", Usage: l10n.T("Watermark text"), Category: l10n.T("Style")},

			// Output
			&cli.StringSliceFlag{Name: "preset", Aliases: []string{"p"}, Usage: l10n.T("Size preset id (repeatable)"), Category: l10n.T("Output")},
			&cli.BoolFlag{Name: "all-presets", Usage: l10n.T("Export every size preset"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: l10n.T("Image format (png, jpeg)"), Category: l10n.T("Output")},
			&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("JPEG quality (1-100)"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output directory"), EnvVars: []string{"QUOTEGEN_OUTPUT_DIR"}, Category: l10n.T("Output")},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: l10n.T("Presets rendered concurrently (0 = CPU count)"), Value: -1, Category: l10n.T("Output")},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Output export summary to file (Markdown format)"), Category: l10n.T("Output")},

			// Debug
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output"), Category: l10n.T("Debug")},
			&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},
		},
		Action: runRender,
	}
}

func runRender(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	cfg := e.cfg
	log := e.log

	if c.IsSet("workers") && c.Int("workers") >= 0 {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("output") {
		cfg.OutputDir = c.String("output")
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}

	// Debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := e.fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, e.fs, e.renderer)
	} else {
		sink = nullsink.New()
	}

	// Stages
	compositeStage := composite.NewStage(e.renderer, composite.NewComposer(cfg.ToComposerOptions()), sink, log)
	encodeStage := encode.NewStage(e.renderer, log)
	orch := orchestrator.New(e.presets, compositeStage, encodeStage, log, cfg.ToOrchestratorConfig())

	gen := quotegen.New(e.styles, e.assets, orch, e.renderer, e.fs, log, quotegen.Options{
		DefaultTemplate: cfg.DefaultTemplate,
		DefaultBrandKit: cfg.DefaultBrandKit,
		Base:            cfg.BasePatch(),
	}).WithTransform(rulerewrite.New())

	req, err := buildRequest(c, cfg.Format, e.presetIDs(c))
	if err != nil {
		return err
	}

	result, err := gen.Generate(c.Context, req)
	if err != nil && len(result.Export.Outputs) == 0 {
		return err
	}

	if mkErr := e.fs.MkdirAll(cfg.OutputDir); mkErr != nil {
		return fmt.Errorf("create output directory: %w", mkErr)
	}
	for _, out := range result.Export.Succeeded() {
		path := filepath.Join(cfg.OutputDir, out.Asset.Filename)
		if werr := e.fs.WriteFile(path, out.Data); werr != nil {
			log.Error(l10n.F("Failed to write %s: %s", path, werr))
			continue
		}
		log.Info(l10n.F("Output saved to %s", path))
	}

	if path := c.String("summary"); path != "" {
		summary := summarizer.NewBuilder().
			WithQuote(pipeline.QuoteContent{Text: result.Text, Author: req.Content.Author}).
			WithStyle(firstNonEmpty(req.TemplateID, cfg.DefaultTemplate), brandKitLabel(req, cfg.DefaultBrandKit), result.Style).
			WithSettings(summarizer.Settings{Format: req.Format, Quality: effectiveQuality(req.Quality, cfg.JPEGQuality), Workers: cfg.Workers}).
			WithExport(result.Export, e.presets.Get).
			Build()
		formatter := summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		)
		if werr := summarizer.NewWriter(formatter, e.fs).Write(path, summary); werr != nil {
			log.Error(l10n.F("Failed to write summary: %s", werr))
		} else {
			log.Info(l10n.F("Summary saved to %s", path))
		}
	}

	if err != nil {
		return err
	}
	if failed := len(result.Export.Failed()); failed > 0 {
		return cli.Exit(l10n.F("%d of %d presets failed", failed, len(result.Export.Outputs)), 2)
	}
	return nil
}

// presetIDs returns the requested presets, every preset for
// --all-presets, or the first registered preset.
func (e *env) presetIDs(c *cli.Context) []string {
	if c.Bool("all-presets") {
		var ids []string
		for _, p := range e.presets.All() {
			ids = append(ids, p.ID)
		}
		return ids
	}
	if ids := c.StringSlice("preset"); len(ids) > 0 {
		return ids
	}
	return []string{e.presets.All()[0].ID}
}

func buildRequest(c *cli.Context, defaultFormat string, presetIDs []string) (quotegen.Request, error) {
	text := c.String("text")
	if text == "" {
		text = strings.Join(c.Args().Slice(), " ")
	}

	formatName := defaultFormat
	if c.IsSet("format") {
		formatName = c.String("format")
	}
	format, err := pipeline.ParseFormat(formatName)
	if err != nil {
		return quotegen.Request{}, err
	}

	b := quotegen.NewRequestBuilder(text).
		WithAuthor(c.String("author")).
		WithTemplate(c.String("template")).
		WithPresets(presetIDs...).
		WithFormat(format).
		WithQuality(c.Int("quality")).
		WithRewrite(c.String("rewrite"))

	if c.Bool("no-brand") {
		b.WithoutBrandKit()
	} else if id := c.String("brand"); id != "" {
		b.WithBrandKit(id)
	}

	if v := c.String("gradient"); v != "" {
		from, to, angle, err := parseGradient(v)
		if err != nil {
			return quotegen.Request{}, err
		}
		b.WithGradient(from, to, angle)
	}
	if c.IsSet("background") {
		b.WithBackgroundColor(c.String("background"))
	}
	if c.IsSet("text-color") {
		b.WithTextColor(c.String("text-color"))
	}
	if c.IsSet("accent-color") {
		b.WithAccentColor(c.String("accent-color"))
	}
	if c.IsSet("font") {
		b.WithFontFamily(c.String("font"))
	}
	if c.IsSet("font-size") {
		b.WithFontSize(c.Float64("font-size"))
	}
	if c.IsSet("align") {
		b.WithAlign(pipeline.TextAlign(strings.ToLower(c.String("align"))))
	}
	if c.IsSet("line-height") {
		b.WithLineHeight(c.Float64("line-height"))
	}
	if c.IsSet("watermark") {
		b.WithWatermark(c.String("watermark"))
	}

	return b.Build(), nil
}

// parseGradient parses "from,to[,angle]". The angle defaults to 135.
func parseGradient(v string) (string, string, float64, error) {
	parts := strings.Split(v, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return "", "", 0, &pipeline.ConfigError{Field: "gradient", Reason: "expected from,to[,angle]"}
	}
	angle := 135.0
	if len(parts) == 3 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return "", "", 0, &pipeline.ConfigError{Field: "gradient", Reason: "invalid angle " + parts[2]}
		}
		angle = a
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), angle, nil
}

func effectiveQuality(requested, fallback int) int {
	if requested > 0 {
		return encode.NormalizeQuality(requested)
	}
	return fallback
}

func brandKitLabel(req quotegen.Request, fallback string) string {
	if req.NoBrandKit {
		return ""
	}
	return firstNonEmpty(req.BrandKitID, fallback)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
