// Package quotegen provides a high-level API for generating quote images.
//
// A Generator resolves a template and brand kit from a style store,
// optionally rewrites the quote text, exports it at every requested size
// preset and records the successful exports in an asset library.
package quotegen

import (
	"context"
	"fmt"

	"github.com/ideamans/go-l10n"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
	"github.com/user/quotegen/pkg/stages/style"
)

// Exporter renders one quote at several size presets.
type Exporter interface {
	ExportMany(ctx context.Context, req pipeline.ExportRequest) (pipeline.ExportResult, error)
}

// Options selects defaults applied to every request.
type Options struct {
	// DefaultTemplate is used when a request names no template.
	DefaultTemplate string

	// DefaultBrandKit is used when a request names no brand kit.
	// Empty means no brand kit.
	DefaultBrandKit string

	// Base sits beneath the template, typically font family and size.
	Base pipeline.StylePatch
}

// Result is the outcome of Generate.
type Result struct {
	Text   string // text actually rendered
	Style  pipeline.StyleSpec
	Export pipeline.ExportResult
	Saved  []*pipeline.ExportedAsset
}

// Generator ties the style store, export pipeline and asset library together.
type Generator struct {
	styles    ports.StyleStore
	assets    ports.AssetStore
	exporter  Exporter
	renderer  ports.Renderer
	fs        ports.FileSystem
	transform ports.TextTransform
	logger    ports.Logger
	options   Options
}

// New creates a new Generator.
func New(
	styles ports.StyleStore,
	assets ports.AssetStore,
	exporter Exporter,
	renderer ports.Renderer,
	fs ports.FileSystem,
	logger ports.Logger,
	options Options,
) *Generator {
	return &Generator{
		styles:   styles,
		assets:   assets,
		exporter: exporter,
		renderer: renderer,
		fs:       fs,
		logger:   logger.WithComponent("quotegen"),
		options:  options,
	}
}

// WithTransform sets the text transform used for Request.RewriteStyle.
func (g *Generator) WithTransform(t ports.TextTransform) *Generator {
	g.transform = t
	return g
}

// ResolveStyle resolves the request's template, brand kit and overrides
// into a complete StyleSpec.
func (g *Generator) ResolveStyle(ctx context.Context, req Request) (pipeline.StyleSpec, error) {
	templateID := req.TemplateID
	if templateID == "" {
		templateID = g.options.DefaultTemplate
	}
	tmpl, err := g.styles.Template(ctx, templateID)
	if err != nil {
		return pipeline.StyleSpec{}, err
	}

	brand, err := g.brandPatch(ctx, req)
	if err != nil {
		return pipeline.StyleSpec{}, err
	}

	return style.Resolve(style.Merge(g.options.Base, tmpl.Style), brand, req.Style)
}

func (g *Generator) brandPatch(ctx context.Context, req Request) (pipeline.StylePatch, error) {
	if req.NoBrandKit {
		return pipeline.StylePatch{}, nil
	}
	kitID := req.BrandKitID
	if kitID == "" {
		kitID = g.options.DefaultBrandKit
	}
	if kitID == "" {
		return pipeline.StylePatch{}, nil
	}

	kit, err := g.styles.BrandKit(ctx, kitID)
	if err != nil {
		return pipeline.StylePatch{}, err
	}

	patch := kit.Patch()
	if kit.LogoPath != "" {
		data, err := g.fs.ReadFile(kit.LogoPath)
		if err != nil {
			return pipeline.StylePatch{}, fmt.Errorf("read brand logo: %w", err)
		}
		logo, err := g.renderer.DecodeImage(data)
		if err != nil {
			return pipeline.StylePatch{}, fmt.Errorf("decode brand logo %s: %w", kit.LogoPath, err)
		}
		patch.Logo = logo
	}
	return patch, nil
}

// Generate rewrites (optionally), resolves the style, exports every
// requested preset and saves the successful exports to the asset library.
//
// A failed preset does not fail the call; inspect Result.Export. Errors
// are returned for invalid requests, unknown ids and cancellation. On
// cancellation the partial result is returned alongside the error.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	text, err := g.rewrite(ctx, req)
	if err != nil {
		return Result{}, err
	}

	spec, err := g.ResolveStyle(ctx, req)
	if err != nil {
		g.logger.Error(l10n.F("Failed to resolve style: %s", err))
		return Result{}, err
	}

	content := req.Content
	content.Text = text

	export, exportErr := g.exporter.ExportMany(ctx, pipeline.ExportRequest{
		Content:   content,
		Style:     spec,
		PresetIDs: req.PresetIDs,
		Format:    req.Format,
		Quality:   req.Quality,
	})

	result := Result{Text: text, Style: spec, Export: export}
	if exportErr != nil && len(export.Outputs) == 0 {
		return result, exportErr
	}

	if g.assets != nil {
		for _, out := range export.Succeeded() {
			if out.Asset == nil {
				continue
			}
			if err := g.assets.Save(ctx, out.Asset); err != nil {
				g.logger.Warn(l10n.F("Failed to save asset %s: %v", out.PresetID, err))
				continue
			}
			result.Saved = append(result.Saved, out.Asset)
		}
		if len(result.Saved) > 0 {
			g.logger.Debug(l10n.F("Saved %d assets to library", len(result.Saved)))
		}
	}

	return result, exportErr
}

func (g *Generator) rewrite(ctx context.Context, req Request) (string, error) {
	if req.RewriteStyle == "" {
		return req.Content.Text, nil
	}
	if g.transform == nil {
		return "", &pipeline.ConfigError{Field: "rewrite_style", Reason: "no text transform configured"}
	}

	text, err := g.transform.Transform(ctx, req.Content.Text, req.RewriteStyle)
	if err != nil {
		return "", fmt.Errorf("rewrite text: %w", err)
	}
	g.logger.Debug(l10n.F("Rewrote quote as %s", req.RewriteStyle))
	return text, nil
}

// Templates returns the template catalogue.
func (g *Generator) Templates(ctx context.Context) ([]pipeline.Template, error) {
	return g.styles.Templates(ctx)
}

// Assets returns the asset library, newest first.
func (g *Generator) Assets(ctx context.Context) ([]*pipeline.ExportedAsset, error) {
	return g.assets.List(ctx)
}

// DeleteAsset removes an asset from the library.
func (g *Generator) DeleteAsset(ctx context.Context, id string) error {
	return g.assets.Delete(ctx, id)
}
