// Package orchestrator drives composition and encoding across size presets.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

// DefaultPlaceholder replaces blank quote text before rendering.
const DefaultPlaceholder = "Enter your quote here..."

// Config contains the export settings.
type Config struct {
	// Workers is the number of presets rendered concurrently.
	// 1 renders strictly in order; 0 uses runtime.NumCPU().
	Workers int

	// Placeholder is rendered when the quote text is blank.
	Placeholder string

	// JPEGQuality is used when a request leaves Quality unset.
	JPEGQuality int

	// PreviewRunes limits ExportedAsset.PreviewText.
	PreviewRunes int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Workers:      1,
		Placeholder:  DefaultPlaceholder,
		JPEGQuality:  90,
		PreviewRunes: 120,
	}
}

// PresetSource resolves size preset ids.
type PresetSource interface {
	Get(id string) (pipeline.SizePreset, error)
}

// Orchestrator renders one quote at every requested preset.
type Orchestrator struct {
	presets        PresetSource
	compositeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	encodeStage    pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	logger         ports.Logger
	config         Config
	now            func() time.Time
}

// New creates a new Orchestrator.
func New(
	presets PresetSource,
	compositeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	logger ports.Logger,
	config Config,
) *Orchestrator {
	def := DefaultConfig()
	if config.Placeholder == "" {
		config.Placeholder = def.Placeholder
	}
	if config.JPEGQuality <= 0 {
		config.JPEGQuality = def.JPEGQuality
	}
	if config.PreviewRunes <= 0 {
		config.PreviewRunes = def.PreviewRunes
	}
	return &Orchestrator{
		presets:        presets,
		compositeStage: compositeStage,
		encodeStage:    encodeStage,
		logger:         logger,
		config:         config,
		now:            time.Now,
	}
}

// WithClock replaces the clock used for asset timestamps and filenames.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// ExportOne exports a request naming exactly one preset. The output's
// error is also returned as the second value.
func (o *Orchestrator) ExportOne(ctx context.Context, req pipeline.ExportRequest) (pipeline.ExportOutput, error) {
	if len(req.PresetIDs) != 1 {
		return pipeline.ExportOutput{}, &pipeline.ConfigError{
			Field:  "presets",
			Reason: fmt.Sprintf("exactly one preset required, got %d", len(req.PresetIDs)),
		}
	}

	result, err := o.ExportMany(ctx, req)
	if err != nil && len(result.Outputs) == 0 {
		return pipeline.ExportOutput{}, err
	}

	out := result.Outputs[0]
	return out, out.Err
}

// ExportMany renders and encodes every preset in req.PresetIDs.
//
// Unknown preset ids fail the whole request before anything is rendered.
// After that each preset is independent: a failure is recorded in its own
// output and the others still complete. Outputs are returned in request
// order. If ctx is cancelled, presets not yet started carry ctx.Err() and
// the partial result is returned together with ctx.Err().
func (o *Orchestrator) ExportMany(ctx context.Context, req pipeline.ExportRequest) (pipeline.ExportResult, error) {
	if len(req.PresetIDs) == 0 {
		return pipeline.ExportResult{}, &pipeline.ConfigError{Field: "presets", Reason: "no presets requested"}
	}

	sizes := make([]pipeline.SizePreset, len(req.PresetIDs))
	for i, id := range req.PresetIDs {
		p, err := o.presets.Get(id)
		if err != nil {
			o.logger.Error(l10n.F("Unknown size preset: %s", id))
			return pipeline.ExportResult{}, err
		}
		sizes[i] = p
	}

	if req.Format == "" {
		req.Format = pipeline.FormatPNG
	}
	if req.Quality <= 0 {
		req.Quality = o.config.JPEGQuality
	}
	if strings.TrimSpace(req.Content.Text) == "" {
		o.logger.Warn(l10n.T("Quote text is empty, using placeholder"))
		req.Content.Text = o.config.Placeholder
	}

	createdAt := o.now()
	workers := o.workerCount(len(sizes))

	o.logger.Info(l10n.F("Exporting %d presets as %s with %d workers", len(sizes), req.Format, workers))

	outputs := o.executeParallel(ctx, req, sizes, createdAt, workers)
	result := pipeline.ExportResult{Outputs: outputs}

	o.logger.Info(l10n.F("Export finished: %d succeeded, %d failed", len(result.Succeeded()), len(result.Failed())))

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func (o *Orchestrator) workerCount(jobs int) int {
	n := o.config.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > jobs {
		n = jobs
	}
	return n
}

// indexedOutput holds an output with its request index for sorting.
type indexedOutput struct {
	index  int
	output pipeline.ExportOutput
}

// executeParallel exports presets using a worker pool.
func (o *Orchestrator) executeParallel(
	ctx context.Context,
	req pipeline.ExportRequest,
	sizes []pipeline.SizePreset,
	createdAt time.Time,
	numWorkers int,
) []pipeline.ExportOutput {
	jobs := make(chan int, len(sizes))
	results := make(chan indexedOutput, len(sizes))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				var out pipeline.ExportOutput
				if err := ctx.Err(); err != nil {
					out = pipeline.ExportOutput{PresetID: sizes[idx].ID, Err: err}
				} else {
					out = o.exportPreset(ctx, req, sizes[idx], createdAt)
				}
				results <- indexedOutput{index: idx, output: out}
			}
		}()
	}

	for i := range sizes {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]indexedOutput, 0, len(sizes))
	for r := range results {
		collected = append(collected, r)
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	outputs := make([]pipeline.ExportOutput, len(collected))
	for i, r := range collected {
		outputs[i] = r.output
	}
	return outputs
}

// exportPreset composes and encodes a single preset on its own surface.
func (o *Orchestrator) exportPreset(ctx context.Context, req pipeline.ExportRequest, size pipeline.SizePreset, createdAt time.Time) pipeline.ExportOutput {
	out := pipeline.ExportOutput{PresetID: size.ID}

	composed, err := o.compositeStage.Execute(ctx, pipeline.ComposeInput{
		PresetID: size.ID,
		Width:    size.Width,
		Height:   size.Height,
		Content:  req.Content,
		Style:    req.Style,
	})
	if err != nil {
		out.Err = o.presetError(size.ID, req.Format, err)
		o.logger.Error(l10n.F("Failed to export %s: %s", size.ID, out.Err))
		return out
	}

	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		PresetID: size.ID,
		Image:    composed.Image,
		Format:   req.Format,
		Quality:  req.Quality,
	})
	if err != nil {
		out.Err = o.presetError(size.ID, req.Format, err)
		o.logger.Error(l10n.F("Failed to export %s: %s", size.ID, out.Err))
		return out
	}

	out.Data = encoded.Data
	out.Asset = &pipeline.ExportedAsset{
		Filename:    Filename(size.ID, createdAt, req.Format),
		PresetID:    size.ID,
		SizeLabel:   size.DisplayLabel(),
		Width:       size.Width,
		Height:      size.Height,
		Format:      req.Format,
		CreatedAt:   createdAt,
		PreviewText: Preview(req.Content.Text, o.config.PreviewRunes),
		Bytes:       int64(len(encoded.Data)),
	}

	o.logger.Info(l10n.F("Exported %s (%dx%d, %d bytes)", size.ID, size.Width, size.Height, len(encoded.Data)))
	return out
}

// presetError wraps a per-preset failure as an EncodeError, leaving
// cancellation errors as they are.
func (o *Orchestrator) presetError(presetID string, format pipeline.Format, err error) error {
	var encErr *pipeline.EncodeError
	if errors.As(err, &encErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &pipeline.EncodeError{PresetID: presetID, Format: format, Err: err}
}

// Filename returns "quote-<preset>-<unixMillis>.<ext>".
func Filename(presetID string, at time.Time, format pipeline.Format) string {
	return fmt.Sprintf("quote-%s-%d.%s", presetID, at.UnixMilli(), format.Extension())
}

// Preview collapses whitespace and truncates text to max runes.
func Preview(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
