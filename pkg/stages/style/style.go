// Package style resolves a template, brand kit and per-quote overrides
// into a complete StyleSpec.
package style

import (
	"github.com/user/quotegen/pkg/pipeline"
)

// Defaults applied before the template when nothing else sets a value.
const (
	DefaultTextAlign            = pipeline.AlignCenter
	DefaultLineHeightMultiplier = 1.2
)

// Resolve merges the patches with precedence template < brand < adHoc.
// The last writer wins per field. A solid background at a higher level
// replaces a lower-level gradient and vice versa.
//
// The result always has every field the composer reads; if a required
// field is missing or malformed a *pipeline.ConfigError is returned.
func Resolve(template, brand, adHoc pipeline.StylePatch) (pipeline.StyleSpec, error) {
	spec := pipeline.StyleSpec{
		TextAlign:            DefaultTextAlign,
		LineHeightMultiplier: DefaultLineHeightMultiplier,
	}

	for _, p := range []pipeline.StylePatch{template, brand, adHoc} {
		apply(&spec, p)
	}

	if spec.AccentColor == "" {
		spec.AccentColor = spec.TextColor
	}

	if err := Validate(spec); err != nil {
		return pipeline.StyleSpec{}, err
	}
	return spec, nil
}

func apply(spec *pipeline.StyleSpec, p pipeline.StylePatch) {
	if p.BackgroundGradient != nil {
		g := *p.BackgroundGradient
		spec.BackgroundGradient = &g
		if p.BackgroundColor == nil {
			spec.BackgroundColor = ""
		}
	}
	if p.BackgroundColor != nil {
		spec.BackgroundColor = *p.BackgroundColor
		if p.BackgroundGradient == nil {
			spec.BackgroundGradient = nil
		}
	}
	if p.TextColor != nil {
		spec.TextColor = *p.TextColor
	}
	if p.AccentColor != nil {
		spec.AccentColor = *p.AccentColor
	}
	if p.FontFamily != nil {
		spec.FontFamily = *p.FontFamily
	}
	if p.FontSizePx != nil {
		spec.FontSizePx = *p.FontSizePx
	}
	if p.TextAlign != nil {
		spec.TextAlign = *p.TextAlign
	}
	if p.LineHeightMultiplier != nil {
		spec.LineHeightMultiplier = *p.LineHeightMultiplier
	}
	if p.Watermark != nil {
		spec.Watermark = *p.Watermark
	}
	if p.Logo != nil {
		spec.Logo = p.Logo
	}
}

// Merge overlays patches left to right into one patch, with the same
// last-writer-wins and background replacement rules as Resolve.
func Merge(patches ...pipeline.StylePatch) pipeline.StylePatch {
	var out pipeline.StylePatch
	for _, p := range patches {
		if p.BackgroundGradient != nil {
			g := *p.BackgroundGradient
			out.BackgroundGradient = &g
			if p.BackgroundColor == nil {
				out.BackgroundColor = nil
			}
		}
		if p.BackgroundColor != nil {
			out.BackgroundColor = p.BackgroundColor
			if p.BackgroundGradient == nil {
				out.BackgroundGradient = nil
			}
		}
		if p.TextColor != nil {
			out.TextColor = p.TextColor
		}
		if p.AccentColor != nil {
			out.AccentColor = p.AccentColor
		}
		if p.FontFamily != nil {
			out.FontFamily = p.FontFamily
		}
		if p.FontSizePx != nil {
			out.FontSizePx = p.FontSizePx
		}
		if p.TextAlign != nil {
			out.TextAlign = p.TextAlign
		}
		if p.LineHeightMultiplier != nil {
			out.LineHeightMultiplier = p.LineHeightMultiplier
		}
		if p.Watermark != nil {
			out.Watermark = p.Watermark
		}
		if p.Logo != nil {
			out.Logo = p.Logo
		}
	}
	return out
}

// Validate checks that spec can be rendered without further defaults.
func Validate(spec pipeline.StyleSpec) error {
	if spec.BackgroundGradient != nil {
		if err := checkColor("background_gradient.from", spec.BackgroundGradient.From); err != nil {
			return err
		}
		if err := checkColor("background_gradient.to", spec.BackgroundGradient.To); err != nil {
			return err
		}
	} else if err := checkColor("background_color", spec.BackgroundColor); err != nil {
		return err
	}

	if err := checkColor("text_color", spec.TextColor); err != nil {
		return err
	}
	if err := checkColor("accent_color", spec.AccentColor); err != nil {
		return err
	}

	if spec.FontFamily == "" {
		return &pipeline.ConfigError{Field: "font_family", Reason: "missing"}
	}
	if spec.FontSizePx <= 0 {
		return &pipeline.ConfigError{Field: "font_size", Reason: "must be positive"}
	}
	if !spec.TextAlign.Valid() {
		return &pipeline.ConfigError{Field: "text_align", Reason: "must be left, center or right"}
	}
	if spec.LineHeightMultiplier <= 0 {
		return &pipeline.ConfigError{Field: "line_height", Reason: "must be positive"}
	}
	return nil
}

func checkColor(field, value string) error {
	if value == "" {
		return &pipeline.ConfigError{Field: field, Reason: "missing"}
	}
	if _, err := pipeline.ParseColor(value); err != nil {
		return &pipeline.ConfigError{Field: field, Reason: err.Error()}
	}
	return nil
}
