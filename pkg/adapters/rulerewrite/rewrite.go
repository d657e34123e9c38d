// Package rulerewrite provides a local, rule-based text transform.
package rulerewrite

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

// Supported rewrite styles.
const (
	StyleShorter      = "shorter"
	StylePunchier     = "punchier"
	StyleMotivational = "motivational"
)

var (
	fillerWords = regexp.MustCompile(`(?i)\b(very|really|quite|extremely|absolutely)\s+`)
	hedgeWords  = regexp.MustCompile(`(?i)\b(i think|maybe|perhaps|possibly)\s+`)
	spaces      = regexp.MustCompile(`\s+`)
)

// Rewriter applies deterministic rewrite rules.
type Rewriter struct{}

// New creates a Rewriter.
func New() *Rewriter {
	return &Rewriter{}
}

// Styles returns the supported style names.
func Styles() []string {
	return []string{StyleShorter, StylePunchier, StyleMotivational}
}

// Transform rewrites text in the given style. An unknown style returns a
// *pipeline.ConfigError and leaves the text alone.
func (r *Rewriter) Transform(ctx context.Context, text, style string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text = strings.TrimSpace(spaces.ReplaceAllString(text, " "))
	if text == "" {
		return "", pipeline.ErrEmptyText
	}

	switch strings.ToLower(style) {
	case StyleShorter:
		return strings.TrimSpace(fillerWords.ReplaceAllString(text, "")), nil
	case StylePunchier:
		text = strings.TrimSpace(hedgeWords.ReplaceAllString(text, ""))
		text = strings.NewReplacer(".", "!", "?", "!").Replace(text)
		if !strings.HasSuffix(text, "!") {
			text += "!"
		}
		return text, nil
	case StyleMotivational:
		return text + " You've got this!", nil
	default:
		return "", &pipeline.ConfigError{Field: "rewrite_style", Reason: fmt.Sprintf("unknown style %q", style)}
	}
}

// Ensure Rewriter implements ports.TextTransform
var _ ports.TextTransform = (*Rewriter)(nil)
