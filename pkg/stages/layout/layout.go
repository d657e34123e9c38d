// Package layout implements quote text wrapping and vertical placement.
// Both operations are pure functions with no external dependencies.
package layout

import (
	"fmt"
	"strings"

	"github.com/user/quotegen/pkg/pipeline"
)

// MeasureFunc returns the rendered width of a candidate line in pixels.
type MeasureFunc func(line string) float64

// Wrap splits text into lines using greedy line-fill.
//
// Words are separated by any whitespace. A word is appended to the current
// line only when the measured width of the result is strictly less than
// maxWidth; otherwise it starts a new line. Words are never split, so a
// single word wider than maxWidth occupies its own overflowing line.
func Wrap(text string, measure MeasureFunc, maxWidth float64) ([]string, error) {
	if maxWidth <= 0 {
		return nil, fmt.Errorf("%w: max width %v", pipeline.ErrInvalidDimensions, maxWidth)
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, pipeline.ErrEmptyText
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) < maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)

	return lines, nil
}

// Compute places a block of lines so that it is vertically centered on a
// surface of the given height. StartY is the center of the first line:
// one line sits exactly on the midline, N lines spread symmetrically.
func Compute(lines []string, fontSizePx, lineHeightMultiplier float64, height int) pipeline.LayoutResult {
	lineHeight := fontSizePx * lineHeightMultiplier
	n := len(lines)

	startY := float64(height) / 2
	if n > 1 {
		startY -= float64(n-1) * lineHeight / 2
	}

	return pipeline.LayoutResult{
		Lines:         lines,
		LineHeightPx:  lineHeight,
		BlockHeightPx: lineHeight * float64(n),
		StartY:        startY,
	}
}
