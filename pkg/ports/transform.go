package ports

import "context"

// TextTransform rewrites quote text before rendering (for example an
// external AI rewrite service). Implementations are opaque to the pipeline.
type TextTransform interface {
	Transform(ctx context.Context, text, style string) (string, error)
}
