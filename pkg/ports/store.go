package ports

import (
	"context"

	"github.com/user/quotegen/pkg/pipeline"
)

// StyleStore supplies templates and brand kits. It is read-only from the
// pipeline's point of view.
type StyleStore interface {
	// Template returns a template by id or a *pipeline.NotFoundError.
	Template(ctx context.Context, id string) (pipeline.Template, error)

	// Templates returns all templates in catalogue order.
	Templates(ctx context.Context) ([]pipeline.Template, error)

	// BrandKit returns a brand kit by id or a *pipeline.NotFoundError.
	BrandKit(ctx context.Context, id string) (pipeline.BrandKit, error)
}

// AssetStore persists exported asset metadata for the asset library.
type AssetStore interface {
	// Save stores a new asset and assigns its ID.
	Save(ctx context.Context, asset *pipeline.ExportedAsset) error

	// Get returns a single asset or a *pipeline.NotFoundError.
	Get(ctx context.Context, id string) (*pipeline.ExportedAsset, error)

	// List returns all assets, newest first.
	List(ctx context.Context) ([]*pipeline.ExportedAsset, error)

	// Delete removes an asset or returns a *pipeline.NotFoundError.
	Delete(ctx context.Context, id string) error
}
