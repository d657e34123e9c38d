// Package memstore provides an in-memory asset library.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

// Store keeps exported asset metadata in memory.
type Store struct {
	mu     sync.RWMutex
	assets map[string]pipeline.ExportedAsset
}

// New creates an empty store.
func New() *Store {
	return &Store{
		assets: make(map[string]pipeline.ExportedAsset),
	}
}

// Save assigns a new ID to asset and stores a copy of it.
func (s *Store) Save(ctx context.Context, asset *pipeline.ExportedAsset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	asset.ID = ulid.Make().String()

	s.mu.Lock()
	s.assets[asset.ID] = *asset
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"asset_id": asset.ID,
		"preset":   asset.PresetID,
		"bytes":    asset.Bytes,
	}).Debug("Asset saved")
	return nil
}

// Get returns a copy of the asset with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*pipeline.ExportedAsset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	asset, ok := s.assets[id]
	s.mu.RUnlock()

	if !ok {
		logrus.WithField("asset_id", id).Warn("Asset with specified ID not found")
		return nil, &pipeline.NotFoundError{Kind: "asset", ID: id}
	}
	return &asset, nil
}

// List returns all assets, newest first. Assets created at the same
// instant are ordered by descending ID, so the last saved comes first.
func (s *Store) List(ctx context.Context) ([]*pipeline.ExportedAsset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	result := make([]*pipeline.ExportedAsset, 0, len(s.assets))
	for _, a := range s.assets {
		a := a
		result = append(result, &a)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Delete removes an asset.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assets[id]; !ok {
		return &pipeline.NotFoundError{Kind: "asset", ID: id}
	}
	delete(s.assets, id)

	logrus.WithField("asset_id", id).Debug("Asset deleted")
	return nil
}

// Ensure Store implements ports.AssetStore
var _ ports.AssetStore = (*Store)(nil)
