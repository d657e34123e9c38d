// Package sqlitestore provides a SQLite-backed asset library.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS assets (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	preset_id TEXT NOT NULL,
	size_label TEXT,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL,
	format TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	preview_text TEXT,
	bytes INTEGER NOT NULL
);`

const selectColumns = "id, filename, preset_id, size_label, width, height, format, created_at, preview_text, bytes"

// Store persists asset metadata in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dataSourceName and ensures the
// schema exists. Use ":memory:" for a throwaway database.
func Open(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create assets table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save assigns a new ID to asset and inserts it.
func (s *Store) Save(ctx context.Context, asset *pipeline.ExportedAsset) error {
	id := ulid.Make().String()
	log := logrus.WithFields(logrus.Fields{
		"asset_id": id,
		"preset":   asset.PresetID,
		"bytes":    asset.Bytes,
	})

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO assets ("+selectColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, asset.Filename, asset.PresetID, asset.SizeLabel, asset.Width, asset.Height,
		string(asset.Format), asset.CreatedAt.UnixMilli(), asset.PreviewText, asset.Bytes)
	if err != nil {
		log.WithError(err).Error("Failed to save asset")
		return err
	}

	asset.ID = id
	log.Debug("Asset saved")
	return nil
}

// Get returns the asset with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*pipeline.ExportedAsset, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM assets WHERE id = ?", id)
	asset, err := scanAsset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logrus.WithField("asset_id", id).Warn("Asset with specified ID not found")
			return nil, &pipeline.NotFoundError{Kind: "asset", ID: id}
		}
		logrus.WithField("asset_id", id).WithError(err).Error("Failed to retrieve asset")
		return nil, err
	}
	return asset, nil
}

// List returns all assets, newest first.
func (s *Store) List(ctx context.Context) ([]*pipeline.ExportedAsset, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+selectColumns+" FROM assets ORDER BY created_at DESC, id DESC")
	if err != nil {
		logrus.WithError(err).Error("Failed to list assets")
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			logrus.WithError(cerr).Warn("Failed to close asset rows")
		}
	}()

	var assets []*pipeline.ExportedAsset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// Delete removes the asset with the given ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		logrus.WithField("asset_id", id).WithError(err).Error("Failed to delete asset")
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &pipeline.NotFoundError{Kind: "asset", ID: id}
	}

	logrus.WithField("asset_id", id).Debug("Asset deleted")
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(row scanner) (*pipeline.ExportedAsset, error) {
	var (
		a         pipeline.ExportedAsset
		sizeLabel sql.NullString
		preview   sql.NullString
		format    string
		createdAt int64
	)
	err := row.Scan(&a.ID, &a.Filename, &a.PresetID, &sizeLabel, &a.Width, &a.Height,
		&format, &createdAt, &preview, &a.Bytes)
	if err != nil {
		return nil, err
	}
	a.SizeLabel = sizeLabel.String
	a.PreviewText = preview.String
	a.Format = pipeline.Format(format)
	a.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &a, nil
}

// Ensure Store implements ports.AssetStore
var _ ports.AssetStore = (*Store)(nil)
