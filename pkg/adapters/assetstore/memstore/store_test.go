package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/user/quotegen/pkg/pipeline"
)

func newAsset(preset string, createdAt time.Time) *pipeline.ExportedAsset {
	return &pipeline.ExportedAsset{
		Filename:  "quote-" + preset + ".png",
		PresetID:  preset,
		Width:     1080,
		Height:    1080,
		Format:    pipeline.FormatPNG,
		CreatedAt: createdAt,
		Bytes:     1234,
	}
}

func TestStore_SaveGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	asset := newAsset("square", time.Now())
	if err := s.Save(ctx, asset); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if asset.ID == "" {
		t.Fatal("expected ID to be assigned")
	}

	got, err := s.Get(ctx, asset.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.PresetID != "square" || got.Bytes != 1234 {
		t.Errorf("unexpected asset: %+v", got)
	}

	got.Filename = "changed"
	again, _ := s.Get(ctx, asset.ID)
	if again.Filename == "changed" {
		t.Error("expected Get to return a copy")
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	old := newAsset("square", base)
	recent := newAsset("tall", base.Add(time.Hour))
	sameA := newAsset("landscape", base.Add(30*time.Minute))
	sameB := newAsset("facebook", base.Add(30*time.Minute))
	for _, a := range []*pipeline.ExportedAsset{old, recent, sameA, sameB} {
		if err := s.Save(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	expected := []string{"tall", "facebook", "landscape", "square"}
	if len(list) != len(expected) {
		t.Fatalf("expected %d assets, got %d", len(expected), len(list))
	}
	for i, preset := range expected {
		if list[i].PresetID != preset {
			t.Errorf("position %d: expected %s, got %s", i, preset, list[i].PresetID)
		}
	}
}

func TestStore_Delete(t *testing.T) {
	s := New()
	ctx := context.Background()

	asset := newAsset("square", time.Now())
	_ = s.Save(ctx, asset)

	if err := s.Delete(ctx, asset.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, asset.ID); !pipeline.IsNotFound(err) {
		t.Errorf("expected NotFoundError after delete, got %v", err)
	}
	if err := s.Delete(ctx, asset.ID); !pipeline.IsNotFound(err) {
		t.Errorf("expected NotFoundError on second delete, got %v", err)
	}
}

func TestStore_CancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Save(ctx, newAsset("square", time.Now())); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
