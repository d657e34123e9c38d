// Package presets holds the named output sizes an export can target.
package presets

import (
	"fmt"

	"github.com/user/quotegen/pkg/pipeline"
)

// Defaults returns the built-in size table.
func Defaults() []pipeline.SizePreset {
	return []pipeline.SizePreset{
		{ID: "square", Width: 1080, Height: 1080, Label: "Instagram Post (1080x1080)"},
		{ID: "landscape", Width: 1200, Height: 675, Label: "Twitter/X Post (1200x675)"},
		{ID: "facebook", Width: 1200, Height: 630, Label: "Facebook Post (1200x630)"},
		{ID: "x", Width: 1600, Height: 900, Label: "X Wide (1600x900)"},
		{ID: "tall", Width: 1080, Height: 1920, Label: "Story (1080x1920)"},
	}
}

// Registry is an immutable, ordered set of size presets.
type Registry struct {
	order []pipeline.SizePreset
	byID  map[string]int
}

// New builds a registry from list, keeping its order.
// Empty and duplicate ids are rejected with a *pipeline.ConfigError.
func New(list []pipeline.SizePreset) (*Registry, error) {
	r := &Registry{
		order: make([]pipeline.SizePreset, 0, len(list)),
		byID:  make(map[string]int, len(list)),
	}

	for _, p := range list {
		if p.ID == "" {
			return nil, &pipeline.ConfigError{Field: "presets", Reason: "preset id is empty"}
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, &pipeline.ConfigError{Field: "presets", Reason: fmt.Sprintf("duplicate preset id %q", p.ID)}
		}
		r.byID[p.ID] = len(r.order)
		r.order = append(r.order, p)
	}

	return r, nil
}

// MustDefault returns a registry over Defaults.
func MustDefault() *Registry {
	r, err := New(Defaults())
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the preset with the given id or a *pipeline.NotFoundError.
func (r *Registry) Get(id string) (pipeline.SizePreset, error) {
	i, ok := r.byID[id]
	if !ok {
		return pipeline.SizePreset{}, &pipeline.NotFoundError{Kind: "preset", ID: id}
	}
	return r.order[i], nil
}

// All returns every preset in registration order.
func (r *Registry) All() []pipeline.SizePreset {
	out := make([]pipeline.SizePreset, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup resolves ids in order. The first unknown id aborts the lookup.
func (r *Registry) Lookup(ids []string) ([]pipeline.SizePreset, error) {
	out := make([]pipeline.SizePreset, 0, len(ids))
	for _, id := range ids {
		p, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Validate returns warnings for presets that cannot be rendered.
func (r *Registry) Validate() []string {
	var warnings []string
	for _, p := range r.order {
		if p.Width <= 0 || p.Height <= 0 {
			warnings = append(warnings, fmt.Sprintf("preset %q has invalid dimensions %dx%d", p.ID, p.Width, p.Height))
		}
	}
	return warnings
}
