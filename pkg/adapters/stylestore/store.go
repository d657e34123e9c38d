// Package stylestore provides an in-memory catalogue of templates and brand kits.
package stylestore

import (
	"context"
	"strings"
	"sync"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

// Builtin returns the global template catalogue.
func Builtin() []pipeline.Template {
	return []pipeline.Template{
		gradientTemplate("modern", "Modern", "#667eea", "#764ba2", "#ffffff"),
		solidTemplate("minimal", "Minimal", "#ffffff", "#000000"),
		gradientTemplate("dark", "Dark", "#232526", "#414345", "#ffffff"),
		gradientTemplate("vibrant", "Vibrant", "#f093fb", "#f5576c", "#ffffff"),
		gradientTemplate("ocean", "Ocean", "#2193b0", "#6dd5ed", "#ffffff"),
		gradientTemplate("sunset", "Sunset", "#ee9617", "#fe5858", "#ffffff"),
		withFont(solidTemplate("motivational", "Motivational", "#1e3a8a", "#ffffff"), "Arial", 0),
		withAlign(withFont(solidTemplate("success", "Success", "#065f46", "#ecfccb"), "Georgia", 0), pipeline.AlignLeft),
		withFont(solidTemplate("wisdom", "Wisdom", "#0f766e", "#a7f3d0"), "", 30),
	}
}

func gradientTemplate(id, name, from, to, text string) pipeline.Template {
	return pipeline.Template{
		ID:    id,
		Name:  name,
		Scope: "global",
		Style: pipeline.StylePatch{
			BackgroundGradient: &pipeline.Gradient{From: from, To: to, AngleDeg: 135},
			TextColor:          &text,
		},
	}
}

func solidTemplate(id, name, bg, text string) pipeline.Template {
	return pipeline.Template{
		ID:    id,
		Name:  name,
		Scope: "global",
		Style: pipeline.StylePatch{
			BackgroundColor: &bg,
			TextColor:       &text,
		},
	}
}

func withFont(t pipeline.Template, family string, size float64) pipeline.Template {
	if family != "" {
		t.Style.FontFamily = &family
	}
	if size > 0 {
		t.Style.FontSizePx = &size
	}
	return t
}

func withAlign(t pipeline.Template, align pipeline.TextAlign) pipeline.Template {
	t.Style.TextAlign = &align
	return t
}

// Store holds templates in catalogue order and brand kits by id.
type Store struct {
	mu        sync.RWMutex
	order     []string
	templates map[string]pipeline.Template
	kits      map[string]pipeline.BrandKit
}

// New creates a store seeded with the builtin catalogue. Extra templates
// are appended, or replace a builtin with the same id. Templates without
// a scope are user templates.
func New(extra []pipeline.Template, kits []pipeline.BrandKit) (*Store, error) {
	s := &Store{
		templates: make(map[string]pipeline.Template),
		kits:      make(map[string]pipeline.BrandKit),
	}

	for _, t := range Builtin() {
		s.put(t)
	}
	for _, t := range extra {
		if strings.TrimSpace(t.ID) == "" {
			return nil, &pipeline.ConfigError{Field: "templates", Reason: "template id is empty"}
		}
		if t.Scope == "" {
			t.Scope = "user"
		}
		s.put(t)
	}

	for _, k := range kits {
		if strings.TrimSpace(k.ID) == "" {
			return nil, &pipeline.ConfigError{Field: "brand_kits", Reason: "brand kit id is empty"}
		}
		if _, dup := s.kits[k.ID]; dup {
			return nil, &pipeline.ConfigError{Field: "brand_kits", Reason: "duplicate brand kit id " + k.ID}
		}
		s.kits[k.ID] = k
	}

	return s, nil
}

func (s *Store) put(t pipeline.Template) {
	if _, ok := s.templates[t.ID]; !ok {
		s.order = append(s.order, t.ID)
	}
	s.templates[t.ID] = t
}

// Template returns a template by id.
func (s *Store) Template(ctx context.Context, id string) (pipeline.Template, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.Template{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[id]
	if !ok {
		return pipeline.Template{}, &pipeline.NotFoundError{Kind: "template", ID: id}
	}
	return t, nil
}

// Templates returns all templates in catalogue order.
func (s *Store) Templates(ctx context.Context) ([]pipeline.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]pipeline.Template, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.templates[id])
	}
	return result, nil
}

// BrandKit returns a brand kit by id.
func (s *Store) BrandKit(ctx context.Context, id string) (pipeline.BrandKit, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.BrandKit{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	k, ok := s.kits[id]
	if !ok {
		return pipeline.BrandKit{}, &pipeline.NotFoundError{Kind: "brand kit", ID: id}
	}
	return k, nil
}

// Ensure Store implements ports.StyleStore
var _ ports.StyleStore = (*Store)(nil)
