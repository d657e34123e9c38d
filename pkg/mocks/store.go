package mocks

import (
	"context"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

// StyleStore is a mock implementation of ports.StyleStore backed by maps.
type StyleStore struct {
	TemplateList []pipeline.Template
	Kits         map[string]pipeline.BrandKit

	TemplateFunc func(ctx context.Context, id string) (pipeline.Template, error)
}

func (m *StyleStore) Template(ctx context.Context, id string) (pipeline.Template, error) {
	if m.TemplateFunc != nil {
		return m.TemplateFunc(ctx, id)
	}
	for _, t := range m.TemplateList {
		if t.ID == id {
			return t, nil
		}
	}
	return pipeline.Template{}, &pipeline.NotFoundError{Kind: "template", ID: id}
}

func (m *StyleStore) Templates(ctx context.Context) ([]pipeline.Template, error) {
	return m.TemplateList, nil
}

func (m *StyleStore) BrandKit(ctx context.Context, id string) (pipeline.BrandKit, error) {
	if kit, ok := m.Kits[id]; ok {
		return kit, nil
	}
	return pipeline.BrandKit{}, &pipeline.NotFoundError{Kind: "brand kit", ID: id}
}

var _ ports.StyleStore = (*StyleStore)(nil)

// TextTransform is a mock implementation of ports.TextTransform.
type TextTransform struct {
	TransformFunc func(ctx context.Context, text, style string) (string, error)
	Calls         int
}

func (m *TextTransform) Transform(ctx context.Context, text, style string) (string, error) {
	m.Calls++
	if m.TransformFunc != nil {
		return m.TransformFunc(ctx, text, style)
	}
	return text, nil
}

var _ ports.TextTransform = (*TextTransform)(nil)
