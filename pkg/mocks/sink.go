package mocks

import (
	"image"
	"sync"

	"github.com/user/quotegen/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Layouts map[string][]byte
	Renders map[string]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Layouts: make(map[string][]byte),
		Renders: make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveLayoutJSON(presetID string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Layouts[presetID] = data
	return nil
}

func (m *DebugSink) SaveRender(presetID string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Renders[presetID] = img
	return nil
}

// Layout returns the saved layout JSON for a preset.
func (m *DebugSink) Layout(presetID string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.Layouts[presetID]
	return data, ok
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool { return false }
func (m *NullSink) SaveLayoutJSON(presetID string, data []byte) error { return nil }
func (m *NullSink) SaveRender(presetID string, img image.Image) error { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
