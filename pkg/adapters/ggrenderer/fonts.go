package ggrenderer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFamily is used when a requested family is not registered.
const DefaultFamily = "go"

// builtinFamilies maps family names to the embedded Go fonts.
var builtinFamilies = map[string][]byte{
	"go":        goregular.TTF,
	"goregular": goregular.TTF,
	"go bold":   gobold.TTF,
	"gobold":    gobold.TTF,
	"go italic": goitalic.TTF,
	"goitalic":  goitalic.TTF,
	"go medium": gomedium.TTF,
	"gomedium":  gomedium.TTF,
	"go mono":   gomono.TTF,
	"gomono":    gomono.TTF,
}

// builtinAliases maps common web font names onto the closest embedded font.
var builtinAliases = map[string]string{
	"arial":           "go",
	"helvetica":       "go",
	"inter":           "go",
	"sans-serif":      "go",
	"georgia":         "go medium",
	"times new roman": "go medium",
	"serif":           "go medium",
	"courier":         "go mono",
	"courier new":     "go mono",
	"monospace":       "go mono",
}

// FontRegistry resolves font family names to parsed TrueType fonts.
// Parsed fonts are shared read-only; faces are created per surface.
type FontRegistry struct {
	mu      sync.RWMutex
	sources map[string][]byte
	aliases map[string]string
	parsed  map[string]*truetype.Font
}

// NewFontRegistry creates a registry preloaded with the embedded Go fonts.
func NewFontRegistry() *FontRegistry {
	r := &FontRegistry{
		sources: make(map[string][]byte, len(builtinFamilies)),
		aliases: make(map[string]string, len(builtinAliases)),
		parsed:  make(map[string]*truetype.Font),
	}
	for name, ttf := range builtinFamilies {
		r.sources[name] = ttf
	}
	for alias, target := range builtinAliases {
		r.aliases[alias] = target
	}
	return r
}

// Register adds or replaces a font family from TrueType data.
func (r *FontRegistry) Register(family string, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", family, err)
	}

	key := normalizeFamily(family)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[key] = ttf
	r.parsed[key] = f
	delete(r.aliases, key)
	return nil
}

// Has reports whether the family resolves without falling back.
func (r *FontRegistry) Has(family string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sources[r.resolveLocked(normalizeFamily(family))]
	return ok
}

// Font returns the parsed font for family, falling back to DefaultFamily.
func (r *FontRegistry) Font(family string) (*truetype.Font, error) {
	key := normalizeFamily(family)

	r.mu.RLock()
	key = r.resolveLocked(key)
	if _, ok := r.sources[key]; !ok {
		key = DefaultFamily
	}
	f, ok := r.parsed[key]
	src := r.sources[key]
	r.mu.RUnlock()
	if ok {
		return f, nil
	}

	f, err := truetype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", key, err)
	}

	r.mu.Lock()
	r.parsed[key] = f
	r.mu.Unlock()
	return f, nil
}

func (r *FontRegistry) resolveLocked(key string) string {
	if target, ok := r.aliases[key]; ok {
		return target
	}
	return key
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

// faceKey identifies a cached face on a surface.
type faceKey struct {
	family string
	size   float64
}

// faceCache holds faces for a single surface. truetype faces keep glyph
// caches internally and must not be shared between goroutines.
type faceCache struct {
	fonts *FontRegistry
	faces map[faceKey]font.Face
}

func newFaceCache(fonts *FontRegistry) *faceCache {
	return &faceCache{fonts: fonts, faces: make(map[faceKey]font.Face)}
}

func (c *faceCache) face(family string, size float64) (font.Face, error) {
	k := faceKey{family: normalizeFamily(family), size: size}
	if f, ok := c.faces[k]; ok {
		return f, nil
	}

	ttf, err := c.fonts.Font(family)
	if err != nil {
		return nil, err
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: size, Hinting: font.HintingFull})
	c.faces[k] = f
	return f, nil
}
