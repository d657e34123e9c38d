package quotegen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ideamans/go-l10n"

	"github.com/user/quotegen/pkg/config"
	"github.com/user/quotegen/pkg/ports"
)

// FontRegisterer accepts TrueType data under a family name.
type FontRegisterer interface {
	Register(family string, ttf []byte) error
}

// RegisterFonts registers the configured font files, then every .ttf in
// dir under its base file name. It returns the number of fonts registered.
func RegisterFonts(fs ports.FileSystem, reg FontRegisterer, fonts []config.FontConfig, dir string, logger ports.Logger) (int, error) {
	count := 0

	for _, f := range fonts {
		if err := registerFile(fs, reg, f.Family, f.Path); err != nil {
			return count, err
		}
		count++
	}

	if dir == "" {
		return count, nil
	}

	files, err := fs.ListFiles(dir, ".ttf")
	if err != nil {
		return count, fmt.Errorf("list font directory %s: %w", dir, err)
	}
	for _, path := range files {
		family := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if err := registerFile(fs, reg, family, path); err != nil {
			logger.Warn(l10n.F("Skipping font %s: %v", path, err))
			continue
		}
		count++
	}

	return count, nil
}

func registerFile(fs ports.FileSystem, reg FontRegisterer, family, path string) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	if err := reg.Register(family, data); err != nil {
		return fmt.Errorf("register font %s: %w", family, err)
	}
	return nil
}
