// Package loader reads scene files from disk, parsing and validating them.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"playermove/internal/loader/schema"
)

// ErrUnsupportedFormat is returned for scene formats without a loader.
var ErrUnsupportedFormat = errors.New("unsupported scene format")

type Loader interface {
	Load() error
	GetScene() schema.Scene
}

func NewLoader(loaderType string, filename string) (Loader, error) {
	switch strings.ToLower(loaderType) {
	case "yaml", "yml":
		return NewYamlLoader(filename), nil
	default:
		return nil, fmt.Errorf("%s: %w %q", filename, ErrUnsupportedFormat, loaderType)
	}
}

// LoadScene loads filename with the loader matching its extension. Files
// without an extension are read as YAML.
func LoadScene(filename string) (schema.Scene, error) {
	format := strings.TrimPrefix(filepath.Ext(filename), ".")
	if format == "" {
		format = "yaml"
	}
	l, err := NewLoader(format, filename)
	if err != nil {
		return schema.Scene{}, err
	}
	if err := l.Load(); err != nil {
		return schema.Scene{}, err
	}
	return l.GetScene(), nil
}
