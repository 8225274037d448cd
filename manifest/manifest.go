// Package manifest reads dependency manifests into resolver records.
//
// A manifest lists packages with their direct dependencies:
//
//	{"packages": [{"name": "A", "dependencies": ["B", "C"]}, {"name": "B"}]}
//
// The same shape is accepted as YAML.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pkgorder/resolver"
)

var (
	// ErrUnsupportedFormat is returned for an unknown format or file extension.
	ErrUnsupportedFormat = errors.New("manifest: unsupported format")

	// ErrEmptyPackageName is returned when a package or dependency name is empty.
	ErrEmptyPackageName = errors.New("manifest: empty package name")
)

// Format names a manifest encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Manifest is the decoded document.
type Manifest struct {
	Packages []resolver.Package `json:"packages" yaml:"packages"`
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}

	return ParseFormat(ext)
}

// Load reads the manifest at path, choosing the decoder by extension.
func Load(path string) ([]resolver.Package, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return LoadFormat(path, format)
}

// LoadFormat reads the manifest at path with an explicit format.
func LoadFormat(path string, format Format) ([]resolver.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", path, err)
	}
	defer f.Close()

	pkgs, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pkgs, nil
}

// Decode reads one manifest document from r.
// Missing dependency lists decode as empty; empty names are rejected.
func Decode(r io.Reader, format Format) ([]resolver.Package, error) {
	var m Manifest
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&m); err != nil {
			return nil, fmt.Errorf("manifest: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := validate(m.Packages); err != nil {
		return nil, err
	}

	return m.Packages, nil
}

func validate(pkgs []resolver.Package) error {
	for i := range pkgs {
		if pkgs[i].Name == "" {
			return fmt.Errorf("%w: packages[%d]", ErrEmptyPackageName, i)
		}
		for j, dep := range pkgs[i].Dependencies {
			if dep == "" {
				return fmt.Errorf("%w: packages[%d] (%s) dependencies[%d]", ErrEmptyPackageName, i, pkgs[i].Name, j)
			}
		}
		if pkgs[i].Dependencies == nil {
			pkgs[i].Dependencies = []string{}
		}
	}

	return nil
}
