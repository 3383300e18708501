package geoconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/billy-4md/geodesic-distance/rasterscan"
)

// Preset is one named solver configuration.
type Preset struct {
	Lambda       float64 `yaml:"lambda"`
	Iter         int     `yaml:"iter"`         // raster-scan only; ignored by FMM callers
	Connectivity string  `yaml:"connectivity"` // "axial" (default) or "diagonal"
}

// Document is the top-level shape of a presets YAML file: a map from
// preset name to its parameters.
type Document struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Load parses a presets document from raw YAML bytes.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("geoconfig: parse: %w", err)
	}
	for name, p := range doc.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("geoconfig: preset %q: %w", name, err)
		}
	}
	return &doc, nil
}

// LoadFile reads and parses a presets document from path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geoconfig: read %s: %w", path, err)
	}
	return Load(data)
}

// Get returns the named preset, or ErrPresetNotFound.
func (d *Document) Get(name string) (Preset, error) {
	p, ok := d.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return p, nil
}

// Validate checks a preset's fields are within the ranges the solvers
// accept. Iter is not checked here, since FMM ignores it;
// RasterScanOptions enforces it instead.
func (p Preset) Validate() error {
	if p.Lambda < 0 || p.Lambda > 1 {
		return ErrLambdaRange
	}
	switch p.Connectivity {
	case "", "axial", "diagonal":
	default:
		return ErrConnectivity
	}
	return nil
}

// RasterScanOptions resolves a preset into the iter count and functional
// options rasterscan.Solve expects.
func (p Preset) RasterScanOptions() (iter int, opts []rasterscan.Option, err error) {
	if p.Iter < 1 {
		return 0, nil, ErrIterRange
	}
	if p.Connectivity == "diagonal" {
		opts = append(opts, rasterscan.WithDiagonals())
	}
	return p.Iter, opts, nil
}
