// Package geoconfig loads named solver presets (lambda, connectivity, and
// raster-scan iteration count) from YAML, so callers can keep tuned
// parameter sets out of source and swap between them by name.
package geoconfig
