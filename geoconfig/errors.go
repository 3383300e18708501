package geoconfig

import "errors"

var (
	// ErrPresetNotFound indicates the requested preset name is absent from
	// the loaded document.
	ErrPresetNotFound = errors.New("geoconfig: preset not found")

	// ErrLambdaRange indicates a preset's lambda fell outside [0,1].
	ErrLambdaRange = errors.New("geoconfig: lambda must be in [0,1]")

	// ErrIterRange indicates a preset's iter was < 1.
	ErrIterRange = errors.New("geoconfig: iter must be >= 1")

	// ErrConnectivity indicates a preset's connectivity value was not one
	// of the recognized tokens ("axial", "diagonal").
	ErrConnectivity = errors.New("geoconfig: connectivity must be \"axial\" or \"diagonal\"")
)
