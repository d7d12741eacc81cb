package cavcore

import "errors"

// Sentinel errors for the few conditions spec.md treats as caller errors
// rather than programming errors that are simply trusted (see §7).
var (
	// ErrInvalidCubeEdge is returned when a subgrid is created with a
	// non-positive cube edge length.
	ErrInvalidCubeEdge = errors.New("cavcore: cube edge must be positive")

	// ErrInvalidIsoLevel is returned when the mesher is asked for an
	// isolevel outside [1, 26].
	ErrInvalidIsoLevel = errors.New("cavcore: isolevel must be in [1, 26]")
)
