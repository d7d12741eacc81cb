package cavcore

// RunOptions configures one analysis frame's subgrid granularity, mesh
// isolevel, and diagnostics sink. There is no file-based configuration
// format in scope: the core's boundary is procedural (spec.md §6), not a
// CLI, so a plain struct with a default constructor is the right shape,
// in the style of the teacher's module-default pattern
// (NewSpatialHashGrid(2.0)).
type RunOptions struct {
	// CubeEdge is the subgrid's cell edge length in voxels (spec.md §4.2).
	CubeEdge int

	// IsoLevel is the neighbor-count threshold (added to the 100
	// baseline) passed to the mesher's marching-cubes pass (spec.md §4.4).
	// Must be in [1, 26].
	IsoLevel int

	// Logger receives ambient Debugf progress from A, C, and M. Never
	// nil after DefaultRunOptions; defaults to a no-op.
	Logger Logger
}

// DefaultRunOptions returns a RunOptions with a cube edge of 4 voxels, an
// isolevel of 1 (surface touches any cavity-adjacent voxel), and a no-op
// logger.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		CubeEdge: 4,
		IsoLevel: 1,
		Logger:   NewNopLogger(),
	}
}

func (o RunOptions) logger() Logger {
	if o.Logger == nil {
		return NewNopLogger()
	}
	return o.Logger
}
