package cavcore

// Dims is a grid's per-axis voxel count (Dx, Dy, Dz).
type Dims [3]int

// Strides is a grid's per-axis element stride, in element units, used to
// compute a flat index as i*sx + j*sy + k*sz. Strides are kept as int64
// so index arithmetic never overflows for large grids (spec.md §6).
type Strides [3]int64

// RowMajorStrides returns the canonical row-major strides for dims, with
// the Z axis contiguous. Callers may supply any other consistent strides
// (spec.md's views are shape+stride, not layout-fixed).
func RowMajorStrides(dims Dims) Strides {
	return Strides{
		int64(dims[1]) * int64(dims[2]),
		int64(dims[2]),
		1,
	}
}

// Index computes the flat element offset for (i, j, k) under s.
func (s Strides) Index(i, j, k int) int64 {
	return int64(i)*s[0] + int64(j)*s[1] + int64(k)*s[2]
}

// InBounds reports whether (i, j, k) lies within dims.
func (d Dims) InBounds(i, j, k int) bool {
	return i >= 0 && i < d[0] && j >= 0 && j < d[1] && k >= 0 && k < d[2]
}

// Grid is a dense 3D array of int64 voxel labels (spec.md §3):
//
//	0  — outside the discretized volume, or untouched
//	+n — assigned to atom index n-1
//	-n — assigned to cavity domain index n-1 (or, for the discretization
//	     mask's own grid, an encoded translation index; the mask type
//	     disambiguates which meaning applies)
type Grid struct {
	Dims    Dims
	Strides Strides
	Labels  []int64
}

// NewGrid allocates a zero-initialized label grid with canonical row-major
// strides.
func NewGrid(dims Dims) *Grid {
	return &Grid{
		Dims:    dims,
		Strides: RowMajorStrides(dims),
		Labels:  make([]int64, dims[0]*dims[1]*dims[2]),
	}
}

// At returns the label at (i, j, k). Callers must ensure (i, j, k) is in
// bounds; the core does not validate preconditions (spec.md §7).
func (g *Grid) At(i, j, k int) int64 {
	return g.Labels[g.Strides.Index(i, j, k)]
}

// Set stores v at (i, j, k).
func (g *Grid) Set(i, j, k int, v int64) {
	g.Labels[g.Strides.Index(i, j, k)] = v
}

// Clear zeroes every label in the grid.
func (g *Grid) Clear() {
	for i := range g.Labels {
		g.Labels[i] = 0
	}
}

// DiscretizationMask is a byte grid of identical shape to a label grid but
// with independent strides (spec.md §3):
//
//	0       — inside the canonical volume
//	1       — outside, not yet resolved (D's input state for outside
//	          voxels; D's second pass resolves every such voxel)
//	-(t+1)  — outside; applying translation t maps back to a canonical
//	          (inside) voxel
type DiscretizationMask struct {
	Dims    Dims
	Strides Strides
	Values  []int8
}

// NewDiscretizationMask allocates a zero-initialized (all-inside) mask
// with canonical row-major strides.
func NewDiscretizationMask(dims Dims) *DiscretizationMask {
	return &DiscretizationMask{
		Dims:    dims,
		Strides: RowMajorStrides(dims),
		Values:  make([]int8, dims[0]*dims[1]*dims[2]),
	}
}

// At returns the mask byte at (i, j, k).
func (m *DiscretizationMask) At(i, j, k int) int8 {
	return m.Values[m.Strides.Index(i, j, k)]
}

// Set stores v at (i, j, k).
func (m *DiscretizationMask) Set(i, j, k int, v int8) {
	m.Values[m.Strides.Index(i, j, k)] = v
}
