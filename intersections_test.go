package cavcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCavityIntersectionsFindsAdjacentDomains(t *testing.T) {
	dims := Dims{5, 5, 5}
	grid := NewGrid(dims)
	grid.Set(2, 2, 2, -1) // domain 0
	grid.Set(2, 2, 3, -2) // domain 1, face-adjacent to domain 0

	table := CavityIntersections(grid, 3)

	assert.True(t, table.Touching(0, 1))
	assert.True(t, table.Touching(1, 0), "adjacency must be recorded symmetrically")
	assert.False(t, table.Touching(0, 2))
}

func TestCavityIntersectionsIgnoresNonTouchingDomains(t *testing.T) {
	dims := Dims{10, 10, 10}
	grid := NewGrid(dims)
	grid.Set(2, 2, 2, -1)
	grid.Set(7, 7, 7, -2)

	table := CavityIntersections(grid, 2)

	assert.False(t, table.Touching(0, 1))
}

func TestCavityIntersectionsSkipsBoundaryVoxels(t *testing.T) {
	dims := Dims{5, 5, 5}
	grid := NewGrid(dims)
	grid.Set(0, 0, 0, -1)
	grid.Set(0, 0, 1, -2)

	table := CavityIntersections(grid, 2)

	assert.False(t, table.Touching(0, 1), "the outer boundary shell is never scanned")
}
