package cavcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCavityGraphGroupsTouchingDomains(t *testing.T) {
	table := &IntersectionTable{NumDomains: 4, Table: make([]byte, 16)}
	table.Table[0*4+1] = 1
	table.Table[1*4+0] = 1
	// domains 2 and 3 remain isolated singletons.

	cg, err := NewCavityGraph(table)
	require.NoError(t, err)

	groups, err := cg.Groups()
	require.NoError(t, err)

	require.Len(t, groups, 3)
	assert.Equal(t, []int{0, 1}, groups[0])
	assert.Equal(t, []int{2}, groups[1])
	assert.Equal(t, []int{3}, groups[2])
}

func TestCavityGraphNoIntersectionsYieldsAllSingletons(t *testing.T) {
	table := &IntersectionTable{NumDomains: 3, Table: make([]byte, 9)}

	cg, err := NewCavityGraph(table)
	require.NoError(t, err)

	groups, err := cg.Groups()
	require.NoError(t, err)

	require.Len(t, groups, 3)
	for i, g := range groups {
		assert.Equal(t, []int{i}, g)
	}
}
