package cavcore

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// CavityGraph wraps an IntersectionTable in a lvlath core.Graph, one
// vertex per cavity domain, so that touching domains can be grouped into
// "multicavities" with graph-traversal machinery instead of a
// hand-rolled union-find. This is an enrichment beyond spec.md's raw
// adjacency-table output (SPEC_FULL.md §5/§6), grounded on lvlath's own
// string-ID Graph/BFS API rather than on anything in the teacher, which
// carries no graph library.
type CavityGraph struct {
	g          *core.Graph
	numDomains int
}

func vertexID(domain int) string {
	return fmt.Sprintf("cavity-%d", domain)
}

// NewCavityGraph builds a CavityGraph from an intersection table: one
// vertex per domain, one undirected edge per touching pair.
func NewCavityGraph(table *IntersectionTable) (*CavityGraph, error) {
	g := core.NewGraph()
	for d := 0; d < table.NumDomains; d++ {
		if err := g.AddVertex(vertexID(d)); err != nil {
			return nil, err
		}
	}
	for d1 := 0; d1 < table.NumDomains; d1++ {
		for d2 := d1 + 1; d2 < table.NumDomains; d2++ {
			if table.Touching(d1, d2) {
				if _, err := g.AddEdge(vertexID(d1), vertexID(d2), 0); err != nil {
					return nil, err
				}
			}
		}
	}
	return &CavityGraph{g: g, numDomains: table.NumDomains}, nil
}

// Groups partitions the graph's vertices into connected components,
// each component being one multicavity: a set of cavity domains that
// touch, directly or transitively. Domain indices within each group are
// in ascending order; groups themselves are ordered by their smallest
// member.
func (cg *CavityGraph) Groups() ([][]int, error) {
	visited := make(map[string]bool, cg.numDomains)
	var groups [][]int

	for d := 0; d < cg.numDomains; d++ {
		start := vertexID(d)
		if visited[start] {
			continue
		}
		result, err := bfs.BFS(cg.g, start)
		if err != nil {
			return nil, err
		}
		group := make([]int, 0, len(result.Order))
		for _, id := range result.Order {
			var idx int
			if _, err := fmt.Sscanf(id, "cavity-%d", &idx); err != nil {
				return nil, err
			}
			visited[id] = true
			group = append(group, idx)
		}
		sort.Ints(group)
		groups = append(groups, group)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups, nil
}
