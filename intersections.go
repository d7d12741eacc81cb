package cavcore

// IntersectionTable is a symmetric numDomains x numDomains adjacency
// matrix of touching cavity domains (spec.md §4.5), stored flat:
// table[d1*numDomains+d2] is 1 if domains d1 and d2 share a face,
// edge, or corner voxel adjacency.
type IntersectionTable struct {
	NumDomains int
	Table      []byte
}

// Touching reports whether domains d1 and d2 were found adjacent.
func (t *IntersectionTable) Touching(d1, d2 int) bool {
	return t.Table[d1*t.NumDomains+d2] != 0
}

// cavityOffsets13 is the fixed half-neighborhood of 13 directional
// offsets the original core scans per voxel; covering only "earlier"
// neighbors in scan order makes every adjacency get recorded exactly
// once from the grid's perspective, and the table is then written
// symmetrically so lookups don't care which side triggered the write.
var cavityOffsets13 = [13][3]int{
	{-1, -1, -1}, {-1, -1, 0}, {-1, -1, 1},
	{-1, 0, -1}, {-1, 0, 0}, {-1, 0, 1},
	{-1, 1, -1}, {-1, 1, 0}, {-1, 1, 1},
	{0, -1, -1}, {0, -1, 0}, {0, -1, 1},
	{0, 0, -1},
}

// CavityIntersections is the Intersection Scanner I (spec.md §4.5),
// grounded on cavity_intersections in the original C core. grid's
// labels must already carry cavity assignments as -(domainIndex+1); any
// voxel one voxel or more in from every boundary face is scanned against
// its 13 half-neighborhood offsets, so a domain pair only collides
// across a periodic boundary if D already folded that boundary's
// translated image back into the canonical volume.
func CavityIntersections(grid *Grid, numDomains int) *IntersectionTable {
	table := make([]byte, numDomains*numDomains)
	dims := grid.Dims

	for i := 1; i < dims[0]-1; i++ {
		for j := 1; j < dims[1]-1; j++ {
			for k := 1; k < dims[2]-1; k++ {
				v := grid.At(i, j, k)
				domain1 := -v - 1
				if domain1 < 0 {
					continue
				}
				for _, off := range cavityOffsets13 {
					v2 := grid.At(i+off[0], j+off[1], k+off[2])
					domain2 := -v2 - 1
					if domain2 < 0 {
						continue
					}
					table[int(domain1)*numDomains+int(domain2)] = 1
					table[int(domain2)*numDomains+int(domain1)] = 1
				}
			}
		}
	}

	return &IntersectionTable{NumDomains: numDomains, Table: table}
}
