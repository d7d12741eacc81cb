package cavcore

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/cavityscan/cavcore/marchingcubes"
)

// CavityMesh is the triangulated surface of one or more cavity domains
// (spec.md §4.4), in continuous coordinates. ID identifies the mesh the
// way the teacher's asset pipeline identifies a loaded asset
// (mod_assets.go's makeAssetId), so a mesh can be handed to a renderer
// or cache by identity rather than by re-deriving it from the domain
// index set.
type CavityMesh struct {
	ID           string
	Vertices     [][3]float32
	Normals      [][3]float32
	TriangleArea float64
}

// MeshCavities is the Cavity Mesher M (spec.md §4.4). It builds a
// neighbor-count field around the requested cavity domains, triangulates
// it with marchingcubes at 100+isolevel, then maps every triangle vertex
// and normal from grid-index space into continuous coordinates via step
// and offset (the same per-axis scale/translation a caller would use to
// go from voxel index to physical position).
//
// Grounded on cavity_triangles in the original C core: the count field
// (a flat +100 baseline per interior voxel of the grid, the outermost
// voxel shell staying at 0, +1 per voxel in any cavity
// domain's 3x3x3 neighborhood), the one-voxel bbox expansion before
// triangulation, and the any_outside exclusion rule (a triangle with any
// vertex whose rounded position the discretization mask marks outside
// the canonical volume is still emitted, but excluded from the area
// sum) are preserved as observed.
//
// isoLevel must be in [1, 26] (spec.md §6: "interpreted as number of
// cavity neighbors required, added to the 100 baseline"); unlike the
// rest of the core's caller-trusted preconditions, this one is checked
// because it is the only mesher input unconstrained by array bounds, so
// a caller typo here would otherwise silently produce an always-empty
// or always-full count field instead of failing fast.
func MeshCavities(grid *Grid, cavityIndices []int, isoLevel int, step, offset [3]float32, mask *DiscretizationMask, logger Logger) (*CavityMesh, error) {
	if isoLevel < 1 || isoLevel > 26 {
		return nil, ErrInvalidIsoLevel
	}
	if logger == nil {
		logger = NewNopLogger()
	}
	dims := grid.Dims
	logger.Debugf("meshing %d selected cavity domains at isolevel %d", len(cavityIndices), isoLevel)
	wantedCavity := make(map[int64]bool, len(cavityIndices))
	for _, idx := range cavityIndices {
		wantedCavity[int64(-idx-1)] = true
	}

	counts := make([]uint16, dims[0]*dims[1]*dims[2])
	cstrides := RowMajorStrides(dims)

	bboxLo := [3]int{-1, -1, -1}
	bboxHi := [3]int{-1, -1, -1}

	for i := 1; i < dims[0]-1; i++ {
		for j := 1; j < dims[1]-1; j++ {
			for k := 1; k < dims[2]-1; k++ {
				idx := cstrides.Index(i, j, k)
				counts[idx] += 100

				if !wantedCavity[grid.At(i, j, k)] {
					continue
				}

				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						for dz := -1; dz <= 1; dz++ {
							nidx := cstrides.Index(i+dx, j+dy, k+dz)
							counts[nidx]++
						}
					}
				}

				for axis := 0; axis < 3; axis++ {
					p := [3]int{i, j, k}[axis]
					if bboxLo[axis] == -1 || bboxLo[axis] > p-1 {
						bboxLo[axis] = p - 1
					}
					if bboxHi[axis] == -1 || bboxHi[axis] < p+1 {
						bboxHi[axis] = p + 1
					}
				}
			}
		}
	}

	if bboxLo[0] == -1 {
		logger.Debugf("meshing complete: no selected cavity voxels in grid, empty mesh")
		return &CavityMesh{ID: uuid.NewString()}, nil
	}

	for axis := 0; axis < 3; axis++ {
		if bboxLo[axis] >= 1 {
			bboxLo[axis]--
		}
		if bboxHi[axis] < dims[axis]-1 {
			bboxHi[axis]++
		}
	}

	subNX := bboxHi[0] - bboxLo[0] + 1
	subNY := bboxHi[1] - bboxLo[1] + 1
	subNZ := bboxHi[2] - bboxLo[2] + 1
	sub := make([]uint16, subNX*subNY*subNZ)
	for i := 0; i < subNX; i++ {
		for j := 0; j < subNY; j++ {
			for k := 0; k < subNZ; k++ {
				gi, gj, gk := bboxLo[0]+i, bboxLo[1]+j, bboxLo[2]+k
				sub[(i*subNY+j)*subNZ+k] = counts[cstrides.Index(gi, gj, gk)]
			}
		}
	}

	volume := &marchingcubes.Volume{NX: subNX, NY: subNY, NZ: subNZ, Data: sub}
	triangles := marchingcubes.Triangulate(volume, uint16(100+isoLevel))

	vertices := make([][3]float32, 0, len(triangles)*3)
	normals := make([][3]float32, 0, len(triangles)*3)
	var area float64

	for _, tri := range triangles {
		anyOutside := false
		var continuousVerts [3]mgl32.Vec3
		var continuousNorms [3]mgl32.Vec3

		for v := 0; v < 3; v++ {
			local := tri.Vertices[v]
			gridVert := [3]float32{
				local[0] + float32(bboxLo[0]),
				local[1] + float32(bboxLo[1]),
				local[2] + float32(bboxLo[2]),
			}

			var discPos [3]int
			for k := 0; k < 3; k++ {
				discPos[k] = int(math.Floor(float64(gridVert[k]) + 0.5))
			}
			if mask.At(discPos[0], discPos[1], discPos[2]) != 0 {
				anyOutside = true
			}

			continuousVerts[v] = mgl32.Vec3{
				gridVert[0]*step[0] + offset[0],
				gridVert[1]*step[1] + offset[1],
				gridVert[2]*step[2] + offset[2],
			}
			n := tri.Normals[v]
			continuousNorms[v] = mgl32.Vec3{n[0] / step[0], n[1] / step[1], n[2] / step[2]}

			vertices = append(vertices, [3]float32{continuousVerts[v].X(), continuousVerts[v].Y(), continuousVerts[v].Z()})
			normals = append(normals, [3]float32{continuousNorms[v].X(), continuousNorms[v].Y(), continuousNorms[v].Z()})
		}

		if !anyOutside {
			a := continuousVerts[1].Sub(continuousVerts[0])
			b := continuousVerts[2].Sub(continuousVerts[0])
			area += float64(a.Cross(b).Len()) * 0.5
		}
	}

	logger.Debugf("meshing complete: %d triangles, area %.3f", len(triangles), area)

	return &CavityMesh{
		ID:           uuid.NewString(),
		Vertices:     vertices,
		Normals:      normals,
		TriangleArea: area,
	}, nil
}
