package cavcore

import "math"

// maxSquaredDistance stands in for the original core's INT_MAX sentinel:
// the "no atom found nearby" case, which must compare as farther than
// any real squared distance so a lone domain seed still wins.
const maxSquaredDistance = math.MaxInt32

// MarkCavities is the Cavity Assigner C (spec.md §4.3). For every voxel
// it decides whether the voxel belongs to a cavity and, if so, which
// domain, writing -(domainIndex+1) into out for every claimed voxel.
// In useSurfacePoints mode every other voxel is written 0; otherwise
// every other voxel keeps whatever out already holds (typically the
// atom labels from AtomsToGrid).
//
// Grounded on mark_cavities in the original C core. Two modes:
//
// useSurfacePoints: domainGrid (the output of a prior surface-point
// assignment pass) is trusted directly — 0 stays outside, a negative
// value is already a cavity voxel and is copied through unexamined, and
// a positive (atom-owned) value is treated as a candidate that still
// needs the distance comparison below.
//
// !useSurfacePoints: every voxel the discretization mask marks as
// outside the canonical volume is skipped (left at whatever out already
// holds); every voxel inside is a candidate.
//
// A candidate voxel is assigned to the nearest domain seed in its
// subgrid neighborhood if that seed is strictly closer than the nearest
// atom in the same neighborhood; otherwise it is left outside any
// cavity (out keeps the value described above).
func MarkCavities(out *Grid, domainGrid *Grid, mask *DiscretizationMask, sg *Subgrid, useSurfacePoints bool, logger Logger) {
	if logger == nil {
		logger = NewNopLogger()
	}
	dims := out.Dims
	logger.Debugf("assigning cavities over %dx%dx%d grid (surface points: %v)", dims[0], dims[1], dims[2], useSurfacePoints)
	cavityVoxels := 0

	for i := 0; i < dims[0]; i++ {
		for j := 0; j < dims[1]; j++ {
			for k := 0; k < dims[2]; k++ {
				if useSurfacePoints {
					v := domainGrid.At(i, j, k)
					if v == 0 {
						out.Set(i, j, k, 0)
						continue
					} else if v < 0 {
						out.Set(i, j, k, v)
						cavityVoxels++
						continue
					}
					out.Set(i, j, k, 0)
				} else {
					if mask.At(i, j, k) != 0 {
						continue
					}
				}

				pos := [3]int{i, j, k}
				minAtomDist := sg.nearestAtomSquaredDistance(pos)
				if minAtomDist < 0 {
					// No atom recorded in this neighborhood at all: any
					// domain seed found is unconditionally closer.
					minAtomDist = maxSquaredDistance
				}
				if domainIdx, ok := sg.nearestDomainCloserThan(pos, minAtomDist); ok {
					out.Set(i, j, k, int64(-domainIdx-1))
					cavityVoxels++
				}
			}
		}
	}

	logger.Debugf("cavity assignment complete: %d voxels claimed by a domain", cavityVoxels)
}
