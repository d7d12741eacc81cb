package cavcore

// AtomsToGrid is the Atom Voxelizer (A, spec.md §4.1). It rasterizes each
// atom as a discrete sphere into grid, once per translation in
// translationsWithIdentity (the identity vector must already be present,
// see TranslationTable.WithIdentity), skipping any voxel the
// discretization mask marks as outside the canonical volume. Where two
// atom images compete for the same voxel, the closer image wins; ties
// keep the incumbent. radii maps an Atom's RadiusIndex to a radius in
// whole voxels.
//
// Grounded on atomstogrid in the original C core: the bounding-cube
// reject test, the per-axis clipped sphere scan, and the exact
// tie-break comparison (other_squared_distance <= this_squared_distance
// keeps the incumbent) are preserved as observed.
func AtomsToGrid(grid *Grid, atoms []Atom, radii []int, translationsWithIdentity TranslationTable, mask *DiscretizationMask, logger Logger) {
	if logger == nil {
		logger = NewNopLogger()
	}
	dims := grid.Dims
	logger.Debugf("voxelizing %d atoms across %d translations", len(atoms), len(translationsWithIdentity))

	for i, atom := range atoms {
		radius := radii[atom.RadiusIndex]
		cubesize := 2*radius + 1

		for _, t := range translationsWithIdentity {
			transpos := t.Add(atom.Pos)

			if transpos[0]+radius < 0 || transpos[0]-radius >= dims[0] ||
				transpos[1]+radius < 0 || transpos[1]-radius >= dims[1] ||
				transpos[2]+radius < 0 || transpos[2]-radius >= dims[2] {
				continue
			}

			for si0 := 0; si0 < cubesize; si0++ {
				gx := transpos[0] + si0 - radius
				if gx < 0 || gx >= dims[0] {
					continue
				}
				for si1 := 0; si1 < cubesize; si1++ {
					gy := transpos[1] + si1 - radius
					if gy < 0 || gy >= dims[1] {
						continue
					}
					for si2 := 0; si2 < cubesize; si2++ {
						gz := transpos[2] + si2 - radius
						if gz < 0 || gz >= dims[2] {
							continue
						}

						dx, dy, dz := si0-radius, si1-radius, si2-radius
						if dx*dx+dy*dy+dz*dz > radius*radius {
							continue
						}
						if mask.At(gx, gy, gz) != 0 {
							continue
						}

						gridPos := [3]int{gx, gy, gz}
						current := grid.At(gx, gy, gz)
						thisSquaredDistance := sqDist(transpos, gridPos)

						if current == 0 {
							grid.Set(gx, gy, gz, int64(i+1))
							continue
						}

						otherAtom := atoms[current-1]
						otherWins := false
						for _, k := range translationsWithIdentity {
							otherTranspos := k.Add(otherAtom.Pos)
							otherSquaredDistance := sqDist(otherTranspos, gridPos)
							if otherSquaredDistance <= thisSquaredDistance {
								otherWins = true
								break
							}
						}
						if !otherWins {
							grid.Set(gx, gy, gz, int64(i+1))
						}
					}
				}
			}
		}
	}

	logger.Debugf("voxelization complete")
}
