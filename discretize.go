package cavcore

// MarkTranslationVectors is the Translation-Vector Marking component D
// (spec.md §4.6). mask must already have every voxel inside the
// canonical volume set to 0 and every voxel outside set to 1 (the
// initial "volume test" is a caller responsibility, see spec.md §4.6).
// translations must NOT include the identity vector.
//
// Pass 1 marks every voxel reachable from an inside voxel by a single
// translation as 1 (already true for outside voxels, a no-op there, but
// also reachable inside voxels get overwritten to 1 — matching the
// original core exactly). Pass 2 then resolves each still-1 voxel to the
// translation that maps it onto an already-0 voxel; when no such
// translation exists it falls back to the translation whose destination
// lands closest to the grid center, forcibly zeroing that destination
// even if already assigned. Only a destination strictly closer to the
// center than the voxel itself qualifies; when none does, the voxel is
// set to 0. This can make the mapping non-injective;
// spec.md §9 flags the behavior as preserved-as-observed rather than
// corrected. The fallback's candidate selection is reproduced literally
// from algorithm.c's second loop: it scans every translation, not just
// the in-bounds ones, when comparing center distances (trans_valid is
// not consulted there, unlike the first trans_index search above it).
// The original then performs an unguarded out-of-bounds grid write when
// an out-of-bounds candidate wins; since Go has no equivalent undefined
// behavior to reproduce, the destination write alone is guarded by an
// in-bounds check so the selection logic matches the source exactly
// while the write stays memory-safe.
func MarkTranslationVectors(mask *DiscretizationMask, translations TranslationTable) {
	dims := mask.Dims

	for i := 0; i < dims[0]; i++ {
		for j := 0; j < dims[1]; j++ {
			for k := 0; k < dims[2]; k++ {
				if mask.At(i, j, k) != 0 {
					continue
				}
				pos := [3]int{i, j, k}
				for _, t := range translations {
					tp := t.Add(pos)
					if inBounds(tp, dims) {
						mask.Set(tp[0], tp[1], tp[2], 1)
					}
				}
			}
		}
	}

	center := [3]int{dims[0] / 2, dims[1] / 2, dims[2] / 2}

	for i := 0; i < dims[0]; i++ {
		for j := 0; j < dims[1]; j++ {
			for k := 0; k < dims[2]; k++ {
				if mask.At(i, j, k) != 1 {
					continue
				}
				pos := [3]int{i, j, k}

				validPositions := make([][3]int, len(translations))
				valid := make([]bool, len(translations))
				for idx, t := range translations {
					tp := t.Add(pos)
					validPositions[idx] = tp
					valid[idx] = inBounds(tp, dims)
				}

				transIndex := -1
				for idx := range translations {
					if valid[idx] {
						tp := validPositions[idx]
						if mask.At(tp[0], tp[1], tp[2]) == 0 {
							transIndex = idx
							break
						}
					}
				}

				if transIndex != -1 {
					mask.Set(i, j, k, int8(-transIndex-1))
					continue
				}

				// Mirrors algorithm.c's second loop literally: it does
				// NOT re-check trans_valid here, so an out-of-bounds
				// translated position can still win the center-distance
				// comparison (the C source then performs an
				// out-of-bounds grid write). We reproduce the selection
				// unfiltered and only guard the destination write itself
				// so an out-of-bounds pick can't panic.
				minCenterDist := sqDist(pos, center)
				for idx := range translations {
					d := sqDist(validPositions[idx], center)
					if d < minCenterDist {
						transIndex = idx
						minCenterDist = d
					}
				}
				if transIndex != -1 {
					tp := validPositions[transIndex]
					if inBounds(tp, dims) {
						mask.Set(tp[0], tp[1], tp[2], 0)
					}
				}
				mask.Set(i, j, k, int8(-transIndex-1))
			}
		}
	}
}

func inBounds(p [3]int, dims Dims) bool {
	return p[0] >= 0 && p[0] < dims[0] && p[1] >= 0 && p[1] < dims[1] && p[2] >= 0 && p[2] < dims[2]
}
