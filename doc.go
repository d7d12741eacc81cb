// Package cavcore implements the numerical core of a molecular-cavity
// analysis engine: grid voxelization of atom spheres under periodic
// translations, a spatial hash for neighborhood queries, cavity-domain
// assignment, marching-cubes surface extraction, and cavity-adjacency
// scanning. See SPEC_FULL.md for the complete component breakdown.
package cavcore
