// Package builder constructs the standard graph families chip-firing
// work keeps reaching for: complete graphs, cycles, paths, stars,
// grids, complete multipartite graphs and the five Platonic solids.
//
// Every factory returns a fresh core.Graph with vertices declared in a
// documented canonical order, so divisors, burning traces and firing
// scripts built on top of these graphs replay identically run to run.
// Vertex labels default to v0, v1, ... and can be reshaped with
// WithLabel.
//
// The Platonic edge tables are fixed data, one canonical labeling per
// solid (the octahedron is exactly the complete tripartite K_{2,2,2}).
// PlatonicGonality reports the known gonality of each solid, exact
// where the literature pins it and as a sound bracket otherwise.
//
// Errors
//
//   - ErrBadShape        – a size parameter outside the family's domain.
//   - ErrUnknownSolid    – a PlatonicSolid value outside the enum.
//   - ErrOptionViolation – invalid option value.
package builder
