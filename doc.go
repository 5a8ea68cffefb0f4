// Package chipfire is an in-memory toolkit for chip-firing games on
// multigraphs: divisors, Laplacians, Dhar's burning algorithm and the
// dollar game, with winnability, rank and gonality on top.
//
// 🚀 What is chipfire?
//
//	A small, focused library that brings together:
//		• Core primitives: undirected multigraphs with stable vertex order
//		• Matrix views: integer Laplacian & reduced Laplacian
//		• Divisor algebra: chip counts, firing scripts, linear equivalence
//		• Dhar's algorithm: legal firing sets, q-reduced forms, winnability
//		• Greedy play: the naive borrow-out-of-debt solver
//		• Game sessions: fire, borrow and inspect a running dollar game
//		• Invariants: rank, gonality, sound gonality bounds
//		• Shapes: cycles, grids, complete multipartite & Platonic solids
//
// ✨ Why choose chipfire?
//
//   - Exact arithmetic: every quantity is an integer, no float drift
//   - Deterministic: vertex declaration order drives every iteration
//   - Pure functions where it matters: Dhar never mutates its inputs
//   - Extensible: burn/fire hooks (OnBurn, OnFire…) for custom tooling
//
// Under the hood, everything is organized into small subpackages:
//
//	core/     — multigraph type: vertices, weighted edges, connectivity
//	matrix/   — Laplacian and reduced Laplacian over a core.Graph
//	divisor/  — Divisor and Script algebra on a fixed graph
//	dhar/     — burning algorithm, q-reduction, winnability, equivalence
//	greedy/   — simple greedy winnability heuristic
//	game/     — stateful dollar-game session with structured logging
//	builder/  — graph factories: paths, cycles, grids, Platonic solids
//	gonality/ — rank, gonality, graph invariants & parking functions
//	layout/   — render-ready JSON model of a game position
//	persist/  — load & save games as JSON or YAML documents
//	config/   — CLI configuration via environment and TOML files
//
// Quick ASCII example:
//
//	    A───B        divisor (2,-1,-1) on the triangle:
//	     ╲ ╱         fire A once and every vertex is out of debt,
//	      C          so the position is winnable.
//
// Dive into README.md for the game rules, worked examples and the
// command-line interface.
//
//	go get github.com/katalvlaran/chipfire
package chipfire
