// Package persist reads and writes boards as JSON or YAML documents.
//
// What:
//
// A Document is the on-disk shape of a board: the vertex list in canonical
// order, edges as (u, v, count) triples, an optional divisor map, and an
// optional distinguished vertex q. Encode/Decode move documents across
// io.Writer/io.Reader in an explicit Format; Save/Load pick the format
// from the file extension (.json, .yaml, .yml).
//
// Why:
//
// Boards outlive processes: the CLI loads a board, plays or analyzes it,
// and writes the result back. The document deliberately stores vertex
// order, because everything downstream (burning, reduction, enumeration)
// replays in declaration order; a round trip must preserve the game, not
// just the topology.
//
// Conventions:
//
// An omitted edge count means 1, so simple graphs stay terse. An omitted
// divisor means "no chips placed" and loads as a nil divisor, distinct
// from an explicit empty map, which loads as the zero divisor. Duplicate
// vertices, unknown edge endpoints, unknown divisor keys and an unknown q
// are rejected with wrapped sentinels.
//
// Usage:
//
//	g, d, q, err := persist.Load("board.yaml")
//	...
//	err = persist.Save("board.json", g, d, q)
//
// Errors:
//
//	ErrGraphNil       – graph argument is nil
//	ErrUnknownFormat  – extension is neither JSON nor YAML
//	ErrBadDocument    – duplicate vertices or unknown q
//	ErrBadEdge        – malformed or dangling edge triple
//	ErrBadDivisor     – divisor key is not a vertex
package persist
