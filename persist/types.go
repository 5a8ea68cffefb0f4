// File: persist/types.go
// Role: the document schema, formats and sentinel errors.

package persist

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = errors.New("persist: graph is nil")

	// ErrUnknownFormat is returned for extensions other than .json, .yaml
	// and .yml.
	ErrUnknownFormat = errors.New("persist: unknown format")

	// ErrBadDocument is returned for structural defects: duplicate
	// vertices or a distinguished vertex that is not in the graph.
	ErrBadDocument = errors.New("persist: bad document")

	// ErrBadEdge is returned for malformed or dangling edge triples.
	ErrBadEdge = errors.New("persist: bad edge")

	// ErrBadDivisor is returned when a divisor key is not a vertex.
	ErrBadDivisor = errors.New("persist: bad divisor")
)

// Format selects the wire encoding.
type Format int

const (
	// FormatJSON is indented JSON.
	FormatJSON Format = iota
	// FormatYAML is YAML.
	FormatYAML
)

// String names the format for error messages.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFromPath derives the format from the file extension, case
// insensitively: .json, .yaml or .yml.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// EdgeDoc is one edge triple. A zero Count means a single edge, so simple
// graphs serialize without the field.
type EdgeDoc struct {
	U     string `json:"u" yaml:"u"`
	V     string `json:"v" yaml:"v"`
	Count int64  `json:"count,omitempty" yaml:"count,omitempty"`
}

// Document is the on-disk shape of a board. Vertex order is significant
// and round-trips: the loaded graph declares vertices in document order.
type Document struct {
	Vertices []string         `json:"vertices" yaml:"vertices"`
	Edges    []EdgeDoc        `json:"edges,omitempty" yaml:"edges,omitempty"`
	Divisor  map[string]int64 `json:"divisor,omitempty" yaml:"divisor,omitempty"`
	Q        string           `json:"q,omitempty" yaml:"q,omitempty"`
}
