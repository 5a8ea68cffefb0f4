// File: persist/persist.go
// Role: document capture, materialization and the four I/O entry points.

package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

// NewDocument captures a board as a serializable document. d and q are
// optional: a nil d omits the divisor and an empty q omits the
// distinguished vertex. A non-empty q must name a vertex of g, and d must
// live on g itself.
func NewDocument(g *core.Graph, d *divisor.Divisor, q string) (*Document, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if d != nil && d.Graph() != g {
		return nil, fmt.Errorf("persist: divisor: %w", divisor.ErrGraphMismatch)
	}
	if q != "" && !g.HasVertex(q) {
		return nil, fmt.Errorf("%w: q %q is not a vertex", ErrBadDocument, q)
	}

	doc := &Document{
		Vertices: g.Vertices(),
		Q:        q,
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{U: e.U, V: e.V, Count: e.Count})
	}
	if d != nil {
		doc.Divisor = d.ToMap()
	}
	return doc, nil
}

// Materialize rebuilds the live board the document describes. The divisor
// is nil when the document has none; an explicit empty divisor map loads
// as the zero divisor.
func (doc *Document) Materialize() (*core.Graph, *divisor.Divisor, string, error) {
	// 1) Vertices in document order. AddVertex is idempotent, so a
	//    duplicate would silently collapse; the count check catches it.
	g := core.NewGraph()
	for i, v := range doc.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, nil, "", fmt.Errorf("persist: vertices: %w", err)
		}
		if g.VertexCount() != i+1 {
			return nil, nil, "", fmt.Errorf("%w: duplicate vertex %q", ErrBadDocument, v)
		}
	}

	// 2) Edge triples; an omitted count means a single edge.
	for _, e := range doc.Edges {
		count := e.Count
		if count == 0 {
			count = 1
		}
		if count < 0 {
			return nil, nil, "", fmt.Errorf("%w: {%s,%s} count %d", ErrBadEdge, e.U, e.V, e.Count)
		}
		if !g.HasVertex(e.U) || !g.HasVertex(e.V) {
			return nil, nil, "", fmt.Errorf("%w: {%s,%s} has an unknown endpoint", ErrBadEdge, e.U, e.V)
		}
		if err := g.AddEdge(e.U, e.V, count); err != nil {
			return nil, nil, "", fmt.Errorf("%w: {%s,%s}: %v", ErrBadEdge, e.U, e.V, err)
		}
	}

	// 3) Optional divisor; every key must be a vertex.
	var d *divisor.Divisor
	if doc.Divisor != nil {
		for k := range doc.Divisor {
			if !g.HasVertex(k) {
				return nil, nil, "", fmt.Errorf("%w: key %q is not a vertex", ErrBadDivisor, k)
			}
		}
		var err error
		if d, err = divisor.NewDivisor(g, doc.Divisor); err != nil {
			return nil, nil, "", fmt.Errorf("persist: divisor: %w", err)
		}
	}

	// 4) Optional distinguished vertex.
	if doc.Q != "" && !g.HasVertex(doc.Q) {
		return nil, nil, "", fmt.Errorf("%w: q %q is not a vertex", ErrBadDocument, doc.Q)
	}
	return g, d, doc.Q, nil
}

// Encode writes the board to w. JSON is indented with a trailing newline;
// YAML uses the yaml.v3 defaults.
func Encode(w io.Writer, f Format, g *core.Graph, d *divisor.Divisor, q string) error {
	doc, err := NewDocument(g, d, q)
	if err != nil {
		return err
	}
	var data []byte
	switch f {
	case FormatJSON:
		if data, err = json.MarshalIndent(doc, "", "  "); err != nil {
			return fmt.Errorf("persist: encode json: %w", err)
		}
		data = append(data, '\n')
	case FormatYAML:
		if data, err = yaml.Marshal(doc); err != nil {
			return fmt.Errorf("persist: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("persist: write: %w", err)
	}
	return nil
}

// Decode reads one document from r and materializes it.
func Decode(r io.Reader, f Format) (*core.Graph, *divisor.Divisor, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, "", fmt.Errorf("persist: read: %w", err)
	}
	var doc Document
	switch f {
	case FormatJSON:
		if err = json.Unmarshal(data, &doc); err != nil {
			return nil, nil, "", fmt.Errorf("persist: decode json: %w", err)
		}
	case FormatYAML:
		if err = yaml.Unmarshal(data, &doc); err != nil {
			return nil, nil, "", fmt.Errorf("persist: decode yaml: %w", err)
		}
	default:
		return nil, nil, "", fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	return doc.Materialize()
}

// Save writes the board to path, format chosen by the extension.
func Save(path string, g *core.Graph, d *divisor.Divisor, q string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist: save: %w", err)
	}
	if err = Encode(file, f, g, d, q); err != nil {
		_ = file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("persist: save: %w", err)
	}
	return nil
}

// Load reads a board from path, format chosen by the extension.
func Load(path string) (*core.Graph, *divisor.Divisor, string, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, "", err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, "", fmt.Errorf("persist: load: %w", err)
	}
	defer file.Close()

	return Decode(file, f)
}
