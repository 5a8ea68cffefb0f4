// File: platonic.go
// Role: fixed edge tables for the five Platonic graph shells and the
// known gonality of each.
//
// One canonical labeling per solid. The tables are data, not code:
// changing an entry changes the public contract, so every burning
// trace and test fixture built on a solid stays reproducible.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chipfire/core"
)

// chord is an unordered index pair inside a fixed edge table.
type chord struct{ u, v int }

// platonicVertexCount maps each solid to its shell size.
var platonicVertexCount = map[PlatonicSolid]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicEdges maps each solid to its canonical shell, chords with
// u < v sorted lexicographically within each layout block.
var platonicEdges = map[PlatonicSolid][]chord{
	// Tetrahedron: the complete graph K4.
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},

	// Cube: bottom face 0-1-2-3, top face 4-5-6-7, verticals i to i+4.
	Cube: {
		{0, 1}, {1, 2}, {2, 3}, {0, 3},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	},

	// Octahedron: poles 0 and 1, equator 2-3-4-5. Each pole sees the
	// whole equator; opposite equator vertices (2,3) and (4,5) stay
	// apart. Exactly K_{2,2,2} with parts {0,1}, {2,3}, {4,5}.
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	},

	// Dodecahedron: top pentagon 0-4, bottom pentagon 5-9, middle
	// 10-ring, top spokes to even ring slots and bottom spokes to odd
	// ones. 3-regular on 20 vertices.
	Dodecahedron: {
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
		{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
		{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
		{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
	},

	// Icosahedron: pole 0 over ring 1-5, pole 11 under ring 6-10,
	// ring cycles plus the zigzag cross band. 5-regular on 12 vertices.
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	},
}

// Platonic builds the canonical shell of the given solid.
// Complexity: O(V + E) of the solid.
// Errors: ErrUnknownSolid, ErrOptionViolation.
func Platonic(solid PlatonicSolid, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	n, ok := platonicVertexCount[solid]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSolid, int(solid))
	}

	g := core.NewGraph()
	ids, err := addVertices(g, n, o)
	if err != nil {
		return nil, err
	}
	for _, c := range platonicEdges[solid] {
		if err = connect(g, ids[c.u], ids[c.v]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// PlatonicGonality returns the gonality of the solid's shell.
//
// Exact values: the tetrahedron is K4 (complete graphs have gonality
// n-1), the cube is the 3-hypercube (gonality 2^(d-1) by the product
// formula), and the octahedron is K_{2,2,2} (complete multipartite
// graphs have gonality n minus the largest part). For the remaining
// two solids only the sound bracket is reported: minimum degree from
// below (degree <= treewidth <= gonality) and the tighter of n-1,
// n minus the independence number, and the Brill-Noether ceiling
// (genus+3)/2 from above.
func PlatonicGonality(solid PlatonicSolid) (GonalityRange, error) {
	switch solid {
	case Tetrahedron:
		return GonalityRange{Lower: 3, Upper: 3, Exact: true}, nil
	case Cube:
		return GonalityRange{Lower: 4, Upper: 4, Exact: true}, nil
	case Octahedron:
		return GonalityRange{Lower: 4, Upper: 4, Exact: true}, nil
	case Dodecahedron:
		return GonalityRange{Lower: 3, Upper: 7, Exact: false}, nil
	case Icosahedron:
		return GonalityRange{Lower: 5, Upper: 9, Exact: false}, nil
	default:
		return GonalityRange{}, fmt.Errorf("%w: %d", ErrUnknownSolid, int(solid))
	}
}
