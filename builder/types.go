// File: types.go
// Role: sentinel errors, labeling options and the Platonic enum.

package builder

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrBadShape is returned when a size parameter lies outside the
	// family's domain (Cycle(2), Grid(0, 3), ...).
	ErrBadShape = errors.New("builder: bad shape parameter")

	// ErrUnknownSolid is returned for a PlatonicSolid value outside the
	// five-member enum.
	ErrUnknownSolid = errors.New("builder: unknown platonic solid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("builder: invalid option supplied")
)

// Option configures construction via functional arguments.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// Label maps a canonical vertex index to its ID. Defaults to v%d.
	Label func(i int) string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the v%d labeler.
func DefaultOptions() Options {
	return Options{
		Label: func(i int) string { return fmt.Sprintf("v%d", i) },
		err:   nil,
	}
}

// WithLabel replaces the vertex labeler. The function must be
// injective over the indices in play; colliding labels are rejected
// at build time with ErrOptionViolation.
func WithLabel(fn func(i int) string) Option {
	return func(o *Options) {
		if fn != nil {
			o.Label = fn
		}
	}
}

// buildOptions resolves opts into Options and surfaces recorded
// violations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// PlatonicSolid enumerates the five Platonic graph shells.
type PlatonicSolid int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicSolid = iota // V=4,  E=6,  3-regular (K4)
	Cube                              // V=8,  E=12, 3-regular
	Octahedron                        // V=6,  E=12, 4-regular (K_{2,2,2})
	Dodecahedron                      // V=20, E=30, 3-regular
	Icosahedron                       // V=12, E=30, 5-regular
)

// String returns a readable identifier for logs and errors.
func (p PlatonicSolid) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// GonalityRange brackets the gonality of a graph family member.
// Exact means Lower == Upper is the proven value, not just a bound.
type GonalityRange struct {
	Lower int
	Upper int
	Exact bool
}
