// File: gonality/types.go
// Role: sentinel errors, functional options and the result types shared by
//       the rank, gonality and invariant computations.

package gonality

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors. Wrapped values stay matchable via errors.Is.
var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = errors.New("gonality: graph is nil")

	// ErrDivisorNil is returned when the divisor argument is nil.
	ErrDivisorNil = errors.New("gonality: divisor is nil")

	// ErrEmptyGraph is returned when an invariant needs at least one vertex.
	ErrEmptyGraph = errors.New("gonality: graph has no vertices")

	// ErrDisconnected is returned for invariants that are only defined on
	// connected graphs (genus, gonality, bounds).
	ErrDisconnected = errors.New("gonality: graph is not connected")

	// ErrNegativeDegree is returned when an enumeration degree is below zero.
	ErrNegativeDegree = errors.New("gonality: negative degree")

	// ErrBadPartition is returned for empty or non-positive part sizes in
	// CompleteMultipartiteGonality.
	ErrBadPartition = errors.New("gonality: bad partition")

	// ErrBudgetExceeded is returned when the gonality search hits its degree
	// cap without finding a positive-rank divisor.
	ErrBudgetExceeded = errors.New("gonality: degree budget exceeded")

	// ErrOverflow is returned when ParkingCount would exceed int64.
	ErrOverflow = errors.New("gonality: parking-function count overflows int64")

	// ErrOptionViolation is returned when a functional option is misused.
	ErrOptionViolation = errors.New("gonality: option violation")
)

// Options configures the gonality search. Zero value means "derive the
// degree cap from Bounds".
type Options struct {
	// Ctx aborts a long search when cancelled. Defaults to
	// context.Background().
	Ctx context.Context

	// MaxDegree caps the exhaustive search. 0 means "use Bounds(g).Upper".
	MaxDegree int

	err error // recorded option violation, surfaced on use
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDegree: 0,
	}
}

// WithContext sets the cancellation context for the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithMaxDegree caps the search at degree n. n must be positive; the cap
// replaces the Bounds-derived default entirely, so a cap below the true
// gonality makes the search fail with ErrBudgetExceeded.
func WithMaxDegree(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxDegree must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDegree = n
	}
}

// buildOptions folds opts over the defaults and surfaces a recorded
// violation.
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

// Range brackets the gonality of a graph between proven bounds.
//
// Lower and Upper always hold. The per-theorem fields record which bounds
// contributed; a field is 0 when its theorem does not apply to the graph
// at hand (Trivial and Independence need a simple graph on at least two
// vertices, BrillNoether holds for every connected multigraph).
type Range struct {
	// Lower is the best lower bound: max(1, MinDegree).
	Lower int `json:"lower"`
	// Upper is the tightest applicable upper bound.
	Upper int `json:"upper"`

	// MinDegree is the smallest distinct-neighbor degree. Gonality is at
	// least the treewidth, and the treewidth is at least this degree.
	MinDegree int `json:"min_degree"`
	// Trivial is n-1, an upper bound on simple connected graphs.
	Trivial int `json:"trivial,omitempty"`
	// Independence is n minus the independence number, an upper bound on
	// simple connected graphs.
	Independence int `json:"independence,omitempty"`
	// BrillNoether is floor((genus+3)/2), an upper bound on any connected
	// multigraph.
	BrillNoether int `json:"brill_noether"`
}

// Properties aggregates the invariants of a graph for reporting.
//
// Genus and Gonality are filled only for connected graphs with at least
// one vertex; Gonality stays nil otherwise.
type Properties struct {
	Vertices  int   `json:"vertices"`
	Edges     int64 `json:"edges"`
	Simple    bool  `json:"simple"`
	Connected bool  `json:"connected"`
	Bipartite bool  `json:"bipartite"`
	Regular   bool  `json:"regular"`
	Tree      bool  `json:"tree"`
	Complete  bool  `json:"complete"`

	MinDegree      int64   `json:"min_degree"`
	MaxDegree      int64   `json:"max_degree"`
	DegreeSequence []int64 `json:"degree_sequence"`

	IndependenceNumber  int `json:"independence_number"`
	TreewidthUpperBound int `json:"treewidth_upper_bound"`

	Genus    int    `json:"genus"`
	Gonality *Range `json:"gonality,omitempty"`
}
