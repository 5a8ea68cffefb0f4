// File: game.go
// Role: the DollarGame session type, its sandbox moves and its
// analysis delegations.

package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/dhar"
	"github.com/katalvlaran/chipfire/divisor"
)

// DollarGame is one play session: a fixed graph plus the chip
// configuration as it evolves move by move.
type DollarGame struct {
	id     string
	g      *core.Graph
	cur    *divisor.Divisor
	logger *zap.SugaredLogger
}

// NewDollarGame opens a session over g. A nil initial divisor starts
// the all-zero board; a non-nil one must be built over exactly g and
// is copied, so later moves never touch the caller's value.
// Errors: ErrGraphNil, ErrOptionViolation, divisor.ErrGraphMismatch.
func NewDollarGame(g *core.Graph, initial *divisor.Divisor, opts ...Option) (*DollarGame, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var cur *divisor.Divisor
	var err error
	if initial == nil {
		cur, err = divisor.NewDivisor(g, nil)
		if err != nil {
			return nil, fmt.Errorf("game: zero board: %w", err)
		}
	} else {
		if initial.Graph() != g {
			return nil, fmt.Errorf("game: initial divisor: %w", divisor.ErrGraphMismatch)
		}
		cur = initial.Clone()
	}

	id := uuid.New().String()
	logger := o.Logger.Named("game").With("session", id)
	logger.Debugw("session opened",
		"vertices", g.VertexCount(), "degree", cur.Degree())

	return &DollarGame{id: id, g: g, cur: cur, logger: logger}, nil
}

// ID returns the session's uuid.
func (dg *DollarGame) ID() string { return dg.id }

// Graph returns the board's graph.
func (dg *DollarGame) Graph() *core.Graph { return dg.g }

// FireVertex sends one chip along every edge out of v.
func (dg *DollarGame) FireVertex(v string) (*divisor.Divisor, error) {
	s, err := divisor.NewScript(dg.g)
	if err != nil {
		return nil, err
	}
	if err = s.FireOne(v); err != nil {
		return nil, err
	}
	next, err := dg.applyMove(s)
	if err != nil {
		return nil, err
	}
	dg.logger.Debugw("vertex fired", "vertex", v, "state", dg.cur.String())

	return next, nil
}

// BorrowVertex pulls one chip along every edge into v.
func (dg *DollarGame) BorrowVertex(v string) (*divisor.Divisor, error) {
	s, err := divisor.NewScript(dg.g)
	if err != nil {
		return nil, err
	}
	if err = s.BorrowOne(v); err != nil {
		return nil, err
	}
	next, err := dg.applyMove(s)
	if err != nil {
		return nil, err
	}
	dg.logger.Debugw("vertex borrowed", "vertex", v, "state", dg.cur.String())

	return next, nil
}

// FireSet fires every vertex of set simultaneously. Chips moving along
// edges inside the set cancel, so only the boundary changes hands.
func (dg *DollarGame) FireSet(set []string) (*divisor.Divisor, error) {
	s, err := divisor.NewScript(dg.g)
	if err != nil {
		return nil, err
	}
	if err = s.FireSet(set); err != nil {
		return nil, err
	}
	next, err := dg.applyMove(s)
	if err != nil {
		return nil, err
	}
	dg.logger.Debugw("set fired", "set", set, "state", dg.cur.String())

	return next, nil
}

// applyMove commits the script to the session state and hands back a
// snapshot of the new board.
func (dg *DollarGame) applyMove(s *divisor.Script) (*divisor.Divisor, error) {
	next, err := dg.cur.ApplyScript(s)
	if err != nil {
		return nil, err
	}
	dg.cur = next

	return dg.cur.Clone(), nil
}

// CurrentState returns a snapshot of the board.
func (dg *DollarGame) CurrentState() *divisor.Divisor { return dg.cur.Clone() }

// Degree returns the total chip count, invariant across all moves.
func (dg *DollarGame) Degree() int64 { return dg.cur.Degree() }

// IsEffective reports whether every vertex is out of debt.
func (dg *DollarGame) IsEffective() bool { return dg.cur.IsEffective() }

// InDebt lists the negative vertices in declaration order.
func (dg *DollarGame) InDebt() []string { return dg.cur.InDebt() }

// IsWinnable decides whether some play clears all debt from the
// current state.
func (dg *DollarGame) IsWinnable() (bool, error) {
	ok, err := dhar.IsWinnable(dg.cur)
	if err != nil {
		return false, err
	}
	dg.logger.Debugw("winnability checked", "winnable", ok)

	return ok, nil
}

// WinningStrategy returns a script that clears the current state, or
// found=false when the session is unwinnable.
func (dg *DollarGame) WinningStrategy() (*dhar.Strategy, bool, error) {
	return dhar.WinningStrategy(dg.cur)
}

// Reduced returns the q-reduced form of the current state. An empty q
// selects the first declared vertex.
func (dg *DollarGame) Reduced(q string) (*dhar.ReduceResult, error) {
	if q == "" && dg.g.VertexCount() > 0 {
		q = dg.g.Vertices()[0]
	}

	return dhar.Reduce(dg.cur, q)
}
