package langton

import (
	"fmt"

	"langton/internal/core"
)

// Rule selects which cell an ant inspects to decide its turn.
type Rule uint8

const (
	// Arrival moves first, then turns on and flips the cell it lands on.
	Arrival Rule = iota
	// Departure turns on and flips the cell it stands on, then moves.
	Departure
)

func (r Rule) String() string {
	switch r {
	case Arrival:
		return "arrival"
	case Departure:
		return "departure"
	default:
		return fmt.Sprintf("rule(%d)", uint8(r))
	}
}

// emitFunc receives draw updates in the order they are produced.
type emitFunc func(core.CellUpdate)

// step advances a single ant by one move under rule r.
func (r Rule) step(a *Ant, g *core.Grid, b Bounds, emit emitFunc) {
	switch r {
	case Departure:
		old := a.Pos
		a.Turn(g.Get(old))
		emit(core.CellUpdate{Index: old, Value: uint8(g.Invert(old))})
		a.Move(b)
		emit(core.CellUpdate{Index: a.Pos, Value: AgentMarker})
	default:
		old := a.Pos
		emit(core.CellUpdate{Index: old, Value: uint8(g.Get(old))})
		a.Move(b)
		a.Turn(g.Get(a.Pos))
		emit(core.CellUpdate{Index: a.Pos, Value: uint8(g.Invert(a.Pos))})
		emit(core.CellUpdate{Index: a.Pos, Value: AgentMarker})
	}
}
