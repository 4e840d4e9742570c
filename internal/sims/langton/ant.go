package langton

import "langton/internal/core"

// Bounds is the slice of grid geometry an ant needs to move.
type Bounds struct {
	Width int
	Area  int
}

// BoundsOf returns the movement bounds for g.
func BoundsOf(g *core.Grid) Bounds {
	return Bounds{Width: g.Width(), Area: g.Area()}
}

// Ant is a single agent: a linear grid position and a heading.
type Ant struct {
	Pos int
	Dir Direction
}

// Ahead returns the index one cell along d from pos, wrapping on both axes.
func (b Bounds) Ahead(pos int, d Direction) int {
	switch d {
	case Up:
		return ((pos-b.Width)%b.Area + b.Area) % b.Area
	case Down:
		return (pos + b.Width) % b.Area
	case Right:
		if (pos+1)%b.Width == 0 {
			return pos + 1 - b.Width
		}
		return pos + 1
	case Left:
		if pos%b.Width == 0 {
			return pos - 1 + b.Width
		}
		return pos - 1
	default:
		panic("langton: invalid direction " + d.String())
	}
}

// Move translates the ant one cell along its heading.
func (a *Ant) Move(b Bounds) {
	a.Pos = b.Ahead(a.Pos, a.Dir)
}

// Turn rotates clockwise on an unmarked cell and counter-clockwise on a marked one.
func (a *Ant) Turn(c core.Cell) {
	if c == core.Unmarked {
		a.Dir = a.Dir.Next()
		return
	}
	a.Dir = a.Dir.Prev()
}

func randomAnt(rng *core.RNG, area int) Ant {
	return Ant{
		Pos: rng.IntN(area),
		Dir: Directions[rng.IntN(len(Directions))],
	}
}
