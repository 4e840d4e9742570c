package core

import "fmt"

// Cell is the two-valued state stored for every grid position.
type Cell uint8

const (
	// Unmarked cells render black.
	Unmarked Cell = iota
	// Marked cells render white.
	Marked
)

// Inverted returns the opposite state.
func (c Cell) Inverted() Cell {
	if c == Unmarked {
		return Marked
	}
	return Unmarked
}

func (c Cell) String() string {
	if c == Marked {
		return "marked"
	}
	return "unmarked"
}

// Grid stores a toroidal 2D grid of cells in row-major order.
type Grid struct {
	w, h int
	data []Cell
}

// NewGrid allocates an all-unmarked grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, data: make([]Cell, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Area returns the number of cells.
func (g *Grid) Area() int { return len(g.data) }

// Index returns the linear index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Coords converts a linear index back to (x, y).
func (g *Grid) Coords(i int) (int, int) { return i % g.w, i / g.w }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Get returns the state at index i.
func (g *Grid) Get(i int) Cell {
	g.check(i)
	return g.data[i]
}

// Invert flips the state at index i and returns the new state.
func (g *Grid) Invert(i int) Cell {
	g.check(i)
	g.data[i] = g.data[i].Inverted()
	return g.data[i]
}

// Reset marks every cell as Unmarked.
func (g *Grid) Reset() {
	for i := range g.data {
		g.data[i] = Unmarked
	}
}

// Count returns how many cells hold the given state.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.data {
		if v == c {
			n++
		}
	}
	return n
}

// check panics on indices that escaped wraparound; those are logic bugs.
func (g *Grid) check(i int) {
	if i < 0 || i >= len(g.data) {
		panic(fmt.Sprintf("core: grid index %d out of range [0, %d)", i, len(g.data)))
	}
}
