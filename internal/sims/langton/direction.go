package langton

// Direction is an ant heading. The zero value is Up.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in clockwise order.
var Directions = [...]Direction{Up, Right, Down, Left}

var (
	clockwise        = [...]Direction{Up: Right, Right: Down, Down: Left, Left: Up}
	counterClockwise = [...]Direction{Up: Left, Right: Up, Down: Right, Left: Down}
)

// Next rotates one step clockwise.
func (d Direction) Next() Direction { return clockwise[d] }

// Prev rotates one step counter-clockwise.
func (d Direction) Prev() Direction { return counterClockwise[d] }

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool { return d <= Left }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}
