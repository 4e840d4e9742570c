package langton

import (
	"fmt"
	"image/color"

	"langton/internal/core"
)

// Display values written to Cells and reported through Updates. The first
// two mirror core.Cell; AgentMarker exists only for rendering.
const (
	DisplayUnmarked = uint8(core.Unmarked)
	DisplayMarked   = uint8(core.Marked)
	AgentMarker     = uint8(2)
)

var palette = []color.RGBA{
	DisplayUnmarked: {A: 255},
	DisplayMarked:   {R: 255, G: 255, B: 255, A: 255},
	AgentMarker:     {R: 230, G: 41, B: 55, A: 255},
}

// Simulation owns one grid and a fixed-size set of ants.
type Simulation struct {
	cfg    Config
	grid   *core.Grid
	bounds Bounds
	ants   []Ant
	rng    *core.RNG

	display []uint8
	updates []core.CellUpdate
	tick    uint64
}

// New validates cfg and returns a simulation with freshly placed ants.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("langton config: %w", err)
	}
	grid := core.NewGrid(cfg.Width, cfg.Height)
	s := &Simulation{
		cfg:     cfg,
		grid:    grid,
		bounds:  BoundsOf(grid),
		ants:    make([]Ant, cfg.Ants),
		display: make([]uint8, grid.Area()),
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string {
	if s.cfg.Rule == Departure {
		return "langton-departure"
	}
	return "langton"
}

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Grid exposes the cell state.
func (s *Simulation) Grid() *core.Grid { return s.grid }

// Ants exposes the ant collection in processing order.
func (s *Simulation) Ants() []Ant { return s.ants }

// Tick returns the number of ticks since the last reset.
func (s *Simulation) Tick() uint64 { return s.tick }

// Cells exposes the display buffer.
func (s *Simulation) Cells() []uint8 { return s.display }

// Updates returns the draw updates produced by the last tick.
func (s *Simulation) Updates() []core.CellUpdate { return s.updates }

// Palette maps display values to colors.
func (s *Simulation) Palette() []color.RGBA { return palette }

// Reset clears the grid and places a new set of ants. A non-zero seed
// reseeds the generator; zero continues the current random stream.
func (s *Simulation) Reset(seed int64) {
	if seed != 0 || s.rng == nil {
		s.rng = core.NewRNG(seed)
	}
	s.grid.Reset()
	for i := range s.display {
		s.display[i] = DisplayUnmarked
	}
	area := s.grid.Area()
	for i := range s.ants {
		s.ants[i] = randomAnt(s.rng, area)
		s.display[s.ants[i].Pos] = AgentMarker
	}
	s.updates = s.updates[:0]
	s.tick = 0
}

// Step advances one tick of StepsPerTick moves and records its updates.
func (s *Simulation) Step() {
	s.updates = s.updates[:0]
	s.Advance(s.cfg.StepsPerTick, nil)
	s.tick++
}

// Advance moves every ant, in order, steps times. Each draw update is applied
// to the display buffer, appended to Updates and passed to emit when non-nil.
func (s *Simulation) Advance(steps int, emit func(core.CellUpdate)) {
	if steps < 1 {
		panic(fmt.Sprintf("langton: advance called with %d steps", steps))
	}
	record := func(u core.CellUpdate) {
		s.display[u.Index] = u.Value
		s.updates = append(s.updates, u)
		if emit != nil {
			emit(u)
		}
	}
	for n := 0; n < steps; n++ {
		for i := range s.ants {
			s.cfg.Rule.step(&s.ants[i], s.grid, s.bounds, record)
		}
	}
}

func init() {
	register := func(name string, rule Rule) {
		core.Register(name, func(st core.Settings) (core.Sim, error) {
			sim, err := New(Config{
				Width:        st.Width,
				Height:       st.Height,
				Ants:         st.Ants,
				StepsPerTick: st.StepsPerTick,
				Seed:         st.Seed,
				Rule:         rule,
			})
			if err != nil {
				return nil, err
			}
			return sim, nil
		})
	}
	register("langton", Arrival)
	register("langton-departure", Departure)
}
