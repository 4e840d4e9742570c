//go:build ebiten

package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"langton/internal/core"
	"langton/internal/render"
	"langton/internal/telemetry"
	"langton/internal/ui"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	perf    *telemetry.Recorder
	logger  *log.Logger

	cellSize int
	tps      int
}

// New constructs a Game for the provided simulation. perf may be nil.
func New(sim core.Sim, ctrl *Controller, cellSize int, perf *telemetry.Recorder, logger *log.Logger) *Game {
	size := sim.Size()
	gp := render.NewGridPainter(size.W, size.H, sim.Palette())
	gp.Sync(sim.Cells())
	g := &Game{
		sim:      sim,
		ctrl:     ctrl,
		painter:  gp,
		perf:     perf,
		logger:   logger,
		cellSize: cellSize,
	}
	g.hud = ui.NewHUD(sim, ctrl, func() map[string]int {
		return map[string]int{KeyTickRate: ctrl.TickRate()}
	})
	g.applyTPS()
	return g
}

// Update polls input, advances the simulation by one tick and paints its updates.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	reset, err := g.ctrl.Apply(pollInput())
	if errors.Is(err, ErrQuit) {
		g.logger.Info("quit requested", "tick", g.tick())
		return ebiten.Termination
	}
	if err != nil {
		return err
	}
	if reset {
		g.painter.Sync(g.sim.Cells())
		if g.perf != nil {
			g.perf.Reset()
		}
	}
	g.hud.Update()
	g.applyTPS()

	start := time.Now()
	g.sim.Step()
	if g.perf != nil {
		if err := g.perf.Observe(g.tick(), time.Since(start)); err != nil {
			return err
		}
	}
	g.painter.Apply(g.sim.Updates())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.cellSize)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.cellSize, s.H * g.cellSize
}

// applyTPS forwards a changed tick rate to ebiten; it takes effect from the next frame.
func (g *Game) applyTPS() {
	if rate := g.ctrl.TickRate(); rate != g.tps {
		g.tps = rate
		ebiten.SetTPS(rate)
	}
}

func (g *Game) tick() uint64 {
	if t, ok := g.sim.(interface{ Tick() uint64 }); ok {
		return t.Tick()
	}
	return 0
}

func pollInput() Input {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	return Input{
		Reset:     inpututil.IsKeyJustPressed(ebiten.KeyR) && !shift,
		Replay:    inpututil.IsKeyJustPressed(ebiten.KeyR) && shift,
		SpeedUp:   inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		SpeedDown: inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Quit: inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			(ebiten.IsKeyPressed(ebiten.KeyMeta) && inpututil.IsKeyJustPressed(ebiten.KeyW)),
	}
}
