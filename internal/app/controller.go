package app

import (
	"errors"

	"github.com/charmbracelet/log"

	"langton/internal/core"
)

// ErrQuit is returned by Controller.Apply when the user asked to exit.
var ErrQuit = errors.New("quit requested")

// KeyTickRate is the HUD parameter key for the tick rate control.
const KeyTickRate = "tick_rate"

// Input is the set of control events polled in one frame.
type Input struct {
	Reset     bool // fresh random layout
	Replay    bool // initial layout again
	SpeedUp   bool
	SpeedDown bool
	Quit      bool
}

// Controller applies polled input to a simulation and owns the tick rate.
type Controller struct {
	sim    core.Sim
	seed   int64
	rate   int
	step   int
	logger *log.Logger
}

// NewController returns a controller starting at the given tick rate.
func NewController(sim core.Sim, seed int64, rate, step int, logger *log.Logger) *Controller {
	if rate < 1 {
		rate = 1
	}
	if step < 1 {
		step = 1
	}
	return &Controller{sim: sim, seed: seed, rate: rate, step: step, logger: logger}
}

// TickRate returns the current target ticks per second.
func (c *Controller) TickRate() int { return c.rate }

// Apply handles one frame of input. It reports whether the simulation was
// reset so the caller can repaint, and returns ErrQuit on a quit request.
func (c *Controller) Apply(in Input) (bool, error) {
	if in.Quit {
		return false, ErrQuit
	}
	reset := false
	switch {
	case in.Replay:
		c.sim.Reset(c.seed)
		c.logger.Info("reset", "layout", "initial", "seed", c.seed)
		reset = true
	case in.Reset:
		c.sim.Reset(0)
		c.logger.Info("reset", "layout", "fresh")
		reset = true
	}
	if in.SpeedUp {
		c.setRate(c.rate + c.step)
	}
	if in.SpeedDown {
		c.setRate(c.rate - c.step)
	}
	return reset, nil
}

// ParameterControls exposes the tick rate to the HUD.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    KeyTickRate,
		Label:  "Tick rate",
		Step:   c.step,
		Min:    1,
		HasMin: true,
	}}
}

// SetIntParameter implements core.IntParameterSetter.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if key != KeyTickRate {
		return false
	}
	c.setRate(value)
	return true
}

func (c *Controller) setRate(rate int) {
	if rate < 1 {
		rate = 1
	}
	if rate == c.rate {
		return
	}
	c.rate = rate
	c.logger.Debug("tick rate changed", "tps", rate)
}
