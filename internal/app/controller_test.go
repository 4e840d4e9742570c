package app

import (
	"errors"
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"langton/internal/core"
)

type fakeSim struct {
	resets []int64
}

func (f *fakeSim) Name() string { return "fake" }
func (f *fakeSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (f *fakeSim) Reset(seed int64) { f.resets = append(f.resets, seed) }
func (f *fakeSim) Step() {}
func (f *fakeSim) Cells() []uint8 { return []uint8{0} }
func (f *fakeSim) Updates() []core.CellUpdate { return nil }
func (f *fakeSim) Palette() []color.RGBA { return nil }

func newTestController(sim core.Sim, rate int) *Controller {
	return NewController(sim, 42, rate, 5, log.New(io.Discard))
}

func TestSpeedDownFloorsAtOne(t *testing.T) {
	tests := []struct {
		start, want int
	}{
		{60, 55},
		{6, 1},
		{5, 1},
		{3, 1},
		{1, 1},
	}
	for _, tt := range tests {
		c := newTestController(&fakeSim{}, tt.start)
		if _, err := c.Apply(Input{SpeedDown: true}); err != nil {
			t.Fatal(err)
		}
		if c.TickRate() != tt.want {
			t.Errorf("speed down from %d = %d, want %d", tt.start, c.TickRate(), tt.want)
		}
	}
}

func TestSpeedUpAddsStep(t *testing.T) {
	c := newTestController(&fakeSim{}, 1)
	c.Apply(Input{SpeedUp: true})
	c.Apply(Input{SpeedUp: true})
	if c.TickRate() != 11 {
		t.Fatalf("tick rate = %d, want 11", c.TickRate())
	}
}

func TestResetRequests(t *testing.T) {
	sim := &fakeSim{}
	c := newTestController(sim, 60)

	reset, err := c.Apply(Input{Reset: true})
	if err != nil || !reset {
		t.Fatalf("Apply(Reset) = %v, %v", reset, err)
	}
	reset, _ = c.Apply(Input{Replay: true})
	if !reset {
		t.Fatal("replay should report a reset")
	}
	reset, _ = c.Apply(Input{})
	if reset {
		t.Fatal("empty input should not reset")
	}
	if len(sim.resets) != 2 || sim.resets[0] != 0 || sim.resets[1] != 42 {
		t.Fatalf("resets = %v, want [0 42]", sim.resets)
	}
}

func TestQuitStopsBeforeOtherInput(t *testing.T) {
	sim := &fakeSim{}
	c := newTestController(sim, 60)
	_, err := c.Apply(Input{Quit: true, Reset: true, SpeedUp: true})
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
	if len(sim.resets) != 0 || c.TickRate() != 60 {
		t.Fatal("quit frame should not apply other input")
	}
}

func TestHUDSetterUsesFloor(t *testing.T) {
	c := newTestController(&fakeSim{}, 10)
	if c.SetIntParameter("other", 3) {
		t.Fatal("unknown key accepted")
	}
	if !c.SetIntParameter(KeyTickRate, -4) || c.TickRate() != 1 {
		t.Fatalf("tick rate = %d, want 1", c.TickRate())
	}
}
