package core

import (
	"fmt"
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// CellUpdate is a single draw instruction: paint Index with palette entry Value.
type CellUpdate struct {
	Index int
	Value uint8
}

// Sim defines the contract the renderer and controller drive once per frame.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
	Updates() []CellUpdate
	Palette() []color.RGBA
}

// Settings carries the validated values a Factory needs to build a Sim.
type Settings struct {
	Width        int
	Height       int
	Ants         int
	StepsPerTick int
	Seed         int64
}

// Factory constructs a Sim from validated settings.
type Factory func(s Settings) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up name in the registry and constructs the Sim.
func Build(name string, s Settings) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", name, Names())
	}
	return f(s)
}
