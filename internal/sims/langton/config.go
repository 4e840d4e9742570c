package langton

import (
	"errors"
	"fmt"
)

// Config holds the parameters of a Langton's ant simulation.
type Config struct {
	Width        int
	Height       int
	Ants         int
	StepsPerTick int
	Seed         int64
	Rule         Rule
}

// Validate reports every constraint the configuration violates.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be > 0, got %d", c.Width))
	}
	if c.Height <= 0 {
		errs = append(errs, fmt.Errorf("height must be > 0, got %d", c.Height))
	}
	if c.Ants <= 0 {
		errs = append(errs, fmt.Errorf("ant count must be > 0, got %d", c.Ants))
	}
	if c.StepsPerTick < 1 {
		errs = append(errs, fmt.Errorf("steps per tick must be >= 1, got %d", c.StepsPerTick))
	}
	if c.Rule != Arrival && c.Rule != Departure {
		errs = append(errs, fmt.Errorf("unknown rule %v", c.Rule))
	}
	return errors.Join(errs...)
}
