package langton

import (
	"strconv"

	"langton/internal/core"
)

// Parameters reports the simulation settings and live counters for the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: s.cfg.Rule.String()},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.cfg.Seed, 10)},
			},
		},
		{
			Name: "Ants",
			Params: []core.Parameter{
				intParam("ants", "Ants", len(s.ants)),
				intParam("steps", "Steps per tick", s.cfg.StepsPerTick),
				{Key: "tick", Label: "Tick", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.tick, 10)},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
