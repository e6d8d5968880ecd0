package city

import (
	"time"

	"isocity/internal/domain/building"
	"isocity/internal/domain/placement"
	"isocity/internal/domain/world"
)

// Input is everything the host layer reports for one step. Each action kind
// appears at most once.
type Input struct {
	Enter      *building.Type
	Cancel     bool
	HoverSet   bool
	Hover      *world.Point
	Confirm    bool
	TimePaused *bool
}

type StepResult struct {
	Commit  *placement.CommitResult
	Upkeep  UpkeepResult
	Preview placement.Preview
}

// Step runs one simulation tick: mode changes, hover, validation, confirm,
// then upkeep. Validation always happens before the confirm it guards.
func (c *City) Step(in Input, dt time.Duration) StepResult {
	var out StepResult
	if in.Cancel {
		c.Cancel()
	}
	if in.Enter != nil {
		c.EnterBuildMode(*in.Enter)
	}
	if in.HoverSet {
		c.SetHover(in.Hover)
	} else {
		c.refresh()
	}
	if in.Confirm {
		res := c.Confirm()
		out.Commit = &res
	}
	if in.TimePaused != nil {
		c.Upkeep.SetPaused(*in.TimePaused)
	}
	out.Upkeep = c.AdvanceUpkeep(dt)
	out.Preview = c.Preview()
	return out
}
