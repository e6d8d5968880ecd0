package city

import (
	"time"

	"isocity/internal/domain/building"
	"isocity/internal/domain/economy"
	"isocity/internal/domain/placement"
	"isocity/internal/domain/world"
)

type Config struct {
	StartingGold   economy.Gold
	UpkeepRate     economy.Gold
	UpkeepInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		StartingGold:   economy.DefaultStartingGold,
		UpkeepRate:     economy.DefaultUpkeepRate,
		UpkeepInterval: economy.DefaultUpkeepInterval,
	}
}

// City is the complete game state the placement core works on. Grid and
// Ledger change only through Confirm and AdvanceUpkeep; everything else
// reads them.
type City struct {
	Grid       *world.Grid
	Ledger     *economy.Ledger
	Buildings  *building.Registry
	Upkeep     *economy.UpkeepTimer
	UpkeepRate economy.Gold

	mode    placement.Mode
	session *placement.Session
	hover   *world.Point
}

func New(grid *world.Grid, cfg Config) *City {
	if cfg.UpkeepRate < 0 {
		cfg.UpkeepRate = economy.DefaultUpkeepRate
	}
	return &City{
		Grid:       grid,
		Ledger:     economy.NewLedger(cfg.StartingGold),
		Buildings:  building.NewRegistry(),
		Upkeep:     economy.NewUpkeepTimer(cfg.UpkeepInterval),
		UpkeepRate: cfg.UpkeepRate,
		mode:       placement.ModeOff,
	}
}

func (c *City) Mode() placement.Mode { return c.mode }

func (c *City) Session() *placement.Session { return c.session }

func (c *City) Hover() *world.Point {
	if c.hover == nil {
		return nil
	}
	p := *c.hover
	return &p
}

// EnterBuildMode discards any open session and starts a fresh one for t.
func (c *City) EnterBuildMode(t building.Type) {
	c.mode = placement.Transition(c.mode, placement.EventEnterBuildMode)
	c.session = placement.NewSession(t)
	c.refresh()
}

// SetHover records the tile under the cursor; nil means no tile.
func (c *City) SetHover(p *world.Point) {
	if p != nil && !c.Grid.InBounds(*p) {
		p = nil
	}
	if p == nil {
		c.hover = nil
	} else {
		h := *p
		c.hover = &h
	}
	c.refresh()
}

func (c *City) Cancel() bool {
	if c.mode == placement.ModeOff {
		return false
	}
	c.mode = placement.Transition(c.mode, placement.EventCancel)
	c.session = nil
	return true
}

// PlanCommit validates a confirm against current state without mutating it.
func (c *City) PlanCommit() (placement.CommitPlan, placement.RejectReason) {
	if c.mode != placement.ModeOn {
		return placement.CommitPlan{}, placement.RejectNoSession
	}
	return placement.Plan(c.session, c.Grid, c.Ledger, c.Buildings)
}

// ApplyCommit performs a plan returned by PlanCommit and leaves build mode.
func (c *City) ApplyCommit(plan placement.CommitPlan) placement.CommitResult {
	res := placement.Apply(plan, c.Grid, c.Ledger, c.Buildings)
	c.mode = placement.Transition(c.mode, placement.EventCommitted)
	c.session = nil
	return res
}

// Confirm commits the open session. A rejected confirm changes nothing
// except refreshing the session so the player sees current validity.
func (c *City) Confirm() placement.CommitResult {
	plan, reason := c.PlanCommit()
	if reason != placement.RejectNone {
		c.refresh()
		return placement.CommitResult{Reason: reason, Balance: c.Ledger.Balance()}
	}
	return c.ApplyCommit(plan)
}

type UpkeepResult struct {
	Intervals  int
	Occupation economy.Gold
	Paid       economy.Gold
	Balance    economy.Gold

	rest time.Duration
}

// DueUpkeep reports what dt of real time would cost without touching the
// timer or the ledger. Pass the result to PayUpkeep to apply it.
func (c *City) DueUpkeep(dt time.Duration) UpkeepResult {
	n, rest := c.Upkeep.Due(dt)
	occupation := c.Buildings.TotalOccupation()
	return UpkeepResult{
		Intervals:  n,
		Occupation: occupation,
		Paid:       economy.UpkeepDue(occupation, c.UpkeepRate, n),
		Balance:    c.Ledger.Balance(),
		rest:       rest,
	}
}

func (c *City) PayUpkeep(r UpkeepResult) UpkeepResult {
	c.Upkeep.Settle(r.rest)
	if r.Paid != 0 {
		r.Balance = c.Ledger.Debit(r.Paid)
		c.refresh()
	}
	return r
}

func (c *City) AdvanceUpkeep(dt time.Duration) UpkeepResult {
	return c.PayUpkeep(c.DueUpkeep(dt))
}

func (c *City) Preview() placement.Preview {
	return placement.PreviewOf(c.session)
}

func (c *City) refresh() {
	if c.session == nil {
		return
	}
	c.session.SetAnchor(c.hover)
	c.session.Evaluate(c.Grid, c.Ledger.Balance())
}
