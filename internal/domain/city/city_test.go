package city

import (
	"testing"
	"time"

	"isocity/internal/domain/building"
	"isocity/internal/domain/economy"
	"isocity/internal/domain/placement"
	"isocity/internal/domain/world"
)

func newTestCity(t *testing.T, size int, gold economy.Gold) *City {
	t.Helper()
	cfg := DefaultConfig()
	cfg.StartingGold = gold
	return New(world.NewGrid(size, size), cfg)
}

func TestCity_PlaceTheatreScenario(t *testing.T) {
	c := newTestCity(t, 4, 1000)
	c.EnterBuildMode(building.Theatre)
	c.SetHover(&world.Point{X: 0, Y: 0})

	if p := c.Preview(); !p.CanPlace || p.Color != placement.ColorGreen {
		t.Fatalf("expected green preview, got %+v", p)
	}
	res := c.Confirm()
	if !res.Committed {
		t.Fatalf("expected commit, got %q", res.Reason)
	}
	if c.Ledger.Balance() != 990 {
		t.Fatalf("expected 990 gold, got %d", c.Ledger.Balance())
	}
	if c.Mode() != placement.ModeOff || c.Session() != nil {
		t.Fatalf("expected build mode off after commit")
	}
	if c.Preview().Active {
		t.Fatalf("expected inactive preview after commit")
	}
}

func TestCity_RejectedConfirmKeepsSession(t *testing.T) {
	c := newTestCity(t, 4, 1000)
	c.EnterBuildMode(building.Theatre)
	c.SetHover(&world.Point{X: 0, Y: 0})
	c.Grid.SetOccupant(world.Point{X: 1, Y: 0}, 42)

	res := c.Confirm()
	if res.Committed || res.Reason != placement.RejectStale {
		t.Fatalf("expected stale rejection, got %+v", res)
	}
	if c.Mode() != placement.ModeOn || c.Session() == nil {
		t.Fatalf("expected session kept open after race")
	}
	if c.Session().CanPlace {
		t.Fatalf("expected session refreshed to not placeable")
	}
	if c.Ledger.Balance() != 1000 || c.Buildings.Len() != 0 {
		t.Fatalf("expected no state change")
	}
}

func TestCity_ConfirmOutsideBuildMode(t *testing.T) {
	c := newTestCity(t, 4, 1000)
	if res := c.Confirm(); res.Committed || res.Reason != placement.RejectNoSession {
		t.Fatalf("expected no_session, got %+v", res)
	}
}

func TestCity_CancelDiscardsSession(t *testing.T) {
	c := newTestCity(t, 4, 1000)
	if c.Cancel() {
		t.Fatalf("cancel while off should report false")
	}
	c.EnterBuildMode(building.Theatre)
	c.SetHover(&world.Point{X: 1, Y: 1})
	if !c.Cancel() {
		t.Fatalf("expected cancel to close session")
	}
	if c.Mode() != placement.ModeOff || c.Session() != nil {
		t.Fatalf("expected mode off without session")
	}
	if c.Ledger.Balance() != 1000 {
		t.Fatalf("cancel must not move gold")
	}
}

func TestCity_HoverOutsideGridClears(t *testing.T) {
	c := newTestCity(t, 4, 1000)
	c.EnterBuildMode(building.Theatre)
	c.SetHover(&world.Point{X: 10, Y: 10})
	if c.Hover() != nil || c.Session().CanPlace {
		t.Fatalf("expected out-of-grid hover to read as none")
	}
}

func TestCity_UpkeepDebitsPerInterval(t *testing.T) {
	c := newTestCity(t, 4, 1000)
	c.EnterBuildMode(building.Theatre)
	c.SetHover(&world.Point{X: 0, Y: 0})
	c.Confirm()

	var paid economy.Gold
	for i := 0; i < 6; i++ {
		paid += c.AdvanceUpkeep(time.Second).Paid
	}
	if paid != 0 || c.Ledger.Balance() != 990 {
		t.Fatalf("expected nothing paid before 7s, got %d", paid)
	}
	r := c.AdvanceUpkeep(time.Second)
	if r.Intervals != 1 || r.Paid != 120 || c.Ledger.Balance() != 870 {
		t.Fatalf("expected one payment of 120, got %+v balance=%d", r, c.Ledger.Balance())
	}
}

func TestCity_UpkeepCanGoNegativeAndRefreshesSession(t *testing.T) {
	c := newTestCity(t, 6, 130)
	c.EnterBuildMode(building.Theatre)
	c.SetHover(&world.Point{X: 0, Y: 0})
	c.Confirm()

	c.EnterBuildMode(building.Theatre)
	c.SetHover(&world.Point{X: 3, Y: 3})
	if !c.Session().CanPlace {
		t.Fatalf("expected second theatre affordable at 120 gold")
	}
	c.AdvanceUpkeep(7 * time.Second)
	if c.Ledger.Balance() != 0 {
		t.Fatalf("expected balance 0, got %d", c.Ledger.Balance())
	}
	if c.Session().CanPlace {
		t.Fatalf("expected session invalidated by upkeep debit")
	}
	c.AdvanceUpkeep(7 * time.Second)
	if c.Ledger.Balance() != -120 {
		t.Fatalf("expected negative balance -120, got %d", c.Ledger.Balance())
	}
}

func TestCity_StepValidatesBeforeConfirm(t *testing.T) {
	c := newTestCity(t, 4, 1000)
	theatre := building.Theatre
	out := c.Step(Input{Enter: &theatre, HoverSet: true, Hover: &world.Point{X: 2, Y: 2}, Confirm: true}, 0)
	if out.Commit == nil || !out.Commit.Committed {
		t.Fatalf("expected same-step hover and confirm to commit, got %+v", out.Commit)
	}
	if out.Commit.Building.Anchor != (world.Point{X: 2, Y: 2}) {
		t.Fatalf("unexpected anchor %v", out.Commit.Building.Anchor)
	}
	if out.Preview.Active {
		t.Fatalf("expected preview inactive after commit")
	}

	paused := true
	out = c.Step(Input{TimePaused: &paused}, time.Minute)
	if out.Upkeep.Intervals != 0 {
		t.Fatalf("expected paused step to skip upkeep")
	}
}
