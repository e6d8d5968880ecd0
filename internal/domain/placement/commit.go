package placement

import (
	"isocity/internal/domain/building"
	"isocity/internal/domain/economy"
	"isocity/internal/domain/world"
)

type RejectReason string

const (
	RejectNone        RejectReason = ""
	RejectNoSession   RejectReason = "no_session"
	RejectCannotPlace RejectReason = "cannot_place"
	RejectStale       RejectReason = "stale"
)

type CommitPlan struct {
	Building building.Building
	Cost     economy.Gold
}

type CommitResult struct {
	Committed bool
	Reason    RejectReason
	Building  building.Building
	Balance   economy.Gold
}

// Plan checks every commit precondition against current state without
// changing anything. The last evaluation must have allowed placement and
// every covered tile and the balance must still hold up, since state may
// have moved since the session was evaluated.
func Plan(s *Session, grid *world.Grid, ledger *economy.Ledger, registry *building.Registry) (CommitPlan, RejectReason) {
	if s == nil {
		return CommitPlan{}, RejectNoSession
	}
	if !s.CanPlace || s.Anchor == nil {
		return CommitPlan{}, RejectCannotPlace
	}
	if len(s.Covered) != s.Type.Footprint().Area() {
		return CommitPlan{}, RejectStale
	}
	for _, p := range s.Covered {
		if !grid.MustTile(p).Qualifies() {
			return CommitPlan{}, RejectStale
		}
	}
	cost := s.Type.Cost()
	if !ledger.CanAfford(cost) {
		return CommitPlan{}, RejectStale
	}
	return CommitPlan{
		Building: building.Building{
			ID:      registry.NextID(),
			Type:    s.Type,
			Anchor:  *s.Anchor,
			Covered: append([]world.Point(nil), s.Covered...),
		},
		Cost: cost,
	}, RejectNone
}

// Apply performs a plan produced by Plan against the same unchanged state.
func Apply(plan CommitPlan, grid *world.Grid, ledger *economy.Ledger, registry *building.Registry) CommitResult {
	registry.Add(plan.Building)
	for _, p := range plan.Building.Covered {
		grid.SetOccupant(p, plan.Building.ID)
	}
	balance := ledger.Debit(plan.Cost)
	return CommitResult{Committed: true, Building: plan.Building, Balance: balance}
}

func Commit(s *Session, grid *world.Grid, ledger *economy.Ledger, registry *building.Registry) CommitResult {
	plan, reason := Plan(s, grid, ledger, registry)
	if reason != RejectNone {
		return CommitResult{Reason: reason, Balance: ledger.Balance()}
	}
	return Apply(plan, grid, ledger, registry)
}
