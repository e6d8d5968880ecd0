package placement

import (
	"isocity/internal/domain/building"
	"isocity/internal/domain/economy"
	"isocity/internal/domain/world"
)

// Session is an unconfirmed placement of one building type. Covered holds
// the qualifying tiles of the last evaluation and is only meaningful for
// commit when CanPlace is true.
type Session struct {
	Type     building.Type
	Anchor   *world.Point
	Covered  []world.Point
	CanPlace bool
}

func NewSession(t building.Type) *Session {
	return &Session{Type: t}
}

func (s *Session) SetAnchor(p *world.Point) {
	if p == nil {
		s.Anchor = nil
		return
	}
	anchor := *p
	s.Anchor = &anchor
}

// Evaluate recomputes Covered and CanPlace from the grid and balance. It
// reads both and writes neither.
func (s *Session) Evaluate(grid *world.Grid, balance economy.Gold) {
	s.Covered = nil
	s.CanPlace = false
	if s.Anchor == nil || balance < s.Type.Cost() {
		return
	}

	size := s.Type.Footprint()
	covered := make([]world.Point, 0, size.Area())
	for _, p := range grid.Region(*s.Anchor, size.W, size.H) {
		if grid.MustTile(p).Qualifies() {
			covered = append(covered, p)
		}
	}
	s.Covered = covered
	s.CanPlace = len(covered) == size.Area()
}
