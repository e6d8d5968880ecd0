package placement

import (
	"isocity/internal/domain/building"
	"isocity/internal/domain/economy"
	"isocity/internal/domain/world"
)

type fixture struct {
	grid     *world.Grid
	ledger   *economy.Ledger
	registry *building.Registry
}

func newFixture(size int, gold economy.Gold) fixture {
	return fixture{
		grid:     world.NewGrid(size, size),
		ledger:   economy.NewLedger(gold),
		registry: building.NewRegistry(),
	}
}

func pt(x, y int) *world.Point {
	return &world.Point{X: x, Y: y}
}

func hovered(t building.Type, anchor *world.Point, f fixture) *Session {
	s := NewSession(t)
	s.SetAnchor(anchor)
	s.Evaluate(f.grid, f.ledger.Balance())
	return s
}
