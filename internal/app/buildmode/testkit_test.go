package buildmode

import (
	"context"
	"errors"
	"time"

	"isocity/internal/app/ports"
	"isocity/internal/domain/building"
	"isocity/internal/domain/city"
	"isocity/internal/domain/economy"
	"isocity/internal/domain/placement"
	"isocity/internal/domain/world"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubCities struct {
	c *city.City
}

func (s stubCities) Current(context.Context) (*city.City, error) {
	if s.c == nil {
		return nil, ports.ErrNotFound
	}
	return s.c, nil
}

type fakeJournal struct {
	entries []ports.JournalEntry
	failOn  ports.JournalKind
}

var errJournalDown = errors.New("journal down")

func (j *fakeJournal) Append(_ context.Context, entries []ports.JournalEntry) error {
	for _, e := range entries {
		if e.Kind == j.failOn {
			return errJournalDown
		}
	}
	j.entries = append(j.entries, entries...)
	return nil
}

func (j *fakeJournal) List(context.Context, ports.JournalQuery) ([]ports.JournalEntry, error) {
	return j.entries, nil
}

type fakeMetrics struct {
	placed    map[building.Type]int
	rejected  map[placement.RejectReason]int
	cancelled int
	upkeep    economy.Gold
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{placed: map[building.Type]int{}, rejected: map[placement.RejectReason]int{}}
}

func (m *fakeMetrics) RecordPlaced(t building.Type) { m.placed[t]++ }
func (m *fakeMetrics) RecordRejected(reason placement.RejectReason) { m.rejected[reason]++ }
func (m *fakeMetrics) RecordCancelled() { m.cancelled++ }
func (m *fakeMetrics) RecordUpkeep(paid economy.Gold) { m.upkeep += paid }

func newUseCase(gold economy.Gold) (UseCase, *city.City, *fakeJournal, *fakeMetrics) {
	cfg := city.DefaultConfig()
	cfg.StartingGold = gold
	c := city.New(world.NewGrid(4, 4), cfg)
	j := &fakeJournal{}
	m := newFakeMetrics()
	n := 0
	return UseCase{
		TxManager: stubTxManager{},
		Cities:    stubCities{c: c},
		Journal:   j,
		Metrics:   m,
		Now:       func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
		NewID: func() string {
			n++
			return "entry-" + string(rune('0'+n))
		},
	}, c, j, m
}
