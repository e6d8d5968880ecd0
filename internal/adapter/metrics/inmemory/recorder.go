package inmemory

import (
	"sync"

	"isocity/internal/domain/building"
	"isocity/internal/domain/economy"
	"isocity/internal/domain/placement"
)

type Snapshot struct {
	ConfirmTotal     uint64            `json:"confirm_total"`
	Placed           uint64            `json:"placed"`
	Rejected         uint64            `json:"rejected"`
	Cancelled        uint64            `json:"cancelled"`
	UpkeepPayments   uint64            `json:"upkeep_payments"`
	UpkeepGoldPaid   economy.Gold      `json:"upkeep_gold_paid"`
	PlacedByType     map[string]uint64 `json:"placed_by_type"`
	RejectedByReason map[string]uint64 `json:"rejected_by_reason"`
}

type Recorder struct {
	mu         sync.Mutex
	placed     uint64
	rejected   uint64
	cancelled  uint64
	payments   uint64
	upkeepGold economy.Gold
	byType     map[string]uint64
	byReason   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byType:   map[string]uint64{},
		byReason: map[string]uint64{},
	}
}

func (r *Recorder) RecordPlaced(t building.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placed++
	r.byType[string(t)]++
}

func (r *Recorder) RecordRejected(reason placement.RejectReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
	r.byReason[string(reason)]++
}

func (r *Recorder) RecordCancelled() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled++
}

func (r *Recorder) RecordUpkeep(paid economy.Gold) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments++
	r.upkeepGold += paid
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ConfirmTotal:     r.placed + r.rejected,
		Placed:           r.placed,
		Rejected:         r.rejected,
		Cancelled:        r.cancelled,
		UpkeepPayments:   r.payments,
		UpkeepGoldPaid:   r.upkeepGold,
		PlacedByType:     make(map[string]uint64, len(r.byType)),
		RejectedByReason: make(map[string]uint64, len(r.byReason)),
	}
	for k, v := range r.byType {
		out.PlacedByType[k] = v
	}
	for k, v := range r.byReason {
		out.RejectedByReason[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
