package ports

import (
	"context"
	"time"

	"isocity/internal/domain/city"
)

type JournalKind string

const (
	JournalBuildModeEntered   JournalKind = "build_mode_entered"
	JournalBuildModeCancelled JournalKind = "build_mode_cancelled"
	JournalBuildingPlaced     JournalKind = "building_placed"
	JournalPlacementRejected  JournalKind = "placement_rejected"
	JournalUpkeepPaid         JournalKind = "upkeep_paid"
	JournalTimeChanged        JournalKind = "time_changed"
)

// JournalEntry is an audit record of something that happened to the city.
// It is not a save format; the city cannot be restored from it.
type JournalEntry struct {
	ID         string         `json:"id"`
	Kind       JournalKind    `json:"kind"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// JournalQuery selects entries newest first. Filters apply before Limit, so
// Limit counts matching entries. Zero values leave a field unfiltered.
type JournalQuery struct {
	Limit int
	Kind  JournalKind
	// Since is inclusive, Until exclusive.
	Since time.Time
	Until time.Time
}

func (q JournalQuery) Matches(e JournalEntry) bool {
	if q.Kind != "" && e.Kind != q.Kind {
		return false
	}
	if !q.Since.IsZero() && e.OccurredAt.Before(q.Since) {
		return false
	}
	if !q.Until.IsZero() && !e.OccurredAt.Before(q.Until) {
		return false
	}
	return true
}

type JournalRepository interface {
	Append(ctx context.Context, entries []JournalEntry) error
	List(ctx context.Context, q JournalQuery) ([]JournalEntry, error)
}

// CityRepository hands out the single live city. Callers mutate it only
// inside TxManager.RunInTx.
type CityRepository interface {
	Current(ctx context.Context) (*city.City, error)
}
