package journal

import (
	"isocity/internal/app/ports"
	"isocity/internal/domain/economy"
)

type Request struct {
	Limit        int
	Kind         string
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Entries    []ports.JournalEntry `json:"entries"`
	LatestGold *economy.Gold        `json:"latest_gold,omitempty"`
}
