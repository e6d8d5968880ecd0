package ports

import (
	"isocity/internal/domain/building"
	"isocity/internal/domain/economy"
	"isocity/internal/domain/placement"
)

type PlacementMetrics interface {
	RecordPlaced(t building.Type)
	RecordRejected(reason placement.RejectReason)
	RecordCancelled()
	RecordUpkeep(paid economy.Gold)
}
