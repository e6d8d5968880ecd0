package buildmode

import (
	"isocity/internal/domain/building"
	"isocity/internal/domain/economy"
	"isocity/internal/domain/placement"
	"isocity/internal/domain/world"
)

type EnterRequest struct {
	BuildingType string
}

type HoverRequest struct {
	Pos *world.Point
}

type Response struct {
	Mode    placement.Mode    `json:"mode"`
	Gold    economy.Gold      `json:"gold"`
	Preview placement.Preview `json:"preview"`
}

type ConfirmResponse struct {
	Committed bool                   `json:"committed"`
	Reason    placement.RejectReason `json:"reason,omitempty"`
	Building  *building.Building     `json:"building,omitempty"`
	Mode      placement.Mode         `json:"mode"`
	Gold      economy.Gold           `json:"gold"`
	Preview   placement.Preview      `json:"preview"`
}
