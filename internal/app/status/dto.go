package status

import (
	"isocity/internal/domain/building"
	"isocity/internal/domain/economy"
	"isocity/internal/domain/placement"
)

type Response struct {
	Gold       economy.Gold        `json:"gold"`
	Mode       placement.Mode      `json:"mode"`
	Width      int                 `json:"width"`
	Height     int                 `json:"height"`
	Buildings  []building.Building `json:"buildings"`
	Occupation economy.Gold        `json:"occupation"`
	UpkeepDue  economy.Gold        `json:"upkeep_per_interval"`
	Time       Time                `json:"time"`
}

type Time struct {
	Paused            bool          `json:"paused"`
	Speed             economy.Speed `json:"speed"`
	IntervalSeconds   float64       `json:"interval_seconds"`
	NextUpkeepSeconds float64       `json:"next_upkeep_in_seconds"`
}
