package placement

import (
	"isocity/internal/domain/building"
	"isocity/internal/domain/world"
)

type BuildableColor string

const (
	ColorGreen BuildableColor = "green"
	ColorRed   BuildableColor = "red"
)

type RGBA struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

func (c BuildableColor) RGBA() RGBA {
	if c == ColorRed {
		return RGBA{R: 0.5, A: 0.7}
	}
	return RGBA{G: 0.5, A: 0.7}
}

// Preview is what the overlay renderer needs each frame: where the ghost
// building sits and whether to tint it green or red.
type Preview struct {
	Active   bool           `json:"active"`
	Type     building.Type  `json:"building_type,omitempty"`
	Sprite   string         `json:"sprite,omitempty"`
	Anchor   *world.Point   `json:"anchor,omitempty"`
	Covered  []world.Point  `json:"covered"`
	CanPlace bool           `json:"can_place"`
	Color    BuildableColor `json:"color,omitempty"`
	Tint     *RGBA          `json:"tint,omitempty"`
}

func PreviewOf(s *Session) Preview {
	if s == nil {
		return Preview{Covered: []world.Point{}}
	}
	color := ColorRed
	if s.CanPlace {
		color = ColorGreen
	}
	tint := color.RGBA()
	out := Preview{
		Active:   true,
		Type:     s.Type,
		Sprite:   s.Type.Sprite(),
		Covered:  append([]world.Point{}, s.Covered...),
		CanPlace: s.CanPlace,
		Color:    color,
		Tint:     &tint,
	}
	if s.Anchor != nil {
		anchor := *s.Anchor
		out.Anchor = &anchor
	}
	return out
}
