package building

import (
	"errors"
	"strings"
)

type Type string

const (
	Theatre      Type = "theatre"
	Amphitheatre Type = "amphitheatre"
	Colosseum    Type = "colosseum"
)

var ErrUnknownType = errors.New("unknown building type")

type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

func (s Size) Area() int { return s.W * s.H }

// Types lists the catalog in display order.
func Types() []Type {
	return []Type{Theatre, Amphitheatre, Colosseum}
}

func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case Theatre, Amphitheatre, Colosseum:
		return t, nil
	default:
		return "", ErrUnknownType
	}
}

func (t Type) Footprint() Size {
	switch t {
	case Amphitheatre:
		return Size{W: 3, H: 3}
	case Colosseum:
		return Size{W: 4, H: 4}
	default:
		return Size{W: 2, H: 2}
	}
}

func (t Type) Cost() int64 {
	switch t {
	case Amphitheatre:
		return 20
	case Colosseum:
		return 30
	default:
		return 10
	}
}

// Occupation is the number of workers the building employs; upkeep is paid
// per worker.
func (t Type) Occupation() int64 {
	switch t {
	case Amphitheatre:
		return 8
	case Colosseum:
		return 12
	default:
		return 4
	}
}

func (t Type) Sprite() string {
	switch t {
	case Amphitheatre:
		return "buildings/amphitheatre.png"
	case Colosseum:
		return "buildings/colosseum.png"
	default:
		return "buildings/theatre.png"
	}
}

func (t Type) Name() string {
	switch t {
	case Amphitheatre:
		return "Amphitheatre"
	case Colosseum:
		return "Colosseum"
	default:
		return "Theatre"
	}
}

type CatalogEntry struct {
	Type       Type   `json:"type"`
	Name       string `json:"name"`
	Footprint  Size   `json:"footprint"`
	Cost       int64  `json:"cost"`
	Occupation int64  `json:"occupation"`
	Sprite     string `json:"sprite"`
}

func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(Types()))
	for _, t := range Types() {
		out = append(out, CatalogEntry{
			Type:       t,
			Name:       t.Name(),
			Footprint:  t.Footprint(),
			Cost:       t.Cost(),
			Occupation: t.Occupation(),
			Sprite:     t.Sprite(),
		})
	}
	return out
}
