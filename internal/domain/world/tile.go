package world

type TerrainKind string

const (
	TerrainGrass TerrainKind = "grass"
	TerrainWater TerrainKind = "water"
)

type Terrain struct {
	Kind      TerrainKind `json:"kind"`
	Buildable bool        `json:"buildable"`
}

func Grass() Terrain {
	return Terrain{Kind: TerrainGrass, Buildable: true}
}

func Water() Terrain {
	return Terrain{Kind: TerrainWater, Buildable: false}
}

// BuildingID identifies the building occupying a tile. The zero value means
// the tile is free.
type BuildingID int64

const NoBuilding BuildingID = 0

type Tile struct {
	Pos      Point      `json:"pos"`
	Terrain  Terrain    `json:"terrain"`
	Occupant BuildingID `json:"occupant,omitempty"`
}

func (t Tile) Occupied() bool {
	return t.Occupant != NoBuilding
}

// Qualifies reports whether a building may cover this tile.
func (t Tile) Qualifies() bool {
	return t.Terrain.Buildable && !t.Occupied()
}
