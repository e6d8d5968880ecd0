package world

import "fmt"

// Grid owns every tile of a level. Tiles are stored x-major so that a
// coordinate maps to index x*height+y.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{width: width, height: height, tiles: make([]Tile, width*height)}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			g.tiles[g.index(Point{X: x, Y: y})] = Tile{Pos: Point{X: x, Y: y}, Terrain: Grass()}
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g *Grid) index(p Point) int {
	return p.X*g.height + p.Y
}

func (g *Grid) Tile(p Point) (Tile, bool) {
	if !g.InBounds(p) {
		return Tile{}, false
	}
	return g.tiles[g.index(p)], true
}

// MustTile is for coordinates an upstream invariant guarantees to exist.
func (g *Grid) MustTile(p Point) Tile {
	t, ok := g.Tile(p)
	if !ok {
		panic(fmt.Sprintf("world: tile %d,%d missing from %dx%d grid", p.X, p.Y, g.width, g.height))
	}
	return t
}

func (g *Grid) SetTerrain(p Point, terrain Terrain) bool {
	if !g.InBounds(p) {
		return false
	}
	g.tiles[g.index(p)].Terrain = terrain
	return true
}

func (g *Grid) SetOccupant(p Point, id BuildingID) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("world: occupy out-of-bounds tile %d,%d", p.X, p.Y))
	}
	g.tiles[g.index(p)].Occupant = id
}

func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Region lists the existing tiles of the w x h rectangle whose minimum corner
// is anchor. Coordinates outside the grid are left out.
func (g *Grid) Region(anchor Point, w, h int) []Point {
	out := make([]Point, 0, maxInt(w, 0)*maxInt(h, 0))
	for x := anchor.X; x < anchor.X+w; x++ {
		for y := anchor.Y; y < anchor.Y+h; y++ {
			p := Point{X: x, Y: y}
			if g.InBounds(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
