package world

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLevel = errors.New("invalid level")

// Level is the textual bootstrap format. Each line of Map is one x column of
// the grid and each character one y cell: 'G' grass, 'R' water. Unknown
// characters fall back to grass.
type Level struct {
	Map    string `json:"map" yaml:"map"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

func terrainFromRune(r rune) Terrain {
	switch r {
	case 'G':
		return Grass()
	case 'R':
		return Water()
	default:
		return Grass()
	}
}

func (l Level) Build() (*Grid, error) {
	if l.Width <= 0 || l.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	lines := levelLines(l.Map)
	if len(lines) != l.Width {
		return nil, fmt.Errorf("%w: %d map lines, width %d", ErrInvalidLevel, len(lines), l.Width)
	}
	g := NewGrid(l.Width, l.Height)
	for x, line := range lines {
		cells := []rune(line)
		if len(cells) != l.Height {
			return nil, fmt.Errorf("%w: line %d has %d cells, height %d", ErrInvalidLevel, x, len(cells), l.Height)
		}
		for y, r := range cells {
			g.SetTerrain(Point{X: x, Y: y}, terrainFromRune(r))
		}
	}
	return g, nil
}

func levelLines(raw string) []string {
	out := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// GrassLevel produces a size x size level with buildable terrain everywhere.
func GrassLevel(size int) Level {
	if size <= 0 {
		return Level{}
	}
	row := strings.Repeat("G", size)
	rows := make([]string, size)
	for i := range rows {
		rows[i] = row
	}
	return Level{Map: strings.Join(rows, "\n"), Width: size, Height: size}
}
