package file

import (
	"errors"
	"fmt"
	"os"

	"isocity/internal/domain/world"

	"gopkg.in/yaml.v3"
)

var ErrEmptyLevel = errors.New("empty level file")

// Load reads a level description. JSON level files such as
// {"map": "GGR\n...", "width": 32, "height": 32} parse as YAML too, so one
// decoder serves both.
func Load(path string) (world.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return world.Level{}, fmt.Errorf("read level %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (world.Level, error) {
	if len(data) == 0 {
		return world.Level{}, ErrEmptyLevel
	}
	var level world.Level
	if err := yaml.Unmarshal(data, &level); err != nil {
		return world.Level{}, fmt.Errorf("decode level: %w", err)
	}
	if level.Map == "" {
		return world.Level{}, ErrEmptyLevel
	}
	return level, nil
}

// LoadGrid loads path and builds its grid, or builds a size x size grass grid
// when path is empty.
func LoadGrid(path string, size int) (*world.Grid, error) {
	level := world.GrassLevel(size)
	if path != "" {
		l, err := Load(path)
		if err != nil {
			return nil, err
		}
		level = l
	}
	return level.Build()
}
