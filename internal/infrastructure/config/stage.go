package config

import "fmt"

// StageConfig is the root config for stage files. The same struct is
// decoded from JSON and YAML.
type StageConfig struct {
	ID          string                       `json:"id" yaml:"id"`
	Name        string                       `json:"name" yaml:"name"`
	Index       int                          `json:"index" yaml:"index"`
	TileSize    float64                      `json:"tileSize,omitempty" yaml:"tileSize,omitempty"`
	Layers      LayersConfig                 `json:"layers" yaml:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping" yaml:"tileMapping"`
	Dialogue    []string                     `json:"dialogue,omitempty" yaml:"dialogue,omitempty"`
	Arena       *ArenaConfig                 `json:"arena,omitempty" yaml:"arena,omitempty"`
}

type LayersConfig struct {
	Collision []string `json:"collision" yaml:"collision"`
}

// TileMappingConfig maps one glyph of the collision layer to a solid or
// a spawn point.
//
// Type is one of ground, brick, breakable, moving, player, key, door,
// heart, grampa, enemy, decor, diagonal, button.
type TileMappingConfig struct {
	Type      string `json:"type" yaml:"type"`
	Enemy     string `json:"enemy,omitempty" yaml:"enemy,omitempty"`
	Decor     string `json:"decor,omitempty" yaml:"decor,omitempty"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	Inverted  bool   `json:"inverted,omitempty" yaml:"inverted,omitempty"`
}

// ArenaConfig describes the boss arena: the column whose crossing starts
// the encounter and the wall raised behind the player in batches.
type ArenaConfig struct {
	TriggerColumn int `json:"triggerColumn" yaml:"triggerColumn"`
	WallFrom      int `json:"wallFrom" yaml:"wallFrom"`
	WallTo        int `json:"wallTo" yaml:"wallTo"`
	TopRow        int `json:"topRow" yaml:"topRow"`
	BottomRow     int `json:"bottomRow" yaml:"bottomRow"`
	Batches       int `json:"batches" yaml:"batches"`
}

var tileTypes = map[string]bool{
	"ground": true, "brick": true, "breakable": true, "moving": true,
	"player": true, "key": true, "door": true, "heart": true, "grampa": true,
	"enemy": true, "decor": true, "diagonal": true, "button": true,
}

// Validate checks the collision layer shape and the tile mapping.
func (s *StageConfig) Validate() error {
	rows := s.Layers.Collision
	if len(rows) == 0 {
		return fmt.Errorf("stage %q: empty collision layer", s.ID)
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return fmt.Errorf("stage %q: row %d has width %d, want %d", s.ID, y, len(row), width)
		}
	}

	players := 0
	for glyph, m := range s.TileMapping {
		if len(glyph) != 1 {
			return fmt.Errorf("stage %q: glyph %q must be a single character", s.ID, glyph)
		}
		if !tileTypes[m.Type] {
			return fmt.Errorf("stage %q: glyph %q has unknown type %q", s.ID, glyph, m.Type)
		}
		if m.Type == "player" {
			players += countGlyph(rows, glyph[0])
		}
	}
	if players != 1 {
		return fmt.Errorf("stage %q: found %d player spawns, want 1", s.ID, players)
	}
	return nil
}

func countGlyph(rows []string, g byte) int {
	n := 0
	for _, row := range rows {
		for i := 0; i < len(row); i++ {
			if row[i] == g {
				n++
			}
		}
	}
	return n
}
