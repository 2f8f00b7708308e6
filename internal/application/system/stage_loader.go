package system

import (
	"fmt"

	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
	"github.com/younwookim/pufferdive/internal/infrastructure/config"
)

var enemyKinds = map[string]entity.Kind{
	"fish":      entity.KindFish,
	"jellyfish": entity.KindJellyfish,
	"shrimp":    entity.KindShrimp,
	"boss":      entity.KindBoss,
}

var diagonalDirs = map[string]entity.DiagonalDir{
	"topleft":  entity.DiagonalTopLeft,
	"topright": entity.DiagonalTopRight,
	"botleft":  entity.DiagonalBotLeft,
	"botright": entity.DiagonalBotRight,
}

// BuildLevel converts a stage config into a Level: solids from the
// collision layer, spawn points, and the boss arena layout. Glyphs without
// a mapping are open water.
func BuildLevel(stage *config.StageConfig, cfg *config.GameConfig) (*entity.Level, error) {
	tileSize := stage.TileSize
	if tileSize <= 0 {
		tileSize = cfg.Physics.World.TileSize
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("stage %q: tile size must be positive", stage.ID)
	}

	rows := stage.Layers.Collision
	if len(rows) == 0 {
		return nil, fmt.Errorf("stage %q: empty collision layer", stage.ID)
	}

	level := entity.NewLevel(len(rows[0]), len(rows), tileSize)
	level.Name = stage.Name
	level.Index = stage.Index
	level.Dialogue = stage.Dialogue

	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			mapping, ok := stage.TileMapping[string(row[x])]
			if !ok {
				continue
			}
			c := entity.TileCoord{X: x, Y: y}
			if err := placeTile(level, c, mapping, cfg.Entities); err != nil {
				return nil, fmt.Errorf("stage %q: tile (%d,%d): %w", stage.ID, x, y, err)
			}
		}
	}
	level.ResolveShapes()

	if a := stage.Arena; a != nil {
		level.BossTriggerX = float64(a.TriggerColumn) * tileSize
		level.ArenaWall = arenaWall(a)
	}
	return level, nil
}

func placeTile(level *entity.Level, c entity.TileCoord, m config.TileMappingConfig, ents *config.EntitiesConfig) error {
	pos := level.TileAt(c)

	switch m.Type {
	case "ground":
		level.AddSolid(level.NewTileSolid(c, entity.MaterialGround))
	case "brick":
		level.AddSolid(level.NewTileSolid(c, entity.MaterialBrick))
	case "breakable":
		level.AddSolid(level.NewTileSolid(c, entity.MaterialBreakable))
	case "moving":
		sol := level.NewTileSolid(c, entity.MaterialBrick)
		sol.Moving = true
		level.AddSolid(sol)
	case "player":
		level.PlayerSpawn = pos
	case "key":
		level.Key = entity.Spawn{Pos: pos, Set: true}
	case "door":
		level.Door = entity.Spawn{Pos: pos, Set: true}
	case "heart":
		level.Heart = entity.Spawn{Pos: pos, Set: true}
	case "grampa":
		level.Grampa = entity.Spawn{Pos: pos, Set: true}
	case "enemy":
		kind, ok := enemyKinds[m.Enemy]
		if !ok {
			return fmt.Errorf("unknown enemy %q", m.Enemy)
		}
		level.Enemies = append(level.Enemies, entity.EnemySpawn{Kind: kind, Pos: pos, Inverted: m.Inverted})
	case "decor":
		size, ok := ents.Decor[m.Decor]
		if !ok {
			return fmt.Errorf("unknown decor %q", m.Decor)
		}
		level.Decors = append(level.Decors, entity.DecorSpawn{Name: m.Decor, Pos: pos, Size: geom.V(size.W, size.H)})
	case "diagonal":
		dir, ok := diagonalDirs[m.Direction]
		if !ok {
			return fmt.Errorf("unknown diagonal direction %q", m.Direction)
		}
		level.Diagonals = append(level.Diagonals, entity.DiagonalSpawn{Dir: dir, Pos: pos})
	case "button":
		level.Buttons = append(level.Buttons, entity.ButtonSpawn{Inverted: m.Inverted, Pos: pos})
	default:
		return fmt.Errorf("unknown tile type %q", m.Type)
	}
	return nil
}

// arenaWall lists the bricks of every batch. Batch b closes the wall
// columns from both the top and bottom row toward the middle, three rows
// further per batch; later batches repeat the earlier cells.
func arenaWall(a *config.ArenaConfig) [][]entity.TileCoord {
	batches := make([][]entity.TileCoord, 0, a.Batches)
	for b := 0; b < a.Batches; b++ {
		reach := 3 * (b + 1)
		var cells []entity.TileCoord
		for x := a.WallFrom; x <= a.WallTo; x++ {
			for y := a.TopRow; y < reach; y++ {
				cells = append(cells, entity.TileCoord{X: x, Y: y})
			}
			for y := a.BottomRow; y > a.BottomRow-reach; y-- {
				cells = append(cells, entity.TileCoord{X: x, Y: y})
			}
		}
		batches = append(batches, cells)
	}
	return batches
}
