package replay

import (
	"fmt"

	"github.com/younwookim/pufferdive/internal/application/system"
	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
	"github.com/younwookim/pufferdive/internal/infrastructure/config"
)

// LevelSource builds a fresh copy of the stage for a new attempt.
type LevelSource func() (*entity.Level, error)

// StageSource returns a LevelSource over a loaded stage.
func StageSource(stage *config.StageConfig, cfg *config.GameConfig) LevelSource {
	return func() (*entity.Level, error) {
		return system.BuildLevel(stage, cfg)
	}
}

// Respawn restarts sim on a freshly built level. A heart already taken
// stays taken.
func Respawn(sim *system.Simulation, build LevelSource) error {
	level, err := build()
	if err != nil {
		return fmt.Errorf("failed to rebuild level: %w", err)
	}
	level.HeartTaken = sim.Level().HeartTaken
	sim.Reset(level)
	return nil
}

// SealArena raises the whole arena wall at once and wakes the boss.
// Live play spreads the batches over time with the simulation paused,
// which leaves the simulation in the same state.
func SealArena(sim *system.Simulation) {
	for !sim.RaiseArenaWall() {
	}
	sim.StartBossEncounter()
}

// Result summarizes a headless run.
type Result struct {
	Frames    int
	Time      float64
	Deaths    int
	Outcomes  system.Outcome // every outcome seen during the run
	Finished  bool           // door opened or boss defeated
	PlayerPos geom.Vec
	Health    int
	Stats     system.Stats
}

// Run replays data against a new simulation without rendering. Deaths
// respawn the player like the playing screen does, and the run stops
// early once the stage is won.
func Run(cfg *config.GameConfig, build LevelSource, data ReplayData) (Result, error) {
	level, err := build()
	if err != nil {
		return Result{}, fmt.Errorf("failed to build level: %w", err)
	}

	sim := system.New(cfg, level, data.Seed)
	dt := data.FrameDT()
	rp := NewReplayer(data)

	var res Result
	for {
		in, ok := rp.GetInput()
		if !ok {
			break
		}

		out := sim.Update(in, dt)
		res.Frames++
		res.Time += dt
		res.Outcomes |= out

		if out.Has(system.OutcomeVictory) || out.Has(system.OutcomeBossDefeated) {
			res.Finished = true
			break
		}
		if out.Has(system.OutcomePlayerDied) {
			res.Deaths++
			if err := Respawn(sim, build); err != nil {
				return res, err
			}
			continue
		}
		if out.Has(system.OutcomeBossEncounter) {
			SealArena(sim)
		}
	}

	if p := sim.Player(); p != nil {
		res.PlayerPos = p.Pos
		res.Health = p.Health
	}
	res.Stats = sim.Stats()
	return res, nil
}
