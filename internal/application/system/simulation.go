package system

import (
	"math/rand"

	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
	"github.com/younwookim/pufferdive/internal/ecs"
	"github.com/younwookim/pufferdive/internal/infrastructure/config"
)

// Outcome is the set of events of one tick the host screen reacts to.
type Outcome uint8

const (
	OutcomePlayerHurt Outcome = 1 << iota
	OutcomePlayerDied
	OutcomeVictory
	OutcomeBossDefeated
	OutcomeBossEncounter
)

// Has reports whether every flag of f is set.
func (o Outcome) Has(f Outcome) bool {
	return o&f == f
}

// Stats counts session events. Kills are counted once per actor.
type Stats struct {
	Kills        map[entity.Kind]int
	BlocksBroken int
	BlocksBuilt  int
	BubblesFired int
}

// Simulation is the context every core call runs in: it owns the level,
// the actor arena and the random stream of one session.
type Simulation struct {
	cfg   *config.GameConfig
	level *entity.Level
	world *ecs.World
	rng   *rand.Rand

	time    float64
	outcome Outcome
	stats   Stats

	camera       geom.Rect
	cameraLocked bool

	heartPopped   bool
	bossTriggered bool
	wallBatch     int

	// OnSound receives one-shot audio cues. It may be nil.
	OnSound func(entity.Sound)
}

// New creates a simulation over level and spawns its actors.
func New(cfg *config.GameConfig, level *entity.Level, seed int64) *Simulation {
	s := &Simulation{
		cfg:   cfg,
		level: level,
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.stats.Kills = make(map[entity.Kind]int)
	s.spawnActors(0)
	return s
}

// Reset respawns every actor. A non-nil level replaces the current one,
// otherwise destroyed blocks stay destroyed. The player keeps any extra
// max health picked up so far.
func (s *Simulation) Reset(level *entity.Level) {
	maxHealth := 0
	if p := s.world.Player(); p != nil {
		maxHealth = p.MaxHealth
	}
	if level != nil {
		s.level = level
	}
	s.time = 0
	s.outcome = 0
	s.cameraLocked = false
	s.heartPopped = false
	s.bossTriggered = false
	s.wallBatch = 0
	s.spawnActors(maxHealth)
}

func (s *Simulation) World() *ecs.World     { return s.world }
func (s *Simulation) Level() *entity.Level  { return s.level }
func (s *Simulation) Time() float64         { return s.time }
func (s *Simulation) Camera() geom.Rect     { return s.camera }
func (s *Simulation) Stats() Stats          { return s.stats }
func (s *Simulation) Player() *entity.Actor { return s.world.Player() }

// BossTriggered reports whether the player has crossed into the arena.
func (s *Simulation) BossTriggered() bool {
	return s.bossTriggered
}

func (s *Simulation) emit(snd entity.Sound) {
	if s.OnSound != nil {
		s.OnSound(snd)
	}
}

// Update advances the simulation by dt with the player's control input
// and returns what happened during the tick.
//
// Order: moving solids, player, enemies in the active region (think then
// update), decor, diagonals, buttons, key, door, heart, grampa, boss
// trigger, then dead enemies are pruned and queued spawns become live.
func (s *Simulation) Update(in entity.ControlInput, dt float64) Outcome {
	s.outcome = 0

	s.updateMovingSolids(dt)

	p := s.world.Player()
	s.updatePlayer(p, in, dt)
	s.updateCamera(p)

	for _, id := range s.world.Enemies {
		a := s.world.Get(id)
		if a == nil || a.Dead || !s.active(a) {
			continue
		}
		s.think(a, p, dt)
		s.updateEnemy(a, p, dt)
	}
	for _, id := range s.world.Decors {
		if a := s.world.Get(id); a != nil && s.active(a) {
			s.updateDecor(a)
		}
	}
	for _, id := range s.world.Diagonals {
		if a := s.world.Get(id); a != nil && s.active(a) {
			s.updateDiagonal(a, p)
		}
	}
	for _, id := range s.world.Buttons {
		if a := s.world.Get(id); a != nil && s.active(a) {
			s.updateButton(a, p)
		}
	}
	if k := s.world.Get(s.world.KeyID); k != nil {
		s.updateKey(k, p, dt)
	}
	if d := s.world.Get(s.world.DoorID); d != nil {
		s.updateDoor(d, p)
	}
	if h := s.world.Get(s.world.HeartID); h != nil {
		s.updateHeart(h, p, dt)
	}
	if g := s.world.Get(s.world.GrampaID); g != nil {
		s.updateGrampa(g, p, dt)
	}

	if !s.bossTriggered && s.level.BossTriggerX > 0 && p.Pos.X > s.level.BossTriggerX {
		s.bossTriggered = true
		s.cameraLocked = true
		s.outcome |= OutcomeBossEncounter
	}

	s.world.PruneDeadEnemies()
	s.world.Flush()

	s.time += dt
	return s.outcome
}

// think dispatches the species think routine. Species without one keep
// their current input.
func (s *Simulation) think(a, p *entity.Actor, dt float64) {
	switch a.Kind {
	case entity.KindFish:
		s.thinkFish(a, p)
	case entity.KindShrimp:
		s.thinkShrimp(a, p)
	}
}

func (s *Simulation) updateEnemy(a, p *entity.Actor, dt float64) {
	switch a.Kind {
	case entity.KindFish:
		s.updateFish(a, p, dt)
	case entity.KindJellyfish:
		s.updateJelly(a, p, dt)
	case entity.KindShrimp:
		s.updateShrimp(a, p, dt)
	case entity.KindBubble:
		s.updateBubble(a, p, dt)
	case entity.KindBoss:
		s.updateBoss(a, p, dt)
	}
}

// updateCamera centers the view on the player and keeps it in the level.
// Once the boss encounter has begun the view stays over the arena.
func (s *Simulation) updateCamera(p *entity.Actor) {
	cam := s.cfg.Physics.Camera
	if cam.Width <= 0 || cam.Height <= 0 {
		return
	}
	if s.cameraLocked {
		s.camera = geom.R(s.level.Width-cam.Width, s.camera.Y, cam.Width, cam.Height)
	} else {
		c := p.Center()
		s.camera = geom.R(c.X-cam.Width/2, c.Y-cam.Height/2, cam.Width, cam.Height)
	}

	if s.camera.X < 0 {
		s.camera.X = 0
	}
	if s.camera.Y < 0 {
		s.camera.Y = 0
	}
	if s.camera.X > s.level.Width-s.camera.W {
		s.camera.X = s.level.Width - s.camera.W
	}
	if s.camera.Y > s.level.Height-s.camera.H {
		s.camera.Y = s.level.Height - s.camera.H
	}
}

// active reports whether a lies in the simulated region around the camera.
func (s *Simulation) active(a *entity.Actor) bool {
	cam := s.cfg.Physics.Camera
	if cam.Width <= 0 || cam.Height <= 0 {
		return true
	}
	return a.Hitbox().Collides(s.camera.Grow(cam.Margin))
}

// StartBossEncounter wakes the boss once the arena is sealed.
func (s *Simulation) StartBossEncounter() {
	if p := s.world.Player(); p != nil {
		p.Vel = geom.Vec{}
	}
	if b := s.world.Boss(); b != nil {
		b.Boss.Started = true
	}
}

// RaiseArenaWall adds the next batch of arena bricks and reports whether
// the wall is complete.
func (s *Simulation) RaiseArenaWall() bool {
	if s.wallBatch >= len(s.level.ArenaWall) {
		return true
	}
	for _, c := range s.level.ArenaWall[s.wallBatch] {
		if s.level.IsSolid(c) {
			continue
		}
		s.level.AddSolid(s.level.NewTileSolid(c, entity.MaterialBrick))
		s.stats.BlocksBuilt++
	}
	s.wallBatch++
	s.emit(entity.SoundBlockBuild)
	return s.wallBatch >= len(s.level.ArenaWall)
}
