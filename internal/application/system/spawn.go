package system

import (
	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
	"github.com/younwookim/pufferdive/internal/ecs"
	"github.com/younwookim/pufferdive/internal/infrastructure/config"
)

const (
	fishSpawnShift  = 100.0
	jellyFirstFrame = 2.5
	decorSink       = 60.0
	bossFirstShot   = 1.0
)

func rect(r config.Rect) geom.Rect   { return geom.R(r.X, r.Y, r.W, r.H) }
func vec(p config.Point) geom.Vec    { return geom.V(p.X, p.Y) }
func sizeVec(s config.Size) geom.Vec { return geom.V(s.W, s.H) }

// newActor builds the common record of a species at pos.
func newActor(kind entity.Kind, c config.ActorConfig, pos geom.Vec) *entity.Actor {
	return &entity.Actor{
		Kind:          kind,
		Pos:           pos,
		Spawn:         pos,
		Width:         c.Size.W,
		Height:        c.Size.H,
		HitRect:       rect(c.Hitbox),
		AccConst:      c.Acceleration,
		VelocityLimit: c.MaxSpeed,
		Health:        c.Health,
		MaxHealth:     c.Health,
		Visible:       true,
		IdleFrames:    c.IdleFrames,
		SwimFrames:    c.SwimFrames,
		IdleAnimDelay: c.IdleDelay,
		MoveAnimDelay: c.MoveDelay,
	}
}

// centered returns the top-left corner that centers a body of size c on p.
func centered(p geom.Vec, c config.Size) geom.Vec {
	return geom.V(p.X-c.W/2, p.Y-c.H/2)
}

// spawnActors fills a fresh world from the level layout. A positive
// maxHealth overrides the configured player health.
func (s *Simulation) spawnActors(maxHealth int) {
	ents := s.cfg.Entities
	props := ents.Props
	l := s.level
	w := ecs.NewWorld()
	s.world = w

	for _, b := range l.Buttons {
		c := props["button"]
		a := newActor(entity.KindButton, c, geom.V(b.Pos.X-c.Size.W/2, b.Pos.Y))
		a.Button = &entity.ButtonState{Inverted: b.Inverted}
		w.Spawn(a)
	}

	for _, d := range l.Decors {
		pos := geom.V(d.Pos.X-d.Size.X/2, d.Pos.Y-(d.Size.Y-decorSink))
		a := newActor(entity.KindDecor, config.ActorConfig{
			Size:       config.Size{W: d.Size.X, H: d.Size.Y},
			Hitbox:     config.Rect{W: d.Size.X, H: d.Size.Y},
			IdleFrames: 1,
		}, pos)
		a.Decor = &entity.DecorState{Name: d.Name}
		w.Spawn(a)
	}

	for _, d := range l.Diagonals {
		w.Spawn(s.newDiagonal(d))
	}

	for _, e := range l.Enemies {
		if a := s.newEnemy(e); a != nil {
			w.Spawn(a)
		}
	}

	if l.Key.Set {
		c := props["key"]
		a := newActor(entity.KindKey, c, centered(l.Key.Pos, c.Size))
		a.NoClip = true
		a.Key = &entity.KeyState{}
		w.Spawn(a)
	}
	if l.Door.Set {
		c := props["door"]
		w.Spawn(newActor(entity.KindDoor, c, centered(l.Door.Pos, c.Size)))
	}

	w.Spawn(s.newPlayer(maxHealth))

	if l.Heart.Set {
		c := props["heart"]
		a := newActor(entity.KindHeart, c, centered(l.Heart.Pos, c.Size))
		a.Visible = false
		w.Spawn(a)
	}
	if l.Grampa.Set {
		c := props["grampa"]
		a := newActor(entity.KindGrampa, c, centered(l.Grampa.Pos, c.Size))
		a.FixedAngle = true
		a.Grampa = &entity.GrampaState{Lines: l.Dialogue}
		w.Spawn(a)
	}
}

func (s *Simulation) newPlayer(maxHealth int) *entity.Actor {
	pc := s.cfg.Entities.Player
	p := newActor(entity.KindPlayer, pc.ActorConfig, s.level.PlayerSpawn)

	ps := &entity.PlayerState{
		NormalSize: sizeVec(pc.Size),
		PuffedSize: sizeVec(pc.PuffedSize),
		PuffOffset: vec(pc.PuffOffset),
	}
	for i, r := range pc.Phases {
		ps.Phases[i] = rect(r)
	}
	p.HitRect = ps.Phases[entity.PhaseDeflated]
	p.Player = ps

	if maxHealth > p.MaxHealth {
		p.MaxHealth = maxHealth
		p.Health = maxHealth
	}
	return p
}

// newEnemy places an enemy centered on its spawn point. It returns nil
// for kinds missing from the configuration.
func (s *Simulation) newEnemy(e entity.EnemySpawn) *entity.Actor {
	ents := s.cfg.Entities
	c, ok := ents.Enemies[e.Kind.String()]
	if !ok {
		return nil
	}
	pos := centered(e.Pos, c.Size)
	if e.Kind == entity.KindFish {
		pos.X += fishSpawnShift
	}
	a := newActor(e.Kind, c, pos)

	switch e.Kind {
	case entity.KindFish:
		a.Fish = &entity.FishState{}
	case entity.KindJellyfish:
		a.FirstFrameHold = jellyFirstFrame
	case entity.KindShrimp:
		a.FixedAngle = true
		sh := &entity.ShrimpState{
			Inverted:      e.Inverted,
			ClawOffset:    vec(ents.Shrimp.ClawOffset),
			ShootCooldown: shrimpShootWait,
		}
		if e.Inverted {
			a.HitRect = rect(ents.Shrimp.InvertedHitbox)
			sh.ClawOffset = vec(ents.Shrimp.InvertedClawOffset)
		}
		a.Shrimp = sh
	case entity.KindBoss:
		a.NoKnockback = true
		a.FixedAngle = true
		a.Boss = &entity.BossState{
			ClawAngle:     ents.Boss.StartClawAngle,
			ShootCooldown: bossFirstShot,
		}
	}
	return a
}

// newDiagonal lays the slope inside a square anchored at the spawn tile.
// The segment runs corner to corner and the normal points into the open
// side.
func (s *Simulation) newDiagonal(d entity.DiagonalSpawn) *entity.Actor {
	c := s.cfg.Entities.Props["diagonal"]
	w, h := c.Size.W, c.Size.H
	tile := s.level.TileSize
	pos := d.Pos

	var normal geom.Vec
	switch d.Dir {
	case entity.DiagonalTopLeft:
		normal = geom.V(1, 1)
	case entity.DiagonalTopRight:
		pos.X -= w - tile
		normal = geom.V(-1, 1)
	case entity.DiagonalBotLeft:
		pos.Y -= h - tile
		normal = geom.V(1, -1)
	case entity.DiagonalBotRight:
		pos.X -= w - tile
		pos.Y -= h - tile
		normal = geom.V(-1, -1)
	}

	p1 := geom.V(pos.X, pos.Y+h)
	p2 := geom.V(pos.X+w, pos.Y)
	if d.Dir == entity.DiagonalTopRight || d.Dir == entity.DiagonalBotLeft {
		p1 = pos
		p2 = geom.V(pos.X+w, pos.Y+h)
	}

	a := newActor(entity.KindDiagonal, c, pos)
	a.Diagonal = &entity.DiagonalState{Dir: d.Dir, P1: p1, P2: p2, Normal: normal.Normalize()}
	return a
}

// spawnBubble queues a bubble centered on center, flying along dir. Big
// bubbles are scaled up and use their own hitbox.
func (s *Simulation) spawnBubble(center, dir geom.Vec, creator entity.EntityID, speed float64, big bool, life float64) *entity.Actor {
	ents := s.cfg.Entities
	c := ents.Enemies["bubble"]
	if big {
		c.Size.W *= ents.Bubble.BigScale
		c.Size.H *= ents.Bubble.BigScale
		c.Hitbox = ents.Bubble.BigHitbox
	}

	a := newActor(entity.KindBubble, c, centered(center, c.Size))
	a.VelocityLimit = speed
	a.Vel = dir.Scale(speed)
	a.DiesOnImpact = true
	a.Bubble = &entity.BubbleState{
		Creator:  creator,
		Big:      big,
		Speed:    speed,
		Lifespan: life,
	}

	s.world.Enqueue(a)
	s.stats.BubblesFired++
	return a
}
