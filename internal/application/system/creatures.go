package system

import (
	"math"

	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
)

const (
	fishIdleThink   = 0.8
	fishAlertThink  = 0.03
	fishSightNear   = 900.0
	fishSightFar    = 1800.0
	chaseDeadband   = 200.0
	ramDamageSpeed  = 1000.0
	jellyBobPeriod  = 5.0
	jellyBobAmount  = 40.0
	shrimpIdleThink = 0.75
	shrimpAlert     = 0.03
	shrimpSightNear = 800.0
	shrimpSightFar  = 1600.0
	shrimpSink      = 100.0
	shrimpShootWait = 1.8
	shrimpClawDelay = 0.3
	shrimpClawCount = 5
	shrimpFireFrame = 4
	shrimpSwayTime  = 2.0
	shrimpSwayAngle = 10.0
	shrimpEase      = 0.02
	lifespanSlop    = 1e-9
)

// chase returns the input steering from pos toward target. An axis whose
// distance is under the deadband is dropped while the other is far.
func chase(pos, target geom.Vec) entity.ControlInput {
	var in entity.ControlInput
	if target.X < pos.X {
		in.Left = true
	} else if target.X > pos.X {
		in.Right = true
	}
	if target.Y < pos.Y {
		in.Up = true
	} else if target.Y > pos.Y {
		in.Down = true
	}

	h := math.Abs(target.X - pos.X)
	v := math.Abs(target.Y - pos.Y)
	if h < chaseDeadband && v > chaseDeadband {
		in.Left, in.Right = false, false
	} else if v < chaseDeadband && h > chaseDeadband {
		in.Up, in.Down = false, false
	}
	return in
}

// thinkFish re-plans the fish on its reaction delay. Spotting the player
// costs one think; from then on the fish chases, or runs home when an
// inflated player is around, reversing if the player blocks the way.
func (s *Simulation) thinkFish(a, p *entity.Actor) {
	f := a.Fish
	interval := fishIdleThink
	if f.SeesPlayer {
		interval = fishAlertThink
	}
	if s.time-a.LastThink <= interval {
		return
	}
	a.LastThink = s.time
	a.Input = entity.ControlInput{}
	f.ChasingPlayer = false

	sight := fishSightNear
	if f.SeesPlayer {
		sight = fishSightFar
	}

	if p.Pos.Sub(a.Pos).Len() < sight {
		if !f.SeesPlayer {
			f.SeesPlayer = true
			return
		}
		a.GoingSlow = false
		switch {
		case !p.Puffed:
			f.ChasingPlayer = true
			a.Input = chase(a.Pos, p.Pos)
		case geom.SegmentHitsRect(a.Center(), a.Spawn, p.Hitbox()):
			a.Input = chase(a.Pos, p.Pos).Invert()
		default:
			a.Input = chase(a.Pos, a.Spawn)
		}
		return
	}

	if f.SeesPlayer {
		f.SeesPlayer = false
		return
	}
	if a.Pos.Sub(a.Spawn).Len() > chaseDeadband {
		a.GoingSlow = true
		a.Input = chase(a.Pos, a.Spawn)
	}
}

func (s *Simulation) updateFish(a, p *entity.Actor, dt float64) {
	s.integrate(a, a.Input, dt)
	if a.Dead {
		return
	}
	if a.DyingTime > 0 {
		a.Visible = !a.Visible
		return
	}
	if s.ram(a, p) {
		if a.IsDying() {
			s.emit(entity.SoundFishDie)
		} else {
			s.emit(entity.SoundFishHurt)
		}
	}
}

// ram resolves body contact between an enemy and the player. An inflated
// player hurts the enemy when the relative speed is high enough, and is
// hurt otherwise. It reports whether the enemy took damage.
func (s *Simulation) ram(a, p *entity.Actor) bool {
	if !vulnerable(p) || !a.Hitbox().Collides(p.Hitbox()) {
		return false
	}
	if p.Puffed || p.Player.PuffingTime > 0 {
		diff := a.Vel.Sub(p.Vel).Len()
		if diff > ramDamageSpeed {
			s.hurt(a, p, int(diff/ramDamageSpeed))
			return true
		}
		return false
	}
	s.hurt(p, a, 1)
	return false
}

// updateJelly bobs around the spawn point and stings on contact.
func (s *Simulation) updateJelly(a, p *entity.Actor, dt float64) {
	s.integrate(a, entity.ControlInput{}, dt)

	bob(a, dt, jellyBobPeriod, jellyBobAmount)

	if vulnerable(p) && a.Hitbox().Collides(p.Hitbox()) {
		s.hurt(p, a, 1)
	}
}

// thinkShrimp updates alertness on the reaction delay and eases the claw
// every tick: aimed at the player while targeting, settling back while
// still vigilant, swaying when idle.
func (s *Simulation) thinkShrimp(a, p *entity.Actor) {
	sh := a.Shrimp
	to := p.Center().Sub(a.Center())

	interval := shrimpIdleThink
	if sh.Vigilant {
		interval = shrimpAlert
	}
	if s.time-a.LastThink > interval {
		a.LastThink = s.time
		a.Input.B = false

		sight := shrimpSightNear
		if sh.Targeting {
			sight = shrimpSightFar
		}
		if to.Len() < sight {
			if !sh.Targeting {
				sh.Targeting = true
				sh.Vigilant = true
			} else {
				a.Input.B = true
			}
		} else if sh.Targeting {
			sh.Targeting = false
		}
	}

	switch {
	case sh.Targeting:
		if a.Input.B {
			a.Angle = to.Degrees() + 90
		}
	case sh.Vigilant:
		if math.Abs(a.Angle) > 1 {
			a.Angle -= a.Angle * shrimpEase
		} else {
			sh.Vigilant = false
		}
	default:
		a.Angle = shrimpSwayAngle * math.Sin(2*math.Pi*math.Mod(s.time, shrimpSwayTime)/shrimpSwayTime)
	}
}

func (s *Simulation) updateShrimp(a, p *entity.Actor, dt float64) {
	sh := a.Shrimp
	if sh.Inverted {
		a.Vel.Y -= shrimpSink
	} else {
		a.Vel.Y += shrimpSink
	}
	s.integrate(a, entity.ControlInput{}, dt)

	if a.IsDying() {
		if !a.Dead {
			a.Visible = !a.Visible
		}
	} else {
		s.ram(a, p)

		if sh.ShootCooldown > 0 {
			sh.ShootCooldown = math.Max(sh.ShootCooldown-dt, 0)
		} else if a.Input.B && sh.ClawFrame == shrimpFireFrame {
			dir := p.Center().Sub(a.Center()).Normalize()
			bc := s.cfg.Entities.Bubble
			s.spawnBubble(a.Pos.Add(sh.ClawOffset), dir, a.ID, bc.Speed, false, bc.Lifespan)
			sh.ShootCooldown = shrimpShootWait
			s.emit(entity.SoundShoot)
		}
	}

	if s.time-sh.ClawLast > shrimpClawDelay {
		sh.ClawLast = s.time
		sh.ClawFrame = (sh.ClawFrame + 1) % shrimpClawCount
	}
}

// updateBubble flies, pops on the player or gets reflected by an
// inflating one. A reflected bubble that reaches its creator hurts it, or
// stuns the boss when big.
func (s *Simulation) updateBubble(a, p *entity.Actor, dt float64) {
	b := a.Bubble
	s.integrate(a, entity.ControlInput{}, dt)
	b.Lifespan -= dt
	if a.Dead {
		return
	}

	if !b.Bounced && vulnerable(p) && a.Hitbox().Collides(p.Hitbox()) {
		switch {
		case p.PuffingFrames > 0:
			a.Vel = a.Vel.Neg()
			b.Bounced = true
			if b.Big {
				p.Puffed = false
				p.Player.PuffCooldown = 0
			}
		case !p.Puffed || b.Big:
			s.hurt(p, a, 1)
			s.emit(entity.SoundPopHurt)
			s.die(a)
		default:
			s.emit(entity.SoundPopHarmless)
			s.die(a)
		}
	}

	if b.Bounced && !a.Dead {
		if c := s.world.Get(b.Creator); c != nil && !c.Dead && c.Hitbox().Collides(a.Hitbox()) {
			if c.Kind == entity.KindBoss {
				if b.Big {
					s.changeBossState(c, entity.BossStunned)
				}
			} else {
				s.hurt(c, a, 1)
			}
			s.die(a)
			s.emit(entity.SoundPopHurt)
		}
	}

	if b.Lifespan <= lifespanSlop {
		s.die(a)
	}
}
