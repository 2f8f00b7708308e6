package system

import (
	"math"

	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
)

const (
	buttDamage = 10
)

var buttEjectVelocity = geom.V(-5000, 300)

// updatePlayer integrates the player and runs the inflation machine.
// While inside the boss the body stays put, but puffing still works.
func (s *Simulation) updatePlayer(p *entity.Actor, in entity.ControlInput, dt float64) {
	ps := p.Player
	step := s.cfg.Physics.Puff.StepTime

	if !ps.InButt {
		s.integrate(p, in, dt)
	}

	if ps.InvulTime > 0 {
		ps.InvulTime = math.Max(ps.InvulTime-dt, 0)
		if !p.Dead && !ps.InButt {
			p.Visible = ps.InvulTime == 0 || !p.Visible
		}
	}

	if ps.PuffingTime > 0 {
		ps.PuffingTime = math.Max(ps.PuffingTime-dt, 0)
	}

	switch {
	case p.PuffingFrames > 0:
		if ps.PuffingTime <= float64(p.PuffingFrames)*step {
			p.PuffingFrames--
			target := ps.Phases[entity.PhaseInflated-p.PuffingFrames]
			if !s.tryHitRectChange(p, geom.Vec{}, target) {
				p.PuffingFrames = -1
				ps.PuffingTime = 2 * step
			} else if p.PuffingFrames == 0 {
				p.Puffed = true
			}
		}
	case p.PuffingFrames < 0:
		if ps.PuffingTime <= float64(-p.PuffingFrames)*step {
			p.PuffingFrames++
			p.HitRect = ps.Phases[-p.PuffingFrames]
			if p.PuffingFrames == 0 {
				p.Puffed = false
				p.Width, p.Height = ps.NormalSize.X, ps.NormalSize.Y
				p.Pos = p.Pos.Add(ps.PuffShift)
				ps.PuffShift = geom.Vec{}
			}
		}
	default:
		if !p.IsDying() && in.A && ps.PuffCooldown <= 0 {
			if p.Puffed {
				s.puffDown(p)
			} else {
				s.puffUp(p)
			}
		}
	}

	if ps.PuffCooldown > 0 {
		ps.PuffCooldown = math.Max(ps.PuffCooldown-dt, 0)
	}
}

// puffUp starts inflating, or hits the boss from the inside when the
// player sits in its weak spot.
func (s *Simulation) puffUp(p *entity.Actor) {
	ps := p.Player
	step := s.cfg.Physics.Puff.StepTime

	if ps.InButt {
		ps.InButt = false
		p.Visible = true
		if boss := s.world.Boss(); boss != nil {
			s.hurt(boss, p, buttDamage)
			butt := rect(s.cfg.Entities.Boss.ButtRect)
			p.Pos = boss.Pos.Add(butt.Center())
			p.Vel = buttEjectVelocity
			s.changeBossState(boss, entity.BossHurt)
			s.emit(entity.SoundInflate)
			s.emit(entity.SoundBossHurt)
		}
		s.resetPuffCooldown(p)
		return
	}

	ps.PuffingTime = 3 * step
	p.PuffingFrames = 2
	if s.tryHitRectChange(p, ps.PuffOffset.Neg(), ps.Phases[entity.PhaseSmall]) {
		p.Width, p.Height = ps.PuffedSize.X, ps.PuffedSize.Y
		ps.PuffShift = ps.PuffOffset
		s.emit(entity.SoundInflate)
	} else {
		p.PuffingFrames = -1
		ps.PuffingTime = 2 * step
	}
	s.resetPuffCooldown(p)
}

func (s *Simulation) puffDown(p *entity.Actor) {
	ps := p.Player
	ps.PuffingTime = 3 * s.cfg.Physics.Puff.StepTime
	p.PuffingFrames = -2
	p.HitRect = ps.Phases[entity.PhaseLarge]
	s.emit(entity.SoundDeflate)
	s.resetPuffCooldown(p)
}

// resetPuffCooldown uses the long cooldown after a deflate and the short
// one after an inflate.
func (s *Simulation) resetPuffCooldown(p *entity.Actor) {
	puff := s.cfg.Physics.Puff
	if p.PuffingFrames < 0 {
		p.Player.PuffCooldown = puff.Cooldown
	} else {
		p.Player.PuffCooldown = puff.ShortCooldown
	}
}

// vulnerable reports whether contact damage can reach the player.
func vulnerable(p *entity.Actor) bool {
	return p.Player.InvulTime == 0 && !p.IsDying() && !p.Player.InButt
}
