package system

import (
	"math"

	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
)

const (
	bossFirstIdle       = 2.0
	bossIdleDelay       = 1.0
	bossScriptedCycles  = 3
	bossShootPeriod     = 1.0
	bossVolleyShots     = 8
	bossFanShots        = 40
	bossVolleySpeed     = 3600.0
	bossFanSpeed        = 2800.0
	bossFanPeriod       = 0.1
	bossBubbleLife      = 2.0
	bossBigBubbleSpeed  = 3800.0
	bossBigBubbleWindup = 3.0
	bossStunTime        = 10.0
	bossHurtTime        = 3.0
	bossPull            = 40.0
	bossClawRest        = -30.0
	bossClawSlashEnd    = -160.0
	bossClawRaise       = 45.0
	bossClawSlash       = -600.0
	bossClawReturn      = 150.0
	bossBeforeSlash     = 0.3
	bossClawFrames      = 0.15
	bossAfterSlash      = 0.8
	bossWavePeriod      = 4.0
	bossWaveAmount      = 3.0
	bossClawLeverage    = 0.75
	bossSwayPeriod      = 3.0
	bossSwayAngle       = 10.0
)

// Aimed volley directions, mirrored when the player is behind the boss.
var (
	bossVolleyEven = [3]geom.Vec{{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1}}
	bossVolleyOdd  = [3]geom.Vec{{X: -0.924, Y: -0.383}, {X: -0.924, Y: 0.383}, {X: -1, Y: 0}}
)

// changeBossState enters phase, resets both sub-machines and the shot
// counter and stamps every transition clock.
func (s *Simulation) changeBossState(a *entity.Actor, phase entity.BossPhase) {
	b := a.Boss
	b.Phase = phase
	b.PhaseSince = s.time
	b.CycleCount++
	b.ShotCount = 0
	b.Sweep = entity.SweepWindup
	b.SweepSince = s.time
	b.BigBubble = entity.BigBubbleWindup
	b.BigBubbleSince = s.time
	b.IdleDelay = bossIdleDelay
	b.ClawSpeed = 0
	b.Tinted = phase == entity.BossHurt
}

// ClawHitboxes returns the claw rectangles of a boss in world space,
// rotated around the claw joint by the current claw angle and wave.
func (s *Simulation) ClawHitboxes(a *entity.Actor) []geom.Rect {
	cfg := s.cfg.Entities.Boss
	joint := a.Pos.Add(vec(cfg.ClawJoint))
	angle := (a.Boss.ClawAngle + a.Boss.ClawWave) * bossClawLeverage

	out := make([]geom.Rect, 0, len(cfg.ClawRects))
	for _, cr := range cfg.ClawRects {
		r := rect(cr)
		c := geom.Rotate(r.Center().Add(vec(cfg.ClawOffset)).Add(a.Pos), joint, angle)
		out = append(out, r.Centered(c))
	}
	return out
}

// ButtBox returns the boss weak spot in world space.
func (s *Simulation) ButtBox(a *entity.Actor) geom.Rect {
	return rect(s.cfg.Entities.Boss.ButtRect).Translate(a.Pos)
}

func (s *Simulation) updateBoss(a, p *entity.Actor, dt float64) {
	b := a.Boss
	s.integrate(a, a.Input, dt)
	b.ClawWave = bossWaveAmount * math.Sin(2*math.Pi*math.Mod(s.time, bossWavePeriod)/bossWavePeriod)

	if vulnerable(p) && b.Phase != entity.BossStunned && b.Phase != entity.BossHurt {
		pb := p.Hitbox()
		if a.Hitbox().Collides(pb) {
			s.hurt(p, a, 1)
		} else {
			for _, claw := range s.ClawHitboxes(a) {
				if claw.Collides(pb) {
					s.hurt(p, a, 1)
					break
				}
			}
		}
	}

	switch b.Phase {
	case entity.BossWaiting:
		if b.Started {
			s.changeBossState(a, entity.BossIdle)
			b.IdleDelay = bossFirstIdle
		}
	case entity.BossIdle:
		b.IdleDelay -= dt
		b.SmallClawAngle = bossSwayAngle * math.Sin(2*math.Pi*math.Mod(s.time, bossSwayPeriod)/bossSwayPeriod)
		if b.IdleDelay <= 0 {
			if b.CycleCount < bossScriptedCycles || s.rng.Intn(3) != 0 {
				s.changeBossState(a, entity.BossBubbles)
			} else {
				s.changeBossState(a, entity.BossSweep)
			}
		}
	case entity.BossBubbles:
		if b.ShootCooldown <= 0 {
			if p.Puffed && s.rng.Intn(3) == 0 {
				s.changeBossState(a, entity.BossSweep)
			} else {
				s.shootBubbles(a, p)
			}
		}
		b.ShootCooldown -= dt
	case entity.BossBigBubble:
		s.bigBubbleAttack(a, p)
	case entity.BossSweep:
		s.sweepAttack(a, p, dt)
	case entity.BossStunned:
		s.updateStunned(a, p)
	case entity.BossHurt:
		if s.time-b.PhaseSince > bossHurtTime {
			s.changeBossState(a, entity.BossIdle)
		}
	}
}

// shootBubbles fires the next volley of the barrage. The first shots are
// aimed fans that speed up, then come rotating fans on a fixed period,
// then the big bubble.
func (s *Simulation) shootBubbles(a, p *entity.Actor) {
	b := a.Boss
	mouth := a.Pos.Add(vec(s.cfg.Entities.Boss.Mouth))
	behind := a.Center().X < p.Center().X

	switch {
	case b.ShotCount < bossVolleyShots:
		dirs := bossVolleyEven
		if b.ShotCount%2 == 1 {
			dirs = bossVolleyOdd
		}
		for _, d := range dirs {
			if behind {
				d.X = -d.X
			}
			s.spawnBubble(mouth, d.Normalize(), a.ID, bossVolleySpeed, false, bossBubbleLife)
		}
		b.ShootCooldown = bossShootPeriod * (1 - 0.1*float64(b.ShotCount))
	case b.ShotCount < bossFanShots:
		step := float64(-((b.ShotCount-bossVolleyShots)%20)*5 + 10)
		base := 135.0
		if behind {
			base = -45
		}
		for i := 0; i < 3; i++ {
			dir := geom.UnitFromDegrees(base + 45*float64(i) + step)
			s.spawnBubble(mouth, dir, a.ID, bossFanSpeed, false, bossBubbleLife)
		}
		b.ShootCooldown = bossFanPeriod
	default:
		s.changeBossState(a, entity.BossBigBubble)
		return
	}

	s.emit(entity.SoundShoot)
	b.ShotCount++
}

func (s *Simulation) sweepAttack(a, p *entity.Actor, dt float64) {
	b := a.Boss
	elapsed := s.time - b.SweepSince

	switch b.Sweep {
	case entity.SweepWindup:
		if b.ClawAngle < 0 {
			b.ClawSpeed = bossClawRaise
			p.Vel = p.Vel.Add(a.Center().Sub(p.Center()).Normalize().Scale(bossPull))
		} else {
			b.ClawSpeed = 0
			b.Sweep = entity.SweepBeforeSlash
			b.SweepSince = s.time
		}
	case entity.SweepBeforeSlash:
		b.ClawSpeed = 0
		if elapsed > bossBeforeSlash {
			b.Sweep = entity.SweepSlash
			b.SweepSince = s.time
		} else if elapsed < bossClawFrames {
			b.ClawFrame = int(elapsed/0.03) % 5
		}
	case entity.SweepSlash:
		if b.ClawAngle > bossClawSlashEnd {
			b.ClawSpeed = bossClawSlash
		} else {
			b.ClawSpeed = 0
			b.Sweep = entity.SweepAfterSlash
			b.SweepSince = s.time
		}
	case entity.SweepAfterSlash:
		b.ClawSpeed = 0
		if elapsed > bossAfterSlash {
			b.Sweep = entity.SweepBringback
			b.SweepSince = s.time
		}
	case entity.SweepBringback:
		if b.ClawAngle < bossClawRest {
			b.ClawSpeed = bossClawReturn
		} else {
			s.changeBossState(a, entity.BossIdle)
		}
	}
	b.ClawAngle += b.ClawSpeed * dt
}

func (s *Simulation) bigBubbleAttack(a, p *entity.Actor) {
	b := a.Boss
	switch b.BigBubble {
	case entity.BigBubbleWindup:
		if s.time-b.BigBubbleSince > bossBigBubbleWindup {
			b.BigBubble = entity.BigBubbleShoot
			b.BigBubbleSince = s.time
		}
	case entity.BigBubbleShoot:
		dir := p.Center().Sub(a.Center()).Normalize()
		mouth := a.Pos.Add(vec(s.cfg.Entities.Boss.Mouth))
		s.spawnBubble(mouth, dir, a.ID, bossBigBubbleSpeed, true, s.cfg.Entities.Bubble.Lifespan)
		b.ShootCooldown = bossShootPeriod
		s.emit(entity.SoundShoot)
		s.changeBossState(a, entity.BossIdle)
	}
}

// updateStunned exposes the weak spot. A deflated player touching it
// climbs inside, an inflated one bounces off. The player is thrown out
// when the stun wears off.
func (s *Simulation) updateStunned(a, p *entity.Actor) {
	b := a.Boss
	ps := p.Player
	elapsed := s.time - b.PhaseSince

	if elapsed > bossStunTime {
		if ps.InButt {
			ps.InButt = false
			p.Visible = true
			p.Pos = a.Pos.Add(rect(s.cfg.Entities.Boss.ButtRect).Center())
			p.Vel = buttEjectVelocity
		}
		s.changeBossState(a, entity.BossIdle)
		return
	}

	if !ps.InButt && s.ButtBox(a).Collides(p.Hitbox()) {
		if p.Puffed {
			p.Vel = p.Vel.Neg()
		} else {
			ps.InButt = true
			p.Visible = false
			s.emit(entity.SoundEnterButt)
		}
	}
	b.StunFrame = int(math.Mod(elapsed*10, 5))
}
