package system

import (
	"math"

	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
)

const (
	movingSolidRange = 200.0
	movingSolidAccel = 5.0
)

// integrate is the physical step shared by every movable actor: death
// countdown, input acceleration, water drag, velocity cap, facing, render
// angle, animation, then the two axis moves.
func (s *Simulation) integrate(a *entity.Actor, in entity.ControlInput, dt float64) {
	w := s.cfg.Physics.World

	if a.DyingTime > 0 {
		a.DyingTime -= dt
		if a.DyingTime <= 0 {
			a.DyingTime = 0
			s.die(a)
		}
	}

	var mx, my float64
	if !a.Puffed && !a.IsDying() {
		mx, my = in.Axis()
	}

	acc := geom.V(mx*a.AccConst, my*a.AccConst)
	if a.GoingSlow && w.SlowDivisor > 0 {
		acc = acc.Scale(1 / w.SlowDivisor)
	}
	a.Vel = a.Vel.Add(acc.Scale(dt))
	a.Vel = a.Vel.Scale(math.Pow(1-w.WaterFriction, dt))

	if mx == 0 && my == 0 && a.Vel.Len() < w.VelocityDeadzone {
		a.Vel = geom.Vec{}
	}

	a.Vel.X = clamp(a.Vel.X, -a.VelocityLimit, a.VelocityLimit)
	a.Vel.Y = clamp(a.Vel.Y, -a.VelocityLimit, a.VelocityLimit)

	if a.Vel.X > 0 {
		a.Facing = entity.FacingRight
	} else if a.Vel.X < 0 {
		a.Facing = entity.FacingLeft
	}

	speed := a.Vel.Len()
	if !a.FixedAngle && speed > 0 {
		if a.Puffed {
			a.Angle = math.Mod(a.Angle+dt*speed/6, 360)
		} else {
			a.Angle = a.Vel.Degrees()
			if a.Facing == entity.FacingLeft {
				a.Angle -= 180
			}
		}
	}

	if a.PuffingFrames == 0 {
		s.animate(a, speed)
	}

	s.moveX(a, a.Vel.X*dt, s.bounce(a, &a.Vel.X))
	s.moveY(a, a.Vel.Y*dt, s.bounce(a, &a.Vel.Y))
}

// bounce is the default collision response for one velocity component.
func (s *Simulation) bounce(a *entity.Actor, v *float64) func() {
	return func() {
		if a.DiesOnImpact {
			s.die(a)
		}
		if a.Puffed {
			*v = -*v
		} else {
			*v = 0
		}
	}
}

// animate picks the idle or swim strip and advances its frame.
func (s *Simulation) animate(a *entity.Actor, speed float64) {
	a.Anim = entity.AnimIdle
	delay := a.IdleAnimDelay
	if speed > 0 && a.SwimFrames > 0 {
		a.Anim = entity.AnimSwim
		delay = a.MoveAnimDelay
	}

	total := a.FrameCount(a.Anim)
	if total <= 0 {
		a.Frame = 0
		return
	}
	a.Frame %= total
	if a.Frame == 0 && a.FirstFrameHold > 0 {
		delay = a.FirstFrameHold
	}
	if s.time-a.LastAnimTime > delay {
		a.LastAnimTime = s.time
		a.Frame = (a.Frame + 1) % total
	}
}

func (s *Simulation) moveX(a *entity.Actor, amount float64, onCollide func()) int {
	return s.moveAxis(a, &a.RemX, geom.V(1, 0), amount, onCollide)
}

func (s *Simulation) moveY(a *entity.Actor, amount float64, onCollide func()) int {
	return s.moveAxis(a, &a.RemY, geom.V(0, 1), amount, onCollide)
}

// moveAxis adds amount to the remainder, then walks the rounded whole part
// one unit at a time. A step is refused when the hitbox would overlap a
// collidable solid or leave the level; onCollide runs and the walk stops.
// Breakable solids hit hard enough by an inflated actor are destroyed and
// the step goes through. It returns the number of committed steps.
func (s *Simulation) moveAxis(a *entity.Actor, rem *float64, axis geom.Vec, amount float64, onCollide func()) int {
	*rem += amount
	n := int(math.Round(*rem))
	if n == 0 {
		return 0
	}
	*rem -= float64(n)

	step := axis
	if n < 0 {
		step = axis.Neg()
		n = -n
	}

	moved := 0
	for ; n > 0; n-- {
		next := a.Pos.Add(step)
		if !a.NoClip && s.blocked(a, next, step) {
			if onCollide != nil {
				onCollide()
			}
			break
		}
		a.Pos = next
		moved++
	}
	return moved
}

// blocked reports whether a cannot stand at pos after a unit step. It
// breaks every breakable solid in the way when a qualifies.
func (s *Simulation) blocked(a *entity.Actor, pos, step geom.Vec) bool {
	box := a.HitboxAt(pos)
	if s.leavesLevel(box, step) {
		return true
	}
	for {
		id := s.level.Blocking(box)
		if id == entity.NoSolid {
			return false
		}
		if !s.canBreak(a, s.level.Solid(id)) {
			return true
		}
		s.breakSolid(id)
	}
}

// leavesLevel reports whether box crosses the level edge the step moves
// toward. Actors already outside may still move back in.
func (s *Simulation) leavesLevel(box geom.Rect, step geom.Vec) bool {
	switch {
	case step.X > 0:
		return box.Right() > s.level.Width
	case step.X < 0:
		return box.X < 0
	case step.Y > 0:
		return box.Bottom() > s.level.Height
	case step.Y < 0:
		return box.Y < 0
	}
	return false
}

func (s *Simulation) canBreak(a *entity.Actor, sol *entity.Solid) bool {
	return sol.Breakable && a.Inflating() && a.Vel.Len() > s.cfg.Physics.World.BreakSpeed
}

func (s *Simulation) breakSolid(id entity.SolidID) {
	if s.level.RemoveSolid(id) {
		s.stats.BlocksBroken++
		s.emit(entity.SoundBlockBreak)
	}
}

// hurt applies damage from hurter. Health never drops below zero and the
// death countdown starts once.
func (s *Simulation) hurt(a, hurter *entity.Actor, damage int) {
	w := s.cfg.Physics.World

	a.Health -= damage
	if a.Health < 0 {
		a.Health = 0
	}
	if a.Health == 0 && !a.IsDying() {
		if w.DyingTime > 0 {
			a.DyingTime = w.DyingTime
		} else {
			s.die(a)
		}
	}

	if !a.NoKnockback {
		a.Vel = a.Center().Sub(hurter.Center()).Normalize().Scale(w.Knockback)
	}

	if a.Kind == entity.KindPlayer {
		if !a.IsDying() {
			a.Player.InvulTime = s.cfg.Physics.Puff.InvulTime
		}
		s.outcome |= OutcomePlayerHurt
		s.emit(entity.SoundPlayerHurt)
	}
}

// die hides the actor for good. Repeated calls are no-ops.
func (s *Simulation) die(a *entity.Actor) {
	if a.Dead {
		return
	}
	a.Visible = false
	a.Dead = true
	a.DyingTime = 0
	s.stats.Kills[a.Kind]++

	switch a.Kind {
	case entity.KindPlayer:
		s.outcome |= OutcomePlayerDied
	case entity.KindBoss:
		s.outcome |= OutcomeBossDefeated
	}
}

// updateMovingSolids runs the vertical oscillation of moving blocks.
func (s *Simulation) updateMovingSolids(dt float64) {
	s.level.EachSolid(func(id entity.SolidID, sol *entity.Solid) {
		if !sol.Moving {
			return
		}
		if sol.Rect.Y >= sol.Origin.Y-movingSolidRange {
			sol.Vel.Y -= movingSolidAccel
		} else {
			sol.Vel.Y += movingSolidAccel
		}

		sol.RemX += sol.Vel.X * dt
		dx := math.Round(sol.RemX)
		sol.RemX -= dx
		sol.RemY += sol.Vel.Y * dt
		dy := math.Round(sol.RemY)
		sol.RemY -= dy

		if dx != 0 || dy != 0 {
			s.level.SetSolidRect(id, sol.Rect.Translate(geom.V(dx, dy)))
		}
	})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
