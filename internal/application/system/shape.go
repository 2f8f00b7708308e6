package system

import (
	"math"

	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
)

// tryHitRectChange moves a's hit rectangle to target while shifting its
// position by delta, in sub-steps no larger than the configured step on
// any axis. Every sub-step probes the four one-unit edges of the next
// rectangle. A collision on one side of an axis pushes the actor away
// from it; collisions on all four sides refuse the change.
//
// On refusal position, velocity and hit rectangle are restored and false
// is returned. On success the hit rectangle equals target exactly.
func (s *Simulation) tryHitRectChange(a *entity.Actor, delta geom.Vec, target geom.Rect) bool {
	shape := s.cfg.Physics.Shape
	origPos, origVel, origRect := a.Pos, a.Vel, a.HitRect

	offset := geom.V(target.X-a.HitRect.X, target.Y-a.HitRect.Y)
	total := delta.Add(offset)
	dw := target.W - a.HitRect.W
	dh := target.H - a.HitRect.H

	steps := migrationSteps(shape.MaxStep, total.X, total.Y, dw, dh)
	if steps == 0 {
		a.Pos = a.Pos.Add(delta)
		a.HitRect = target
		return true
	}

	n := float64(steps)
	var push geom.Vec
	for i := 1; i <= steps; i++ {
		f := float64(i) / n
		next := geom.R(origRect.X+offset.X*f, origRect.Y+offset.Y*f, origRect.W+dw*f, origRect.H+dh*f)
		box := next.Translate(origPos.Add(delta.Scale(f)).Add(push))

		left := s.level.Penetration(geom.R(box.X, box.Y, 1, box.H))
		right := s.level.Penetration(geom.R(box.Right()-1, box.Y, 1, box.H))
		top := s.level.Penetration(geom.R(box.X, box.Y, box.W, 1))
		bottom := s.level.Penetration(geom.R(box.X, box.Bottom()-1, box.W, 1))

		hitL, hitR := !left.IsZero(), !right.IsZero()
		hitT, hitB := !top.IsZero(), !bottom.IsZero()
		if hitL && hitR && hitT && hitB {
			a.Pos, a.Vel, a.HitRect = origPos, origVel, origRect
			return false
		}

		if hitL && !hitR {
			push.X += math.Abs(left.X)
			a.Vel.X = math.Abs(a.Vel.X) + shape.PushImpulse
		}
		if hitR && !hitL {
			push.X -= math.Abs(right.X)
			a.Vel.X = -math.Abs(a.Vel.X) - shape.PushImpulse
		}
		if hitT && !hitB {
			push.Y += math.Abs(top.Y)
			a.Vel.Y = math.Abs(a.Vel.Y) + shape.PushImpulse
		}
		if hitB && !hitT {
			push.Y -= math.Abs(bottom.Y)
			a.Vel.Y = -math.Abs(a.Vel.Y) - shape.PushImpulse
		}
	}

	// Built from the whole delta so the result is exact.
	a.Pos = origPos.Add(delta).Add(push)
	a.HitRect = target
	return true
}

// migrationSteps returns how many sub-steps keep every change within maxStep.
func migrationSteps(maxStep float64, deltas ...float64) int {
	if maxStep <= 0 {
		return 0
	}
	steps := 0
	for _, d := range deltas {
		if n := int(math.Ceil(math.Abs(d) / maxStep)); n > steps {
			steps = n
		}
	}
	return steps
}
