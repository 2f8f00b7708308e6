package system

import (
	"math"

	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/domain/geom"
)

const (
	keyFollowRange   = 150.0
	keyBobPeriod     = 3.0
	keyBobAmount     = 10.0
	heartBobPeriod   = 4.0
	heartBobAmount   = 15.0
	grampaBobPeriod  = 5.0
	grampaBobAmount  = 10.0
	grampaTalkRange  = 300.0
	grampaCharTime   = 0.12
	grampaLinePause  = 1.0
	diagonalMinRatio = 4.0
)

// CharTime is how long the dialogue takes to reveal one character.
const CharTime = grampaCharTime

// bob moves a vertically around its spawn point along a sine wave.
func bob(a *entity.Actor, dt, period, amount float64) {
	a.BobTimer = math.Mod(a.BobTimer+dt, period)
	a.Pos.Y = a.Spawn.Y - amount*math.Sin(2*math.Pi*a.BobTimer/period)
}

func (s *Simulation) updateDecor(a *entity.Actor) {
	s.animate(a, 0)
}

// updateDiagonal pushes the player off the slope. A deflated player slides
// along it; an inflated one is redirected by ninety degrees.
func (s *Simulation) updateDiagonal(a, p *entity.Actor) {
	if p.Player.InButt {
		return
	}
	d := a.Diagonal
	delta, ok := geom.SegmentPushOut(d.P1, d.P2, p.Hitbox(), d.Normal)
	if !ok {
		return
	}
	p.Pos = p.Pos.Add(delta)

	if !p.Puffed && p.PuffingFrames == 0 {
		p.Vel = p.Vel.Sub(d.Normal.Scale(p.Vel.Dot(d.Normal)))
		return
	}

	ax, ay := math.Abs(p.Vel.X), math.Abs(p.Vel.Y)
	if ay != 0 && ax/ay > diagonalMinRatio {
		p.Vel.Y = 0
	} else if ax != 0 && ay/ax > diagonalMinRatio {
		p.Vel.X = 0
	}
	p.Vel.X, p.Vel.Y = p.Vel.Y, p.Vel.X
	if d.Dir == entity.DiagonalBotRight || d.Dir == entity.DiagonalTopLeft {
		p.Vel = p.Vel.Neg()
	}
}

// updateButton presses under an inflating player and releases once the
// player deflates. When every button is down the heart pops out and the
// buttons stay down for good.
func (s *Simulation) updateButton(a, p *entity.Actor) {
	bt := a.Button
	if s.level.HeartTaken || s.heartPopped {
		bt.Pressed = true
		a.Frame = 1
		return
	}

	if bt.Pressed {
		if !p.Inflating() {
			bt.Pressed = false
			a.Frame = 0
		}
		return
	}
	if !p.Inflating() || !a.Hitbox().Collides(p.Hitbox()) {
		return
	}

	bt.Pressed = true
	a.Frame = 1
	s.emit(entity.SoundButtonPress)
	if s.allButtonsPressed() {
		s.heartPopped = true
		if h := s.world.Get(s.world.HeartID); h != nil {
			h.Visible = true
		}
		s.emit(entity.SoundHeartPopped)
	}
}

func (s *Simulation) allButtonsPressed() bool {
	for _, id := range s.world.Buttons {
		if b := s.world.Get(id); b != nil && !b.Button.Pressed {
			return false
		}
	}
	return true
}

// HeartPopped reports whether the buttons have released the heart.
func (s *Simulation) HeartPopped() bool {
	return s.heartPopped
}

// updateKey bobs in place until the player touches it, then trails its
// holder through walls.
func (s *Simulation) updateKey(k, p *entity.Actor, dt float64) {
	k.Input = entity.ControlInput{}

	if holder := s.world.Get(k.Key.Holder); holder != nil {
		if holder.Pos.Sub(k.Pos).Len() > keyFollowRange {
			k.Input.Right = holder.Pos.X > k.Pos.X
			k.Input.Left = holder.Pos.X < k.Pos.X
			k.Input.Down = holder.Pos.Y > k.Pos.Y
			k.Input.Up = holder.Pos.Y < k.Pos.Y
		}
	} else {
		bob(k, dt, keyBobPeriod, keyBobAmount)
		if !p.IsDying() && k.Hitbox().Collides(p.Hitbox()) {
			k.Key.Holder = p.ID
			s.emit(entity.SoundKeyPickup)
		}
	}

	s.integrate(k, k.Input, dt)
}

// updateDoor ends the stage once the carried key reaches it.
func (s *Simulation) updateDoor(d, p *entity.Actor) {
	k := s.world.Get(s.world.KeyID)
	if k == nil || p.IsDying() || k.Key.Holder == 0 {
		return
	}
	if d.Hitbox().Collides(k.Hitbox()) {
		s.outcome |= OutcomeVictory
	}
}

func (s *Simulation) updateHeart(h, p *entity.Actor, dt float64) {
	if s.level.HeartTaken || !h.Visible {
		return
	}
	bob(h, dt, heartBobPeriod, heartBobAmount)

	if !p.IsDying() && h.Hitbox().Collides(p.Hitbox()) {
		p.MaxHealth++
		p.Health++
		h.Visible = false
		s.level.HeartTaken = true
		s.emit(entity.SoundHeartPickup)
	}
}

// updateGrampa bobs and runs the dialogue once the player comes close:
// each line is revealed character by character, with a pause between
// lines.
func (s *Simulation) updateGrampa(a, p *entity.Actor, dt float64) {
	s.integrate(a, entity.ControlInput{}, dt)
	bob(a, dt, grampaBobPeriod, grampaBobAmount)

	g := a.Grampa
	switch g.Phase {
	case entity.GrampaWaiting:
		if a.Center().Sub(p.Center()).Len() < grampaTalkRange {
			g.Timer = 0
			g.Phase = entity.GrampaTalking
		}
	case entity.GrampaTalking:
		if g.Line < len(g.Lines) {
			if g.Timer > float64(len(g.Lines[g.Line]))*grampaCharTime {
				g.Timer = 0
				g.Line++
				g.Phase = entity.GrampaPause
			}
		} else {
			g.Phase = entity.GrampaDone
		}
		g.Timer += dt
	case entity.GrampaPause:
		if g.Timer > grampaLinePause {
			g.Timer = 0
			g.Phase = entity.GrampaTalking
		} else {
			g.Timer += dt
		}
	}
}
