package entity

import "github.com/younwookim/pufferdive/internal/domain/geom"

// Actor is the record shared by every simulated entity. Kind selects the
// behaviour, and the matching species pointer carries the extra state.
type Actor struct {
	ID   EntityID
	Kind Kind

	Pos    geom.Vec
	Vel    geom.Vec
	RemX   float64
	RemY   float64
	Width  float64
	Height float64
	Spawn  geom.Vec

	// HitRect is relative to Pos and independent of the render size.
	HitRect geom.Rect

	AccConst      float64
	VelocityLimit float64
	GoingSlow     bool
	Input         ControlInput

	Health    int
	MaxHealth int
	DyingTime float64
	Dead      bool
	Visible   bool

	Facing Facing
	Angle  float64

	Anim           AnimSet
	Frame          int
	IdleFrames     int
	SwimFrames     int
	LastAnimTime   float64
	MoveAnimDelay  float64
	IdleAnimDelay  float64
	FirstFrameHold float64 // extra delay on frame 0, zero when unused

	NoClip       bool
	DiesOnImpact bool
	FixedAngle   bool // angle is driven by behaviour, not velocity
	NoKnockback  bool

	// Inflation: Puffed is the fully inflated state, PuffingFrames counts
	// remaining transition phases (positive inflating, negative deflating).
	Puffed        bool
	PuffingFrames int

	LastThink float64
	BobTimer  float64 // phase of the idle bob, for actors anchored to Spawn

	Player   *PlayerState
	Fish     *FishState
	Shrimp   *ShrimpState
	Bubble   *BubbleState
	Boss     *BossState
	Key      *KeyState
	Button   *ButtonState
	Grampa   *GrampaState
	Decor    *DecorState
	Diagonal *DiagonalState
}

// Hitbox returns the hit rectangle in world space.
func (a *Actor) Hitbox() geom.Rect {
	return a.HitRect.Translate(a.Pos)
}

// HitboxAt returns the hit rectangle as if the actor stood at pos.
func (a *Actor) HitboxAt(pos geom.Vec) geom.Rect {
	return a.HitRect.Translate(pos)
}

// Center returns the middle of the render rectangle.
func (a *Actor) Center() geom.Vec {
	return geom.V(a.Pos.X+a.Width/2, a.Pos.Y+a.Height/2)
}

// IsDying reports whether the actor is dead or counting down to death.
func (a *Actor) IsDying() bool {
	return a.Dead || a.DyingTime != 0
}

// Inflating reports whether the actor is inflated or mid-transition.
func (a *Actor) Inflating() bool {
	return a.Puffed || a.PuffingFrames > 0
}

// Touches reports whether both actors are visible and their hitboxes overlap.
func (a *Actor) Touches(o *Actor) bool {
	if !a.Visible || !o.Visible {
		return false
	}
	return a.Hitbox().Collides(o.Hitbox())
}

// FrameCount returns the number of frames of the given strip.
func (a *Actor) FrameCount(set AnimSet) int {
	if set == AnimSwim {
		return a.SwimFrames
	}
	return a.IdleFrames
}
