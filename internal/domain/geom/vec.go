// Package geom holds the value types and pure functions every collision
// query is built on: vectors, axis-aligned rectangles and segment tests.
package geom

import "math"

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k}
}

func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector of v. A zero vector stays zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// UnitFromDegrees returns the unit vector pointing at angle degrees,
// measured clockwise from +X in screen space.
func UnitFromDegrees(deg float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{math.Cos(rad), math.Sin(rad)}
}

// Degrees returns the direction of v in degrees.
func (v Vec) Degrees() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Rotate rotates p around pivot by deg degrees.
func Rotate(p, pivot Vec, deg float64) Vec {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Vec{
		X: dx*cos - dy*sin + pivot.X,
		Y: dx*sin + dy*cos + pivot.Y,
	}
}
