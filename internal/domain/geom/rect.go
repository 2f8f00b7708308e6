package geom

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Pos() Vec {
	return Vec{r.X, r.Y}
}

func (r Rect) Size() Vec {
	return Vec{r.W, r.H}
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.W, r.H}
}

// Grow returns r expanded by m on every side.
func (r Rect) Grow(m float64) Rect {
	return Rect{r.X - m, r.Y - m, r.W + 2*m, r.H + 2*m}
}

// Centered returns a rectangle of r's size centered on c.
func (r Rect) Centered(c Vec) Rect {
	return Rect{c.X - r.W/2, c.Y - r.H/2, r.W, r.H}
}

// Collides reports whether r and o overlap. Touching edges do not count.
func (r Rect) Collides(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Depth returns the signed vector that moves r out of o along the axis
// with the smaller overlap. Equal overlaps resolve horizontally. A zero
// vector means the rectangles do not overlap.
func (r Rect) Depth(o Rect) Vec {
	if !r.Collides(o) {
		return Vec{}
	}

	var dx, dy float64
	overlapLeft := o.X + o.W - r.X
	overlapRight := r.X + r.W - o.X
	if overlapLeft < overlapRight {
		dx = overlapLeft
	} else {
		dx = -overlapRight
	}

	overlapTop := o.Y + o.H - r.Y
	overlapBottom := r.Y + r.H - o.Y
	if overlapTop < overlapBottom {
		dy = overlapTop
	} else {
		dy = -overlapBottom
	}

	if abs(dy) < abs(dx) {
		return Vec{0, dy}
	}
	return Vec{dx, 0}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
