package geom

import "math"

// pushSlop is the penetration below which a rectangle counts as touching.
const pushSlop = 1e-9

// orientation is the signed area of the turn p→q→r.
func orientation(p, q, r Vec) float64 {
	return (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
}

// SegmentsIntersect reports whether segments p1p2 and q1q2 cross.
// Collinear or endpoint-touching segments are reported as not crossing.
func SegmentsIntersect(p1, p2, q1, q2 Vec) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)
	return o1*o2 < 0 && o3*o4 < 0
}

// SegmentCrossesRect reports whether segment p1p2 crosses any edge of r.
func SegmentCrossesRect(p1, p2 Vec, r Rect) bool {
	tl := Vec{r.X, r.Y}
	tr := Vec{r.X + r.W, r.Y}
	bl := Vec{r.X, r.Y + r.H}
	br := Vec{r.X + r.W, r.Y + r.H}

	return SegmentsIntersect(p1, p2, tl, tr) ||
		SegmentsIntersect(p1, p2, tr, br) ||
		SegmentsIntersect(p1, p2, br, bl) ||
		SegmentsIntersect(p1, p2, bl, tl)
}

// ClosestPointOnSegment returns the point of segment ab nearest to p.
func ClosestPointOnSegment(p, a, b Vec) Vec {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / denom
	t = math.Max(0, math.Min(1, t))
	return a.Add(ab.Scale(t))
}

// SegmentHitsRect reports whether segment p1p2 lies inside r or crosses
// one of its edges.
func SegmentHitsRect(p1, p2 Vec, r Rect) bool {
	if r.Contains(p1) && r.Contains(p2) {
		return true
	}
	return SegmentCrossesRect(p1, p2, r)
}

// SegmentPushOut computes how far r must move along normal to clear the
// segment p1p2. It returns false when the segment does not cross r or the
// rectangle already sits on the normal's side, within pushSlop.
func SegmentPushOut(p1, p2 Vec, r Rect, normal Vec) (Vec, bool) {
	if !SegmentCrossesRect(p1, p2, r) {
		return Vec{}, false
	}
	center := r.Center()
	closest := ClosestPointOnSegment(center, p1, p2)
	depth := math.Hypot(r.W, r.H)/2 - center.Sub(closest).Dot(normal)
	if depth <= pushSlop {
		return Vec{}, false
	}
	return normal.Scale(depth), true
}
