package sim

import "math"

// Vec2 is a 2D world-space vector.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns a unit vector pointing along angle (radians).
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Angle returns the direction of v in radians; the zero vector yields 0.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// SegmentHitsCircle reports whether the segment p0->p1 passes within radius
// of center. The closest point is found by projecting center onto the segment;
// projections that fall outside the segment are a miss.
// A zero-length segment degrades to a point-in-circle test.
func SegmentHitsCircle(p0, p1 Vec2, radius float64, center Vec2) bool {
	d := p1.Sub(p0)
	length := d.Len()
	if length == 0 {
		return p0.Dist(center) <= radius
	}

	rel := center.Sub(p0)
	projection := (rel.X*d.X + rel.Y*d.Y) / length
	if projection < 0 || projection > length {
		return false
	}

	closest := p0.Add(d.Scale(projection / length))
	return center.Dist(closest) <= radius
}

// SegmentHitsRect reports whether the segment p0->p1 crosses any of the four
// edges of r. A segment lying entirely inside r does not count as a hit.
func SegmentHitsRect(p0, p1 Vec2, r Rect) bool {
	left, right := r.X, r.X+r.W
	top, bottom := r.Y, r.Y+r.H

	return LineIntersectsLine(p0, p1, V(left, top), V(left, bottom)) ||
		LineIntersectsLine(p0, p1, V(right, top), V(right, bottom)) ||
		LineIntersectsLine(p0, p1, V(left, top), V(right, top)) ||
		LineIntersectsLine(p0, p1, V(left, bottom), V(right, bottom))
}

// LineIntersectsLine reports whether segments a0->a1 and b0->b1 intersect.
// Parallel and collinear segments never intersect. Vertical segments are
// solved explicitly instead of through an infinite slope, and zero-length
// segments never intersect.
func LineIntersectsLine(a0, a1, b0, b1 Vec2) bool {
	if a0 == a1 || b0 == b1 {
		return false
	}

	aVertical := a0.X == a1.X
	bVertical := b0.X == b1.X

	var x, y float64
	switch {
	case aVertical && bVertical:
		return false
	case aVertical:
		bSlope, bIntercept := slopeIntercept(b0, b1)
		x = a0.X
		y = bSlope*x + bIntercept
	case bVertical:
		aSlope, aIntercept := slopeIntercept(a0, a1)
		x = b0.X
		y = aSlope*x + aIntercept
	default:
		aSlope, aIntercept := slopeIntercept(a0, a1)
		bSlope, bIntercept := slopeIntercept(b0, b1)
		if aSlope == bSlope {
			return false
		}
		x = (bIntercept - aIntercept) / (aSlope - bSlope)
		y = aSlope*x + aIntercept
	}

	return withinBounds(x, y, a0, a1) && withinBounds(x, y, b0, b1)
}

func slopeIntercept(p0, p1 Vec2) (slope, intercept float64) {
	slope = (p1.Y - p0.Y) / (p1.X - p0.X)
	return slope, p0.Y - slope*p0.X
}

// boundsEpsilon absorbs rounding when the intersection lies on an axis-aligned
// segment, whose bounding box has zero width or height.
const boundsEpsilon = 1e-7

func withinBounds(x, y float64, p0, p1 Vec2) bool {
	return x >= math.Min(p0.X, p1.X)-boundsEpsilon && x <= math.Max(p0.X, p1.X)+boundsEpsilon &&
		y >= math.Min(p0.Y, p1.Y)-boundsEpsilon && y <= math.Max(p0.Y, p1.Y)+boundsEpsilon
}
