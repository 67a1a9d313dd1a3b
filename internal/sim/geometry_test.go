package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIntersectsLine_Crossing(t *testing.T) {
	a0, a1 := V(0, 0), V(10, 10)
	b0, b1 := V(0, 10), V(10, 0)
	assert.True(t, LineIntersectsLine(a0, a1, b0, b1))
	assert.True(t, LineIntersectsLine(b0, b1, a0, a1), "intersection must be symmetric")
}

func TestLineIntersectsLine_DisjointSegments(t *testing.T) {
	// The infinite lines cross at (2.5, 2.5), outside the second segment.
	assert.False(t, LineIntersectsLine(V(0, 0), V(1, 1), V(5, 0), V(6, -1)))
}

func TestLineIntersectsLine_Parallel(t *testing.T) {
	assert.False(t, LineIntersectsLine(V(0, 0), V(10, 0), V(0, 5), V(10, 5)))
	// Collinear overlap is treated like parallel.
	assert.False(t, LineIntersectsLine(V(0, 0), V(10, 10), V(5, 5), V(15, 15)))
}

func TestLineIntersectsLine_Vertical(t *testing.T) {
	vertical0, vertical1 := V(5, 0), V(5, 10)
	assert.True(t, LineIntersectsLine(vertical0, vertical1, V(0, 5), V(10, 5)))
	assert.True(t, LineIntersectsLine(V(0, 5), V(10, 5), vertical0, vertical1))
	assert.True(t, LineIntersectsLine(vertical0, vertical1, V(0, 0), V(10, 10)))

	assert.False(t, LineIntersectsLine(vertical0, vertical1, V(6, 0), V(10, 10)))
	assert.False(t, LineIntersectsLine(vertical0, vertical1, V(7, 0), V(7, 10)), "both vertical")
}

func TestLineIntersectsLine_ZeroLength(t *testing.T) {
	assert.False(t, LineIntersectsLine(V(3, 3), V(3, 3), V(0, 0), V(10, 10)))
	assert.False(t, LineIntersectsLine(V(0, 0), V(10, 10), V(3, 3), V(3, 3)))
}

func TestSegmentHitsCircle(t *testing.T) {
	p0, p1 := V(0, 0), V(100, 0)
	assert.True(t, SegmentHitsCircle(p0, p1, 10, V(50, 5)))
	assert.True(t, SegmentHitsCircle(p0, p1, 10, V(50, 10)), "edge of radius counts")
	assert.False(t, SegmentHitsCircle(p0, p1, 10, V(50, 20)))
	assert.False(t, SegmentHitsCircle(p0, p1, 10, V(-20, 0)), "behind the segment start")
	assert.False(t, SegmentHitsCircle(p0, p1, 10, V(120, 0)), "past the segment end")
}

func TestSegmentHitsCircle_ZeroLength(t *testing.T) {
	assert.True(t, SegmentHitsCircle(V(0, 0), V(0, 0), 5, V(3, 0)))
	assert.False(t, SegmentHitsCircle(V(0, 0), V(0, 0), 5, V(6, 0)))
}

func TestSegmentHitsRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, SegmentHitsRect(V(-5, 5), V(5, 5), r), "enters through the left edge")
	assert.True(t, SegmentHitsRect(V(5, -5), V(5, 15), r), "vertical pass through")
	assert.True(t, SegmentHitsRect(V(-5, -4), V(15, 16), r), "diagonal pass through")
	assert.False(t, SegmentHitsRect(V(2, 2), V(8, 8), r), "fully inside")
	assert.False(t, SegmentHitsRect(V(20, 20), V(30, 30), r), "fully outside")
}

func TestVec2_Basics(t *testing.T) {
	v := V(3, 4)
	assert.InDelta(t, 5.0, v.Len(), 1e-12)
	assert.InDelta(t, 5.0, V(0, 0).Dist(v), 1e-12)
	assert.Equal(t, V(4, 6), v.Add(V(1, 2)))
	assert.Equal(t, V(2, 2), v.Sub(V(1, 2)))
	assert.Equal(t, V(6, 8), v.Scale(2))
	assert.InDelta(t, math.Pi/2, V(0, 1).Angle(), 1e-12)

	u := FromAngle(math.Pi)
	assert.InDelta(t, -1.0, u.X, 1e-12)
	assert.InDelta(t, 0.0, u.Y, 1e-12)
}

func TestRect_ContainsAndCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.True(t, r.Contains(V(10, 20)))
	assert.True(t, r.Contains(V(40, 60)))
	assert.False(t, r.Contains(V(9.9, 30)))
	assert.Equal(t, V(25, 40), r.Center())
}
