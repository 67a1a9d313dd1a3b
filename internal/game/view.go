package game

import (
	"math"

	"github.com/Garsondee/Skirmish/internal/sim"
)

// view maps world coordinates inside the player's camera rectangle onto the
// screen. The camera already has the screen's aspect ratio, so one scale
// factor covers both axes.
type view struct {
	cam   sim.Rect
	scale float64 // screen pixels per world unit
}

func newView(cam sim.Rect, screenW, screenH int) view {
	v := view{cam: cam, scale: 1}
	if cam.W > 0 && screenW > 0 {
		v.scale = float64(screenW) / cam.W
	} else if cam.H > 0 && screenH > 0 {
		v.scale = float64(screenH) / cam.H
	}
	return v
}

func (v view) toScreen(p sim.Vec2) (float32, float32) {
	return float32((p.X - v.cam.X) * v.scale), float32((p.Y - v.cam.Y) * v.scale)
}

func (v view) length(d float64) float32 {
	return float32(d * v.scale)
}

// visible reports whether r overlaps the camera rectangle.
func (v view) visible(r sim.Rect) bool {
	return r.X < v.cam.X+v.cam.W && r.X+r.W > v.cam.X &&
		r.Y < v.cam.Y+v.cam.H && r.Y+r.H > v.cam.Y
}

// cellRange returns the half-open grid range covered by the camera, clamped
// to the terrain.
func (v view) cellRange(t *sim.Terrain) (col0, row0, col1, row1 int) {
	col0 = clampInt(int(math.Floor(v.cam.X/sim.CellSize)), 0, t.Cols)
	row0 = clampInt(int(math.Floor(v.cam.Y/sim.CellSize)), 0, t.Rows)
	col1 = clampInt(int(math.Ceil((v.cam.X+v.cam.W)/sim.CellSize)), 0, t.Cols)
	row1 = clampInt(int(math.Ceil((v.cam.Y+v.cam.H)/sim.CellSize)), 0, t.Rows)
	return col0, row0, col1, row1
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
