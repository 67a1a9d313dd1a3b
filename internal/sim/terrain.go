package sim

import (
	"math"
	"math/rand"
)

const (
	GridCols    = 100
	GridRows    = 100
	CellSize    = 50.0
	ArenaWidth  = GridCols * CellSize
	ArenaHeight = GridRows * CellSize

	maxDensityNoise = 0.2
)

// Arena is the playable rectangle; combatants outside it take damage.
var Arena = Rect{X: 0, Y: 0, W: ArenaWidth, H: ArenaHeight}

// TileCell is one grid cell. Density is cosmetic (renderer opacity); Solid
// cells are permanent obstacles that combatants bounce off.
type TileCell struct {
	Density float64
	Solid   bool
}

// IsSolid reports whether the cell blocks movement.
func IsSolid(c TileCell) bool {
	return c.Solid
}

// Terrain is the fixed-size tile grid, stored row-major.
type Terrain struct {
	Cols  int
	Rows  int
	cells []TileCell
	solid []int // indices of solid cells, kept for collision sweeps
}

// NewTerrain creates an empty grid with no density and no obstacles.
func NewTerrain(cols, rows int) *Terrain {
	return &Terrain{
		Cols:  cols,
		Rows:  rows,
		cells: make([]TileCell, cols*rows),
	}
}

// SeedTerrain builds the arena grid: every cell gets density noise in
// [0, 0.2) and becomes solid with probability solidDensity.
func SeedTerrain(rng *rand.Rand, solidDensity float64) *Terrain {
	t := NewTerrain(GridCols, GridRows)
	for i := range t.cells {
		t.cells[i].Density = rng.Float64() * maxDensityNoise
		if solidDensity > 0 && rng.Float64() < solidDensity {
			t.setSolid(i%t.Cols, i/t.Cols, true)
		}
	}
	return t
}

func (t *Terrain) inBounds(col, row int) bool {
	return col >= 0 && col < t.Cols && row >= 0 && row < t.Rows
}

// Cell returns the cell at (col, row); out-of-grid coordinates yield an empty cell.
func (t *Terrain) Cell(col, row int) TileCell {
	if !t.inBounds(col, row) {
		return TileCell{}
	}
	return t.cells[row*t.Cols+col]
}

// CellAt converts a world position to grid coordinates by flooring.
func CellAt(pos Vec2) (col, row int) {
	return int(math.Floor(pos.X / CellSize)), int(math.Floor(pos.Y / CellSize))
}

// Query returns the cell containing the world position.
func (t *Terrain) Query(pos Vec2) TileCell {
	col, row := CellAt(pos)
	return t.Cell(col, row)
}

// CellRect returns the world-space rectangle of a cell.
func CellRect(col, row int) Rect {
	return Rect{X: float64(col) * CellSize, Y: float64(row) * CellSize, W: CellSize, H: CellSize}
}

// SolidRects returns the world rectangles of every solid cell.
func (t *Terrain) SolidRects() []Rect {
	out := make([]Rect, 0, len(t.solid))
	for _, i := range t.solid {
		out = append(out, CellRect(i%t.Cols, i/t.Cols))
	}
	return out
}

func (t *Terrain) setSolid(col, row int, solid bool) {
	if !t.inBounds(col, row) {
		return
	}
	i := row*t.Cols + col
	if t.cells[i].Solid == solid {
		return
	}
	t.cells[i].Solid = solid
	if solid {
		t.solid = append(t.solid, i)
		return
	}
	for k, idx := range t.solid {
		if idx == i {
			t.solid = append(t.solid[:k], t.solid[k+1:]...)
			break
		}
	}
}
