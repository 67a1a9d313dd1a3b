package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTerrain_Density(t *testing.T) {
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- test

	open := SeedTerrain(rng, 0)
	assert.Empty(t, open.SolidRects())
	for row := 0; row < open.Rows; row++ {
		for col := 0; col < open.Cols; col++ {
			d := open.Cell(col, row).Density
			require.GreaterOrEqual(t, d, 0.0)
			require.Less(t, d, maxDensityNoise)
		}
	}

	walled := SeedTerrain(rng, 1)
	assert.Len(t, walled.SolidRects(), GridCols*GridRows)
}

func TestTerrain_Query(t *testing.T) {
	tr := NewTerrain(GridCols, GridRows)
	tr.setSolid(1, 2, true)

	col, row := CellAt(V(75, 120))
	assert.Equal(t, 1, col)
	assert.Equal(t, 2, row)
	assert.True(t, IsSolid(tr.Query(V(75, 120))))
	assert.False(t, tr.Query(V(25, 120)).Solid)

	assert.Equal(t, TileCell{}, tr.Query(V(-10, -10)), "outside the grid is empty")
	assert.Equal(t, TileCell{}, tr.Cell(GridCols, 0))
}

func TestTerrain_SetSolidTracksRects(t *testing.T) {
	tr := NewTerrain(4, 4)
	tr.setSolid(1, 2, true)
	tr.setSolid(1, 2, true)
	tr.setSolid(3, 0, true)
	require.Len(t, tr.SolidRects(), 2)
	assert.Equal(t, Rect{X: 50, Y: 100, W: CellSize, H: CellSize}, tr.SolidRects()[0])

	tr.setSolid(1, 2, false)
	assert.Equal(t, []Rect{CellRect(3, 0)}, tr.SolidRects())
}

func TestRandomCombatant_AvoidsSolidTiles(t *testing.T) {
	rng := rand.New(rand.NewSource(9)) // #nosec G404 -- test
	tr := SeedTerrain(rng, 0.3)
	for i := 0; i < 50; i++ {
		e := RandomCombatant(rng, tr)
		c := e.Variant.(Combatant)
		assert.False(t, tr.Query(e.Pos).Solid)
		assert.Equal(t, MaxHealth, c.Health)
		assert.GreaterOrEqual(t, e.Pos.X, spawnMargin)
		assert.LessOrEqual(t, e.Pos.X, ArenaWidth-spawnMargin)
	}
}
