package sim

import "math"

// Input is the already-decoded host input for one tick.
type Input struct {
	// Pointer is the cursor in screen pixels; facing points from the screen
	// center toward it.
	Pointer          Vec2
	ScreenW, ScreenH float64

	Up, Down, Left, Right bool

	// WeaponSlot selects a weapon by 1-based slot; 0 leaves it unchanged.
	WeaponSlot int
	Fire       Trigger

	Respawn bool // spawn an extra combatant
	Quit    bool // remove the controlled combatant
}

// Movement returns the 8-directional movement impulse; diagonals are
// normalized so every direction has unit length.
func (in Input) Movement() Vec2 {
	var m Vec2
	if in.Up {
		m.Y--
	}
	if in.Down {
		m.Y++
	}
	if in.Left {
		m.X--
	}
	if in.Right {
		m.X++
	}
	if math.Abs(m.X)+math.Abs(m.Y) == 2 {
		m = m.Scale(1 / math.Sqrt2)
	}
	return m
}

// Aim returns the facing angle from the screen center to the pointer.
func (in Input) Aim() float64 {
	return in.Pointer.Sub(V(in.ScreenW/2, in.ScreenH/2)).Angle()
}
