package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerContext_Phase(t *testing.T) {
	p := NewPlayerContext(0)
	assert.Equal(t, PhaseAlive, p.Phase(10))

	assert.True(t, p.startDying())
	assert.False(t, p.startDying(), "countdown only starts once")
	assert.Equal(t, PhaseDying, p.Phase(10))

	*p.Countdown = 10
	assert.Equal(t, PhaseDying, p.Phase(10))
	*p.Countdown = 11
	assert.Equal(t, PhaseRoundOver, p.Phase(10))
}

func TestPlayerContext_Camera(t *testing.T) {
	p := NewPlayerContext(0)
	p.LastPos = V(2500, 2500)

	p.updateCamera(1600, 900, false)
	assert.Equal(t, Rect{X: 1700, Y: 2050, W: 1600, H: 900}, p.Camera)
	assert.Equal(t, 1.0, p.Zoom)

	p.updateCamera(900, 1600, false)
	assert.InDelta(t, 900, p.Camera.W, 1e-9)
	assert.InDelta(t, 1600, p.Camera.H, 1e-9)

	p.updateCamera(1600, 900, true)
	assert.InDelta(t, 1760, p.Camera.W, 1e-9)
	assert.InDelta(t, 990, p.Camera.H, 1e-9)
	assert.InDelta(t, p.LastPos.X, p.Camera.Center().X, 1e-9)
	assert.InDelta(t, p.LastPos.Y, p.Camera.Center().Y, 1e-9)
}

func TestInput_MovementIsNormalized(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want Vec2
	}{
		{"idle", Input{}, Vec2{}},
		{"up", Input{Up: true}, V(0, -1)},
		{"opposed", Input{Left: true, Right: true}, Vec2{}},
		{"diagonal", Input{Down: true, Right: true}, V(1/math.Sqrt2, 1/math.Sqrt2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Movement()
			assert.InDelta(t, tc.want.X, got.X, 1e-12)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-12)
		})
	}
}

func TestInput_Aim(t *testing.T) {
	in := Input{Pointer: V(800, 900), ScreenW: 1600, ScreenH: 900}
	assert.InDelta(t, math.Pi/2, in.Aim(), 1e-12, "pointer below center aims down")

	in.Pointer = V(0, 450)
	assert.InDelta(t, math.Pi, in.Aim(), 1e-12)
}

func TestEventLog_Queries(t *testing.T) {
	l := NewEventLog()
	l.Add(Event{Tick: 1, Kind: EventFire, Entity: 0, Source: 0})
	l.Add(Event{Tick: 2, Kind: EventHit, Entity: 1, Source: 0, Value: 25})
	l.Add(Event{Tick: 3, Kind: EventHit, Entity: 1, Source: NoOwner, Value: 8})

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Count(EventHit))
	assert.Len(t, l.Filter(EventFire), 1)
	assert.Len(t, l.Since(1), 2)
	assert.Nil(t, l.Since(3))
	assert.Len(t, l.Recent(2), 2)
	assert.Len(t, l.Recent(10), 3)

	last, ok := l.LastOf(EventHit)
	assert.True(t, ok)
	assert.Equal(t, 3, last.Tick)
	_, ok = l.LastOf(EventKill)
	assert.False(t, ok)

	assert.Contains(t, last.String(), "hit")
	assert.Contains(t, last.String(), "<- --")
	assert.Contains(t, l.Entries()[1].String(), "<- #0")
}
