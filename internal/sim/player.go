package sim

// RoundPhase is the local player's round state.
type RoundPhase uint8

const (
	PhaseAlive RoundPhase = iota
	PhaseDying
	PhaseRoundOver
)

func (p RoundPhase) String() string {
	switch p {
	case PhaseAlive:
		return "alive"
	case PhaseDying:
		return "dying"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

const (
	// DefaultRoundOverTicks is how long the death sequence runs before the
	// round ends.
	DefaultRoundOverTicks = 400

	viewportLongSide = 1600.0
	scopeZoom        = 1.1
)

// PlayerContext is the state of the locally controlled combatant, owned by the
// host and threaded through Tick.
type PlayerContext struct {
	// Index is the controlled combatant's entity index, or NoOwner once it
	// has been removed.
	Index    int
	Currency int

	// Camera is the world-space viewport centered on the player, and Zoom the
	// multiplier applied to it (scopeZoom while a zooming weapon is active).
	Camera Rect
	Zoom   float64

	// LastPos is where the controlled combatant was last seen, so the camera
	// can stay put after it dies.
	LastPos Vec2

	// Countdown is nil while alive and counts up from 0 once dying.
	Countdown *int
}

// NewPlayerContext returns a context controlling the entity at index.
func NewPlayerContext(index int) *PlayerContext {
	return &PlayerContext{Index: index, Zoom: 1}
}

// Phase derives the round phase from the countdown.
func (p *PlayerContext) Phase(roundOverTicks int) RoundPhase {
	switch {
	case p.Countdown == nil:
		return PhaseAlive
	case *p.Countdown > roundOverTicks:
		return PhaseRoundOver
	default:
		return PhaseDying
	}
}

// Controlling reports whether the player still has a live combatant.
func (p *PlayerContext) Controlling() bool {
	return p.Index != NoOwner
}

// startDying begins the death sequence; it is a no-op if already started.
func (p *PlayerContext) startDying() bool {
	if p.Countdown != nil {
		return false
	}
	zero := 0
	p.Countdown = &zero
	return true
}

// updateCamera recenters the viewport. The longer screen side maps to
// viewportLongSide world units, widened by scopeZoom when zoomed.
func (p *PlayerContext) updateCamera(screenW, screenH float64, zoomed bool) {
	w, h := viewportSize(screenW, screenH)
	p.Zoom = 1
	if zoomed {
		p.Zoom = scopeZoom
	}
	w *= p.Zoom
	h *= p.Zoom
	p.Camera = Rect{X: p.LastPos.X - w/2, Y: p.LastPos.Y - h/2, W: w, H: h}
}

func viewportSize(screenW, screenH float64) (float64, float64) {
	if screenW <= 0 || screenH <= 0 {
		return viewportLongSide, viewportLongSide
	}
	if screenH > screenW {
		return screenW / screenH * viewportLongSide, viewportLongSide
	}
	return viewportLongSide, screenH / screenW * viewportLongSide
}
