package sim

// Round construction options and run helpers shared by tests and the
// headless runner.

// WithEntities replaces the randomly spawned combatants with entities, in order.
func WithEntities(entities ...Entity) Option {
	return func(s *Sim, p *PlayerContext) {
		s.Store = NewStore(entities...)
		if p.Index >= s.Store.Len() {
			p.Index = NoOwner
		}
	}
}

// WithCombatant appends a combatant at pos holding kind, facing along +X.
func WithCombatant(pos Vec2, kind WeaponKind) Option {
	return func(s *Sim, p *PlayerContext) {
		s.Store = NewStore(append(s.Store.SnapshotAll(), NewCombatant(pos, kind, 0))...)
		if !p.Controlling() {
			p.Index = s.Store.Len() - 1
		}
	}
}

// WithEmptyTerrain clears every obstacle from the seeded grid.
func WithEmptyTerrain() Option {
	return func(s *Sim, _ *PlayerContext) {
		for _, r := range s.Terrain.SolidRects() {
			col, row := CellAt(r.Center())
			s.Terrain.setSolid(col, row, false)
		}
	}
}

// WithSolidTile marks the cell at (col, row) as an obstacle.
func WithSolidTile(col, row int) Option {
	return func(s *Sim, _ *PlayerContext) {
		s.Terrain.setSolid(col, row, true)
	}
}

// WithPlayerIndex hands control to the entity at index, or NoOwner.
func WithPlayerIndex(index int) Option {
	return func(_ *Sim, p *PlayerContext) {
		p.Index = index
	}
}

// Controller decides the player's input for the next tick.
type Controller func(s *Sim, p *PlayerContext) Input

// Idle is a Controller that never presses anything.
func Idle(*Sim, *PlayerContext) Input {
	return Input{}
}

// RunTicks advances the round n ticks (or until it finishes) driven by ctrl
// and returns the number of ticks run.
func (s *Sim) RunTicks(p *PlayerContext, ctrl Controller, n int) int {
	return s.RunUntil(p, ctrl, func(*Sim, *PlayerContext) bool { return false }, n)
}

// RunUntil advances the round up to maxTicks, stopping early once done
// returns true or the round ends. Returns the number of ticks run.
func (s *Sim) RunUntil(p *PlayerContext, ctrl Controller, done func(*Sim, *PlayerContext) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		if s.finished {
			return i
		}
		over := s.Tick(p, ctrl(s, p))
		if over || done(s, p) {
			return i + 1
		}
	}
	return maxTicks
}
