package sim

import (
	"fmt"
	"math"
)

const (
	drag            = 0.90 // velocity damping applied to every entity each tick
	regenPerTick    = 0.02
	outOfBoundsHurt = 1.0

	attractRadius     = 100.0
	pickupRadius      = 40.0
	pickupPhaseStep   = 0.1
	particleFadeTicks = 30
)

// Tick advances the round by one frame. Every entity is visited in
// collection order; hit tests read a snapshot taken before the pass, and
// removals/spawns are batched and committed after it. Tick returns true
// exactly once, on the frame the death sequence completes.
func (s *Sim) Tick(p *PlayerContext, in Input) bool {
	if s.finished {
		return false
	}
	s.Frame++

	b := NewBatch()
	if in.Respawn {
		b.DeferAppend(RandomCombatant(s.rng, s.Terrain))
	}

	snap := s.Store.SnapshotAll()
	zoomed := false
	for i := 0; i < s.Store.Len(); i++ {
		e := s.Store.At(i)
		switch v := e.Variant.(type) {
		case Combatant:
			if s.updateCombatant(i, e, v, snap, p, in, b) {
				zoomed = true
			}
		case Pickup:
			s.updatePickup(i, e, v, snap, p, b)
		case Particle:
			s.updateParticle(i, e, v, b)
		case Projectile:
			s.updateProjectile(i, e, v, b)
		default:
			panic(fmt.Sprintf("sim: unhandled variant %T", v))
		}

		e.Pos = e.Pos.Add(e.Vel)
		e.Vel = e.Vel.Scale(drag)
	}

	remap := s.Store.ApplyDeferred(b)
	if in.Respawn {
		// The respawned combatant was the batch's first append.
		idx := s.Store.Len() - len(b.Appends())
		s.Events.Add(Event{Tick: s.Frame, Kind: EventRespawn, Entity: idx, Source: NoOwner})
		s.log.Info().Int("entity", idx).Msg("combatant spawned")
	}
	if p.Controlling() {
		idx, ok := remap.Index(p.Index)
		if !ok {
			idx = NoOwner
		}
		p.Index = idx
	}
	if p.Controlling() && p.Index < s.Store.Len() {
		p.LastPos = s.Store.At(p.Index).Pos
	}
	p.updateCamera(in.ScreenW, in.ScreenH, zoomed)
	s.metrics.observe(s.Store.All())

	if p.Countdown != nil {
		if *p.Countdown > s.cfg.RoundOverTicks {
			s.finished = true
			s.Events.Add(Event{Tick: s.Frame, Kind: EventRoundOver, Entity: NoOwner, Source: NoOwner, Value: float64(p.Currency)})
			s.log.Info().Int("currency", p.Currency).Int("ticks", s.Frame).Msg("round over")
			return true
		}
		*p.Countdown++
	}
	return false
}

// updateCombatant runs one combatant's tick and reports whether it is the
// controlled combatant holding a zooming weapon.
func (s *Sim) updateCombatant(i int, e *Entity, c Combatant, snap []Entity, p *PlayerContext, in Input, b *Batch) bool {
	defer func() { e.Variant = c }()

	if c.Health < MaxHealth {
		c.Health = math.Min(MaxHealth, c.Health+regenPerTick)
	}

	source := s.resolveContacts(i, e, &c, snap, b)

	local := i == p.Index
	zoomed := false
	if local {
		c.Facing = in.Aim()

		if in.Quit && b.DeferDelete(i) {
			p.startDying()
			s.Events.Add(Event{Tick: s.Frame, Kind: EventQuit, Entity: i, Source: NoOwner})
			s.log.Info().Int("entity", i).Msg("player quit")
		}

		if p.Countdown == nil {
			s.selectWeapon(i, &c, in.WeaponSlot)
			zoomed = c.Weapon.Kind.Zooms()

			kind := c.Weapon.Kind
			queued := len(b.Appends())
			if Fire(e, &c, i, in.Fire, s.rng, b) {
				shots := 0
				for _, a := range b.Appends()[queued:] {
					if a.Kind() == KindProjectile {
						shots++
					}
				}
				s.metrics.shot(kind)
				s.Events.Add(Event{Tick: s.Frame, Kind: EventFire, Entity: i, Source: i, Detail: kind.String(), Value: float64(shots)})
				s.hot.Debug().Int("entity", i).Stringer("weapon", kind).Msg("fired")
			}

			e.Vel = e.Vel.Add(in.Movement())
		}
	}
	c.Weapon.Cooldown++

	s.collideTerrain(e)

	if !Arena.Contains(e.Pos) {
		c.Health -= outOfBoundsHurt
	}

	if c.Health <= 0 && b.DeferDelete(i) {
		b.DeferAppend(deathBurst(e.Pos)...)
		if local {
			p.startDying()
		}
		s.metrics.kill()
		who := "combatant"
		if local {
			who = PlayerDetail
		}
		s.Events.Add(Event{Tick: s.Frame, Kind: EventKill, Entity: i, Source: source, Detail: who, Value: c.Health})
		s.log.Info().Int("entity", i).Int("killer", source).Bool("local", local).Msg("combatant down")
	}
	return zoomed
}

func (s *Sim) selectWeapon(i int, c *Combatant, slot int) {
	kind, ok := KindForSlot(slot)
	if !ok || kind == c.Weapon.Kind {
		return
	}
	c.Weapon.Kind = kind
	if kind == WeaponKnife {
		c.Weapon.Side = true
	}
	s.Events.Add(Event{Tick: s.Frame, Kind: EventWeapon, Entity: i, Source: NoOwner, Detail: kind.String()})
	s.log.Debug().Int("entity", i).Stringer("weapon", kind).Msg("weapon selected")
}

// collideTerrain bounces e off every solid cell its velocity would sweep
// through this tick, reflecting the component normal to the nearest face.
func (s *Sim) collideTerrain(e *Entity) {
	t := s.Terrain
	for _, idx := range t.solid {
		r := CellRect(idx%t.Cols, idx/t.Cols)
		if !SegmentHitsRect(e.Pos, e.Pos.Add(e.Vel), r) {
			continue
		}
		e.Vel = reflectOff(e.Pos, e.Vel, r)
		e.Pos = e.Pos.Add(e.Vel)
	}
}

func reflectOff(pos, vel Vec2, r Rect) Vec2 {
	d := pos.Sub(r.Center())
	if math.Abs(d.X) >= math.Abs(d.Y) {
		vel.X = -vel.X
	} else {
		vel.Y = -vel.Y
	}
	return vel
}

func (s *Sim) updatePickup(i int, e *Entity, v Pickup, snap []Entity, p *PlayerContext, b *Batch) {
	v.Phase += pickupPhaseStep
	e.Variant = v

	for j, h := range snap {
		if h.Kind() != KindCombatant {
			continue
		}
		d := h.Pos.Dist(e.Pos)
		if d >= attractRadius {
			continue
		}
		e.Vel = e.Vel.Add(FromAngle(h.Pos.Sub(e.Pos).Angle()))

		if j == p.Index && d < pickupRadius && b.DeferDelete(i) {
			p.Currency++
			s.metrics.pickup()
			s.Events.Add(Event{Tick: s.Frame, Kind: EventPickup, Entity: i, Source: j, Value: float64(p.Currency)})
		}
	}
}

func (s *Sim) updateParticle(i int, e *Entity, v Particle, b *Batch) {
	v.Life--
	if v.Life < particleFadeTicks {
		v.Alpha = math.Max(0, float64(v.Life)/particleFadeTicks)
		if v.Life <= 0 {
			b.DeferDelete(i)
		}
	}
	e.Variant = v
}

func (s *Sim) updateProjectile(i int, e *Entity, v Projectile, b *Batch) {
	switch v.Kind {
	case WeaponKnife:
		if v.Age >= knifeLifetime {
			b.DeferDelete(i)
		}
	case WeaponGrenade:
		if v.Age >= GrenadeFuse && b.DeferDelete(i) {
			b.DeferAppend(detonationBurst(e.Pos)...)
			s.Events.Add(Event{Tick: s.Frame, Kind: EventDetonate, Entity: i, Source: v.Owner})
		}
	default:
		if !b.Scheduled(i) && e.Vel.Len() < minBulletSpeed {
			b.DeferDelete(i)
		}
	}
	v.Age++
	e.Variant = v
}
