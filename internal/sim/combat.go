package sim

import (
	"math"

	"golang.org/x/image/colornames"
)

const (
	burstPoints     = 30
	deathBurstSpeed = 15.0
	dropSpeed       = 10.0
	hitSpeed        = 15.0
	blastLife       = 25
	blastOuterSpeed = 17.0
	blastOuterSkew  = 0.1
)

// resolveContacts applies every projectile in the start-of-tick snapshot to
// combatant i. Damage and knockback land on c and e only; hit projectiles are
// scheduled on b and each one is credited at most once per tick. Deletions
// already scheduled this tick do not hide a projectile from the snapshot. It returns
// the owner of the last projectile that hurt c, or NoOwner.
func (s *Sim) resolveContacts(i int, e *Entity, c *Combatant, snap []Entity, b *Batch) int {
	source := NoOwner
	for j, h := range snap {
		proj, ok := h.Variant.(Projectile)
		if !ok {
			continue
		}
		dist := h.Pos.Dist(e.Pos)

		switch proj.Kind {
		case WeaponGrenade:
			// The blast is radial and also reaches the thrower.
			if proj.Age != GrenadeFuse || dist >= blastRadius {
				continue
			}
			dmg := BlastDamage(dist)
			c.Health -= dmg
			away := h.Pos.Sub(e.Pos).Angle()
			e.Vel = e.Vel.Sub(FromAngle(away).Scale(BlastKnockback(dist)))
			source = proj.Owner
			s.metrics.hit(proj.Kind)
			s.Events.Add(Event{Tick: s.Frame, Kind: EventBlast, Entity: i, Source: proj.Owner, Detail: proj.Kind.String(), Value: dmg})

		case WeaponKnife:
			if proj.Owner == i || dist >= contactRadius || !b.Credit(j) {
				continue
			}
			b.DeferDelete(j)
			dmg := ContactDamage(proj.Kind, proj.Age)
			c.Health -= dmg
			e.Vel = e.Vel.Add(h.Vel.Scale(knifeKnockback))
			source = proj.Owner
			s.metrics.hit(proj.Kind)
			s.Events.Add(Event{Tick: s.Frame, Kind: EventHit, Entity: i, Source: proj.Owner, Detail: proj.Kind.String(), Value: dmg})
			s.hot.Debug().Int("entity", i).Int("owner", proj.Owner).Float64("damage", dmg).Msg("hit")

		default:
			if proj.Owner == i {
				continue
			}
			swept := SegmentHitsCircle(h.Pos, h.Pos.Add(h.Vel), contactRadius, e.Pos)
			if !swept && dist >= contactRadius {
				continue
			}
			if !b.Credit(j) {
				continue
			}
			b.DeferDelete(j)
			dmg := ContactDamage(proj.Kind, proj.Age)
			c.Health -= dmg
			spray := FromAngle(s.rng.Float64() * 2 * math.Pi).Scale(hitSpeed)
			b.DeferAppend(NewParticle(e.Pos, spray, colornames.Red, hitLife))
			e.Vel = e.Vel.Add(h.Vel.Scale(bulletKnockback))
			source = proj.Owner
			s.metrics.hit(proj.Kind)
			s.Events.Add(Event{Tick: s.Frame, Kind: EventHit, Entity: i, Source: proj.Owner, Detail: proj.Kind.String(), Value: dmg})
			s.hot.Debug().Int("entity", i).Int("owner", proj.Owner).Float64("damage", dmg).Msg("hit")
		}
	}
	return source
}

// deathBurst is the radial spray left behind by a dead combatant: red
// particles and currency pickups on the same burstPoints spokes.
func deathBurst(pos Vec2) []Entity {
	out := make([]Entity, 0, 2*burstPoints)
	for k := 0; k < burstPoints; k++ {
		angle := float64(k) / 15 * math.Pi
		dir := FromAngle(angle)
		out = append(out,
			NewParticle(pos, dir.Scale(deathBurstSpeed), colornames.Red, hitLife),
			NewPickup(pos, dir.Scale(dropSpeed), angle),
		)
	}
	return out
}

// detonationBurst is the two-ring particle flash of a grenade going off.
func detonationBurst(pos Vec2) []Entity {
	out := make([]Entity, 0, 2*burstPoints)
	for k := 0; k < burstPoints; k++ {
		angle := float64(k) / 15 * math.Pi
		out = append(out,
			NewParticle(pos, FromAngle(angle).Scale(deathBurstSpeed), colornames.Red, blastLife),
			NewParticle(pos, FromAngle(angle+blastOuterSkew).Scale(blastOuterSpeed), colornames.Red, hitLife),
		)
	}
	return out
}
