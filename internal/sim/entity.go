package sim

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	MaxHealth = 100.0

	// NoOwner marks a projectile that cannot be attributed to any combatant.
	NoOwner = -1

	spawnMargin = 100.0
)

// Entity is the atomic simulation unit. Entities are value types: the store's
// snapshot is a plain slice copy and never aliases live state.
type Entity struct {
	Pos     Vec2
	Vel     Vec2
	Variant Variant
}

// Variant is the closed set of entity kinds: Combatant, Pickup, Particle and
// Projectile. The unexported method seals the set to this package.
type Variant interface {
	variant() VariantKind
}

// VariantKind tags a Variant for counting and display.
type VariantKind uint8

const (
	KindCombatant VariantKind = iota
	KindPickup
	KindParticle
	KindProjectile
	variantKindCount
)

func (k VariantKind) String() string {
	switch k {
	case KindCombatant:
		return "combatant"
	case KindPickup:
		return "pickup"
	case KindParticle:
		return "particle"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Kind returns the variant tag of e.
func (e Entity) Kind() VariantKind {
	return e.Variant.variant()
}

// Combatant is a fighter. Only the one referenced by PlayerContext reads input;
// the rest stand still and regenerate.
type Combatant struct {
	Weapon Weapon
	Facing float64 // radians
	Health float64
}

// Pickup is a currency drop that drifts toward nearby combatants.
type Pickup struct {
	Phase float64 // float animation phase
}

// Particle is purely cosmetic and fades during its last particleFadeTicks.
type Particle struct {
	Color color.RGBA
	Life  int
	Alpha float64
}

// Projectile is a fired effect. Owner is the entity index of the firing
// combatant, or NoOwner.
type Projectile struct {
	Kind  WeaponKind
	Side  bool // knife swing side
	Age   int
	Owner int
}

func (Combatant) variant() VariantKind  { return KindCombatant }
func (Pickup) variant() VariantKind     { return KindPickup }
func (Particle) variant() VariantKind   { return KindParticle }
func (Projectile) variant() VariantKind { return KindProjectile }

// NewCombatant returns a full-health combatant entity at rest.
func NewCombatant(pos Vec2, kind WeaponKind, facing float64) Entity {
	return Entity{
		Pos: pos,
		Variant: Combatant{
			Weapon: Weapon{Kind: kind},
			Facing: facing,
			Health: MaxHealth,
		},
	}
}

// RandomCombatant spawns a combatant at a random non-solid position at least
// spawnMargin from the arena edge, with a random weapon and facing.
func RandomCombatant(rng *rand.Rand, terrain *Terrain) Entity {
	var pos Vec2
	for tries := 0; tries < 64; tries++ {
		pos = V(
			spawnMargin+rng.Float64()*(ArenaWidth-2*spawnMargin),
			spawnMargin+rng.Float64()*(ArenaHeight-2*spawnMargin),
		)
		if terrain == nil || !terrain.Query(pos).Solid {
			break
		}
	}
	e := NewCombatant(pos, WeaponKind(rng.Intn(int(weaponKindCount))), (rng.Float64()*2-1)*math.Pi)
	c := e.Variant.(Combatant)
	c.Weapon.Side = rng.Intn(2) == 0
	e.Variant = c
	return e
}

// NewParticle returns a particle entity with full opacity.
func NewParticle(pos, vel Vec2, c color.RGBA, life int) Entity {
	return Entity{Pos: pos, Vel: vel, Variant: Particle{Color: c, Life: life, Alpha: 1}}
}

// NewPickup returns a currency pickup entity.
func NewPickup(pos, vel Vec2, phase float64) Entity {
	return Entity{Pos: pos, Vel: vel, Variant: Pickup{Phase: phase}}
}

// NewProjectile returns a freshly fired projectile entity.
func NewProjectile(pos, vel Vec2, kind WeaponKind, side bool, owner int) Entity {
	return Entity{Pos: pos, Vel: vel, Variant: Projectile{Kind: kind, Side: side, Owner: owner}}
}
