package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectiles(entities []Entity) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.Kind() == KindProjectile {
			out = append(out, e)
		}
	}
	return out
}

func armed(kind WeaponKind, facing float64, cooldown int) (Entity, Combatant) {
	e := NewCombatant(V(1000, 1000), kind, facing)
	c := e.Variant.(Combatant)
	c.Weapon.Cooldown = cooldown
	return e, c
}

func TestFire_GunnerScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
	e, c := armed(WeaponGunner, 0, 11)
	b := NewBatch()

	require.True(t, Fire(&e, &c, 0, Trigger{Pressed: true, Held: true}, rng, b))

	shots := projectiles(b.Appends())
	require.Len(t, shots, 1)
	assert.InDelta(t, 120.0, shots[0].Vel.X, 1e-9)
	assert.InDelta(t, 0.0, shots[0].Vel.Y, 1e-9)
	assert.Equal(t, 0, shots[0].Variant.(Projectile).Owner)

	assert.Equal(t, 0, c.Weapon.Cooldown)
	assert.InDelta(t, -5.0, e.Vel.X, 1e-9)
	assert.InDelta(t, 0.0, e.Vel.Y, 1e-9)
}

func TestFire_InheritsFirerVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
	e, c := armed(WeaponGunner, math.Pi/2, 11)
	e.Vel = V(3, 0)
	b := NewBatch()

	require.True(t, Fire(&e, &c, 0, Trigger{Held: true}, rng, b))
	shot := projectiles(b.Appends())[0]
	assert.InDelta(t, 3.0, shot.Vel.X, 1e-9)
	assert.InDelta(t, 120.0, shot.Vel.Y, 1e-9)
}

func TestFire_RespectsCooldown(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
	for kind := WeaponKnife; kind < weaponKindCount; kind++ {
		e, c := armed(kind, 0, kind.Cooldown())
		b := NewBatch()
		assert.False(t, Fire(&e, &c, 0, Trigger{Pressed: true, Held: true}, rng, b), "%s at threshold", kind)
		assert.Empty(t, b.Appends())

		c.Weapon.Cooldown++
		assert.True(t, Fire(&e, &c, 0, Trigger{Pressed: true, Held: true}, rng, b), "%s above threshold", kind)
	}
}

func TestFire_TriggerMode(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test

	e, c := armed(WeaponSniper, 0, 100)
	assert.False(t, Fire(&e, &c, 0, Trigger{Held: true}, rng, NewBatch()), "sniper needs a fresh press")

	e, c = armed(WeaponSprayer, 0, 100)
	assert.True(t, Fire(&e, &c, 0, Trigger{Held: true}, rng, NewBatch()), "sprayer fires while held")
}

func TestFire_SpawnPatterns(t *testing.T) {
	cases := []struct {
		kind        WeaponKind
		projectiles int
		particles   int
	}{
		{WeaponKnife, 10, 0},
		{WeaponSniper, 1, 11},
		{WeaponGunner, 1, 5},
		{WeaponShotgun, 11, 5},
		{WeaponSprayer, 1, 5},
		{WeaponGrenade, 1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
			e, c := armed(tc.kind, 0, 100)
			b := NewBatch()
			require.True(t, Fire(&e, &c, 3, Trigger{Pressed: true, Held: true}, rng, b))

			shots := projectiles(b.Appends())
			assert.Len(t, shots, tc.projectiles)
			assert.Len(t, b.Appends(), tc.projectiles+tc.particles)
			for _, s := range shots {
				p := s.Variant.(Projectile)
				assert.Equal(t, tc.kind, p.Kind)
				assert.Equal(t, 3, p.Owner)
			}
		})
	}
}

func TestFire_KnifeAlternatesSide(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
	e, c := armed(WeaponKnife, 0, 100)
	first := c.Weapon.Side

	require.True(t, Fire(&e, &c, 0, Trigger{Pressed: true}, rng, NewBatch()))
	assert.NotEqual(t, first, c.Weapon.Side)

	c.Weapon.Cooldown = 100
	require.True(t, Fire(&e, &c, 0, Trigger{Pressed: true}, rng, NewBatch()))
	assert.Equal(t, first, c.Weapon.Side)
}

func TestFire_SniperKicksPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
	e, c := armed(WeaponSniper, 0, 100)
	require.True(t, Fire(&e, &c, 0, Trigger{Pressed: true}, rng, NewBatch()))
	assert.InDelta(t, 990.0, e.Pos.X, 1e-9)
	assert.Equal(t, Vec2{}, e.Vel)
}

func TestContactDamage_KnifeDecaysWithAge(t *testing.T) {
	assert.InDelta(t, 6.0, ContactDamage(WeaponKnife, 0), 1e-12)
	assert.InDelta(t, 6.0-14.0/60.0, ContactDamage(WeaponKnife, 14), 1e-12)
	for age := 1; age < knifeLifetime; age++ {
		assert.LessOrEqual(t, ContactDamage(WeaponKnife, age), ContactDamage(WeaponKnife, age-1))
	}
}

func TestContactDamage_Table(t *testing.T) {
	assert.Equal(t, 25.0, ContactDamage(WeaponSniper, 0))
	assert.Equal(t, 8.0, ContactDamage(WeaponGunner, 0))
	assert.Equal(t, 3.0, ContactDamage(WeaponShotgun, 0))
	assert.Equal(t, 7.0, ContactDamage(WeaponSprayer, 0))
	assert.Equal(t, 0.0, ContactDamage(WeaponGrenade, GrenadeFuse))
}

func TestBlastDamage(t *testing.T) {
	assert.InDelta(t, 50.0, BlastDamage(0), 1e-12)
	assert.InDelta(t, 0.0, BlastDamage(300), 1e-12)
	assert.Equal(t, 0.0, BlastDamage(450))
	assert.Greater(t, BlastDamage(299), 0.0)

	assert.InDelta(t, 50.0, BlastKnockback(0), 1e-12)
	assert.Equal(t, 0.0, BlastKnockback(300))
}

func TestWeaponSlots(t *testing.T) {
	for slot := 1; slot <= len(Slots); slot++ {
		kind, ok := KindForSlot(slot)
		require.True(t, ok)
		assert.Equal(t, slot, kind.Slot())
	}
	_, ok := KindForSlot(0)
	assert.False(t, ok)
	_, ok = KindForSlot(len(Slots) + 1)
	assert.False(t, ok)

	assert.True(t, WeaponSniper.Zooms())
	assert.False(t, WeaponGunner.Zooms())
}
