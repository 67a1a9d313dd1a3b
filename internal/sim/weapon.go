package sim

import (
	"image/color"
	"math"
	"math/rand"

	"golang.org/x/image/colornames"
)

// --- Weapon constants ---

const (
	contactRadius   = 60.0  // proximity hit radius for every non-grenade projectile
	blastRadius     = 300.0 // grenade blast reach
	GrenadeFuse     = 80    // age at which a grenade detonates
	knifeLifetime   = 15    // age at which a knife slash despawns
	minBulletSpeed  = 5.0   // bullets below this speed despawn
	knifeKnockback  = 0.3   // fraction of slash velocity transferred on contact
	bulletKnockback = 1.0 / 60.0

	muzzleLife = 15
	hitLife    = 20
)

// WeaponKind is the closed set of weapons.
type WeaponKind uint8

const (
	WeaponKnife WeaponKind = iota
	WeaponSniper
	WeaponGunner
	WeaponShotgun
	WeaponSprayer
	WeaponGrenade
	weaponKindCount
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponKnife:
		return "knife"
	case WeaponSniper:
		return "sniper"
	case WeaponGunner:
		return "gunner"
	case WeaponShotgun:
		return "shotgun"
	case WeaponSprayer:
		return "sprayer"
	case WeaponGrenade:
		return "grenade"
	default:
		return "unknown"
	}
}

// weaponParams bundles per-kind firing parameters.
type weaponParams struct {
	cooldown   int  // counter must exceed this to fire
	holdToFire bool // fires while held rather than on press
	zoom       bool // widens the viewport while equipped
}

var weaponTable = [weaponKindCount]weaponParams{
	WeaponKnife:   {cooldown: 10},
	WeaponSniper:  {cooldown: 30, zoom: true},
	WeaponGunner:  {cooldown: 10, holdToFire: true},
	WeaponShotgun: {cooldown: 30},
	WeaponSprayer: {cooldown: 3, holdToFire: true},
	WeaponGrenade: {cooldown: 70},
}

// Slots is the HUD/hotkey order: key 1 selects Slots[0], and so on.
var Slots = [weaponKindCount]WeaponKind{
	WeaponKnife, WeaponGunner, WeaponGrenade, WeaponShotgun, WeaponSprayer, WeaponSniper,
}

// KindForSlot maps a 1-based slot number to its weapon.
func KindForSlot(slot int) (WeaponKind, bool) {
	if slot < 1 || slot > len(Slots) {
		return 0, false
	}
	return Slots[slot-1], true
}

// Slot returns the 1-based slot number of k.
func (k WeaponKind) Slot() int {
	for i, s := range Slots {
		if s == k {
			return i + 1
		}
	}
	return 0
}

// Cooldown returns the number of ticks the counter must exceed before firing.
func (k WeaponKind) Cooldown() int { return weaponTable[k].cooldown }

// HoldToFire reports whether the weapon fires continuously while held.
func (k WeaponKind) HoldToFire() bool { return weaponTable[k].holdToFire }

// Zooms reports whether the weapon widens the viewport.
func (k WeaponKind) Zooms() bool { return weaponTable[k].zoom }

// Weapon is a combatant's equipped weapon. Cooldown counts ticks since the
// last shot and is reset to 0 on fire.
type Weapon struct {
	Kind     WeaponKind
	Side     bool // knife swing side, flipped on every swing
	Cooldown int
}

// Ready reports whether enough ticks have passed to fire again.
func (w Weapon) Ready() bool {
	return w.Cooldown > w.Kind.Cooldown()
}

// Trigger is the decoded fire-button state for one tick.
type Trigger struct {
	Pressed bool // went down this tick
	Held    bool // currently down
}

func (t Trigger) fires(k WeaponKind) bool {
	if k.HoldToFire() {
		return t.Held
	}
	return t.Pressed
}

// Fire attempts to fire c's weapon. On success the projectiles and muzzle
// particles are queued on b, recoil is applied to e, the cooldown counter is
// reset and true is returned. owner is e's current entity index.
func Fire(e *Entity, c *Combatant, owner int, trig Trigger, rng *rand.Rand, b *Batch) bool {
	w := &c.Weapon
	if !trig.fires(w.Kind) || !w.Ready() {
		return false
	}

	dir := c.Facing
	aim := FromAngle(dir)
	muzzle := func(dist float64) Vec2 { return e.Pos.Add(aim.Scale(dist)) }

	switch w.Kind {
	case WeaponKnife:
		w.Side = !w.Side
		for r := -5; r < 5; r++ {
			a := FromAngle(float64(r)/30*math.Pi + dir)
			b.DeferAppend(NewProjectile(e.Pos.Add(a.Scale(80)), e.Vel.Add(a.Scale(2)), WeaponKnife, w.Side, owner))
		}

	case WeaponSniper:
		b.DeferAppend(NewProjectile(muzzle(90), e.Vel.Add(aim.Scale(150)), WeaponSniper, false, owner))
		b.DeferAppend(muzzleFan(e, dir, 100, 5, 2, colornames.Orange)...)
		// The sniper kicks the firer's position rather than its velocity.
		e.Pos = e.Pos.Sub(aim.Scale(10))

	case WeaponGunner:
		b.DeferAppend(NewProjectile(muzzle(90), e.Vel.Add(aim.Scale(120)), WeaponGunner, false, owner))
		b.DeferAppend(muzzleFan(e, dir, 100, 2, 2, colornames.Orange)...)
		e.Vel = e.Vel.Sub(aim.Scale(5))

	case WeaponShotgun:
		for r := -5; r <= 5; r++ {
			a := FromAngle(float64(r)/30*math.Pi + dir)
			b.DeferAppend(NewProjectile(muzzle(90), e.Vel.Add(a.Scale(70)), WeaponShotgun, false, owner))
		}
		b.DeferAppend(muzzleFan(e, dir, 100, 2, 2, colornames.Orange)...)
		e.Vel = e.Vel.Sub(aim.Scale(12))

	case WeaponSprayer:
		shot := FromAngle(dir + math.Pi*(rng.Float64()*0.2-0.1))
		b.DeferAppend(NewProjectile(muzzle(100), e.Vel.Add(shot.Scale(90)), WeaponSprayer, false, owner))
		b.DeferAppend(muzzleFan(e, dir, 110, 2, 2, colornames.Orange)...)
		e.Vel = e.Vel.Sub(aim.Scale(2))

	case WeaponGrenade:
		b.DeferAppend(NewProjectile(muzzle(90), e.Vel.Add(aim.Scale(40)), WeaponGrenade, false, owner))
		b.DeferAppend(muzzleFan(e, dir, 110, 2, 5, colornames.Green)...)
		e.Vel = e.Vel.Sub(aim.Scale(10))
	}

	w.Cooldown = 0
	return true
}

// muzzleFan spawns 2*half+1 particles in a small arc around the muzzle point.
func muzzleFan(e *Entity, dir, dist float64, half int, speed float64, c color.RGBA) []Entity {
	center := e.Pos.Add(FromAngle(dir).Scale(dist))
	out := make([]Entity, 0, 2*half+1)
	for r := -half; r <= half; r++ {
		a := FromAngle(float64(r)/10*math.Pi + dir)
		out = append(out, NewParticle(center.Add(a.Scale(10)), e.Vel.Add(a.Scale(speed)), c, muzzleLife))
	}
	return out
}

// ContactDamage is the damage a projectile of kind and age deals on contact.
// Grenades deal none; they only hurt through BlastDamage.
func ContactDamage(kind WeaponKind, age int) float64 {
	switch kind {
	case WeaponKnife:
		return 6 - float64(age)/60
	case WeaponSniper:
		return 25
	case WeaponGunner:
		return 8
	case WeaponShotgun:
		return 3
	case WeaponSprayer:
		return 7
	default:
		return 0
	}
}

// BlastDamage is grenade damage at distance from the detonation point.
func BlastDamage(distance float64) float64 {
	if distance >= blastRadius {
		return 0
	}
	return 50 - distance/6
}

// BlastKnockback is the speed added away from the detonation point.
func BlastKnockback(distance float64) float64 {
	if distance >= blastRadius {
		return 0
	}
	return (blastRadius - distance) / 6
}
