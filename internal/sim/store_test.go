package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func markers(n int) []Entity {
	out := make([]Entity, n)
	for i := range out {
		out[i] = NewParticle(V(float64(i), 0), Vec2{}, colornames.White, 10)
	}
	return out
}

func TestStore_ApplyDeferredSize(t *testing.T) {
	s := NewStore(markers(5)...)
	b := NewBatch()

	assert.True(t, b.DeferDelete(3))
	assert.True(t, b.DeferDelete(1))
	assert.False(t, b.DeferDelete(3), "second request for the same index is rejected")
	b.DeferAppend(markers(2)...)

	r := s.ApplyDeferred(b)
	require.Equal(t, 5, s.Len(), "5 - 2 unique deletes + 2 appends")
	assert.Equal(t, 2, r.Removed())

	// Survivors keep their relative order, appends follow.
	got := []float64{}
	for _, e := range s.All() {
		got = append(got, e.Pos.X)
	}
	assert.Equal(t, []float64{0, 2, 4, 0, 1}, got)
}

func TestStore_ApplyDeferredIgnoresOutOfRange(t *testing.T) {
	s := NewStore(markers(2)...)
	b := NewBatch()
	b.DeferDelete(7)
	b.DeferDelete(-1)

	r := s.ApplyDeferred(b)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 0, r.Removed())
}

func TestRemap_Index(t *testing.T) {
	s := NewStore(markers(6)...)
	b := NewBatch()
	b.DeferDelete(4)
	b.DeferDelete(1)
	r := s.ApplyDeferred(b)

	cases := []struct {
		old, want int
		ok        bool
	}{
		{0, 0, true},
		{1, NoOwner, false},
		{2, 1, true},
		{3, 2, true},
		{4, NoOwner, false},
		{5, 3, true},
		{NoOwner, NoOwner, false},
	}
	for _, c := range cases {
		got, ok := r.Index(c.old)
		assert.Equal(t, c.ok, ok, "old=%d", c.old)
		if c.ok {
			assert.Equal(t, c.want, got, "old=%d", c.old)
		}
	}
}

func TestStore_OwnerRenumbering(t *testing.T) {
	s := NewStore(
		NewCombatant(V(0, 0), WeaponKnife, 0),
		NewCombatant(V(100, 0), WeaponKnife, 0),
		NewCombatant(V(200, 0), WeaponKnife, 0),
		NewProjectile(V(0, 0), V(1, 0), WeaponGunner, false, 2),
		NewProjectile(V(0, 0), V(1, 0), WeaponGunner, false, 1),
	)
	b := NewBatch()
	b.DeferDelete(1)
	b.DeferAppend(NewProjectile(V(0, 0), V(1, 0), WeaponSniper, false, 2))
	s.ApplyDeferred(b)

	require.Equal(t, 5, s.Len())
	assert.Equal(t, 1, s.At(2).Variant.(Projectile).Owner, "owner above the removed index shifts down")
	assert.Equal(t, NoOwner, s.At(3).Variant.(Projectile).Owner, "owner that was removed is cleared")
	assert.Equal(t, 1, s.At(4).Variant.(Projectile).Owner, "appended projectiles are renumbered too")
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	s := NewStore(markers(1)...)
	snap := s.SnapshotAll()
	s.At(0).Pos = V(99, 99)
	assert.Equal(t, V(0, 0), snap[0].Pos)
}

func TestBatch_Scheduled(t *testing.T) {
	b := NewBatch()
	assert.False(t, b.Scheduled(2))
	b.DeferDelete(2)
	assert.True(t, b.Scheduled(2))
	assert.Empty(t, b.Appends())
}

func TestBatch_CreditIsSeparateFromDeletion(t *testing.T) {
	b := NewBatch()
	b.DeferDelete(4)
	assert.True(t, b.Credit(4), "a scheduled expiry does not use up the hit")
	assert.False(t, b.Credit(4))
	assert.False(t, b.Scheduled(5))
	assert.True(t, b.Credit(5))
	assert.False(t, b.Scheduled(5), "crediting does not schedule a delete")
}
