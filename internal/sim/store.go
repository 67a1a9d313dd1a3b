package sim

import "sort"

// Store owns the live entity collection. Its shape only changes in
// ApplyDeferred; during a tick entities are mutated in place by index.
type Store struct {
	entities []Entity
}

// NewStore creates a store holding the given entities in order.
func NewStore(entities ...Entity) *Store {
	s := &Store{entities: make([]Entity, 0, len(entities))}
	s.entities = append(s.entities, entities...)
	return s
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.entities)
}

// At returns a pointer to the live entity at index i. The pointer is only
// valid until the next ApplyDeferred.
func (s *Store) At(i int) *Entity {
	return &s.entities[i]
}

// All exposes the live collection for read-only use by renderers and reports.
func (s *Store) All() []Entity {
	return s.entities
}

// SnapshotAll returns a copy of the collection. Hit tests within a tick read
// the snapshot so that earlier mutations in the same pass are invisible.
func (s *Store) SnapshotAll() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Batch accumulates the structural changes requested during one tick.
type Batch struct {
	deletes   []int
	scheduled map[int]struct{}
	credited  map[int]struct{}
	appends   []Entity
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{scheduled: make(map[int]struct{}), credited: make(map[int]struct{})}
}

// DeferDelete schedules index i for removal. It returns false when i was
// already scheduled, so callers can gate one-time side effects on it.
func (b *Batch) DeferDelete(i int) bool {
	if _, ok := b.scheduled[i]; ok {
		return false
	}
	b.scheduled[i] = struct{}{}
	b.deletes = append(b.deletes, i)
	return true
}

// Scheduled reports whether i is already marked for removal.
func (b *Batch) Scheduled(i int) bool {
	_, ok := b.scheduled[i]
	return ok
}

// Credit marks projectile i as having landed a hit this tick. It returns
// false when i was already credited. Deletion alone does not count, so a
// projectile that expires this tick can still land its start-of-tick hit.
func (b *Batch) Credit(i int) bool {
	if _, ok := b.credited[i]; ok {
		return false
	}
	b.credited[i] = struct{}{}
	return true
}

// DeferAppend queues entities to be added after deletions are applied.
func (b *Batch) DeferAppend(entities ...Entity) {
	b.appends = append(b.appends, entities...)
}

// Appends returns the queued entities.
func (b *Batch) Appends() []Entity {
	return b.appends
}

// Remap translates pre-compaction indices into post-compaction ones.
type Remap struct {
	removed []int // ascending
}

// Index returns the new index for old, or false if old was removed.
func (r Remap) Index(old int) (int, bool) {
	if old < 0 {
		return old, false
	}
	n := sort.SearchInts(r.removed, old)
	if n < len(r.removed) && r.removed[n] == old {
		return NoOwner, false
	}
	return old - n, true
}

// Removed returns the number of entities removed by the compaction.
func (r Remap) Removed() int {
	return len(r.removed)
}

// ApplyDeferred commits a tick's batch: scheduled indices are removed in
// ascending order (each shifted down by the number of lower indices already
// removed), projectile owners are renumbered, then appends are concatenated.
// Callers rewrite any index they hold through the returned Remap.
func (s *Store) ApplyDeferred(b *Batch) Remap {
	removed := make([]int, 0, len(b.deletes))
	for _, i := range b.deletes {
		if i >= 0 && i < len(s.entities) {
			removed = append(removed, i)
		}
	}
	sort.Ints(removed)
	r := Remap{removed: removed}

	if len(removed) == 0 {
		s.entities = append(s.entities, b.appends...)
		return r
	}

	kept := s.entities[:0]
	next := 0
	for i, e := range s.entities {
		if next < len(removed) && removed[next] == i {
			next++
			continue
		}
		remapOwner(&e, r)
		kept = append(kept, e)
	}
	clear(s.entities[len(kept):])
	s.entities = kept

	for _, e := range b.appends {
		remapOwner(&e, r)
		s.entities = append(s.entities, e)
	}
	return r
}

func remapOwner(e *Entity, r Remap) {
	p, ok := e.Variant.(Projectile)
	if !ok || p.Owner == NoOwner {
		return
	}
	if p.Owner, ok = r.Index(p.Owner); !ok {
		p.Owner = NoOwner
	}
	e.Variant = p
}
