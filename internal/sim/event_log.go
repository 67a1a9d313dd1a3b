package sim

import "fmt"

// EventKind names a recorded simulation event.
type EventKind string

const (
	EventRoundStart EventKind = "round_start"
	EventFire       EventKind = "fire"
	EventHit        EventKind = "hit"
	EventBlast      EventKind = "blast"
	EventKill       EventKind = "kill"
	EventPickup     EventKind = "pickup"
	EventDetonate   EventKind = "detonate"
	EventRespawn    EventKind = "respawn"
	EventWeapon     EventKind = "weapon"
	EventQuit       EventKind = "quit"
	EventRoundOver  EventKind = "round_over"
)

// PlayerDetail marks kill events for the locally controlled combatant.
const PlayerDetail = "player"

// Event is one recorded occurrence. Entity is the entity index at the time of
// the event (indices shift after each tick's compaction); Source is the
// attributed owner or NoOwner. Value depends on Kind (damage for hits,
// projectiles spawned for fire events).
type Event struct {
	Tick   int
	Kind   EventKind
	Entity int
	Source int
	Detail string
	Value  float64
}

// String formats the event as a fixed-width log line.
//
//	[T=0042] hit        #1    <- #0    sniper 25.0
func (e Event) String() string {
	src := "--"
	if e.Source != NoOwner {
		src = fmt.Sprintf("#%d", e.Source)
	}
	return fmt.Sprintf("[T=%04d] %-10s #%-4d <- %-5s %s %.1f",
		e.Tick, e.Kind, e.Entity, src, e.Detail, e.Value)
}

// EventLog is an unbounded, machine-readable record of a round.
type EventLog struct {
	entries []Event
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add records an event.
func (l *EventLog) Add(e Event) {
	l.entries = append(l.entries, e)
}

// Entries returns all recorded events.
func (l *EventLog) Entries() []Event {
	return l.entries
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Since returns the events recorded after the first n.
func (l *EventLog) Since(n int) []Event {
	if n >= len(l.entries) {
		return nil
	}
	if n < 0 {
		n = 0
	}
	return l.entries[n:]
}

// Filter returns events of the given kind.
func (l *EventLog) Filter(kind EventKind) []Event {
	var out []Event
	for _, e := range l.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events of kind were recorded.
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// LastOf returns the most recent event of kind, or false if none.
func (l *EventLog) LastOf(kind EventKind) (Event, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Kind == kind {
			return l.entries[i], true
		}
	}
	return Event{}, false
}

// Recent returns up to n of the latest events, oldest first.
func (l *EventLog) Recent(n int) []Event {
	if n >= len(l.entries) {
		return l.entries
	}
	return l.entries[len(l.entries)-n:]
}
