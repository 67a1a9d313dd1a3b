package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Skirmish/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 260
	feedMaxEntries = 40
	feedLineHeight = 14
	feedRecent     = 3 // latest entries drawn highlighted
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Kind    sim.EventKind
	Message string
}

// EventFeed is a ring buffer of notable round events rendered on-screen.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry to the feed.
func (f *EventFeed) Add(tick int, kind sim.EventKind, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Kind: kind, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Ingest adds the feed-worthy events among evs. Shots, hits and weapon
// switches are too frequent to show.
func (f *EventFeed) Ingest(evs []sim.Event) {
	for _, e := range evs {
		if msg, ok := describeEvent(e); ok {
			f.Add(e.Tick, e.Kind, msg)
		}
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Clear drops every entry.
func (f *EventFeed) Clear() {
	f.head = 0
	f.count = 0
}

func describeEvent(e sim.Event) (string, bool) {
	switch e.Kind {
	case sim.EventRoundStart:
		return fmt.Sprintf("round start, %d fighters", int(e.Value)), true
	case sim.EventKill:
		if e.Source == sim.NoOwner {
			return fmt.Sprintf("#%d went down", e.Entity), true
		}
		return fmt.Sprintf("#%d killed by #%d", e.Entity, e.Source), true
	case sim.EventPickup:
		return fmt.Sprintf("+1 coin (%d)", int(e.Value)), true
	case sim.EventDetonate:
		return "grenade detonated", true
	case sim.EventRespawn:
		return "new fighter joined", true
	case sim.EventQuit:
		return "you left the fight", true
	case sim.EventRoundOver:
		return fmt.Sprintf("round over, %d coins", int(e.Value)), true
	default:
		return "", false
	}
}

func feedColor(kind sim.EventKind) color.RGBA {
	switch kind {
	case sim.EventKill, sim.EventQuit, sim.EventRoundOver:
		return color.RGBA{R: 210, G: 70, B: 70, A: 255}
	case sim.EventPickup:
		return color.RGBA{R: 230, G: 190, B: 40, A: 255}
	default:
		return color.RGBA{R: 90, G: 160, B: 210, A: 255}
	}
}

// Draw renders the feed panel on the right side of the screen.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 14, A: 200}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 60, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 20, G: 24, B: 34, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, e := range entries {
		if i >= len(entries)-feedRecent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 30, G: 34, B: 46, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 5, feedColor(e.Kind), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Tick, e.Message), panelX+12, y)
		y += feedLineHeight
	}
}
