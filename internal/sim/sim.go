package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Garsondee/Skirmish/internal/logging"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultSolidDensity is the fraction of tiles seeded as obstacles.
const DefaultSolidDensity = 0.004

// Config controls round initialization.
type Config struct {
	Seed           int64   // 0 picks a time-based seed
	Combatants     int     // combatants spawned at round start
	SolidDensity   float64 // fraction of tiles seeded solid
	RoundOverTicks int     // length of the death sequence
}

// DefaultConfig returns the standard two-combatant arena.
func DefaultConfig() Config {
	return Config{
		Combatants:     2,
		SolidDensity:   DefaultSolidDensity,
		RoundOverTicks: DefaultRoundOverTicks,
	}
}

// Sim is one round of the arena. It is single-threaded: Tick must be called
// from one goroutine, once per frame.
type Sim struct {
	RoundID uuid.UUID
	Seed    int64
	Terrain *Terrain
	Store   *Store
	Events  *EventLog
	Frame   int // ticks advanced so far

	cfg      Config
	rng      *rand.Rand
	log      zerolog.Logger
	hot      zerolog.Logger // sampled, for per-shot and per-hit lines
	metrics  *simMetrics
	finished bool
}

// Option customizes a Sim after the default round has been built.
type Option func(*Sim, *PlayerContext)

// WithLogger routes sim logging to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sim, _ *PlayerContext) {
		s.log = l.With().Str("round", s.RoundID.String()).Logger()
		s.hot = logging.Sampled(s.log)
	}
}

// New initializes a round: seeds the terrain, spawns cfg.Combatants
// combatants at random open positions and returns a fresh PlayerContext
// controlling the first one.
func New(cfg Config, opts ...Option) (*Sim, *PlayerContext, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.RoundOverTicks <= 0 {
		cfg.RoundOverTicks = DefaultRoundOverTicks
	}

	metrics, err := newSimMetrics()
	if err != nil {
		return nil, nil, fmt.Errorf("sim metrics: %w", err)
	}

	s := &Sim{
		RoundID: uuid.New(),
		Seed:    cfg.Seed,
		Events:  NewEventLog(),
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)), // #nosec G404 -- game only
		log:     zerolog.Nop(),
		hot:     zerolog.Nop(),
		metrics: metrics,
	}
	s.Terrain = SeedTerrain(s.rng, cfg.SolidDensity)

	spawned := make([]Entity, 0, cfg.Combatants)
	for i := 0; i < cfg.Combatants; i++ {
		spawned = append(spawned, RandomCombatant(s.rng, s.Terrain))
	}
	s.Store = NewStore(spawned...)

	p := NewPlayerContext(0)
	if cfg.Combatants == 0 {
		p.Index = NoOwner
	}

	for _, o := range opts {
		o(s, p)
	}
	if p.Controlling() && p.Index < s.Store.Len() {
		p.LastPos = s.Store.At(p.Index).Pos
	}

	s.Events.Add(Event{Kind: EventRoundStart, Entity: p.Index, Source: NoOwner, Value: float64(s.Store.Len())})
	s.log.Info().Int64("seed", cfg.Seed).Int("combatants", s.Store.Len()).Msg("round started")
	return s, p, nil
}

// Config returns the configuration the round was built with.
func (s *Sim) Config() Config {
	return s.cfg
}

// Finished reports whether the round-over signal has been delivered.
func (s *Sim) Finished() bool {
	return s.finished
}

// Close releases the round's metric registration.
func (s *Sim) Close() {
	s.metrics.close()
}

// Controlled returns the player's combatant, if it is still alive.
func (s *Sim) Controlled(p *PlayerContext) (Entity, Combatant, bool) {
	if !p.Controlling() || p.Index >= s.Store.Len() {
		return Entity{}, Combatant{}, false
	}
	e := *s.Store.At(p.Index)
	c, ok := e.Variant.(Combatant)
	return e, c, ok
}

// Counts returns the number of live entities per variant.
func (s *Sim) Counts() map[VariantKind]int {
	out := make(map[VariantKind]int, variantKindCount)
	for _, e := range s.Store.All() {
		out[e.Kind()]++
	}
	return out
}
