package sim

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Garsondee/Skirmish/internal/sim"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// simMetrics holds the OTel instruments. They are no-ops unless the host
// installs a meter provider. Entity counts are published through atomics
// because the gauge callback runs on the exporter's goroutine.
type simMetrics struct {
	shots   metric.Int64Counter
	hits    metric.Int64Counter
	kills   metric.Int64Counter
	pickups metric.Int64Counter
	reg     metric.Registration

	counts [variantKindCount]atomic.Int64
}

func newSimMetrics() (*simMetrics, error) {
	m := meter()
	sm := &simMetrics{}

	var err error
	if sm.shots, err = m.Int64Counter("sim.shots.fired",
		metric.WithDescription("Weapon discharges")); err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}
	if sm.hits, err = m.Int64Counter("sim.hits",
		metric.WithDescription("Projectile and blast hits on combatants")); err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}
	if sm.kills, err = m.Int64Counter("sim.kills",
		metric.WithDescription("Combatant deaths")); err != nil {
		return nil, fmt.Errorf("creating kills counter: %w", err)
	}
	if sm.pickups, err = m.Int64Counter("sim.pickups",
		metric.WithDescription("Currency collected by the local player")); err != nil {
		return nil, fmt.Errorf("creating pickups counter: %w", err)
	}

	gauge, err := m.Int64ObservableGauge("sim.entities",
		metric.WithDescription("Live entities by variant"))
	if err != nil {
		return nil, fmt.Errorf("creating entities gauge: %w", err)
	}
	sm.reg, err = m.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			for k := range sm.counts {
				o.ObserveInt64(gauge, sm.counts[k].Load(),
					metric.WithAttributes(attribute.String("variant", VariantKind(k).String())))
			}
			return nil
		},
		gauge,
	)
	if err != nil {
		return nil, fmt.Errorf("registering entities callback: %w", err)
	}
	return sm, nil
}

// observe publishes the per-variant entity counts after a tick.
func (m *simMetrics) observe(entities []Entity) {
	var counts [variantKindCount]int64
	for _, e := range entities {
		counts[e.Kind()]++
	}
	for k, n := range counts {
		m.counts[k].Store(n)
	}
}

func (m *simMetrics) shot(kind WeaponKind) {
	m.shots.Add(context.Background(), 1, metric.WithAttributes(attribute.String("weapon", kind.String())))
}

func (m *simMetrics) hit(kind WeaponKind) {
	m.hits.Add(context.Background(), 1, metric.WithAttributes(attribute.String("weapon", kind.String())))
}

func (m *simMetrics) kill() {
	m.kills.Add(context.Background(), 1)
}

func (m *simMetrics) pickup() {
	m.pickups.Add(context.Background(), 1)
}

func (m *simMetrics) close() {
	if m.reg != nil {
		_ = m.reg.Unregister()
	}
}
