package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Skirmish/internal/sim"
)

const reportEvents = 30

// roundReport renders a plain-text snapshot of the round for pasting into a
// bug report.
func roundReport(s *sim.Sim, p *sim.PlayerContext, lastEvents int) string {
	if lastEvents <= 0 {
		lastEvents = reportEvents
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Skirmish round report ---\n")
	fmt.Fprintf(&b, "round=%s seed=%d tick=%d phase=%s\n",
		s.RoundID, s.Seed, s.Frame, p.Phase(s.Config().RoundOverTicks))

	if e, c, ok := s.Controlled(p); ok {
		fmt.Fprintf(&b, "player: index=%d currency=%d health=%.1f weapon=%s cooldown=%d pos=(%.0f,%.0f)\n",
			p.Index, p.Currency, c.Health, c.Weapon.Kind, c.Weapon.Cooldown, e.Pos.X, e.Pos.Y)
	} else {
		countdown := 0
		if p.Countdown != nil {
			countdown = *p.Countdown
		}
		fmt.Fprintf(&b, "player: down currency=%d countdown=%d last_pos=(%.0f,%.0f)\n",
			p.Currency, countdown, p.LastPos.X, p.LastPos.Y)
	}

	counts := s.Counts()
	fmt.Fprintf(&b, "entities: combatant=%d pickup=%d particle=%d projectile=%d\n",
		counts[sim.KindCombatant], counts[sim.KindPickup], counts[sim.KindParticle], counts[sim.KindProjectile])

	ev := s.Events
	fmt.Fprintf(&b, "events: fire=%d hit=%d blast=%d kill=%d pickup=%d respawn=%d\n",
		ev.Count(sim.EventFire), ev.Count(sim.EventHit), ev.Count(sim.EventBlast),
		ev.Count(sim.EventKill), ev.Count(sim.EventPickup), ev.Count(sim.EventRespawn))

	recent := ev.Recent(lastEvents)
	if len(recent) > 0 {
		b.WriteString("recent:\n")
		for _, e := range recent {
			b.WriteString("  ")
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// copyReport puts the round report on the clipboard.
func (g *Game) copyReport() {
	report := roundReport(g.sim, g.player, reportEvents)
	if err := g.clipboard(report); err != nil {
		g.log.Warn().Err(err).Msg("copying round report")
		g.setStatus("clipboard unavailable")
		return
	}
	g.log.Info().Int("bytes", len(report)).Msg("round report copied")
	g.setStatus("round report copied")
}
