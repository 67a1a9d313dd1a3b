package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/Garsondee/Skirmish/internal/config"
	"github.com/Garsondee/Skirmish/internal/logging"
	"github.com/Garsondee/Skirmish/internal/sim"
	"github.com/rs/zerolog"
)

const (
	botScreenW   = 1600.0
	botScreenH   = 900.0
	engageRange  = 400.0 // bot stops closing in once this near
	weaponCycle  = 300   // ticks between bot weapon switches
	respawnEvery = 120   // ticks between respawns while no enemy is left
)

type runStats struct {
	runIndex int
	seed     int64
	err      error

	ticks         int
	roundOverTick int
	deathTick     int
	firstKillTick int

	shots       int // trigger pulls
	projectiles int
	hits        int
	blasts      int
	kills       int
	respawns    int
	currency    int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var configDir string

	flag.IntVar(&runs, "runs", 0, "number of headless rounds (0 = report.runs from config)")
	flag.IntVar(&ticks, "ticks", 0, "tick limit per round (0 = report.ticks from config)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&configDir, "config", ".", "directory holding skirmish.yaml")
	flag.Parse()

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	if runs == 0 {
		runs = cfg.Report.Runs
	}
	if ticks == 0 {
		ticks = cfg.Report.Ticks
	}
	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(1)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, os.Stderr)

	fmt.Printf("=== Headless Skirmish Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d combatants=%d\n\n",
		runs, ticks, seedBase, seedStep, cfg.Sim.Combatants)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runRound(i+1, seed, ticks, cfg.SimConfig(), log)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runRound plays one round with the scripted bot until the round ends or the
// tick limit is hit.
func runRound(runIndex int, seed int64, ticks int, base sim.Config, log zerolog.Logger) runStats {
	cfg := base
	cfg.Seed = seed
	s, p, err := sim.New(cfg, sim.WithLogger(log))
	if err != nil {
		return runStats{runIndex: runIndex, seed: seed, err: err, roundOverTick: -1, deathTick: -1, firstKillTick: -1}
	}
	defer s.Close()

	s.RunTicks(p, botInput, ticks)
	return collectStats(runIndex, s, p)
}

// botInput aims at the nearest other combatant, closes in, fires whenever
// the weapon allows and cycles weapons on a fixed period.
func botInput(s *sim.Sim, p *sim.PlayerContext) sim.Input {
	center := sim.V(botScreenW/2, botScreenH/2)
	in := sim.Input{Pointer: center, ScreenW: botScreenW, ScreenH: botScreenH}

	me, _, ok := s.Controlled(p)
	if !ok {
		return in
	}
	target, found := nearestEnemy(s, p.Index, me.Pos)
	if !found {
		in.Respawn = s.Frame%respawnEvery == 0
		return in
	}

	toTarget := target.Sub(me.Pos)
	in.Pointer = center.Add(sim.FromAngle(toTarget.Angle()).Scale(100))
	if toTarget.Len() > engageRange {
		const deadzone = 20.0
		in.Left = toTarget.X < -deadzone
		in.Right = toTarget.X > deadzone
		in.Up = toTarget.Y < -deadzone
		in.Down = toTarget.Y > deadzone
	}
	in.Fire = sim.Trigger{Pressed: true, Held: true}

	if s.Frame > 0 && s.Frame%weaponCycle == 0 {
		in.WeaponSlot = (s.Frame/weaponCycle)%len(sim.Slots) + 1
	}
	return in
}

func nearestEnemy(s *sim.Sim, self int, from sim.Vec2) (sim.Vec2, bool) {
	best := math.Inf(1)
	var pos sim.Vec2
	for i, e := range s.Store.All() {
		if i == self || e.Kind() != sim.KindCombatant {
			continue
		}
		if d := e.Pos.Dist(from); d < best {
			best, pos = d, e.Pos
		}
	}
	return pos, !math.IsInf(best, 1)
}

func collectStats(runIndex int, s *sim.Sim, p *sim.PlayerContext) runStats {
	rs := runStats{
		runIndex:      runIndex,
		seed:          s.Seed,
		ticks:         s.Frame,
		roundOverTick: -1,
		deathTick:     -1,
		firstKillTick: -1,
		currency:      p.Currency,
	}
	for _, e := range s.Events.Filter(sim.EventFire) {
		rs.shots++
		rs.projectiles += int(e.Value)
	}
	for _, e := range s.Events.Entries() {
		switch e.Kind {
		case sim.EventHit:
			rs.hits++
		case sim.EventBlast:
			rs.blasts++
		case sim.EventRespawn:
			rs.respawns++
		case sim.EventQuit:
			if rs.deathTick < 0 {
				rs.deathTick = e.Tick
			}
		case sim.EventRoundOver:
			rs.roundOverTick = e.Tick
		case sim.EventKill:
			if e.Detail == sim.PlayerDetail {
				if rs.deathTick < 0 {
					rs.deathTick = e.Tick
				}
				continue
			}
			rs.kills++
			if rs.firstKillTick < 0 {
				rs.firstKillTick = e.Tick
			}
		}
	}
	return rs
}

func printRun(rs runStats) {
	fmt.Printf("--- run %d seed=%d ---\n", rs.runIndex, rs.seed)
	if rs.err != nil {
		fmt.Printf("error: %v\n\n", rs.err)
		return
	}
	fmt.Printf("ticks=%d round_over=%s death=%s first_kill=%s\n",
		rs.ticks, tickString(rs.roundOverTick), tickString(rs.deathTick), tickString(rs.firstKillTick))
	fmt.Printf("shots=%d projectiles=%d hits=%d blasts=%d accuracy=%s kills=%d respawns=%d currency=%d\n\n",
		rs.shots, rs.projectiles, rs.hits, rs.blasts, pct(rs.hits, rs.projectiles), rs.kills, rs.respawns, rs.currency)
}

func printAggregate(all []runStats) {
	var shots, projectiles, hits, blasts, kills, currency, ticks, survived int
	var deathTicks, killTicks []int
	ok := 0
	for _, rs := range all {
		if rs.err != nil {
			continue
		}
		ok++
		shots += rs.shots
		projectiles += rs.projectiles
		hits += rs.hits
		blasts += rs.blasts
		kills += rs.kills
		currency += rs.currency
		ticks += rs.ticks
		if rs.deathTick >= 0 {
			deathTicks = append(deathTicks, rs.deathTick)
		} else {
			survived++
		}
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d failed=%d survived=%d\n", len(all), len(all)-ok, survived)
	fmt.Printf("avg_per_run: ticks=%.1f shots=%.1f hits=%.1f blasts=%.1f kills=%.1f currency=%.1f\n",
		avg(ticks, ok), avg(shots, ok), avg(hits, ok), avg(blasts, ok), avg(kills, ok), avg(currency, ok))
	fmt.Printf("accuracy=%s avg_death_tick=%s avg_first_kill_tick=%s\n",
		pct(hits, projectiles), avgTickString(deathTicks), avgTickString(killTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(num, den int) string {
	if den <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", float64(num)/float64(den)*100)
}

func tickString(t int) string {
	if t < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", t)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
