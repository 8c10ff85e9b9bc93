package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/spellwalk/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	scenario string

	outcome game.SessionOutcomeReason

	firstCastTick    int
	firstKillTick    int
	firstLevelUpTick int
	gameOverTick     int

	casts      map[string]int
	hits       map[string]int
	kills      map[string]int
	spawns     int
	slowEvents int
	released   int
	choices    []string

	windowSummary *game.WindowReport
	grade         game.SessionGrade
}

// scenarios maps a scenario name to the options its sessions start with.
var scenarios = map[string]func(seed int64) []game.SimOption{
	"survival": func(seed int64) []game.SimOption {
		return []game.SimOption{
			game.WithSeed(seed),
			game.WithSpawning(),
			game.WithAutoFire(),
		}
	},
	"swarm": func(seed int64) []game.SimOption {
		opts := []game.SimOption{
			game.WithSeed(seed),
			game.WithSpawning(),
			game.WithAutoFire(),
			game.WithUnlocked(game.SpellLightning, 1),
			game.WithUnlocked(game.SpellFireball, 1),
			game.WithUnlocked(game.SpellFreeze, 1),
		}
		for i := 0; i < 8; i++ {
			x := 60 + float64(i)*95
			opts = append(opts, game.WithEnemy(game.TierBase, x, 40), game.WithEnemy(game.TierBase, x, 560))
		}
		return append(opts, game.WithEnemy(game.TierTank, 40, 300), game.WithEnemy(game.TierTank, 760, 300))
	},
}

func scenarioNames() string {
	names := make([]string, 0, len(scenarios))
	for k := range scenarios {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "survival", "scenario name")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	setup, ok := scenarios[scenario]
	if !ok {
		fmt.Printf("error: unsupported scenario %q (supported: %s)\n", scenario, scenarioNames())
		return
	}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", scenario, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runSession(i+1, seed, scenario, setup(seed), ticks)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runSession plays one session with the bot caster until the player dies or
// ticks run out.
func runSession(runIndex int, seed int64, scenario string, opts []game.SimOption, ticks int) runStats {
	ts := game.NewTestSim(opts...)
	reporter := game.NewSessionReporter(0)
	bot := newCaster()

	for i := 0; i < ticks && !ts.World.State.GameOver; i++ {
		bot.drive(ts)
		ts.Step()
		if ts.CurrentTick()%60 == 0 {
			reporter.Collect(ts.World)
		}
	}
	reporter.Collect(ts.World)

	rs := collectStats(ts.Log.Entries())
	rs.runIndex = runIndex
	rs.seed = seed
	rs.scenario = scenario
	rs.outcome = game.DetermineSessionOutcome(ts.World, ticks)
	rs.choices = bot.choices
	rs.windowSummary = reporter.WindowSummary()
	rs.grade = ts.Grade()
	return rs
}

// collectStats tallies the session log.
func collectStats(entries []game.SimLogEntry) runStats {
	rs := runStats{
		casts: map[string]int{},
		hits:  map[string]int{},
		kills: map[string]int{},
	}
	for _, e := range entries {
		switch e.Category {
		case "spell":
			if e.Key == "cast" {
				rs.casts[spellName(e.Value)]++
			}
		case "hit":
			rs.hits[e.Key]++
		case "kill":
			rs.kills[e.Key]++
		case "spawn":
			rs.spawns++
		case "freeze":
			switch e.Key {
			case "apply":
				rs.slowEvents++
			case "release":
				rs.released += int(e.NumVal)
			}
		}
	}
	rs.firstCastTick = firstTick(entries, "spell", "cast", "")
	rs.firstKillTick = firstTickCategory(entries, "kill")
	rs.firstLevelUpTick = firstTick(entries, "level", "up", "")
	rs.gameOverTick = firstTick(entries, "session", "game_over", "")
	return rs
}

// spellName strips the level suffix from a cast entry value ("fireball lv2").
func spellName(v string) string {
	if i := strings.IndexByte(v, ' '); i >= 0 {
		return v[:i]
	}
	return v
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func firstTickCategory(entries []game.SimLogEntry, category string) int {
	for _, e := range entries {
		if e.Category == category {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s (%s) ticks=%d level=%d kills=%d casts=%d hp=%.1f\n",
		rs.outcome.Outcome, rs.outcome.Description, rs.outcome.Ticks, rs.outcome.Level,
		rs.outcome.Kills, rs.outcome.Casts, rs.outcome.Health)
	fmt.Printf("phase_markers: first_cast=%d first_kill=%d first_level_up=%d game_over=%d\n",
		rs.firstCastTick, rs.firstKillTick, rs.firstLevelUpTick, rs.gameOverTick)
	fmt.Printf("casts: %s\n", formatCounts(rs.casts))
	fmt.Printf("hits: %s\n", formatCounts(rs.hits))
	fmt.Printf("kills: %s\n", formatCounts(rs.kills))
	fmt.Printf("spawns=%d freeze_apply_events=%d freeze_restored=%d\n", rs.spawns, rs.slowEvents, rs.released)
	if len(rs.choices) > 0 {
		fmt.Printf("choices: %s\n", strings.Join(rs.choices, ","))
	}
	if rs.windowSummary != nil {
		fmt.Printf("window_samples=%d window_tick_range=%d..%d\n",
			rs.windowSummary.SampleCount, rs.windowSummary.FromTick, rs.windowSummary.ToTick)
		fmt.Printf("window_pressure: enemies_avg=%.1f slowed_avg=%.1f hp_avg=%.1f hp_min=%.1f\n",
			rs.windowSummary.AvgEnemies, rs.windowSummary.AvgSlowed,
			rs.windowSummary.AvgHealth, rs.windowSummary.MinHealth)
	}
	fmt.Print(game.FormatGrade(rs.grade))
	fmt.Println()
}

// aggregate holds totals across runs.
type aggregate struct {
	runs     int
	survived int
	died     int

	levelSum int
	killSum  int
	castSum  int
	ticksSum int

	casts map[string]int
	kills map[string]int

	levelUpTicks []int
	deathTicks   []int
}

func aggregateRuns(all []runStats) aggregate {
	ag := aggregate{
		runs:  len(all),
		casts: map[string]int{},
		kills: map[string]int{},
	}
	for _, rs := range all {
		switch rs.outcome.Outcome {
		case game.OutcomeSurvived:
			ag.survived++
		case game.OutcomeDied:
			ag.died++
		}
		ag.levelSum += rs.outcome.Level
		ag.killSum += rs.outcome.Kills
		ag.castSum += rs.outcome.Casts
		ag.ticksSum += rs.outcome.Ticks
		for k, v := range rs.casts {
			ag.casts[k] += v
		}
		for k, v := range rs.kills {
			ag.kills[k] += v
		}
		if rs.firstLevelUpTick >= 0 {
			ag.levelUpTicks = append(ag.levelUpTicks, rs.firstLevelUpTick)
		}
		if rs.gameOverTick >= 0 {
			ag.deathTicks = append(ag.deathTicks, rs.gameOverTick)
		}
	}
	return ag
}

func printAggregate(all []runStats) {
	ag := aggregateRuns(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d survived=%d died=%d survival_rate=%.0f%%\n",
		ag.runs, ag.survived, ag.died, pct(ag.survived, ag.runs))
	fmt.Printf("avg_per_run: level=%.1f kills=%.1f casts=%.1f ticks=%.1f\n",
		avg(ag.levelSum, ag.runs), avg(ag.killSum, ag.runs), avg(ag.castSum, ag.runs), avg(ag.ticksSum, ag.runs))
	fmt.Printf("phase_marker_avg_ticks: first_level_up=%s game_over=%s\n",
		avgTickString(ag.levelUpTicks), avgTickString(ag.deathTicks))
	fmt.Printf("casts_total: %s\n", formatCounts(ag.casts))
	fmt.Printf("kills_total: %s\n", formatCounts(ag.kills))

	fmt.Println("\n--- Performance (across all runs) ---")
	fmt.Print(game.FormatGradesSummary(collectGrades(all)))
}

func collectGrades(all []runStats) []game.SessionGrade {
	out := make([]game.SessionGrade, 0, len(all))
	for _, rs := range all {
		out = append(out, rs.grade)
	}
	return out
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
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

// formatCounts renders a count map as sorted key=value pairs.
func formatCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, " ")
}
