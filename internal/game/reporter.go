package game

import (
	"fmt"
	"strings"
)

// reportWindowTicks is the default sliding window for recent-behaviour reports (~10s at 60TPS).
const reportWindowTicks = 600

// SessionReport is a snapshot of the session at one tick.
type SessionReport struct {
	Tick int

	Level      int
	Experience int
	Health     float64

	EnemiesAlive int
	AliveByTier  [tierCount]int
	Slowed       int // enemies currently under a freeze multiplier

	LiveEffects [spellKindCount]int
	Casts       [spellKindCount]int // cumulative
	Kills       [tierCount]int      // cumulative

	Cooldowns [spellKindCount]int64
	Levels    [spellKindCount]int
}

// SessionReporter collects periodic reports from a world and can produce
// summaries over sliding time windows.
type SessionReporter struct {
	history     []SessionReport
	windowTicks int
}

// NewSessionReporter creates a reporter with the given window size.
func NewSessionReporter(windowTicks int) *SessionReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SessionReporter{windowTicks: windowTicks}
}

// Collect gathers a snapshot from the current world state.
// Call this periodically (e.g. every 60 ticks / 1s).
func (r *SessionReporter) Collect(w *World) {
	gs := w.State
	rpt := SessionReport{
		Tick:       w.Ticks(),
		Level:      gs.Level,
		Experience: gs.Experience,
		Health:     gs.PlayerHealth,
		Casts:      gs.Casts,
		Kills:      gs.Kills,
	}
	w.Enemies.Each(func(_ EnemyHandle, e *Enemy) {
		rpt.EnemiesAlive++
		rpt.AliveByTier[e.Tier]++
		if e.SpeedMultiplier < 1.0 {
			rpt.Slowed++
		}
	})
	for _, fx := range w.Effects {
		rpt.LiveEffects[fx.Kind()]++
	}
	for _, s := range AllSpells {
		rpt.Cooldowns[s] = w.Combo.Cooldown(s)
		rpt.Levels[s] = w.Combo.Level(s)
	}
	r.history = append(r.history, rpt)
}

// Latest returns the most recent report, or nil if none collected yet.
func (r *SessionReporter) Latest() *SessionReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns all collected reports.
func (r *SessionReporter) History() []SessionReport {
	return r.history
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	AvgEnemies float64
	AvgSlowed  float64
	AvgHealth  float64
	MinHealth  float64

	// Deltas between the first and last sample of the window.
	CastsInWindow [spellKindCount]int
	KillsInWindow [tierCount]int
	LevelsGained  int
}

// WindowSummary aggregates the reports inside the recent window.
func (r *SessionReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	start := len(r.history) - 1
	for start > 0 && r.history[start-1].Tick >= cutoff {
		start--
	}
	window := r.history[start:]

	first, last := window[0], window[len(window)-1]
	wr := &WindowReport{
		FromTick:     first.Tick,
		ToTick:       last.Tick,
		SampleCount:  len(window),
		MinHealth:    first.Health,
		LevelsGained: last.Level - first.Level,
	}
	for _, rpt := range window {
		wr.AvgEnemies += float64(rpt.EnemiesAlive)
		wr.AvgSlowed += float64(rpt.Slowed)
		wr.AvgHealth += rpt.Health
		if rpt.Health < wr.MinHealth {
			wr.MinHealth = rpt.Health
		}
	}
	n := float64(len(window))
	wr.AvgEnemies /= n
	wr.AvgSlowed /= n
	wr.AvgHealth /= n

	for s := range wr.CastsInWindow {
		wr.CastsInWindow[s] = last.Casts[s] - first.Casts[s]
	}
	for t := range wr.KillsInWindow {
		wr.KillsInWindow[t] = last.Kills[t] - first.Kills[t]
	}
	return wr
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Session Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)

	sb.WriteString("\n--- Pressure ---\n")
	fmt.Fprintf(&sb, "  enemies avg=%.1f  slowed avg=%.1f\n", wr.AvgEnemies, wr.AvgSlowed)
	fmt.Fprintf(&sb, "  health avg=%.1f  min=%.1f  (%s)\n", wr.AvgHealth, wr.MinHealth, pressureLabel(wr.MinHealth))

	sb.WriteString("\n--- Casts ---\n")
	for _, s := range AllSpells {
		fmt.Fprintf(&sb, "  %-10s %d\n", s, wr.CastsInWindow[s])
	}

	sb.WriteString("\n--- Kills ---\n")
	for t := EnemyTier(0); t < tierCount; t++ {
		fmt.Fprintf(&sb, "  %-10s %d\n", t, wr.KillsInWindow[t])
	}
	fmt.Fprintf(&sb, "  levels gained: %d\n", wr.LevelsGained)
	return sb.String()
}

func pressureLabel(minHealth float64) string {
	switch {
	case minHealth >= playerMaxHealth*0.9:
		return "untouched"
	case minHealth >= playerMaxHealth*0.5:
		return "pressed"
	case minHealth > 0:
		return "desperate"
	default:
		return "overrun"
	}
}

// FormatLatest returns a concise snapshot of the most recent collected report.
func (r *SessionReporter) FormatLatest() string {
	rpt := r.Latest()
	if rpt == nil {
		return "No data.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Snapshot T=%d ---\n", rpt.Tick)
	fmt.Fprintf(&sb, "level=%d xp=%d hp=%.1f enemies=%d slowed=%d\n",
		rpt.Level, rpt.Experience, rpt.Health, rpt.EnemiesAlive, rpt.Slowed)
	for _, s := range AllSpells {
		if rpt.Levels[s] == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  %-10s lv%d cd=%dms live=%d casts=%d\n",
			s, rpt.Levels[s], rpt.Cooldowns[s], rpt.LiveEffects[s], rpt.Casts[s])
	}
	return sb.String()
}
