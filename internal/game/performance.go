package game

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Performance grading thresholds.
const (
	perfPressureRadius    = 120.0 // an enemy this close puts the player under pressure
	perfIdleRadius        = 250.0 // a ready spell with an enemy this close counts as idle
	perfMinTicks          = 120
	perfMinPressureTicks  = 30
	perfMinCastingTicks   = 60
	perfComboFluentHits   = 2.0
	perfFaceTankFrac      = 0.3
	perfWastedCooldownPct = 0.5
)

// ---------------------------------------------------------------------------
// PerfTracker: per-session, per-tick accumulator
// ---------------------------------------------------------------------------

// PerfTracker accumulates per-tick metrics about how the player handled a
// session.
type PerfTracker struct {
	Label string

	// Lifecycle.
	TicksAlive int
	Survived   bool

	// Situation time (ticks).
	TicksUnderPressure int // an enemy within perfPressureRadius
	TicksInContact     int // an enemy touching the player
	TicksHolding       int // at least one enemy slowed by a freeze field
	TicksWithSpells    int // at least one spell unlocked
	TicksIdleReady     int // a spell ready with an enemy in reach and nothing typed
	TicksMoving        int

	// Aggregates.
	Casts       [spellKindCount]int
	SpellHits   int
	Kills       int
	LevelUps    int
	DamageTaken float64
	HealthAtEnd float64
}

// NewPerfTracker creates a tracker labelled for reports.
func NewPerfTracker(label string) *PerfTracker {
	return &PerfTracker{Label: label}
}

// Update accumulates one tick. rep is the report the world returned for it;
// paused ticks are ignored.
func (pt *PerfTracker) Update(w *World, rep TickReport, in TickInput) {
	if rep.Paused {
		return
	}
	pt.TicksAlive++
	for _, s := range rep.Casts {
		pt.Casts[s]++
	}
	pt.SpellHits += rep.SpellHits
	pt.Kills += rep.Kills
	pt.LevelUps += len(rep.LevelUps)
	if in.Move != (Vec2{}) {
		pt.TicksMoving++
	}

	nearest := math.Inf(1)
	slowed := false
	w.Enemies.Each(func(_ EnemyHandle, e *Enemy) {
		if d := Dist(w.Player.Pos, e.Pos); d < nearest {
			nearest = d
		}
		if e.SpeedMultiplier < 1 {
			slowed = true
		}
	})
	if nearest < perfPressureRadius {
		pt.TicksUnderPressure++
	}
	if slowed {
		pt.TicksHolding++
	}
	if rep.Contact {
		pt.TicksInContact++
		pt.DamageTaken += contactDamage
	}

	unlocked := w.Combo.UnlockedSpells()
	if len(unlocked) > 0 {
		pt.TicksWithSpells++
		if nearest < perfIdleRadius && len(in.Keys) == 0 && len(w.Combo.History()) == 0 {
			for _, s := range unlocked {
				if w.Combo.Cooldown(s) == 0 {
					pt.TicksIdleReady++
					break
				}
			}
		}
	}
}

// Finalize snapshots end-of-session state.
func (pt *PerfTracker) Finalize(w *World) {
	pt.Survived = !w.State.GameOver
	pt.HealthAtEnd = w.State.PlayerHealth
}

// TotalCasts sums casts across spells.
func (pt *PerfTracker) TotalCasts() int {
	n := 0
	for _, c := range pt.Casts {
		n += c
	}
	return n
}

// ---------------------------------------------------------------------------
// SessionGrade: computed performance result
// ---------------------------------------------------------------------------

// SessionGrade is the computed performance grade for one session.
type SessionGrade struct {
	Label    string
	Grade    string  // A+, A, B+, B, C+, C, D, F
	Score    float64 // 0-100
	Survived bool

	// Situation scores (0-100; -1 = not enough data to grade).
	OffenseScore float64
	EvasionScore float64
	CastingScore float64
	ControlScore float64

	// Observed traits.
	GoodTraits []string
	BadTraits  []string

	// Key stats.
	KillsPerMinute float64
	HitsPerCast    float64
	ContactPct     float64
	DamageTaken    float64
}

// GradeSession computes the grade from accumulated tracker data.
func GradeSession(pt *PerfTracker) SessionGrade {
	g := SessionGrade{
		Label:        pt.Label,
		Survived:     pt.Survived,
		DamageTaken:  pt.DamageTaken,
		OffenseScore: -1,
		EvasionScore: -1,
		CastingScore: -1,
		ControlScore: -1,
	}

	casts := pt.TotalCasts()
	if pt.TicksAlive > 0 {
		g.KillsPerMinute = float64(pt.Kills) / (float64(pt.TicksAlive) / 3600)
	}
	if casts > 0 {
		g.HitsPerCast = float64(pt.SpellHits) / float64(casts)
	}
	g.ContactPct = perfFrac(pt.TicksInContact, pt.TicksUnderPressure) * 100

	// --- Offense: how fast the player clears the field ---
	if pt.TicksAlive >= perfMinTicks {
		s := 40.0
		s += math.Min(30, g.KillsPerMinute*1.5)
		s += math.Min(30, g.HitsPerCast*10)
		g.OffenseScore = perfClamp(s)
	}

	// --- Evasion: staying out of reach under pressure ---
	if pt.TicksUnderPressure >= perfMinPressureTicks {
		s := 90.0
		s -= 80.0 * perfFrac(pt.TicksInContact, pt.TicksUnderPressure)
		g.EvasionScore = perfClamp(s)
	}

	// --- Casting: ready spells are not left idle ---
	if pt.TicksWithSpells >= perfMinCastingTicks {
		s := 85.0
		s -= 60.0 * perfFrac(pt.TicksIdleReady, pt.TicksWithSpells)
		g.CastingScore = perfClamp(s)
	}

	// --- Control: freeze fields holding enemies while pressed ---
	if pt.Casts[SpellFreeze] > 0 && pt.TicksUnderPressure >= perfMinPressureTicks {
		s := 50.0
		s += 50.0 * perfFrac(pt.TicksHolding, pt.TicksUnderPressure)
		g.ControlScore = perfClamp(s)
	}

	// --- Overall weighted average ---
	type scoredWeight struct {
		score  float64
		weight float64
	}
	var items []scoredWeight
	if g.OffenseScore >= 0 {
		items = append(items, scoredWeight{g.OffenseScore, 0.35})
	}
	if g.EvasionScore >= 0 {
		items = append(items, scoredWeight{g.EvasionScore, 0.30})
	}
	if g.CastingScore >= 0 {
		items = append(items, scoredWeight{g.CastingScore, 0.20})
	}
	if g.ControlScore >= 0 {
		items = append(items, scoredWeight{g.ControlScore, 0.15})
	}

	if len(items) > 0 {
		totalW := 0.0
		totalS := 0.0
		for _, it := range items {
			totalW += it.weight
			totalS += it.score * it.weight
		}
		g.Score = totalS / totalW
	} else {
		g.Score = 50.0
		if pt.TicksAlive > 0 {
			g.Score += perfFrac(pt.TicksMoving, pt.TicksAlive) * 30.0
		}
	}

	if pt.Survived {
		g.Score = math.Min(100, g.Score+5)
	}

	g.Grade = PerfLetterGrade(g.Score)
	g.GoodTraits, g.BadTraits = perfDetectTraits(pt, g)
	return g
}

// ---------------------------------------------------------------------------
// Trait detection
// ---------------------------------------------------------------------------

func perfDetectTraits(pt *PerfTracker, g SessionGrade) (good, bad []string) {
	casts := pt.TotalCasts()

	if casts >= 3 && g.HitsPerCast >= perfComboFluentHits {
		good = append(good, "combo_fluent")
	}
	if pt.TicksUnderPressure >= perfMinPressureTicks && pt.TicksInContact == 0 {
		good = append(good, "untouchable")
	}
	if pt.Casts[SpellFreeze] >= 2 && perfFrac(pt.TicksHolding, pt.TicksUnderPressure) > 0.5 {
		good = append(good, "crowd_control")
	}
	if pt.LevelUps >= 5 {
		good = append(good, "fast_learner")
	}

	if pt.TicksUnderPressure >= perfMinPressureTicks &&
		perfFrac(pt.TicksInContact, pt.TicksUnderPressure) > perfFaceTankFrac {
		bad = append(bad, "face_tank")
	}
	if pt.TicksWithSpells >= perfMinCastingTicks &&
		perfFrac(pt.TicksIdleReady, pt.TicksWithSpells) > perfWastedCooldownPct {
		bad = append(bad, "wasted_cooldowns")
	}
	if casts >= 3 && pt.SpellHits == 0 {
		bad = append(bad, "casting_blind")
	}
	used := 0
	for _, c := range pt.Casts {
		if c > 0 {
			used++
		}
	}
	if used == 1 && casts >= 10 {
		bad = append(bad, "one_trick")
	}
	return good, bad
}

// ---------------------------------------------------------------------------
// Formatting
// ---------------------------------------------------------------------------

// FormatGrade returns a human-readable grade block for one session.
func FormatGrade(g SessionGrade) string {
	var sb strings.Builder
	status := "survived"
	if !g.Survived {
		status = "overrun"
	}
	fmt.Fprintf(&sb, "  %-3s  %s  [%s]  dmg=%.1f  kpm=%.1f  hits/cast=%.2f  contact=%.0f%%\n",
		g.Grade, g.Label, status, g.DamageTaken, g.KillsPerMinute, g.HitsPerCast, g.ContactPct)
	if len(g.GoodTraits) > 0 {
		fmt.Fprintf(&sb, "       Good: %s\n", strings.Join(g.GoodTraits, ", "))
	}
	if len(g.BadTraits) > 0 {
		fmt.Fprintf(&sb, "       Bad:  %s\n", strings.Join(g.BadTraits, ", "))
	}

	var scores []string
	if g.OffenseScore >= 0 {
		scores = append(scores, fmt.Sprintf("Offense=%.0f", g.OffenseScore))
	}
	if g.EvasionScore >= 0 {
		scores = append(scores, fmt.Sprintf("Evasion=%.0f", g.EvasionScore))
	}
	if g.CastingScore >= 0 {
		scores = append(scores, fmt.Sprintf("Casting=%.0f", g.CastingScore))
	}
	if g.ControlScore >= 0 {
		scores = append(scores, fmt.Sprintf("Control=%.0f", g.ControlScore))
	}
	if len(scores) > 0 {
		fmt.Fprintf(&sb, "       Scores: %s\n", strings.Join(scores, "  "))
	}
	return sb.String()
}

// FormatGradesSummary returns a compact summary over many sessions.
func FormatGradesSummary(grades []SessionGrade) string {
	if len(grades) == 0 {
		return "  no sessions graded\n"
	}
	var sb strings.Builder
	scoreSum := 0.0
	survived := 0
	goodCount := map[string]int{}
	badCount := map[string]int{}
	for _, g := range grades {
		scoreSum += g.Score
		if g.Survived {
			survived++
		}
		for _, t := range g.GoodTraits {
			goodCount[t]++
		}
		for _, t := range g.BadTraits {
			badCount[t]++
		}
	}
	avg := scoreSum / float64(len(grades))
	fmt.Fprintf(&sb, "  avg_score=%.1f (%s)  survived=%d/%d\n", avg, PerfLetterGrade(avg), survived, len(grades))
	if len(goodCount) > 0 {
		fmt.Fprintf(&sb, "    Top good: %s\n", perfTopTraits(goodCount, 4))
	}
	if len(badCount) > 0 {
		fmt.Fprintf(&sb, "    Top bad:  %s\n", perfTopTraits(badCount, 4))
	}
	return sb.String()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func perfFrac(num, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func perfClamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// PerfLetterGrade maps a 0-100 score to a letter grade.
func PerfLetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

// perfTopTraits lists the n most frequent traits, ties broken by name.
func perfTopTraits(counts map[string]int, n int) string {
	type kv struct {
		trait string
		count int
	}
	var items []kv
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].trait < items[j].trait
	})
	if len(items) > n {
		items = items[:n]
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s(%d)", it.trait, it.count)
	}
	return strings.Join(parts, ", ")
}
