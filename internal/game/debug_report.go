package game

import (
	"fmt"
	"strings"
)

// SessionDebugReport builds the text copied to the clipboard on F9: the
// session header, spell and progression state, and a timeline of the last
// lastTicks ticks read from the SimLog.
func (w *World) SessionDebugReport(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 600
	}

	toTick := w.Ticks()
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	gs := w.State
	out := DetermineSessionOutcome(w, 0)

	var b strings.Builder
	fmt.Fprintf(&b, "--- Spellwalk session report ---\n")
	fmt.Fprintf(&b, "seed=%d tick_range=[%d..%d] ticks=%d now=%dms\n", w.Seed(), fromTick, toTick, toTick-fromTick+1, w.Now())
	fmt.Fprintf(&b, "outcome=%s (%s)\n\n", out.Outcome, out.Description)

	b.WriteString("== progression ==\n")
	fmt.Fprintf(&b, "level=%d xp=%d/%d hp=%.1f/%.0f pending_choices=%d\n",
		gs.Level, gs.Experience, gs.Level*xpPerLevel, gs.PlayerHealth, playerMaxHealth, w.PendingChoices())
	fmt.Fprintf(&b, "kills:")
	for t := EnemyTier(0); t < tierCount; t++ {
		fmt.Fprintf(&b, " %s=%d", t, gs.Kills[t])
	}
	b.WriteString("\n\n")

	b.WriteString("== spells ==\n")
	for _, s := range AllSpells {
		info := s.Info()
		if !w.Combo.Unlocked(s) {
			fmt.Fprintf(&b, "%-16s [%s] locked\n", info.Name, info.Combo)
			continue
		}
		fmt.Fprintf(&b, "%-16s [%s] lv%d cd=%dms casts=%d\n",
			info.Name, info.Combo, w.Combo.Level(s), w.Combo.Cooldown(s), gs.Casts[s])
	}
	fmt.Fprintf(&b, "combo history: %s\n\n", historyText(w.Combo.History()))

	b.WriteString("== live ==\n")
	fmt.Fprintf(&b, "enemies=%d effects=%d projectiles=%d\n", w.Enemies.Len(), len(w.Effects), len(w.Projectiles))
	for _, fx := range w.Effects {
		b.WriteString("  - ")
		b.WriteString(describeEffect(fx, w.Now()))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	entries := w.Log.FilterTickRange(fromTick, toTick)
	b.WriteString("== events ==\n")
	if len(entries) == 0 {
		b.WriteString("(no events in range)\n")
	}
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func historyText(keys []Key) string {
	if len(keys) == 0 {
		return "(empty)"
	}
	return comboText(keys)
}

func describeEffect(fx SpellEffect, now int64) string {
	switch e := fx.(type) {
	case *LightningSpell:
		return fmt.Sprintf("lightning lv%d age=%dms hits=%d/%d dmg=%d",
			e.Level(), e.Age(now), e.HitCount(), e.ChainCount, e.Damage)
	case *FireballSpell:
		return fmt.Sprintf("fireball lv%d age=%dms at (%.0f,%.0f) dmg=%d size=%.0f",
			e.Level(), e.Age(now), e.Pos.X, e.Pos.Y, e.Damage, e.Size)
	case *FreezeSpell:
		return fmt.Sprintf("freeze lv%d age=%dms/%d r=%.0f slow=%.2f holding=%d",
			e.Level(), e.Age(now), e.DurationMs, e.Radius, e.Slow, len(e.affected))
	default:
		return fmt.Sprintf("%s lv%d", fx.Kind(), fx.Level())
	}
}
