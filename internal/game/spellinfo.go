package game

import (
	"fmt"
	"strings"
)

// SpellInfo is one row of the level-up menu.
type SpellInfo struct {
	Kind        SpellKind
	Name        string
	Combo       string // e.g. "Q-W-E-R"
	Description string
	Damage      int     // 0 for spells that deal none
	DurationSec float64 // 0 for instant spells
	CooldownSec float64
}

var spellInfo = [spellKindCount]SpellInfo{
	SpellLightning: {
		Kind:        SpellLightning,
		Name:        "Lightning Strike",
		Description: "Chain lightning that damages enemies",
		Damage:      lightningDamage,
		CooldownSec: lightningCooldownMs / 1000.0,
	},
	SpellFireball: {
		Kind:        SpellFireball,
		Name:        "Fireball",
		Description: "Launch a powerful fireball",
		Damage:      fireballDamage,
		CooldownSec: fireballCooldownMs / 1000.0,
	},
	SpellFreeze: {
		Kind:        SpellFreeze,
		Name:        "Freeze Field",
		Description: "Slow enemies in a radius",
		DurationSec: freezeDurationMs / 1000.0,
		CooldownSec: freezeCooldownMs / 1000.0,
	},
}

// Info returns the menu row for s with its combo text filled in.
func (s SpellKind) Info() SpellInfo {
	if s < 0 || s >= spellKindCount {
		return SpellInfo{Kind: s, Name: "unknown"}
	}
	info := spellInfo[s]
	info.Combo = comboText(s.Pattern())
	return info
}

func comboText(keys []Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, "-")
}

// MenuLine renders the row the way the level-up menu prints it, with the
// player's current level for s.
func (info SpellInfo) MenuLine(currentLevel int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", info.Name, info.Combo)
	if currentLevel > 0 {
		fmt.Fprintf(&b, " lv%d->%d", currentLevel, currentLevel+1)
	} else {
		b.WriteString(" NEW")
	}
	if info.Damage > 0 {
		fmt.Fprintf(&b, "  dmg %d", info.Damage)
	}
	if info.DurationSec > 0 {
		fmt.Fprintf(&b, "  %.0fs", info.DurationSec)
	}
	fmt.Fprintf(&b, "  cd %.0fs", info.CooldownSec)
	return b.String()
}
