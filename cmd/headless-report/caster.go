package main

import (
	"math"

	"github.com/Garsondee/spellwalk/internal/game"
)

// fleeRadius is how close the nearest enemy may get before the bot backs off.
const fleeRadius = 140.0

// caster is a scripted player: it kites the nearest enemy, aims at it and
// types spell combos one key per tick whenever a spell is ready.
type caster struct {
	queue   []game.Key
	choices []string
}

func newCaster() *caster {
	return &caster{}
}

// drive sets the input for the next tick of ts.
func (c *caster) drive(ts *game.TestSim) {
	w := ts.World
	for w.PendingChoices() > 0 {
		s := pickSpell(w.Combo)
		w.ChooseSpell(s)
		c.choices = append(c.choices, s.String())
	}

	target, dist, ok := nearestEnemy(w)
	if !ok {
		ts.Steer(steerToward(w.Player.Pos, w.Field.Center()))
		ts.Aim(w.Field.Center().X, w.Field.Center().Y)
		return
	}
	ts.Aim(target.X, target.Y)
	if dist < fleeRadius {
		ts.Steer(steerAway(w.Player.Pos, target))
	} else {
		ts.Steer(steerToward(w.Player.Pos, w.Field.Center()))
	}

	if len(c.queue) == 0 {
		if s, ok := readySpell(w.Combo, dist); ok {
			c.queue = s.Pattern()
		}
	}
	if len(c.queue) > 0 {
		ts.Press(c.queue[0])
		c.queue = c.queue[1:]
	}
}

// pickSpell returns the spell with the lowest upgrade level, earliest in
// menu order on ties.
func pickSpell(c *game.ComboRecognizer) game.SpellKind {
	best := game.AllSpells[0]
	for _, s := range game.AllSpells[1:] {
		if c.Level(s) < c.Level(best) {
			best = s
		}
	}
	return best
}

// readySpell picks an unlocked spell that is off cooldown. Freeze is only
// worth casting when an enemy is close.
func readySpell(c *game.ComboRecognizer, dist float64) (game.SpellKind, bool) {
	for _, s := range []game.SpellKind{game.SpellFreeze, game.SpellLightning, game.SpellFireball} {
		if !c.Unlocked(s) || c.Cooldown(s) > 0 {
			continue
		}
		if s == game.SpellFreeze && dist > fleeRadius {
			continue
		}
		return s, true
	}
	return 0, false
}

func nearestEnemy(w *game.World) (game.Vec2, float64, bool) {
	best := math.Inf(1)
	var pos game.Vec2
	w.Enemies.Each(func(_ game.EnemyHandle, e *game.Enemy) {
		if d := game.Dist(w.Player.Pos, e.Pos); d < best {
			best = d
			pos = e.Pos
		}
	})
	return pos, best, !math.IsInf(best, 1)
}

func steerAway(from, threat game.Vec2) (float64, float64) {
	d := game.Normalize(from.Sub(threat))
	return d.X, d.Y
}

// steerToward drifts back to p, stopping inside a small dead zone.
func steerToward(from, p game.Vec2) (float64, float64) {
	if game.Dist(from, p) < 20 {
		return 0, 0
	}
	d := game.Normalize(p.Sub(from))
	return d.X, d.Y
}
