package main

import (
	"testing"

	"github.com/Garsondee/spellwalk/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStats_TalliesLogCategories(t *testing.T) {
	entries := []game.SimLogEntry{
		{Tick: 3, Category: "spawn", Key: "base"},
		{Tick: 10, Category: "spell", Key: "cast", Value: "fireball lv1"},
		{Tick: 12, Category: "hit", Key: "fireball"},
		{Tick: 12, Category: "kill", Key: "fireball"},
		{Tick: 20, Category: "level", Key: "up", Value: "level 2"},
		{Tick: 30, Category: "freeze", Key: "release", NumVal: 2},
	}
	rs := collectStats(entries)

	assert.Equal(t, 1, rs.casts["fireball"])
	assert.Equal(t, 1, rs.hits["fireball"])
	assert.Equal(t, 1, rs.kills["fireball"])
	assert.Equal(t, 1, rs.spawns)
	assert.Equal(t, 2, rs.released)
	assert.Equal(t, 10, rs.firstCastTick)
	assert.Equal(t, 12, rs.firstKillTick)
	assert.Equal(t, 20, rs.firstLevelUpTick)
	assert.Equal(t, -1, rs.gameOverTick)
}

func TestAggregateRuns_CountsOutcomes(t *testing.T) {
	all := []runStats{
		{outcome: game.SessionOutcomeReason{Outcome: game.OutcomeSurvived, Level: 3, Kills: 10}, firstLevelUpTick: 100, gameOverTick: -1},
		{outcome: game.SessionOutcomeReason{Outcome: game.OutcomeDied, Level: 1, Kills: 2}, firstLevelUpTick: -1, gameOverTick: 400},
	}
	ag := aggregateRuns(all)

	assert.Equal(t, 2, ag.runs)
	assert.Equal(t, 1, ag.survived)
	assert.Equal(t, 1, ag.died)
	assert.InDelta(t, 2.0, avg(ag.levelSum, ag.runs), 1e-9)
	assert.InDelta(t, 50.0, pct(ag.survived, ag.runs), 1e-9)
	assert.Equal(t, []int{100}, ag.levelUpTicks)
	assert.Equal(t, []int{400}, ag.deathTicks)
}

func TestFormatCounts_SortedPairs(t *testing.T) {
	assert.Equal(t, "none", formatCounts(nil))
	assert.Equal(t, "fireball=2 lightning=1", formatCounts(map[string]int{"lightning": 1, "fireball": 2}))
}

func TestPickSpell_LowestLevelFirst(t *testing.T) {
	c := game.NewComboRecognizer(0)
	assert.Equal(t, game.SpellLightning, pickSpell(c))
	c.Unlock(game.SpellLightning)
	assert.Equal(t, game.SpellFireball, pickSpell(c))
	c.Unlock(game.SpellFireball)
	assert.Equal(t, game.SpellFreeze, pickSpell(c))
}

func TestReadySpell_FreezeOnlyWhenClose(t *testing.T) {
	c := game.NewComboRecognizer(0)
	_, ok := readySpell(c, 50)
	assert.False(t, ok, "nothing unlocked")

	c.Unlock(game.SpellFreeze)
	_, ok = readySpell(c, fleeRadius+50)
	assert.False(t, ok)
	s, ok := readySpell(c, 50)
	require.True(t, ok)
	assert.Equal(t, game.SpellFreeze, s)
}

func TestRunSession_SwarmIsDeterministic(t *testing.T) {
	a := runSession(1, 7, "swarm", scenarios["swarm"](7), 600)
	b := runSession(1, 7, "swarm", scenarios["swarm"](7), 600)

	assert.Equal(t, a.outcome, b.outcome)
	assert.Equal(t, a.casts, b.casts)
	assert.Positive(t, a.outcome.Casts, "bot should cast with every spell unlocked")
	t.Logf("outcome=%s casts=%s kills=%s", a.outcome.Description, formatCounts(a.casts), formatCounts(a.kills))
}
