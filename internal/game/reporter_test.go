package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionReporter_WindowSummary(t *testing.T) {
	ts := NewTestSim(
		WithUnlocked(SpellFreeze, 1),
		WithEnemy(TierBase, 500, 300),
		WithEnemy(TierTank, 300, 300),
	)
	r := NewSessionReporter(120)
	assert.Nil(t, r.Latest())
	assert.Equal(t, "No data collected yet.\n", r.WindowSummary().Format())

	r.Collect(ts.World)
	ts.Type(KeyI, KeyC, KeyE)
	for i := 0; i < 4; i++ {
		ts.RunTicks(60)
		r.Collect(ts.World)
	}

	latest := r.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, ts.CurrentTick(), latest.Tick)
	assert.Equal(t, 1, latest.Levels[SpellFreeze])
	assert.Equal(t, 1, latest.Casts[SpellFreeze])

	wr := r.WindowSummary()
	require.NotNil(t, wr)
	assert.Equal(t, 3, wr.SampleCount, "samples within the last 120 ticks")
	assert.Equal(t, latest.Tick, wr.ToTick)
	assert.LessOrEqual(t, wr.MinHealth, wr.AvgHealth)
	t.Log(wr.Format())
	t.Log(r.FormatLatest())
	assert.Len(t, r.History(), 5)
}

func TestPressureLabel(t *testing.T) {
	assert.Equal(t, "untouched", pressureLabel(playerMaxHealth))
	assert.Equal(t, "pressed", pressureLabel(60))
	assert.Equal(t, "desperate", pressureLabel(10))
	assert.Equal(t, "overrun", pressureLabel(0))
}
