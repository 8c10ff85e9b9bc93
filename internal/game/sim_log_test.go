package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimLog_FilterAndQuery(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "player", "spell", "cast", "lightning lv1", 1)
	sl.Add(2, "base#0", "hit", "lightning", "dmg=5", 5)
	sl.Add(2, "base#0", "kill", "lightning", "base xp=1", 1)
	sl.Add(9, "tank#1", "hit", "fireball", "dmg=8", 8)
	sl.AddVerbose(9, "--", "session", "census", "enemies=1", 1)

	assert.Equal(t, 4, sl.Len(), "verbose entries are dropped")
	assert.Len(t, sl.Filter("hit", ""), 2)
	assert.Len(t, sl.FilterSubject("base#0"), 2)
	assert.Len(t, sl.FilterTickRange(2, 2), 2)
	assert.Equal(t, 1, sl.CountCategory("kill", "lightning"))
	assert.InDelta(t, 13.0, sl.SumCategory("hit", ""), 1e-9)
	assert.True(t, sl.HasEntry("spell", "cast", "lightning"))
	assert.False(t, sl.HasEntry("spell", "cast", "freeze"))

	last, ok := sl.LastOf("hit", "")
	require.True(t, ok)
	assert.Equal(t, "tank#1", last.Subject)

	_, ok = sl.LastOf("level", "up")
	assert.False(t, ok)
}

func TestSimLog_VerboseAndFormat(t *testing.T) {
	sl := NewSimLog(true)
	sl.AddVerbose(60, "--", "session", "census", "enemies=3", 3)
	require.Equal(t, 1, sl.Len())

	line := sl.Entries()[0].String()
	assert.Contains(t, line, "[T=060]")
	assert.Contains(t, line, "census")
	assert.Contains(t, sl.Format(), "enemies=3")
	assert.Empty(t, sl.FormatRange(0, 10))
}
