package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombatLog_RingBufferKeepsNewest(t *testing.T) {
	cl := NewCombatLog()
	for i := 0; i < logMaxEntries+5; i++ {
		cl.Add(i, "player", ToneInfo, fmt.Sprintf("event %d", i))
	}
	require.Equal(t, logMaxEntries, cl.Len())

	recent := cl.Recent()
	assert.Equal(t, 5, recent[0].Tick, "oldest five were overwritten")
	assert.Equal(t, logMaxEntries+4, recent[len(recent)-1].Tick)
}

func TestToneForSpell(t *testing.T) {
	assert.Equal(t, ToneLightning, toneForSpell(SpellLightning))
	assert.Equal(t, ToneFireball, toneForSpell(SpellFireball))
	assert.Equal(t, ToneFreeze, toneForSpell(SpellFreeze))
	assert.Equal(t, ToneInfo, toneForSpell(spellKindCount))
	assert.NotEqual(t, ToneDanger.color(), ToneLevel.color())
}

func TestFloatingTexts_StackAndExpire(t *testing.T) {
	var ft FloatingTexts
	ft.Spawn(Vec2{100, 100}, "-5", "", ToneLightning)
	ft.Spawn(Vec2{104, 100}, "-5", "", ToneLightning)
	require.Equal(t, 2, ft.Len())
	assert.Less(t, ft.Items()[1].yOff, ft.Items()[0].yOff, "nearby labels stack upward")

	for i := 0; i < floatLifetime; i++ {
		ft.Update()
	}
	assert.Zero(t, ft.Len())
}
