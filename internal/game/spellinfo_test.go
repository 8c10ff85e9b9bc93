package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpellInfo_ComboText(t *testing.T) {
	assert.Equal(t, "Q-W-E-R", SpellLightning.Info().Combo)
	assert.Equal(t, "E-R-F", SpellFireball.Info().Combo)
	assert.Equal(t, "I-C-E", SpellFreeze.Info().Combo)
	assert.Equal(t, "unknown", spellKindCount.Info().Name)
}

func TestSpellInfo_MenuLine(t *testing.T) {
	line := SpellLightning.Info().MenuLine(0)
	t.Log(line)
	assert.Contains(t, line, "Lightning Strike [Q-W-E-R] NEW")
	assert.Contains(t, line, "dmg 5")
	assert.Contains(t, line, "cd 5s")

	line = SpellFreeze.Info().MenuLine(2)
	t.Log(line)
	assert.Contains(t, line, "lv2->3")
	assert.Contains(t, line, "3s")
	assert.NotContains(t, line, "dmg")
}

func TestSpellKind_PatternIsACopy(t *testing.T) {
	p := SpellFireball.Pattern()
	p[0] = KeyX
	assert.Equal(t, []Key{KeyE, KeyR, KeyF}, SpellFireball.Pattern())
	assert.Nil(t, spellKindCount.Pattern())
	assert.Zero(t, spellKindCount.BaseCooldown())
}
