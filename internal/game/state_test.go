package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameState_FiveBaseKillsReachLevelTwo(t *testing.T) {
	gs := NewGameState()
	gs.PlayerHealth = 50

	var ups []LevelUp
	for i := 0; i < 5; i++ {
		ups = append(ups, gs.RecordKill(TierBase, tierTable[TierBase].xpReward)...)
	}
	require.Len(t, ups, 1)
	assert.Equal(t, LevelUp{NewLevel: 2}, ups[0])
	assert.Equal(t, 2, gs.Level)
	assert.Zero(t, gs.Experience)
	assert.InDelta(t, 50+levelUpHeal, gs.PlayerHealth, 1e-9)
	assert.Equal(t, 5, gs.Kills[TierBase])
	assert.Equal(t, 10, gs.XPToNext())
}

func TestGameState_ExcessExperienceIsDiscarded(t *testing.T) {
	gs := NewGameState()
	ups := gs.GainExperience(100)
	assert.Len(t, ups, 1)
	assert.Equal(t, 2, gs.Level)
	assert.Zero(t, gs.Experience)
}

func TestGameState_BossEveryTenthLevel(t *testing.T) {
	gs := NewGameState()
	gs.Level = 9
	ups := gs.GainExperience(9 * xpPerLevel)
	require.Len(t, ups, 1)
	assert.True(t, ups[0].SpawnBoss)
	assert.Equal(t, 10, ups[0].NewLevel)

	ups = gs.GainExperience(10 * xpPerLevel)
	require.Len(t, ups, 1)
	assert.False(t, ups[0].SpawnBoss)
}

func TestGameState_HealthBounds(t *testing.T) {
	gs := NewGameState()
	gs.Heal(50)
	assert.InDelta(t, playerMaxHealth, gs.PlayerHealth, 1e-9)

	gs.Hurt(playerMaxHealth + 5)
	assert.Zero(t, gs.PlayerHealth)
	assert.True(t, gs.GameOver)
}
