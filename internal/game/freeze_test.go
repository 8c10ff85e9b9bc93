package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreezeSpell_LevelScaling(t *testing.T) {
	f1 := NewFreezeSpell(Vec2{}, 1, 0)
	assert.InDelta(t, freezeRadius, f1.Radius, 1e-9)
	assert.Equal(t, int64(freezeDurationMs), f1.DurationMs)
	assert.InDelta(t, freezeSlow, f1.Slow, 1e-9)

	f2 := NewFreezeSpell(Vec2{}, 2, 0)
	assert.InDelta(t, 200.0, f2.Radius, 1e-9)
	assert.Equal(t, int64(4000), f2.DurationMs)
	assert.InDelta(t, 0.25, f2.Slow, 1e-9)

	f9 := NewFreezeSpell(Vec2{}, 9, 0)
	assert.InDelta(t, freezeSlowFloor, f9.Slow, 1e-9, "slow never drops below the floor")
}

func TestFreezeSpell_BoundaryIsInside(t *testing.T) {
	f := NewFreezeSpell(Vec2{0, 0}, 1, 0)
	assert.True(t, f.InRange(Vec2{freezeRadius, 0}))
	assert.False(t, f.InRange(Vec2{freezeRadius + 0.01, 0}))
}

func TestFreezeSpell_ApplyAndRelease(t *testing.T) {
	store := NewEnemyStore()
	h := store.Spawn(NewEnemy(TierBase, Vec2{10, 0}))
	e, _ := store.Get(h)

	f := NewFreezeSpell(Vec2{}, 1, 0)
	assert.True(t, f.Apply(h, e))
	assert.False(t, f.Apply(h, e), "second touch is not new")
	assert.InDelta(t, freezeSlow, e.SpeedMultiplier, 1e-9)
	assert.True(t, f.Affects(h))

	assert.Equal(t, 1, f.Release(store))
	assert.InDelta(t, 1.0, e.SpeedMultiplier, 1e-9)
	assert.False(t, f.Affects(h))
}

func TestFreezeSpell_ReleaseLeavesOtherSlowAlone(t *testing.T) {
	store := NewEnemyStore()
	h := store.Spawn(NewEnemy(TierBase, Vec2{10, 0}))
	e, _ := store.Get(h)

	weak := NewFreezeSpell(Vec2{}, 1, 0)
	weak.Apply(h, e)
	e.SpeedMultiplier = 0.2 // a stronger field took over

	assert.Equal(t, 0, weak.Release(store))
	assert.InDelta(t, 0.2, e.SpeedMultiplier, 1e-9)
}

// stepEffects advances every effect to now and resolves them.
func stepEffects(effects []SpellEffect, store *EnemyStore, gs *GameState, now int64) ([]SpellEffect, ResolveResult) {
	field := Rect{W: 800, H: 600}
	for _, fx := range effects {
		fx.Update(now, field)
	}
	return ResolveEffects(effects, store, nil, gs)
}

func TestResolveEffects_OverlappingFreezeFields(t *testing.T) {
	store := NewEnemyStore()
	gs := NewGameState()
	h := store.Spawn(NewEnemy(TierTank, Vec2{100, 100}))
	e, _ := store.Get(h)

	a := NewFreezeSpell(Vec2{50, 100}, 1, 0)
	b := NewFreezeSpell(Vec2{150, 100}, 1, 1000)
	effects := []SpellEffect{a, b}

	effects, res := stepEffects(effects, store, gs, 1000)
	assert.Equal(t, 2, res.Slowed, "each field records its own first touch")
	assert.InDelta(t, freezeSlow, e.SpeedMultiplier, 1e-9)

	// a expires; the enemy still stands in b.
	effects, res = stepEffects(effects, store, gs, 3001)
	require.Len(t, effects, 1)
	assert.Equal(t, 1, res.Released)
	assert.InDelta(t, freezeSlow, e.SpeedMultiplier, 1e-9, "still held by the second field")

	// b expires; nothing holds the enemy any more.
	effects, res = stepEffects(effects, store, gs, 4001)
	assert.Empty(t, effects)
	assert.Equal(t, 1, res.Restored)
	assert.InDelta(t, 1.0, e.SpeedMultiplier, 1e-9)
}

func TestResolveEffects_StrongestSlowWins(t *testing.T) {
	store := NewEnemyStore()
	gs := NewGameState()
	h := store.Spawn(NewEnemy(TierTank, Vec2{100, 100}))
	e, _ := store.Get(h)

	weak := NewFreezeSpell(Vec2{100, 100}, 1, 0)
	strong := NewFreezeSpell(Vec2{100, 100}, 3, 0)
	stepEffects([]SpellEffect{weak, strong}, store, gs, 10)

	assert.InDelta(t, strong.Slow, e.SpeedMultiplier, 1e-9)
}

func TestResolveEffects_LeavingFieldRestoresSpeed(t *testing.T) {
	store := NewEnemyStore()
	gs := NewGameState()
	h := store.Spawn(NewEnemy(TierTank, Vec2{100, 100}))
	e, _ := store.Get(h)

	f := NewFreezeSpell(Vec2{100, 100}, 1, 0)
	effects, _ := stepEffects([]SpellEffect{f}, store, gs, 10)
	require.InDelta(t, freezeSlow, e.SpeedMultiplier, 1e-9)

	e.Pos = Vec2{500, 500}
	_, res := stepEffects(effects, store, gs, 20)
	assert.Equal(t, 1, res.Restored)
	assert.InDelta(t, 1.0, e.SpeedMultiplier, 1e-9)
}
