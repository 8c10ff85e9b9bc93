package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.Log.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

func killedBy(ts *TestSim, source string) int {
	return ts.Log.CountCategory("kill", source)
}

// --- Scenario: typing a combo casts the spell ---

func TestWorld_LightningComboKillsEnemy(t *testing.T) {
	ts := NewTestSim(
		WithUnlocked(SpellLightning, 1),
		WithEnemy(TierBase, 500, 300),
	)
	ts.Aim(500, 300)

	reps := ts.Type(KeyQ, KeyW, KeyE, KeyR)
	dumpLog(t, ts)

	for _, rep := range reps[:3] {
		assert.Empty(t, rep.Casts)
	}
	require.Equal(t, []SpellKind{SpellLightning}, reps[3].Casts)
	assert.Equal(t, 1, reps[3].Kills)
	assert.Equal(t, 1, killedBy(ts, "lightning"))
	assert.Equal(t, 1, ts.World.State.Experience)
	assert.Equal(t, 1, ts.World.State.Casts[SpellLightning])
	assert.Zero(t, ts.World.Enemies.Len())
	assert.Equal(t, int64(lightningCooldownMs), ts.World.Combo.Cooldown(SpellLightning))
}

func TestWorld_StrayKeyBreaksCombo(t *testing.T) {
	ts := NewTestSim(WithUnlocked(SpellLightning, 1))
	reps := ts.Type(KeyQ, KeyW, KeyOther, KeyE, KeyR)
	for _, rep := range reps {
		assert.Empty(t, rep.Casts)
	}
	assert.Zero(t, ts.Log.CountCategory("spell", "cast"))
}

func TestWorld_CooldownBlocksSecondCast(t *testing.T) {
	ts := NewTestSim(WithUnlocked(SpellFireball, 1))
	ts.Aim(700, 300)
	ts.Type(KeyE, KeyR, KeyF)
	reps := ts.Type(KeyE, KeyR, KeyF)
	assert.Empty(t, reps[2].Casts)
	assert.Equal(t, 1, ts.Log.CountCategory("spell", "cast"))

	// Wait out the cooldown and cast again.
	ts.RunTicks(fireballCooldownMs * 60 / 1000)
	reps = ts.Type(KeyE, KeyR, KeyF)
	assert.Equal(t, []SpellKind{SpellFireball}, reps[2].Casts)
}

func TestWorld_CooldownFrozenWhilePaused(t *testing.T) {
	ts := NewTestSim(WithUnlocked(SpellFireball, 1))
	ts.Type(KeyE, KeyR, KeyF)
	before := ts.World.Combo.Cooldown(SpellFireball)
	require.Positive(t, before)

	ts.World.State.GainExperience(xpPerLevel)
	ts.World.applyLevelUps([]LevelUp{{NewLevel: 2}})
	require.True(t, ts.World.Paused())
	ts.RunTicks(120)
	assert.Equal(t, before, ts.World.Combo.Cooldown(SpellFireball))
}

// --- Scenario: fireball picks a single target ---

func TestWorld_FireballKillsOneOfAPair(t *testing.T) {
	ts := NewTestSim(
		WithUnlocked(SpellFireball, 1),
		WithEnemy(TierBase, 600, 300),
		WithEnemy(TierBase, 600, 310),
	)
	ts.Aim(600, 300)
	ts.Type(KeyE, KeyR, KeyF)
	ts.RunTicks(50)
	dumpLog(t, ts)

	assert.Equal(t, 1, killedBy(ts, "fireball"))
	assert.Equal(t, 1, ts.World.Enemies.Len())
	assert.Empty(t, ts.World.Effects, "fireball burst on its first hit")
	require.Len(t, ts.World.Enemies.Handles(), 1)
	assert.Equal(t, 1, ts.World.Enemies.Handles()[0].Index)
}

// --- Scenario: freeze slows then releases ---

func TestWorld_FreezeSlowsThenReleases(t *testing.T) {
	ts := NewTestSim(
		WithUnlocked(SpellFreeze, 1),
		WithEnemy(TierBase, 500, 300),
	)
	ts.Type(KeyI, KeyC, KeyE)

	snap := ts.Snapshot()
	require.Len(t, snap.Enemies, 1)
	assert.InDelta(t, freezeSlow, snap.Enemies[0].Multiplier, 1e-9)
	assert.True(t, ts.Log.HasEntry("freeze", "apply", "slowed=1"))

	ts.RunTicks(200)
	snap = ts.Snapshot()
	require.Len(t, snap.Enemies, 1)
	assert.InDelta(t, 1.0, snap.Enemies[0].Multiplier, 1e-9)
	assert.True(t, ts.Log.HasEntry("freeze", "release", "restored=1"))
	assert.Zero(t, snap.Effects)
}

// --- Scenario: kills level the player up and pause for a choice ---

func TestWorld_LevelUpPausesForChoice(t *testing.T) {
	opts := []SimOption{WithUnlocked(SpellLightning, 5)}
	for _, x := range []float64{450, 480, 510, 540, 570} {
		opts = append(opts, WithEnemy(TierBase, x, 300))
	}
	ts := NewTestSim(opts...)
	ts.Aim(600, 300)

	reps := ts.Type(KeyQ, KeyW, KeyE, KeyR)
	dumpLog(t, ts)
	require.Equal(t, 5, reps[3].Kills)
	require.Len(t, reps[3].LevelUps, 1)
	assert.Equal(t, 2, ts.World.State.Level)
	assert.Equal(t, 1, ts.World.PendingChoices())
	assert.True(t, ts.Log.HasEntry("level", "up", "level 2"))

	tick := ts.CurrentTick()
	rep := ts.Step()
	assert.True(t, rep.Paused)
	assert.Equal(t, tick, ts.CurrentTick(), "no tick runs while a choice is pending")

	require.True(t, ts.World.ChooseSpell(SpellFreeze))
	assert.False(t, ts.World.ChooseSpell(SpellFreeze), "nothing left to choose")
	assert.True(t, ts.World.Combo.Unlocked(SpellFreeze))
	assert.False(t, ts.World.Paused())

	ts.Step()
	assert.Equal(t, tick+1, ts.CurrentTick())
}

func TestWorld_BossSpawnsAtTenthLevel(t *testing.T) {
	ts := NewTestSim()
	ts.World.State.Level = 9
	ts.World.applyLevelUps(ts.World.State.GainExperience(9 * xpPerLevel))

	assert.Equal(t, 1, ts.World.Enemies.Len())
	ts.World.Enemies.Each(func(_ EnemyHandle, e *Enemy) {
		assert.Equal(t, TierBoss, e.Tier)
	})
	assert.True(t, ts.Log.HasEntry("spawn", "boss", ""))
}

// --- Scenario: contact drains health until game over ---

func TestWorld_ContactDamageAndGameOver(t *testing.T) {
	ts := NewTestSim(WithEnemy(TierBase, 400, 300))
	ts.RunTicks(10)
	assert.InDelta(t, playerMaxHealth-10*contactDamage, ts.World.State.PlayerHealth, 1e-6)

	ts.World.State.PlayerHealth = 0.25
	tick := ts.RunUntil(func(s *TestSim) bool { return s.World.State.GameOver }, 10)
	require.NotEqual(t, -1, tick)
	assert.Equal(t, 13, tick)
	assert.True(t, ts.World.Paused())
	assert.True(t, ts.Log.HasEntry("session", "game_over", ""))

	out := DetermineSessionOutcome(ts.World, 100)
	assert.Equal(t, OutcomeDied, out.Outcome)
}

func TestWorld_ContactWithEnemyInsidePlayerBox(t *testing.T) {
	ts := NewTestSim(WithPlayerAt(250, 200), WithEnemy(TierTank, 250, 200))
	require.True(t, ts.World.Player.Bounds().Contains(RectAround(Vec2{250, 200}, 28)))

	rep := ts.Step()
	assert.True(t, rep.Contact, "a tank sitting inside the player box is in contact")
	assert.InDelta(t, playerMaxHealth-contactDamage, ts.World.State.PlayerHealth, 1e-6)
}

// --- Scenario: spawning and auto-fire ---

func TestWorld_SpawnsAtCorners(t *testing.T) {
	ts := NewTestSim(WithSpawning(), WithSeed(5))
	ts.RunTicks(spawnIntervalMs*60/1000 + 5)

	spawns := ts.Log.Filter("spawn", "")
	require.Len(t, spawns, 1)
	assert.Equal(t, TierBase.String(), spawns[0].Key)
	assert.Equal(t, 1, ts.World.Enemies.Len())
}

func TestWorld_AutoFireShootsTowardMouse(t *testing.T) {
	ts := NewTestSim(WithAutoFire(), WithEnemy(TierBase, 400, 0))
	ts.Aim(400, 0)

	tick := ts.RunUntil(func(s *TestSim) bool { return s.World.State.TotalKills() > 0 }, 120)
	require.NotEqual(t, -1, tick)
	assert.Equal(t, 1, killedBy(ts, "projectile"))
	assert.Empty(t, ts.World.Projectiles)
}

func TestWorld_PlayerStaysInField(t *testing.T) {
	ts := NewTestSim()
	ts.Steer(-1, -1)
	ts.RunTicks(200)
	b := ts.World.Player.Bounds()
	assert.InDelta(t, 0, b.X, 1e-9)
	assert.InDelta(t, 0, b.Y, 1e-9)
}

func TestWorld_SameSeedSameSession(t *testing.T) {
	run := func() SimSnapshot {
		ts := NewTestSim(WithSeed(99), WithSpawning(), WithAutoFire(), WithAutoChoice(SpellLightning))
		ts.Aim(0, 0)
		ts.RunTicks(900)
		return ts.Snapshot()
	}
	a, b := run(), run()
	assert.Equal(t, a, b)
	t.Logf("tick=%d level=%d hp=%.1f enemies=%d", a.Tick, a.Level, a.Health, len(a.Enemies))
}
