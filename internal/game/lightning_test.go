package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic test randomness
}

func TestLightningSpell_PathEndsOnTarget(t *testing.T) {
	origin, target := Vec2{100, 100}, Vec2{600, 350}
	for seed := int64(1); seed <= 20; seed++ {
		l := NewLightningSpell(origin, target, 1, 0, newTestRNG(seed))
		pts := l.Points()
		require.Len(t, pts, lightningSegments+1)
		assert.Equal(t, origin, pts[0])
		assert.Equal(t, target, pts[len(pts)-1], "seed %d", seed)

		for i := 1; i < lightningSegments; i++ {
			want := Lerp(origin, target, float64(i)/lightningSegments)
			assert.LessOrEqual(t, math.Abs(pts[i].X-want.X), float64(lightningJitter))
			assert.LessOrEqual(t, math.Abs(pts[i].Y-want.Y), float64(lightningJitter))
		}
	}
}

func TestLightningSpell_LevelScaling(t *testing.T) {
	l := NewLightningSpell(Vec2{}, Vec2{100, 0}, 3, 0, newTestRNG(1))
	assert.Equal(t, lightningDamage+2*lightningDamageStep, l.Damage)
	assert.Equal(t, 3, l.ChainCount)

	l0 := NewLightningSpell(Vec2{}, Vec2{100, 0}, 0, 0, newTestRNG(1))
	assert.Equal(t, 1, l0.Level(), "level is at least 1")
	assert.Equal(t, lightningDamage, l0.Damage)
}

func TestLightningSpell_HitsEachEnemyOnce(t *testing.T) {
	l := NewLightningSpell(Vec2{0, 300}, Vec2{500, 300}, 2, 0, newTestRNG(3))
	h := EnemyHandle{Index: 0, Gen: 1}

	assert.True(t, l.CheckHit(h, Vec2{500, 300}))
	assert.False(t, l.CheckHit(h, Vec2{500, 300}), "second check on the same enemy")
	assert.False(t, l.CheckHit(EnemyHandle{Index: 1, Gen: 1}, Vec2{250, 500}), "far from every segment")
	assert.Equal(t, 1, l.HitCount())
}

func TestLightningSpell_ChainCap(t *testing.T) {
	l := NewLightningSpell(Vec2{0, 300}, Vec2{500, 300}, 1, 0, newTestRNG(3))
	require.True(t, l.CanChain())
	l.CheckHit(EnemyHandle{Index: 0, Gen: 1}, Vec2{500, 300})
	assert.False(t, l.CanChain())
}

func TestLightningSpell_ExpiresAfterDuration(t *testing.T) {
	l := NewLightningSpell(Vec2{}, Vec2{100, 0}, 1, 1000, newTestRNG(1))
	l.Update(1000+lightningDurationMs, Rect{W: 800, H: 600})
	assert.False(t, l.Expired())
	l.Update(1000+lightningDurationMs+1, Rect{W: 800, H: 600})
	assert.True(t, l.Expired())
}
