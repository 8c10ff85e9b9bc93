package game

import "math/rand"

// LightningSpell is a short-lived jagged bolt from the caster to the aim
// point. Every enemy close enough to any of its segments is struck once.
type LightningSpell struct {
	effectBase
	Origin     Vec2
	Target     Vec2
	Damage     int
	ChainCount int // distinct enemies one cast may strike

	// points holds lightningSegments+1 waypoints; points[0] is Origin and
	// the last one is exactly Target.
	points [lightningSegments + 1]Vec2
	hit    map[EnemyHandle]struct{}
}

// NewLightningSpell casts a bolt at time now. rng provides the lateral jitter
// of the interior waypoints.
func NewLightningSpell(origin, target Vec2, level int, now int64, rng *rand.Rand) *LightningSpell {
	l := &LightningSpell{
		effectBase: newEffectBase(now, level),
		Origin:     origin,
		Target:     target,
		hit:        make(map[EnemyHandle]struct{}),
	}
	l.Damage = lightningDamage + lightningDamageStep*(l.level-1)
	l.ChainCount = l.level
	l.points = lightningPath(origin, target, rng)
	return l
}

// lightningPath splits origin->target into equal-progress steps and jitters
// each interior waypoint by an integer offset in [-jitter, jitter] on both
// axes. The final waypoint is pinned to target.
func lightningPath(origin, target Vec2, rng *rand.Rand) [lightningSegments + 1]Vec2 {
	var pts [lightningSegments + 1]Vec2
	pts[0] = origin
	for i := 1; i <= lightningSegments; i++ {
		progress := float64(i) / lightningSegments
		p := Lerp(origin, target, progress)
		jx := rng.Intn(2*lightningJitter+1) - lightningJitter
		jy := rng.Intn(2*lightningJitter+1) - lightningJitter
		p.X += float64(jx)
		p.Y += float64(jy)
		pts[i] = p
	}
	pts[lightningSegments] = target
	return pts
}

func (l *LightningSpell) Kind() SpellKind { return SpellLightning }

// Update expires the bolt once its fixed duration has passed.
func (l *LightningSpell) Update(now int64, _ Rect) {
	if now-l.created > lightningDurationMs {
		l.expired = true
	}
}

// Points returns the bolt waypoints, origin first.
func (l *LightningSpell) Points() []Vec2 {
	out := make([]Vec2, len(l.points))
	copy(out, l.points[:])
	return out
}

// CheckHit reports whether the enemy at pos is struck by this bolt for the
// first time. A struck enemy is remembered so later checks return false.
func (l *LightningSpell) CheckHit(h EnemyHandle, pos Vec2) bool {
	if _, done := l.hit[h]; done {
		return false
	}
	for i := 0; i < lightningSegments; i++ {
		if PointSegmentDistance(pos, l.points[i], l.points[i+1]) < lightningHitRadius {
			l.hit[h] = struct{}{}
			return true
		}
	}
	return false
}

// HitCount returns how many distinct enemies this bolt has struck.
func (l *LightningSpell) HitCount() int { return len(l.hit) }

// CanChain reports whether the bolt may still strike another enemy.
func (l *LightningSpell) CanChain() bool { return len(l.hit) < l.ChainCount }
