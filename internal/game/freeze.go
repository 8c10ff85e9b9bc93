package game

import "math"

// FreezeSpell is a stationary circular field that slows every enemy inside
// it for its duration.
type FreezeSpell struct {
	effectBase
	Center     Vec2
	Radius     float64
	DurationMs int64
	Slow       float64 // speed multiplier applied inside the field

	affected map[EnemyHandle]float64 // handle -> multiplier before this field
}

// NewFreezeSpell opens a freeze field centred on center.
func NewFreezeSpell(center Vec2, level int, now int64) *FreezeSpell {
	f := &FreezeSpell{
		effectBase: newEffectBase(now, level),
		Center:     center,
		affected:   make(map[EnemyHandle]float64),
	}
	step := f.level - 1
	f.Radius = freezeRadius + freezeRadiusStep*float64(step)
	f.DurationMs = freezeDurationMs + freezeDurationStep*int64(step)
	f.Slow = math.Max(freezeSlowFloor, freezeSlow-freezeSlowStep*float64(step))
	return f
}

func (f *FreezeSpell) Kind() SpellKind { return SpellFreeze }

// InRange reports whether p lies inside the field. The boundary counts.
func (f *FreezeSpell) InRange(p Vec2) bool {
	return Dist(p, f.Center) <= f.Radius
}

// Apply slows e and remembers its previous multiplier the first time this
// field touches it. A stronger slow already on the enemy is kept. It reports
// whether e was newly affected.
func (f *FreezeSpell) Apply(h EnemyHandle, e *Enemy) bool {
	_, seen := f.affected[h]
	if !seen {
		f.affected[h] = e.SpeedMultiplier
	}
	if e.SpeedMultiplier > f.Slow {
		e.SpeedMultiplier = f.Slow
	}
	return !seen
}

// Affects reports whether the field has slowed the enemy behind h.
func (f *FreezeSpell) Affects(h EnemyHandle) bool {
	_, ok := f.affected[h]
	return ok
}

// Update expires the field once its duration has passed.
func (f *FreezeSpell) Update(now int64, _ Rect) {
	if now-f.created > f.DurationMs {
		f.expired = true
	}
}

// Release restores the multiplier of every still-living enemy this field is
// responsible for, i.e. whose multiplier is still this field's slow. It
// returns how many enemies were restored. Enemies that are also inside
// another live field are re-slowed by the next resolution pass.
func (f *FreezeSpell) Release(store *EnemyStore) int {
	n := 0
	for h, orig := range f.affected {
		e, ok := store.Get(h)
		if !ok {
			continue
		}
		if e.SpeedMultiplier == f.Slow {
			e.SpeedMultiplier = orig
			n++
		}
	}
	clear(f.affected)
	return n
}

// Pulse returns the presentation-only radius scale at time now.
func (f *FreezeSpell) Pulse(now int64) float64 {
	elapsed := float64(now - f.created)
	return math.Abs(math.Sin(elapsed/200))*0.3 + 0.7
}
