package game

// FireballSpell travels in a straight line and bursts on the first enemy it
// touches.
type FireballSpell struct {
	effectBase
	Pos        Vec2 // centre
	Dir        Vec2 // unit vector
	Speed      float64
	Damage     int
	Size       float64
	LifetimeMs int64
}

// NewFireballSpell launches a fireball from start toward dir. dir is
// normalized here; a zero vector leaves the fireball stationary until its
// lifetime runs out.
func NewFireballSpell(start, dir Vec2, level int, now int64) *FireballSpell {
	f := &FireballSpell{
		effectBase: newEffectBase(now, level),
		Pos:        start,
		Dir:        Normalize(dir),
	}
	step := float64(f.level - 1)
	f.Speed = fireballSpeed + fireballSpeedStep*step
	f.Damage = fireballDamage + fireballDamageStep*(f.level-1)
	f.Size = fireballBaseSize + fireballSizeStep*step
	f.LifetimeMs = fireballLifetimeMs + fireballLifeStepMs*int64(f.level-1)
	return f
}

func (f *FireballSpell) Kind() SpellKind { return SpellFireball }

// Bounds returns the fireball's collision box.
func (f *FireballSpell) Bounds() Rect {
	return RectAround(f.Pos, f.Size)
}

// Radius is the drawn radius, which grows with level.
func (f *FireballSpell) Radius() float64 { return f.Size / 2 }

// Update moves the fireball one tick. It expires when it no longer overlaps
// the field or outlives its lifetime.
func (f *FireballSpell) Update(now int64, field Rect) {
	if f.expired {
		return
	}
	f.Pos = f.Pos.Add(f.Dir.Scale(f.Speed))
	if !f.Bounds().Overlaps(field) || now-f.created > f.LifetimeMs {
		f.expired = true
	}
}

// Burst destroys the fireball after a hit.
func (f *FireballSpell) Burst() { f.expired = true }
