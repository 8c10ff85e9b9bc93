package game

// SpellEffect is a live, time-bounded entity spawned by a cast. Effects are
// owned by the world's effect list and dropped once Expired reports true.
type SpellEffect interface {
	Kind() SpellKind
	// Level is the upgrade level copied from the recognizer at spawn time.
	Level() int
	// Update advances the effect by one tick at time now (ms). field is the
	// play-field rectangle, used by effects that can leave it.
	Update(now int64, field Rect)
	Expired() bool
}

// releaser is implemented by effects that hold temporary changes on enemies
// and must undo them when they expire.
type releaser interface {
	Release(store *EnemyStore) int
}

// effectBase carries the fields every spell effect shares.
type effectBase struct {
	created int64
	level   int
	expired bool
}

func newEffectBase(now int64, level int) effectBase {
	if level < 1 {
		level = 1
	}
	return effectBase{created: now, level: level}
}

func (b *effectBase) Level() int    { return b.level }
func (b *effectBase) Expired() bool { return b.expired }

// Age returns milliseconds since the effect was created.
func (b *effectBase) Age(now int64) int64 { return now - b.created }
