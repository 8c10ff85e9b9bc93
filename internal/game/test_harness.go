package game

import "fmt"

// TestSim is a headless session harness for tests and the headless reporter.
// It owns a World, a simulated 60 Hz clock and a queue of input, and has no
// Ebiten dependency.
type TestSim struct {
	World *World
	Log   *SimLog
	Perf  *PerfTracker

	cfg   WorldConfig
	mouse Vec2
	move  Vec2
	keys  []Key

	autoChoice    SpellKind
	hasAutoChoice bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // field size, seed, verbose, timers: applied before the world is built
	simOptEntity                      // player, enemies, spells: applied to the built world
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithFieldSize sets the play-field dimensions.
func WithFieldSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Width = w
		ts.cfg.Height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Seed = seed
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Verbose = v
	}}
}

// WithSpawning turns on periodic enemy spawning at the default interval.
func WithSpawning() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.SpawnIntervalMs = spawnIntervalMs
	}}
}

// WithAutoFire turns on the auto-fired projectile at the default interval.
func WithAutoFire() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.FireIntervalMs = fireIntervalMs
	}}
}

// WithPlayerAt moves the player before the first tick.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.Player.Pos = Vec2{X: x, Y: y}
	}}
}

// WithEnemy spawns an enemy of tier centred at (x,y).
func WithEnemy(tier EnemyTier, x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.SpawnEnemy(tier, Vec2{X: x, Y: y})
	}}
}

// WithUnlocked grants spell s at the given upgrade level.
func WithUnlocked(s SpellKind, level int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		for i := 0; i < level; i++ {
			ts.World.GrantSpell(s)
		}
	}}
}

// WithAutoChoice resolves every level-up choice by picking s, so long runs
// do not stall on the menu.
func WithAutoChoice(s SpellKind) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.autoChoice = s
		ts.hasAutoChoice = true
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered
// passes: infrastructure first, then entities on the built world. Spawning
// and auto-fire are off unless asked for, so scenarios only contain what
// they set up.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg: WorldConfig{
			Width:  fieldWidth,
			Height: fieldHeight,
			Seed:   1,
		},
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.World = NewWorld(ts.cfg)
	ts.Log = ts.World.Log
	ts.Perf = NewPerfTracker(fmt.Sprintf("seed-%d", ts.cfg.Seed))
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	ts.mouse = ts.World.Player.Pos
	return ts
}

// tickMs converts a tick count to simulated milliseconds at 60 Hz.
func tickMs(tick int) int64 {
	return int64(tick) * 1000 / 60
}

// Now returns the simulated time of the last tick.
func (ts *TestSim) Now() int64 { return ts.World.Now() }

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int { return ts.World.Ticks() }

// Aim sets the mouse position used by the following ticks.
func (ts *TestSim) Aim(x, y float64) { ts.mouse = Vec2{X: x, Y: y} }

// Steer sets the movement intent used by the following ticks.
func (ts *TestSim) Steer(dx, dy float64) { ts.move = Vec2{X: dx, Y: dy} }

// Press queues keys for the next tick.
func (ts *TestSim) Press(keys ...Key) { ts.keys = append(ts.keys, keys...) }

// Type presses keys one per tick, running a tick for each.
func (ts *TestSim) Type(keys ...Key) []TickReport {
	out := make([]TickReport, 0, len(keys))
	for _, k := range keys {
		ts.Press(k)
		out = append(out, ts.Step())
	}
	return out
}

// Step runs exactly one tick with the queued input.
func (ts *TestSim) Step() TickReport {
	if ts.hasAutoChoice {
		for ts.World.PendingChoices() > 0 {
			ts.World.ChooseSpell(ts.autoChoice)
		}
	}
	in := TickInput{
		Now:   tickMs(ts.World.Ticks() + 1),
		Keys:  ts.keys,
		Mouse: ts.mouse,
		Move:  ts.move,
	}
	ts.keys = nil
	rep := ts.World.Tick(in)
	ts.Perf.Update(ts.World, rep, in)
	return rep
}

// Grade finalizes the performance tracker and grades the session so far.
func (ts *TestSim) Grade() SessionGrade {
	ts.Perf.Finalize(ts.World)
	return GradeSession(ts.Perf)
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step()
		if predicate(ts) {
			return ts.CurrentTick()
		}
	}
	return -1
}

// SimSnapshot is a lightweight copy of the session at a tick.
type SimSnapshot struct {
	Tick    int
	Level   int
	XP      int
	Health  float64
	Enemies []EnemySnapshot
	Effects int
}

// EnemySnapshot is a lightweight copy of one enemy.
type EnemySnapshot struct {
	Handle     EnemyHandle
	Tier       EnemyTier
	Pos        Vec2
	Health     int
	Multiplier float64
}

// Snapshot returns the current state of the session.
func (ts *TestSim) Snapshot() SimSnapshot {
	w := ts.World
	snap := SimSnapshot{
		Tick:    w.Ticks(),
		Level:   w.State.Level,
		XP:      w.State.Experience,
		Health:  w.State.PlayerHealth,
		Effects: len(w.Effects),
	}
	w.Enemies.Each(func(h EnemyHandle, e *Enemy) {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			Handle:     h,
			Tier:       e.Tier,
			Pos:        e.Pos,
			Health:     e.Health,
			Multiplier: e.SpeedMultiplier,
		})
	})
	return snap
}
