package game

import (
	"fmt"
	"math/rand"
)

// WorldConfig holds the knobs a session is created with.
type WorldConfig struct {
	Width, Height   float64
	Seed            int64
	SpawnIntervalMs int64 // base enemy spawn period; 0 disables spawning
	FireIntervalMs  int64 // auto-fire period; 0 disables auto-fire
	Verbose         bool  // record per-tick SimLog entries
}

// DefaultWorldConfig returns the settings the windowed game runs with.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Width:           fieldWidth,
		Height:          fieldHeight,
		Seed:            1,
		SpawnIntervalMs: spawnIntervalMs,
		FireIntervalMs:  fireIntervalMs,
	}
}

// TickInput is everything the outside world feeds into one tick.
type TickInput struct {
	Now   int64 // monotonic milliseconds, non-decreasing
	Keys  []Key // keys pressed since the previous tick, in order
	Mouse Vec2  // aim point in field coordinates
	Move  Vec2  // movement intent, components in [-1, 1]
}

// TickReport lists what happened in one tick that presentation cares about.
type TickReport struct {
	Casts     []SpellKind
	LevelUps  []LevelUp
	SpellHits int
	Kills     int
	Contact   bool // an enemy touched the player
	Paused    bool
}

// World is one play session: the player, the enemy arena, live spell
// effects and projectiles, the combo recognizer and the progression state.
type World struct {
	cfg   WorldConfig
	Field Rect

	Player      Player
	Enemies     *EnemyStore
	Effects     []SpellEffect
	Projectiles []Projectile
	Combo       *ComboRecognizer
	State       *GameState

	Log      *SimLog
	Combat   *CombatLog
	Floaters FloatingTexts

	space *CollisionSpace
	rng   *rand.Rand

	tick      int
	now       int64
	lastSpawn int64
	lastFire  int64

	pendingChoices int
}

// NewWorld creates a session whose clock starts at 0 ms.
func NewWorld(cfg WorldConfig) *World {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = fieldWidth, fieldHeight
	}
	field := Rect{W: cfg.Width, H: cfg.Height}
	return &World{
		cfg:     cfg,
		Field:   field,
		Player:  NewPlayer(field.Center()),
		Enemies: NewEnemyStore(),
		Combo:   NewComboRecognizer(0),
		State:   NewGameState(),
		Log:     NewSimLog(cfg.Verbose),
		Combat:  NewCombatLog(),
		space:   NewCollisionSpace(field),
		rng:     rand.New(rand.NewSource(cfg.Seed)), // #nosec G404 -- gameplay randomness, not security
	}
}

// Ticks returns the number of ticks simulated so far.
func (w *World) Ticks() int { return w.tick }

// Now returns the time of the last simulated tick.
func (w *World) Now() int64 { return w.now }

// Seed returns the RNG seed the session was created with.
func (w *World) Seed() int64 { return w.cfg.Seed }

// PendingChoices returns how many level-up spell choices are waiting.
func (w *World) PendingChoices() int { return w.pendingChoices }

// Paused reports whether the simulation is held for a spell choice or has
// ended.
func (w *World) Paused() bool { return w.pendingChoices > 0 || w.State.GameOver }

// enemyLabel names an enemy for the logs.
func enemyLabel(tier EnemyTier, h EnemyHandle) string {
	return fmt.Sprintf("%s#%d", tier, h.Index)
}

// SpawnEnemy places an enemy of the given tier at pos.
func (w *World) SpawnEnemy(tier EnemyTier, pos Vec2) EnemyHandle {
	h := w.Enemies.Spawn(NewEnemy(tier, pos))
	w.Log.Add(w.tick, enemyLabel(tier, h), "spawn", tier.String(),
		fmt.Sprintf("at (%.0f,%.0f)", pos.X, pos.Y), float64(h.Index))
	return h
}

// ChooseSpell resolves one pending level-up choice by unlocking or upgrading
// s. It reports false when no choice is pending.
func (w *World) ChooseSpell(s SpellKind) bool {
	if w.pendingChoices == 0 || s < 0 || s >= spellKindCount {
		return false
	}
	w.pendingChoices--
	w.Combo.Unlock(s)
	lvl := w.Combo.Level(s)
	w.Log.Add(w.tick, "player", "level", "choose", fmt.Sprintf("%s lv%d", s, lvl), float64(lvl))
	w.Combat.Add(w.tick, "player", toneForSpell(s), fmt.Sprintf("learned %s lv%d", s, lvl))
	return true
}

// GrantSpell unlocks or upgrades s without a level-up, for session setup.
func (w *World) GrantSpell(s SpellKind) {
	w.Combo.Unlock(s)
}

// spawnPeriod shortens the spawn interval as the player levels, down to a
// floor.
func (w *World) spawnPeriod() int64 {
	p := w.cfg.SpawnIntervalMs - spawnRampMs*int64(w.State.Level-1)
	floor := int64(minSpawnMs)
	if w.cfg.SpawnIntervalMs < floor {
		floor = w.cfg.SpawnIntervalMs
	}
	if p < floor {
		p = floor
	}
	return p
}

func (w *World) randomCorner() Vec2 {
	x := 0.0
	if w.rng.Intn(2) == 1 {
		x = w.Field.W
	}
	y := 0.0
	if w.rng.Intn(2) == 1 {
		y = w.Field.H
	}
	return Vec2{X: w.Field.X + x, Y: w.Field.Y + y}
}

func (w *World) rollTier() EnemyTier {
	if w.State.Level >= tankMinLevel && w.rng.Float64() < tankSpawnChance {
		return TierTank
	}
	return TierBase
}

// Tick simulates one tick. Within a tick the order is fixed: key recording
// and combo evaluation, movement and spawning, effect updates, effect
// resolution, then projectile and contact collision.
func (w *World) Tick(in TickInput) TickReport {
	var rep TickReport
	if w.Paused() {
		rep.Paused = true
		return rep
	}
	if in.Now > w.now {
		w.now = in.Now
	}
	now := w.now
	w.tick++

	w.Combo.Advance(now)
	for _, k := range in.Keys {
		w.Combo.RecordKey(k, now)
		for _, s := range AllSpells {
			if w.Combo.TryTrigger(s, now) {
				w.cast(s, in.Mouse)
				rep.Casts = append(rep.Casts, s)
				break
			}
		}
	}

	w.Player.Move(in.Move, w.Field)
	w.spawnAndFire(in.Mouse)
	w.Enemies.Each(func(_ EnemyHandle, e *Enemy) {
		e.StepToward(w.Player.Pos)
	})

	for _, fx := range w.Effects {
		fx.Update(now, w.Field)
	}
	var res ResolveResult
	w.Effects, res = ResolveEffects(w.Effects, w.Enemies, w.space, w.State)
	w.recordResolution(res)
	rep.SpellHits = len(res.Hits)
	rep.Kills += res.Kills
	ups := res.LevelUps

	kills, projUps := w.resolveProjectiles()
	rep.Kills += kills
	ups = append(ups, projUps...)

	rep.Contact = w.resolveContact()
	w.applyLevelUps(ups)
	rep.LevelUps = ups

	w.Floaters.Update()
	if w.tick%60 == 0 {
		w.Log.AddVerbose(w.tick, "--", "session", "census",
			fmt.Sprintf("enemies=%d effects=%d hp=%.1f", w.Enemies.Len(), len(w.Effects), w.State.PlayerHealth),
			float64(w.Enemies.Len()))
	}
	return rep
}

// cast spawns the effect for s using the recognizer's current level.
func (w *World) cast(s SpellKind, mouse Vec2) {
	lvl := w.Combo.Level(s)
	var fx SpellEffect
	switch s {
	case SpellLightning:
		fx = NewLightningSpell(w.Player.Pos, mouse, lvl, w.now, w.rng)
	case SpellFireball:
		fx = NewFireballSpell(w.Player.Pos, mouse.Sub(w.Player.Pos), lvl, w.now)
	case SpellFreeze:
		fx = NewFreezeSpell(w.Player.Pos, lvl, w.now)
	default:
		return
	}
	w.Effects = append(w.Effects, fx)
	w.State.Casts[s]++
	w.Log.Add(w.tick, "player", "spell", "cast", fmt.Sprintf("%s lv%d", s, lvl), float64(lvl))
	w.Combat.Add(w.tick, "player", toneForSpell(s), fmt.Sprintf("cast %s lv%d", s, lvl))
	w.Floaters.Spawn(w.Player.Pos, s.Info().Name, "", toneForSpell(s))
}

func (w *World) spawnAndFire(mouse Vec2) {
	if w.cfg.SpawnIntervalMs > 0 && w.now-w.lastSpawn >= w.spawnPeriod() {
		w.lastSpawn = w.now
		w.SpawnEnemy(w.rollTier(), w.randomCorner())
	}
	if w.cfg.FireIntervalMs > 0 && w.now-w.lastFire >= w.cfg.FireIntervalMs {
		w.lastFire = w.now
		w.Projectiles = append(w.Projectiles, NewProjectile(w.Player.Pos, mouse))
		w.Log.AddVerbose(w.tick, "player", "fire", "projectile",
			fmt.Sprintf("toward (%.0f,%.0f)", mouse.X, mouse.Y), 0)
	}
}

func (w *World) recordResolution(res ResolveResult) {
	for _, h := range res.Hits {
		label := enemyLabel(h.Tier, h.Enemy)
		tone := toneForSpell(h.Source)
		w.Log.Add(w.tick, label, "hit", h.Source.String(), fmt.Sprintf("dmg=%d", h.Damage), float64(h.Damage))
		w.Floaters.Spawn(h.Pos, fmt.Sprintf("-%d", h.Damage), "", tone)
		if h.Killed {
			w.Log.Add(w.tick, label, "kill", h.Source.String(), fmt.Sprintf("%s xp=%d", h.Tier, h.XP), float64(h.XP))
			w.Combat.Add(w.tick, label, tone, fmt.Sprintf("killed by %s +%dxp", h.Source, h.XP))
		}
	}
	if res.Slowed > 0 {
		w.Log.Add(w.tick, "--", "freeze", "apply", fmt.Sprintf("slowed=%d", res.Slowed), float64(res.Slowed))
	}
	if res.Released > 0 || res.Restored > 0 {
		w.Log.Add(w.tick, "--", "freeze", "release",
			fmt.Sprintf("fields=%d restored=%d", res.Released, res.Restored), float64(res.Restored))
	}
}

// resolveProjectiles moves every projectile and applies its first hit.
func (w *World) resolveProjectiles() (int, []LevelUp) {
	if len(w.Projectiles) == 0 {
		return 0, nil
	}
	w.space.Rebuild(w.Enemies)
	kills := 0
	var ups []LevelUp
	kept := w.Projectiles[:0]
	for _, pr := range w.Projectiles {
		pr.Step(w.Field)
		if pr.dead {
			continue
		}
		for _, h := range w.space.Overlapping(pr.Bounds()) {
			e, ok := w.Enemies.Get(h)
			if !ok {
				continue
			}
			pr.dead = true
			label := enemyLabel(e.Tier, h)
			w.Log.Add(w.tick, label, "hit", "projectile", fmt.Sprintf("dmg=%d", projectileDamage), projectileDamage)
			if e.ApplyDamage(projectileDamage) {
				kills++
				w.Log.Add(w.tick, label, "kill", "projectile", fmt.Sprintf("%s xp=%d", e.Tier, e.XPReward), float64(e.XPReward))
				w.Combat.Add(w.tick, label, ToneInfo, fmt.Sprintf("shot down +%dxp", e.XPReward))
				ups = append(ups, w.State.RecordKill(e.Tier, e.XPReward)...)
				w.Enemies.Remove(h)
			}
			break
		}
		if !pr.dead {
			kept = append(kept, pr)
		}
	}
	w.Projectiles = kept
	return kills, ups
}

// resolveContact drains player health while any enemy touches the player
// and reports whether one did.
func (w *World) resolveContact() bool {
	if w.Enemies.Len() == 0 {
		return false
	}
	w.space.Rebuild(w.Enemies)
	if len(w.space.Overlapping(w.Player.Bounds())) == 0 {
		return false
	}
	w.State.Hurt(contactDamage)
	w.Log.AddVerbose(w.tick, "player", "player", "contact", fmt.Sprintf("hp=%.1f", w.State.PlayerHealth), w.State.PlayerHealth)
	if w.State.GameOver {
		w.Log.Add(w.tick, "player", "session", "game_over",
			fmt.Sprintf("level=%d kills=%d", w.State.Level, w.State.TotalKills()), float64(w.State.Level))
		w.Combat.Add(w.tick, "player", ToneDanger, "GAME OVER")
	}
	return true
}

func (w *World) applyLevelUps(ups []LevelUp) {
	for _, up := range ups {
		w.pendingChoices++
		w.Log.Add(w.tick, "player", "level", "up", fmt.Sprintf("level %d", up.NewLevel), float64(up.NewLevel))
		w.Combat.Add(w.tick, "player", ToneLevel, fmt.Sprintf("LEVEL %d", up.NewLevel))
		w.Floaters.Spawn(w.Player.Pos, "LEVEL UP", fmt.Sprintf("level %d", up.NewLevel), ToneLevel)
		if up.SpawnBoss {
			h := w.SpawnEnemy(TierBoss, w.randomCorner())
			w.Combat.Add(w.tick, enemyLabel(TierBoss, h), ToneDanger, "a boss appears")
		}
	}
}
