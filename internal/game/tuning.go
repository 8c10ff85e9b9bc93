package game

// --- Field and player ---

const (
	fieldWidth  = 800
	fieldHeight = 600

	playerSize      = 30.0
	playerSpeed     = 5.0   // px per tick
	playerMaxHealth = 100.0 // starting and maximum health
	contactDamage   = 0.1   // health lost per tick while touching an enemy
	levelUpHeal     = 20.0  // health restored on every level-up

	projectileSize   = 10.0
	projectileSpeed  = 7.0 // px per tick
	projectileDamage = 1

	fireIntervalMs  = 1000 // auto-fire period
	spawnIntervalMs = 2000 // base enemy spawn period
	minSpawnMs      = 600  // spawn period floor at high levels
	spawnRampMs     = 80   // spawn period reduction per player level

	xpPerLevel      = 5  // threshold is level * xpPerLevel
	bossLevelPeriod = 10 // a boss spawns every Nth level
	tankMinLevel    = 3  // tanks join the spawn pool from this level
	tankSpawnChance = 0.25
)

// --- Combo input ---

const (
	comboTimeoutMs = 1000 // max gap between two keys of one combo
	comboHistory   = 4    // keys remembered by the recognizer
)

// --- Spells ---

const (
	lightningDamage     = 5
	lightningHitRadius  = 30.0 // px from any bolt segment
	lightningCooldownMs = 5000
	lightningDurationMs = 500
	lightningSegments   = 5
	lightningJitter     = 20 // max lateral offset of interior waypoints, px
	lightningDamageStep = 3

	fireballDamage     = 8
	fireballSpeed      = 5.0 // px per tick
	fireballCooldownMs = 3000
	fireballLifetimeMs = 3000
	fireballBaseSize   = 40.0
	fireballSizeStep   = 10.0
	fireballDamageStep = 4
	fireballSpeedStep  = 0.5
	fireballLifeStepMs = 1000

	freezeRadius       = 150.0
	freezeDurationMs   = 3000
	freezeCooldownMs   = 8000
	freezeSlow         = 0.3
	freezeSlowStep     = 0.05
	freezeSlowFloor    = 0.1
	freezeRadiusStep   = 50.0
	freezeDurationStep = 1000
)
