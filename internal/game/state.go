package game

// GameState is the per-session progression: experience, level and player
// health. It is threaded through the tick explicitly so tests can build one
// without any global reset.
type GameState struct {
	Level        int
	Experience   int
	PlayerHealth float64
	Kills        [tierCount]int
	Casts        [spellKindCount]int
	GameOver     bool
}

// NewGameState returns the starting state: level 1, no experience, full health.
func NewGameState() *GameState {
	return &GameState{
		Level:        1,
		PlayerHealth: playerMaxHealth,
	}
}

// LevelUp describes one level gained by GainExperience.
type LevelUp struct {
	NewLevel  int
	SpawnBoss bool
}

// GainExperience adds xp and applies every level-up it causes. Crossing the
// threshold of level*xpPerLevel raises the level, resets experience to zero
// and heals the player; every bossLevelPeriod-th level asks for a boss.
func (gs *GameState) GainExperience(xp int) []LevelUp {
	if xp <= 0 {
		return nil
	}
	gs.Experience += xp
	var ups []LevelUp
	for gs.Experience >= gs.Level*xpPerLevel {
		gs.Level++
		gs.Experience = 0
		gs.Heal(levelUpHeal)
		ups = append(ups, LevelUp{
			NewLevel:  gs.Level,
			SpawnBoss: gs.Level%bossLevelPeriod == 0,
		})
	}
	return ups
}

// RecordKill counts a destroyed enemy and awards its experience.
func (gs *GameState) RecordKill(tier EnemyTier, xp int) []LevelUp {
	if tier >= 0 && tier < tierCount {
		gs.Kills[tier]++
	}
	return gs.GainExperience(xp)
}

// Heal restores health up to the maximum.
func (gs *GameState) Heal(amount float64) {
	gs.PlayerHealth += amount
	if gs.PlayerHealth > playerMaxHealth {
		gs.PlayerHealth = playerMaxHealth
	}
}

// Hurt removes health and flags the session as over at zero.
func (gs *GameState) Hurt(amount float64) {
	gs.PlayerHealth -= amount
	if gs.PlayerHealth <= 0 {
		gs.PlayerHealth = 0
		gs.GameOver = true
	}
}

// XPToNext returns the experience still needed for the next level.
func (gs *GameState) XPToNext() int {
	return gs.Level*xpPerLevel - gs.Experience
}

// TotalKills sums kills across tiers.
func (gs *GameState) TotalKills() int {
	n := 0
	for _, k := range gs.Kills {
		n += k
	}
	return n
}
