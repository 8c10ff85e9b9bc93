package game

// EnemyTier is the closed set of enemy variants.
type EnemyTier int

const (
	TierBase EnemyTier = iota
	TierTank
	TierBoss
	tierCount
)

func (t EnemyTier) String() string {
	switch t {
	case TierBase:
		return "base"
	case TierTank:
		return "tank"
	case TierBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// tierStats is the per-tier template applied at spawn.
type tierStats struct {
	health   int     // hits of 1 damage to kill
	speed    float64 // px per tick at multiplier 1
	xpReward int
	size     float64 // px, square
}

var tierTable = [tierCount]tierStats{
	TierBase: {health: 1, speed: 2.0, xpReward: 1, size: 20},
	TierTank: {health: 3, speed: 1.0, xpReward: 3, size: 28},
	TierBoss: {health: 30, speed: 1.5, xpReward: 10, size: 48},
}

// Enemy is one hostile unit. Health only matters for multi-hit tiers; a base
// enemy dies to any hit regardless of damage.
type Enemy struct {
	Tier            EnemyTier
	Pos             Vec2 // centre
	Health          int
	MaxHealth       int
	Speed           float64
	XPReward        int
	Size            float64
	SpeedMultiplier float64 // 1.0 unless a freeze field is holding it
}

// NewEnemy builds an enemy of the given tier at pos from the tier table.
func NewEnemy(tier EnemyTier, pos Vec2) Enemy {
	if tier < 0 || tier >= tierCount {
		tier = TierBase
	}
	st := tierTable[tier]
	return Enemy{
		Tier:            tier,
		Pos:             pos,
		Health:          st.health,
		MaxHealth:       st.health,
		Speed:           st.speed,
		XPReward:        st.xpReward,
		Size:            st.size,
		SpeedMultiplier: 1.0,
	}
}

// Bounds returns the enemy's collision box.
func (e *Enemy) Bounds() Rect {
	return RectAround(e.Pos, e.Size)
}

// ApplyDamage resolves one hit against the enemy and reports whether it died.
// This is the single place where tier decides how a hit lands.
func (e *Enemy) ApplyDamage(dmg int) bool {
	switch e.Tier {
	case TierBase:
		e.Health = 0
		return true
	default:
		if dmg <= 0 {
			return false
		}
		e.Health -= dmg
		if e.Health < 0 {
			e.Health = 0
		}
		return e.Health == 0
	}
}

// StepToward moves the enemy toward target by its effective speed.
func (e *Enemy) StepToward(target Vec2) {
	dir := Normalize(target.Sub(e.Pos))
	e.Pos = e.Pos.Add(dir.Scale(e.Speed * e.SpeedMultiplier))
}

// EnemyHandle is a stable reference to an enemy slot. The generation makes a
// handle to a removed enemy invalid even after its slot is reused.
type EnemyHandle struct {
	Index int
	Gen   uint32
}

type enemySlot struct {
	gen   uint32
	alive bool
	enemy Enemy
}

// EnemyStore keeps enemies in a contiguous arena addressed by handles.
type EnemyStore struct {
	slots []enemySlot
	free  []int
	count int
}

// NewEnemyStore creates an empty store.
func NewEnemyStore() *EnemyStore {
	return &EnemyStore{}
}

// Spawn inserts e and returns its handle.
func (s *EnemyStore) Spawn(e Enemy) EnemyHandle {
	var idx int
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = len(s.slots)
		s.slots = append(s.slots, enemySlot{})
	}
	sl := &s.slots[idx]
	sl.gen++
	sl.alive = true
	sl.enemy = e
	s.count++
	return EnemyHandle{Index: idx, Gen: sl.gen}
}

// Get returns the enemy for h, or false if the handle is stale.
func (s *EnemyStore) Get(h EnemyHandle) (*Enemy, bool) {
	if h.Index < 0 || h.Index >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[h.Index]
	if !sl.alive || sl.gen != h.Gen {
		return nil, false
	}
	return &sl.enemy, true
}

// Remove deletes the enemy behind h. Removing a stale handle is a no-op.
func (s *EnemyStore) Remove(h EnemyHandle) bool {
	if _, ok := s.Get(h); !ok {
		return false
	}
	sl := &s.slots[h.Index]
	sl.alive = false
	sl.enemy = Enemy{}
	s.free = append(s.free, h.Index)
	s.count--
	return true
}

// Len returns the number of live enemies.
func (s *EnemyStore) Len() int { return s.count }

// Handles returns the handles of all live enemies in slot order.
func (s *EnemyStore) Handles() []EnemyHandle {
	out := make([]EnemyHandle, 0, s.count)
	for i := range s.slots {
		if s.slots[i].alive {
			out = append(out, EnemyHandle{Index: i, Gen: s.slots[i].gen})
		}
	}
	return out
}

// Each calls fn for every live enemy in slot order. fn must not spawn or
// remove enemies.
func (s *EnemyStore) Each(fn func(h EnemyHandle, e *Enemy)) {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.alive {
			fn(EnemyHandle{Index: i, Gen: sl.gen}, &sl.enemy)
		}
	}
}
