package game

// HitEvent records one enemy struck during a resolution pass.
type HitEvent struct {
	Source SpellKind
	Enemy  EnemyHandle
	Tier   EnemyTier
	Pos    Vec2
	Damage int
	Killed bool
	XP     int // experience awarded, zero unless Killed
}

// ResolveResult summarises one resolution pass.
type ResolveResult struct {
	Hits     []HitEvent
	Kills    int
	XP       int
	Slowed   int // enemies newly caught by a freeze field
	Restored int // enemies whose multiplier returned to 1.0
	Released int // freeze fields that expired this pass
	LevelUps []LevelUp
}

// ResolveEffects applies every live effect to the enemy collection, awards
// experience for kills, drops expired effects and reconciles freeze slows.
// It returns the surviving effects in their original order.
//
// space is rebuilt from store before fireball collision runs; it may be nil
// when no fireball is live.
func ResolveEffects(effects []SpellEffect, store *EnemyStore, space *CollisionSpace, gs *GameState) ([]SpellEffect, ResolveResult) {
	var res ResolveResult

	spaceReady := false
	for _, fx := range effects {
		if fx.Expired() {
			continue
		}
		switch e := fx.(type) {
		case *LightningSpell:
			resolveLightning(e, store, gs, &res)
		case *FireballSpell:
			if space == nil {
				continue
			}
			if !spaceReady {
				space.Rebuild(store)
				spaceReady = true
			}
			// Enemies killed earlier in the pass keep their box in the index
			// until the next rebuild; their stale handles fail Get.
			resolveFireball(e, store, space, gs, &res)
		case *FreezeSpell:
			store.Each(func(h EnemyHandle, en *Enemy) {
				if e.InRange(en.Pos) && e.Apply(h, en) {
					res.Slowed++
				}
			})
		}
	}

	slowed := slowedHandles(store)
	kept := effects[:0]
	for _, fx := range effects {
		if !fx.Expired() {
			kept = append(kept, fx)
			continue
		}
		if r, ok := fx.(releaser); ok {
			r.Release(store)
			res.Released++
		}
	}
	// Clear the tail so dropped effects can be collected.
	for i := len(kept); i < len(effects); i++ {
		effects[i] = nil
	}

	reconcileSlows(kept, store)
	for _, h := range slowed {
		if en, ok := store.Get(h); ok && en.SpeedMultiplier == 1.0 {
			res.Restored++
		}
	}
	return kept, res
}

func resolveLightning(l *LightningSpell, store *EnemyStore, gs *GameState, res *ResolveResult) {
	for _, h := range store.Handles() {
		if !l.CanChain() {
			return
		}
		en, ok := store.Get(h)
		if !ok {
			continue
		}
		if l.CheckHit(h, en.Pos) {
			strike(SpellLightning, h, en, l.Damage, store, gs, res)
		}
	}
}

// resolveFireball bursts f on the first enemy it overlaps and reports whether
// it hit anything.
func resolveFireball(f *FireballSpell, store *EnemyStore, space *CollisionSpace, gs *GameState, res *ResolveResult) bool {
	for _, h := range space.Overlapping(f.Bounds()) {
		en, ok := store.Get(h)
		if !ok {
			continue
		}
		f.Burst()
		strike(SpellFireball, h, en, f.Damage, store, gs, res)
		return true
	}
	return false
}

// strike applies one hit and removes the enemy if it died.
func strike(src SpellKind, h EnemyHandle, en *Enemy, dmg int, store *EnemyStore, gs *GameState, res *ResolveResult) {
	ev := HitEvent{Source: src, Enemy: h, Tier: en.Tier, Pos: en.Pos, Damage: dmg}
	if en.ApplyDamage(dmg) {
		ev.Killed = true
		ev.XP = en.XPReward
		res.Kills++
		res.XP += en.XPReward
		res.LevelUps = append(res.LevelUps, gs.RecordKill(en.Tier, en.XPReward)...)
		store.Remove(h)
	}
	res.Hits = append(res.Hits, ev)
}

// slowedHandles lists the enemies currently under a freeze multiplier.
func slowedHandles(store *EnemyStore) []EnemyHandle {
	var out []EnemyHandle
	store.Each(func(h EnemyHandle, en *Enemy) {
		if en.SpeedMultiplier != 1.0 {
			out = append(out, h)
		}
	})
	return out
}

// reconcileSlows recomputes every enemy's multiplier from the live freeze
// fields: the strongest containing field wins, and an enemy inside none is
// reset to 1.0. Enemies at 1.0 are checked too, since releasing an expired
// field may have just reset one that still stands in another field.
func reconcileSlows(effects []SpellEffect, store *EnemyStore) {
	var fields []*FreezeSpell
	for _, fx := range effects {
		if f, ok := fx.(*FreezeSpell); ok && !f.Expired() {
			fields = append(fields, f)
		}
	}
	store.Each(func(_ EnemyHandle, en *Enemy) {
		if en.SpeedMultiplier == 1.0 && len(fields) == 0 {
			return
		}
		slow := 1.0
		for _, f := range fields {
			if f.InRange(en.Pos) && f.Slow < slow {
				slow = f.Slow
			}
		}
		en.SpeedMultiplier = slow
	})
}
