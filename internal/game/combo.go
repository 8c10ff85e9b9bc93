package game

// ComboRecognizer watches the recent key history and decides when a spell
// combo has been typed. It also owns the per-spell cooldowns and the
// unlock/upgrade state chosen at level-up.
//
// One recognizer lives for the whole play session. It is driven by the
// simulation tick only and is not safe for concurrent use.
type ComboRecognizer struct {
	recent      []Key
	lastKeyTime int64
	timeoutMs   int64

	lastUpdate int64
	cooldown   [spellKindCount]int64
	level      [spellKindCount]int
	unlocked   [spellKindCount]bool
}

// NewComboRecognizer creates a recognizer whose clock starts at now.
func NewComboRecognizer(now int64) *ComboRecognizer {
	return &ComboRecognizer{
		recent:      make([]Key, 0, comboHistory),
		lastKeyTime: now,
		lastUpdate:  now,
		timeoutMs:   comboTimeoutMs,
	}
}

// RecordKey appends a key press to the history. If more than the combo
// timeout has passed since the previous key the history is cleared first.
// Only the last comboHistory keys are kept.
func (c *ComboRecognizer) RecordKey(k Key, now int64) {
	if now-c.lastKeyTime > c.timeoutMs {
		c.recent = c.recent[:0]
	}
	c.recent = append(c.recent, k)
	if n := len(c.recent); n > comboHistory {
		copy(c.recent, c.recent[n-comboHistory:])
		c.recent = c.recent[:comboHistory]
	}
	c.lastKeyTime = now
}

// Advance counts every running cooldown down by the time elapsed since the
// previous call, flooring at zero.
func (c *ComboRecognizer) Advance(now int64) {
	delta := now - c.lastUpdate
	c.lastUpdate = now
	if delta <= 0 {
		return
	}
	for i := range c.cooldown {
		if c.cooldown[i] == 0 {
			continue
		}
		c.cooldown[i] -= delta
		if c.cooldown[i] < 0 {
			c.cooldown[i] = 0
		}
	}
}

// Unlock makes s castable and raises its upgrade level by one. Selecting an
// already unlocked spell is how it gets upgraded.
func (c *ComboRecognizer) Unlock(s SpellKind) {
	if s < 0 || s >= spellKindCount {
		return
	}
	c.unlocked[s] = true
	c.level[s]++
}

// TryTrigger reports whether the combo for s has just been completed. The
// spell must be unlocked and off cooldown before the pattern is looked at.
// On success the history is consumed and the cooldown is armed; on failure
// nothing changes.
func (c *ComboRecognizer) TryTrigger(s SpellKind, now int64) bool {
	if s < 0 || s >= spellKindCount {
		return false
	}
	if !c.unlocked[s] || c.cooldown[s] > 0 {
		return false
	}
	if !c.matches(spellPatterns[s]) {
		return false
	}
	c.recent = c.recent[:0]
	c.cooldown[s] = baseCooldownMs[s]
	return true
}

// matches applies the exact-vs-suffix rule: a pattern as long as the history
// window must equal the whole history, a shorter one its trailing keys.
func (c *ComboRecognizer) matches(pattern []Key) bool {
	if len(pattern) >= comboHistory {
		return keysEqual(c.recent, pattern)
	}
	if len(c.recent) < len(pattern) {
		return false
	}
	return keysEqual(c.recent[len(c.recent)-len(pattern):], pattern)
}

func keysEqual(a, b []Key) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// History returns a copy of the current key history, oldest first.
func (c *ComboRecognizer) History() []Key {
	out := make([]Key, len(c.recent))
	copy(out, c.recent)
	return out
}

// Level returns the upgrade level of s (0 while locked).
func (c *ComboRecognizer) Level(s SpellKind) int {
	if s < 0 || s >= spellKindCount {
		return 0
	}
	return c.level[s]
}

// Unlocked reports whether s has been chosen at least once.
func (c *ComboRecognizer) Unlocked(s SpellKind) bool {
	if s < 0 || s >= spellKindCount {
		return false
	}
	return c.unlocked[s]
}

// Cooldown returns the remaining cooldown of s in milliseconds.
func (c *ComboRecognizer) Cooldown(s SpellKind) int64 {
	if s < 0 || s >= spellKindCount {
		return 0
	}
	return c.cooldown[s]
}

// UnlockedSpells returns the unlocked spells in menu order.
func (c *ComboRecognizer) UnlockedSpells() []SpellKind {
	var out []SpellKind
	for _, s := range AllSpells {
		if c.unlocked[s] {
			out = append(out, s)
		}
	}
	return out
}
