package game

// Key is a logical key identifier fed to the combo recognizer. Only letters
// that appear in a spell pattern get their own value; every other key press
// is reported as KeyOther so that it still breaks a pending combo.
type Key int

const (
	KeyOther Key = iota
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyF
	KeyI
	KeyC
	KeyX
)

func (k Key) String() string {
	switch k {
	case KeyQ:
		return "Q"
	case KeyW:
		return "W"
	case KeyE:
		return "E"
	case KeyR:
		return "R"
	case KeyF:
		return "F"
	case KeyI:
		return "I"
	case KeyC:
		return "C"
	case KeyX:
		return "X"
	default:
		return "?"
	}
}

// SpellKind identifies one of the combo-activated spells.
type SpellKind int

const (
	SpellLightning SpellKind = iota
	SpellFireball
	SpellFreeze
	spellKindCount
)

// AllSpells lists the spells in menu order.
var AllSpells = [spellKindCount]SpellKind{SpellLightning, SpellFireball, SpellFreeze}

func (s SpellKind) String() string {
	switch s {
	case SpellLightning:
		return "lightning"
	case SpellFireball:
		return "fireball"
	case SpellFreeze:
		return "freeze"
	default:
		return "unknown"
	}
}

// spellPatterns are the fixed key bindings. A 4-key pattern must match the
// whole history; a 3-key pattern only the trailing three keys.
var spellPatterns = [spellKindCount][]Key{
	SpellLightning: {KeyQ, KeyW, KeyE, KeyR},
	SpellFireball:  {KeyE, KeyR, KeyF},
	SpellFreeze:    {KeyI, KeyC, KeyE},
}

// baseCooldownMs is the cooldown armed by a successful trigger.
var baseCooldownMs = [spellKindCount]int64{
	SpellLightning: lightningCooldownMs,
	SpellFireball:  fireballCooldownMs,
	SpellFreeze:    freezeCooldownMs,
}

// Pattern returns a copy of the key sequence bound to s.
func (s SpellKind) Pattern() []Key {
	if s < 0 || s >= spellKindCount {
		return nil
	}
	out := make([]Key, len(spellPatterns[s]))
	copy(out, spellPatterns[s])
	return out
}

// BaseCooldown returns the cooldown in milliseconds armed when s triggers.
func (s SpellKind) BaseCooldown() int64 {
	if s < 0 || s >= spellKindCount {
		return 0
	}
	return baseCooldownMs[s]
}
