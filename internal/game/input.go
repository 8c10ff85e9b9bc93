package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// comboKeys maps the physical keys that appear in a spell pattern.
var comboKeys = map[ebiten.Key]Key{
	ebiten.KeyQ: KeyQ,
	ebiten.KeyW: KeyW,
	ebiten.KeyE: KeyE,
	ebiten.KeyR: KeyR,
	ebiten.KeyF: KeyF,
	ebiten.KeyI: KeyI,
	ebiten.KeyC: KeyC,
	ebiten.KeyX: KeyX,
}

// movementKeys steer the player and are never reported to the recognizer.
// W is missing on purpose: it both moves and starts the lightning combo.
var movementKeys = map[ebiten.Key]bool{
	ebiten.KeyA:          true,
	ebiten.KeyS:          true,
	ebiten.KeyD:          true,
	ebiten.KeyArrowUp:    true,
	ebiten.KeyArrowDown:  true,
	ebiten.KeyArrowLeft:  true,
	ebiten.KeyArrowRight: true,
}

// letterKeys are the keys that, outside any pattern, still break a combo.
var letterKeys = map[ebiten.Key]bool{
	ebiten.KeyA: true, ebiten.KeyB: true, ebiten.KeyC: true, ebiten.KeyD: true,
	ebiten.KeyE: true, ebiten.KeyF: true, ebiten.KeyG: true, ebiten.KeyH: true,
	ebiten.KeyI: true, ebiten.KeyJ: true, ebiten.KeyK: true, ebiten.KeyL: true,
	ebiten.KeyM: true, ebiten.KeyN: true, ebiten.KeyO: true, ebiten.KeyP: true,
	ebiten.KeyQ: true, ebiten.KeyR: true, ebiten.KeyS: true, ebiten.KeyT: true,
	ebiten.KeyU: true, ebiten.KeyV: true, ebiten.KeyW: true, ebiten.KeyX: true,
	ebiten.KeyY: true, ebiten.KeyZ: true,
}

// logicalKey translates a physical key. ok is false for keys that must not
// reach the recognizer at all: movement, modifiers and function keys.
func logicalKey(k ebiten.Key) (Key, bool) {
	if lk, ok := comboKeys[k]; ok {
		return lk, true
	}
	if movementKeys[k] {
		return KeyOther, false
	}
	if letterKeys[k] {
		return KeyOther, true
	}
	return KeyOther, false
}

// pollComboKeys returns the logical keys pressed this frame.
func pollComboKeys(buf []ebiten.Key) ([]Key, []ebiten.Key) {
	buf = inpututil.AppendJustPressedKeys(buf[:0])
	var out []Key
	for _, k := range buf {
		if lk, ok := logicalKey(k); ok {
			out = append(out, lk)
		}
	}
	return out, buf
}

// pollMovement returns the movement intent from WASD and the arrow keys.
func pollMovement() Vec2 {
	var v Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		v.X = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		v.X = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		v.Y = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		v.Y = 1
	}
	return v
}

// menuChoice returns the spell picked in the level-up menu this frame, from
// the 1/2/3 keys or a click on one of the option rows.
func menuChoice(rows [spellKindCount]Rect) (SpellKind, bool) {
	numKeys := [spellKindCount]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, k := range numKeys {
		if inpututil.IsKeyJustPressed(k) {
			return AllSpells[i], true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p := Rect{X: float64(mx), Y: float64(my), W: 1, H: 1}
		for i, r := range rows {
			if r.Overlaps(p) {
				return AllSpells[i], true
			}
		}
	}
	return 0, false
}
