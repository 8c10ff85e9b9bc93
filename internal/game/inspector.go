package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Inspector panel, rendered into an offscreen buffer at 1× then blitted at inspScale.
const (
	inspScale = 2
	inspBufW  = 150
	inspBufH  = 96
	inspPad   = 4
	inspLineH = 13
)

// Inspector holds the enemy selected by clicking on it.
type Inspector struct {
	selected EnemyHandle
	active   bool
}

// pickEnemy selects the enemy nearest to p within a small pick radius, or
// clears the selection when there is none.
func (in *Inspector) pickEnemy(w *World, p Vec2) bool {
	const pickRadius = 16.0
	best := pickRadius
	in.active = false
	w.Enemies.Each(func(h EnemyHandle, e *Enemy) {
		d := Dist(e.Pos, p) - e.Size/2
		if d < best {
			best = d
			in.selected = h
			in.active = true
		}
	})
	return in.active
}

// Selected returns the selected enemy if it is still alive.
func (in *Inspector) Selected(w *World) (EnemyHandle, *Enemy, bool) {
	if !in.active {
		return EnemyHandle{}, nil, false
	}
	e, ok := w.Enemies.Get(in.selected)
	if !ok {
		in.active = false
		return EnemyHandle{}, nil, false
	}
	return in.selected, e, true
}

// inspectorLines describes the selected enemy.
func inspectorLines(w *World, h EnemyHandle, e *Enemy) []string {
	lines := []string{
		fmt.Sprintf("[ %s ]", enemyLabel(e.Tier, h)),
		fmt.Sprintf("hp %d/%d  xp %d", e.Health, e.MaxHealth, e.XPReward),
		fmt.Sprintf("speed %.1f x%.2f", e.Speed, e.SpeedMultiplier),
		fmt.Sprintf("pos (%.0f,%.0f)", e.Pos.X, e.Pos.Y),
	}
	holding := 0
	for _, fx := range w.Effects {
		if f, ok := fx.(*FreezeSpell); ok && f.Affects(h) {
			holding++
		}
	}
	if holding > 0 {
		lines = append(lines, fmt.Sprintf("frozen by %d field(s)", holding))
	}
	lines = append(lines, fmt.Sprintf("gen %d", h.Gen))
	return lines
}

// drawSelection rings the selected enemy on the field image.
func (in *Inspector) drawSelection(field *ebiten.Image, w *World) {
	_, e, ok := in.Selected(w)
	if !ok {
		return
	}
	vector.StrokeRect(field, float32(e.Pos.X-e.Size/2-3), float32(e.Pos.Y-e.Size/2-3),
		float32(e.Size+6), float32(e.Size+6), 1, color.RGBA{R: 255, G: 255, B: 255, A: 200}, false)
}

// draw renders the panel into buf at 1× and blits it at inspScale to
// (px, py).
func (in *Inspector) draw(screen, buf *ebiten.Image, w *World, px, py int) {
	h, e, ok := in.Selected(w)
	if !ok {
		return
	}

	buf.Clear()
	bw, bh := float32(inspBufW), float32(inspBufH)
	border := color.RGBA{R: 80, G: 60, B: 100, A: 255}
	vector.FillRect(buf, 0, 0, bw, bh, color.RGBA{R: 16, G: 14, B: 20, A: 230}, false)
	vector.StrokeRect(buf, 0, 0, bw, bh, 1.0, border, false)

	ly := inspPad
	for _, line := range inspectorLines(w, h, e) {
		ebitenutil.DebugPrintAt(buf, line, inspPad, ly)
		ly += inspLineH
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(inspScale, inspScale)
	opts.GeoM.Translate(float64(px), float64(py))
	screen.DrawImage(buf, opts)
}
