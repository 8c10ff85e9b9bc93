package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// floatLifetime is how many ticks a floating label stays visible (~1 second).
const floatLifetime = 60

// floatRise is how far a label drifts upward over its lifetime, in px.
const floatRise = 28

// FloatingText is a short label that rises from a point and fades out:
// damage numbers, cast names, "LEVEL UP".
type FloatingText struct {
	Pos    Vec2
	Text   string
	Detail string // optional second line
	Tone   LogTone
	age    int
	yOff   float64 // stacking offset against labels spawned nearby
}

// FloatingTexts owns the live labels.
type FloatingTexts struct {
	items []*FloatingText
}

// Spawn adds a label at pos. Labels spawned close to a still-young one are
// pushed up so they do not overlap.
func (ft *FloatingTexts) Spawn(pos Vec2, text, detail string, tone LogTone) {
	var yOff float64
	for _, existing := range ft.items {
		if existing.age < floatLifetime/3 && Dist(existing.Pos, pos) < 24 {
			yOff -= 14
		}
	}
	ft.items = append(ft.items, &FloatingText{
		Pos:    pos,
		Text:   text,
		Detail: detail,
		Tone:   tone,
		yOff:   yOff,
	})
}

// Update ages every label and prunes the expired ones.
func (ft *FloatingTexts) Update() {
	kept := ft.items[:0]
	for _, t := range ft.items {
		t.age++
		if t.age < floatLifetime {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(ft.items); i++ {
		ft.items[i] = nil
	}
	ft.items = kept
}

// Len returns how many labels are live.
func (ft *FloatingTexts) Len() int { return len(ft.items) }

// Items returns the live labels.
func (ft *FloatingTexts) Items() []*FloatingText { return ft.items }

// Draw renders every live label.
func (ft *FloatingTexts) Draw(screen *ebiten.Image) {
	const charW = 6
	const lineH = 14
	for _, t := range ft.items {
		progress := float64(t.age) / float64(floatLifetime)
		alpha := float32(1.0)
		if progress > 0.6 {
			alpha = float32(1.0 - (progress-0.6)/0.4)
		}
		if alpha < 0.05 {
			continue
		}
		x := float32(t.Pos.X) - float32(len(t.Text)*charW)/2
		y := float32(t.Pos.Y-progress*floatRise+t.yOff) - lineH

		accent := t.Tone.color()
		accent.A = uint8(220 * alpha)
		vector.FillRect(screen, x-3, y+2, 2, lineH-4, accent, false)
		ebitenutil.DebugPrintAt(screen, t.Text, int(x), int(y))
		if t.Detail != "" {
			ebitenutil.DebugPrintAt(screen, t.Detail, int(x), int(y)+lineH)
		}
	}
}

// floatBackdrop is the translucent plate drawn behind headline labels.
func floatBackdrop(screen *ebiten.Image, x, y, w, h float32, alpha float32) {
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 20, G: 18, B: 24, A: uint8(210 * alpha)}, false)
	vector.StrokeRect(screen, x, y, w, h, 0.5, color.RGBA{R: 100, G: 100, B: 110, A: uint8(80 * alpha)}, false)
}
