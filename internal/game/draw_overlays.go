package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	lightningCore = color.RGBA{R: 250, G: 250, B: 200, A: 255}
	lightningGlow = color.RGBA{R: 240, G: 240, B: 90, A: 110}
	fireballCore  = color.RGBA{R: 255, G: 200, B: 60, A: 255}
	fireballGlow  = color.RGBA{R: 240, G: 90, B: 20, A: 150}
	freezeFill    = color.RGBA{R: 90, G: 170, B: 255, A: 40}
	freezeRing    = color.RGBA{R: 150, G: 210, B: 255, A: 200}
)

// drawEffects renders every live spell effect in field coordinates.
func drawEffects(screen *ebiten.Image, effects []SpellEffect, now int64) {
	// Freeze fields first so bolts and fireballs draw over them.
	for _, fx := range effects {
		if f, ok := fx.(*FreezeSpell); ok {
			drawFreeze(screen, f, now)
		}
	}
	for _, fx := range effects {
		switch e := fx.(type) {
		case *LightningSpell:
			drawLightning(screen, e, now)
		case *FireballSpell:
			drawFireball(screen, e)
		}
	}
}

// drawLightning draws the bolt polyline. It fades over its lifetime.
func drawLightning(screen *ebiten.Image, l *LightningSpell, now int64) {
	fade := 1 - float64(l.Age(now))/lightningDurationMs
	if fade <= 0 {
		return
	}
	glow := lightningGlow
	glow.A = uint8(float64(glow.A) * fade)
	core := lightningCore
	core.A = uint8(float64(core.A) * fade)

	pts := l.Points()
	width := float32(2 + l.Level())
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width*3, glow, true)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, core, true)
	}
	end := pts[len(pts)-1]
	vector.FillCircle(screen, float32(end.X), float32(end.Y), width*2, glow, true)
}

func drawFireball(screen *ebiten.Image, f *FireballSpell) {
	x, y := float32(f.Pos.X), float32(f.Pos.Y)
	r := float32(f.Radius())
	vector.FillCircle(screen, x, y, r, fireballGlow, true)
	vector.FillCircle(screen, x, y, r*0.55, fireballCore, true)

	// short trail opposite the direction of travel
	tail := f.Pos.Sub(f.Dir.Scale(f.Size))
	trail := fireballGlow
	trail.A = 80
	vector.StrokeLine(screen, x, y, float32(tail.X), float32(tail.Y), r*0.8, trail, true)
}

// drawFreeze draws the field with a pulsing ring and a fill that thins out
// as the field nears expiry.
func drawFreeze(screen *ebiten.Image, f *FreezeSpell, now int64) {
	x, y := float32(f.Center.X), float32(f.Center.Y)
	left := 1 - float64(f.Age(now))/float64(f.DurationMs)
	left = math.Max(0, math.Min(1, left))

	fill := freezeFill
	fill.A = uint8(float64(fill.A) * (0.4 + 0.6*left))
	vector.FillCircle(screen, x, y, float32(f.Radius), fill, true)
	vector.StrokeCircle(screen, x, y, float32(f.Radius*f.Pulse(now)), 2, freezeRing, true)
	vector.StrokeCircle(screen, x, y, float32(f.Radius), 1, freezeRing, true)
}
