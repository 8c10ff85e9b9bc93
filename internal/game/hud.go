package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// headlineFace is the bitmap face used for menu titles and the game-over
// banner.
var headlineFace = text.NewGoXFace(basicfont.Face7x13)

// headlineScale is the integer upscale applied to headline text.
const headlineScale = 3

// drawHeadline draws s centred horizontally on cx with its top at y.
func drawHeadline(screen *ebiten.Image, s string, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, headlineFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(headlineScale, headlineScale)
	op.GeoM.Translate(cx-w*headlineScale/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, headlineFace, op)
}

// drawStatusBars draws the health and experience bars and the level line in
// the top-left corner of the field.
func drawStatusBars(screen *ebiten.Image, gs *GameState, x, y float32) {
	const barW, barH = 200, 14

	vector.FillRect(screen, x, y, barW, barH, color.RGBA{R: 120, G: 20, B: 20, A: 255}, false)
	hp := float32(gs.PlayerHealth / playerMaxHealth)
	vector.FillRect(screen, x, y, barW*hp, barH, color.RGBA{R: 40, G: 190, B: 60, A: 255}, false)
	vector.StrokeRect(screen, x, y, barW, barH, 1, color.RGBA{R: 200, G: 200, B: 200, A: 120}, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %.0f", gs.PlayerHealth), int(x)+barW+6, int(y)-1)

	y += barH + 4
	need := float32(gs.Level * xpPerLevel)
	vector.FillRect(screen, x, y, barW, 6, color.RGBA{R: 40, G: 40, B: 60, A: 255}, false)
	vector.FillRect(screen, x, y, barW*float32(gs.Experience)/need, 6, color.RGBA{R: 120, G: 140, B: 250, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LV %d  XP %d/%d  kills %d", gs.Level, gs.Experience, int(need), gs.TotalKills()), int(x), int(y)+8)
}

// drawCooldowns renders one row per unlocked spell: name, level, combo and a
// bar that fills as the cooldown runs out.
func drawCooldowns(screen *ebiten.Image, c *ComboRecognizer, x, y float32) {
	const barW, barH, rowH = 90, 8, 16
	for _, s := range c.UnlockedSpells() {
		info := s.Info()
		tone := toneForSpell(s).color()
		cd := c.Cooldown(s)
		ready := float32(1)
		if base := s.BaseCooldown(); base > 0 {
			ready = 1 - float32(cd)/float32(base)
		}

		vector.FillRect(screen, x, y+4, barW, barH, color.RGBA{R: 30, G: 30, B: 36, A: 220}, false)
		vector.FillRect(screen, x, y+4, barW*ready, barH, tone, false)
		label := fmt.Sprintf("%s lv%d [%s]", s, c.Level(s), info.Combo)
		if cd > 0 {
			label += fmt.Sprintf(" %.1fs", float64(cd)/1000)
		} else {
			label += " READY"
		}
		ebitenutil.DebugPrintAt(screen, label, int(x)+barW+6, int(y))
		y += rowH
	}
	if len(c.UnlockedSpells()) == 0 {
		ebitenutil.DebugPrintAt(screen, "no spells yet: level up to learn one", int(x), int(y))
	}
}

// menuRows returns the screen rectangles of the level-up menu options for a
// menu centred on (cx, cy).
func menuRows(cx, cy float64) [spellKindCount]Rect {
	const rowW, rowH, gap = 460.0, 26.0, 8.0
	var rows [spellKindCount]Rect
	top := cy - (rowH*float64(spellKindCount)+gap*float64(spellKindCount-1))/2
	for i := range rows {
		rows[i] = Rect{X: cx - rowW/2, Y: top + float64(i)*(rowH+gap), W: rowW, H: rowH}
	}
	return rows
}

// drawLevelMenu renders the spell choice offered after a level-up.
func drawLevelMenu(screen *ebiten.Image, c *ComboRecognizer, pending int, rows [spellKindCount]Rect) {
	first, last := rows[0], rows[len(rows)-1]
	cx := first.X + first.W/2
	panel := Rect{X: first.X - 20, Y: first.Y - 70, W: first.W + 40, H: last.Y + last.H - first.Y + 100}
	floatBackdrop(screen, float32(panel.X), float32(panel.Y), float32(panel.W), float32(panel.H), 1)

	drawHeadline(screen, "LEVEL UP", cx, panel.Y+10, color.RGBA{R: 140, G: 230, B: 140, A: 255})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("choose a spell (%d pending): 1/2/3 or click", pending),
		int(panel.X)+20, int(first.Y)-22)

	mx, my := ebiten.CursorPosition()
	cursor := Rect{X: float64(mx), Y: float64(my), W: 1, H: 1}
	for i, r := range rows {
		s := AllSpells[i]
		info := s.Info()
		bg := color.RGBA{R: 34, G: 30, B: 44, A: 230}
		if r.Overlaps(cursor) {
			bg = color.RGBA{R: 56, G: 48, B: 74, A: 240}
		}
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
		vector.FillRect(screen, float32(r.X), float32(r.Y), 4, float32(r.H), toneForSpell(s).color(), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d. %s", i+1, info.MenuLine(c.Level(s))), int(r.X)+10, int(r.Y)+2)
		ebitenutil.DebugPrintAt(screen, info.Description, int(r.X)+26, int(r.Y)+13)
	}
}

// drawGameOver renders the end-of-session banner.
func drawGameOver(screen *ebiten.Image, out SessionOutcomeReason, cx, cy float64) {
	floatBackdrop(screen, float32(cx-220), float32(cy-60), 440, 120, 1)
	drawHeadline(screen, "GAME OVER", cx, cy-50, color.RGBA{R: 230, G: 80, B: 80, A: 255})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("level %d  kills %d  casts %d  ticks %d",
		out.Level, out.Kills, out.Casts, out.Ticks), int(cx)-150, int(cy)+4)
	ebitenutil.DebugPrintAt(screen, "Enter = new run   F9 = copy report", int(cx)-150, int(cy)+22)
}
