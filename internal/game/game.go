package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderWidth is the pixel gap between the window edge and the field.
const borderWidth = 24

// noticeTicks is how long a status notice (e.g. "report copied") stays up.
const noticeTicks = 150

// Options configures a windowed session.
type Options struct {
	Seed int64
	Mute bool
}

type Game struct {
	world    *World
	sounds   *Sounds
	reporter *SessionReporter
	perf     *PerfTracker
	opts     Options

	width      int
	height     int
	gameWidth  int // field width (log panel takes the rest)
	gameHeight int
	offX       int // pixel offset from window left to field left
	offY       int

	// Offscreen buffer for the field, blitted at the field offset.
	worldBuf *ebiten.Image
	inspBuf  *ebiten.Image

	inspector Inspector
	keyBuf    []ebiten.Key
	showHelp  bool

	notice     string
	noticeLeft int
}

func New(opts Options) *Game {
	cfg := DefaultWorldConfig()
	cfg.Seed = opts.Seed
	g := &Game{
		opts:       opts,
		gameWidth:  int(cfg.Width),
		gameHeight: int(cfg.Height),
		offX:       borderWidth,
		offY:       borderWidth,
		showHelp:   true,
	}
	g.width = borderWidth + g.gameWidth + borderWidth + logPanelWidth
	g.height = borderWidth + g.gameHeight + borderWidth
	g.worldBuf = ebiten.NewImage(g.gameWidth, g.gameHeight)
	g.inspBuf = ebiten.NewImage(inspBufW, inspBufH)
	g.reset(cfg)
	return g
}

// EnableSound creates the audio cues. The game stays silent if this is
// never called or fails.
func (g *Game) EnableSound() error {
	if g.opts.Mute {
		return nil
	}
	s, err := NewSounds()
	if err != nil {
		return fmt.Errorf("enable sound: %w", err)
	}
	g.sounds = s
	return nil
}

func (g *Game) reset(cfg WorldConfig) {
	g.world = NewWorld(cfg)
	g.reporter = NewSessionReporter(reportWindowTicks)
	g.perf = NewPerfTracker(fmt.Sprintf("seed-%d", cfg.Seed))
	g.inspector = Inspector{}
	g.world.Combat.Add(0, "--", ToneInfo, fmt.Sprintf("session start seed=%d", cfg.Seed))
}

// World exposes the running session.
func (g *Game) World() *World { return g.world }

// fieldMouse returns the cursor in field coordinates.
func (g *Game) fieldMouse() Vec2 {
	mx, my := ebiten.CursorPosition()
	return Vec2{X: float64(mx - g.offX), Y: float64(my - g.offY)}
}

func (g *Game) menuCenter() (float64, float64) {
	return float64(g.offX + g.gameWidth/2), float64(g.offY + g.gameHeight/2)
}

func (g *Game) Update() error {
	g.handleGlobalKeys()
	if g.noticeLeft > 0 {
		g.noticeLeft--
	}

	w := g.world
	if w.State.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			cfg := DefaultWorldConfig()
			cfg.Seed = w.Seed() + 1
			g.reset(cfg)
		}
		return nil
	}

	if w.PendingChoices() > 0 {
		if s, ok := menuChoice(menuRows(g.menuCenter())); ok {
			w.ChooseSpell(s)
		}
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.inspector.pickEnemy(w, g.fieldMouse())
	}

	var keys []Key
	keys, g.keyBuf = pollComboKeys(g.keyBuf)
	in := TickInput{
		Now:   tickMs(w.Ticks() + 1),
		Keys:  keys,
		Mouse: g.fieldMouse(),
		Move:  pollMovement(),
	}
	rep := w.Tick(in)
	g.perf.Update(w, rep, in)
	g.sounds.PlayTick(rep)

	if w.Ticks()%60 == 0 {
		g.reporter.Collect(w)
	}
	return nil
}

// handleGlobalKeys processes keys that work in every state.
func (g *Game) handleGlobalKeys() {
	// F1: toggle the help legend.
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHelp = !g.showHelp
	}
	// F9: copy the session report to the clipboard.
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.perf.Finalize(g.world)
		report := g.world.SessionDebugReport(600) + "\n" + g.reporter.WindowSummary().Format() +
			"\n=== Performance ===\n" + FormatGrade(GradeSession(g.perf))
		if err := setClipboardText(report); err != nil {
			log.Printf("copy session report: %v", err)
			g.setNotice("clipboard unavailable")
		} else {
			g.setNotice("session report copied")
		}
	}
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeLeft = noticeTicks
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})

	g.worldBuf.Clear()
	g.drawWorld(g.worldBuf)
	var blit ebiten.DrawImageOptions
	blit.GeoM.Translate(float64(g.offX), float64(g.offY))
	screen.DrawImage(g.worldBuf, &blit)

	ox, oy := float32(g.offX), float32(g.offY)
	gw, gh := float32(g.gameWidth), float32(g.gameHeight)
	vector.StrokeRect(screen, ox-1, oy-1, gw+2, gh+2, 2.0, color.RGBA{R: 80, G: 70, B: 110, A: 255}, false)

	logX := g.offX + g.gameWidth + g.offX
	g.world.Combat.Draw(screen, logX, g.height)

	drawStatusBars(screen, g.world.State, ox+8, oy+8)
	drawCooldowns(screen, g.world.Combo, ox+8, oy+48)
	if g.showHelp {
		g.drawHelp(screen)
	}
	g.inspector.draw(screen, g.inspBuf, g.world, g.offX+g.gameWidth-inspBufW*inspScale-8, g.offY+8)

	cx, cy := g.menuCenter()
	switch {
	case g.world.State.GameOver:
		drawGameOver(screen, DetermineSessionOutcome(g.world, 0), cx, cy)
	case g.world.PendingChoices() > 0:
		drawLevelMenu(screen, g.world.Combo, g.world.PendingChoices(), menuRows(cx, cy))
	}

	if g.noticeLeft > 0 {
		ebitenutil.DebugPrintAt(screen, g.notice, g.offX+8, g.offY+g.gameHeight-18)
	}
}

// drawWorld renders the field contents in field coordinates.
func (g *Game) drawWorld(dst *ebiten.Image) {
	w := g.world
	dst.Fill(color.RGBA{R: 26, G: 26, B: 30, A: 255})
	drawGrid(dst, g.gameWidth, g.gameHeight, 50, color.RGBA{R: 36, G: 36, B: 42, A: 255})

	drawEffects(dst, w.Effects, w.Now())

	w.Enemies.Each(func(_ EnemyHandle, e *Enemy) {
		drawEnemy(dst, e)
	})
	g.inspector.drawSelection(dst, w)

	for _, pr := range w.Projectiles {
		b := pr.Bounds()
		vector.FillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), color.White, false)
	}

	pb := w.Player.Bounds()
	vector.FillRect(dst, float32(pb.X), float32(pb.Y), float32(pb.W), float32(pb.H), color.RGBA{R: 0, G: 200, B: 0, A: 255}, false)

	w.Floaters.Draw(dst)
}

var tierColors = [tierCount]color.RGBA{
	TierBase: {R: 200, G: 0, B: 0, A: 255},
	TierTank: {R: 150, G: 40, B: 160, A: 255},
	TierBoss: {R: 230, G: 120, B: 0, A: 255},
}

func drawEnemy(dst *ebiten.Image, e *Enemy) {
	b := e.Bounds()
	x, y, s := float32(b.X), float32(b.Y), float32(b.W)
	vector.FillRect(dst, x, y, s, s, tierColors[e.Tier], false)
	if e.SpeedMultiplier < 1 {
		vector.StrokeRect(dst, x, y, s, s, 2, freezeRing, false)
	}
	if e.MaxHealth > 1 {
		frac := float32(e.Health) / float32(e.MaxHealth)
		vector.FillRect(dst, x, y-5, s, 3, color.RGBA{R: 60, G: 20, B: 20, A: 255}, false)
		vector.FillRect(dst, x, y-5, s*frac, 3, color.RGBA{R: 220, G: 60, B: 60, A: 255}, false)
	}
}

func drawGrid(dst *ebiten.Image, w, h, spacing int, c color.Color) {
	for x := 0; x <= w; x += spacing {
		vector.StrokeLine(dst, float32(x), 0, float32(x), float32(h), 1.0, c, false)
	}
	for y := 0; y <= h; y += spacing {
		vector.StrokeLine(dst, 0, float32(y), float32(w), float32(y), 1.0, c, false)
	}
}

// drawHelp renders the control legend in the bottom-left corner of the field.
func (g *Game) drawHelp(screen *ebiten.Image) {
	lines := []string{
		"WASD/arrows move   mouse aims",
		"Q-W-E-R lightning  E-R-F fireball  I-C-E freeze",
		"click enemy = inspect   F9 = copy report   F1 = hide help",
	}
	const lineH = 12
	x := g.offX + 8
	y := g.offY + g.gameHeight - 8 - len(lines)*lineH - 20
	vector.FillRect(screen, float32(x-4), float32(y-2), 360, float32(len(lines)*lineH+4), color.RGBA{R: 6, G: 6, B: 10, A: 180}, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x, y+i*lineH)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// WindowSize returns the window size the layout expects.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}
