package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 260
	logMaxEntries = 60
	logLineHeight = 11
)

// CombatEntry is a single line in the combat log.
type CombatEntry struct {
	Tick    int
	Label   string // e.g. "player", "boss#4"
	Tone    LogTone
	Message string
}

// LogTone picks the marker colour of a combat log line.
type LogTone int

const (
	ToneInfo LogTone = iota
	ToneLightning
	ToneFireball
	ToneFreeze
	ToneDanger
	ToneLevel
)

func toneForSpell(s SpellKind) LogTone {
	switch s {
	case SpellLightning:
		return ToneLightning
	case SpellFireball:
		return ToneFireball
	case SpellFreeze:
		return ToneFreeze
	default:
		return ToneInfo
	}
}

func (t LogTone) color() color.RGBA {
	switch t {
	case ToneLightning:
		return color.RGBA{R: 240, G: 240, B: 120, A: 255}
	case ToneFireball:
		return color.RGBA{R: 240, G: 120, B: 40, A: 255}
	case ToneFreeze:
		return color.RGBA{R: 110, G: 190, B: 250, A: 255}
	case ToneDanger:
		return color.RGBA{R: 210, G: 70, B: 70, A: 255}
	case ToneLevel:
		return color.RGBA{R: 120, G: 220, B: 120, A: 255}
	default:
		return color.RGBA{R: 160, G: 160, B: 160, A: 255}
	}
}

// CombatLog is a ring buffer of combat events rendered on-screen.
type CombatLog struct {
	entries []CombatEntry
	head    int
	count   int
}

// NewCombatLog creates a combat log with a fixed capacity.
func NewCombatLog() *CombatLog {
	return &CombatLog{
		entries: make([]CombatEntry, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (cl *CombatLog) Add(tick int, label string, tone LogTone, msg string) {
	cl.entries[cl.head] = CombatEntry{
		Tick:    tick,
		Label:   label,
		Tone:    tone,
		Message: msg,
	}
	cl.head = (cl.head + 1) % logMaxEntries
	if cl.count < logMaxEntries {
		cl.count++
	}
}

// Len returns how many entries are held.
func (cl *CombatLog) Len() int { return cl.count }

// Recent returns entries in chronological order (oldest first).
func (cl *CombatLog) Recent() []CombatEntry {
	result := make([]CombatEntry, cl.count)
	for i := 0; i < cl.count; i++ {
		idx := (cl.head - cl.count + i + logMaxEntries) % logMaxEntries
		result[i] = cl.entries[idx]
	}
	return result
}

// Draw renders the log panel starting at panelX.
func (cl *CombatLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 14, G: 12, B: 18, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 70, G: 60, B: 90, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 28, G: 22, B: 36, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "COMBAT LOG", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+logPanelWidth), 16, 1.0, color.RGBA{R: 80, G: 60, B: 100, A: 200}, false)

	entries := cl.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	const highlight = 3

	y := 20
	for i, e := range visible {
		if i >= len(visible)-highlight {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 36, G: 30, B: 46, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, e.Tone.color(), false)
		line := fmt.Sprintf("%4d %s %s", e.Tick, e.Label, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}
