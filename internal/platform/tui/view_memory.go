package tui

import (
	"fmt"
	"time"

	"github.com/trio-arcade/trio/internal/core"
	"github.com/trio-arcade/trio/internal/games/memory"
)

const (
	cardW = 7
	cardH = 3
)

// memoryView draws the card grid and moves a cursor over it. Enter or
// space taps the card under the cursor.
type memoryView struct {
	engine *memory.Engine
	cursor int
}

func newMemoryView(e *memory.Engine) *memoryView {
	return &memoryView{engine: e}
}

// gridColumns returns the card grid width for the deck size.
func gridColumns(cards int) int {
	if cards > 16 {
		return 6
	}
	return 4
}

func (v *memoryView) handleKey(now time.Time, key string) bool {
	snap := v.engine.Snapshot()
	n := len(snap.Cards)
	if n == 0 {
		return false
	}
	cols := gridColumns(n)

	switch key {
	case "left", "a":
		if v.cursor%cols > 0 {
			v.cursor--
		}
	case "right", "d":
		if v.cursor%cols < cols-1 && v.cursor+1 < n {
			v.cursor++
		}
	case "up", "w":
		if v.cursor-cols >= 0 {
			v.cursor -= cols
		}
	case "down", "s":
		if v.cursor+cols < n {
			v.cursor += cols
		}
	case "enter", " ":
		// Taps arm the flip-back schedule relative to now, so they are
		// swallowed while the clock is detached.
		if snap.Running {
			v.engine.TapCard(now, snap.Cards[v.cursor].ID)
		}
	default:
		return false
	}
	return true
}

func (v *memoryView) minSize() (int, int) {
	n := len(v.engine.Snapshot().Cards)
	cols := gridColumns(n)
	rows := (n + cols - 1) / cols
	return cols*(cardW+1) + 1, rows*(cardH+1) + 5
}

func (v *memoryView) result() (int, int) {
	snap := v.engine.Snapshot()
	return snap.Score, snap.Moves
}

func (v *memoryView) draw(s *core.Screen) {
	snap := v.engine.Snapshot()
	n := len(snap.Cards)
	cols := gridColumns(n)

	header := fmt.Sprintf("Pairs %d/%d   Moves %d", snap.Score, snap.Pairs, snap.Moves)
	s.DrawTextColored(1, 0, header, core.ColorBrightWhite)

	for i, card := range snap.Cards {
		x := 1 + (i%cols)*(cardW+1)
		y := 2 + (i/cols)*(cardH+1)
		box := core.NewRect(x, y, cardW, cardH)

		borderColor := core.ColorGray
		if i == v.cursor {
			borderColor = core.ColorBrightYellow
		}
		s.DrawBox(box, borderColor)

		cx, cy := x+cardW/2, y+cardH/2
		switch {
		case card.Matched:
			drawCardFace(s, cx, cy, card.Content, core.ColorGreen)
		case card.FaceUp:
			drawCardFace(s, cx, cy, card.Content, core.ColorBrightWhite)
		default:
			s.SetCell(cx, cy, '·', core.ColorGray)
		}
	}

	gridRows := (n + cols - 1) / cols
	msgY := 2 + gridRows*(cardH+1)
	s.DrawText(1, msgY, snap.Message)
	switch {
	case snap.Phase == memory.PhaseWon:
		s.DrawTextColored(1, msgY+1, "r to restart", core.ColorBrightGreen)
	case !snap.Running:
		s.DrawTextColored(1, msgY+1, "Paused. p to resume", core.ColorYellow)
	}
}

// drawCardFace places the card's content rune at the card center.
func drawCardFace(s *core.Screen, x, y int, content string, c core.Color) {
	runes := []rune(content)
	if len(runes) == 0 {
		return
	}
	s.SetCell(x, y, runes[0], c)
}
