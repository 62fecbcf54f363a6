package tui

import (
	"fmt"
	"time"

	"github.com/trio-arcade/trio/internal/core"
	"github.com/trio-arcade/trio/internal/games/simon"
)

const (
	padW    = 12
	padH    = 5
	padGapX = 2
	padGapY = 1
)

// simonView draws the four pads in a 2x2 block and maps the number keys
// 1-4 to taps.
type simonView struct {
	engine *simon.Engine
}

func newSimonView(e *simon.Engine) *simonView {
	return &simonView{engine: e}
}

var padKeys = map[string]simon.Pad{
	"1": simon.PadGreen,
	"2": simon.PadRed,
	"3": simon.PadYellow,
	"4": simon.PadBlue,
}

// padColors holds the idle and lit color for each pad.
var padColors = [...]struct{ dim, lit core.Color }{
	simon.PadGreen:  {core.ColorGreen, core.ColorBrightGreen},
	simon.PadRed:    {core.ColorRed, core.ColorBrightRed},
	simon.PadYellow: {core.ColorYellow, core.ColorBrightYellow},
	simon.PadBlue:   {core.ColorBlue, core.ColorBrightBlue},
}

func (v *simonView) handleKey(now time.Time, key string) bool {
	pad, ok := padKeys[key]
	if !ok {
		return false
	}
	// Taps arm feedback schedules relative to now, so they are swallowed
	// while the clock is detached.
	if !v.engine.Snapshot().Running {
		return true
	}
	v.engine.Tap(now, pad)
	return true
}

func (v *simonView) minSize() (int, int) {
	return padW*2 + padGapX + 2, padH*2 + padGapY + 6
}

func (v *simonView) result() (int, int) {
	return v.engine.Snapshot().Score, 0
}

func (v *simonView) draw(s *core.Screen) {
	snap := v.engine.Snapshot()

	s.DrawTextColored(1, 0, fmt.Sprintf("Score %d", snap.Score), core.ColorBrightWhite)

	for pad := simon.PadGreen; pad <= simon.PadBlue; pad++ {
		col := int(pad) % 2
		row := int(pad) / 2
		x := 1 + col*(padW+padGapX)
		y := 2 + row*(padH+padGapY)

		colors := padColors[pad]
		fill, c := '░', colors.dim
		if snap.Highlight == pad {
			fill, c = '█', colors.lit
		}
		s.DrawRect(core.NewRect(x, y, padW, padH), fill, c)
		s.SetCell(x+padW/2, y+padH/2, rune('1'+int(pad)), core.ColorBrightWhite)
	}

	hudY := 2 + padH*2 + padGapY + 1
	switch snap.Phase {
	case simon.PhasePlayback:
		s.DrawText(1, hudY, fmt.Sprintf("Watch the sequence of %d...", snap.SequenceLen))
	case simon.PhaseAwaitInput:
		s.DrawText(1, hudY, fmt.Sprintf("Your turn: %d of %d", snap.Progress, snap.SequenceLen))
	case simon.PhaseRoundPause:
		s.DrawTextColored(1, hudY, "Correct!", core.ColorBrightGreen)
	case simon.PhaseGameOver:
		s.DrawTextColored(1, hudY, fmt.Sprintf("Game over after %d rounds. r to restart", snap.Score), core.ColorBrightRed)
	}
	if !snap.Running && !snap.GameOver() {
		s.DrawTextColored(1, hudY+1, "Paused. p to resume", core.ColorYellow)
	}
}
