package tui

import (
	"fmt"
	"time"

	"github.com/trio-arcade/trio/internal/core"
	"github.com/trio-arcade/trio/internal/games/snake"
)

// snakeView draws the snake field and maps arrow or WASD keys to
// direction changes. Each field cell spans two characters so the board
// looks roughly square in a terminal.
type snakeView struct {
	engine *snake.Engine
}

func newSnakeView(e *snake.Engine) *snakeView {
	return &snakeView{engine: e}
}

func (v *snakeView) handleKey(now time.Time, key string) bool {
	// Direction changes buffer inside the engine, so steering while
	// paused is fine: the turn applies on the first tick after resume.
	switch key {
	case "up", "w":
		v.engine.SetDirection(snake.DirUp)
	case "down", "s":
		v.engine.SetDirection(snake.DirDown)
	case "left", "a":
		v.engine.SetDirection(snake.DirLeft)
	case "right", "d":
		v.engine.SetDirection(snake.DirRight)
	default:
		return false
	}
	return true
}

func (v *snakeView) minSize() (int, int) {
	snap := v.engine.Snapshot()
	return snap.Columns*2 + 2, snap.Rows + 4
}

func (v *snakeView) result() (int, int) {
	return v.engine.Snapshot().Score, 0
}

func (v *snakeView) draw(s *core.Screen) {
	snap := v.engine.Snapshot()

	field := core.NewRect(0, 1, snap.Columns*2+2, snap.Rows+2)
	s.DrawBox(field, core.ColorGray)

	cellX := func(p core.Point) int { return field.X + 1 + p.X*2 }
	cellY := func(p core.Point) int { return field.Y + 1 + p.Y }

	// Food sits outside the board when the snake has filled it.
	if snap.Food.In(snap.Columns, snap.Rows) {
		s.SetCell(cellX(snap.Food), cellY(snap.Food), '*', core.ColorBrightRed)
	}

	for i, p := range snap.Body {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = '@', core.ColorBrightGreen
		}
		s.SetCell(cellX(p), cellY(p), r, c)
	}

	s.DrawTextColored(field.X+1, 0, fmt.Sprintf("Score %d", snap.Score), core.ColorBrightWhite)

	hudY := field.Bottom()
	switch {
	case snap.GameOver() && len(snap.Body) == snap.Columns*snap.Rows:
		s.DrawTextColored(field.X+1, hudY, "You win! The board is full.", core.ColorBrightYellow)
	case snap.GameOver():
		s.DrawTextColored(field.X+1, hudY, "Game over. r to restart", core.ColorBrightRed)
	case !snap.Running:
		s.DrawTextColored(field.X+1, hudY, "Paused. p to resume", core.ColorYellow)
	}
}
