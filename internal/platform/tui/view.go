package tui

import (
	"time"

	"github.com/trio-arcade/trio/internal/core"
	"github.com/trio-arcade/trio/internal/games/memory"
	"github.com/trio-arcade/trio/internal/games/simon"
	"github.com/trio-arcade/trio/internal/games/snake"
	"github.com/trio-arcade/trio/internal/hub"
)

// gameView adapts one engine to the terminal: it translates key presses
// into engine commands and draws the latest snapshot onto the screen
// buffer. Views hold no game state beyond cursor position.
type gameView interface {
	// handleKey feeds a key press to the engine. Returns true if the
	// view consumed the key.
	handleKey(now time.Time, key string) bool

	// draw renders the latest snapshot onto the screen.
	draw(s *core.Screen)

	// minSize reports the smallest screen the view fits on.
	minSize() (w, h int)

	// result reports the score and move count for persistence. Moves is
	// zero for games that do not count them.
	result() (score, moves int)
}

// viewFor wraps an engine in its terminal view. Returns nil for an
// engine type the platform does not know how to draw.
func viewFor(e hub.Engine) gameView {
	switch g := e.(type) {
	case *snake.Engine:
		return newSnakeView(g)
	case *simon.Engine:
		return newSimonView(g)
	case *memory.Engine:
		return newMemoryView(g)
	}
	return nil
}
