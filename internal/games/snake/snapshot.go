package snake

import "github.com/trio-arcade/trio/internal/core"

// Phase labels the coarse engine state for HUDs and scoreboards.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Snapshot is the read-only view of the engine state, published after every
// change. Slices are copies; holding a snapshot never aliases live state.
type Snapshot struct {
	Columns int
	Rows    int
	Body    []core.Point // Head at index 0
	Dir     Direction
	Food    core.Point // {-1, -1} when the board is full
	Score   int
	Phase   Phase
	Running bool
}

// GameOver reports whether the snapshot shows a finished game.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Head returns the snake's head position.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}

// Snapshot returns the current state as an independent copy.
func (e *Engine) Snapshot() Snapshot {
	body := make([]core.Point, len(e.body))
	copy(body, e.body)

	phase := PhasePlaying
	if e.gameOver {
		phase = PhaseGameOver
	}

	return Snapshot{
		Columns: e.cfg.Columns,
		Rows:    e.cfg.Rows,
		Body:    body,
		Dir:     e.dir,
		Food:    e.food,
		Score:   e.score,
		Phase:   phase,
		Running: e.running,
	}
}
