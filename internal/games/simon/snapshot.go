package simon

import "time"

// Phase labels the engine state machine for HUDs and gating checks.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhasePlayback   Phase = "playback"
	PhaseAwaitInput Phase = "await_input"
	PhaseRoundPause Phase = "round_pause"
	PhaseGameOver   Phase = "game_over"
)

// Snapshot is the read-only view of the engine state, published after every
// change.
type Snapshot struct {
	Highlight   Pad // PadNone while all pads are dark
	Score       int
	SequenceLen int
	Progress    int
	Accepting   bool
	Phase       Phase
	Note        time.Duration // current pacing, shrinks as rounds complete
	Gap         time.Duration
	Running     bool
}

// GameOver reports whether the snapshot shows a finished game.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Snapshot returns the current state as an independent copy.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Highlight:   e.highlight,
		Score:       e.score,
		SequenceLen: len(e.sequence),
		Progress:    e.progress,
		Accepting:   e.accepting,
		Phase:       e.phase,
		Note:        e.note,
		Gap:         e.gap,
		Running:     e.running,
	}
}
