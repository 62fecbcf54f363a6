package memory

// Phase labels the engine state machine for HUDs and gating checks.
type Phase string

const (
	PhaseIdle   Phase = "idle"
	PhaseReveal Phase = "reveal"
	PhasePlay   Phase = "play"
	PhaseWon    Phase = "won"
)

// Snapshot is the read-only view of the engine state, published after every
// change. The card slice is a copy; holding a snapshot never aliases live
// state.
type Snapshot struct {
	Cards   []Card
	Score   int
	Moves   int
	Pairs   int
	Phase   Phase
	Message string
	Running bool
}

// GameOver reports whether the snapshot shows a finished game. Memory has
// no losing state; the game ends when every pair is matched.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseWon
}

// Snapshot returns the current state as an independent copy.
func (e *Engine) Snapshot() Snapshot {
	cards := make([]Card, len(e.cards))
	copy(cards, e.cards)

	return Snapshot{
		Cards:   cards,
		Score:   e.score,
		Moves:   e.moves,
		Pairs:   e.cfg.Pairs,
		Phase:   e.phase,
		Message: e.message,
		Running: e.running,
	}
}
