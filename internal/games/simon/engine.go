package simon

import (
	"math/rand"
	"time"

	"github.com/trio-arcade/trio/internal/core"
	"github.com/trio-arcade/trio/internal/hub"
)

// Pad identifies one of the four colored buttons.
type Pad int

const (
	PadGreen Pad = iota
	PadRed
	PadYellow
	PadBlue
)

// PadNone marks the absence of a highlighted pad in snapshots.
const PadNone Pad = -1

const padCount = 4

func (p Pad) String() string {
	switch p {
	case PadGreen:
		return "green"
	case PadRed:
		return "red"
	case PadYellow:
		return "yellow"
	case PadBlue:
		return "blue"
	case PadNone:
		return "none"
	default:
		return "unknown"
	}
}

// Pacing is fixed and internal; Simon exposes no configuration.
const (
	initialNote  = 500 * time.Millisecond
	initialGap   = 200 * time.Millisecond
	roundPause   = 800 * time.Millisecond
	tapHighlight = 250 * time.Millisecond

	rampEvery  = 4 // completed rounds between speed-ups
	rampFactor = 0.85
	minGap     = 120 * time.Millisecond
)

// Engine implements the Simon game: a growing pad sequence is played back
// note by note, then the player must repeat it. Playback and all short
// delays run on single-slot timers armed against the caller's clock; each
// follow-up is armed from the previous scheduled target, so playback pacing
// is exact regardless of how often Advance is polled.
type Engine struct {
	rng *rand.Rand

	sequence []Pad
	progress int // correctly replayed taps this round
	score    int

	phase     Phase
	accepting bool
	gameOver  bool
	running   bool
	stoppedAt time.Time

	note time.Duration
	gap  time.Duration

	// Playback cursor: sequence[playIdx] is lit while lit is true.
	playIdx int
	lit     bool

	highlight Pad // currently shown pad, PadNone when dark

	playTimer  core.Timer // next playback step
	pauseTimer core.Timer // inter-round pause
	flashTimer core.Timer // tap feedback decay

	feed core.Feed[Snapshot]
}

// New creates a Simon engine. The sequence RNG is seeded from the clock on
// the first reset.
func New() *Engine {
	return &Engine{phase: PhaseIdle, highlight: PadNone}
}

// newSeeded is the test constructor: a fixed seed makes the pad sequence
// reproducible.
func newSeeded(seed int64) *Engine {
	e := New()
	e.rng = rand.New(rand.NewSource(seed))
	return e
}

func init() {
	hub.Register("simon", func() hub.Engine {
		return New()
	})
}

// ID returns the engine identifier.
func (e *Engine) ID() string {
	return "simon"
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Simon"
}

// Reset starts a fresh game at now: sequence and score cleared, pacing back
// to the initial durations, every pending timer cancelled, and the first
// turn begins immediately.
func (e *Engine) Reset(now time.Time) {
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(now.UnixNano()))
	}

	e.playTimer.Disarm()
	e.pauseTimer.Disarm()
	e.flashTimer.Disarm()

	e.sequence = e.sequence[:0]
	e.progress = 0
	e.score = 0
	e.gameOver = false
	e.note = initialNote
	e.gap = initialGap
	e.running = true
	e.stoppedAt = time.Time{}

	e.beginTurn(now)
}

// Start reattaches the engine to the clock, shifting every pending deadline
// by the stopped span so playback resumes exactly where it froze.
func (e *Engine) Start(now time.Time) {
	if e.running {
		return
	}
	e.running = true
	if !e.stoppedAt.IsZero() {
		d := now.Sub(e.stoppedAt)
		e.playTimer.Shift(d)
		e.pauseTimer.Shift(d)
		e.flashTimer.Shift(d)
		e.stoppedAt = time.Time{}
	}
	e.publish()
}

// Stop detaches the engine from the clock, freezing playback and any
// pending pause mid-flight.
func (e *Engine) Stop(now time.Time) {
	if !e.running {
		return
	}
	e.running = false
	e.stoppedAt = now
	e.publish()
}

// Advance fires every deadline that has passed by now, in order. A late
// poll fast-forwards through all overdue playback steps.
func (e *Engine) Advance(now time.Time) {
	if !e.running {
		return
	}
	for e.advanceOnce(now) {
	}
}

// advanceOnce services at most one deadline per timer and reports whether
// anything fired.
func (e *Engine) advanceOnce(now time.Time) bool {
	fired := false
	if _, ok := e.flashTimer.Fire(now); ok {
		e.highlight = PadNone
		e.publish()
		fired = true
	}
	if e.gameOver {
		return fired
	}
	switch e.phase {
	case PhasePlayback:
		if at, ok := e.playTimer.Fire(now); ok {
			e.playbackStep(at)
			fired = true
		}
	case PhaseRoundPause:
		if at, ok := e.pauseTimer.Fire(now); ok {
			e.beginTurn(at)
			fired = true
		}
	}
	return fired
}

// beginTurn appends one random pad and starts playback from the top of the
// sequence: the first pad lights now, the next step is due one note later.
func (e *Engine) beginTurn(now time.Time) {
	e.flashTimer.Disarm()
	e.sequence = append(e.sequence, Pad(e.rng.Intn(padCount)))
	e.progress = 0
	e.accepting = false
	e.phase = PhasePlayback
	e.playIdx = 0
	e.lit = true
	e.highlight = e.sequence[0]
	e.playTimer.Arm(now.Add(e.note))
	e.publish()
}

// playbackStep alternates lit and dark. Arming from the scheduled target
// (base) rather than the poll time keeps the note/gap lattice exact.
func (e *Engine) playbackStep(base time.Time) {
	if e.lit {
		// Note over: go dark for the gap.
		e.lit = false
		e.highlight = PadNone
		e.playTimer.Arm(base.Add(e.gap))
		e.publish()
		return
	}

	e.playIdx++
	if e.playIdx < len(e.sequence) {
		e.lit = true
		e.highlight = e.sequence[e.playIdx]
		e.playTimer.Arm(base.Add(e.note))
		e.publish()
		return
	}

	// Sequence fully replayed: open the input gate.
	e.phase = PhaseAwaitInput
	e.accepting = true
	e.publish()
}

// Tap evaluates one pad press at now. Presses are ignored while the input
// gate is closed (playback, inter-round pause, game over). Correctness is
// judged synchronously; only the feedback highlight is time-delayed, so
// rapid taps can never desynchronize progress.
func (e *Engine) Tap(now time.Time, pad Pad) {
	if e.gameOver || !e.accepting {
		return
	}
	if pad < 0 || pad >= padCount {
		return
	}

	// Feedback flash, independent of the verdict.
	e.highlight = pad
	e.flashTimer.Arm(now.Add(tapHighlight))

	if pad != e.sequence[e.progress] {
		e.fail()
		return
	}

	e.progress++
	if e.progress < len(e.sequence) {
		e.publish()
		return
	}

	// Round complete.
	e.score++
	e.accepting = false
	if e.score%rampEvery == 0 {
		e.note = time.Duration(float64(e.note) * rampFactor)
		e.gap = max(minGap, time.Duration(float64(e.gap)*rampFactor))
	}
	e.phase = PhaseRoundPause
	e.pauseTimer.Arm(now.Add(roundPause))
	e.publish()
}

// fail enters the terminal state. In-flight playback and pause schedules
// are dropped; the feedback flash of the losing tap is left to decay so the
// player sees what they pressed.
func (e *Engine) fail() {
	e.gameOver = true
	e.accepting = false
	e.phase = PhaseGameOver
	e.playTimer.Disarm()
	e.pauseTimer.Disarm()
	e.publish()
}

// Status returns the platform-facing summary.
func (e *Engine) Status() hub.Status {
	return hub.Status{
		Score:    e.score,
		Phase:    string(e.phase),
		GameOver: e.gameOver,
		Running:  e.running,
	}
}

// Subscribe registers fn to receive a snapshot after every state change.
func (e *Engine) Subscribe(fn func(Snapshot)) func() {
	return e.feed.Subscribe(fn)
}

func (e *Engine) publish() {
	e.feed.Publish(e.Snapshot())
}
