package memory

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/trio-arcade/trio/internal/core"
	"github.com/trio-arcade/trio/internal/hub"
)

// Deck size limits. Values outside the range are clamped, not rejected.
const (
	MinPairs     = 2
	MaxPairs     = 12
	DefaultPairs = 8
)

// Fixed internal timings.
const (
	revealDuration = 2 * time.Second
	flipBackDelay  = time.Second
)

// Status messages shown by the shell.
const (
	msgMemorize   = "Memorize the cards"
	msgPick       = "Pick a card"
	msgPickSecond = "Pick another card"
	msgMatch      = "A match!"
	msgNoMatch    = "No match"
)

// Config holds the tunable parameters accepted at construction.
type Config struct {
	Pairs int
	Set   ContentSet
	Seed  int64 // 0 derives a seed from the clock on the first reset
}

// DefaultConfig returns an 8-pair symbol deck.
func DefaultConfig() Config {
	return Config{Pairs: DefaultPairs, Set: SetSymbols}
}

// normalize clamps the pair count into [MinPairs, MaxPairs] and falls back
// to the symbol palette for unknown sets.
func (c Config) normalize() Config {
	c.Pairs = core.Clamp(c.Pairs, MinPairs, MaxPairs)
	if c.Set != SetEmojis {
		c.Set = SetSymbols
	}
	return c
}

// Engine implements the Memory game: a shuffled deck of content pairs is
// briefly revealed, then the player uncovers two cards per move. Mismatched
// pairs flip back after a delay; an impatient tap resolves the flip-back
// early instead of leaving three cards exposed.
type Engine struct {
	cfg Config
	rng *rand.Rand

	cards    []Card
	firstIdx int // index of the lone face-up unmatched card, -1 when none
	score    int
	moves    int

	phase    Phase
	message  string
	gameOver bool

	running   bool
	stoppedAt time.Time

	revealTimer  core.Timer
	flipTimer    core.Timer
	flipA, flipB int // indices pending flip-back while flipTimer is armed

	feed core.Feed[Snapshot]
}

// Package-level config, applied by the platform before engines are created
// through the hub. Guarded because config reloads race against SSH
// sessions spawning engines.
var (
	activeMu sync.Mutex
	active   = DefaultConfig()
)

// Configure replaces the configuration used by subsequent New calls.
func Configure(cfg Config) {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = cfg.normalize()
}

// New creates a Memory engine with the platform-configured settings.
func New() *Engine {
	activeMu.Lock()
	cfg := active
	activeMu.Unlock()
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Memory engine with an explicit configuration.
func NewWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg.normalize(), firstIdx: -1, phase: PhaseIdle}
}

func init() {
	hub.Register("memory", func() hub.Engine {
		return New()
	})
}

// ID returns the engine identifier.
func (e *Engine) ID() string {
	return "memory"
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Memory"
}

// Config returns the normalized configuration in effect.
func (e *Engine) Config() Config {
	return e.cfg
}

// Reset deals a fresh shuffled deck at now, discarding any pending reveal or
// flip-back, and opens the reveal-all window.
func (e *Engine) Reset(now time.Time) {
	if e.rng == nil {
		seed := e.cfg.Seed
		if seed == 0 {
			seed = now.UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}

	e.revealTimer.Disarm()
	e.flipTimer.Disarm()

	e.buildDeck()
	e.firstIdx = -1
	e.score = 0
	e.moves = 0
	e.gameOver = false
	e.phase = PhaseReveal
	e.message = msgMemorize
	e.revealTimer.Arm(now.Add(revealDuration))

	e.running = true
	e.stoppedAt = time.Time{}
	e.publish()
}

// Start reattaches the engine to the clock, shifting the pending reveal or
// flip-back deadline by the stopped span.
func (e *Engine) Start(now time.Time) {
	if e.running {
		return
	}
	e.running = true
	if !e.stoppedAt.IsZero() {
		d := now.Sub(e.stoppedAt)
		e.revealTimer.Shift(d)
		e.flipTimer.Shift(d)
		e.stoppedAt = time.Time{}
	}
	e.publish()
}

// Stop detaches the engine from the clock, freezing any pending deadline.
func (e *Engine) Stop(now time.Time) {
	if !e.running {
		return
	}
	e.running = false
	e.stoppedAt = now
	e.publish()
}

// Advance fires whichever deadline has passed by now. At most one timer is
// armed at a time: the reveal during the reveal phase, the flip-back during
// play.
func (e *Engine) Advance(now time.Time) {
	if !e.running {
		return
	}
	if _, ok := e.revealTimer.Fire(now); ok {
		e.concealAll()
	}
	if _, ok := e.flipTimer.Fire(now); ok {
		e.flipDownPending()
	}
}

// TapCard uncovers the card with the given id. Taps are ignored for unknown
// ids, face-up or matched cards, and after the game is over; during the
// reveal phase every card is face-up, so taps fall out naturally. A valid
// tap that arrives while a mismatched pair is still exposed resolves the
// pending flip-back immediately, keeping at most one loose card face-up.
func (e *Engine) TapCard(now time.Time, id string) {
	if e.gameOver {
		return
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return
	}
	card := &e.cards[idx]
	if card.FaceUp || card.Matched {
		return
	}

	if e.flipTimer.Armed() {
		e.flipTimer.Disarm()
		e.cards[e.flipA].FaceUp = false
		e.cards[e.flipB].FaceUp = false
	}

	card.FaceUp = true

	if e.firstIdx < 0 {
		e.firstIdx = idx
		e.message = msgPickSecond
		e.publish()
		return
	}

	first := e.firstIdx
	e.firstIdx = -1
	e.moves++

	if e.cards[first].Content == card.Content {
		e.cards[first].Matched = true
		card.Matched = true
		e.score++
		if e.allMatched() {
			e.gameOver = true
			e.phase = PhaseWon
			e.message = fmt.Sprintf("All %d pairs found in %d moves", e.cfg.Pairs, e.moves)
		} else {
			e.message = msgMatch
		}
	} else {
		e.flipA, e.flipB = first, idx
		e.flipTimer.Arm(now.Add(flipBackDelay))
		e.message = msgNoMatch
	}
	e.publish()
}

// concealAll ends the reveal phase: every unmatched card flips face-down
// and input opens.
func (e *Engine) concealAll() {
	for i := range e.cards {
		if !e.cards[i].Matched {
			e.cards[i].FaceUp = false
		}
	}
	e.phase = PhasePlay
	e.message = msgPick
	e.publish()
}

// flipDownPending puts an exposed mismatched pair back face-down.
func (e *Engine) flipDownPending() {
	e.cards[e.flipA].FaceUp = false
	e.cards[e.flipB].FaceUp = false
	e.message = msgPick
	e.publish()
}

func (e *Engine) indexOf(id string) int {
	for i := range e.cards {
		if e.cards[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) allMatched() bool {
	for i := range e.cards {
		if !e.cards[i].Matched {
			return false
		}
	}
	return true
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
