package snake

import (
	"math/rand"
	"sync"
	"time"

	"github.com/trio-arcade/trio/internal/core"
	"github.com/trio-arcade/trio/internal/hub"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// opposite returns the reverse of this direction.
func (d Direction) opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// delta returns the per-tick cell offset for this direction.
func (d Direction) delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Grid and pacing limits. Values below the minima are clamped, not rejected.
const (
	MinColumns = 8
	MinRows    = 12

	DefaultColumns      = 16
	DefaultRows         = 24
	DefaultTickInterval = 160 * time.Millisecond

	initialLength = 3
)

// Config holds the tunable parameters accepted at construction.
type Config struct {
	Columns      int
	Rows         int
	TickInterval time.Duration
	Seed         int64 // 0 derives a seed from the clock on the first reset
}

// DefaultConfig returns the standard 16×24 grid at the default pace.
func DefaultConfig() Config {
	return Config{
		Columns:      DefaultColumns,
		Rows:         DefaultRows,
		TickInterval: DefaultTickInterval,
	}
}

// normalize clamps out-of-range values to playable ones.
func (c Config) normalize() Config {
	if c.Columns < MinColumns {
		c.Columns = MinColumns
	}
	if c.Rows < MinRows {
		c.Rows = MinRows
	}
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	return c
}

// Engine implements the Snake game: a periodically ticked grid walk where
// the snake grows by eating food and dies on walls or itself. All timing
// flows in through Reset/Advance; the engine keeps no clock of its own.
type Engine struct {
	cfg Config
	rng *rand.Rand

	body       []core.Point // Head at index 0
	dir        Direction
	pending    Direction // Buffered turn, applied on the next tick
	hasPending bool
	food       core.Point
	score      int

	gameOver  bool
	running   bool
	stoppedAt time.Time

	ticker core.Ticker
	feed   core.Feed[Snapshot]
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

// New creates a Snake engine with the platform-configured settings.
func New() *Engine {
	activeMu.Lock()
	cfg := active
	activeMu.Unlock()
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Snake engine with an explicit configuration.
func NewWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg.normalize()}
}

func init() {
	hub.Register("snake", func() hub.Engine {
		return New()
	})
}

// ID returns the engine identifier.
func (e *Engine) ID() string {
	return "snake"
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Snake"
}

// Config returns the normalized configuration in effect.
func (e *Engine) Config() Config {
	return e.cfg
}

// Reset starts a fresh run at now: a 3-segment snake centered on the grid
// heading right, one food on a free cell, and the tick schedule anchored at
// now. Any previous schedule is discarded.
func (e *Engine) Reset(now time.Time) {
	if e.rng == nil {
		seed := e.cfg.Seed
		if seed == 0 {
			seed = now.UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}

	cx, cy := e.cfg.Columns/2, e.cfg.Rows/2
	e.body = []core.Point{
		{X: cx + 1, Y: cy}, // Head
		{X: cx, Y: cy},
		{X: cx - 1, Y: cy},
	}
	e.dir = DirRight
	e.hasPending = false
	e.score = 0
	e.gameOver = false
	e.spawnFood()

	e.ticker.Start(now, e.cfg.TickInterval)
	e.running = true
	e.stoppedAt = time.Time{}
	e.publish()
}

// Start reattaches the engine to the clock, crediting the stopped span to
// the tick schedule so the cadence resumes where it left off.
func (e *Engine) Start(now time.Time) {
	if e.running {
		return
	}
	e.running = true
	if !e.stoppedAt.IsZero() {
		e.ticker.Shift(now.Sub(e.stoppedAt))
		e.stoppedAt = time.Time{}
	}
	e.publish()
}

// Stop detaches the engine from the clock. While stopped, Advance is a
// no-op and the tick schedule is frozen.
func (e *Engine) Stop(now time.Time) {
	if !e.running {
		return
	}
	e.running = false
	e.stoppedAt = now
	e.publish()
}

// SetDirection buffers a turn to apply on the next tick. The turn is
// ignored if the game is over or if it would reverse the effective
// direction (the pending turn when one is buffered, else the current one).
// Repeated calls before the next tick overwrite the buffer.
func (e *Engine) SetDirection(d Direction) {
	if e.gameOver || len(e.body) == 0 {
		return
	}
	effective := e.dir
	if e.hasPending {
		effective = e.pending
	}
	if d == effective.opposite() {
		return
	}
	e.pending = d
	e.hasPending = true
}

// Advance drives the simulation up to now, one grid step per elapsed tick
// interval. Calling it more or less often changes latency, never outcomes.
func (e *Engine) Advance(now time.Time) {
	if !e.running || e.gameOver {
		return
	}
	for e.ticker.Fire(now) {
		e.step()
		if e.gameOver {
			break
		}
	}
}

// step moves the snake one cell: apply the buffered turn, walk the head,
// then check walls, food and self in that order.
func (e *Engine) step() {
	if e.hasPending {
		e.dir = e.pending
		e.hasPending = false
	}

	dx, dy := e.dir.delta()
	newHead := e.body[0].Add(dx, dy)

	if !newHead.In(e.cfg.Columns, e.cfg.Rows) {
		e.die()
		return
	}

	eats := newHead == e.food

	// Self collision. The tail cell only counts when the snake grows this
	// tick; otherwise it vacates as the head arrives.
	occupied := e.body
	if !eats {
		occupied = e.body[:len(e.body)-1]
	}
	for _, seg := range occupied {
		if seg == newHead {
			e.die()
			return
		}
	}

	e.body = append([]core.Point{newHead}, e.body...)
	if eats {
		e.score++
		e.spawnFood()
	} else {
		e.body = e.body[:len(e.body)-1]
	}
	e.publish()
}

// die enters the terminal state and drops the tick schedule.
func (e *Engine) die() {
	e.gameOver = true
	e.ticker.Stop()
	e.publish()
}

// spawnFood places food uniformly at random on a free cell. A board with no
// free cell left means the snake fills the grid, which ends the game with
// the score standing.
func (e *Engine) spawnFood() {
	var emptyCells []core.Point
	for y := 0; y < e.cfg.Rows; y++ {
		for x := 0; x < e.cfg.Columns; x++ {
			p := core.Point{X: x, Y: y}
			if !e.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		e.food = core.Point{X: -1, Y: -1}
		e.gameOver = true
		e.ticker.Stop()
		return
	}

	e.food = emptyCells[e.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given point.
func (e *Engine) isSnakeAt(p core.Point) bool {
	for _, seg := range e.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Status returns the platform-facing summary.
func (e *Engine) Status() hub.Status {
	phase := PhasePlaying
	if e.gameOver {
		phase = PhaseGameOver
	}
	return hub.Status{
		Score:    e.score,
		Phase:    string(phase),
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
