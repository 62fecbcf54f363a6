package snake

import (
	"testing"
	"time"

	"github.com/trio-arcade/trio/internal/core"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// advanceTicks drives the engine tick by tick and returns the clock after
// the last one.
func advanceTicks(e *Engine, from time.Time, n int) time.Time {
	now := from
	for range n {
		now = now.Add(e.Config().TickInterval)
		e.Advance(now)
	}
	return now
}

func TestLengthTracksScore(t *testing.T) {
	e := NewWithConfig(Config{Seed: 12345})

	// The invariant must hold on every published state, not just at the
	// end of the run.
	e.Subscribe(func(s Snapshot) {
		if len(s.Body) != initialLength+s.Score {
			t.Errorf("len(body) = %d with score %d, expected %d",
				len(s.Body), s.Score, initialLength+s.Score)
		}
	})

	// Walk a small square loop so the run survives long enough to eat.
	e.Reset(t0)
	now := t0
	turns := []Direction{DirDown, DirLeft, DirUp, DirRight}
	for i := range 200 {
		if i%3 == 0 {
			e.SetDirection(turns[(i/3)%len(turns)])
		}
		now = advanceTicks(e, now, 1)
		if e.Snapshot().GameOver() {
			break
		}
	}
}

func TestNoImmediateReversal(t *testing.T) {
	e := NewWithConfig(Config{Seed: 42})
	e.Reset(t0)

	if e.Snapshot().Dir != DirRight {
		t.Fatalf("initial direction = %v, expected right", e.Snapshot().Dir)
	}

	// Left is the exact opposite of the current direction: rejected.
	e.SetDirection(DirLeft)
	head := e.Snapshot().Head()
	advanceTicks(e, t0, 1)
	if got := e.Snapshot().Head(); got != head.Add(1, 0) {
		t.Errorf("head = %+v after rejected reversal, expected %+v", got, head.Add(1, 0))
	}
	if e.Snapshot().Dir != DirRight {
		t.Errorf("direction = %v after rejected reversal, expected right", e.Snapshot().Dir)
	}

	// With a pending turn buffered, reversal is judged against the buffer.
	e.SetDirection(DirDown)
	e.SetDirection(DirUp) // opposite of the pending down: rejected
	advanceTicks(e, t0.Add(e.Config().TickInterval), 1)
	if e.Snapshot().Dir != DirDown {
		t.Errorf("direction = %v, expected the buffered down to apply", e.Snapshot().Dir)
	}
}

func TestStraightRunAdvancesThreeCells(t *testing.T) {
	e := NewWithConfig(Config{Columns: 16, Rows: 24, Seed: 1})
	e.Reset(t0)
	e.food = core.Point{X: 0, Y: 0} // keep the runway clear

	start := e.Snapshot().Head()
	advanceTicks(e, t0, 3)

	snap := e.Snapshot()
	if got := snap.Head(); got != start.Add(3, 0) {
		t.Errorf("head = %+v after 3 ticks, expected %+v", got, start.Add(3, 0))
	}
	if snap.Score != 0 {
		t.Errorf("score = %d after a straight run, expected 0", snap.Score)
	}
	if len(snap.Body) != initialLength {
		t.Errorf("len(body) = %d, expected %d", len(snap.Body), initialLength)
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	e := NewWithConfig(Config{Columns: 16, Rows: 24, Seed: 1})
	e.Reset(t0)
	e.food = core.Point{X: 0, Y: 0}

	// Head starts at x=9 heading right; the 7th tick walks off x=15.
	now := advanceTicks(e, t0, 7)

	snap := e.Snapshot()
	if !snap.GameOver() {
		t.Fatal("expected game over after running into the wall")
	}
	frozen := snap.Head()

	// Terminal state: further ticks change nothing.
	advanceTicks(e, now, 5)
	if got := e.Snapshot().Head(); got != frozen {
		t.Errorf("head moved after game over: %+v -> %+v", frozen, got)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	e := NewWithConfig(Config{Seed: 1})
	e.Reset(t0)
	e.food = core.Point{X: 0, Y: 0}

	// Two quick turns within one tick: the second is valid against the
	// buffered down, so the buffer ends up holding left and the next tick
	// folds the head straight into the neck.
	e.SetDirection(DirDown)
	e.SetDirection(DirLeft)
	advanceTicks(e, t0, 1)

	if !e.Snapshot().GameOver() {
		t.Error("expected game over after folding into the body")
	}
}

func TestInputIgnoredAfterGameOver(t *testing.T) {
	e := NewWithConfig(Config{Seed: 1})
	e.Reset(t0)
	e.food = core.Point{X: 0, Y: 0}
	advanceTicks(e, t0, 50) // plenty to hit the right wall

	if !e.Snapshot().GameOver() {
		t.Fatal("expected game over")
	}
	dir := e.Snapshot().Dir
	e.SetDirection(DirDown)
	if e.Snapshot().Dir != dir {
		t.Error("direction input accepted after game over")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := Config{Seed: 12345, TickInterval: 100 * time.Millisecond}

	e1 := NewWithConfig(cfg)
	e2 := NewWithConfig(cfg)
	e1.Reset(t0)
	e2.Reset(t0)

	for i := range 200 {
		switch i {
		case 20:
			e1.SetDirection(DirDown)
			e2.SetDirection(DirDown)
		case 40:
			e1.SetDirection(DirLeft)
			e2.SetDirection(DirLeft)
		case 60:
			e1.SetDirection(DirUp)
			e2.SetDirection(DirUp)
		case 80:
			e1.SetDirection(DirRight)
			e2.SetDirection(DirRight)
		}
		now := t0.Add(time.Duration(i+1) * cfg.TickInterval)
		e1.Advance(now)
		e2.Advance(now)
	}

	s1, s2 := e1.Snapshot(), e2.Snapshot()
	if s1.Score != s2.Score {
		t.Errorf("score mismatch: %d vs %d", s1.Score, s2.Score)
	}
	if s1.Dir != s2.Dir {
		t.Errorf("direction mismatch: %v vs %v", s1.Dir, s2.Dir)
	}
	if s1.Food != s2.Food {
		t.Errorf("food mismatch: %+v vs %+v", s1.Food, s2.Food)
	}
	if len(s1.Body) != len(s2.Body) {
		t.Fatalf("body length mismatch: %d vs %d", len(s1.Body), len(s2.Body))
	}
	for i := range s1.Body {
		if s1.Body[i] != s2.Body[i] {
			t.Errorf("body[%d] mismatch: %+v vs %+v", i, s1.Body[i], s2.Body[i])
		}
	}
}

func TestConfigClamping(t *testing.T) {
	e := NewWithConfig(Config{Columns: 1, Rows: 3, TickInterval: -time.Second})

	cfg := e.Config()
	if cfg.Columns != MinColumns {
		t.Errorf("Columns = %d, expected clamp to %d", cfg.Columns, MinColumns)
	}
	if cfg.Rows != MinRows {
		t.Errorf("Rows = %d, expected clamp to %d", cfg.Rows, MinRows)
	}
	if cfg.TickInterval != DefaultTickInterval {
		t.Errorf("TickInterval = %v, expected default %v", cfg.TickInterval, DefaultTickInterval)
	}
}

func TestStopFreezesAndStartResumes(t *testing.T) {
	e := NewWithConfig(Config{Seed: 9, TickInterval: 100 * time.Millisecond})
	e.Reset(t0)
	e.food = core.Point{X: 0, Y: 0}

	e.Advance(t0.Add(100 * time.Millisecond))
	head := e.Snapshot().Head()

	// Stopped: a long span of wall time must not move the snake.
	e.Stop(t0.Add(100 * time.Millisecond))
	e.Advance(t0.Add(1 * time.Second))
	if got := e.Snapshot().Head(); got != head {
		t.Fatalf("head moved while stopped: %+v -> %+v", head, got)
	}
	if e.Snapshot().Running {
		t.Error("snapshot should report not running after Stop")
	}

	// Resuming credits the stopped span: the next tick is due one full
	// interval after resume, not immediately.
	e.Start(t0.Add(1 * time.Second))
	e.Advance(t0.Add(1050 * time.Millisecond))
	if got := e.Snapshot().Head(); got != head {
		t.Fatalf("tick fired too early after resume")
	}
	e.Advance(t0.Add(1100 * time.Millisecond))
	if got := e.Snapshot().Head(); got != head.Add(1, 0) {
		t.Errorf("head = %+v after resume tick, expected %+v", got, head.Add(1, 0))
	}
}

func TestResetDropsPendingSchedule(t *testing.T) {
	e := NewWithConfig(Config{Columns: 16, Rows: 24, Seed: 9, TickInterval: 100 * time.Millisecond})
	e.Reset(t0)

	// Let the schedule run a while, then reset mid-interval.
	advanceTicks(e, t0, 5)
	resetAt := t0.Add(550 * time.Millisecond)
	e.Reset(resetAt)

	head := e.Snapshot().Head()
	e.Advance(resetAt.Add(50 * time.Millisecond))
	if got := e.Snapshot().Head(); got != head {
		t.Error("a tick from the previous game fired after reset")
	}
	e.Advance(resetAt.Add(100 * time.Millisecond))
	if got := e.Snapshot().Head(); got == head {
		t.Error("fresh schedule did not tick one interval after reset")
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	e := NewWithConfig(Config{Columns: 8, Rows: 12, Seed: 7, TickInterval: 100 * time.Millisecond})
	e.Reset(t0)

	// Hand-build a board with a single free cell and the food on it.
	last := core.Point{X: 0, Y: 0}
	body := []core.Point{{X: 1, Y: 0}} // Head, one step from the last cell
	for y := 0; y < 12; y++ {
		for x := 0; x < 8; x++ {
			p := core.Point{X: x, Y: y}
			if p == last || p == body[0] {
				continue
			}
			body = append(body, p)
		}
	}
	e.body = body
	e.score = len(body) - initialLength
	e.food = last
	e.dir = DirLeft
	e.hasPending = false

	e.Advance(t0.Add(100 * time.Millisecond))

	snap := e.Snapshot()
	if !snap.GameOver() {
		t.Fatal("filling the board should end the game")
	}
	if len(snap.Body) != 8*12 {
		t.Errorf("len(body) = %d, expected the full board %d", len(snap.Body), 8*12)
	}
	if snap.Score != len(body)-initialLength+1 {
		t.Errorf("score = %d, expected the final food to count", snap.Score)
	}
	if snap.Food != (core.Point{X: -1, Y: -1}) {
		t.Errorf("food = %+v on a full board, expected {-1 -1}", snap.Food)
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	e := NewWithConfig(Config{Seed: 999})
	e.Reset(t0)

	for range 100 {
		e.spawnFood()

		if e.isSnakeAt(e.food) {
			t.Errorf("food spawned on the snake at %+v", e.food)
		}
		if !e.food.In(e.cfg.Columns, e.cfg.Rows) {
			t.Errorf("food spawned out of bounds at %+v", e.food)
		}
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	e := NewWithConfig(Config{Seed: 5})
	e.Reset(t0)

	snap := e.Snapshot()
	snap.Body[0] = core.Point{X: -99, Y: -99}

	if e.Snapshot().Head() == (core.Point{X: -99, Y: -99}) {
		t.Error("mutating a snapshot leaked into engine state")
	}
}

func TestSubscribeSeesEveryTick(t *testing.T) {
	e := NewWithConfig(Config{Columns: 16, Rows: 24, Seed: 3, TickInterval: 100 * time.Millisecond})

	var published int
	cancel := e.Subscribe(func(Snapshot) { published++ })

	e.Reset(t0) // publish 1
	e.food = core.Point{X: 0, Y: 0}
	advanceTicks(e, t0, 3) // publishes 2..4

	if published != 4 {
		t.Errorf("published %d snapshots, expected 4", published)
	}

	cancel()
	advanceTicks(e, t0.Add(300*time.Millisecond), 1)
	if published != 4 {
		t.Error("snapshot delivered after cancel")
	}
}
