package memory

import (
	"strings"
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// dealt returns an engine past its reveal phase, ready for taps, plus the
// clock at that moment.
func dealt(t *testing.T, seed int64, pairs int) (*Engine, time.Time) {
	t.Helper()
	e := NewWithConfig(Config{Pairs: pairs, Seed: seed})
	e.Reset(t0)
	now := t0.Add(revealDuration)
	e.Advance(now)
	if e.phase != PhasePlay {
		t.Fatalf("phase = %q after the reveal window, expected play", e.phase)
	}
	return e, now
}

// findPair returns the first two card indices whose contents are equal
// (equal=true) or differ (equal=false).
func findPair(e *Engine, equal bool) (int, int) {
	for i := 0; i < len(e.cards); i++ {
		for j := i + 1; j < len(e.cards); j++ {
			if (e.cards[i].Content == e.cards[j].Content) == equal {
				return i, j
			}
		}
	}
	return -1, -1
}

func TestDeckComposition(t *testing.T) {
	e := NewWithConfig(Config{Pairs: 8, Seed: 42})
	e.Reset(t0)

	snap := e.Snapshot()
	if len(snap.Cards) != 16 {
		t.Fatalf("deck size = %d for 8 pairs, expected 16", len(snap.Cards))
	}

	perContent := make(map[string]int)
	ids := make(map[string]bool)
	for _, c := range snap.Cards {
		perContent[c.Content]++
		if ids[c.ID] {
			t.Errorf("duplicate card id %q", c.ID)
		}
		ids[c.ID] = true
		if !c.FaceUp {
			t.Error("cards must start face-up for the reveal")
		}
		if c.Matched {
			t.Error("cards must start unmatched")
		}
	}
	if len(perContent) != 8 {
		t.Errorf("deck has %d distinct contents, expected 8", len(perContent))
	}
	for content, n := range perContent {
		if n != 2 {
			t.Errorf("content %q appears %d times, expected 2", content, n)
		}
	}
	if snap.Phase != PhaseReveal {
		t.Errorf("phase = %q after deal, expected reveal", snap.Phase)
	}
}

func TestRevealConcealsAfterFixedWindow(t *testing.T) {
	e := NewWithConfig(Config{Pairs: 4, Seed: 1})
	e.Reset(t0)

	e.Advance(t0.Add(revealDuration - time.Millisecond))
	for _, c := range e.Snapshot().Cards {
		if !c.FaceUp {
			t.Fatal("card concealed before the reveal window closed")
		}
	}

	e.Advance(t0.Add(revealDuration))
	snap := e.Snapshot()
	if snap.Phase != PhasePlay {
		t.Fatalf("phase = %q at the reveal boundary, expected play", snap.Phase)
	}
	for _, c := range snap.Cards {
		if c.FaceUp {
			t.Error("card still face-up after the reveal window")
		}
	}
	if snap.Message != msgPick {
		t.Errorf("message = %q, expected %q", snap.Message, msgPick)
	}
}

func TestTapIgnoredDuringReveal(t *testing.T) {
	e := NewWithConfig(Config{Pairs: 4, Seed: 2})
	e.Reset(t0)

	e.TapCard(t0.Add(time.Millisecond), e.cards[0].ID)
	if e.moves != 0 || e.firstIdx != -1 {
		t.Error("tap during the reveal phase must be ignored")
	}
}

func TestMatchedPairScores(t *testing.T) {
	e, now := dealt(t, 7, 4)
	i, j := findPair(e, true)

	e.TapCard(now.Add(10*time.Millisecond), e.cards[i].ID)
	snap := e.Snapshot()
	if snap.Moves != 0 {
		t.Errorf("moves = %d after a single tap, expected 0", snap.Moves)
	}
	if snap.Message != msgPickSecond {
		t.Errorf("message = %q, expected %q", snap.Message, msgPickSecond)
	}

	e.TapCard(now.Add(20*time.Millisecond), e.cards[j].ID)
	snap = e.Snapshot()
	if !snap.Cards[i].Matched || !snap.Cards[j].Matched {
		t.Error("both cards of an equal-content pair must be marked matched")
	}
	if snap.Score != 1 {
		t.Errorf("score = %d after one match, expected 1", snap.Score)
	}
	if snap.Moves != 1 {
		t.Errorf("moves = %d after two taps, expected 1", snap.Moves)
	}
}

func TestMismatchFlipsBackAfterDelay(t *testing.T) {
	e, now := dealt(t, 11, 4)
	i, j := findPair(e, false)

	e.TapCard(now.Add(10*time.Millisecond), e.cards[i].ID)
	tapTwo := now.Add(20 * time.Millisecond)
	e.TapCard(tapTwo, e.cards[j].ID)

	snap := e.Snapshot()
	if snap.Cards[i].Matched || snap.Cards[j].Matched {
		t.Fatal("mismatched cards must stay unmatched")
	}
	if !snap.Cards[i].FaceUp || !snap.Cards[j].FaceUp {
		t.Fatal("mismatched cards stay exposed until the flip-back fires")
	}
	if snap.Moves != 1 {
		t.Errorf("moves = %d after the comparison, expected 1", snap.Moves)
	}
	if snap.Message != msgNoMatch {
		t.Errorf("message = %q, expected %q", snap.Message, msgNoMatch)
	}

	e.Advance(tapTwo.Add(flipBackDelay - time.Millisecond))
	if s := e.Snapshot(); !s.Cards[i].FaceUp || !s.Cards[j].FaceUp {
		t.Fatal("flip-back fired before its delay elapsed")
	}
	e.Advance(tapTwo.Add(flipBackDelay))
	if s := e.Snapshot(); s.Cards[i].FaceUp || s.Cards[j].FaceUp {
		t.Error("mismatched pair should flip face-down after the delay")
	}
}

func TestTapResolvesPendingFlipBackEarly(t *testing.T) {
	e, now := dealt(t, 13, 4)
	i, j := findPair(e, false)

	e.TapCard(now.Add(10*time.Millisecond), e.cards[i].ID)
	e.TapCard(now.Add(20*time.Millisecond), e.cards[j].ID)

	// Third tap lands before the flip-back delay: the exposed pair must
	// flip down immediately, leaving only the new selection face-up.
	var third int
	for k := range e.cards {
		if k != i && k != j {
			third = k
			break
		}
	}
	e.TapCard(now.Add(100*time.Millisecond), e.cards[third].ID)

	if e.flipTimer.Armed() {
		t.Error("flip-back timer still armed after being superseded")
	}
	faceUp := 0
	for _, c := range e.Snapshot().Cards {
		if c.FaceUp && !c.Matched {
			faceUp++
		}
	}
	if faceUp != 1 {
		t.Errorf("%d unmatched cards face-up after the superseding tap, expected 1", faceUp)
	}
	if e.firstIdx != third {
		t.Error("the superseding tap should stand as the new first selection")
	}
}

func TestWinWhenAllMatched(t *testing.T) {
	e, now := dealt(t, 5, 2)

	byContent := make(map[string][]string)
	for _, c := range e.cards {
		byContent[c.Content] = append(byContent[c.Content], c.ID)
	}

	n := 0
	for _, ids := range byContent {
		if e.gameOver {
			t.Fatal("game over before the last pair was matched")
		}
		n++
		now = now.Add(10 * time.Millisecond)
		e.TapCard(now, ids[0])
		now = now.Add(10 * time.Millisecond)
		e.TapCard(now, ids[1])
	}

	snap := e.Snapshot()
	if !snap.GameOver() {
		t.Fatal("matching every pair must end the game")
	}
	if snap.Phase != PhaseWon {
		t.Errorf("phase = %q, expected won", snap.Phase)
	}
	if snap.Score != 2 || snap.Moves != 2 {
		t.Errorf("score = %d moves = %d, expected 2 and 2", snap.Score, snap.Moves)
	}
	if !strings.Contains(snap.Message, "2 pairs") {
		t.Errorf("message = %q, expected the pair count in it", snap.Message)
	}

	// Terminal: nothing changes on further taps.
	e.TapCard(now.Add(time.Second), e.cards[0].ID)
	if e.Snapshot().Moves != 2 {
		t.Error("tap accepted after the game ended")
	}
}

func TestResetCancelsPendingFlipBack(t *testing.T) {
	e, now := dealt(t, 17, 4)
	i, j := findPair(e, false)
	e.TapCard(now.Add(10*time.Millisecond), e.cards[i].ID)
	e.TapCard(now.Add(20*time.Millisecond), e.cards[j].ID)
	if !e.flipTimer.Armed() {
		t.Fatal("expected a pending flip-back before reset")
	}

	resetAt := now.Add(100 * time.Millisecond)
	e.Reset(resetAt)
	if e.flipTimer.Armed() {
		t.Error("reset left the flip-back timer armed")
	}

	// The old flip-back deadline passing must not touch the fresh deck,
	// which is still mid-reveal.
	e.Advance(now.Add(20*time.Millisecond + flipBackDelay))
	for _, c := range e.Snapshot().Cards {
		if !c.FaceUp {
			t.Fatal("a stale flip-back reached the fresh deck")
		}
	}
}

func TestStopFreezesRevealWindow(t *testing.T) {
	e := NewWithConfig(Config{Pairs: 4, Seed: 23})
	e.Reset(t0)

	e.Stop(t0.Add(500 * time.Millisecond))
	e.Advance(t0.Add(10 * time.Second))
	if e.Snapshot().Phase != PhaseReveal {
		t.Fatal("reveal phase should freeze while stopped")
	}

	// 1.5s of the window remains after resume.
	resume := t0.Add(10 * time.Second)
	e.Start(resume)
	e.Advance(resume.Add(1500*time.Millisecond - time.Millisecond))
	if e.Snapshot().Phase != PhaseReveal {
		t.Fatal("reveal ended early after resume")
	}
	e.Advance(resume.Add(1500 * time.Millisecond))
	if e.Snapshot().Phase != PhasePlay {
		t.Error("reveal should end once its remaining span elapses")
	}
}

func TestDeterministicDealForSeed(t *testing.T) {
	e1 := NewWithConfig(Config{Pairs: 8, Seed: 99})
	e2 := NewWithConfig(Config{Pairs: 8, Seed: 99})
	e1.Reset(t0)
	e2.Reset(t0)

	// Identities are unique per deal; the dealt contents must match.
	for i := range e1.cards {
		if e1.cards[i].Content != e2.cards[i].Content {
			t.Fatalf("card %d content mismatch: %q vs %q", i, e1.cards[i].Content, e2.cards[i].Content)
		}
	}
}

func TestConfigClamping(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		pairs int
		set   ContentSet
	}{
		{"too few pairs", Config{Pairs: 1}, MinPairs, SetSymbols},
		{"too many pairs", Config{Pairs: 99, Set: SetEmojis}, MaxPairs, SetEmojis},
		{"unknown set", Config{Pairs: 6, Set: "marbles"}, 6, SetSymbols},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewWithConfig(tc.cfg).Config()
			if got.Pairs != tc.pairs {
				t.Errorf("Pairs = %d, expected %d", got.Pairs, tc.pairs)
			}
			if got.Set != tc.set {
				t.Errorf("Set = %q, expected %q", got.Set, tc.set)
			}
		})
	}
}

func TestUnknownCardIgnored(t *testing.T) {
	e, now := dealt(t, 29, 4)

	e.TapCard(now.Add(10*time.Millisecond), "not-a-card")
	if e.moves != 0 || e.firstIdx != -1 {
		t.Error("tap on an unknown id must be ignored")
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	e, _ := dealt(t, 31, 4)

	snap := e.Snapshot()
	snap.Cards[0].Matched = true

	if e.cards[0].Matched {
		t.Error("mutating a snapshot leaked into engine state")
	}
}
