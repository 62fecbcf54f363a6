package memory

import "github.com/google/uuid"

// ContentSet selects which palette fills the deck.
type ContentSet string

const (
	SetSymbols ContentSet = "symbols"
	SetEmojis  ContentSet = "emojis"
)

// Each palette holds MaxPairs entries, so any legal pair count can draw
// distinct contents.
var (
	symbolPalette = []string{"◆", "●", "▲", "★", "♠", "♣", "♥", "♦", "☀", "☾", "♪", "⚑"}
	emojiPalette  = []string{"🐶", "🐱", "🦊", "🐼", "🐸", "🦉", "🍀", "🌙", "⭐", "🍎", "🎈", "🎲"}
)

func paletteFor(set ContentSet) []string {
	if set == SetEmojis {
		return emojiPalette
	}
	return symbolPalette
}

// Card is one deck entry. The ID is how the shell refers to a card in
// TapCard; it stays stable for the lifetime of one game and is regenerated
// on every reset.
type Card struct {
	ID      string
	Content string
	FaceUp  bool
	Matched bool
}

// buildDeck draws Pairs distinct contents from the palette, duplicates each
// once and shuffles the result. Cards start face-up for the reveal phase.
func (e *Engine) buildDeck() {
	palette := paletteFor(e.cfg.Set)
	order := e.rng.Perm(len(palette))

	cards := make([]Card, 0, e.cfg.Pairs*2)
	for _, pi := range order[:e.cfg.Pairs] {
		for range 2 {
			cards = append(cards, Card{
				ID:      uuid.NewString(),
				Content: palette[pi],
				FaceUp:  true,
			})
		}
	}
	e.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	e.cards = cards
}
