package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/pile"
)

// ErrInvalidDeck is returned when a deck is not exactly one of each of the 52 cards
var ErrInvalidDeck = errors.New("invalid deck")

// ErrTableNotEmpty is returned when dealing onto a table that already holds cards
var ErrTableNotEmpty = errors.New("table is not empty")

// TableauCards is the number of cards the opening deal places on the tableau
const TableauCards = pile.TableauCount * (pile.TableauCount + 1) / 2

// NewRand returns the random source used for a seeded deal
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Build returns the 52 cards in suit/rank order, shuffled with rng.
// rng is the only source of randomness, so equal seeds give equal decks.
func Build(rng *rand.Rand) []card.ID {
	cards := make([]card.ID, 0, card.DeckSize)
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			cards = append(cards, card.New(s, r))
		}
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// Check verifies the deck holds every card exactly once
func Check(cards []card.ID) error {
	if len(cards) != card.DeckSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrInvalidDeck, len(cards), card.DeckSize)
	}

	var seen [card.DeckSize]bool
	for _, id := range cards {
		if !id.Valid() {
			return fmt.Errorf("%w: unknown card id %d", ErrInvalidDeck, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate %s", ErrInvalidDeck, id)
		}
		seen[id] = true
	}
	return nil
}

// Deal lays out the Klondike opening: tableau column i gets i+1 cards with
// only the last one face up, and the remaining 24 cards go face down to the
// stock in deck order.
func Deal(cards []card.ID, t *pile.Table) error {
	if err := Check(cards); err != nil {
		return err
	}
	if n := t.CardCount(); n != 0 {
		return fmt.Errorf("%w: %d cards already placed", ErrTableNotEmpty, n)
	}

	// One card to each column that still needs one, row by row
	idx := 0
	for row := 0; row < pile.TableauCount; row++ {
		for col := row; col < pile.TableauCount; col++ {
			id := cards[idx]
			idx++
			t.Arena.SetFaceUp(id, row == col)
			t.Tableau[col].AddCards(id)
		}
	}

	rest := cards[idx:]
	for _, id := range rest {
		t.Arena.SetFaceUp(id, false)
	}
	t.Stock.AddCards(rest...)
	return nil
}
