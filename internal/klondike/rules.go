package klondike

import (
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/pile"
)

// DraggableGroup returns the cards that move together when id is picked up,
// bottom first. An empty result means the card cannot be dragged.
//
// Waste and foundation piles only give up their top card and stock cards are
// never draggable. On the tableau a face-up card drags the whole run above it,
// and only if that run alternates colour and descends one rank at a time.
func (g *Game) DraggableGroup(id card.ID) []card.ID {
	p, ok := g.table.Locate(id)
	if !ok {
		return nil
	}

	switch p.Kind() {
	case pile.Waste, pile.Foundation:
		if top, ok := p.TopCard(); ok && top == id {
			return []card.ID{id}
		}
		return nil
	case pile.Tableau:
		if !g.table.Arena.FaceUp(id) {
			return nil
		}
		cards := p.Cards()
		idx := p.IndexOf(id)
		for i := idx + 1; i < len(cards); i++ {
			if !descendsAlternating(cards[i-1].Card(), cards[i].Card()) {
				return nil
			}
		}
		return cards[idx:]
	default:
		return nil
	}
}

// CanStackOn reports whether a group whose bottom card is bottom may be
// dropped on dest
func CanStackOn(bottom card.Card, dest *pile.Pile) bool {
	switch dest.Kind() {
	case pile.Tableau:
		top, ok := dest.TopCard()
		if !ok {
			return bottom.Rank == card.King
		}
		return descendsAlternating(top.Card(), bottom)
	case pile.Foundation:
		top, ok := dest.TopCard()
		if !ok {
			return bottom.Rank == card.Ace
		}
		t := top.Card()
		return bottom.Suit == t.Suit && int(bottom.Rank) == int(t.Rank)+1
	default:
		return false
	}
}

// descendsAlternating reports whether upper may sit on lower in a tableau run
func descendsAlternating(lower, upper card.Card) bool {
	return lower.Color() != upper.Color() && int(upper.Rank) == int(lower.Rank)-1
}
