package pile

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/card"
)

// Kind determines where a pile sits on the table and which stacking rules apply
type Kind uint8

const (
	Tableau Kind = iota
	Foundation
	Stock
	Waste
)

func (k Kind) String() string {
	switch k {
	case Tableau:
		return "tableau"
	case Foundation:
		return "foundation"
	case Stock:
		return "stock"
	case Waste:
		return "waste"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Ref addresses a pile by kind and position among piles of that kind
type Ref struct {
	Kind  Kind
	Index int
}

func (r Ref) String() string {
	if r.Kind == Stock || r.Kind == Waste {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s %d", r.Kind, r.Index+1)
}

// Pile is an ordered stack of cards. Index 0 is the bottom, the last card is the top.
type Pile struct {
	ref   Ref
	cards []card.ID
	arena *Arena
}

// New creates an empty pile whose membership is tracked by arena
func New(kind Kind, index int, arena *Arena) *Pile {
	return &Pile{
		ref:   Ref{Kind: kind, Index: index},
		arena: arena,
	}
}

func (p *Pile) Kind() Kind { return p.ref.Kind }
func (p *Pile) Index() int { return p.ref.Index }
func (p *Pile) Ref() Ref   { return p.ref }
func (p *Pile) Len() int   { return len(p.cards) }
func (p *Pile) Empty() bool {
	return len(p.cards) == 0
}

// Cards returns a copy of the pile, bottom first
func (p *Pile) Cards() []card.ID {
	out := make([]card.ID, len(p.cards))
	copy(out, p.cards)
	return out
}

// IndexOf returns the position of id in the pile or -1
func (p *Pile) IndexOf(id card.ID) int {
	for i, c := range p.cards {
		if c == id {
			return i
		}
	}
	return -1
}

// TopCard returns the most accessible card, if any
func (p *Pile) TopCard() (card.ID, bool) {
	if len(p.cards) == 0 {
		return 0, false
	}
	return p.cards[len(p.cards)-1], true
}

// AddCards appends cards to the top in order and claims them for this pile.
// Stacking legality is the caller's concern.
func (p *Pile) AddCards(ids ...card.ID) {
	for _, id := range ids {
		p.cards = append(p.cards, id)
		p.arena.claim(id, p.ref)
	}
}

// RemoveCardsFrom detaches id and every card above it, returning them in
// their original order. A card not in the pile yields an empty result.
func (p *Pile) RemoveCardsFrom(id card.ID) []card.ID {
	idx := p.IndexOf(id)
	if idx < 0 {
		return []card.ID{}
	}

	group := make([]card.ID, len(p.cards)-idx)
	copy(group, p.cards[idx:])
	p.cards = p.cards[:idx]
	for _, c := range group {
		p.arena.release(c)
	}
	return group
}

func (p *Pile) String() string {
	return fmt.Sprintf("%s (%d cards)", p.ref, len(p.cards))
}
