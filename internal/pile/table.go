package pile

import "github.com/arcanaland/solitaire/internal/card"

const (
	TableauCount    = 7
	FoundationCount = 4
)

// Table is the full set of piles of one Klondike game
type Table struct {
	Arena       *Arena
	Stock       *Pile
	Waste       *Pile
	Foundations [FoundationCount]*Pile
	Tableau     [TableauCount]*Pile
}

// NewTable creates empty piles sharing one arena
func NewTable() *Table {
	arena := NewArena()
	t := &Table{
		Arena: arena,
		Stock: New(Stock, 0, arena),
		Waste: New(Waste, 0, arena),
	}
	for i := range t.Foundations {
		t.Foundations[i] = New(Foundation, i, arena)
	}
	for i := range t.Tableau {
		t.Tableau[i] = New(Tableau, i, arena)
	}
	return t
}

// All returns every pile: stock, waste, foundations, then tableau
func (t *Table) All() []*Pile {
	piles := make([]*Pile, 0, 2+FoundationCount+TableauCount)
	piles = append(piles, t.Stock, t.Waste)
	piles = append(piles, t.Foundations[:]...)
	piles = append(piles, t.Tableau[:]...)
	return piles
}

// Pile resolves a reference, or returns nil for an unknown one
func (t *Table) Pile(ref Ref) *Pile {
	switch ref.Kind {
	case Stock:
		if ref.Index == 0 {
			return t.Stock
		}
	case Waste:
		if ref.Index == 0 {
			return t.Waste
		}
	case Foundation:
		if ref.Index >= 0 && ref.Index < FoundationCount {
			return t.Foundations[ref.Index]
		}
	case Tableau:
		if ref.Index >= 0 && ref.Index < TableauCount {
			return t.Tableau[ref.Index]
		}
	}
	return nil
}

// Locate returns the pile holding id
func (t *Table) Locate(id card.ID) (*Pile, bool) {
	ref, ok := t.Arena.Owner(id)
	if !ok {
		return nil, false
	}
	p := t.Pile(ref)
	return p, p != nil
}

// CardCount is the number of cards across all piles
func (t *Table) CardCount() int {
	n := 0
	for _, p := range t.All() {
		n += p.Len()
	}
	return n
}
