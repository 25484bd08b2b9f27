package validator

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/deck"
	"github.com/arcanaland/solitaire/internal/pile"
)

// ValidationResults collects the problems found on a table. Errors mark
// states no sequence of moves can reach; warnings mark odd but legal ones.
type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

// Validator checks one table
type Validator struct {
	Table   *pile.Table
	Results ValidationResults
}

// NewValidator creates a validator for t
func NewValidator(t *pile.Table) *Validator {
	return &Validator{
		Table:   t,
		Results: ValidationResults{},
	}
}

// Validate checks the invariants that hold for any reachable Klondike table
func (v *Validator) Validate() (ValidationResults, error) {
	if v.Table == nil {
		return v.Results, fmt.Errorf("no table to validate")
	}

	v.validateCardSet()
	v.validateMembership()
	v.validateStockAndWaste()
	v.validateFoundations()
	v.validateTableau()

	return v.Results, nil
}

// ValidateDeal checks a freshly dealt table: Validate plus the opening layout
func (v *Validator) ValidateDeal() (ValidationResults, error) {
	if _, err := v.Validate(); err != nil {
		return v.Results, err
	}

	for i, col := range v.Table.Tableau {
		if col.Len() != i+1 {
			v.errorf("tableau %d has %d cards, want %d", i+1, col.Len(), i+1)
			continue
		}
		for j, id := range col.Cards() {
			last := j == col.Len()-1
			if v.Table.Arena.FaceUp(id) != last {
				v.errorf("tableau %d card %d (%s) has wrong face: face up only on the top card", i+1, j+1, id)
			}
		}
	}

	if want := card.DeckSize - deck.TableauCards; v.Table.Stock.Len() != want {
		v.errorf("stock has %d cards, want %d", v.Table.Stock.Len(), want)
	}
	if !v.Table.Waste.Empty() {
		v.errorf("waste has %d cards after the deal", v.Table.Waste.Len())
	}
	for i, f := range v.Table.Foundations {
		if !f.Empty() {
			v.errorf("foundation %d has %d cards after the deal", i+1, f.Len())
		}
	}

	return v.Results, nil
}

// validateCardSet checks every card is on the table exactly once
func (v *Validator) validateCardSet() {
	var seen [card.DeckSize]int
	for _, p := range v.Table.All() {
		for _, id := range p.Cards() {
			if !id.Valid() {
				v.errorf("%s holds unknown card id %d", p.Ref(), id)
				continue
			}
			seen[id]++
		}
	}

	for i, n := range seen {
		id := card.ID(i)
		switch {
		case n == 0:
			v.errorf("card missing: %s", id)
		case n > 1:
			v.errorf("card %s appears %d times", id, n)
		}
	}
}

// validateMembership checks the arena agrees with the piles
func (v *Validator) validateMembership() {
	for _, p := range v.Table.All() {
		for _, id := range p.Cards() {
			ref, ok := v.Table.Arena.Owner(id)
			if !ok {
				v.errorf("%s is in %s but has no owner", id, p.Ref())
			} else if ref != p.Ref() {
				v.errorf("%s is in %s but owned by %s", id, p.Ref(), ref)
			}
		}
	}
}

func (v *Validator) validateStockAndWaste() {
	for _, id := range v.Table.Stock.Cards() {
		if v.Table.Arena.FaceUp(id) {
			v.errorf("stock card %s is face up", id)
		}
	}
	for _, id := range v.Table.Waste.Cards() {
		if !v.Table.Arena.FaceUp(id) {
			v.errorf("waste card %s is face down", id)
		}
	}
}

// validateFoundations checks each foundation starts with an ace and every
// card either builds up in suit or was carried on as part of a tableau run.
// Carried runs are warnings.
func (v *Validator) validateFoundations() {
	for i, f := range v.Table.Foundations {
		cards := f.Cards()
		if len(cards) == 0 {
			continue
		}
		if cards[0].Card().Rank != card.Ace {
			v.errorf("foundation %d starts with %s", i+1, cards[0])
		}
		for j, id := range cards {
			if !v.Table.Arena.FaceUp(id) {
				v.errorf("foundation card %s is face down", id)
			}
			if j == 0 {
				continue
			}
			lower, upper := cards[j-1].Card(), id.Card()
			switch {
			case upper.Suit == lower.Suit && int(upper.Rank) == int(lower.Rank)+1:
			case upper.Color() != lower.Color() && int(upper.Rank) == int(lower.Rank)-1:
				v.warnf("foundation %d position %d holds %s carried on %s", i+1, j+1, id, cards[j-1])
			default:
				v.errorf("foundation %d position %d holds %s", i+1, j+1, id)
			}
		}
	}
}

// validateTableau checks face-down cards sit under the face-up run and the
// run itself alternates colour while descending
func (v *Validator) validateTableau() {
	for i, col := range v.Table.Tableau {
		cards := col.Cards()
		faceUpFrom := len(cards)
		for j, id := range cards {
			if v.Table.Arena.FaceUp(id) {
				faceUpFrom = j
				break
			}
		}

		for j := faceUpFrom; j < len(cards); j++ {
			if !v.Table.Arena.FaceUp(cards[j]) {
				v.errorf("tableau %d has face-down %s above a face-up card", i+1, cards[j])
				continue
			}
			if j > faceUpFrom {
				lower, upper := cards[j-1].Card(), cards[j].Card()
				if lower.Color() == upper.Color() || int(upper.Rank) != int(lower.Rank)-1 {
					v.warnf("tableau %d run breaks at %s on %s", i+1, upper, lower)
				}
			}
		}

		if len(cards) > 0 && faceUpFrom == len(cards) {
			v.warnf("tableau %d has no face-up card", i+1)
		}
	}
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}
