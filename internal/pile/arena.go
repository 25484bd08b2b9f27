package pile

import "github.com/arcanaland/solitaire/internal/card"

// Arena holds the mutable per-card state of one game: whether each card is
// face up and which pile currently holds it. Piles only keep card IDs.
type Arena struct {
	faceUp [card.DeckSize]bool
	owner  [card.DeckSize]Ref
	held   [card.DeckSize]bool
}

// NewArena returns an arena with every card face down and unowned
func NewArena() *Arena {
	return &Arena{}
}

// FaceUp reports whether id is face up
func (a *Arena) FaceUp(id card.ID) bool {
	return id.Valid() && a.faceUp[id]
}

// SetFaceUp turns id face up or face down
func (a *Arena) SetFaceUp(id card.ID, up bool) {
	if id.Valid() {
		a.faceUp[id] = up
	}
}

// Owner returns the pile currently holding id
func (a *Arena) Owner(id card.ID) (Ref, bool) {
	if !id.Valid() || !a.held[id] {
		return Ref{}, false
	}
	return a.owner[id], true
}

func (a *Arena) claim(id card.ID, ref Ref) {
	if !id.Valid() {
		return
	}
	a.owner[id] = ref
	a.held[id] = true
}

func (a *Arena) release(id card.ID) {
	if !id.Valid() {
		return
	}
	a.owner[id] = Ref{}
	a.held[id] = false
}
