package klondike

import (
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/pile"
)

// State is the phase of a drag gesture
type State uint8

const (
	Idle State = iota
	Dragging
	Accepted
	Reverted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Accepted:
		return "accepted"
	case Reverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// Drag is a gesture in progress. It is owned by the UI for the duration of
// one pointer press and holds the group picked up at that moment.
type Drag struct {
	Card   card.ID
	Source pile.Ref
	Group  []card.ID
	state  State
}

func (d *Drag) State() State { return d.state }

// Outcome is the resolved result of a drop
type Outcome struct {
	State State
	Group []card.ID
	From  pile.Ref
	// To is the destination pile; only meaningful when State is Accepted.
	To pile.Ref
	// Flipped is set when the move revealed a face-down tableau card.
	Flipped *card.ID
}

func (o Outcome) Accepted() bool { return o.State == Accepted }

// BeginDrag starts a gesture on id. It returns false when id cannot be
// dragged, in which case the UI must not start dragging.
func (g *Game) BeginDrag(id card.ID) (*Drag, bool) {
	group := g.DraggableGroup(id)
	if len(group) == 0 {
		return nil, false
	}
	src, _ := g.table.Locate(id)
	return &Drag{Card: id, Source: src.Ref(), Group: group, state: Dragging}, true
}

// Drop resolves a gesture released at pt. The move is applied as a whole or
// not at all; a reverted drop leaves every pile untouched.
func (g *Game) Drop(d *Drag, pt Point, geo Geometry) Outcome {
	if d == nil {
		return Outcome{State: Reverted}
	}
	if d.state != Dragging {
		return Outcome{State: d.state, Group: d.Group, From: d.Source}
	}

	group := g.DraggableGroup(d.Card)
	src, _ := g.table.Locate(d.Card)
	if len(group) == 0 || src == nil || src.Ref() != d.Source {
		return g.revert(d, d.Group)
	}

	dest := g.findTarget(pt, geo)
	if dest == nil || !CanStackOn(group[0].Card(), dest) {
		return g.revert(d, group)
	}

	moved := src.RemoveCardsFrom(d.Card)
	dest.AddCards(moved...)
	d.state = Accepted
	g.logger.Printf("accepted %d card(s) from %s to %s", len(moved), src.Ref(), dest.Ref())
	g.listener.CardsMoved(moved, src.Ref(), dest.Ref())

	out := Outcome{State: Accepted, Group: moved, From: src.Ref(), To: dest.Ref()}
	if flipped, ok := g.revealTop(src); ok {
		out.Flipped = &flipped
	}
	g.CheckWin()
	return out
}

// ResolveDrop picks up id and drops it at pt in one step
func (g *Game) ResolveDrop(id card.ID, pt Point, geo Geometry) Outcome {
	d, ok := g.BeginDrag(id)
	if !ok {
		return g.revert(&Drag{Card: id, state: Dragging}, []card.ID{id})
	}
	return g.Drop(d, pt, geo)
}

func (g *Game) revert(d *Drag, group []card.ID) Outcome {
	d.state = Reverted
	g.logger.Printf("reverted drag of %s", d.Card)
	g.listener.DragReverted(group)
	return Outcome{State: Reverted, Group: group, From: d.Source}
}

// revealTop turns the new top card of a tableau pile face up
func (g *Game) revealTop(p *pile.Pile) (card.ID, bool) {
	if p.Kind() != pile.Tableau {
		return 0, false
	}
	top, ok := p.TopCard()
	if !ok || g.table.Arena.FaceUp(top) {
		return 0, false
	}
	g.table.Arena.SetFaceUp(top, true)
	g.listener.TableauCardFlipped(top)
	return top, true
}
