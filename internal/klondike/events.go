package klondike

import (
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/pile"
)

// Listener receives the outcome of every gesture so the UI can render it
type Listener interface {
	CardsMoved(group []card.ID, from, to pile.Ref)
	DragReverted(group []card.ID)
	TableauCardFlipped(id card.ID)
	WinAchieved()
}

// NopListener ignores all events
type NopListener struct{}

func (NopListener) CardsMoved([]card.ID, pile.Ref, pile.Ref) {}
func (NopListener) DragReverted([]card.ID)                   {}
func (NopListener) TableauCardFlipped(card.ID)               {}
func (NopListener) WinAchieved()                             {}

type EventKind uint8

const (
	EventCardsMoved EventKind = iota
	EventDragReverted
	EventCardFlipped
	EventWin
)

func (k EventKind) String() string {
	switch k {
	case EventCardsMoved:
		return "cards-moved"
	case EventDragReverted:
		return "drag-reverted"
	case EventCardFlipped:
		return "card-flipped"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event is one recorded listener call. From and To are only set for moves.
type Event struct {
	Kind  EventKind
	Cards []card.ID
	From  pile.Ref
	To    pile.Ref
}

// Recorder is a Listener that keeps every event in order
type Recorder struct {
	Events []Event
}

func (r *Recorder) CardsMoved(group []card.ID, from, to pile.Ref) {
	r.Events = append(r.Events, Event{Kind: EventCardsMoved, Cards: clone(group), From: from, To: to})
}

func (r *Recorder) DragReverted(group []card.ID) {
	r.Events = append(r.Events, Event{Kind: EventDragReverted, Cards: clone(group)})
}

func (r *Recorder) TableauCardFlipped(id card.ID) {
	r.Events = append(r.Events, Event{Kind: EventCardFlipped, Cards: []card.ID{id}})
}

func (r *Recorder) WinAchieved() {
	r.Events = append(r.Events, Event{Kind: EventWin})
}

// Drain returns the recorded events and forgets them
func (r *Recorder) Drain() []Event {
	events := r.Events
	r.Events = nil
	return events
}

func clone(ids []card.ID) []card.ID {
	out := make([]card.ID, len(ids))
	copy(out, ids)
	return out
}
