package render

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/pile"
)

// Narrator is a klondike.Listener that describes each event on a writer
type Narrator struct {
	W io.Writer
}

func labels(ids []card.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.Card().Label()
	}
	return strings.Join(parts, " ")
}

func (n Narrator) CardsMoved(group []card.ID, from, to pile.Ref) {
	switch {
	case from.Kind == pile.Stock && to.Kind == pile.Waste:
		fmt.Fprintf(n.W, "drew %s\n", labels(group))
	case from.Kind == pile.Waste && to.Kind == pile.Stock:
		fmt.Fprintf(n.W, "turned %d waste cards back onto the stock\n", len(group))
	default:
		fmt.Fprintf(n.W, "moved %s from %s to %s\n", labels(group), from, to)
	}
}

func (n Narrator) DragReverted(group []card.ID) {
	fmt.Fprintln(n.W, colorize.YellowString("can't drop %s there", labels(group)))
}

func (n Narrator) TableauCardFlipped(id card.ID) {
	fmt.Fprintf(n.W, "revealed %s\n", id.Card().Label())
}

// WinAchieved prints nothing; Status shows the banner on the next redraw
func (n Narrator) WinAchieved() {}
