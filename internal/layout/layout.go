// Package layout places the piles of a table on a terminal character grid
// and produces the geometry the rules engine uses for drop hit-testing.
package layout

import (
	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/klondike"
	"github.com/arcanaland/solitaire/internal/pile"
)

const (
	// MarginX and MarginY leave room for the pile labels
	MarginX = 1
	MarginY = 1

	wasteColumn = 5
	stockColumn = 6
)

// Layout is the cell geometry of one rendered table
type Layout struct {
	CardWidth  int
	CardHeight int
	GapX       int
	SpacingY   int
}

// New builds a layout from the configured sizes
func New(cfg config.Layout) Layout {
	return Layout{
		CardWidth:  cfg.CardWidth,
		CardHeight: cfg.CardHeight,
		GapX:       cfg.GapX,
		SpacingY:   cfg.SpacingY,
	}
}

// Fit shrinks the card width so seven columns fit in width cells. Cards never
// get narrower than config.MinCardWidth and never wider than configured.
func (l Layout) Fit(width int) Layout {
	if width <= 0 {
		return l
	}
	usable := width - 2*MarginX - (pile.TableauCount-1)*l.GapX
	cw := usable / pile.TableauCount
	if cw < config.MinCardWidth {
		cw = config.MinCardWidth
	}
	if cw < l.CardWidth {
		l.CardWidth = cw
	}
	return l
}

// ColumnX returns the left edge of column i
func (l Layout) ColumnX(i int) int {
	return MarginX + i*(l.CardWidth+l.GapX)
}

// TopRowY is the row of foundations, waste and stock
func (l Layout) TopRowY() int {
	return MarginY
}

// TableauY is the first row of the tableau; one label row separates it from the top row
func (l Layout) TableauY() int {
	return MarginY + l.CardHeight + 2
}

// Width is the number of cells the table spans
func (l Layout) Width() int {
	return l.ColumnX(pile.TableauCount-1) + l.CardWidth + MarginX
}

// Height is the number of rows needed to draw t
func (l Layout) Height(t *pile.Table) int {
	tallest := 1
	for _, col := range t.Tableau {
		if col.Len() > tallest {
			tallest = col.Len()
		}
	}
	return l.TableauY() + (tallest-1)*l.SpacingY + l.CardHeight
}

// Anchor returns the cell rectangle of the bottom card of the pile at ref
func (l Layout) Anchor(ref pile.Ref) klondike.Rect {
	var col, y int
	switch ref.Kind {
	case pile.Foundation:
		col, y = ref.Index, l.TopRowY()
	case pile.Waste:
		col, y = wasteColumn, l.TopRowY()
	case pile.Stock:
		col, y = stockColumn, l.TopRowY()
	default:
		col, y = ref.Index, l.TableauY()
	}
	return klondike.Rect{
		X: float64(l.ColumnX(col)),
		Y: float64(y),
		W: float64(l.CardWidth),
		H: float64(l.CardHeight),
	}
}

// Geometry returns the pile placement handed to the engine on every drop
func (l Layout) Geometry(t *pile.Table) klondike.Geometry {
	geo := make(klondike.Geometry)
	for _, p := range t.All() {
		b := klondike.Bounds{Anchor: l.Anchor(p.Ref())}
		if p.Kind() == pile.Tableau {
			b.SpacingY = float64(l.SpacingY)
		}
		geo[p.Ref()] = b
	}
	return geo
}

// CardY returns the row of the i-th card of a pile
func (l Layout) CardY(p *pile.Pile, i int) int {
	y := int(l.Anchor(p.Ref()).Y)
	if p.Kind() == pile.Tableau {
		y += i * l.SpacingY
	}
	return y
}

// PointFor returns a pointer position that lands on p: the centre of its drop region
func (l Layout) PointFor(t *pile.Table, p *pile.Pile) klondike.Point {
	r, ok := l.Geometry(t).Region(p)
	if !ok {
		r = l.Anchor(p.Ref())
	}
	return r.Center()
}
