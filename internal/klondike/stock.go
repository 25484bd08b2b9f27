package klondike

import (
	"slices"

	"github.com/arcanaland/solitaire/internal/card"
)

// OnStockClick draws the top stock card face up onto the waste. With an
// empty stock it turns the waste over into a face-down stock instead. It
// reports whether anything moved.
func (g *Game) OnStockClick() bool {
	stock, waste := g.table.Stock, g.table.Waste

	if top, ok := stock.TopCard(); ok {
		drawn := stock.RemoveCardsFrom(top)
		g.table.Arena.SetFaceUp(top, true)
		waste.AddCards(drawn...)
		g.listener.CardsMoved(drawn, stock.Ref(), waste.Ref())
		g.CheckWin()
		return true
	}

	bottom, ok := bottomCard(waste.Cards())
	if !ok {
		return false
	}
	moving := waste.RemoveCardsFrom(bottom)
	slices.Reverse(moving)
	for _, id := range moving {
		g.table.Arena.SetFaceUp(id, false)
	}
	stock.AddCards(moving...)
	g.logger.Printf("recycled %d waste cards to stock", len(moving))
	g.listener.CardsMoved(moving, waste.Ref(), stock.Ref())
	g.CheckWin()
	return true
}

// HitStock forwards a click at pt to OnStockClick when it lands on the stock
func (g *Game) HitStock(pt Point, geo Geometry) bool {
	r, ok := geo.Region(g.table.Stock)
	if !ok || !r.Contains(pt) {
		return false
	}
	return g.OnStockClick()
}

func bottomCard(ids []card.ID) (card.ID, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
