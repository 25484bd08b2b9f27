package klondike

import (
	"testing"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/pile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(s card.Suit, r card.Rank) card.ID { return card.New(s, r) }

// newTestGame returns a game on an empty table with a recorder attached
func newTestGame() (*Game, *Recorder) {
	rec := &Recorder{}
	return New(WithListener(rec)), rec
}

// place puts cards on p; only the listed faceUp cards are turned up
func place(g *Game, p *pile.Pile, faceUp bool, ids ...card.ID) {
	for _, id := range ids {
		g.table.Arena.SetFaceUp(id, faceUp)
	}
	p.AddCards(ids...)
}

// testGeometry lays piles out on a 10-unit grid: foundations, waste and stock
// on the top row, tableau columns below with 2 units between fanned cards.
func testGeometry(tbl *pile.Table) Geometry {
	geo := Geometry{}
	for i, f := range tbl.Foundations {
		geo[f.Ref()] = Bounds{Anchor: Rect{X: float64(i * 10), Y: 0, W: 8, H: 10}}
	}
	geo[tbl.Waste.Ref()] = Bounds{Anchor: Rect{X: 50, Y: 0, W: 8, H: 10}}
	geo[tbl.Stock.Ref()] = Bounds{Anchor: Rect{X: 60, Y: 0, W: 8, H: 10}}
	for i, col := range tbl.Tableau {
		geo[col.Ref()] = Bounds{Anchor: Rect{X: float64(i * 10), Y: 20, W: 8, H: 10}, SpacingY: 2}
	}
	return geo
}

func tableauPoint(i int) Point    { return Point{X: float64(i*10) + 4, Y: 25} }
func foundationPoint(i int) Point { return Point{X: float64(i*10) + 4, Y: 5} }

func snapshot(tbl *pile.Table) map[pile.Ref][]card.ID {
	out := make(map[pile.Ref][]card.ID)
	for _, p := range tbl.All() {
		out[p.Ref()] = p.Cards()
	}
	return out
}

func TestNewGameDealsSeededTable(t *testing.T) {
	g, _ := newTestGame()
	require.NoError(t, g.NewGame(99))

	tbl := g.Table()
	assert.Equal(t, card.DeckSize, tbl.CardCount())
	for i, col := range tbl.Tableau {
		assert.Equal(t, i+1, col.Len())
	}
	assert.Equal(t, 24, tbl.Stock.Len())
	assert.False(t, g.Won())
	assert.Equal(t, uint64(99), g.Seed())

	other := New()
	require.NoError(t, other.NewGame(99))
	assert.Equal(t, snapshot(tbl), snapshot(other.Table()), "same seed, same deal")
}

func TestNewGameReplacesSession(t *testing.T) {
	g, _ := newTestGame()
	require.NoError(t, g.NewGame(1))
	require.True(t, g.ForceWin())

	require.NoError(t, g.NewGame(2))
	assert.False(t, g.Won())
	assert.Equal(t, card.DeckSize, g.Table().CardCount())
	for _, f := range g.Table().Foundations {
		assert.True(t, f.Empty())
	}
}

func TestCanStackOnEmptyPiles(t *testing.T) {
	tbl := pile.NewTable()
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			bottom := card.Card{Suit: s, Rank: r}
			assert.Equal(t, r == card.Ace, CanStackOn(bottom, tbl.Foundations[0]), "%s on empty foundation", bottom)
			assert.Equal(t, r == card.King, CanStackOn(bottom, tbl.Tableau[0]), "%s on empty tableau", bottom)
			assert.False(t, CanStackOn(bottom, tbl.Stock))
			assert.False(t, CanStackOn(bottom, tbl.Waste))
		}
	}
}

func TestCanStackOn(t *testing.T) {
	g, _ := newTestGame()
	tbl := g.Table()
	place(g, tbl.Foundations[0], true, c(card.Hearts, card.Ace))
	place(g, tbl.Tableau[0], true, c(card.Clubs, card.Eight))

	tests := []struct {
		name   string
		bottom card.Card
		dest   *pile.Pile
		want   bool
	}{
		{"two of hearts on hearts foundation", card.Card{Suit: card.Hearts, Rank: card.Two}, tbl.Foundations[0], true},
		{"two of spades on hearts foundation", card.Card{Suit: card.Spades, Rank: card.Two}, tbl.Foundations[0], false},
		{"three of hearts skips a rank", card.Card{Suit: card.Hearts, Rank: card.Three}, tbl.Foundations[0], false},
		{"red seven on black eight", card.Card{Suit: card.Hearts, Rank: card.Seven}, tbl.Tableau[0], true},
		{"diamond seven on black eight", card.Card{Suit: card.Diamonds, Rank: card.Seven}, tbl.Tableau[0], true},
		{"red six on black eight", card.Card{Suit: card.Hearts, Rank: card.Six}, tbl.Tableau[0], false},
		{"black seven on black eight", card.Card{Suit: card.Spades, Rank: card.Seven}, tbl.Tableau[0], false},
		{"red nine on black eight", card.Card{Suit: card.Hearts, Rank: card.Nine}, tbl.Tableau[0], false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanStackOn(tt.bottom, tt.dest))
		})
	}
}

func TestDraggableGroupWasteAndFoundation(t *testing.T) {
	g, _ := newTestGame()
	tbl := g.Table()
	place(g, tbl.Waste, true, c(card.Clubs, card.Two), c(card.Hearts, card.Nine))
	place(g, tbl.Foundations[1], true, c(card.Spades, card.Ace), c(card.Spades, card.Two))
	place(g, tbl.Stock, false, c(card.Diamonds, card.Five))

	assert.Equal(t, []card.ID{c(card.Hearts, card.Nine)}, g.DraggableGroup(c(card.Hearts, card.Nine)))
	assert.Empty(t, g.DraggableGroup(c(card.Clubs, card.Two)))
	assert.Equal(t, []card.ID{c(card.Spades, card.Two)}, g.DraggableGroup(c(card.Spades, card.Two)))
	assert.Empty(t, g.DraggableGroup(c(card.Spades, card.Ace)))
	assert.Empty(t, g.DraggableGroup(c(card.Diamonds, card.Five)), "stock is never draggable")
	assert.Empty(t, g.DraggableGroup(c(card.Diamonds, card.King)), "card not on the table")
}

func TestDraggableGroupTableauRuns(t *testing.T) {
	g, _ := newTestGame()
	col := g.Table().Tableau[2]
	place(g, col, false, c(card.Clubs, card.Four))
	place(g, col, true,
		c(card.Spades, card.Ten),
		c(card.Hearts, card.Nine),
		c(card.Clubs, card.Eight),
		c(card.Diamonds, card.Seven),
	)

	assert.Empty(t, g.DraggableGroup(c(card.Clubs, card.Four)), "face-down card")
	assert.Equal(t, []card.ID{
		c(card.Spades, card.Ten), c(card.Hearts, card.Nine), c(card.Clubs, card.Eight), c(card.Diamonds, card.Seven),
	}, g.DraggableGroup(c(card.Spades, card.Ten)))
	assert.Equal(t, []card.ID{c(card.Clubs, card.Eight), c(card.Diamonds, card.Seven)}, g.DraggableGroup(c(card.Clubs, card.Eight)))
	assert.Equal(t, []card.ID{c(card.Diamonds, card.Seven)}, g.DraggableGroup(c(card.Diamonds, card.Seven)))
}

func TestDraggableGroupBrokenRunIsEmpty(t *testing.T) {
	g, _ := newTestGame()
	col := g.Table().Tableau[0]
	place(g, col, true,
		c(card.Spades, card.Ten),
		c(card.Hearts, card.Nine),
		c(card.Diamonds, card.Eight), // same colour as the nine
		c(card.Clubs, card.Seven),
	)

	assert.Empty(t, g.DraggableGroup(c(card.Spades, card.Ten)))
	assert.Empty(t, g.DraggableGroup(c(card.Hearts, card.Nine)))
	assert.Equal(t, []card.ID{c(card.Diamonds, card.Eight), c(card.Clubs, card.Seven)}, g.DraggableGroup(c(card.Diamonds, card.Eight)))

	gap, _ := newTestGame()
	place(gap, gap.Table().Tableau[0], true, c(card.Spades, card.Ten), c(card.Hearts, card.Eight))
	assert.Empty(t, gap.DraggableGroup(c(card.Spades, card.Ten)), "rank gap")
}

func TestResolveDropMovesRunAndRevealsCard(t *testing.T) {
	g, rec := newTestGame()
	tbl := g.Table()
	hidden := c(card.Diamonds, card.Two)
	place(g, tbl.Tableau[0], false, hidden)
	place(g, tbl.Tableau[0], true, c(card.Hearts, card.Nine), c(card.Clubs, card.Eight))
	place(g, tbl.Tableau[3], true, c(card.Spades, card.Ten))

	out := g.ResolveDrop(c(card.Hearts, card.Nine), tableauPoint(3), testGeometry(tbl))
	require.True(t, out.Accepted())
	assert.Equal(t, tbl.Tableau[0].Ref(), out.From)
	assert.Equal(t, tbl.Tableau[3].Ref(), out.To)
	assert.Equal(t, []card.ID{c(card.Hearts, card.Nine), c(card.Clubs, card.Eight)}, out.Group)
	require.NotNil(t, out.Flipped)
	assert.Equal(t, hidden, *out.Flipped)

	assert.Equal(t, []card.ID{c(card.Spades, card.Ten), c(card.Hearts, card.Nine), c(card.Clubs, card.Eight)}, tbl.Tableau[3].Cards())
	assert.Equal(t, []card.ID{hidden}, tbl.Tableau[0].Cards())
	assert.True(t, g.FaceUp(hidden))

	ref, ok := tbl.Arena.Owner(c(card.Clubs, card.Eight))
	require.True(t, ok)
	assert.Equal(t, tbl.Tableau[3].Ref(), ref)

	events := rec.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, EventCardsMoved, events[0].Kind)
	assert.Equal(t, tbl.Tableau[0].Ref(), events[0].From)
	assert.Equal(t, tbl.Tableau[3].Ref(), events[0].To)
	assert.Equal(t, EventCardFlipped, events[1].Kind)
	assert.Equal(t, []card.ID{hidden}, events[1].Cards)
}

func TestResolveDropRevertsWithoutMutation(t *testing.T) {
	g, rec := newTestGame()
	require.NoError(t, g.NewGame(5))
	tbl := g.Table()
	geo := testGeometry(tbl)
	before := snapshot(tbl)

	top, _ := tbl.Tableau[6].TopCard()
	out := g.ResolveDrop(top, Point{X: 500, Y: 500}, geo)
	assert.Equal(t, Reverted, out.State)
	assert.Equal(t, []card.ID{top}, out.Group)
	assert.Equal(t, before, snapshot(tbl))

	hidden := tbl.Tableau[6].Cards()[0]
	out = g.ResolveDrop(hidden, tableauPoint(0), geo)
	assert.Equal(t, Reverted, out.State)
	assert.Equal(t, before, snapshot(tbl))

	stockTop, _ := tbl.Stock.TopCard()
	out = g.ResolveDrop(stockTop, tableauPoint(1), geo)
	assert.Equal(t, Reverted, out.State)
	assert.Equal(t, before, snapshot(tbl))

	for _, e := range rec.Drain() {
		assert.Equal(t, EventDragReverted, e.Kind)
	}
}

func TestResolveDropIllegalTargetReverts(t *testing.T) {
	g, rec := newTestGame()
	tbl := g.Table()
	place(g, tbl.Tableau[0], true, c(card.Clubs, card.Eight))
	place(g, tbl.Tableau[1], true, c(card.Spades, card.Seven))
	before := snapshot(tbl)

	out := g.ResolveDrop(c(card.Spades, card.Seven), tableauPoint(0), testGeometry(tbl))
	assert.Equal(t, Reverted, out.State)
	assert.Equal(t, before, snapshot(tbl))
	events := rec.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, EventDragReverted, events[0].Kind)
	assert.Equal(t, []card.ID{c(card.Spades, card.Seven)}, events[0].Cards)
}

func TestDropOnOwnPileReverts(t *testing.T) {
	g, _ := newTestGame()
	tbl := g.Table()
	place(g, tbl.Tableau[2], true, c(card.Spades, card.Ten), c(card.Hearts, card.Nine))
	before := snapshot(tbl)

	out := g.ResolveDrop(c(card.Spades, card.Ten), tableauPoint(2), testGeometry(tbl))
	assert.Equal(t, Reverted, out.State)
	assert.Equal(t, before, snapshot(tbl))
}

func TestKingToEmptyTableauAndAceToFoundation(t *testing.T) {
	g, _ := newTestGame()
	tbl := g.Table()
	geo := testGeometry(tbl)
	place(g, tbl.Waste, true, c(card.Hearts, card.King))
	place(g, tbl.Tableau[1], true, c(card.Spades, card.Ace))

	out := g.ResolveDrop(c(card.Hearts, card.King), tableauPoint(5), geo)
	require.True(t, out.Accepted())
	assert.Equal(t, []card.ID{c(card.Hearts, card.King)}, tbl.Tableau[5].Cards())
	assert.True(t, tbl.Waste.Empty())
	assert.Nil(t, out.Flipped)

	out = g.ResolveDrop(c(card.Spades, card.Ace), foundationPoint(2), geo)
	require.True(t, out.Accepted())
	assert.Equal(t, []card.ID{c(card.Spades, card.Ace)}, tbl.Foundations[2].Cards())
	assert.True(t, tbl.Tableau[1].Empty())
}

func TestFoundationChecksOnlyBottomCard(t *testing.T) {
	g, rec := newTestGame()
	tbl := g.Table()
	geo := testGeometry(tbl)
	place(g, tbl.Foundations[0], true, c(card.Hearts, card.Ace))
	place(g, tbl.Tableau[0], false, c(card.Clubs, card.Nine))
	place(g, tbl.Tableau[0], true, c(card.Hearts, card.Two), c(card.Spades, card.Ace))

	out := g.ResolveDrop(c(card.Hearts, card.Two), foundationPoint(0), geo)
	require.True(t, out.Accepted())
	assert.Equal(t, tbl.Foundations[0].Ref(), out.To)
	assert.Equal(t, []card.ID{c(card.Hearts, card.Ace), c(card.Hearts, card.Two), c(card.Spades, card.Ace)},
		tbl.Foundations[0].Cards())
	require.NotNil(t, out.Flipped)
	assert.Equal(t, c(card.Clubs, card.Nine), *out.Flipped)

	events := rec.Drain()
	require.NotEmpty(t, events)
	assert.Equal(t, EventCardsMoved, events[0].Kind)
	assert.Equal(t, []card.ID{c(card.Hearts, card.Two), c(card.Spades, card.Ace)}, events[0].Cards)
}

func TestFoundationRejectsWrongBottomCard(t *testing.T) {
	g, _ := newTestGame()
	tbl := g.Table()
	place(g, tbl.Foundations[0], true, c(card.Hearts, card.Ace), c(card.Hearts, card.Two), c(card.Hearts, card.Three), c(card.Hearts, card.Four))
	place(g, tbl.Tableau[0], true, c(card.Clubs, card.Five), c(card.Hearts, card.Four))
	before := snapshot(tbl)

	out := g.ResolveDrop(c(card.Clubs, card.Five), foundationPoint(0), testGeometry(tbl))
	assert.Equal(t, Reverted, out.State)
	assert.Equal(t, before, snapshot(tbl))
}

func TestTableauRegionCoversFannedStack(t *testing.T) {
	g, _ := newTestGame()
	tbl := g.Table()
	geo := testGeometry(tbl)
	place(g, tbl.Tableau[4], false, c(card.Clubs, card.Two), c(card.Clubs, card.Three), c(card.Clubs, card.Four))
	place(g, tbl.Tableau[4], true, c(card.Spades, card.Jack))
	place(g, tbl.Waste, true, c(card.Diamonds, card.Ten))

	// below the anchor cell but inside the fanned stack: 3*2 + 10 = 16 units tall
	r, ok := geo.Region(tbl.Tableau[4])
	require.True(t, ok)
	assert.Equal(t, 16.0, r.H)
	out := g.ResolveDrop(c(card.Diamonds, card.Ten), Point{X: 44, Y: 34}, geo)
	require.True(t, out.Accepted())
	assert.Equal(t, tbl.Tableau[4].Ref(), out.To)

	// an empty column keeps its anchor cell
	r, ok = geo.Region(tbl.Tableau[0])
	require.True(t, ok)
	assert.Equal(t, 10.0, r.H)
}

func TestOverlappingRegionsPreferTableau(t *testing.T) {
	g, _ := newTestGame()
	tbl := g.Table()
	geo := testGeometry(tbl)
	// pull foundation 1 down on top of tableau column 1
	geo[tbl.Foundations[1].Ref()] = Bounds{Anchor: Rect{X: 10, Y: 20, W: 8, H: 10}}
	place(g, tbl.Tableau[1], true, c(card.Clubs, card.Eight))
	place(g, tbl.Waste, true, c(card.Hearts, card.Seven))

	assert.Same(t, tbl.Tableau[1], g.findTarget(tableauPoint(1), geo))
	out := g.ResolveDrop(c(card.Hearts, card.Seven), tableauPoint(1), geo)
	require.True(t, out.Accepted())
	assert.Equal(t, tbl.Tableau[1].Ref(), out.To)

	// without a tableau hit the first pile in table order wins
	geo[tbl.Foundations[2].Ref()] = Bounds{Anchor: Rect{X: 50, Y: 0, W: 8, H: 10}}
	assert.Same(t, tbl.Waste, g.findTarget(Point{X: 52, Y: 2}, geo))
}

func TestStockIsNeverADropTarget(t *testing.T) {
	g, _ := newTestGame()
	tbl := g.Table()
	place(g, tbl.Waste, true, c(card.Hearts, card.Seven))
	out := g.ResolveDrop(c(card.Hearts, card.Seven), Point{X: 62, Y: 2}, testGeometry(tbl))
	assert.Equal(t, Reverted, out.State)
}

func TestDragLifecycle(t *testing.T) {
	g, _ := newTestGame()
	tbl := g.Table()
	place(g, tbl.Tableau[0], true, c(card.Clubs, card.Eight))
	place(g, tbl.Waste, true, c(card.Hearts, card.Seven))

	_, ok := g.BeginDrag(c(card.Spades, card.Queen))
	assert.False(t, ok)

	d, ok := g.BeginDrag(c(card.Hearts, card.Seven))
	require.True(t, ok)
	assert.Equal(t, Dragging, d.State())
	assert.Equal(t, tbl.Waste.Ref(), d.Source)

	out := g.Drop(d, tableauPoint(0), testGeometry(tbl))
	require.True(t, out.Accepted())
	assert.Equal(t, Accepted, d.State())

	before := snapshot(tbl)
	again := g.Drop(d, tableauPoint(3), testGeometry(tbl))
	assert.Equal(t, Accepted, again.State)
	assert.Equal(t, before, snapshot(tbl), "a finished drag does not move again")

	assert.Equal(t, Reverted, g.Drop(nil, Point{}, nil).State)
}

func TestOnStockClickDrawsAndRecycles(t *testing.T) {
	g, rec := newTestGame()
	tbl := g.Table()
	a, b, cc := c(card.Clubs, card.Ace), c(card.Hearts, card.Five), c(card.Spades, card.Queen)
	place(g, tbl.Stock, false, a, b, cc)

	require.True(t, g.OnStockClick())
	assert.Equal(t, []card.ID{cc}, tbl.Waste.Cards())
	assert.True(t, g.FaceUp(cc))
	require.True(t, g.OnStockClick())
	require.True(t, g.OnStockClick())
	assert.Equal(t, []card.ID{cc, b, a}, tbl.Waste.Cards())
	assert.True(t, tbl.Stock.Empty())

	rec.Drain()
	require.True(t, g.OnStockClick())
	assert.Equal(t, []card.ID{a, b, cc}, tbl.Stock.Cards())
	assert.True(t, tbl.Waste.Empty())
	for _, id := range tbl.Stock.Cards() {
		assert.False(t, g.FaceUp(id))
		ref, ok := tbl.Arena.Owner(id)
		require.True(t, ok)
		assert.Equal(t, tbl.Stock.Ref(), ref)
	}
	events := rec.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, tbl.Waste.Ref(), events[0].From)
	assert.Equal(t, tbl.Stock.Ref(), events[0].To)
}

func TestRecycleReversesWaste(t *testing.T) {
	g, _ := newTestGame()
	tbl := g.Table()
	a, b, cc := c(card.Clubs, card.Ace), c(card.Clubs, card.Two), c(card.Clubs, card.Three)
	place(g, tbl.Waste, true, a, b, cc)

	require.True(t, g.OnStockClick())
	assert.Equal(t, []card.ID{cc, b, a}, tbl.Stock.Cards())
	assert.True(t, tbl.Waste.Empty())
	for _, id := range []card.ID{a, b, cc} {
		assert.False(t, g.FaceUp(id))
	}
}

func TestOnStockClickBothEmpty(t *testing.T) {
	g, rec := newTestGame()
	assert.False(t, g.OnStockClick())
	assert.Empty(t, rec.Events)
}

func TestHitStock(t *testing.T) {
	g, _ := newTestGame()
	require.NoError(t, g.NewGame(11))
	geo := testGeometry(g.Table())

	assert.False(t, g.HitStock(Point{X: 1, Y: 1}, geo))
	assert.True(t, g.Table().Waste.Empty())
	assert.True(t, g.HitStock(Point{X: 61, Y: 1}, geo))
	assert.Equal(t, 1, g.Table().Waste.Len())
	assert.Equal(t, 23, g.Table().Stock.Len())
}

func TestCheckWin(t *testing.T) {
	g, rec := newTestGame()
	require.NoError(t, g.NewGame(3))
	assert.False(t, g.CheckWin())

	require.True(t, g.ForceWin())
	assert.True(t, g.Won())
	for i, f := range g.Table().Foundations {
		require.Equal(t, 13, f.Len())
		top, _ := f.TopCard()
		assert.Equal(t, c(card.Suits[i], card.King), top)
	}

	// sticky even if the foundations are emptied behind its back
	for _, f := range g.Table().Foundations {
		bottom := f.Cards()[0]
		f.RemoveCardsFrom(bottom)
	}
	assert.True(t, g.CheckWin())

	wins := 0
	for _, e := range rec.Events {
		if e.Kind == EventWin {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "win is announced once")
}

func TestFinalFoundationMoveWins(t *testing.T) {
	g, rec := newTestGame()
	tbl := g.Table()
	for i, s := range card.Suits {
		for _, r := range card.Ranks {
			if s == card.Spades && r == card.King {
				continue
			}
			place(g, tbl.Foundations[i], true, c(s, r))
		}
	}
	place(g, tbl.Tableau[0], true, c(card.Spades, card.King))
	assert.False(t, g.CheckWin())

	out := g.ResolveDrop(c(card.Spades, card.King), foundationPoint(3), testGeometry(tbl))
	require.True(t, out.Accepted())
	assert.True(t, g.Won())
	events := rec.Drain()
	require.NotEmpty(t, events)
	assert.Equal(t, EventWin, events[len(events)-1].Kind)
}
