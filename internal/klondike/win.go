package klondike

import (
	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/pile"
)

// CheckWin records a win once every foundation holds a full suit. A
// recorded win is final: later calls return true without looking at the piles.
func (g *Game) CheckWin() bool {
	if g.won {
		return true
	}

	counts := make([]int, len(g.table.Foundations))
	complete := true
	for i, f := range g.table.Foundations {
		counts[i] = f.Len()
		if f.Len() != len(card.Ranks) {
			complete = false
		}
	}
	g.logger.Printf("check win, foundations: %v", counts)
	if !complete {
		return false
	}

	g.logger.Printf("win condition met")
	g.won = true
	g.listener.WinAchieved()
	return true
}

// ForceWin moves every card onto its suit's foundation in rank order and
// checks for the win. It is a debugging aid for exercising the win path.
func (g *Game) ForceWin() bool {
	table := pile.NewTable()
	for i, s := range card.Suits {
		for _, r := range card.Ranks {
			id := card.New(s, r)
			table.Arena.SetFaceUp(id, true)
			table.Foundations[i].AddCards(id)
		}
	}
	g.table = table
	g.logger.Printf("forced all cards to the foundations")
	return g.CheckWin()
}
