// Package klondike implements the rules of Klondike solitaire on top of the
// pile model: which cards may be dragged, where they may be dropped, the
// stock/waste cycle and win detection.
//
// A Game is driven by a UI that reports gestures (a card plus a pointer
// position and the piles' geometry) and renders the events the Game sends to
// its Listener. Every operation runs to completion synchronously; a Game is
// not safe for concurrent use.
package klondike

import (
	"fmt"
	"io"
	"log"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/deck"
	"github.com/arcanaland/solitaire/internal/pile"
)

// Game is one Klondike session
type Game struct {
	table    *pile.Table
	seed     uint64
	won      bool
	listener Listener
	logger   *log.Logger
}

// Option configures a Game
type Option func(*Game)

// WithListener routes game events to l
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listener = l
		}
	}
}

// WithLogger enables debug logging
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New returns a game with an empty table. Call NewGame to deal.
func New(opts ...Option) *Game {
	g := &Game{
		table:    pile.NewTable(),
		listener: NopListener{},
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGame discards the current table and deals a fresh one shuffled from seed
func (g *Game) NewGame(seed uint64) error {
	g.logger.Printf("starting new game with seed %d", seed)

	cards := deck.Build(deck.NewRand(seed))
	g.logger.Printf("deck built with %d cards", len(cards))

	table := pile.NewTable()
	if err := deck.Deal(cards, table); err != nil {
		return fmt.Errorf("error dealing game %d: %w", seed, err)
	}

	g.table = table
	g.seed = seed
	g.won = false

	for _, p := range table.All() {
		g.logger.Printf("pile %s has %d cards", p.Ref(), p.Len())
	}
	return nil
}

// Table exposes the piles for rendering and inspection
func (g *Game) Table() *pile.Table { return g.table }

// Seed returns the seed of the current deal
func (g *Game) Seed() uint64 { return g.seed }

// Won reports whether the win has been recorded
func (g *Game) Won() bool { return g.won }

// FaceUp reports whether id is currently face up
func (g *Game) FaceUp(id card.ID) bool {
	return g.table.Arena.FaceUp(id)
}
