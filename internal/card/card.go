package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four French suits, in canonical deck order
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitNames = [...]string{"clubs", "diamonds", "hearts", "spades"}
var suitSymbols = [...]string{"♣", "♦", "♥", "♠"}

func (s Suit) String() string {
	if int(s) < len(suitNames) {
		return suitNames[s]
	}
	return fmt.Sprintf("suit(%d)", s)
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	if int(s) < len(suitSymbols) {
		return suitSymbols[s]
	}
	return "?"
}

// Color returns red for hearts and diamonds, black otherwise
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Rank is the card rank. Its numeric value is the rank index, so Ace < Two < ... < King.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank from ace to king
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = [...]string{"ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "jack", "queen", "king"}
var rankShort = [...]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if int(r) < len(rankNames) {
		return rankNames[r]
	}
	return fmt.Sprintf("rank(%d)", r)
}

// Short returns the one or two character index used on card corners
func (r Rank) Short() string {
	if int(r) < len(rankShort) {
		return rankShort[r]
	}
	return "?"
}

// Color is the pip colour of a suit
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// ID identifies one of the 52 cards. It doubles as the card's arena slot.
type ID uint8

// New returns the ID of the card with the given suit and rank
func New(s Suit, r Rank) ID {
	return ID(int(s)*len(Ranks) + int(r))
}

// Valid reports whether the ID names a card of a standard deck
func (id ID) Valid() bool {
	return int(id) < DeckSize
}

// Card returns the suit and rank behind the ID
func (id ID) Card() Card {
	return Card{
		Suit: Suit(int(id) / len(Ranks)),
		Rank: Rank(int(id) % len(Ranks)),
	}
}

func (id ID) String() string {
	return id.Card().String()
}

// Card represents a playing card's immutable identity
type Card struct {
	Suit Suit // clubs, diamonds, hearts or spades
	Rank Rank // ace through king
}

// ID returns the arena identifier of the card
func (c Card) ID() ID {
	return New(c.Suit, c.Rank)
}

// Color returns the card's suit colour
func (c Card) Color() Color {
	return c.Suit.Color()
}

// String returns the canonical name, e.g. "queen_of_hearts"
func (c Card) String() string {
	return fmt.Sprintf("%s_of_%s", c.Rank, c.Suit)
}

// Label returns the short corner label, e.g. "Q♥"
func (c Card) Label() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// Parse reads a card from its short form. Accepted forms are a rank index
// followed by a suit letter or pip ("qh", "10s", "A♠") and the canonical
// name ("queen_of_hearts").
func Parse(s string) (Card, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	if rankPart, suitPart, ok := strings.Cut(in, "_of_"); ok {
		r, err := parseRank(rankPart)
		if err != nil {
			return Card{}, err
		}
		for i, name := range suitNames {
			if name == suitPart {
				return Card{Suit: Suit(i), Rank: r}, nil
			}
		}
		return Card{}, fmt.Errorf("unknown suit: %s", suitPart)
	}

	for i, sym := range suitSymbols {
		if strings.HasSuffix(in, sym) {
			r, err := parseRank(strings.TrimSuffix(in, sym))
			if err != nil {
				return Card{}, err
			}
			return Card{Suit: Suit(i), Rank: r}, nil
		}
	}

	suitLetter := in[len(in)-1:]
	suitIdx := strings.Index("cdhs", suitLetter)
	if suitIdx < 0 {
		return Card{}, fmt.Errorf("unknown suit in card: %s", s)
	}
	r, err := parseRank(in[:len(in)-1])
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: Suit(suitIdx), Rank: r}, nil
}

func parseRank(s string) (Rank, error) {
	switch s {
	case "a", "1":
		return Ace, nil
	case "t":
		return Ten, nil
	case "j":
		return Jack, nil
	case "q":
		return Queen, nil
	case "k":
		return King, nil
	}
	for i, name := range rankNames {
		if name == s {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rank: %s", s)
}
