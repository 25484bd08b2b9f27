// Package render draws a Klondike table as ANSI text and narrates game events.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/layout"
	"github.com/arcanaland/solitaire/internal/pile"
)

const reset = "\x1b[0m"

// Renderer draws tables with a fixed palette and layout
type Renderer struct {
	Palette config.Palette
	Layout  layout.Layout
	// Color enables 24-bit colour escapes
	Color bool
}

// New returns a renderer for the configured theme and layout, fitted to the
// terminal when stdout is one
func New(cfg *config.Config) (*Renderer, error) {
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return nil, err
	}

	l := layout.New(cfg.Layout)
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if tty {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			l = l.Fit(width)
		}
	}

	return &Renderer{
		Palette: palette,
		Layout:  l,
		Color:   tty && !colorize.NoColor,
	}, nil
}

// cell is one character of the canvas with the escape that colours it
type cell struct {
	ch    string
	style string
}

type canvas struct {
	rows [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{rows: make([][]cell, h)}
	for y := range c.rows {
		c.rows[y] = make([]cell, w)
		for x := range c.rows[y] {
			c.rows[y][x] = cell{ch: " "}
		}
	}
	return c
}

// put writes s starting at (x, y); each rune takes one cell
func (c *canvas) put(x, y int, s, style string) {
	if y < 0 || y >= len(c.rows) {
		return
	}
	for _, r := range s {
		if x >= 0 && x < len(c.rows[y]) {
			c.rows[y][x] = cell{ch: string(r), style: style}
		}
		x++
	}
}

func (c *canvas) writeTo(w io.Writer) error {
	var b strings.Builder
	for _, row := range c.rows {
		current := ""
		for _, cl := range row {
			if cl.style != current {
				if current != "" {
					b.WriteString(reset)
				}
				b.WriteString(cl.style)
				current = cl.style
			}
			b.WriteString(cl.ch)
		}
		if current != "" {
			b.WriteString(reset)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// fg returns a 24-bit foreground escape for c
func (r *Renderer) fg(c colorful.Color) string {
	if !r.Color {
		return ""
	}
	red, green, blue := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", red, green, blue)
}

func (r *Renderer) suitStyle(s card.Suit) string {
	if s.Color() == card.Red {
		return r.fg(r.Palette.Red)
	}
	return r.fg(r.Palette.Black)
}

// face returns the text of a face-up card padded to the card width
func (r *Renderer) face(id card.ID) string {
	return frame(id.Card().Label(), r.Layout.CardWidth)
}

func frame(inner string, width int) string {
	n := width - 2
	pad := n - len([]rune(inner))
	if pad < 0 {
		pad = 0
	}
	return "[" + inner + strings.Repeat(" ", pad) + "]"
}

func (r *Renderer) drawCard(c *canvas, x, y int, id card.ID, faceUp bool) {
	w := r.Layout.CardWidth
	if faceUp {
		style := r.suitStyle(id.Card().Suit)
		c.put(x, y, r.face(id), style)
		for i := 1; i < r.Layout.CardHeight; i++ {
			c.put(x, y+i, frame("", w), style)
		}
		return
	}
	back := r.fg(r.Palette.Back)
	for i := 0; i < r.Layout.CardHeight; i++ {
		c.put(x, y+i, "["+strings.Repeat("░", w-2)+"]", back)
	}
}

func (r *Renderer) drawPlaceholder(c *canvas, x, y int) {
	c.put(x, y, frame("", r.Layout.CardWidth), "")
}

// Name is the short address of a pile as typed by the player: f1-f4, w, s, t1-t7
func Name(ref pile.Ref) string {
	switch ref.Kind {
	case pile.Foundation:
		return fmt.Sprintf("f%d", ref.Index+1)
	case pile.Waste:
		return "w"
	case pile.Stock:
		return "s"
	default:
		return fmt.Sprintf("t%d", ref.Index+1)
	}
}

// Table draws every pile of t with its label
func (r *Renderer) Table(w io.Writer, t *pile.Table) error {
	l := r.Layout
	c := newCanvas(l.Width(), l.Height(t))

	for _, p := range t.All() {
		anchor := l.Anchor(p.Ref())
		x, y := int(anchor.X), int(anchor.Y)
		c.put(x, y-1, strings.ToUpper(Name(p.Ref())), "")

		cards := p.Cards()
		if len(cards) == 0 {
			r.drawPlaceholder(c, x, y)
			continue
		}
		if p.Kind() != pile.Tableau {
			// only the top card of a squared pile is visible
			top := cards[len(cards)-1]
			r.drawCard(c, x, y, top, t.Arena.FaceUp(top))
			if p.Kind() == pile.Stock {
				c.put(x+1, y+l.CardHeight-1, fmt.Sprintf("%d", len(cards)), r.fg(r.Palette.Back))
			}
			continue
		}
		for i, id := range cards {
			r.drawCard(c, x, l.CardY(p, i), id, t.Arena.FaceUp(id))
		}
	}

	return c.writeTo(w)
}

// Status prints a one-line summary under the table
func (r *Renderer) Status(w io.Writer, t *pile.Table, seed uint64, won bool) {
	onFoundations := 0
	for _, f := range t.Foundations {
		onFoundations += f.Len()
	}
	fmt.Fprintln(w,
		colorize.CyanString("Seed: ")+colorize.HiWhiteString("%d", seed)+"  "+
			colorize.CyanString("Stock: ")+colorize.HiWhiteString("%d", t.Stock.Len())+"  "+
			colorize.CyanString("Waste: ")+colorize.HiWhiteString("%d", t.Waste.Len())+"  "+
			colorize.CyanString("Foundations: ")+colorize.HiWhiteString("%d/%d", onFoundations, card.DeckSize))
	if won {
		Banner(w)
	}
}

// Banner prints the win message
func Banner(w io.Writer) {
	colorize.New(colorize.FgHiYellow, colorize.Bold).Fprintln(w, "🎉 You Win! 🎉")
}

// ParseName reads a pile address written by Name
func ParseName(s string) (pile.Ref, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	switch in {
	case "w", "waste":
		return pile.Ref{Kind: pile.Waste}, nil
	case "s", "stock":
		return pile.Ref{Kind: pile.Stock}, nil
	}

	var kind pile.Kind
	var count int
	switch {
	case strings.HasPrefix(in, "f"):
		kind, count = pile.Foundation, pile.FoundationCount
	case strings.HasPrefix(in, "t"):
		kind, count = pile.Tableau, pile.TableauCount
	default:
		return pile.Ref{}, fmt.Errorf("unknown pile: %s", s)
	}

	var n int
	if _, err := fmt.Sscanf(in[1:], "%d", &n); err != nil || n < 1 || n > count {
		return pile.Ref{}, fmt.Errorf("unknown pile: %s", s)
	}
	return pile.Ref{Kind: kind, Index: n - 1}, nil
}
