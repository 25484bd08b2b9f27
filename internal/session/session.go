// Package session runs an interactive Klondike game in a terminal. It turns
// typed commands into the pointer gestures the rules engine expects.
package session

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/klondike"
	"github.com/arcanaland/solitaire/internal/render"
)

const helpText = `Commands:
  mv <card> <pile>      move a card (and the run above it), e.g. "mv 9h t4", "mv as f1"
  drop <card> <x> <y>   release a card at a table cell, as a pointer would
  d, draw               click the stock: draw a card or turn the waste over
  new [seed]            deal a new game
  show                  redraw the table
  help                  show this help
  q, quit               leave the game
Piles: t1-t7 tableau, f1-f4 foundations, w waste, s stock.
Cards: rank then suit, e.g. 10s, qh, ac, K♠.`

// Session is one interactive game
type Session struct {
	Game     *klondike.Game
	Renderer *render.Renderer
	Out      io.Writer
	// Debug enables the "win" command
	Debug bool
	// NextSeed picks the seed for "new" without an argument
	NextSeed func() uint64
}

// New creates a session that narrates events to out
func New(r *render.Renderer, out io.Writer, logger *log.Logger) *Session {
	return &Session{
		Game: klondike.New(
			klondike.WithListener(render.Narrator{W: out}),
			klondike.WithLogger(logger),
		),
		Renderer: r,
		Out:      out,
		NextSeed: TimeSeed,
	}
}

// TimeSeed derives a seed from the clock
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Start deals the first game
func (s *Session) Start(seed uint64) error {
	return s.Game.NewGame(seed)
}

// Show draws the table and status line
func (s *Session) Show() error {
	if err := s.Renderer.Table(s.Out, s.Game.Table()); err != nil {
		return err
	}
	s.Renderer.Status(s.Out, s.Game.Table(), s.Game.Seed(), s.Game.Won())
	return nil
}

// Run reads commands from in until quit or end of input
func (s *Session) Run(in io.Reader) error {
	if err := s.Show(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.Out, colorize.CyanString("> "))
		if !scanner.Scan() {
			fmt.Fprintln(s.Out)
			return scanner.Err()
		}

		quit, redraw, err := s.Exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.Out, "Error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
		if redraw {
			if err := s.Show(); err != nil {
				return err
			}
		}
	}
}

// Exec runs one command line. It reports whether the player quit and
// whether the table changed enough to redraw.
func (s *Session) Exec(line string) (quit, redraw bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "q", "quit", "exit":
		return true, false, nil
	case "help", "h", "?":
		fmt.Fprintln(s.Out, helpText)
		return false, false, nil
	case "show":
		return false, true, nil
	case "d", "draw":
		return false, s.draw(), nil
	case "mv", "move":
		return false, true, s.move(args)
	case "drop":
		return false, true, s.drop(args)
	case "new":
		return false, true, s.newGame(args)
	case "win":
		if !s.Debug {
			return false, false, fmt.Errorf("win is only available with --debug")
		}
		s.Game.ForceWin()
		return false, true, nil
	default:
		return false, false, fmt.Errorf("unknown command: %s (try help)", cmd)
	}
}

// draw clicks the centre of the stock
func (s *Session) draw() bool {
	t := s.Game.Table()
	l := s.Renderer.Layout
	if !s.Game.HitStock(l.PointFor(t, t.Stock), l.Geometry(t)) {
		fmt.Fprintln(s.Out, "stock and waste are empty")
		return false
	}
	return true
}

func (s *Session) move(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: mv <card> <pile>")
	}
	c, err := card.Parse(args[0])
	if err != nil {
		return err
	}
	ref, err := render.ParseName(args[1])
	if err != nil {
		return err
	}

	t := s.Game.Table()
	l := s.Renderer.Layout
	s.Game.ResolveDrop(c.ID(), l.PointFor(t, t.Pile(ref)), l.Geometry(t))
	return nil
}

func (s *Session) drop(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: drop <card> <x> <y>")
	}
	c, err := card.Parse(args[0])
	if err != nil {
		return err
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid x: %s", args[1])
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid y: %s", args[2])
	}

	t := s.Game.Table()
	s.Game.ResolveDrop(c.ID(), klondike.Point{X: x, Y: y}, s.Renderer.Layout.Geometry(t))
	return nil
}

func (s *Session) newGame(args []string) error {
	seed := s.NextSeed()
	if len(args) > 0 {
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed: %s", args[0])
		}
		seed = n
	}
	return s.Game.NewGame(seed)
}
