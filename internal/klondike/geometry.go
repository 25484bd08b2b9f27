package klondike

import "github.com/arcanaland/solitaire/internal/pile"

// Point is a pointer position in the UI's scene coordinates
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned region in scene coordinates
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the midpoint of r
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Bounds is where the UI draws a pile: the anchor cell of its bottom card
// and the vertical offset between stacked cards
type Bounds struct {
	Anchor   Rect
	SpacingY float64
}

// Geometry is the UI-supplied placement of every pile
type Geometry map[pile.Ref]Bounds

// Region returns the drop region of p. A tableau pile's region covers its
// whole fanned stack, other piles use their anchor cell.
func (geo Geometry) Region(p *pile.Pile) (Rect, bool) {
	b, ok := geo[p.Ref()]
	if !ok {
		return Rect{}, false
	}
	r := b.Anchor
	if p.Kind() == pile.Tableau && p.Len() > 1 {
		r.H = float64(p.Len()-1)*b.SpacingY + b.Anchor.H
	}
	return r, true
}

// findTarget returns the pile under pt. Stock is never a target. When
// regions overlap a tableau pile wins, otherwise the first hit in table order.
func (g *Game) findTarget(pt Point, geo Geometry) *pile.Pile {
	var candidates []*pile.Pile
	for _, p := range g.table.All() {
		if p.Kind() == pile.Stock {
			continue
		}
		if r, ok := geo.Region(p); ok && r.Contains(pt) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	for _, p := range candidates {
		if p.Kind() == pile.Tableau {
			return p
		}
	}
	return candidates[0]
}
