package item

import "github.com/dhdaines-go/playout/geom"

// Glyph is a single positioned, sized, oriented character produced by
// the external glyph source (see the glyphsource package for one
// concrete implementation). Glyphs are immutable once created.
type Glyph struct {
	Box         geom.Rect
	Text        string
	Orientation Orientation
	Advance     float64
	Upright     bool
}

// NewGlyph builds a Glyph. If text has no unicode mapping, the glyph
// source is expected to have already substituted '?' before calling
// this constructor. NewGlyph panics on a malformed box (X1 < X0 or
// Y1 < Y0).
func NewGlyph(box geom.Rect, text string, orientation Orientation, advance float64, upright bool) Glyph {
	if box.X1 < box.X0 || box.Y1 < box.Y0 {
		panic("item: malformed glyph bbox")
	}
	return Glyph{Box: box, Text: text, Orientation: orientation, Advance: advance, Upright: upright}
}

// BBox returns the glyph's bounding box.
func (g *Glyph) BBox() geom.Rect {
	return g.Box
}

// Width returns the glyph bbox's width.
func (g *Glyph) Width() float64 {
	return g.Box.Width()
}

// Height returns the glyph bbox's height.
func (g *Glyph) Height() float64 {
	return g.Box.Height()
}

// Size is the glyph's font-derived size: height for horizontal glyphs,
// width for vertical ones. Line-distance tolerances are scaled by it.
func (g *Glyph) Size() float64 {
	if g.Orientation == Vertical {
		return g.Width()
	}
	return g.Height()
}

// TextOf returns the glyph's unicode text.
func (g *Glyph) TextOf() string {
	return g.Text
}

// Compatible is the hook §4.4 reserves for future font/style filtering
// between adjacent glyphs. It always returns true today.
func (g *Glyph) Compatible(other *Glyph) bool {
	return true
}

// Anon is synthetic, position-less text inserted by the line aggregator:
// an inter-word space or the line-terminating newline.
type Anon struct {
	Text string
}

// NewAnon builds a synthetic text fragment.
func NewAnon(text string) Anon {
	return Anon{Text: text}
}

// TextOf returns the synthetic text.
func (a *Anon) TextOf() string {
	return a.Text
}
