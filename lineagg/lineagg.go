// Package lineagg implements the one-pass adjacency grouping of glyphs
// into horizontal or vertical text lines.
package lineagg

import (
	"github.com/dhdaines-go/playout/item"
	"github.com/dhdaines-go/playout/laparams"
)

// Lines groups glyphs, in drawing order, into finalized text lines per
// the adjacency predicate and streaming rule: a single current line is
// maintained and flushed whenever the next glyph no longer matches its
// orientation. When no current line is open, a vertical line is started
// if only the vertical flag is set, and a horizontal line if the
// horizontal flag is set (alone or together with the vertical flag).
// When neither flag is set, no line is opened: the previous glyph is
// emitted as its own singleton horizontal line and the current glyph
// becomes the new previous glyph.
func Lines(glyphs []item.Glyph, params *laparams.LAParams) []*item.TextLine {
	var lines []*item.TextLine
	var current *item.TextLine
	var prev *item.Glyph
	haveCurrent := false

	for i := range glyphs {
		g := &glyphs[i]
		if prev != nil {
			hflag, vflag := adjacency(prev, g, params)
			switch {
			case haveCurrent && ((hflag && current.Orientation == item.Horizontal) ||
				(vflag && current.Orientation == item.Vertical)):
				current.Add(*g)
			case haveCurrent:
				lines = append(lines, current.Finish())
				current = nil
				haveCurrent = false
			default:
				switch {
				case vflag && !hflag:
					current = item.NewTextLine(item.Vertical, params.WordMargin())
					current.Add(*prev)
					current.Add(*g)
					haveCurrent = true
				case hflag:
					current = item.NewTextLine(item.Horizontal, params.WordMargin())
					current.Add(*prev)
					current.Add(*g)
					haveCurrent = true
				default:
					// Neither flag set: prev is emitted alone and g
					// becomes the new prev.
					singleton := item.NewTextLine(item.Horizontal, params.WordMargin())
					singleton.Add(*prev)
					lines = append(lines, singleton.Finish())
				}
			}
		}
		prev = g
	}

	if !haveCurrent && prev != nil {
		singleton := item.NewTextLine(item.Horizontal, params.WordMargin())
		singleton.Add(*prev)
		current = singleton
		haveCurrent = true
	}
	if haveCurrent {
		lines = append(lines, current.Finish())
	}
	return lines
}

// adjacency computes the independent horizontal/vertical adjacency
// flags between the previous glyph a and the current glyph b. Glyphs of
// different orientations are never adjacent.
func adjacency(a, b *item.Glyph, params *laparams.LAParams) (hflag, vflag bool) {
	if !a.Compatible(b) || a.Orientation != b.Orientation {
		return false, false
	}
	ab, bb := a.BBox(), b.BBox()

	if ab.VOverlaps(bb) &&
		minFloat(a.Height(), b.Height())*params.LineOverlap() < ab.VOverlapHeight(bb) &&
		ab.HDistance(bb) < maxFloat(a.Width(), b.Width())*params.CharMargin() {
		hflag = true
	}
	if ab.HOverlaps(bb) &&
		minFloat(a.Width(), b.Width())*params.LineOverlap() < ab.HOverlapWidth(bb) &&
		ab.VDistance(bb) < maxFloat(a.Height(), b.Height())*params.CharMargin() {
		vflag = true
	}
	return hflag, vflag
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
