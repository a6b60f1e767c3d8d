package item

import (
	"testing"

	"github.com/dhdaines-go/playout/geom"
)

func TestGlyphSizeUsesOrientation(t *testing.T) {
	g := NewGlyph(geom.Rect{X0: 0, Y0: 0, X1: 8, Y1: 12}, "A", Horizontal, 8, true)
	if got, want := g.Size(), 12.0; got != want {
		t.Errorf("horizontal Size() = %v, want %v", got, want)
	}
	v := NewGlyph(geom.Rect{X0: 0, Y0: 0, X1: 8, Y1: 12}, "A", Vertical, 12, true)
	if got, want := v.Size(), 8.0; got != want {
		t.Errorf("vertical Size() = %v, want %v", got, want)
	}
}

func TestAnonTextOf(t *testing.T) {
	a := NewAnon(" ")
	if got, want := a.TextOf(), " "; got != want {
		t.Errorf("TextOf() = %q, want %q", got, want)
	}
}

func TestNonTextBBox(t *testing.T) {
	box := geom.Rect{X0: 1, Y0: 2, X1: 3, Y1: 4}
	n := NewNonText(box, NonTextRect)
	if got := n.BBox(); got != box {
		t.Errorf("BBox() = %+v, want %+v", got, box)
	}
}

func TestPageBBox(t *testing.T) {
	box := geom.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}
	pg := NewPage(1, 0, box, nil)
	if got := pg.BBox(); got != box {
		t.Errorf("BBox() = %+v, want %+v", got, box)
	}
	if pg.Layout != nil {
		t.Errorf("new page should have nil Layout before analysis")
	}
}
