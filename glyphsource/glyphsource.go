// Package glyphsource is a concrete external glyph source: it shapes
// unicode text against a real font using HarfBuzz (via
// go-text/typesetting) and emits the page-space glyphs the layout
// pipeline consumes. Font loading is the one genuine I/O boundary in
// this module, so it is the one place that returns a real error.
package glyphsource

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/dhdaines-go/playout/geom"
	"github.com/dhdaines-go/playout/item"
)

// Source shapes unicode text into glyphs with one loaded font face.
type Source struct {
	face *font.Face
	size float64
}

// NewSourceFromFile loads a TrueType/OpenType font from path and
// builds a Source that shapes text at sizePt points.
func NewSourceFromFile(path string, sizePt float64) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyphsource: reading font file: %w", err)
	}
	return NewSource(data, sizePt)
}

// NewSource parses a TrueType/OpenType font from data and builds a
// Source that shapes text at sizePt points.
func NewSource(data []byte, sizePt float64) (*Source, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyphsource: parsing font: %w", err)
	}
	return &Source{face: face, size: sizePt}, nil
}

// Shape runs text through HarfBuzz left-to-right and returns the
// resulting glyphs, positioned with origin at (x, y) in page space and
// advancing along x (horizontal) or -y (vertical). Every returned
// glyph is upright; this module's font stack never emits rotated
// glyphs.
func (s *Source) Shape(text string, x, y float64, orientation item.Orientation) []item.Glyph {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      floatToFixed(float32(s.size)),
		Script:    language.Script(0),
		Language:  language.NewLanguage("en"),
	}

	var shaper shaping.HarfbuzzShaper
	output := shaper.Shape(input)

	glyphs := make([]item.Glyph, 0, len(output.Glyphs))
	penX, penY := x, y
	for i, g := range output.Glyphs {
		glyphText := clusterText(runes, output.Glyphs, i)
		if g.GlyphID == 0 {
			log.Printf("glyphsource: no glyph for %q, substituting '?'", glyphText)
			glyphText = "?"
		}

		// HarfBuzz always shapes this run left-to-right (the teacher's
		// own shaper never requests vertical runs either), so XAdvance
		// is the one meaningful advance regardless of orientation; a
		// vertical run reuses it as the step down the page instead of
		// across it.
		step := fixedToFloat(g.XAdvance)
		offsetX := fixedToFloat(g.XOffset)
		offsetY := fixedToFloat(g.YOffset)

		var box geom.Rect
		var advance float64
		if orientation == item.Vertical {
			// The per-glyph ink extents HarfBuzz reports are
			// hinting-grid metrics, not a page-space bbox; approximate
			// the glyph cell with the face's nominal size across and
			// the advance down, offset by the shaper's positioning
			// hints. Good enough for grouping, which only cares about
			// relative adjacency.
			box = geom.Rect{
				X0: penX + offsetX - s.size/2,
				Y0: penY + offsetY - step,
				X1: penX + offsetX + s.size/2,
				Y1: penY + offsetY,
			}
			advance = -step
			penY -= step
		} else {
			box = geom.Rect{
				X0: penX + offsetX,
				Y0: penY + offsetY - s.size,
				X1: penX + offsetX + step,
				Y1: penY + offsetY,
			}
			advance = step
			penX += step
		}
		glyphs = append(glyphs, item.NewGlyph(box, glyphText, orientation, advance, true))
	}
	return glyphs
}

// clusterText recovers the source text for glyph i: the runes between
// its cluster index and the next glyph's cluster index (or the end of
// the run for the last glyph).
func clusterText(runes []rune, glyphs []shaping.Glyph, i int) string {
	start := int(glyphs[i].ClusterIndex)
	end := len(runes)
	if i+1 < len(glyphs) {
		next := int(glyphs[i+1].ClusterIndex)
		if next > start {
			end = next
		}
	}
	if start < 0 || start >= len(runes) || end > len(runes) || end <= start {
		return ""
	}
	return string(runes[start:end])
}

func floatToFixed(f float32) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

func fixedToFloat(i fixed.Int26_6) float64 {
	return float64(i) / 64.0
}
