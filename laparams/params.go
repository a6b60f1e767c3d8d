// Package laparams defines LAParams, the configuration record that
// tunes every tolerance in the clustering pipeline.
package laparams

// WritingMode is advisory only; nothing in this module's clustering
// reads it.
type WritingMode string

const (
	WritingModeLRTB WritingMode = "lr-tb"
	WritingModeTBRL WritingMode = "tb-rl"
)

// LAParams is a record of clustering tolerances, built with New and
// adjusted in place through its Set methods. It is not frozen: nothing
// stops a Set call after the record has been handed to the analyze
// package. A nil *LAParams passed to the analyze
// package suppresses layout analysis entirely, leaving a page's items
// untouched.
type LAParams struct {
	writingMode WritingMode
	lineOverlap float64
	charMargin  float64
	lineMargin  float64
	wordMargin  float64
	allTexts    bool
}

// New returns an LAParams populated with the module's defaults:
// line_overlap=0.5, char_margin=2.0, line_margin=0.5, word_margin=0.1,
// all_texts=false, writing_mode=lr-tb.
func New() *LAParams {
	return &LAParams{
		writingMode: WritingModeLRTB,
		lineOverlap: 0.5,
		charMargin:  2.0,
		lineMargin:  0.5,
		wordMargin:  0.1,
		allTexts:    false,
	}
}

// WritingMode returns the advisory writing mode.
func (p *LAParams) WritingMode() WritingMode { return p.writingMode }

// SetWritingMode overrides the advisory writing mode.
func (p *LAParams) SetWritingMode(m WritingMode) { p.writingMode = m }

// LineOverlap is the fraction of the shorter side counted as "on the
// same line" by the line aggregator's adjacency test.
func (p *LAParams) LineOverlap() float64 { return p.lineOverlap }

// SetLineOverlap overrides LineOverlap.
func (p *LAParams) SetLineOverlap(v float64) { p.lineOverlap = v }

// CharMargin is the multiplier on glyph width/height used for the
// inter-glyph gap tolerance within a line.
func (p *LAParams) CharMargin() float64 { return p.charMargin }

// SetCharMargin overrides CharMargin.
func (p *LAParams) SetCharMargin(v float64) { p.charMargin = v }

// LineMargin is the fractional widening applied to a line's bbox when
// the box aggregator searches for neighboring lines.
func (p *LAParams) LineMargin() float64 { return p.lineMargin }

// SetLineMargin overrides LineMargin.
func (p *LAParams) SetLineMargin(v float64) { p.lineMargin = v }

// WordMargin is the multiplier for the whitespace-insertion threshold.
// A value of 0 disables synthetic space insertion entirely (item.TextLine's
// Add gates on this rather than letting the arithmetic degrade
// to zero, matching the distinction between "no gap tolerated" and
// "feature off").
func (p *LAParams) WordMargin() float64 { return p.wordMargin }

// SetWordMargin overrides WordMargin.
func (p *LAParams) SetWordMargin(v float64) { p.wordMargin = v }

// AllTexts reports whether figures are analyzed recursively.
func (p *LAParams) AllTexts() bool { return p.allTexts }

// SetAllTexts overrides AllTexts.
func (p *LAParams) SetAllTexts(v bool) { p.allTexts = v }
