package glyphsource

import (
	"testing"

	"github.com/go-text/typesetting/shaping"
)

func TestClusterTextSplitsOnClusterBoundaries(t *testing.T) {
	runes := []rune("Hi!")
	glyphs := []shaping.Glyph{
		{ClusterIndex: 0},
		{ClusterIndex: 1},
		{ClusterIndex: 2},
	}
	for i, want := range []string{"H", "i", "!"} {
		if got := clusterText(runes, glyphs, i); got != want {
			t.Errorf("clusterText(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestClusterTextHandlesMultiRuneCluster(t *testing.T) {
	runes := []rune("fi")
	glyphs := []shaping.Glyph{
		{ClusterIndex: 0},
	}
	if got, want := clusterText(runes, glyphs, 0), "fi"; got != want {
		t.Errorf("clusterText(0) = %q, want %q", got, want)
	}
}

func TestFixedFloatRoundTrip(t *testing.T) {
	f := floatToFixed(12.5)
	if got, want := fixedToFloat(f), 12.5; got != want {
		t.Errorf("fixedToFloat(floatToFixed(12.5)) = %v, want %v", got, want)
	}
}
