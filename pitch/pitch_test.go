package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "uppercase with sharp glyph", input: "C" + Sharp, expected: "c#"},
		{name: "uppercase with flat glyph", input: "B" + Flat, expected: "bb"},
		{name: "double sharp glyph", input: "F" + DoubleSharp, expected: "fx"},
		{name: "double flat glyph", input: "G" + DoubleFlat, expected: "gbb"},
		{name: "natural stripped", input: "E" + Natural, expected: "e"},
		{name: "ascii passthrough", input: "g#", expected: "g#"},
		{name: "generic name", input: "N7", expected: "n7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, name := range []string{"c", "c#", "bb", "fx", "gbb", "n12"} {
		assert.Equal(t, name, Normalize(Normalize(name)))
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "C"+Sharp, Display("c#"))
	assert.Equal(t, "E"+Flat, Display("eb"))
	assert.Equal(t, "F"+DoubleSharp, Display("fx"))
	assert.Equal(t, "D"+DoubleFlat, Display("dbb"))
	assert.Equal(t, "A", Display("a"))
}

func TestStripAccidental(t *testing.T) {
	tests := []struct {
		input    string
		stripped string
		delta    int
	}{
		{"c#", "c", 1},
		{"eb", "e", -1},
		{"fx", "f", 2},
		{"gbb", "g", -2},
		{"d", "d", 0},
		// A lone b is the letter b, not a flat.
		{"b", "b", 0},
		{"bb", "b", -1},
		{"n12#", "n12", 1},
	}
	for _, tt := range tests {
		stripped, delta := StripAccidental(tt.input)
		assert.Equal(t, tt.stripped, stripped, tt.input)
		assert.Equal(t, tt.delta, delta, tt.input)
	}
}

func TestApplyAccidental(t *testing.T) {
	for _, tt := range []struct {
		base     string
		delta    int
		expected string
	}{
		{"c", 0, "c"},
		{"c", 1, "c#"},
		{"e", -1, "eb"},
		{"f", 2, "fx"},
		{"g", -2, "gbb"},
	} {
		got, err := ApplyAccidental(tt.base, tt.delta)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}

	_, err := ApplyAccidental("c", 3)
	assert.Error(t, err)
	_, err = ApplyAccidental("c", -3)
	assert.Error(t, err)
}
