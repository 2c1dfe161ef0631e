package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var letters = []string{"c", "db", "d", "eb", "e", "f", "gb", "g", "ab", "a", "bb", "b"}

func TestMajorPattern(t *testing.T) {
	s := New([]int{2, 2, 1, 2, 2, 2, 1}, 0, 12)
	assert.Equal(t, 12, s.NumberOfSemitones())
	assert.Equal(t,
		[]string{"n0", "n2", "n4", "n5", "n7", "n9", "n11", "n0"},
		s.Notes(nil))
	assert.Equal(t,
		[]string{"c", "d", "e", "f", "g", "a", "b", "c"},
		s.Notes(letters))
}

func TestStartingIndexTransposes(t *testing.T) {
	s := New([]int{2, 2, 1, 2, 2, 2, 1}, 7, 12)
	notes, deltas := s.NotesAndOctaveDeltas(nil)
	assert.Equal(t,
		[]string{"n7", "n9", "n11", "n0", "n2", "n4", "n6", "n7"},
		notes)
	require.Len(t, deltas, len(notes))
	// The walk crosses the octave boundary between n11 and n0.
	assert.Equal(t, 0, deltas[0])
	assert.Equal(t, 1, deltas[3])
	assert.Equal(t, 1, deltas[len(deltas)-1])
}

func TestStartingIndexWrapsIntoOctave(t *testing.T) {
	// A negative starting index wraps to the top of the octave.
	s := New([]int{2, 2, 1, 2, 2, 2, 1}, -1, 12)
	notes, deltas := s.NotesAndOctaveDeltas(nil)
	assert.Equal(t,
		[]string{"n11", "n1", "n3", "n4", "n6", "n8", "n10", "n11"},
		notes)
	assert.Equal(t, 1, deltas[1])

	// An index beyond the octave wraps back down.
	s = New([]int{2, 2, 1, 2, 2, 2, 1}, 13, 12)
	assert.Equal(t, "n1", s.Notes(nil)[0])
}

func TestEmptyPatternIsChromatic(t *testing.T) {
	s := New(nil, 0, 12)
	notes := s.Notes(nil)
	assert.Len(t, notes, 13)
	assert.Equal(t, "n0", notes[0])
	assert.Equal(t, "n11", notes[11])
	assert.Equal(t, "n0", notes[12])
}

func TestPatternDefinesSemitoneCount(t *testing.T) {
	s := New([]int{2, 2, 1, 2, 2, 2, 7, 1}, 0, 0)
	assert.Equal(t, 19, s.NumberOfSemitones())
	notes := s.Notes(nil)
	assert.Equal(t, "n18", notes[7])
	assert.Equal(t, notes[0], notes[len(notes)-1])
}

func TestFormatMismatchFallsBack(t *testing.T) {
	s := New([]int{2, 2, 1, 2, 2, 2, 7, 1}, 0, 0)
	assert.Equal(t, s.Notes(nil), s.Notes(letters))
}
