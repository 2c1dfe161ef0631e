// Package scale builds the abstract note sequence for one octave
// traversal of a mode. A scale is a selection of notes in an octave.
package scale

import (
	"fmt"

	"github.com/RyanBlaney/sonido-teoria/logging"
)

// Scale manages the notes selected from an octave by a half-steps
// pattern. The note names are generic (n0, n1, ...) so a scale is
// independent of any letter or solfege convention.
type Scale struct {
	numberOfSemitones int
	noteNames         []string
	notes             []string
	octaveDeltas      []int
}

// New builds a scale from a half-steps pattern and a starting index
// into the octave, e.g., [2, 2, 1, 2, 2, 2, 1] from index 0 selects a
// Major scale from C in a 12-step temperament. A nil or empty pattern
// means fully chromatic, sized to numberOfSemitones; otherwise the
// semitone count is the sum of the steps. The resulting sequence has
// one entry per step plus the closing octave note, which is the same
// name as the first.
func New(halfStepsPattern []int, startingIndex int, numberOfSemitones int) *Scale {
	s := &Scale{}

	if len(halfStepsPattern) == 0 {
		s.numberOfSemitones = numberOfSemitones
		halfStepsPattern = make([]int, s.numberOfSemitones)
		for i := range halfStepsPattern {
			halfStepsPattern[i] = 1
		}
	} else {
		for _, step := range halfStepsPattern {
			s.numberOfSemitones += step
		}
	}

	s.noteNames = make([]string, s.numberOfSemitones)
	for i := range s.noteNames {
		s.noteNames[i] = fmt.Sprintf("n%d", i)
	}

	i := startingIndex % len(s.noteNames)
	if i < 0 {
		i += len(s.noteNames)
	}
	if startingIndex < 0 || startingIndex >= len(s.noteNames) {
		logging.Warn("starting index out of range; wrapping into octave", logging.Fields{
			"starting_index": startingIndex,
			"semitones":      s.numberOfSemitones,
		})
	}
	octave := 0
	s.notes = []string{s.noteNames[i]}
	s.octaveDeltas = []int{octave}
	for _, step := range halfStepsPattern {
		i += step
		if i >= s.numberOfSemitones {
			octave++
			i -= s.numberOfSemitones
		}
		s.notes = append(s.notes, s.noteNames[i])
		s.octaveDeltas = append(s.octaveDeltas, octave)
	}
	return s
}

// NumberOfSemitones returns the number of notes in the temperament the
// scale was built against.
func (s *Scale) NumberOfSemitones() int {
	return len(s.noteNames)
}

// NoteNames returns the generic names of the notes defined by the
// temperament.
func (s *Scale) NoteNames() []string {
	return s.noteNames
}

// Notes returns the notes in the scale, a subset of the notes defined
// by the temperament. If format is non-nil it must supply one symbol
// per semitone; the scale is then projected through it, e.g., into
// letter names. A mismatched format logs a warning and the generic
// sequence is returned instead.
func (s *Scale) Notes(format []string) []string {
	if format == nil {
		return s.notes
	}
	if len(format) != s.numberOfSemitones {
		logging.Warn("format does not match number of semitones", logging.Fields{
			"format_len": len(format),
			"semitones":  s.numberOfSemitones,
		})
		return s.notes
	}
	notes := make([]string, len(s.notes))
	for i, name := range s.notes {
		notes[i] = format[s.indexOf(name)]
	}
	return notes
}

// NotesAndOctaveDeltas returns the scale notes along with the octave
// deltas. The deltas (0 or 1) mark notes that wrapped past the top of
// the octave, e.g., G3, A3, B3, C4...
func (s *Scale) NotesAndOctaveDeltas(format []string) ([]string, []int) {
	return s.Notes(format), s.octaveDeltas
}

func (s *Scale) indexOf(noteName string) int {
	for i, name := range s.noteNames {
		if name == noteName {
			return i
		}
	}
	return 0
}
