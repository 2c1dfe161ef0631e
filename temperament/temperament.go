// Package temperament generates the frequency lattice for a tuning
// system. In musical tuning, a temperament defines the notes (semitones)
// in an octave. Most modern Western instruments are tuned in the equal
// temperament system based on the 12th root of 2; many traditional
// temperaments are based on ratios.
package temperament

import (
	"fmt"
	"math"
	"strings"

	"github.com/RyanBlaney/sonido-teoria/logging"
)

// Catalog temperament names.
const (
	Equal                = "equal"
	JustIntonation       = "just intonation"
	Pythagorean          = "pythagorean"
	ThirdCommaMeantone   = "third comma meantone"
	QuarterCommaMeantone = "quarter comma meantone"
)

// C0 is the default base frequency in Hertz: C in octave 0.
const C0 = 16.3516

// DefaultNumberOfOctaves is the span generated when none is set.
const DefaultNumberOfOctaves = 8

// The intervals define which ratios are used to generate the notes
// within a given temperament.
var defaultIntervals = []string{
	"perfect 1",
	"minor 2",
	"major 2",
	"minor 3",
	"major 3",
	"perfect 4",
	"diminished 5",
	"perfect 5",
	"minor 6",
	"major 6",
	"minor 7",
	"major 7",
	"perfect 8",
}

var twelveToneEqualRatios = map[string]float64{
	"perfect 1":    1,
	"minor 2":      math.Pow(2, 1.0/12),
	"augmented 1":  math.Pow(2, 1.0/12),
	"major 2":      math.Pow(2, 2.0/12),
	"augmented 2":  math.Pow(2, 3.0/12),
	"minor 3":      math.Pow(2, 3.0/12),
	"major 3":      math.Pow(2, 4.0/12),
	"augmented 3":  math.Pow(2, 5.0/12),
	"diminished 4": math.Pow(2, 4.0/12),
	"perfect 4":    math.Pow(2, 5.0/12),
	"augmented 4":  math.Pow(2, 6.0/12),
	"diminished 5": math.Pow(2, 6.0/12),
	"perfect 5":    math.Pow(2, 7.0/12),
	"augmented 5":  math.Pow(2, 8.0/12),
	"minor 6":      math.Pow(2, 8.0/12),
	"major 6":      math.Pow(2, 9.0/12),
	"augmented 6":  math.Pow(2, 10.0/12),
	"minor 7":      math.Pow(2, 10.0/12),
	"major 7":      math.Pow(2, 11.0/12),
	"augmented 7":  2,
	"diminished 8": math.Pow(2, 11.0/12),
	"perfect 8":    2,
}

var justIntonationRatios = map[string]float64{
	"perfect 1":    1,
	"minor 2":      16.0 / 15,
	"augmented 1":  16.0 / 15,
	"major 2":      9.0 / 8,
	"augmented 2":  6.0 / 5,
	"minor 3":      6.0 / 5,
	"major 3":      5.0 / 4,
	"augmented 3":  4.0 / 3,
	"diminished 4": 5.0 / 4,
	"perfect 4":    4.0 / 3,
	"augmented 4":  7.0 / 5,
	"diminished 5": 7.0 / 5,
	"perfect 5":    3.0 / 2,
	"augmented 5":  8.0 / 5,
	"minor 6":      8.0 / 5,
	"major 6":      5.0 / 3,
	"augmented 6":  16.0 / 9,
	"minor 7":      16.0 / 9,
	"major 7":      15.0 / 8,
	"augmented 7":  2,
	"diminished 8": 15.0 / 8,
	"perfect 8":    2,
}

var pythagoreanRatios = map[string]float64{
	"perfect 1":    1,
	"minor 2":      256.0 / 243,
	"augmented 1":  256.0 / 243,
	"major 2":      9.0 / 8,
	"augmented 2":  32.0 / 27,
	"minor 3":      32.0 / 27,
	"major 3":      81.0 / 64,
	"augmented 3":  4.0 / 3,
	"diminished 4": 81.0 / 64,
	"perfect 4":    4.0 / 3,
	"augmented 4":  729.0 / 512,
	"diminished 5": 729.0 / 512,
	"perfect 5":    3.0 / 2,
	"augmented 5":  128.0 / 81,
	"minor 6":      128.0 / 81,
	"major 6":      27.0 / 16,
	"augmented 6":  16.0 / 9,
	"minor 7":      16.0 / 9,
	"major 7":      243.0 / 128,
	"augmented 7":  2,
	"diminished 8": 243.0 / 128,
	"perfect 8":    2,
}

var thirdCommaMeantoneRatios = map[string]float64{
	"perfect 1":    1,
	"minor 2":      1.075693,
	"augmented 1":  1.037156,
	"major 2":      1.115656,
	"augmented 2":  1.157109,
	"minor 3":      1.200103,
	"major 3":      1.244694,
	"augmented 3":  1.290943,
	"diminished 4": 1.290943,
	"perfect 4":    1.338902,
	"augmented 4":  1.38865,
	"diminished 5": 1.440247,
	"perfect 5":    1.493762,
	"augmented 5":  1.549255,
	"minor 6":      1.60682,
	"major 6":      1.666524,
	"augmented 6":  1.728445,
	"minor 7":      1.792668,
	"major 7":      1.859266,
	"augmented 7":  1.92835,
	"diminished 8": 1.92835,
	"perfect 8":    2,
}

var thirdCommaMeantoneIntervals = []string{
	"perfect 1",
	"augmented 1",
	"minor 2",
	"major 2",
	"augmented 2",
	"minor 3",
	"major 3",
	"diminished 4",
	"perfect 4",
	"augmented 4",
	"diminished 5",
	"perfect 5",
	"augmented 5",
	"minor 6",
	"major 6",
	"augmented 6",
	"minor 7",
	"major 7",
	"diminished 8",
	"perfect 8",
}

var quarterCommaMeantoneRatios = map[string]float64{
	"perfect 1":    1,
	"minor 2":      16.0 / 15,
	"augmented 1":  25.0 / 24,
	"major 2":      9.0 / 8,
	"augmented 2":  75.0 / 64,
	"minor 3":      6.0 / 5,
	"major 3":      5.0 / 4,
	"diminished 4": 32.0 / 25,
	"augmented 3":  125.0 / 96,
	"perfect 4":    4.0 / 3,
	"augmented 4":  25.0 / 18,
	"diminished 5": 36.0 / 25,
	"perfect 5":    3.0 / 2,
	"augmented 5":  25.0 / 16,
	"minor 6":      8.0 / 5,
	"major 6":      5.0 / 3,
	"augmented 6":  125.0 / 72,
	"minor 7":      9.0 / 5,
	"major 7":      15.0 / 8,
	"diminished 8": 48.0 / 25,
	"augmented 7":  125.0 / 64,
	"perfect 8":    2,
}

var quarterCommaMeantoneIntervals = []string{
	"perfect 1",
	"augmented 1",
	"minor 2",
	"major 2",
	"augmented 2",
	"minor 3",
	"major 3",
	"diminished 4",
	"augmented 3",
	"perfect 4",
	"augmented 4",
	"diminished 5",
	"perfect 5",
	"augmented 5",
	"minor 6",
	"major 6",
	"augmented 6",
	"minor 7",
	"major 7",
	"diminished 8",
	"augmented 7",
	"perfect 8",
}

// Temperament holds the frequency lattice for one tuning system. Each
// temperament contains a list of note frequencies in Hertz and a
// parallel set of generic note names, n0..n(L-1), per octave.
type Temperament struct {
	name             string
	octaveLength     int // in semitones
	baseFrequency    float64
	numberOfOctaves  int
	freqs            []float64
	genericNoteNames []string
}

// New creates a temperament from the catalog. Unknown names fall back
// to equal temperament with a warning. The lattice is generated
// immediately but can subsequently be regenerated.
func New(name string) *Temperament {
	t := &Temperament{
		name:            name,
		octaveLength:    12,
		baseFrequency:   C0,
		numberOfOctaves: DefaultNumberOfOctaves,
	}
	t.Generate(t.name)
	return t
}

// SetBaseFrequency sets the frequency (in Hertz) used to seed the
// calculation of the lattice. Takes effect on the next Generate call.
func (t *Temperament) SetBaseFrequency(baseFrequency float64) {
	t.baseFrequency = baseFrequency
}

// BaseFrequency returns the frequency (in Hertz) used to seed the
// calculations.
func (t *Temperament) BaseFrequency() float64 {
	return t.baseFrequency
}

// SetNumberOfOctaves sets how many octaves are generated (8 octaves in
// equal temperament span 96 notes). Values below 1 are clamped to 1.
func (t *Temperament) SetNumberOfOctaves(numberOfOctaves int) {
	if numberOfOctaves < 1 {
		numberOfOctaves = 1
	}
	t.numberOfOctaves = numberOfOctaves
}

// NumberOfOctaves returns the number of octaves in the temperament.
func (t *Temperament) NumberOfOctaves() int {
	return t.numberOfOctaves
}

// Name returns the name of the temperament.
func (t *Temperament) Name() string {
	return t.name
}

// Freqs returns all of the frequencies in the temperament, in Hertz.
func (t *Temperament) Freqs() []float64 {
	return t.freqs
}

// NoteNames returns the generic note names assigned to the notes of one
// octave: n0, n1, ...
func (t *Temperament) NoteNames() []string {
	return t.genericNoteNames
}

// NoteName returns the generic name of the note at a modal index,
// clamped to the octave.
func (t *Temperament) NoteName(modalIndex int) string {
	if len(t.genericNoteNames) == 0 {
		return ""
	}
	if modalIndex < 0 {
		modalIndex = 0
	}
	if modalIndex > len(t.genericNoteNames)-1 {
		modalIndex = len(t.genericNoteNames) - 1
	}
	return t.genericNoteNames[modalIndex]
}

// ModalIndex returns the position of a generic note name within the
// octave, or -1 if the name is unknown.
func (t *Temperament) ModalIndex(noteName string) int {
	for i, name := range t.genericNoteNames {
		if name == noteName {
			return i
		}
	}
	return -1
}

// FreqByIndex returns the frequency (in Hertz) of a note by index into
// the full lattice. Out-of-range indices clamp to the bounds.
func (t *Temperament) FreqByIndex(pitchIndex int) float64 {
	if len(t.freqs) == 0 {
		return 0
	}
	if pitchIndex < 0 {
		pitchIndex = 0
	}
	if pitchIndex > len(t.freqs)-1 {
		pitchIndex = len(t.freqs) - 1
	}
	return t.freqs[pitchIndex]
}

// FreqByModalIndexAndOctave returns the frequency that corresponds to
// an index within an octave and an octave number. Out-of-range results
// clamp to the lattice bounds.
func (t *Temperament) FreqByModalIndexAndOctave(modalIndex, octave int) float64 {
	if len(t.freqs) == 0 {
		return 0
	}
	i := octave*t.octaveLength + modalIndex
	if i < 0 {
		return t.freqs[0]
	}
	if i > len(t.freqs)-1 {
		return t.freqs[len(t.freqs)-1]
	}
	return t.freqs[i]
}

// FreqByGenericNameAndOctave returns the frequency that corresponds to
// a generic note name and octave. Unknown names return 0 and an error.
func (t *Temperament) FreqByGenericNameAndOctave(noteName string, octave int) (float64, error) {
	if len(t.freqs) == 0 {
		return 0, nil
	}
	ni := t.ModalIndex(noteName)
	if ni < 0 {
		logging.Warn("note not found in generic note names", logging.Fields{
			"note": noteName,
		})
		return 0, fmt.Errorf("note %s not found in generic note names", noteName)
	}
	i := octave*t.octaveLength + ni
	if i < 0 {
		return t.freqs[0], nil
	}
	if i > len(t.freqs)-1 {
		return t.freqs[len(t.freqs)-1], nil
	}
	return t.freqs[i], nil
}

// NumberOfSemitonesInOctave returns the number of notes defined per
// octave.
func (t *Temperament) NumberOfSemitonesInOctave() int {
	return t.octaveLength
}

func (t *Temperament) generateGenericNoteNames() {
	t.genericNoteNames = make([]string, t.octaveLength)
	for i := range t.genericNoteNames {
		t.genericNoteNames[i] = fmt.Sprintf("n%d", i)
	}
}

// Generate creates one of the predefined temperaments based on the
// rules for generating the frequencies and the selected intervals used
// to determine which frequencies to include. A rule might be a series
// of ratios between steps, as in the Pythagorean temperament, or a
// fixed ratio, such as the twelfth root of two for equal temperament.
func (t *Temperament) Generate(name string) {
	t.name = strings.ToLower(name)

	var intervals []string
	var ratios map[string]float64
	switch t.name {
	case ThirdCommaMeantone:
		intervals = thirdCommaMeantoneIntervals
		ratios = thirdCommaMeantoneRatios
	case QuarterCommaMeantone:
		intervals = quarterCommaMeantoneIntervals
		ratios = quarterCommaMeantoneRatios
	default:
		intervals = defaultIntervals
		switch t.name {
		case Equal:
			ratios = twelveToneEqualRatios
		case JustIntonation:
			ratios = justIntonationRatios
		case Pythagorean:
			ratios = pythagoreanRatios
		default:
			logging.Warn("unknown temperament; using equal temperament", logging.Fields{
				"name": name,
			})
			ratios = twelveToneEqualRatios
		}
	}

	t.octaveLength = len(intervals) - 1
	t.freqs = []float64{t.baseFrequency}

	for octave := 0; octave < t.numberOfOctaves; octave++ {
		c := t.freqs[len(t.freqs)-1]
		for i := 1; i < t.octaveLength; i++ {
			t.freqs = append(t.freqs, c*ratios[intervals[i]])
		}
	}

	t.generateGenericNoteNames()
}

// GenerateEqual generates an equal temperament with an arbitrary number
// of steps between the notes in an octave, using the Nth root of 2.
func (t *Temperament) GenerateEqual(numberOfSteps int) {
	nsteps := numberOfSteps
	if nsteps < 1 {
		nsteps = 1
	}

	t.name = fmt.Sprintf("name_%d", nsteps)
	t.octaveLength = nsteps
	t.freqs = []float64{t.baseFrequency}

	root := math.Pow(2, 1.0/float64(nsteps))
	for octave := 0; octave < t.numberOfOctaves; octave++ {
		for i := 1; i < t.octaveLength; i++ {
			t.freqs = append(t.freqs, t.freqs[len(t.freqs)-1]*root)
		}
	}

	t.generateGenericNoteNames()
}

// GenerateCustom defines a temperament with arbitrary rules. The
// ordered intervals list names the notes per octave and ratios supplies
// a ratio (between 1 and 2) for each; the final interval's ratio should
// always equal 2.
func (t *Temperament) GenerateCustom(intervals []string, ratios map[string]float64, name string) {
	if name == "" {
		name = "custom"
	}
	t.name = name
	t.octaveLength = len(intervals)
	t.freqs = []float64{t.baseFrequency}

	for octave := 0; octave < t.numberOfOctaves; octave++ {
		c := t.freqs[len(t.freqs)-1]
		for i := 1; i < t.octaveLength; i++ {
			t.freqs = append(t.freqs, c*ratios[intervals[i]])
		}
	}

	t.generateGenericNoteNames()
}

// String returns the temperament name and its frequency list.
func (t *Temperament) String() string {
	freqs := make([]string, len(t.freqs))
	for i, f := range t.freqs {
		freqs[i] = fmt.Sprintf("%0.2f", f+0.005)
	}
	return fmt.Sprintf("%s temperament:\n\n%s", t.name, strings.Join(freqs, "\n"))
}
