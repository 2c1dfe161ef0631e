// Package currentpitch tracks a pitch as it moves through a scale and
// temperament, keeping the generic note name, octave, semitone index,
// and frequency consistent across transpositions.
package currentpitch

import (
	"github.com/RyanBlaney/sonido-teoria/keysignature"
	"github.com/RyanBlaney/sonido-teoria/temperament"
)

// Defaults used when New is called with nil collaborators.
const (
	DefaultSemitoneIndex = 7 // g (sol) in an equal temperament tuning
	DefaultOctave        = 4
)

// CurrentPitch is a note within a scale and temperament.
type CurrentPitch struct {
	ks *keysignature.KeySignature
	t  *temperament.Temperament

	semitoneIndex int
	octave        int
	genericName   string
	freq          float64
}

// New creates a pitch state from a key signature, a temperament, an
// index into the semitones defined by the temperament, and an initial
// octave. A nil temperament defaults to equal temperament; a nil key
// signature defaults to C major over the temperament's semitones.
func New(ks *keysignature.KeySignature, t *temperament.Temperament, i, octave int) *CurrentPitch {
	if t == nil {
		t = temperament.New(temperament.Equal)
	}
	if ks == nil {
		ks = keysignature.New(keysignature.DefaultMode, keysignature.DefaultKey,
			t.NumberOfSemitonesInOctave())
	}

	p := &CurrentPitch{
		ks:            ks,
		t:             t,
		semitoneIndex: i,
		octave:        octave,
	}
	p.genericName = t.NoteName(p.semitoneIndex)
	p.freq = t.FreqByModalIndexAndOctave(p.semitoneIndex, p.octave)
	return p
}

// SemitoneTransposition moves the pitch by a number of half steps and
// recomputes the frequency.
func (p *CurrentPitch) SemitoneTransposition(numberOfHalfSteps int) error {
	genericName, deltaOctave, err := p.ks.SemitoneTransform(p.genericName, numberOfHalfSteps)
	if err != nil {
		return err
	}
	p.apply(genericName, deltaOctave)
	return nil
}

// ScalarTransposition moves the pitch by a number of scalar steps and
// recomputes the frequency.
func (p *CurrentPitch) ScalarTransposition(numberOfScalarSteps int) error {
	genericName, deltaOctave, err := p.ks.ScalarTransform(p.genericName, numberOfScalarSteps)
	if err != nil {
		return err
	}
	p.apply(genericName, deltaOctave)
	return nil
}

func (p *CurrentPitch) apply(genericName string, deltaOctave int) {
	p.genericName = genericName
	p.octave += deltaOctave
	p.semitoneIndex = p.t.ModalIndex(p.genericName)
	p.freq = p.t.FreqByModalIndexAndOctave(p.semitoneIndex, p.octave)
}

// Freq returns the frequency of the current pitch in Hertz.
func (p *CurrentPitch) Freq() float64 {
	return p.freq
}

// Octave returns the octave of the current pitch.
func (p *CurrentPitch) Octave() int {
	return p.octave
}

// GenericName returns the generic note name of the current pitch.
func (p *CurrentPitch) GenericName() string {
	return p.genericName
}

// SemitoneIndex returns the index of the current pitch within the
// semitones defined by the temperament.
func (p *CurrentPitch) SemitoneIndex() int {
	return p.semitoneIndex
}
