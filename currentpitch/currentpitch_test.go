package currentpitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-teoria/keysignature"
	"github.com/RyanBlaney/sonido-teoria/temperament"
)

func TestDefaults(t *testing.T) {
	p := New(nil, nil, DefaultSemitoneIndex, DefaultOctave)
	assert.Equal(t, "n7", p.GenericName())
	assert.Equal(t, 4, p.Octave())
	assert.Equal(t, 7, p.SemitoneIndex())
	// g4
	assert.InDelta(t, 392.0, p.Freq(), 0.01)
}

func TestDefaultKeySignatureIsMajor(t *testing.T) {
	// A nil key signature defaults to c major, so a scalar step from
	// g4 lands on a4, not g#4.
	p := New(nil, nil, DefaultSemitoneIndex, DefaultOctave)
	require.NoError(t, p.ScalarTransposition(1))
	assert.Equal(t, "n9", p.GenericName())
	assert.Equal(t, 4, p.Octave())
	assert.InDelta(t, 440.0, p.Freq(), 0.01)
}

func TestSemitoneTransposition(t *testing.T) {
	p := New(nil, nil, 7, 4)
	require.NoError(t, p.SemitoneTransposition(2))
	assert.Equal(t, "n9", p.GenericName())
	assert.Equal(t, 4, p.Octave())
	// a4
	assert.InDelta(t, 440.0, p.Freq(), 0.01)
}

func TestTranspositionCrossesOctave(t *testing.T) {
	p := New(nil, nil, 9, 4)
	require.NoError(t, p.SemitoneTransposition(3))
	assert.Equal(t, "n0", p.GenericName())
	assert.Equal(t, 5, p.Octave())
	// c5
	assert.InDelta(t, 523.25, p.Freq(), 0.01)

	require.NoError(t, p.SemitoneTransposition(-1))
	assert.Equal(t, "n11", p.GenericName())
	assert.Equal(t, 4, p.Octave())
}

func TestScalarTransposition(t *testing.T) {
	ks := keysignature.New("major", "c", 12)
	tt := temperament.New(temperament.Equal)
	p := New(ks, tt, 0, 4)
	assert.Equal(t, "n0", p.GenericName())

	// Two scale degrees up from c is e.
	require.NoError(t, p.ScalarTransposition(2))
	assert.Equal(t, "n4", p.GenericName())
	assert.Equal(t, 4, p.Octave())
	// e4
	assert.InDelta(t, 329.63, p.Freq(), 0.01)

	// Seven degrees complete the octave.
	require.NoError(t, p.ScalarTransposition(7))
	assert.Equal(t, "n4", p.GenericName())
	assert.Equal(t, 5, p.Octave())
}

func TestMeantonePitch(t *testing.T) {
	tt := temperament.New(temperament.ThirdCommaMeantone)
	ks := keysignature.NewCustom([]int{2, 2, 1, 2, 2, 2, 7, 1}, "n0",
		tt.NumberOfSemitonesInOctave())
	p := New(ks, tt, 0, 2)
	assert.Equal(t, "n0", p.GenericName())

	require.NoError(t, p.ScalarTransposition(3))
	assert.Equal(t, "n5", p.GenericName())
	assert.Equal(t, 2, p.Octave())
	assert.Equal(t, 5, p.SemitoneIndex())
}
