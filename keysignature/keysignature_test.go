package keysignature

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-teoria/temperament"
)

func TestScaleSpelling(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		key   string
		scale []string
	}{
		{
			name:  "c major uses flats table",
			mode:  "major",
			key:   "c",
			scale: []string{"c", "d", "e", "f", "g", "a", "b"},
		},
		{
			name:  "g major prefers sharps",
			mode:  "major",
			key:   "g",
			scale: []string{"g", "a", "b", "c", "d", "e", "f#"},
		},
		{
			name:  "f major keeps flats",
			mode:  "major",
			key:   "f",
			scale: []string{"f", "g", "a", "bb", "c", "d", "e"},
		},
		{
			name:  "a minor has no accidentals",
			mode:  "minor",
			key:   "a",
			scale: []string{"a", "b", "c", "d", "e", "f", "g"},
		},
		{
			name:  "c sharp major respells every degree",
			mode:  "major",
			key:   "c#",
			scale: []string{"c#", "d#", "e#", "f#", "g#", "a#", "b#"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks := New(tt.mode, tt.key, 12)
			assert.Equal(t, tt.scale, ks.Scale())
			assert.Equal(t, len(tt.scale), ks.ModeLength())
		})
	}
}

func TestNoRepeatedLettersInLatinModes(t *testing.T) {
	for _, key := range []string{"c", "g", "d", "f", "bb", "eb", "e", "a"} {
		for _, mode := range []string{"major", "minor"} {
			ks := New(mode, key, 12)
			scale := ks.Scale()
			require.Len(t, scale, 7, "%s %s", key, mode)
			for i := 0; i < len(scale)-1; i++ {
				assert.NotEqual(t, scale[i][0], scale[i+1][0],
					"%s %s: %v", key, mode, scale)
			}
		}
	}
}

func TestConstructionFallbacks(t *testing.T) {
	ks := New("blues shuffle", "c", 12)
	assert.Equal(t, "chromatic", ks.Mode())
	assert.Equal(t, 12, ks.ModeLength())

	ks = New("major", "z", 12)
	assert.Equal(t, "c", ks.Key())

	ks = New("major", "", 0)
	assert.Equal(t, 12, ks.NumberOfSemitones())
	assert.Equal(t, "major", ks.Mode())

	ks = New("major", "c", -4)
	assert.Equal(t, 12, ks.NumberOfSemitones())
	assert.Equal(t, "major", ks.Mode())
	assert.Equal(t, []string{"c", "d", "e", "f", "g", "a", "b"}, ks.Scale())

	ks = NewCustom([]int{2, 2, 1, 2, 2, 2, 1}, "c", -1)
	assert.Equal(t, 12, ks.NumberOfSemitones())
	assert.Equal(t, 7, ks.ModeLength())
}

func TestMaqamKeyOverride(t *testing.T) {
	ks := New("hijaz kar", "g", 12)
	assert.Equal(t, "maqam", ks.Mode())
	assert.Equal(t, "c", ks.Key())
	assert.Equal(t, []int{1, 3, 1, 2, 1, 3, 1}, ks.HalfSteps())
	assert.Equal(t, "db", ks.Scale()[1])
}

func TestGenericKeyResolvesToLetter(t *testing.T) {
	ks := New("major", "n7", 12)
	assert.Equal(t, "g", ks.Key())
}

func TestScaleClosure(t *testing.T) {
	for _, tc := range []struct{ mode, key string }{
		{"major", "c"}, {"minor", "g"}, {"chromatic", "eb"}, {"dorian", "d"},
	} {
		ks := New(tc.mode, tc.key, 12)
		note, deltaOctave := ks.ModalPitchToLetter(ks.ModeLength())
		assert.Equal(t, ks.Scale()[0], note, "%s %s", tc.key, tc.mode)
		assert.Equal(t, 1, deltaOctave)
	}
}

func TestClosestNoteMajorC(t *testing.T) {
	ks := New("major", "c", 12)
	tests := []struct {
		target   string
		closest  string
		degree   int
		distance int
		inScale  bool
	}{
		{target: "c", closest: "c", degree: 0, distance: 0, inScale: true},
		{target: "f#", closest: "f", degree: 3, distance: 1, inScale: false},
		{target: "g#", closest: "g", degree: 4, distance: 1, inScale: false},
		{target: "cb", closest: "b", degree: 6, distance: 0, inScale: true},
		{target: "db", closest: "c", degree: 0, distance: 1, inScale: false},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			closest, degree, distance, err := ks.ClosestNote(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.closest, closest)
			assert.Equal(t, tt.degree, degree)
			assert.Equal(t, tt.distance, distance)
			assert.Equal(t, tt.inScale, ks.NoteInScale(tt.target))
		})
	}
}

func TestClosestNoteGenericInput(t *testing.T) {
	ks := New("major", "c", 12)
	closest, degree, distance, err := ks.ClosestNote("n6")
	require.NoError(t, err)
	assert.Equal(t, "n5", closest)
	assert.Equal(t, 3, degree)
	assert.Equal(t, 1, distance)
}

func TestTransformsMajorC(t *testing.T) {
	ks := New("major", "c", 12)

	note, deltaOctave, err := ks.ScalarTransform("c", 2)
	require.NoError(t, err)
	assert.Equal(t, "e", note)
	assert.Equal(t, 0, deltaOctave)

	// A pitch off the scale carries its distance over as an accidental.
	note, _, err = ks.ScalarTransform("c#", 2)
	require.NoError(t, err)
	assert.Equal(t, "f", note)

	note, _, err = ks.SemitoneTransform("c", 2)
	require.NoError(t, err)
	assert.Equal(t, "d", note)

	note, _, err = ks.SemitoneTransform("c#", 2)
	require.NoError(t, err)
	assert.Equal(t, "d#", note)

	note, deltaOctave, err = ks.SemitoneTransform("b", 1)
	require.NoError(t, err)
	assert.Equal(t, "c", note)
	assert.Equal(t, 1, deltaOctave)
}

func TestTransformsChromaticC(t *testing.T) {
	ks := New("chromatic", "c", 12)

	note, _, err := ks.ScalarTransform("c", 2)
	require.NoError(t, err)
	assert.Equal(t, "d", note)

	note, _, err = ks.ScalarTransform("c#", 2)
	require.NoError(t, err)
	assert.Equal(t, "eb", note)

	note, _, err = ks.SemitoneTransform("c#", 2)
	require.NoError(t, err)
	assert.Equal(t, "d#", note)

	note, deltaOctave, err := ks.SemitoneTransform("n0", -1)
	require.NoError(t, err)
	assert.Equal(t, "n11", note)
	assert.Equal(t, -1, deltaOctave)
}

func TestSemitoneTransformRoundTrip(t *testing.T) {
	ks := New("major", "g", 12)
	for _, start := range ks.Scale() {
		for _, n := range []int{1, 2, 5, 11, 13, -3} {
			note, _, err := ks.SemitoneTransform(start, n)
			require.NoError(t, err)
			back, _, err := ks.SemitoneTransform(note, -n)
			require.NoError(t, err)

			want, err := ks.ConvertToGenericNoteName(start)
			require.NoError(t, err)
			got, err := ks.ConvertToGenericNoteName(back)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s %+d", start, n)
		}
	}
}

func TestA440(t *testing.T) {
	ks := New("major", "c", 12)
	tt := temperament.New(temperament.Equal)

	generic, err := ks.ConvertToGenericNoteName("a")
	require.NoError(t, err)
	f, err := tt.FreqByGenericNameAndOctave(generic, 4)
	require.NoError(t, err)
	assert.Equal(t, 440, int(f+0.5))
}

func TestNineteenSemitoneCustomMode(t *testing.T) {
	tt := temperament.New(temperament.ThirdCommaMeantone)
	ks := NewCustom([]int{2, 2, 1, 2, 2, 2, 7, 1}, "n0", tt.NumberOfSemitonesInOctave())

	require.Len(t, ks.Scale(), 8)
	assert.Equal(t, "n18", ks.Scale()[7])

	closest, degree, distance, err := ks.ClosestNote("n12")
	require.NoError(t, err)
	assert.Equal(t, "n11", closest)
	assert.Equal(t, 6, degree)
	assert.Equal(t, 1, distance)

	note, _, err := ks.ScalarTransform("n5", 2)
	require.NoError(t, err)
	assert.Equal(t, "n9", note)
}

func TestCustomHalfStepsValidation(t *testing.T) {
	// The sum is forced to match the semitone count.
	ks := NewCustom([]int{2, 2, 2}, "c", 12)
	assert.Equal(t, []int{2, 2, 8}, ks.HalfSteps())

	// Non-positive steps are raised to 1 and the sum re-balanced.
	ks = NewCustom([]int{4, 0, 4}, "c", 12)
	sum := 0
	for _, step := range ks.HalfSteps() {
		require.Greater(t, step, 0)
		sum += step
	}
	assert.Equal(t, 12, sum)

	// An empty pattern falls back to chromatic.
	ks = NewCustom(nil, "c", 12)
	assert.Equal(t, 12, ks.ModeLength())
}

func TestPitchTypeClassification(t *testing.T) {
	ks := New("major", "c", 12)
	require.NoError(t, ks.SetCustomNoteNames([]string{"burdock", "chicory", "clover", "dock", "fern", "ivy", "nettle"}))

	tests := []struct {
		pitch    string
		expected PitchType
	}{
		{"n5", GenericNote},
		{"c#", LetterName},
		{"cb", LetterName},
		{"fx", LetterName},
		{"do", SolfegeName},
		{"sol#", SolfegeName},
		{"dha", EastIndianSolfegeName},
		{"5", ScalarModeNumber},
		{"clover", CustomName},
		{"mud", UnknownPitchType},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ks.PitchType(tt.pitch), tt.pitch)
	}
}

func TestConvertToGenericNoteName(t *testing.T) {
	ks := New("major", "c", 12)
	tests := []struct {
		pitch    string
		expected string
	}{
		{"c", "n0"},
		{"c#", "n1"},
		{"db", "n1"},
		{"e#", "n5"},
		{"cb", "n11"},
		{"a", "n9"},
		{"do", "n0"},
		{"sol", "n7"},
		{"ti", "n11"},
		{"pa", "n7"},
		{"5", "n7"},
		{"n3", "n3"},
	}
	for _, tt := range tests {
		got, err := ks.ConvertToGenericNoteName(tt.pitch)
		require.NoError(t, err, tt.pitch)
		assert.Equal(t, tt.expected, got, tt.pitch)
	}

	_, err := ks.ConvertToGenericNoteName("mud")
	assert.ErrorIs(t, err, ErrUnknownPitch)
}

func TestMovableSolfegeFollowsKey(t *testing.T) {
	ks := New("major", "g", 12)
	got, err := ks.ConvertToGenericNoteName("do")
	require.NoError(t, err)
	assert.Equal(t, "n7", got)
}

func TestFixedSolfege(t *testing.T) {
	ks := New("major", "g", 12)
	ks.SetFixedSolfege(true)
	assert.True(t, ks.FixedSolfege())

	// Fixed do is always c, regardless of key.
	got, err := ks.ConvertToGenericNoteName("do")
	require.NoError(t, err)
	assert.Equal(t, "n0", got)

	got, err = ks.ConvertToGenericNoteName("sol#")
	require.NoError(t, err)
	assert.Equal(t, "n8", got)
}

func TestGenericNoteNameConversions(t *testing.T) {
	ks := New("major", "c", 12)

	letter, err := ks.GenericNoteNameToLetterName("n7", true)
	require.NoError(t, err)
	assert.Equal(t, "g", letter)

	letter, err = ks.GenericNoteNameToLetterName("n10", false)
	require.NoError(t, err)
	assert.Equal(t, "bb", letter)

	solfege, err := ks.GenericNoteNameToSolfege("n7")
	require.NoError(t, err)
	assert.Equal(t, "sol", solfege)

	// Off-scale notes pick up an accidental from the distance.
	solfege, err = ks.GenericNoteNameToSolfege("n6")
	require.NoError(t, err)
	assert.Equal(t, "fa#", solfege)

	ei, err := ks.GenericNoteNameToEastIndianSolfege("n4")
	require.NoError(t, err)
	assert.Equal(t, "ga", ei)

	num, err := ks.GenericNoteNameToScalarModeNumber("n9")
	require.NoError(t, err)
	assert.Equal(t, "6", num)
}

func TestLetterRoundTrip(t *testing.T) {
	for _, tc := range []struct{ mode, key string }{
		{"major", "c"}, {"major", "g"}, {"minor", "a"},
	} {
		ks := New(tc.mode, tc.key, 12)
		prefer := preferSharps[fmt.Sprintf("%s %s", tc.key, tc.mode)]
		for _, note := range ks.Scale() {
			generic, err := ks.ConvertToGenericNoteName(note)
			require.NoError(t, err)
			letter, err := ks.GenericNoteNameToLetterName(generic, prefer)
			require.NoError(t, err)
			assert.Equal(t, note, letter, "%s %s", tc.key, tc.mode)
		}
	}
}

func TestSetCustomNoteNames(t *testing.T) {
	ks := New("major", "c", 12)

	err := ks.SetCustomNoteNames([]string{"one", "two"})
	assert.ErrorIs(t, err, ErrBadCustomNames)
	assert.Nil(t, ks.CustomNoteNames())

	names := []string{"one", "two", "three", "four", "five", "six", "seven"}
	require.NoError(t, ks.SetCustomNoteNames(names))
	assert.Equal(t, names, ks.CustomNoteNames())

	generic, err := ks.ConvertToGenericNoteName("three")
	require.NoError(t, err)
	assert.Equal(t, "n4", generic)

	custom, err := ks.GenericNoteNameToCustomNoteName("n7")
	require.NoError(t, err)
	assert.Equal(t, "five", custom)
}

func TestModalPitchToLetter(t *testing.T) {
	ks := New("major", "c", 12)
	tests := []struct {
		index       int
		note        string
		deltaOctave int
	}{
		{0, "c", 0},
		{2, "e", 0},
		{7, "c", 1},
		{8, "d", 1},
		{-1, "b", -1},
		{-8, "b", -2},
	}
	for _, tt := range tests {
		note, deltaOctave := ks.ModalPitchToLetter(tt.index)
		assert.Equal(t, tt.note, note, "index %d", tt.index)
		assert.Equal(t, tt.deltaOctave, deltaOctave, "index %d", tt.index)
	}
}

func TestString(t *testing.T) {
	ks := New("major", "c", 12)
	assert.Equal(t, "C MAJOR [2 2 1 2 2 2 1] [c d e f g a b c]", ks.String())
}

func TestSolfegeTables(t *testing.T) {
	ks := New("major", "c", 12)
	assert.Equal(t,
		[]string{"do", "re", "me", "fa", "sol", "la", "ti", "do"},
		ks.SolfegeNotes())
	assert.Equal(t,
		[]string{"sa", "re", "ga", "ma", "pa", "dha", "ni", "sa"},
		ks.EastIndianSolfegeNotes())
	assert.Equal(t,
		[]string{"1", "2", "3", "4", "5", "6", "7", "1"},
		ks.ScalarModeNumbers())
}
