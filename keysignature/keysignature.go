// Package keysignature resolves a key and mode within a temperament
// into a concrete scale and provides pitch classification, notation
// conversion, transposition, and nearest-note queries over it.
//
// A key signature is a set of sharp, flat, and natural symbols. All of
// its tables are computed once at construction; afterwards every
// operation is a pure function over them, so concurrent readers may
// share an instance freely. SetCustomNoteNames is the one exception and
// must not run concurrently with reads on the same instance.
package keysignature

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-teoria/logging"
	"github.com/RyanBlaney/sonido-teoria/pitch"
	"github.com/RyanBlaney/sonido-teoria/scale"
)

// Construction defaults.
const (
	DefaultMode              = "major"
	DefaultKey               = "c"
	DefaultNumberOfSemitones = 12
)

// Sentinel errors returned by lookups and conversions. Every failing
// operation wraps one of these and still returns a best-effort value.
var (
	ErrUnknownPitch   = errors.New("unknown pitch name")
	ErrNoteNotFound   = errors.New("note not found")
	ErrBadAccidental  = errors.New("accidental out of range")
	ErrBadCustomNames = errors.New("custom names must cover the mode")
)

// KeySignature holds the resolved key, mode, and derived note tables.
type KeySignature struct {
	numberOfSemitones int
	noteNames         []string // generic names, n0..n(L-1)
	key               string
	mode              string
	halfSteps         []int
	keySignature      string // "<key> <mode>"
	forcedKey         string // set by maqam modes that imply a key

	scale []string // mode length + 1 entries; scale[0] == scale[last]

	solfegeNotes           []string
	eastIndianSolfegeNotes []string
	scalarModeNumbers      []string
	customNoteNames        []string
	fixedSolfege           bool
}

// New creates a key signature from a mode name, a key, and the number
// of semitones in the temperament used to define the scale.
//
// Construction never fails: an unresolvable mode falls back to
// chromatic and an unresolvable key to "c" (or "n0" outside 12-semitone
// temperaments), each with a logged diagnostic. Many operations assume
// a 12-semitone temperament; the letter, solfege, East Indian, and
// scalar-number notations do not exist outside it.
func New(mode, key string, numberOfSemitones int) *KeySignature {
	numberOfSemitones = normalizeSemitoneCount(numberOfSemitones)
	ks := newBare(numberOfSemitones)

	if ks.numberOfSemitones == 12 {
		ks.resolveNamedMode(mode)
		ks.resolveLetterKey(key)
	} else {
		// Outside 12 semitones only generic names apply; a string
		// mode always means fully chromatic.
		ks.mode = "custom"
		ks.halfSteps = make([]int, ks.numberOfSemitones)
		for i := range ks.halfSteps {
			ks.halfSteps[i] = 1
		}
		ks.resolveGenericKey(key)
	}

	ks.finish()
	return ks
}

// NewCustom creates a key signature from an explicit half-steps
// pattern instead of a mode name. The pattern is validated: length must
// be within [1, numberOfSemitones] and entries positive; if the sum
// differs from the semitone count the final entry is adjusted, and the
// pattern truncated should that adjustment make it non-positive.
func NewCustom(halfSteps []int, key string, numberOfSemitones int) *KeySignature {
	numberOfSemitones = normalizeSemitoneCount(numberOfSemitones)
	ks := newBare(numberOfSemitones)
	ks.mode = "custom"
	ks.halfSteps = validateHalfSteps(halfSteps, ks.numberOfSemitones)

	if ks.numberOfSemitones == 12 {
		ks.resolveLetterKey(key)
	} else {
		ks.resolveGenericKey(key)
	}

	ks.finish()
	return ks
}

// normalizeSemitoneCount coerces the semitone count into a usable
// value: zero means the default, and a negative count falls back to
// the default with a logged diagnostic.
func normalizeSemitoneCount(numberOfSemitones int) int {
	if numberOfSemitones < 0 {
		logging.Warn("semitone count must be positive; defaulting to 12", logging.Fields{
			"semitones": numberOfSemitones,
		})
		return DefaultNumberOfSemitones
	}
	if numberOfSemitones == 0 {
		return DefaultNumberOfSemitones
	}
	return numberOfSemitones
}

func newBare(numberOfSemitones int) *KeySignature {
	ks := &KeySignature{numberOfSemitones: numberOfSemitones}
	ks.noteNames = make([]string, numberOfSemitones)
	for i := range ks.noteNames {
		ks.noteNames[i] = fmt.Sprintf("n%d", i)
	}
	return ks
}

func (ks *KeySignature) finish() {
	ks.keySignature = fmt.Sprintf("%s %s", ks.key, ks.mode)
	ks.buildScale()
	if ks.numberOfSemitones == 12 {
		ks.solfegeNotes = ks.modeMapList(solfegeNames)
		ks.eastIndianSolfegeNotes = ks.modeMapList(eastIndianNames)
		ks.scalarModeNumbers = ks.modeMapList(scalarModeNumbers)
	}
}

// resolveNamedMode resolves a 12-semitone mode name against the
// catalog. Some maqam names imply a specific key, which overrides the
// key resolved later.
func (ks *KeySignature) resolveNamedMode(mode string) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = DefaultMode
	}
	if forcedKey, ok := maqamKeyOverrides[mode]; ok {
		ks.forcedKey = forcedKey
		mode = "maqam"
	}
	if halfSteps, ok := musicalModes[mode]; ok {
		ks.mode = mode
		ks.halfSteps = halfSteps
		return
	}
	logging.Warn("unknown mode; defaulting to chromatic", logging.Fields{
		"mode": mode,
	})
	ks.mode = "chromatic"
	ks.halfSteps = musicalModes["chromatic"]
}

// resolveLetterKey resolves a 12-semitone key spelling, accepting
// letter names, enharmonic spellings with double accidentals, and
// generic names.
func (ks *KeySignature) resolveLetterKey(key string) {
	if ks.forcedKey != "" {
		key = ks.forcedKey
	}
	key = pitch.Normalize(key)
	if contains(notesSharp, key) || contains(notesFlat, key) {
		ks.key = key
		return
	}
	// Some special cases, including double sharps and flats.
	switch {
	case key == "cb" || key == "fb" || key == "e#" || key == "b#":
		ks.key = key
	case strings.Contains(key, "x") && len(equivalents[key]) > 0:
		ks.key = equivalents[key][0]
	case strings.Contains(key, "bb") && len(equivalents[key]) > 0:
		ks.key = equivalents[key][0]
	case strings.HasPrefix(key, "n") && contains(ks.noteNames, key):
		ks.key = notesSharp[indexOf(ks.noteNames, key)]
	default:
		logging.Warn("unknown key; defaulting to c", logging.Fields{
			"key": key,
		})
		ks.key = DefaultKey
	}
}

// resolveGenericKey resolves a key for temperaments other than 12
// semitones, where only generic note names apply.
func (ks *KeySignature) resolveGenericKey(key string) {
	key = pitch.Normalize(key)
	if contains(ks.noteNames, key) {
		ks.key = key
		return
	}
	if key != "" && key[0] == 'n' {
		// Tolerate out-of-range generic names the way the scale walk
		// does: keep the spelling, start the walk at n0.
		ks.key = key
		return
	}
	logging.Warn("unknown key for temperament; defaulting to n0", logging.Fields{
		"key":       key,
		"semitones": ks.numberOfSemitones,
	})
	ks.key = "n0"
}

// validateHalfSteps checks a custom mode definition, coercing it into a
// pattern whose entries are positive and whose sum equals the semitone
// count.
func validateHalfSteps(halfSteps []int, numberOfSemitones int) []int {
	if len(halfSteps) > numberOfSemitones {
		logging.Warn("too many half steps in mode definition", logging.Fields{
			"len": len(halfSteps),
		})
		halfSteps = halfSteps[:numberOfSemitones]
	} else if len(halfSteps) < 1 {
		logging.Warn("too few half steps in mode definition", nil)
		return chromaticPattern(numberOfSemitones)
	}

	steps := make([]int, len(halfSteps))
	copy(steps, halfSteps)
	n := 0
	for i, step := range steps {
		if step < 1 {
			logging.Warn("mode increment must be > 0", logging.Fields{
				"step": step,
			})
			steps[i] = 1
		}
		n += steps[i]
	}
	if n < numberOfSemitones {
		steps[len(steps)-1] += numberOfSemitones - n
	}
	if n > numberOfSemitones {
		steps[len(steps)-1] -= n - numberOfSemitones
		if steps[len(steps)-1] < 1 {
			steps = steps[:len(steps)-1]
		}
	}
	return steps
}

func chromaticPattern(numberOfSemitones int) []int {
	steps := make([]int, numberOfSemitones)
	for i := range steps {
		steps[i] = 1
	}
	return steps
}

// preferSharpSpelling reports whether this key/mode pair spells its
// scale with sharps. Membership in the static preferred-sharps set is
// the whole rule; the default is flats.
func (ks *KeySignature) preferSharpSpelling() bool {
	return preferSharps[ks.keySignature]
}

// buildScale constructs the scale from the key and half-steps pattern.
// If the mode length is < 8 it is ensured that no letter name repeats.
// The constructed scale includes the closing octave note, hence it is
// one note longer than the mode.
func (ks *KeySignature) buildScale() {
	key := ks.key

	// Temperaments other than 12 semitones use the generic names.
	if ks.numberOfSemitones != 12 {
		start := indexOf(ks.noteNames, key)
		if start < 0 {
			start = 0
		}
		genericScale := scale.New(ks.halfSteps, start, ks.numberOfSemitones)
		ks.scale = append([]string(nil), genericScale.Notes(nil)...)
		ks.scale[0] = ks.key
		ks.scale[len(ks.scale)-1] = ks.scale[0]
		return
	}

	var thisScale []string
	i := 0
	if ks.preferSharpSpelling() {
		thisScale = notesSharp
		if j := indexOf(thisScale, key); j >= 0 {
			i = j
		} else if eq, ok := equivalentSharps[key]; ok {
			i = indexOf(thisScale, eq)
		}
	} else {
		thisScale = notesFlat
		if j := indexOf(thisScale, key); j >= 0 {
			i = j
		} else if eq, ok := equivalentFlats[key]; ok {
			i = indexOf(thisScale, eq)
		}
	}

	// Special-case these virtual keys.
	switch key {
	case "e#":
		i = indexOf(thisScale, "f")
	case "b#":
		i = indexOf(thisScale, "c")
	case "cb":
		i = indexOf(thisScale, "b")
	case "fb":
		i = indexOf(thisScale, "e")
	}

	genericScale := scale.New(ks.halfSteps, i, ks.numberOfSemitones)
	ks.scale = append([]string(nil), genericScale.Notes(thisScale)...)
	ks.scale[0] = ks.key

	// At this point the scale includes the first note of the next
	// octave; the Latin modes therefore have 8 notes.
	if len(ks.scale) < 9 {
		// Convert to the preferred accidental.
		if !ks.preferSharpSpelling() && strings.Contains(ks.key, "#") {
			ks.respellFlatsAsSharps()
		}
		ks.fixLetterSkips()
		ks.fixRepeatedLetters()
		ks.collapseDoubleAccidentals()
	} else if strings.Contains(ks.key, "#") {
		ks.respellFlatsAsSharps()
	}

	// The notation for the last note in the scale (the first note of
	// the next octave) matches the first note.
	ks.scale[len(ks.scale)-1] = ks.scale[0]
}

func (ks *KeySignature) respellFlatsAsSharps() {
	for i, note := range ks.scale {
		if strings.Contains(note, "b") && len(note) > 1 {
			if eq, ok := equivalentSharps[note]; ok {
				ks.scale[i] = eq
			}
		}
	}
}

// fixLetterSkips enforces, for Latin (7-note) modes, that no letter is
// skipped between consecutive degrees; the later note is respelled
// downward when a skip occurs.
func (ks *KeySignature) fixLetterSkips() {
	if len(ks.scale) != 8 {
		return
	}
	for i := 0; i < len(ks.scale)-1; i++ {
		i1 := indexOf(pitchLetters, ks.scale[i][:1])
		i2 := indexOf(pitchLetters, ks.scale[i+1][:1])
		if i2 < i1 {
			i2 += 7
		}
		if i2-i1 > 1 {
			if down, ok := convertDown[ks.scale[i+1]]; ok {
				ks.scale[i+1] = down
			}
		}
	}
}

// fixRepeatedLetters ensures no two consecutive degrees share a base
// letter, respelling the earlier note down or the later note up. The
// earlier note is never respelled into the letter two positions back.
func (ks *KeySignature) fixRepeatedLetters() {
	for i := 0; i < len(ks.scale)-1; i++ {
		if ks.scale[i][0] != ks.scale[i+1][0] {
			continue
		}
		if i == 0 {
			if up, ok := convertUp[ks.scale[i+1]]; ok {
				ks.scale[i+1] = up
			}
			continue
		}
		if down, ok := convertDown[ks.scale[i]]; ok && down[0] != ks.scale[i-1][0] {
			ks.scale[i] = down
		} else if up, ok := convertUp[ks.scale[i+1]]; ok {
			ks.scale[i+1] = up
		}
	}
}

// collapseDoubleAccidentals replaces interior double-sharp and
// double-flat spellings left over from the repeated-letter fixes with a
// plainer equivalent when one exists that keeps neighboring letters
// distinct.
func (ks *KeySignature) collapseDoubleAccidentals() {
	for i := 1; i < len(ks.scale)-1; i++ {
		_, delta := pitch.StripAccidental(ks.scale[i])
		if delta != 2 && delta != -2 {
			continue
		}
		for _, eq := range equivalents[ks.scale[i]] {
			_, d := pitch.StripAccidental(eq)
			if d == 2 || d == -2 {
				continue
			}
			if eq[0] == ks.scale[i-1][0] || eq[0] == ks.scale[i+1][0] {
				continue
			}
			ks.scale[i] = eq
			break
		}
	}
}

// modeMapList maps a 7-symbol catalog (e.g. the Solfege names) onto the
// scale by each degree's letter distance from the tonic. Modes shorter
// than 8 notes have unique letters per degree; longer modes repeat
// letters, so the letter's accidental is carried onto the symbol.
func (ks *KeySignature) modeMapList(sourceList []string) []string {
	returnList := make([]string, 0, len(ks.scale))
	modeLength := ks.ModeLength()
	offset := indexOf(pitchLetters, ks.scale[0][:1])
	for i := range ks.scale {
		j := indexOf(pitchLetters, ks.scale[i][:1]) - offset
		if j < 0 {
			j += len(sourceList)
		}
		if modeLength < 8 {
			returnList = append(returnList, sourceList[j])
		} else {
			_, a := pitch.StripAccidental(ks.scale[i])
			name, err := pitch.ApplyAccidental(sourceList[j], a)
			if err != nil {
				name = sourceList[j]
			}
			returnList = append(returnList, name)
		}
	}
	returnList[len(returnList)-1] = returnList[0]
	return returnList
}

// Scale returns the scalar notes in the scale, excluding the closing
// octave note.
func (ks *KeySignature) Scale() []string {
	return ks.scale[:len(ks.scale)-1]
}

// ModeLength returns how many scalar notes are in the scale.
func (ks *KeySignature) ModeLength() int {
	return len(ks.scale) - 1
}

// NumberOfSemitones returns the number of semitones in the temperament
// used to define the scale.
func (ks *KeySignature) NumberOfSemitones() int {
	return ks.numberOfSemitones
}

// Key returns the resolved key, e.g. "g" or "bb".
func (ks *KeySignature) Key() string {
	return ks.key
}

// Mode returns the resolved mode name, e.g. "major" or "custom".
func (ks *KeySignature) Mode() string {
	return ks.mode
}

// HalfSteps returns the half-steps pattern the scale was built from.
func (ks *KeySignature) HalfSteps() []int {
	return ks.halfSteps
}

// NoteNames returns the generic note names of the temperament.
func (ks *KeySignature) NoteNames() []string {
	return ks.noteNames
}

// SolfegeNotes returns the Solfege projection of the scale, e.g.
// [do re me fa sol la ti do] for a Major mode.
func (ks *KeySignature) SolfegeNotes() []string {
	return ks.solfegeNotes
}

// EastIndianSolfegeNotes returns the East Indian Solfege projection of
// the scale.
func (ks *KeySignature) EastIndianSolfegeNotes() []string {
	return ks.eastIndianSolfegeNotes
}

// ScalarModeNumbers returns the scalar-number projection of the scale.
func (ks *KeySignature) ScalarModeNumbers() []string {
	return ks.scalarModeNumbers
}

// SetCustomNoteNames stores user-defined names for the notes in the
// mode. A unique name must be supplied for every note; a mismatched
// length is an error and leaves any stored names unchanged.
//
// Names should not end with b or x or they will collide with the flat
// and double-sharp accidentals.
func (ks *KeySignature) SetCustomNoteNames(customNames []string) error {
	if len(customNames) != ks.ModeLength() {
		logging.Warn("a unique name must be assigned to every note in the mode", logging.Fields{
			"got":  len(customNames),
			"want": ks.ModeLength(),
		})
		return fmt.Errorf("%w: got %d names for mode length %d",
			ErrBadCustomNames, len(customNames), ks.ModeLength())
	}
	ks.customNoteNames = append([]string(nil), customNames...)
	return nil
}

// CustomNoteNames returns the user-defined note names, if any.
func (ks *KeySignature) CustomNoteNames() []string {
	return ks.customNoteNames
}

// SetFixedSolfege selects fixed (true) or movable (false, the default)
// Solfege. Fixed Solfege ties syllables to absolute pitches, do to c;
// movable Solfege ties them to scale degrees.
func (ks *KeySignature) SetFixedSolfege(fixed bool) {
	ks.fixedSolfege = fixed
}

// FixedSolfege reports whether fixed Solfege is selected.
func (ks *KeySignature) FixedSolfege() bool {
	return ks.fixedSolfege
}

// String returns the key, mode, half steps, and scale.
func (ks *KeySignature) String() string {
	halfSteps := make([]string, len(ks.halfSteps))
	for i, step := range ks.halfSteps {
		halfSteps[i] = fmt.Sprintf("%d", step)
	}
	key := ks.key
	if len(key) > 1 {
		key = strings.ToUpper(key[:1]) + key[1:]
	} else {
		key = strings.ToUpper(key)
	}
	return fmt.Sprintf("%s %s [%s] [%s]",
		key, strings.ToUpper(ks.mode),
		strings.Join(halfSteps, " "), strings.Join(ks.scale, " "))
}
