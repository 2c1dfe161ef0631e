package keysignature

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-teoria/logging"
	"github.com/RyanBlaney/sonido-teoria/pitch"
)

// PitchType classifies a pitch name by its notation family.
type PitchType int

const (
	UnknownPitchType PitchType = iota
	GenericNote
	LetterName
	SolfegeName
	EastIndianSolfegeName
	ScalarModeNumber
	CustomName
)

func (t PitchType) String() string {
	switch t {
	case GenericNote:
		return "generic note name"
	case LetterName:
		return "letter name"
	case SolfegeName:
		return "solfege name"
	case EastIndianSolfegeName:
		return "east indian solfege name"
	case ScalarModeNumber:
		return "scalar mode number"
	case CustomName:
		return "custom name"
	default:
		return "unknown"
	}
}

// PitchType checks pitch name format and classifies it into one of the
// notation families this key signature understands.
func (ks *KeySignature) PitchType(pitchName string) PitchType {
	pitchName = pitch.Normalize(pitchName)
	if contains(ks.noteNames, pitchName) {
		return GenericNote
	}
	stripped, _ := pitch.StripAccidental(pitchName)
	// Letter, Solfege, East Indian, and scalar-number notations exist
	// only in 12-semitone temperaments.
	if ks.numberOfSemitones == 12 {
		if contains(notesSharp, pitchName) || contains(notesFlat, pitchName) {
			return LetterName
		}
		if _, ok := equivalents[pitchName]; ok {
			return LetterName
		}
		if contains(solfegeNames, stripped) {
			return SolfegeName
		}
		if contains(eastIndianNames, stripped) {
			return EastIndianSolfegeName
		}
		if contains(scalarModeNumbers, stripped) {
			return ScalarModeNumber
		}
	}
	if ks.customNoteNames != nil {
		if contains(ks.customNoteNames, pitchName) || contains(ks.customNoteNames, stripped) {
			return CustomName
		}
	}
	return UnknownPitchType
}

// ConvertToGenericNoteName converts from a letter name, Solfege name,
// East Indian Solfege name, scalar mode number, or custom note name
// used to define a scale to a generic note name. On failure the
// original name is returned alongside the error.
func (ks *KeySignature) ConvertToGenericNoteName(pitchName string) (string, error) {
	pitchName = pitch.Normalize(pitchName)
	original := pitchName

	switch ks.PitchType(pitchName) {
	case GenericNote:
		return pitchName, nil
	case LetterName:
		if name, ok := ks.letterToGeneric(pitchName); ok {
			return name, nil
		}
	case SolfegeName:
		if ks.fixedSolfege {
			if name, ok := ks.fixedNameToGeneric(pitchName, solfegeNames); ok {
				return name, nil
			}
		} else if name, ok := ks.nameConverter(pitchName, ks.solfegeNotes); ok {
			return name, nil
		}
	case EastIndianSolfegeName:
		if ks.fixedSolfege {
			if name, ok := ks.fixedNameToGeneric(pitchName, eastIndianNames); ok {
				return name, nil
			}
		} else if name, ok := ks.nameConverter(pitchName, ks.eastIndianSolfegeNotes); ok {
			return name, nil
		}
	case ScalarModeNumber:
		if name, ok := ks.nameConverter(pitchName, ks.scalarModeNumbers); ok {
			return name, nil
		}
	case CustomName:
		if name, ok := ks.nameConverter(pitchName, ks.customNoteNames); ok {
			return name, nil
		}
	}

	logging.Warn("pitch name cannot be converted to a generic note name", logging.Fields{
		"pitch": original,
	})
	return original, fmt.Errorf("%w: %q", ErrUnknownPitch, original)
}

// letterToGeneric maps a letter name, including enharmonic spellings
// with double accidentals, onto a generic note name.
func (ks *KeySignature) letterToGeneric(pitchName string) (string, bool) {
	if strings.Contains(pitchName, "#") {
		if i := indexOf(notesSharp, pitchName); i >= 0 {
			return ks.noteNames[i], true
		}
	} else if strings.Contains(pitchName, "b") && len(pitchName) > 1 {
		if i := indexOf(notesFlat, pitchName); i >= 0 {
			return ks.noteNames[i], true
		}
	} else if i := indexOf(notesSharp, pitchName); i >= 0 {
		return ks.noteNames[i], true
	}
	// Virtual and double-accidental spellings resolve through their
	// enharmonic equivalents.
	for _, eq := range equivalents[pitchName] {
		if i := indexOf(notesSharp, eq); i >= 0 {
			return ks.noteNames[i], true
		}
		if i := indexOf(notesFlat, eq); i >= 0 {
			return ks.noteNames[i], true
		}
	}
	return pitchName, false
}

// nameConverter resolves a name against one of the mode-mapped source
// lists (movable Solfege, East Indian Solfege, scalar mode numbers, or
// custom names), honoring any accidental carried by the name.
func (ks *KeySignature) nameConverter(pitchName string, sourceList []string) (string, bool) {
	if i := indexOf(sourceList, pitchName); i >= 0 {
		name, err := ks.ConvertToGenericNoteName(ks.scale[i])
		return name, err == nil
	}
	stripped, delta := pitch.StripAccidental(pitchName)
	if i := indexOf(sourceList, stripped); i >= 0 {
		name, err := ks.ConvertToGenericNoteName(ks.scale[i])
		if err != nil {
			return pitchName, false
		}
		j := indexOf(ks.noteNames, name) + delta
		if j < 0 {
			j += ks.numberOfSemitones
		}
		if j > ks.numberOfSemitones-1 {
			j -= ks.numberOfSemitones
		}
		return ks.noteNames[j], true
	}
	return pitchName, false
}

// fixedNameToGeneric maps a fixed-Solfege syllable to a generic note
// name; do is always c regardless of key.
func (ks *KeySignature) fixedNameToGeneric(pitchName string, catalog []string) (string, bool) {
	stripped, delta := pitch.StripAccidental(pitchName)
	i := indexOf(catalog, stripped)
	if i < 0 {
		return pitchName, false
	}
	j := indexOf(notesSharp, pitchLetters[i]) + delta
	if j < 0 {
		j += ks.numberOfSemitones
	}
	if j > ks.numberOfSemitones-1 {
		j -= ks.numberOfSemitones
	}
	return ks.noteNames[j], true
}

// fixedGenericToName renders a generic note name as a fixed-Solfege
// syllable: the letter spelling determines the syllable, accidentals
// carry over.
func (ks *KeySignature) fixedGenericToName(noteName string, catalog []string) (string, error) {
	letter, err := ks.GenericNoteNameToLetterName(noteName, ks.preferSharpSpelling())
	if err != nil {
		return noteName, err
	}
	// Prefer the spelling the scale itself uses.
	for _, note := range ks.Scale() {
		if generic, ok := ks.letterToGeneric(note); ok && generic == noteName {
			letter = note
			break
		}
	}
	stripped, delta := pitch.StripAccidental(letter)
	i := indexOf(pitchLetters, stripped)
	if i < 0 {
		return noteName, fmt.Errorf("%w: %q", ErrUnknownPitch, noteName)
	}
	return pitch.ApplyAccidental(catalog[i], delta)
}

// GenericNoteNameToLetterName converts from a generic note name as
// defined by the temperament to a letter name used by 12-semitone
// temperaments.
func (ks *KeySignature) GenericNoteNameToLetterName(noteName string, preferSharps bool) (string, error) {
	noteName = pitch.Normalize(noteName)
	// Maybe it is already a letter name.
	if contains(notesSharp, noteName) || contains(notesFlat, noteName) {
		return noteName, nil
	}
	if ks.numberOfSemitones != 12 {
		logging.Warn("letter names are defined for 12-semitone temperaments only", logging.Fields{
			"semitones": ks.numberOfSemitones,
		})
		return noteName, fmt.Errorf("%w: %q in %d-semitone temperament",
			ErrUnknownPitch, noteName, ks.numberOfSemitones)
	}
	i := indexOf(ks.noteNames, noteName)
	if i < 0 {
		logging.Warn("cannot convert to letter name", logging.Fields{
			"pitch": noteName,
		})
		return noteName, fmt.Errorf("%w: %q", ErrUnknownPitch, noteName)
	}
	if preferSharps {
		return notesSharp[i], nil
	}
	return notesFlat[i], nil
}

// convertFromNoteName renders a generic note name through one of the
// mode-mapped source lists by snapping to the closest scalar note and
// attaching an accidental for the remaining distance.
func (ks *KeySignature) convertFromNoteName(noteName string, sourceList []string) (string, error) {
	noteName = pitch.Normalize(noteName)
	if !strings.HasPrefix(noteName, "n") || !contains(ks.noteNames, noteName) {
		logging.Warn("cannot convert from note name", logging.Fields{
			"pitch": noteName,
		})
		return noteName, fmt.Errorf("%w: %q", ErrUnknownPitch, noteName)
	}
	_, degree, distance, err := ks.ClosestNote(noteName)
	if err != nil {
		return noteName, err
	}
	if distance == 0 {
		return sourceList[degree], nil
	}
	name, err := pitch.ApplyAccidental(sourceList[degree], distance)
	if err != nil {
		return noteName, fmt.Errorf("%w: %q is %d semitones from a scalar note",
			ErrBadAccidental, noteName, distance)
	}
	return name, nil
}

// GenericNoteNameToSolfege converts from a generic note name to its
// Solfege name, fixed or movable per the current setting.
func (ks *KeySignature) GenericNoteNameToSolfege(noteName string) (string, error) {
	if ks.fixedSolfege {
		return ks.fixedGenericToName(noteName, solfegeNames)
	}
	return ks.convertFromNoteName(noteName, ks.solfegeNotes)
}

// GenericNoteNameToEastIndianSolfege converts from a generic note name
// to its East Indian Solfege name.
func (ks *KeySignature) GenericNoteNameToEastIndianSolfege(noteName string) (string, error) {
	if ks.fixedSolfege {
		return ks.fixedGenericToName(noteName, eastIndianNames)
	}
	return ks.convertFromNoteName(noteName, ks.eastIndianSolfegeNotes)
}

// GenericNoteNameToScalarModeNumber converts from a generic note name
// to its scalar mode number.
func (ks *KeySignature) GenericNoteNameToScalarModeNumber(noteName string) (string, error) {
	return ks.convertFromNoteName(noteName, ks.scalarModeNumbers)
}

// GenericNoteNameToCustomNoteName converts from a generic note name to
// a custom note name; SetCustomNoteNames must have been called first.
func (ks *KeySignature) GenericNoteNameToCustomNoteName(noteName string) (string, error) {
	if ks.customNoteNames == nil {
		return noteName, fmt.Errorf("%w: no custom note names set", ErrUnknownPitch)
	}
	return ks.convertFromNoteName(noteName, ks.customNoteNames)
}
