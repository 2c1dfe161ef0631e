package keysignature

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-teoria/logging"
	"github.com/RyanBlaney/sonido-teoria/pitch"
)

// mapToSemitoneRange ensures an index value is within the range of the
// temperament, e.g. i == 12 maps to 0 with a change in octave of +1 in
// a temperament with 12 semitones.
func (ks *KeySignature) mapToSemitoneRange(i, deltaOctave int) (int, int) {
	for i < 0 {
		i += ks.numberOfSemitones
		deltaOctave--
	}
	for i > ks.numberOfSemitones-1 {
		i -= ks.numberOfSemitones
		deltaOctave++
	}
	return i, deltaOctave
}

// letterIndex finds the semitone position of a letter name, falling
// back to its enharmonic equivalents for virtual and double-accidental
// spellings. Returns -1 when no spelling resolves.
func letterIndex(name string) int {
	if i := indexOf(notesSharp, name); i >= 0 {
		return i
	}
	if i := indexOf(notesFlat, name); i >= 0 {
		return i
	}
	for _, eq := range equivalents[name] {
		if i := indexOf(notesSharp, eq); i >= 0 {
			return i
		}
		if i := indexOf(notesFlat, eq); i >= 0 {
			return i
		}
	}
	return -1
}

// SemitoneTransform adds a number of half steps to a starting pitch
// and returns the resultant pitch in the same notation family, along
// with the relative change in octave.
func (ks *KeySignature) SemitoneTransform(startingPitch string, numberOfHalfSteps int) (string, int, error) {
	startingPitch = pitch.Normalize(startingPitch)

	if ks.numberOfSemitones != 12 {
		strippedPitch, delta := pitch.StripAccidental(startingPitch)
		i := indexOf(ks.noteNames, strippedPitch)
		if i < 0 {
			logging.Warn("cannot find pitch in note names", logging.Fields{
				"pitch": startingPitch,
			})
			return startingPitch, 0, fmt.Errorf("%w: %q", ErrUnknownPitch, startingPitch)
		}
		i, deltaOctave := ks.mapToSemitoneRange(i+numberOfHalfSteps+delta, 0)
		return ks.noteNames[i], deltaOctave, nil
	}

	// Letter names in the sharp and flat tables walk their own table.
	if i := indexOf(notesSharp, startingPitch); i >= 0 {
		i, deltaOctave := ks.mapToSemitoneRange(i+numberOfHalfSteps, 0)
		return notesSharp[i], deltaOctave, nil
	}
	if i := indexOf(notesFlat, startingPitch); i >= 0 {
		i, deltaOctave := ks.mapToSemitoneRange(i+numberOfHalfSteps, 0)
		return notesFlat[i], deltaOctave, nil
	}

	// Everything else round-trips through the generic names so the
	// result can be rendered back in the original notation.
	family := ks.PitchType(startingPitch)
	genericName, err := ks.ConvertToGenericNoteName(startingPitch)
	if err != nil {
		return startingPitch, 0, err
	}
	i := indexOf(ks.noteNames, genericName)
	i, deltaOctave := ks.mapToSemitoneRange(i+numberOfHalfSteps, 0)
	newNote := ks.noteNames[i]

	rendered, err := ks.renderInFamily(newNote, family, strings.Contains(startingPitch, "#"))
	if err != nil {
		return newNote, deltaOctave, err
	}
	return rendered, deltaOctave, nil
}

// renderInFamily converts a generic note name back into the notation
// family of the pitch a transform started from.
func (ks *KeySignature) renderInFamily(noteName string, family PitchType, sawSharp bool) (string, error) {
	switch family {
	case GenericNote:
		return noteName, nil
	case LetterName:
		return ks.GenericNoteNameToLetterName(noteName, sawSharp || ks.preferSharpSpelling())
	case SolfegeName:
		return ks.GenericNoteNameToSolfege(noteName)
	case EastIndianSolfegeName:
		return ks.GenericNoteNameToEastIndianSolfege(noteName)
	case ScalarModeNumber:
		return ks.GenericNoteNameToScalarModeNumber(noteName)
	case CustomName:
		return ks.GenericNoteNameToCustomNoteName(noteName)
	default:
		return noteName, fmt.Errorf("%w: %q", ErrUnknownPitch, noteName)
	}
}

// ScalarTransform adds a number of scalar steps to a starting pitch
// and returns the resultant pitch in the same notation family, along
// with the relative change in octave. Scalar steps are steps in the
// scale as opposed to half steps; the starting pitch need not be in
// the scale, in which case the distance to the nearest scalar note is
// carried over as an accidental on the result.
func (ks *KeySignature) ScalarTransform(startingPitch string, numberOfScalarSteps int) (string, int, error) {
	startingPitch = pitch.Normalize(startingPitch)
	family := ks.PitchType(startingPitch)
	useSharps := strings.Contains(startingPitch, "#")

	// ClosestNote searches over letters (12 semitones) or generic
	// names; the remaining families go through generic first.
	search := startingPitch
	if family != LetterName && family != GenericNote {
		generic, err := ks.ConvertToGenericNoteName(startingPitch)
		if err != nil {
			return startingPitch, 0, err
		}
		search = generic
	}
	_, closestIndex, distance, err := ks.ClosestNote(search)
	if err != nil {
		return startingPitch, 0, err
	}

	newIndex := closestIndex + numberOfScalarSteps
	modeLength := ks.ModeLength()
	deltaOctave := newIndex / modeLength
	if newIndex < 0 {
		deltaOctave--
	}

	normalizedIndex := newIndex
	for normalizedIndex < 0 {
		normalizedIndex += modeLength
	}
	for normalizedIndex > modeLength-1 {
		normalizedIndex -= modeLength
	}
	result := ks.scale[normalizedIndex]

	// If the starting pitch was not in the scale, shift the landing
	// note by the leftover semitone distance.
	if distance != 0 {
		if ks.numberOfSemitones != 12 {
			i := indexOf(ks.noteNames, result)
			i, deltaOctave = ks.mapToSemitoneRange(i+distance, deltaOctave)
			result = ks.noteNames[i]
		} else {
			var i int
			if useSharps {
				i = indexOf(notesSharp, result)
			} else {
				i = indexOf(notesFlat, result)
			}
			if i < 0 {
				i = letterIndex(result)
			}
			if i < 0 {
				return result, deltaOctave, fmt.Errorf("%w: %q", ErrNoteNotFound, result)
			}
			i, deltaOctave = ks.mapToSemitoneRange(i+distance, deltaOctave)
			if useSharps {
				result = notesSharp[i]
			} else {
				result = notesFlat[i]
			}
		}
	}

	// Render the result back in the starting pitch's notation family.
	if family == LetterName {
		return result, deltaOctave, nil
	}
	genericResult := result
	if ks.numberOfSemitones == 12 {
		genericResult, err = ks.ConvertToGenericNoteName(result)
		if err != nil {
			return result, deltaOctave, err
		}
	}
	if family == GenericNote {
		return genericResult, deltaOctave, nil
	}
	rendered, err := ks.renderInFamily(genericResult, family, useSharps)
	if err != nil {
		return genericResult, deltaOctave, err
	}
	return rendered, deltaOctave, nil
}

// ClosestNote finds the nearest scalar note to a target pitch. It
// returns the closest pitch in the target's notation, its degree index
// in the scale, and the signed distance in semitones from the scalar
// pitch to the target: positive when the target sits above the
// returned degree, negative when below, zero on an exact match. When
// the target is midway between two scalar pitches the lower one wins.
func (ks *KeySignature) ClosestNote(target string) (string, int, int, error) {
	target = pitch.Normalize(target)

	if ks.numberOfSemitones != 12 {
		return ks.closestNoteGeneric(target)
	}

	// Generic note names are converted to letters for the search and
	// back to generic for the result.
	wasGeneric := false
	if strings.HasPrefix(target, "n") {
		strippedTarget, delta := pitch.StripAccidental(target)
		i := indexOf(ks.noteNames, strippedTarget)
		if i < 0 {
			logging.Warn("cannot find target note", logging.Fields{
				"target": target,
			})
			return target, 0, 0, fmt.Errorf("%w: %q", ErrNoteNotFound, target)
		}
		i, _ = ks.mapToSemitoneRange(i+delta, 0)
		letter, err := ks.GenericNoteNameToLetterName(ks.noteNames[i], strings.Contains(target, "#"))
		if err != nil {
			return target, 0, 0, err
		}
		target = letter
		wasGeneric = true
	}

	// First, try an exact match.
	for i := 0; i < ks.ModeLength(); i++ {
		if target == ks.scale[i] {
			if wasGeneric {
				name, err := ks.ConvertToGenericNoteName(target)
				return name, i, 0, err
			}
			return target, i, 0, nil
		}
	}

	// Next, see whether an enharmonic equivalent matches.
	for i := 0; i < ks.ModeLength(); i++ {
		for _, eq := range equivalents[target] {
			if eq == ks.scale[i] {
				if wasGeneric {
					name, err := ks.ConvertToGenericNoteName(ks.scale[i])
					return name, i, 0, err
				}
				return ks.scale[i], i, 0, nil
			}
		}
	}

	// Finally, look for the closest note by circular semitone
	// distance, keeping the first strictly smaller candidate.
	i2 := letterIndex(target)
	if i2 < 0 {
		logging.Warn("cannot find position of target note", logging.Fields{
			"target": target,
		})
		return target, 0, 0, fmt.Errorf("%w: %q", ErrNoteNotFound, target)
	}

	closest := ks.scale[0]
	closestIndex := 0
	closestDistance := ks.numberOfSemitones
	for i := 0; i < ks.ModeLength(); i++ {
		i1 := letterIndex(ks.scale[i])
		if i1 < 0 {
			logging.Warn("cannot find position of scalar note", logging.Fields{
				"note": ks.scale[i],
			})
			return closest, closestIndex, closestDistance, fmt.Errorf("%w: %q", ErrNoteNotFound, ks.scale[i])
		}
		if abs(i2-i1) < abs(closestDistance) {
			closest = ks.scale[i]
			closestIndex = i
			closestDistance = i2 - i1
		}
		if abs(i2+ks.numberOfSemitones-i1) < abs(closestDistance) {
			closest = ks.scale[i]
			closestIndex = i
			closestDistance = i2 + ks.numberOfSemitones - i1
		}
	}
	if wasGeneric {
		name, err := ks.ConvertToGenericNoteName(closest)
		return name, closestIndex, closestDistance, err
	}
	return closest, closestIndex, closestDistance, nil
}

// closestNoteGeneric is the ClosestNote search for temperaments other
// than 12 semitones, where only generic note names apply.
func (ks *KeySignature) closestNoteGeneric(target string) (string, int, int, error) {
	strippedTarget, delta := pitch.StripAccidental(target)
	ti := indexOf(ks.noteNames, strippedTarget)
	if ti < 0 {
		logging.Warn("cannot find target note", logging.Fields{
			"target": target,
		})
		return target, 0, 0, fmt.Errorf("%w: %q", ErrNoteNotFound, target)
	}
	ti, _ = ks.mapToSemitoneRange(ti+delta, 0)
	target = ks.noteNames[ti]

	closest := ks.scale[0]
	closestIndex := 0
	closestDistance := ks.numberOfSemitones
	for i := 0; i < ks.ModeLength(); i++ {
		i1 := indexOf(ks.noteNames, ks.scale[i])
		if i1 < 0 {
			return closest, closestIndex, closestDistance, fmt.Errorf("%w: %q", ErrNoteNotFound, ks.scale[i])
		}
		if abs(ti-i1) < abs(closestDistance) {
			closest = ks.scale[i]
			closestIndex = i
			closestDistance = ti - i1
		}
		if abs(ti+ks.numberOfSemitones-i1) < abs(closestDistance) {
			closest = ks.scale[i]
			closestIndex = i
			closestDistance = ti + ks.numberOfSemitones - i1
		}
	}
	return closest, closestIndex, closestDistance, nil
}

// ModalPitchToLetter maps a modal index into the scale, returning the
// pitch at that degree and the relative change in octave. Indices at
// or beyond the mode length, or below zero, wrap with a corresponding
// octave delta.
func (ks *KeySignature) ModalPitchToLetter(modalIndex int) (string, int) {
	modeLength := ks.ModeLength()
	deltaOctave := modalIndex / modeLength
	if modalIndex < 0 {
		deltaOctave--
		for modalIndex < 0 {
			modalIndex += modeLength
		}
	}
	for modalIndex > modeLength-1 {
		modalIndex -= modeLength
	}
	return ks.scale[modalIndex], deltaOctave
}

// NoteInScale reports whether a pitch is in the scale.
func (ks *KeySignature) NoteInScale(target string) bool {
	_, _, distance, err := ks.ClosestNote(target)
	return err == nil && distance == 0
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
