// Package pitch defines the canonical string form for pitch names and the
// helpers that move between it and presentation forms.
//
// Internally the engine uses a standardized form for pitch letter names:
// lowercase c, d, e, f, g, a, b for letters, and #, b, x, bb for sharp,
// flat, double sharp, and double flat. Note names for temperaments with
// other than 12 semitones are of the form n0, n1, ...
package pitch

import (
	"fmt"
	"strings"
)

// Unicode accidental glyphs used at the presentation boundary.
const (
	Sharp       = "♯"
	Flat        = "♭"
	Natural     = "♮"
	DoubleSharp = "𝄪"
	DoubleFlat  = "𝄫"
)

// Normalize converts an upper- or lowercase pitch name with ASCII or
// Unicode accidentals into the canonical internal form. Normalizing an
// already-normalized name is a no-op.
func Normalize(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, Sharp, "#")
	name = strings.ReplaceAll(name, DoubleSharp, "x")
	name = strings.ReplaceAll(name, Flat, "b")
	name = strings.ReplaceAll(name, DoubleFlat, "bb")
	name = strings.ReplaceAll(name, Natural, "")
	return name
}

// Display converts an internal pitch name to its presentation form,
// e.g., "cb" -> "C♭". It is cosmetic only and never used by the engine
// internally.
func Display(name string) string {
	if name == "" {
		return name
	}
	out := strings.ToUpper(name[:1])
	switch {
	case len(name) > 2 && name[1:] == "bb":
		out += DoubleFlat
	case len(name) > 1 && name[1] == '#':
		out += Sharp
	case len(name) > 1 && name[1] == 'x':
		out += DoubleSharp
	case len(name) > 1 && name[1] == 'b':
		out += Flat
	}
	return out
}

// StripAccidental splits a trailing accidental from a pitch name,
// returning the bare name and the accidental's value in semitones.
// A one-character name is returned as is: a lone "b" is the letter b,
// not a flat.
func StripAccidental(name string) (string, int) {
	if len(name) < 2 {
		return name, 0
	}
	switch {
	case len(name) > 2 && strings.HasSuffix(name, "bb"):
		return name[:len(name)-2], -2
	case strings.HasSuffix(name, "b"):
		return name[:len(name)-1], -1
	case strings.HasSuffix(name, "#"):
		return name[:len(name)-1], 1
	case strings.HasSuffix(name, "x"):
		return name[:len(name)-1], 2
	}
	return name, 0
}

// ApplyAccidental renders a semitone delta as an accidental suffix on a
// bare name. Deltas outside [-2, 2] cannot be spelled.
func ApplyAccidental(name string, delta int) (string, error) {
	switch delta {
	case 0:
		return name, nil
	case 1:
		return name + "#", nil
	case -1:
		return name + "b", nil
	case 2:
		return name + "x", nil
	case -2:
		return name + "bb", nil
	}
	return name, fmt.Errorf("cannot spell accidental for delta %d on %s", delta, name)
}
