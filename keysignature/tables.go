package keysignature

// Static catalogs used by the engine. All of these are read-only after
// process start; nothing in the package mutates them.

// musicalModes defines the predefined modes by the number of semitones
// between notes.
var musicalModes = map[string][]int{
	// 12 notes in an octave
	"chromatic": {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	// 8 notes in an octave
	"algerian":   {2, 1, 2, 1, 1, 1, 3, 1},
	"diminished": {2, 1, 2, 1, 2, 1, 2, 1},
	"spanish":    {1, 2, 1, 1, 1, 2, 2, 2},
	"octatonic":  {1, 2, 1, 2, 1, 2, 1, 2},
	"bebop":      {1, 1, 1, 2, 2, 1, 2, 2},
	// 7 notes in an octave
	"major":          {2, 2, 1, 2, 2, 2, 1},
	"harmonic major": {2, 2, 1, 2, 1, 3, 1},
	"minor":          {2, 1, 2, 2, 1, 2, 2},
	"natural minor":  {2, 1, 2, 2, 1, 2, 2},
	"harmonic minor": {2, 1, 2, 2, 1, 3, 1},
	"melodic minor":  {2, 1, 2, 2, 2, 2, 1},
	// "Church" modes
	"ionian":         {2, 2, 1, 2, 2, 2, 1},
	"dorian":         {2, 1, 2, 2, 2, 1, 2},
	"phrygian":       {1, 2, 2, 2, 1, 2, 2},
	"lydian":         {2, 2, 2, 1, 2, 2, 1},
	"mixolydian":     {2, 2, 1, 2, 2, 1, 2},
	"aeolian":        {2, 1, 2, 2, 1, 2, 2},
	"locrian":        {1, 2, 2, 1, 2, 2, 2},
	"jazz minor":     {2, 1, 2, 2, 2, 2, 1},
	"arabic":         {2, 2, 1, 1, 2, 2, 2},
	"byzantine":      {1, 3, 1, 2, 1, 3, 1},
	"enigmatic":      {1, 3, 2, 2, 2, 1, 1},
	"ethiopian":      {2, 1, 2, 2, 1, 2, 2},
	"geez":           {2, 1, 2, 2, 1, 2, 2},
	"hindu":          {2, 2, 1, 2, 1, 2, 2},
	"hungarian":      {2, 1, 3, 1, 1, 3, 1},
	"maqam":          {1, 3, 1, 2, 1, 3, 1},
	"romanian minor": {2, 1, 3, 1, 2, 1, 2},
	"spanish gypsy":  {1, 3, 1, 2, 1, 2, 2},
	// 6 notes in an octave
	"minor blues": {3, 2, 1, 1, 3, 2},
	"major blues": {2, 1, 1, 3, 2, 2},
	"whole tone":  {2, 2, 2, 2, 2, 2},
	// 5 notes in an octave
	"major pentatonic": {2, 2, 3, 2, 3},
	"minor pentatonic": {3, 2, 2, 3, 2},
	"chinese":          {4, 2, 1, 4, 1},
	"egyptian":         {2, 3, 2, 3, 2},
	"hirajoshi":        {1, 4, 1, 4, 2},
	"in":               {1, 4, 2, 1, 4},
	"minyo":            {3, 2, 2, 3, 2},
	"fibonacci":        {1, 1, 2, 3, 5},
}

// maqamKeyOverrides lists the maqam mode names that imply a specific
// key; the supplied key is overridden and the mode forced to "maqam".
var maqamKeyOverrides = map[string]string{
	"hijaz kar":       "c",
	"hijaz kar maqam": "c",
	"shahnaz":         "d",
	"maqam mustar":    "eb",
	"maqam jiharkah":  "f",
	"shadd araban":    "g",
	"suzidil":         "a",
	"ajam":            "bb",
	"ajam maqam":      "bb",
}

// This notation only applies to temperaments with 12 semitones.
var (
	pitchLetters      = []string{"c", "d", "e", "f", "g", "a", "b"}
	scalarModeNumbers = []string{"1", "2", "3", "4", "5", "6", "7"}
	solfegeNames      = []string{"do", "re", "me", "fa", "sol", "la", "ti"}
	eastIndianNames   = []string{"sa", "re", "ga", "ma", "pa", "dha", "ni"}
)

// These definitions are only relevant to equal temperament.
var (
	notesSharp = []string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}
	notesFlat  = []string{"c", "db", "d", "eb", "e", "f", "gb", "g", "ab", "a", "bb", "b"}
)

// preferSharps holds the "<key> <mode>" signatures that spell their
// scales with sharps. The default is to prefer flats.
var preferSharps = map[string]bool{
	"g major":  true,
	"d major":  true,
	"a major":  true,
	"e major":  true,
	"b major":  true,
	"f# major": true,
	"c# major": true,
	"e minor":  true,
	"b minor":  true,
	"f# minor": true,
	"c# minor": true,
	"g# minor": true,
	"a# minor": true,
	"db minor": true,
	"gb minor": true,
	"d minor":  true,
}

// The equivalents and conversions are only valid for equal temperament.
var (
	equivalentFlats  = map[string]string{"c#": "db", "d#": "eb", "f#": "gb", "g#": "ab", "a#": "bb"}
	equivalentSharps = map[string]string{"db": "c#", "eb": "d#", "gb": "f#", "ab": "g#", "bb": "a#"}
)

// equivalents maps each spelling to its enharmonic synonyms. The
// relation is symmetric but not transitively closed; never assume clean
// equivalence classes (e.g. "cb" and "b" denote the same pitch, but
// "cb" is absent from "b"'s own list).
var equivalents = map[string][]string{
	"ax":  {"b", "cb"},
	"a#":  {"bb"},
	"a":   {"bbb", "gx"},
	"ab":  {"g#"},
	"abb": {"g", "fx"},
	"bx":  {"c#"},
	"b#":  {"c", "dbb"},
	"b":   {"b", "cb", "ax"},
	"bb":  {"a#"},
	"bbb": {"a", "gx"},
	"cx":  {"d"},
	"c#":  {"db"},
	"c":   {"c", "dbb", "b#"},
	"cb":  {"b"},
	"cbb": {"bb", "a#"},
	"dx":  {"e", "fb"},
	"d#":  {"eb", "fbb"},
	"d":   {"ebb", "cx"},
	"db":  {"c#", "bx"},
	"dbb": {"c", "b#"},
	"ex":  {"f#", "gb"},
	"e#":  {"f", "gbb"},
	"e":   {"e", "fb", "dx"},
	"eb":  {"d#", "fbb"},
	"ebb": {"d", "cx"},
	"fx":  {"g", "abb"},
	"f#":  {"gb", "ex"},
	"f":   {"f", "e#", "gbb"},
	"fb":  {"e", "dx"},
	"fbb": {"eb", "d#"},
	"gx":  {"a", "bbb"},
	"g#":  {"ab"},
	"g":   {"abb", "fx"},
	"gb":  {"f#", "ex"},
	"gbb": {"f", "e#"},
}

// convertDown respells a note using the letter below it.
var convertDown = map[string]string{
	"abb": "g",
	"ab":  "g#",
	"a":   "gx",
	"bb":  "a#",
	"bbb": "a",
	"b":   "ax",
	"c":   "b#",
	"cb":  "b",
	"c#":  "bx",
	"d":   "cx",
	"dbb": "c",
	"db":  "c#",
	"e":   "dx",
	"ebb": "d",
	"eb":  "d#",
	"fb":  "e",
	"f":   "e#",
	"f#":  "ex",
	"g":   "fx",
	"gb":  "f#",
	"gbb": "f",
}

// convertUp respells a note using the letter above it.
var convertUp = map[string]string{
	"a#":  "bb",
	"a":   "bbb",
	"ab":  "g#",
	"bb":  "a#",
	"bbb": "a",
	"b#":  "c",
	"b":   "cb",
	"c#":  "db",
	"c":   "dbb",
	"db":  "c#",
	"d#":  "eb",
	"d":   "ebb",
	"eb":  "d#",
	"e#":  "f",
	"e":   "fb",
	"f#":  "gb",
	"f":   "gbb",
	"g#":  "ab",
	"g":   "abb",
	"gb":  "f#",
}

func indexOf(list []string, name string) int {
	for i, s := range list {
		if s == name {
			return i
		}
	}
	return -1
}

func contains(list []string, name string) bool {
	return indexOf(list, name) >= 0
}
