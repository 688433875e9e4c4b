package colour

import (
	"fmt"
	"strings"
)

// NamedColour is one entry of the name index: a colour name with its RGB
// value and precomputed Lab coordinates.
type NamedColour struct {
	Name string
	RGB  RGB
	Lab  Lab
}

// Match is the result of a nearest-name lookup.
type Match struct {
	Name    string  `json:"name"`
	Primary string  `json:"primary"`
	DeltaE  float64 `json:"deltaE"`
}

// Display returns the match formatted as "Primary (specific)",
// e.g. "Blue (steel blue)".
func (m Match) Display() string {
	return fmt.Sprintf("%s (%s)", m.Primary, m.Name)
}

// NameIndex is an immutable ordered set of named colours. It is built once
// and safe for unsynchronised concurrent reads.
type NameIndex struct {
	entries []NamedColour
}

// defaultIndex is the process-wide index over the static reference table.
var defaultIndex = NewNameIndex()

// DefaultIndex returns the shared name index built from the reference table.
func DefaultIndex() *NameIndex {
	return defaultIndex
}

// NewNameIndex builds a name index from the static reference table,
// precomputing the Lab coordinates of every entry.
func NewNameIndex() *NameIndex {
	entries := make([]NamedColour, 0, len(referenceColours))
	for _, ref := range referenceColours {
		rgb, err := ParseHex(ref.hex)
		if err != nil {
			// The table is compiled in; a bad row is a programmer error.
			panic(fmt.Sprintf("colour: bad reference entry %q: %v", ref.name, err))
		}
		entries = append(entries, NamedColour{
			Name: ref.name,
			RGB:  rgb,
			Lab:  RGBToLab(rgb),
		})
	}
	return &NameIndex{entries: entries}
}

// Len returns the number of entries in the index.
func (idx *NameIndex) Len() int {
	return len(idx.entries)
}

// NearestName returns the named colour perceptually closest to rgb. Ties
// resolve to the earliest entry in table order, so lookups are stable.
func (idx *NameIndex) NearestName(rgb RGB) Match {
	return idx.NearestLab(RGBToLab(rgb))
}

// NearestLab returns the named colour perceptually closest to the given Lab
// coordinates.
func (idx *NameIndex) NearestLab(lab Lab) Match {
	best := 0
	bestDist := DeltaE(lab, idx.entries[0].Lab)
	for i := 1; i < len(idx.entries); i++ {
		if d := DeltaE(lab, idx.entries[i].Lab); d < bestDist {
			bestDist = d
			best = i
		}
	}
	name := idx.entries[best].Name
	return Match{
		Name:    name,
		Primary: primaryFamily(name),
		DeltaE:  bestDist,
	}
}

// primaryFamily resolves a specific colour name to its basic colour family.
// Primary names map to themselves; unmapped names fall back to inferring the
// family from a word of the name ("dark red" -> "Red"), and finally to the
// capitalised name itself.
func primaryFamily(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))

	if primaryColours[lower] {
		return capitalise(lower)
	}
	if primary, ok := colourToPrimary[lower]; ok {
		return primary
	}
	for _, word := range strings.Fields(lower) {
		if primaryColours[word] {
			return capitalise(word)
		}
	}
	return capitalise(lower)
}

// capitalise upper-cases the first letter of an ASCII name.
func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
