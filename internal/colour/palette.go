package colour

import (
	"fmt"
	"sort"
)

const (
	// MinClusters and MaxClusters bound the caller-supplied cluster count.
	MinClusters = 3
	MaxClusters = 12

	// DefaultSeed seeds k-means initialisation so repeated analysis of the
	// same image yields the same palette.
	DefaultSeed = 42

	// dedupeThreshold is the perceptual distance below which two palette
	// entries are considered the same colour and merged.
	dedupeThreshold = 5.0
)

// ErrInvalidParameter reports a caller contract violation, such as a cluster
// count outside [MinClusters, MaxClusters] or a malformed hex string.
var ErrInvalidParameter = fmt.Errorf("invalid parameter")

// Entry is one colour of an extracted palette.
type Entry struct {
	Hex     string  `json:"hex"`
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	RGB     RGB     `json:"rgb"`
	Lab     Lab     `json:"lab"`
}

// ExtractPalette clusters pixels into at most k colour groups and returns
// them as named palette entries sorted by descending coverage. Perceptual
// near-duplicates (DeltaE below 5.0) are merged, so the result may hold
// fewer than k entries; no two surviving entries are within the merge
// threshold of each other. Percentages are exact cluster pixel-count ratios
// and survive merging, so they sum to 100.
//
// k outside [MinClusters, MaxClusters] returns ErrInvalidParameter. An empty
// pixel buffer is a programmer error and panics.
func ExtractPalette(pixels []RGB, k int, seed int64, idx *NameIndex) ([]Entry, error) {
	if k < MinClusters || k > MaxClusters {
		return nil, fmt.Errorf("%w: cluster count %d outside [%d, %d]",
			ErrInvalidParameter, k, MinClusters, MaxClusters)
	}
	if len(pixels) == 0 {
		panic("colour: ExtractPalette called with empty pixel buffer")
	}

	clusters := kmeansCluster(pixels, k, seed)

	total := float64(len(pixels))
	entries := make([]Entry, 0, len(clusters))
	for _, c := range clusters {
		rgb := c.centre.rgb()
		entries = append(entries, Entry{
			Hex:     rgb.Hex(),
			Percent: float64(c.count) / total * 100.0,
			RGB:     rgb,
			Lab:     RGBToLab(rgb),
		})
	}

	sortByPercent(entries)
	entries = dedupe(entries)

	for i := range entries {
		entries[i].Name = idx.NearestName(entries[i].RGB).Name
	}
	return entries, nil
}

// sortByPercent orders entries largest-coverage first. The sort is stable so
// equal-coverage entries keep their cluster order.
func sortByPercent(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percent > entries[j].Percent
	})
}

// dedupe repeatedly merges pairs of entries closer than the merge threshold,
// keeping the colour of the higher-coverage entry and summing coverage,
// until every surviving pair is at least the threshold apart. Entries must
// be sorted by descending percent on entry; the order is maintained.
func dedupe(entries []Entry) []Entry {
	for {
		merged := false
		for i := 0; i < len(entries) && !merged; i++ {
			for j := i + 1; j < len(entries); j++ {
				if DeltaE(entries[i].Lab, entries[j].Lab) >= dedupeThreshold {
					continue
				}
				// i precedes j, so i has the higher (or equal) coverage and
				// its colour wins.
				entries[i].Percent += entries[j].Percent
				entries = append(entries[:j], entries[j+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			return entries
		}
		sortByPercent(entries)
	}
}
