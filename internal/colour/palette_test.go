package colour

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

// uniformPixels builds a buffer of n identical pixels.
func uniformPixels(c RGB, n int) []RGB {
	pixels := make([]RGB, n)
	for i := range pixels {
		pixels[i] = c
	}
	return pixels
}

// noisyPixels builds a deterministic buffer of pixels jittered around a set
// of base colours.
func noisyPixels(bases []RGB, perBase, jitter int) []RGB {
	rng := rand.New(rand.NewSource(7))
	pixels := make([]RGB, 0, len(bases)*perBase)
	for _, base := range bases {
		for i := 0; i < perBase; i++ {
			pixels = append(pixels, RGB{
				R: jitterChannel(base.R, jitter, rng),
				G: jitterChannel(base.G, jitter, rng),
				B: jitterChannel(base.B, jitter, rng),
			})
		}
	}
	return pixels
}

func jitterChannel(v uint8, jitter int, rng *rand.Rand) uint8 {
	j := int(v) + rng.Intn(2*jitter+1) - jitter
	if j < 0 {
		j = 0
	}
	if j > 255 {
		j = 255
	}
	return uint8(j)
}

func TestExtractPaletteUniformImage(t *testing.T) {
	pixels := uniformPixels(RGB{R: 255, G: 0, B: 0}, 100*100)

	palette, err := ExtractPalette(pixels, 8, DefaultSeed, DefaultIndex())
	if err != nil {
		t.Fatalf("ExtractPalette returned error: %v", err)
	}

	if len(palette) != 1 {
		t.Fatalf("got %d palette entries, want 1", len(palette))
	}
	entry := palette[0]
	if entry.Hex != "#ff0000" {
		t.Errorf("Hex = %q, want %q", entry.Hex, "#ff0000")
	}
	if entry.Name != "red" {
		t.Errorf("Name = %q, want %q", entry.Name, "red")
	}
	if math.Abs(entry.Percent-100.0) > 0.1 {
		t.Errorf("Percent = %v, want 100", entry.Percent)
	}
}

func TestExtractPaletteDeterministic(t *testing.T) {
	pixels := noisyPixels([]RGB{
		{220, 30, 30}, {40, 180, 60}, {30, 60, 200}, {230, 220, 40},
	}, 2000, 12)

	first, err := ExtractPalette(pixels, 8, DefaultSeed, DefaultIndex())
	if err != nil {
		t.Fatalf("first extraction returned error: %v", err)
	}
	second, err := ExtractPalette(pixels, 8, DefaultSeed, DefaultIndex())
	if err != nil {
		t.Fatalf("second extraction returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExtractPaletteInvariants(t *testing.T) {
	pixels := noisyPixels([]RGB{
		{220, 30, 30}, {40, 180, 60}, {30, 60, 200}, {230, 220, 40}, {250, 250, 250},
	}, 1500, 10)

	palette, err := ExtractPalette(pixels, 8, DefaultSeed, DefaultIndex())
	if err != nil {
		t.Fatalf("ExtractPalette returned error: %v", err)
	}
	if len(palette) == 0 {
		t.Fatal("palette is empty")
	}

	// Sorted by descending coverage.
	for i := 1; i < len(palette); i++ {
		if palette[i].Percent > palette[i-1].Percent {
			t.Errorf("palette not sorted: entry %d (%v%%) above entry %d (%v%%)",
				i, palette[i].Percent, i-1, palette[i-1].Percent)
		}
	}

	// Coverage sums to 100.
	total := 0.0
	for _, entry := range palette {
		total += entry.Percent
	}
	if math.Abs(total-100.0) > 0.1 {
		t.Errorf("percent sum = %v, want 100", total)
	}

	// No two surviving entries within the merge threshold.
	for i := 0; i < len(palette); i++ {
		for j := i + 1; j < len(palette); j++ {
			if d := DeltaE(palette[i].Lab, palette[j].Lab); d < 5.0 {
				t.Errorf("entries %d (%s) and %d (%s) survive dedupe at DeltaE %v",
					i, palette[i].Hex, j, palette[j].Hex, d)
			}
		}
	}

	// Every entry carries a name and a consistent hex encoding.
	for _, entry := range palette {
		if entry.Name == "" {
			t.Errorf("entry %s has no name", entry.Hex)
		}
		if entry.Hex != entry.RGB.Hex() {
			t.Errorf("entry hex %q does not match RGB %v", entry.Hex, entry.RGB)
		}
	}
}

func TestExtractPaletteClusterCountBounds(t *testing.T) {
	pixels := uniformPixels(RGB{R: 10, G: 20, B: 30}, 64)

	for _, k := range []int{MinClusters, MaxClusters} {
		if _, err := ExtractPalette(pixels, k, DefaultSeed, DefaultIndex()); err != nil {
			t.Errorf("ExtractPalette(k=%d) returned error: %v", k, err)
		}
	}
	for _, k := range []int{MinClusters - 1, MaxClusters + 1, 0, -4} {
		_, err := ExtractPalette(pixels, k, DefaultSeed, DefaultIndex())
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ExtractPalette(k=%d) error = %v, want ErrInvalidParameter", k, err)
		}
	}
}

func TestExtractPaletteEmptyBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ExtractPalette with empty buffer did not panic")
		}
	}()
	_, _ = ExtractPalette(nil, 8, DefaultSeed, DefaultIndex())
}

func TestExtractPaletteFewDistinctColours(t *testing.T) {
	// Two well-separated colours with k=8: exact histogram clustering, then
	// dedupe leaves both.
	pixels := append(
		uniformPixels(RGB{R: 255, G: 0, B: 0}, 300),
		uniformPixels(RGB{R: 0, G: 0, B: 255}, 100)...,
	)

	palette, err := ExtractPalette(pixels, 8, DefaultSeed, DefaultIndex())
	if err != nil {
		t.Fatalf("ExtractPalette returned error: %v", err)
	}
	if len(palette) != 2 {
		t.Fatalf("got %d entries, want 2", len(palette))
	}
	if palette[0].Hex != "#ff0000" || palette[1].Hex != "#0000ff" {
		t.Errorf("palette = [%s, %s], want [#ff0000, #0000ff]", palette[0].Hex, palette[1].Hex)
	}
	if math.Abs(palette[0].Percent-75.0) > 0.1 || math.Abs(palette[1].Percent-25.0) > 0.1 {
		t.Errorf("percents = [%v, %v], want [75, 25]", palette[0].Percent, palette[1].Percent)
	}
}

func TestDedupeMergesNearDuplicates(t *testing.T) {
	near1 := RGB{R: 200, G: 10, B: 10}
	near2 := RGB{R: 198, G: 12, B: 11}
	entries := []Entry{
		{Hex: near1.Hex(), Percent: 60, RGB: near1, Lab: RGBToLab(near1)},
		{Hex: near2.Hex(), Percent: 40, RGB: near2, Lab: RGBToLab(near2)},
	}

	got := dedupe(entries)
	if len(got) != 1 {
		t.Fatalf("got %d entries after dedupe, want 1", len(got))
	}
	if got[0].Hex != near1.Hex() {
		t.Errorf("surviving hex = %q, want higher-coverage %q", got[0].Hex, near1.Hex())
	}
	if math.Abs(got[0].Percent-100.0) > 1e-9 {
		t.Errorf("surviving percent = %v, want 100", got[0].Percent)
	}
}
