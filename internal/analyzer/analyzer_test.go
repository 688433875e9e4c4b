package analyzer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"testing"

	"github.com/afalcongonzalez/chromaviews/internal/colour"
)

// solidPNG renders a uniform PNG of the given size.
func solidPNG(t *testing.T, width, height int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestAnalyzeSolidRed(t *testing.T) {
	data := solidPNG(t, 200, 200, color.RGBA{R: 255, A: 255})

	result, err := New().Analyze(context.Background(), data, 8)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if result.Width != 200 || result.Height != 200 {
		t.Errorf("analysed dimensions = %dx%d, want 200x200", result.Width, result.Height)
	}

	if len(result.Palette) != 1 {
		t.Fatalf("got %d palette entries, want 1 after dedupe", len(result.Palette))
	}
	entry := result.Palette[0]
	if entry.Hex != "#ff0000" {
		t.Errorf("palette hex = %q, want #ff0000", entry.Hex)
	}
	if entry.Name != "red" {
		t.Errorf("palette name = %q, want red", entry.Name)
	}
	if math.Abs(entry.Percent-100.0) > 0.1 {
		t.Errorf("palette percent = %v, want 100", entry.Percent)
	}

	if len(result.Samples) != colour.GridSize*colour.GridSize {
		t.Fatalf("got %d samples, want %d", len(result.Samples), colour.GridSize*colour.GridSize)
	}
	for i, s := range result.Samples {
		if s.Name != "red" {
			t.Errorf("sample %d name = %q, want red", i, s.Name)
		}
		if s.X < 0 || s.X >= result.Width || s.Y < 0 || s.Y >= result.Height {
			t.Errorf("sample %d at (%d, %d) outside analysed bounds", i, s.X, s.Y)
		}
	}
}

func TestAnalyzeDownsizesLargeImages(t *testing.T) {
	data := solidPNG(t, 2000, 1000, color.RGBA{G: 128, A: 255})

	result, err := New().Analyze(context.Background(), data, 5)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if result.Width != 1280 || result.Height != 640 {
		t.Errorf("analysed dimensions = %dx%d, want 1280x640", result.Width, result.Height)
	}
}

func TestAnalyzeJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 160, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 160; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("failed to encode test JPEG: %v", err)
	}

	result, err := New().Analyze(context.Background(), buf.Bytes(), 8)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if len(result.Palette) == 0 {
		t.Fatal("palette is empty")
	}
	if result.Palette[0].Name != "red" {
		t.Errorf("dominant colour name = %q, want red", result.Palette[0].Name)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	data := solidPNG(t, 100, 100, color.RGBA{R: 30, G: 144, B: 255, A: 255})

	a := New()
	first, err := a.Analyze(context.Background(), data, 6)
	if err != nil {
		t.Fatalf("first analysis returned error: %v", err)
	}
	second, err := a.Analyze(context.Background(), data, 6)
	if err != nil {
		t.Fatalf("second analysis returned error: %v", err)
	}

	if len(first.Palette) != len(second.Palette) {
		t.Fatalf("palette sizes differ: %d vs %d", len(first.Palette), len(second.Palette))
	}
	for i := range first.Palette {
		if first.Palette[i] != second.Palette[i] {
			t.Errorf("palette entry %d differs: %+v vs %+v", i, first.Palette[i], second.Palette[i])
		}
	}
}

func TestAnalyzeClusterCountBounds(t *testing.T) {
	data := solidPNG(t, 50, 50, color.RGBA{R: 10, G: 10, B: 10, A: 255})

	for _, k := range []int{colour.MinClusters, colour.MaxClusters} {
		if _, err := New().Analyze(context.Background(), data, k); err != nil {
			t.Errorf("Analyze(k=%d) returned error: %v", k, err)
		}
	}
	for _, k := range []int{2, 13} {
		_, err := New().Analyze(context.Background(), data, k)
		if !errors.Is(err, colour.ErrInvalidParameter) {
			t.Errorf("Analyze(k=%d) error = %v, want ErrInvalidParameter", k, err)
		}
	}
}

func TestAnalyzeRejectsUndecodableBytes(t *testing.T) {
	_, err := New().Analyze(context.Background(), []byte("definitely not an image"), 8)
	if err == nil {
		t.Fatal("Analyze accepted undecodable bytes")
	}
}

func TestAnalyzeHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := solidPNG(t, 50, 50, color.RGBA{R: 200, A: 255})
	if _, err := New().Analyze(ctx, data, 8); err == nil {
		t.Fatal("Analyze ignored cancelled context")
	}
}

func TestNameForHex(t *testing.T) {
	tests := []struct {
		name        string
		hex         string
		wantName    string
		wantPrimary string
		wantErr     bool
	}{
		{name: "red verbatim", hex: "FF0000", wantName: "red", wantPrimary: "Red"},
		{name: "with hash", hex: "#4682b4", wantName: "steel blue", wantPrimary: "Blue"},
		{name: "malformed", hex: "nope", wantErr: true},
		{name: "empty", hex: "", wantErr: true},
	}

	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := a.NameForHex(tt.hex)
			if tt.wantErr {
				if !errors.Is(err, colour.ErrInvalidParameter) {
					t.Fatalf("NameForHex(%q) error = %v, want ErrInvalidParameter", tt.hex, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NameForHex(%q) returned error: %v", tt.hex, err)
			}
			if match.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", match.Name, tt.wantName)
			}
			if match.Primary != tt.wantPrimary {
				t.Errorf("Primary = %q, want %q", match.Primary, tt.wantPrimary)
			}
			if match.DeltaE > 1e-9 {
				t.Errorf("DeltaE = %v, want 0 for verbatim entry", match.DeltaE)
			}
		})
	}
}
