// Package analyzer ties the colour analysis pipeline together: decode,
// downsize, cluster, deduplicate and sample. One Analyze call is a pure
// function of (image bytes, k); the only shared state is the read-only
// colour name index.
package analyzer

import (
	"context"
	"fmt"

	"github.com/afalcongonzalez/chromaviews/internal/colour"
	"github.com/afalcongonzalez/chromaviews/internal/image"
)

// Result is the outcome of one analysis: the analysed (post-resize)
// dimensions, the dominant palette and the sample grid.
type Result struct {
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Palette []colour.Entry  `json:"palette"`
	Samples []colour.Sample `json:"samples"`
}

// Analyzer runs colour analyses against a fixed name index and k-means seed.
// It is stateless per call and safe for concurrent use.
type Analyzer struct {
	index *colour.NameIndex
	seed  int64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSeed overrides the k-means initialisation seed.
func WithSeed(seed int64) Option {
	return func(a *Analyzer) {
		a.seed = seed
	}
}

// WithIndex overrides the colour name index.
func WithIndex(idx *colour.NameIndex) Option {
	return func(a *Analyzer) {
		a.index = idx
	}
}

// New creates an Analyzer over the default name index and seed.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		index: colour.DefaultIndex(),
		seed:  colour.DefaultSeed,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze decodes the image bytes and produces the palette and sample grid
// for it. k is the requested cluster count in [colour.MinClusters,
// colour.MaxClusters]. The context is checked between pipeline stages so an
// aborted caller stops paying for the remaining work; there is no in-flight
// state to clean up.
func (a *Analyzer) Analyze(ctx context.Context, data []byte, k int) (*Result, error) {
	if k < colour.MinClusters || k > colour.MaxClusters {
		return nil, fmt.Errorf("%w: cluster count %d outside [%d, %d]",
			colour.ErrInvalidParameter, k, colour.MinClusters, colour.MaxClusters)
	}

	frame, err := image.Preprocess(data)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pixels := colour.Enhance(frame.Pixels)

	palette, err := colour.ExtractPalette(pixels, k, a.seed, a.index)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	samples := colour.BuildSampleGrid(pixels, frame.Width, frame.Height, a.index)

	return &Result{
		Width:   frame.Width,
		Height:  frame.Height,
		Palette: palette,
		Samples: samples,
	}, nil
}

// NameForHex resolves a 6-digit hex colour to its nearest reference name
// without running the image pipeline. Malformed hex strings return
// colour.ErrInvalidParameter.
func (a *Analyzer) NameForHex(hex string) (colour.Match, error) {
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return colour.Match{}, fmt.Errorf("%w: %v", colour.ErrInvalidParameter, err)
	}
	return a.index.NearestName(rgb), nil
}
