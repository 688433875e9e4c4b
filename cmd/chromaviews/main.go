// ChromaViews - colour analysis for photographs
//
// ChromaViews extracts dominant colour palettes from images, names colours
// by perceptual distance against a reference set, and serves the analysis
// over HTTP.
package main

import (
	"github.com/afalcongonzalez/chromaviews/internal/cli"
)

func main() {
	cli.Execute()
}
