package colour

// Vibrance boost applied before clustering. Real-world photos often read
// grey overall; lifting brightness, contrast and saturation slightly pulls
// the clusters towards the colours people actually perceive.
const (
	enhanceBrightness = 1.15
	enhanceContrast   = 1.20
	enhanceSaturation = 1.30
)

// Enhance applies the vibrance boost to a pixel buffer in place and returns
// it. Brightness scales every channel, contrast stretches channels around
// the image's mean luma, and saturation pushes each pixel away from its own
// grey point. Channels clamp to [0, 255] at every stage.
func Enhance(pixels []RGB) []RGB {
	if len(pixels) == 0 {
		return pixels
	}

	// Mean luma of the brightened image is the contrast pivot.
	var lumaSum float64
	for _, p := range pixels {
		r := float64(p.R) * enhanceBrightness
		g := float64(p.G) * enhanceBrightness
		b := float64(p.B) * enhanceBrightness
		lumaSum += luma(clampF(r), clampF(g), clampF(b))
	}
	mean := lumaSum / float64(len(pixels))

	for i, p := range pixels {
		r := clampF(float64(p.R) * enhanceBrightness)
		g := clampF(float64(p.G) * enhanceBrightness)
		b := clampF(float64(p.B) * enhanceBrightness)

		r = clampF(mean + (r-mean)*enhanceContrast)
		g = clampF(mean + (g-mean)*enhanceContrast)
		b = clampF(mean + (b-mean)*enhanceContrast)

		grey := luma(r, g, b)
		r = clampF(grey + (r-grey)*enhanceSaturation)
		g = clampF(grey + (g-grey)*enhanceSaturation)
		b = clampF(grey + (b-grey)*enhanceSaturation)

		pixels[i] = RGB{R: uint8(r + 0.5), G: uint8(g + 0.5), B: uint8(b + 0.5)}
	}
	return pixels
}

// luma is the Rec. 601 weighted brightness of a pixel.
func luma(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

func clampF(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
