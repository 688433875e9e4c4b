package colour

// GridSize is the number of sample rows and columns laid over the analysed
// image; the grid always yields GridSize*GridSize points.
const GridSize = 6

// sampleRadius is the half-width of the neighbourhood averaged around each
// grid point (a 5x5 window, narrower at image borders).
const sampleRadius = 2

// Sample is one resolved grid point. Coordinates are in the analysed image's
// pixel space.
type Sample struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

// BuildSampleGrid lays a fixed GridSize x GridSize grid over a row-major
// pixel buffer, averages the neighbourhood around each point and resolves
// the averaged colour to a name. Points sit at proportional band centres, so
// none land on the image border. Output is row-major and deterministic.
func BuildSampleGrid(pixels []RGB, width, height int, idx *NameIndex) []Sample {
	samples := make([]Sample, 0, GridSize*GridSize)
	for row := 0; row < GridSize; row++ {
		y := gridCoord(row, height)
		for col := 0; col < GridSize; col++ {
			x := gridCoord(col, width)
			avg := averageNeighbourhood(pixels, width, height, x, y)
			samples = append(samples, Sample{
				X:    x,
				Y:    y,
				Hex:  avg.Hex(),
				Name: idx.NearestName(avg).Name,
			})
		}
	}
	return samples
}

// gridCoord maps a grid index to the centre of its band along a dimension of
// the given extent.
func gridCoord(i, extent int) int {
	c := int((float64(i) + 0.5) / GridSize * float64(extent))
	if c >= extent {
		c = extent - 1
	}
	return c
}

// averageNeighbourhood averages the pixels in a window centred on (x, y),
// shrinking the window at image borders instead of wrapping.
func averageNeighbourhood(pixels []RGB, width, height, x, y int) RGB {
	x0, x1 := max(0, x-sampleRadius), min(width-1, x+sampleRadius)
	y0, y1 := max(0, y-sampleRadius), min(height-1, y+sampleRadius)

	var r, g, b, n int
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			p := pixels[py*width+px]
			r += int(p.R)
			g += int(p.G)
			b += int(p.B)
			n++
		}
	}
	return RGB{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(b / n),
	}
}
