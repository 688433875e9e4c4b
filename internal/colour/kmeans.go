package colour

import (
	"math"
	"math/rand"
)

const (
	// kmeansMaxIterations caps a single clustering run so analysis time is
	// bounded regardless of image content.
	kmeansMaxIterations = 20

	// kmeansConvergence is the average centroid movement (in RGB units)
	// below which iteration stops.
	kmeansConvergence = 1.0
)

// cluster is one k-means result: a centroid in RGB space and the number of
// pixels assigned to it.
type cluster struct {
	centre point3D
	count  int
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// rgb rounds the point to 8-bit channels.
func (p point3D) rgb() RGB {
	return RGB{
		R: clampChannel(math.Round(p.R)),
		G: clampChannel(math.Round(p.G)),
		B: clampChannel(math.Round(p.B)),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// kmeansCluster partitions pixels into at most k clusters by Lloyd's
// algorithm with k-means++ initialisation. All randomness comes from the
// seeded rng, so repeated runs over the same pixels produce the same
// clusters. When the buffer holds fewer than k distinct colours, each
// distinct colour becomes its own cluster with an exact pixel count.
func kmeansCluster(pixels []RGB, k int, seed int64) []cluster {
	// Count distinct colours in first-seen order.
	distinct := make([]RGB, 0, k+1)
	counts := make(map[RGB]int, k+1)
	for _, p := range pixels {
		if _, ok := counts[p]; !ok {
			distinct = append(distinct, p)
			if len(distinct) > k {
				break
			}
		}
		counts[p]++
	}

	if len(distinct) <= k {
		// Low colour variety: the exact histogram is the clustering. The
		// early break above never triggers in this branch, so counts are
		// complete.
		clusters := make([]cluster, len(distinct))
		for i, c := range distinct {
			clusters[i] = cluster{
				centre: point3D{R: float64(c.R), G: float64(c.G), B: float64(c.B)},
				count:  counts[c],
			}
		}
		return clusters
	}

	points := make([]point3D, len(pixels))
	for i, p := range pixels {
		points[i] = point3D{R: float64(p.R), G: float64(p.G), B: float64(p.B)}
	}

	rng := rand.New(rand.NewSource(seed))
	centroids := initialCentroids(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if iter > 0 && changed == 0 {
			break
		}

		next := recomputeCentroids(points, assignments, k, rng)

		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next

		if movement/float64(k) < kmeansConvergence {
			break
		}
	}

	// Final assignment against the converged centroids so counts match the
	// centroids being reported.
	tally := make([]int, k)
	for i, point := range points {
		assignments[i] = nearestCentroid(point, centroids)
		tally[assignments[i]]++
	}

	clusters := make([]cluster, 0, k)
	for i := 0; i < k; i++ {
		if tally[i] == 0 {
			continue
		}
		clusters = append(clusters, cluster{centre: centroids[i], count: tally[i]})
	}
	return clusters
}

// initialCentroids picks k starting centroids using the k-means++ scheme:
// the first is drawn uniformly, each subsequent one with probability
// proportional to its squared distance from the nearest chosen centroid.
func initialCentroids(points []point3D, k int, rng *rand.Rand) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if d := point.distance(centroid); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Every remaining point coincides with a centroid. Nudge a copy
			// of the last centroid so the slot is filled.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if d := point.distance(centroid); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recomputeCentroids moves each centroid to the mean of its assigned points.
// Empty clusters are reseeded from a random point.
func recomputeCentroids(points []point3D, assignments []int, k int, rng *rand.Rand) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, point := range points {
		c := assignments[i]
		sums[c].R += point.R
		sums[c].G += point.G
		sums[c].B += point.B
		counts[c]++
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}
	return centroids
}
