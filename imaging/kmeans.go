// SPDX-License-Identifier: EPL-2.0

package imaging

import (
	"math"
	"math/rand/v2"
)

// WeightedPoint is a sample for KMeans. Weight acts as a repeat count.
type WeightedPoint struct {
	X, Y   float64
	Weight float64
}

// Cluster is a k-means result. Weight is the cluster's share of the total
// point weight, so the weights of all returned clusters sum to 1.
type Cluster struct {
	X, Y   float64
	Weight float64
}

// KMeansOptions tunes the search. Zero fields take the defaults.
type KMeansOptions struct {
	// Attempts is the number of independent seedings; the most compact
	// result wins. Default 5.
	Attempts int
	// MaxIterations bounds each attempt. Default 50.
	MaxIterations int
	// Epsilon stops an attempt once no center moves further. Default 0.1.
	Epsilon float64
	// Seed makes the result reproducible.
	Seed uint64
}

func (o KMeansOptions) withDefaults() KMeansOptions {
	if o.Attempts <= 0 {
		o.Attempts = 5
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = 50
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 0.1
	}
	return o
}

// KMeans partitions points into at most k weighted clusters with k-means++
// seeding. Empty clusters are dropped, so fewer than k may be returned.
func KMeans(points []WeightedPoint, k int, opts KMeansOptions) []Cluster {
	total := 0.0
	for _, p := range points {
		total += p.Weight
	}
	if k <= 0 || len(points) == 0 || total <= 0 {
		return nil
	}

	opts = opts.withDefaults()
	k = min(k, len(points))

	var (
		best        []Cluster
		bestInertia = math.Inf(1)
	)
	for attempt := range opts.Attempts {
		rng := rand.New(rand.NewPCG(opts.Seed, uint64(attempt)))
		clusters, inertia := lloyd(points, seed(points, k, rng), opts, total)
		if inertia < bestInertia {
			best, bestInertia = clusters, inertia
		}
	}

	return best
}

// seed picks k initial centers, each with probability proportional to its
// weighted squared distance from the centers chosen so far.
func seed(points []WeightedPoint, k int, rng *rand.Rand) []WeightedPoint {
	centers := make([]WeightedPoint, 0, k)
	dist := make([]float64, len(points))
	for i := range dist {
		dist[i] = 1
	}

	for len(centers) < k {
		sum := 0.0
		for i, p := range points {
			sum += p.Weight * dist[i]
		}

		pick := len(points) - 1
		if sum > 0 {
			target := rng.Float64() * sum
			for i, p := range points {
				target -= p.Weight * dist[i]
				if target < 0 {
					pick = i
					break
				}
			}
		} else {
			pick = rng.IntN(len(points))
		}

		c := points[pick]
		centers = append(centers, c)
		for i, p := range points {
			d := sqDist(p.X, p.Y, c.X, c.Y)
			if len(centers) == 1 || d < dist[i] {
				dist[i] = d
			}
		}
	}

	return centers
}

func lloyd(points []WeightedPoint, centers []WeightedPoint, opts KMeansOptions, total float64) ([]Cluster, float64) {
	k := len(centers)
	labels := make([]int, len(points))
	sumX := make([]float64, k)
	sumY := make([]float64, k)
	mass := make([]float64, k)

	assign := func() float64 {
		inertia := 0.0
		for i, p := range points {
			bestD, bestC := math.Inf(1), 0
			for c, ctr := range centers {
				if d := sqDist(p.X, p.Y, ctr.X, ctr.Y); d < bestD {
					bestD, bestC = d, c
				}
			}
			labels[i] = bestC
			inertia += p.Weight * bestD
		}
		return inertia
	}

	inertia := assign()
	for range opts.MaxIterations {
		clear(sumX)
		clear(sumY)
		clear(mass)
		for i, p := range points {
			c := labels[i]
			sumX[c] += p.X * p.Weight
			sumY[c] += p.Y * p.Weight
			mass[c] += p.Weight
		}

		shift := 0.0
		for c := range centers {
			if mass[c] == 0 {
				continue
			}
			x, y := sumX[c]/mass[c], sumY[c]/mass[c]
			shift = math.Max(shift, math.Sqrt(sqDist(x, y, centers[c].X, centers[c].Y)))
			centers[c].X, centers[c].Y = x, y
		}

		inertia = assign()
		if shift <= opts.Epsilon {
			break
		}
	}

	clear(mass)
	for i, p := range points {
		mass[labels[i]] += p.Weight
	}

	clusters := make([]Cluster, 0, k)
	for c, ctr := range centers {
		if mass[c] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{X: ctr.X, Y: ctr.Y, Weight: mass[c] / total})
	}
	return clusters, inertia
}

func sqDist(x0, y0, x1, y1 float64) float64 {
	dx, dy := x0-x1, y0-y1
	return dx*dx + dy*dy
}
