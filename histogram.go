package heatcluster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// histogramBins is the bin-count rule for the colorbar histogram: roughly
// one bin per ten values, clamped to [11, 80].
func histogramBins(size int) int {
	nb := int(float64(size)/10.0 + 0.5)
	if nb < 11 {
		nb = 11
	}
	if nb > 80 {
		nb = 80
	}
	return nb
}

// valueHistogram bins values into histogramBins(len(values)) equal-width
// bins spanning [min, max], numpy-style: the final bin includes the maximum.
// Returns raw counts (length nbins) and bin edges (length nbins+1).
func valueHistogram(values []float64) (counts, edges []float64) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		// Degenerate range: center a unit-wide span, as numpy does.
		lo -= 0.5
		hi += 0.5
	}

	nb := histogramBins(len(values))
	edges = floats.Span(make([]float64, nb+1), lo, hi)

	// stat.Histogram bins are half-open, so the maximum would land outside
	// the last bin; widen its divider by one ulp to include it.
	dividers := make([]float64, nb+1)
	copy(dividers, edges)
	dividers[nb] = math.Nextafter(dividers[nb], math.Inf(1))

	counts = stat.Histogram(make([]float64, nb), dividers, sorted, nil)
	return counts, edges
}

// normalizedHistogram computes the colorbar overlay artifacts: counts scaled
// so the fullest bin is 1, edges min-max scaled onto [0, 1], and the fullest
// bin's fraction of the total count (for the percentage label).
func normalizedHistogram(values []float64) (counts, edges []float64, peakFrac float64) {
	counts, edges = valueHistogram(values)

	peak := floats.Max(counts)
	for i := range counts {
		counts[i] /= peak
	}

	lo, hi := edges[0], edges[len(edges)-1]
	for i := range edges {
		edges[i] = (edges[i] - lo) / (hi - lo)
	}

	peakFrac = peak / float64(len(values))
	return counts, edges, peakFrac
}
