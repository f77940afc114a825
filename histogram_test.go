package heatcluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramBins(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{4, 11},    // tiny inputs clamp up to 11
		{100, 11},  // 10 bins rounds below the floor
		{115, 12},  // first size past the floor
		{300, 30},  // one bin per ten values
		{800, 80},  // exactly the ceiling
		{2000, 80}, // large inputs clamp down to 80
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, histogramBins(tt.size), "histogramBins(%d)", tt.size)
	}
}

func TestValueHistogram_CountsSumToLen(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}

	counts, edges := valueHistogram(values)

	require.Len(t, counts, 11)
	require.Len(t, edges, 12)

	sum := 0.0
	for _, c := range counts {
		sum += c
	}
	assert.Equal(t, float64(len(values)), sum)
}

func TestValueHistogram_MaxLandsInLastBin(t *testing.T) {
	// Half-open binning would drop the maximum; the last bin must keep it.
	values := []float64{0, 10}

	counts, edges := valueHistogram(values)

	assert.Equal(t, 1.0, counts[0])
	assert.Equal(t, 1.0, counts[len(counts)-1])
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 10.0, edges[len(edges)-1])
}

func TestValueHistogram_EdgesSpanMinMax(t *testing.T) {
	values := []float64{-2, 7, 3, 5}

	_, edges := valueHistogram(values)

	assert.InDelta(t, -2.0, edges[0], 1e-12)
	assert.InDelta(t, 7.0, edges[len(edges)-1], 1e-12)
	for i := 1; i < len(edges); i++ {
		assert.Greater(t, edges[i], edges[i-1])
	}
}

func TestValueHistogram_ConstantValues(t *testing.T) {
	// All-equal input expands to a unit-wide range around the value.
	values := []float64{3, 3, 3}

	counts, edges := valueHistogram(values)

	assert.InDelta(t, 2.5, edges[0], 1e-12)
	assert.InDelta(t, 3.5, edges[len(edges)-1], 1e-12)

	nonzero := 0
	sum := 0.0
	for _, c := range counts {
		sum += c
		if c > 0 {
			nonzero++
		}
	}
	assert.Equal(t, 3.0, sum)
	assert.Equal(t, 1, nonzero, "identical values should land in a single bin")
}

func TestNormalizedHistogram(t *testing.T) {
	// Three zeros and a one: the zero bin peaks with 3 of 4 values.
	values := []float64{0, 0, 0, 1}

	counts, edges, peakFrac := normalizedHistogram(values)

	assert.InDelta(t, 0.75, peakFrac, 1e-12)

	// Fullest bin normalizes to 1, the other occupied bin to 1/3.
	assert.InDelta(t, 1.0, counts[0], 1e-12)
	assert.InDelta(t, 1.0/3.0, counts[len(counts)-1], 1e-12)

	// Edges rescale onto [0, 1].
	assert.InDelta(t, 0.0, edges[0], 1e-12)
	assert.InDelta(t, 1.0, edges[len(edges)-1], 1e-12)

	peak := 0.0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}
	assert.InDelta(t, 1.0, peak, 1e-12)
}
