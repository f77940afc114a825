package heatcluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette/moreland"
)

func TestStepCurve(t *testing.T) {
	// Two bins drawn over a colorbar spanning values 10..20: each bin
	// contributes a vertical segment at its count.
	counts := []float64{1, 0.5}
	edges := []float64{0, 0.5, 1}

	pts := stepCurve(counts, edges, 10, 20)

	require.Len(t, pts, 4)
	assert.Equal(t, 1.0, pts[0].X)
	assert.InDelta(t, 10.0, pts[0].Y, 1e-12)
	assert.Equal(t, 1.0, pts[1].X)
	assert.InDelta(t, 15.0, pts[1].Y, 1e-12)
	assert.Equal(t, 0.5, pts[2].X)
	assert.InDelta(t, 15.0, pts[2].Y, 1e-12)
	assert.Equal(t, 0.5, pts[3].X)
	assert.InDelta(t, 20.0, pts[3].Y, 1e-12)
}

func TestNewColorbarPlot(t *testing.T) {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(10)

	cfg := DefaultConfig()
	applyDefaults(&cfg)

	p, bar, err := newColorbarPlot(cm, []float64{0, 2, 5, 10}, cfg)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, bar)

	assert.True(t, bar.Vertical)

	// Adding the bar stretches the value axis over the colormap range.
	assert.InDelta(t, 0.0, p.Y.Min, 1e-12)
	assert.InDelta(t, 10.0, p.Y.Max, 1e-12)
	assert.InDelta(t, 0.0, p.X.Min, 1e-12)
	assert.InDelta(t, 1.0, p.X.Max, 1e-12)
}

func TestNewColorbarPlot_WithHistogram(t *testing.T) {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	cfg := DefaultConfig()
	cfg.Histogram = true
	applyDefaults(&cfg)

	p, bar, err := newColorbarPlot(cm, []float64{-1, -0.5, 0, 0.25, 1}, cfg)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, bar)
}
