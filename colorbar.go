package heatcluster

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
)

// newColorbarPlot builds the colorbar panel: a vertical gradient over the
// heatmap's value range with value labels on its right edge, optionally
// overlaid with the distribution histogram of the raw matrix values.
func newColorbarPlot(cm palette.ColorMap, values []float64, cfg Config) (*plot.Plot, *plotter.ColorBar, error) {
	p := plot.New()
	base := p.X.Tick.Label
	bareAxes(p)

	bar := &plotter.ColorBar{ColorMap: cm}
	bar.Vertical = true
	p.Add(bar)

	// Value labels sit on the right edge, where a vertical colorbar's axis
	// conventionally goes.
	var marker plot.DefaultTicks
	var posns []float64
	var labs []string
	for _, t := range marker.Ticks(p.Y.Min, p.Y.Max) {
		if t.IsMinor() {
			continue
		}
		posns = append(posns, t.Value)
		labs = append(labs, t.Label)
	}
	p.Add(&axisLabels{
		side:      sideRight,
		positions: posns,
		labels:    labs,
		style:     labelStyle(base, cfg.LabelFontSize, 0, sideRight),
		offset:    rowLabelGap,
	})

	if cfg.Histogram {
		if err := addHistogram(p, base, values, cfg); err != nil {
			return nil, nil, err
		}
	}
	return p, bar, nil
}

// addHistogram overlays the value-distribution step curve on the colorbar
// and annotates its count axis along the bottom edge: "0" under the gradient
// side, the tallest bin's share of all values under the other.
func addHistogram(p *plot.Plot, base text.Style, values []float64, cfg Config) error {
	counts, edges, peakFrac := normalizedHistogram(values)

	line, err := plotter.NewLine(stepCurve(counts, edges, p.Y.Min, p.Y.Max))
	if err != nil {
		return fmt.Errorf("heatcluster: histogram curve: %w", err)
	}
	line.Color = color.NRGBA{A: 128}
	p.Add(line)

	p.Add(&axisLabels{
		side:      sideBottom,
		positions: []float64{0, 1},
		labels:    []string{"0", fmt.Sprintf("%.2g%%", 100*peakFrac)},
		style:     labelStyle(base, cfg.LabelFontSize, 0, sideBottom),
		offset:    colLabelGap,
	})
	p.Add(&axisLabels{
		side:      sideBottom,
		positions: []float64{0.5},
		labels:    []string{"Histogram\n(% count)"},
		style:     labelStyle(base, cfg.LabelFontSize, 0, sideBottom),
		offset:    histCaptionGap,
	})
	return nil
}

// stepCurve converts normalized histogram counts and edges into the steps
// polyline drawn over the vertical colorbar: x is the normalized count, y is
// the bin edge mapped onto the colorbar's value axis [lo, hi].
func stepCurve(counts, edges []float64, lo, hi float64) plotter.XYs {
	pts := make(plotter.XYs, 0, 2*len(counts))
	for i, c := range counts {
		pts = append(pts,
			plotter.XY{X: c, Y: lo + edges[i]*(hi-lo)},
			plotter.XY{X: c, Y: lo + edges[i+1]*(hi-lo)},
		)
	}
	return pts
}
