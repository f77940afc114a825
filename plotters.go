package heatcluster

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// orientation places a dendrogram panel relative to the heatmap.
type orientation int

const (
	orientLeft orientation = iota
	orientTop
)

// bareAxes hides a plot's axes and removes their padding so the plot's data
// rectangle coincides exactly with the canvas it is drawn into. The figure's
// panel alignment relies on this.
func bareAxes(p *plot.Plot) {
	p.HideAxes()
	p.X.Padding = 0
	p.Y.Padding = 0
}

// dendrogramPlotter strokes each merge as a stem-bridge-stem bracket.
// Geometry arrives in (leaf position, height) coordinates; orient maps them
// onto the panel so the leaves sit on the edge shared with the heatmap.
type dendrogramPlotter struct {
	dend   *Dendrogram
	orient orientation
	width  vg.Length
}

func (dp *dendrogramPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, lnk := range dp.dend.Links {
		pts := []vg.Point{
			dp.point(lnk.Left, lnk.LeftBase, plt, trX, trY),
			dp.point(lnk.Left, lnk.Height, plt, trX, trY),
			dp.point(lnk.Right, lnk.Height, plt, trX, trY),
			dp.point(lnk.Right, lnk.RightBase, plt, trX, trY),
		}
		sty := draw.LineStyle{Color: groupColor(lnk.Group), Width: dp.width}
		c.StrokeLines(sty, c.ClipLinesXY(pts)...)
	}
}

// point maps (leaf position, height) into the panel's data space.
func (dp *dendrogramPlotter) point(pos, h float64, plt *plot.Plot, trX, trY func(float64) vg.Length) vg.Point {
	if dp.orient == orientLeft {
		// Heights grow leftward so the leaves touch the heatmap edge.
		return vg.Point{X: trX(plt.X.Max - h), Y: trY(pos)}
	}
	return vg.Point{X: trX(pos), Y: trY(h)}
}

// groupColor cycles the plotutil palette: the base color for links above the
// threshold, then one color per group.
func groupColor(group int) color.Color {
	if group < 0 {
		return plotutil.Color(0)
	}
	return plotutil.Color(1 + group)
}

// newDendrogramPlot builds the hidden-axis panel for one dendrogram. The
// leaf axis spans [0, leafCount] to line up with the heatmap cells; the
// height axis spans the merge heights plus 5% headroom for the root bridge.
func newDendrogramPlot(d *Dendrogram, orient orientation, leafCount int) *plot.Plot {
	p := plot.New()
	bareAxes(p)

	hi := 1.05 * d.MaxHeight
	if hi <= 0 {
		hi = 1 // every merge at height zero; any positive span will do
	}
	switch orient {
	case orientLeft:
		p.X.Min, p.X.Max = 0, hi
		p.Y.Min, p.Y.Max = 0, float64(leafCount)
	case orientTop:
		p.X.Min, p.X.Max = 0, float64(leafCount)
		p.Y.Min, p.Y.Max = 0, hi
	}
	p.Add(&dendrogramPlotter{dend: d, orient: orient, width: vg.Points(1)})
	return p
}

// labelSide names the panel edge axisLabels hang from.
type labelSide int

const (
	sideRight labelSide = iota
	sideBottom
)

// axisLabels draws tick labels along a panel edge the built-in axes do not
// serve: row labels to the right of the heatmap, column labels under it, and
// the colorbar annotations. Positions are data coordinates along that edge's
// axis; offset is the gap between the panel edge and the text anchor.
type axisLabels struct {
	side      labelSide
	positions []float64
	labels    []string
	style     text.Style
	offset    vg.Length
}

func (al *axisLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, pos := range al.positions {
		var pt vg.Point
		switch al.side {
		case sideRight:
			pt = vg.Point{X: c.Max.X + al.offset, Y: trY(pos)}
		case sideBottom:
			pt = vg.Point{X: trX(pos), Y: c.Min.Y - al.offset}
		}
		c.FillText(al.style, pt, al.labels[i])
	}
}

// labelStyle derives the tick-label style for a panel edge from the plot's
// own tick style, anchored so rotated text stays on the outward side of the
// edge. Rotation is in degrees, matplotlib-style: negative leans column
// labels toward the lower right.
func labelStyle(base text.Style, size font.Length, rotDeg float64, side labelSide) text.Style {
	sty := base
	sty.Font.Size = size
	sty.Rotation = rotDeg * math.Pi / 180

	switch side {
	case sideRight:
		sty.XAlign = text.XLeft
		sty.YAlign = text.YCenter
	case sideBottom:
		sty.YAlign = text.YTop
		switch {
		case rotDeg < 0:
			sty.XAlign = text.XLeft
		case rotDeg > 0:
			sty.XAlign = text.XRight
		default:
			sty.XAlign = text.XCenter
		}
	}
	return sty
}

// newMainPlot builds the heatmap panel: the color grid plus row labels on
// the right edge and column labels below it, already in display order.
func newMainPlot(hm *plotter.HeatMap, rowLabels, colLabels []string, cfg Config) *plot.Plot {
	p := plot.New()
	base := p.X.Tick.Label
	bareAxes(p)
	p.Add(hm)

	if len(rowLabels) > 0 {
		p.Add(&axisLabels{
			side:      sideRight,
			positions: tickCenters(len(rowLabels)),
			labels:    rowLabels,
			style:     labelStyle(base, cfg.LabelFontSize, cfg.YLabelRotation, sideRight),
			offset:    rowLabelGap,
		})
	}
	if len(colLabels) > 0 {
		p.Add(&axisLabels{
			side:      sideBottom,
			positions: tickCenters(len(colLabels)),
			labels:    colLabels,
			style:     labelStyle(base, cfg.LabelFontSize, cfg.XLabelRotation, sideBottom),
			offset:    colLabelGap,
		})
	}
	return p
}
