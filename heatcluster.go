package heatcluster

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// colorSteps is the palette resolution used for heatmap cells.
const colorSteps = 255

// LinkageFunc computes a linkage matrix for x, replacing the built-in
// distance + agglomeration pipeline. The column hook receives the original
// matrix, not its transpose; clustering the columns (e.g. via x.T()) is the
// function's job.
type LinkageFunc func(x mat.Matrix) ([][4]float64, error)

// Config controls heatmap construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// NumRowClusters colors the left dendrogram by its k-cluster cut.
	// Values <= 1 draw every link in the base color. Must be <= the number
	// of matrix rows. Default: 0 (single color).
	NumRowClusters int

	// NumColClusters does the same for the top dendrogram. Must be <= the
	// number of matrix columns. Default: 0 (single color).
	NumColClusters int

	// LabelFontSize sizes the row, column and colorbar tick labels.
	// Default: 8pt.
	LabelFontSize font.Length

	// ColorMap maps matrix values to cell colors; its range is set to the
	// data range. Default: moreland.SmoothBlueRed().
	ColorMap palette.ColorMap

	// ShowColorbar draws the value scale to the right of the heatmap.
	// DefaultConfig sets it true.
	ShowColorbar bool

	// ColorbarPad is the gap between the heatmap and the colorbar strip.
	// 0 means the default 0.5 inch.
	ColorbarPad vg.Length

	// Histogram overlays the distribution of the matrix values on the
	// colorbar, which widens to make room. Ignored unless ShowColorbar is
	// set. Default: false.
	Histogram bool

	// TopDendrogram enables column clustering and the top dendrogram. When
	// false, columns keep their input order and no column linkage is
	// computed. DefaultConfig sets it true.
	TopDendrogram bool

	// XLabelRotation tilts the column labels, in degrees. Negative values
	// lean them toward the lower right. Default: -45.
	XLabelRotation float64

	// YLabelRotation tilts the row labels, in degrees. Default: 0.
	YLabelRotation float64

	// Width and Height size the figure canvas used by Figure.Save and
	// Figure.WriterTo. Defaults: 12 × 8 inches.
	Width, Height vg.Length

	// RowLinkage overrides row clustering with a precomputed or custom
	// linkage. Default: nil (cluster rows with Metric and Method).
	RowLinkage LinkageFunc

	// ColLinkage overrides column clustering. Like RowLinkage it receives
	// the original matrix. Unused when TopDendrogram is false.
	ColLinkage LinkageFunc

	// Method is the agglomeration rule for built-in clustering: single,
	// complete, average or ward. Default: single.
	Method Method

	// Metric measures the distance between rows (or columns). Built-in:
	// EuclideanMetric, ManhattanMetric, CosineMetric, ChebyshevMetric,
	// MinkowskiMetric. Use DistanceFunc to wrap a custom function.
	// Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers controls the number of goroutines for pairwise distance
	// computation. 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// Result contains everything Plot computed. Panel handles stay nil when the
// corresponding feature is off.
type Result struct {
	// RowLinkage is the row merge tree in scipy linkage format: each row is
	// [left, right, distance, size], cluster IDs starting at the row count.
	RowLinkage [][4]float64

	// ColLinkage is the column merge tree, nil when TopDendrogram is off.
	ColLinkage [][4]float64

	// RowDendrogram carries the row leaf order and drawable link geometry.
	RowDendrogram *Dendrogram

	// ColDendrogram is the column equivalent, nil when TopDendrogram is off.
	ColDendrogram *Dendrogram

	// Reordered is a copy of the input with rows (and columns, when the top
	// dendrogram is on) permuted to leaf order. Row 0 is the bottom heatmap
	// row. The input matrix itself is never modified.
	Reordered *mat.Dense

	// Figure composes the panels; render it with Figure.Save, Figure.Draw
	// or Figure.WriterTo.
	Figure *Figure

	// Heatmap is the color-grid plotter inside HeatmapPlot. Its Min and Max
	// are the color range.
	Heatmap *plotter.HeatMap

	// ColorBar is the gradient plotter inside ColorbarPlot, nil when
	// ShowColorbar is off.
	ColorBar *plotter.ColorBar

	// The per-panel plots, for customization before drawing.
	// TopDendrogramPlot and ColorbarPlot are nil when disabled.
	HeatmapPlot        *plot.Plot
	LeftDendrogramPlot *plot.Plot
	TopDendrogramPlot  *plot.Plot
	ColorbarPlot       *plot.Plot
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		LabelFontSize:  vg.Points(8),
		ShowColorbar:   true,
		ColorbarPad:    defaultColorbarPad,
		TopDendrogram:  true,
		XLabelRotation: -45,
		Width:          12 * vg.Inch,
		Height:         8 * vg.Inch,
		Method:         MethodSingle,
		Metric:         EuclideanMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.LabelFontSize == 0 {
		cfg.LabelFontSize = vg.Points(8)
	}
	if cfg.ColorMap == nil {
		cfg.ColorMap = moreland.SmoothBlueRed()
	}
	if cfg.ColorbarPad == 0 {
		cfg.ColorbarPad = defaultColorbarPad
	}
	if cfg.Width == 0 {
		cfg.Width = 12 * vg.Inch
	}
	if cfg.Height == 0 {
		cfg.Height = 8 * vg.Inch
	}
	if cfg.Method == "" {
		cfg.Method = MethodSingle
	}
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateInputs checks the matrix shape, label lengths and config against
// each other and returns a descriptive error on mismatch.
func validateInputs(m, n int, rowLabels, colLabels []string, cfg *Config) error {
	if m < 2 || n < 2 {
		return fmt.Errorf("heatcluster: matrix must be at least 2x2 to cluster, got %dx%d", m, n)
	}
	if rowLabels != nil && len(rowLabels) != m {
		return fmt.Errorf("heatcluster: got %d row labels for %d rows", len(rowLabels), m)
	}
	if colLabels != nil && len(colLabels) != n {
		return fmt.Errorf("heatcluster: got %d column labels for %d columns", len(colLabels), n)
	}
	if cfg.NumRowClusters > m {
		return fmt.Errorf("heatcluster: NumRowClusters must be <= %d rows, got %d", m, cfg.NumRowClusters)
	}
	if cfg.NumColClusters > n {
		return fmt.Errorf("heatcluster: NumColClusters must be <= %d columns, got %d", n, cfg.NumColClusters)
	}
	switch cfg.Method {
	case MethodSingle, MethodComplete, MethodAverage, MethodWard:
		// valid
	default:
		return fmt.Errorf("heatcluster: invalid Method %q", cfg.Method)
	}
	return nil
}

// Plot clusters the rows (and, when TopDendrogram is set, the columns) of x
// and assembles the clustered heatmap figure. rowLabels and colLabels may be
// nil to skip drawing labels; when present, their lengths must match the
// matrix and they are shown in clustered order. x is not modified. Nothing
// is rendered until the returned Result.Figure is drawn or saved.
func Plot(x mat.Matrix, rowLabels, colLabels []string, cfg Config) (*Result, error) {
	applyDefaults(&cfg)

	if x == nil {
		return nil, fmt.Errorf("heatcluster: nil matrix")
	}
	m, n := x.Dims()
	if err := validateInputs(m, n, rowLabels, colLabels, &cfg); err != nil {
		return nil, err
	}

	var rowLink [][4]float64
	var err error
	if cfg.RowLinkage != nil {
		rowLink, err = cfg.RowLinkage(x)
	} else {
		rowLink, err = defaultLinkage(x, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("heatcluster: row linkage: %w", err)
	}
	rowDend, err := NewDendrogram(rowLink, ColorThreshold(rowLink, cfg.NumRowClusters))
	if err != nil {
		return nil, fmt.Errorf("heatcluster: row dendrogram: %w", err)
	}
	if len(rowDend.Leaves) != m {
		return nil, fmt.Errorf("heatcluster: row linkage describes %d rows, matrix has %d", len(rowDend.Leaves), m)
	}

	var colLink [][4]float64
	var colDend *Dendrogram
	if cfg.TopDendrogram {
		if cfg.ColLinkage != nil {
			colLink, err = cfg.ColLinkage(x)
		} else {
			colLink, err = defaultLinkage(x.T(), cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("heatcluster: column linkage: %w", err)
		}
		colDend, err = NewDendrogram(colLink, ColorThreshold(colLink, cfg.NumColClusters))
		if err != nil {
			return nil, fmt.Errorf("heatcluster: column dendrogram: %w", err)
		}
		if len(colDend.Leaves) != n {
			return nil, fmt.Errorf("heatcluster: column linkage describes %d columns, matrix has %d", len(colDend.Leaves), n)
		}
	}

	var colOrder []int
	if colDend != nil {
		colOrder = colDend.Leaves
	}
	z := reorderMatrix(x, rowDend.Leaves, colOrder)

	lo, hi := mat.Min(z), mat.Max(z)
	if lo == hi {
		// Flat data: widen the range so the color map stays usable.
		hi = lo + 1
	}
	cm := cfg.ColorMap
	cm.SetMin(lo)
	cm.SetMax(hi)

	hm := plotter.NewHeatMap(cellGrid{z}, cm.Palette(colorSteps))
	hm.Min, hm.Max = lo, hi

	mainPlot := newMainPlot(hm,
		permuteLabels(rowLabels, rowDend.Leaves),
		permuteLabels(colLabels, colOrder),
		cfg)
	leftPlot := newDendrogramPlot(rowDend, orientLeft, m)

	var topPlot *plot.Plot
	if colDend != nil {
		topPlot = newDendrogramPlot(colDend, orientTop, n)
	}

	var cbarPlot *plot.Plot
	var bar *plotter.ColorBar
	if cfg.ShowColorbar {
		cbarPlot, bar, err = newColorbarPlot(cm, flattenRows(x), cfg)
		if err != nil {
			return nil, err
		}
	}

	fig := &Figure{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ColorbarPad:  cfg.ColorbarPad,
		WideColorbar: cfg.ShowColorbar && cfg.Histogram,
		Main:         mainPlot,
		Left:         leftPlot,
		Top:          topPlot,
		Colorbar:     cbarPlot,
	}

	return &Result{
		RowLinkage:         rowLink,
		ColLinkage:         colLink,
		RowDendrogram:      rowDend,
		ColDendrogram:      colDend,
		Reordered:          z,
		Figure:             fig,
		Heatmap:            hm,
		ColorBar:           bar,
		HeatmapPlot:        mainPlot,
		LeftDendrogramPlot: leftPlot,
		TopDendrogramPlot:  topPlot,
		ColorbarPlot:       cbarPlot,
	}, nil
}

// defaultLinkage clusters the rows of a: pairwise distances under the
// configured metric, then the configured agglomeration method.
func defaultLinkage(a mat.Matrix, cfg Config) ([][4]float64, error) {
	r, c := a.Dims()
	dist := ComputePairwiseDistancesParallel(flattenRows(a), r, c, cfg.Metric, cfg.Workers)
	return Linkage(dist, r, cfg.Method)
}
