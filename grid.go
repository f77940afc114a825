package heatcluster

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// reorderMatrix copies x into a fresh matrix with rows permuted by rowOrder
// and columns by colOrder. A nil order keeps that axis as given. x is never
// modified.
func reorderMatrix(x mat.Matrix, rowOrder, colOrder []int) *mat.Dense {
	m, n := x.Dims()
	z := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		si := i
		if rowOrder != nil {
			si = rowOrder[i]
		}
		for j := 0; j < n; j++ {
			sj := j
			if colOrder != nil {
				sj = colOrder[j]
			}
			z.Set(i, j, x.At(si, sj))
		}
	}
	return z
}

// permuteLabels reorders labels so that position i shows labels[order[i]].
// Nil labels or a nil order pass through unchanged.
func permuteLabels(labels []string, order []int) []string {
	if labels == nil || order == nil {
		return labels
	}
	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = labels[idx]
	}
	return out
}

// tickCenters returns n positions at the centers of n unit cells:
// 0.5, 1.5, ..., n-0.5. One tick per heatmap row or column.
func tickCenters(n int) []float64 {
	return floats.Span(make([]float64, n), 0.5, float64(n)-0.5)
}

// flattenRows copies x into a flat row-major slice.
func flattenRows(x mat.Matrix) []float64 {
	m, n := x.Dims()
	flat := make([]float64, 0, m*n)
	row := make([]float64, n)
	for i := 0; i < m; i++ {
		mat.Row(row, i, x)
		flat = append(flat, row...)
	}
	return flat
}

// cellGrid adapts a reordered matrix to plotter.GridXYZ with unit cells:
// column c spans [c, c+1] and row r spans [r, r+1], centers at +0.5. Row 0
// is drawn at the bottom, against dendrogram leaf 0.
type cellGrid struct {
	z *mat.Dense
}

func (g cellGrid) Dims() (c, r int) {
	r, c = g.z.Dims()
	return c, r
}

func (g cellGrid) Z(c, r int) float64 { return g.z.At(r, c) }
func (g cellGrid) X(c int) float64    { return float64(c) + 0.5 }
func (g cellGrid) Y(r int) float64    { return float64(r) + 0.5 }
