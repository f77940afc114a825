// Package heatcluster renders clustered heatmaps: a numeric matrix drawn as
// a color grid with hierarchical-clustering dendrograms on its left and top
// edges, rows and columns permuted to dendrogram leaf order.
//
// Basic usage:
//
//	cfg := heatcluster.DefaultConfig()
//	cfg.NumRowClusters = 3
//	result, err := heatcluster.Plot(x, rowLabels, colLabels, cfg)
//	// result.RowDendrogram.Leaves is the display order of the input rows
//	// result.Figure renders the assembled panels
//	err = result.Figure.Save("heatmap.png")
//
// Plot clusters the rows (and, unless disabled, the columns) of the matrix,
// reorders a copy to leaf order, and assembles the figure: heatmap, colored
// dendrograms, tick labels, an optional colorbar and an optional value
// histogram overlaid on the colorbar. Nothing is rasterized until the
// returned Figure is drawn or saved.
//
// # Pipeline
//
// The stages are exported for standalone use:
//
//	dist := heatcluster.ComputePairwiseDistances(flat, n, dims, heatcluster.EuclideanMetric{})
//	link, err := heatcluster.Linkage(dist, n, heatcluster.MethodSingle)
//	dend, err := heatcluster.NewDendrogram(link, heatcluster.ColorThreshold(link, 3))
//
// Linkage matrices use scipy's encoding: row i is [left, right, distance,
// size], with leaves numbered 0..n-1 and merged clusters n..2n-2 in merge
// order. Custom trees in that encoding can be fed to Plot through
// Config.RowLinkage and Config.ColLinkage.
package heatcluster
