package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig mirrors the TOML config file. Bool fields are stated
// positively (colorbar, top_dendrogram) even though the flags are negated,
// so a config file reads naturally.
type fileConfig struct {
	Data struct {
		Rows int    `toml:"rows"`
		Cols int    `toml:"cols"`
		Seed uint64 `toml:"seed"`
	} `toml:"data"`
	Plot struct {
		RowClusters   int     `toml:"row_clusters"`
		ColClusters   int     `toml:"col_clusters"`
		Method        string  `toml:"method"`
		Histogram     bool    `toml:"histogram"`
		Colorbar      bool    `toml:"colorbar"`
		TopDendrogram bool    `toml:"top_dendrogram"`
		LabelSize     float64 `toml:"label_size"`
		XRotation     float64 `toml:"x_rotation"`
		Width         float64 `toml:"width"`
		Height        float64 `toml:"height"`
		Output        string  `toml:"output"`
	} `toml:"plot"`
}

// loadFileConfig parses a TOML config file. Unknown keys are an error so a
// typo does not silently fall back to a default. The returned metadata says
// which keys were actually present, letting applyFileConfig distinguish
// "set to the zero value" from "not set at all".
func loadFileConfig(path string) (fileConfig, toml.MetaData, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fileConfig{}, toml.MetaData{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, toml.MetaData{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return fc, md, nil
}

// applyFileConfig copies file values into opts. A value applies only when
// the file defines the key and the matching flag was not set on the command
// line, so precedence is flag > file > built-in default.
func applyFileConfig(cmd *cobra.Command, opts *demoOptions, fc fileConfig, md toml.MetaData) {
	flags := cmd.Flags()

	if md.IsDefined("data", "rows") && !flags.Changed("rows") {
		opts.rows = fc.Data.Rows
	}
	if md.IsDefined("data", "cols") && !flags.Changed("cols") {
		opts.cols = fc.Data.Cols
	}
	if md.IsDefined("data", "seed") && !flags.Changed("seed") {
		opts.seed = fc.Data.Seed
	}

	if md.IsDefined("plot", "row_clusters") && !flags.Changed("row-clusters") {
		opts.rowClusters = fc.Plot.RowClusters
	}
	if md.IsDefined("plot", "col_clusters") && !flags.Changed("col-clusters") {
		opts.colClusters = fc.Plot.ColClusters
	}
	if md.IsDefined("plot", "method") && !flags.Changed("method") {
		opts.method = fc.Plot.Method
	}
	if md.IsDefined("plot", "histogram") && !flags.Changed("histogram") {
		opts.histogram = fc.Plot.Histogram
	}
	if md.IsDefined("plot", "colorbar") && !flags.Changed("no-colorbar") {
		opts.noColorbar = !fc.Plot.Colorbar
	}
	if md.IsDefined("plot", "top_dendrogram") && !flags.Changed("no-top-dendrogram") {
		opts.noTopDendrogram = !fc.Plot.TopDendrogram
	}
	if md.IsDefined("plot", "label_size") && !flags.Changed("label-size") {
		opts.labelSize = fc.Plot.LabelSize
	}
	if md.IsDefined("plot", "x_rotation") && !flags.Changed("x-rotation") {
		opts.xRotation = fc.Plot.XRotation
	}
	if md.IsDefined("plot", "width") && !flags.Changed("width") {
		opts.widthIn = fc.Plot.Width
	}
	if md.IsDefined("plot", "height") && !flags.Changed("height") {
		opts.heightIn = fc.Plot.Height
	}
	if md.IsDefined("plot", "output") && !flags.Changed("output") {
		opts.output = fc.Plot.Output
	}
}
