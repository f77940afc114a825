package main

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// makeData builds a synthetic matrix with planted structure: every row is
// one of three gamma-distributed row archetypes, every column adds one of
// three scaled column archetypes, and Gaussian noise goes on top. Rows
// sharing an archetype end up close under any of the linkage methods, so
// the dendrograms have something real to find. The same seed always
// produces the same matrix.
func makeData(rows, cols int, seed uint64) (*mat.Dense, []string, []string) {
	src := rand.NewPCG(seed, seed)
	rng := rand.New(src)

	rowArchetypes := [][]float64{
		sample(distuv.Gamma{Alpha: 7, Beta: 1.0 / 6, Src: src}, cols),
		sample(distuv.Gamma{Alpha: 6, Beta: 1.0 / 8, Src: src}, cols),
		sample(distuv.Gamma{Alpha: 5, Beta: 1.0 / 6, Src: src}, cols),
	}
	rowPick := picks(rng, rows, len(rowArchetypes))

	colArchetypes := [][]float64{
		sample(distuv.Gamma{Alpha: 8, Beta: 1.0 / 3, Src: src}, rows),
		sample(distuv.Gamma{Alpha: 5, Beta: 1.0 / 3, Src: src}, rows),
		sample(distuv.Gamma{Alpha: 6, Beta: 1.0 / 2.1, Src: src}, rows),
	}
	colPick := picks(rng, cols, len(colArchetypes))

	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	x := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := rowArchetypes[rowPick[i]][j] +
				1.1*colArchetypes[colPick[j]][i] +
				2*noise.Rand()
			x.Set(i, j, v)
		}
	}

	rowLabels := make([]string, rows)
	for i := range rowLabels {
		rowLabels[i] = fmt.Sprintf("R%02d", i)
	}
	colLabels := make([]string, cols)
	for j := range colLabels {
		colLabels[j] = fmt.Sprintf("C%02d", j)
	}
	return x, rowLabels, colLabels
}

// sample draws n values from d.
func sample(d distuv.Rander, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

// picks draws n archetype indices in [0, k).
func picks(rng *rand.Rand, n, k int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(k)
	}
	return out
}
