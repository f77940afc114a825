package heatcluster

import (
	"fmt"
	"math"
)

// Method selects the agglomeration rule used to merge clusters.
type Method string

const (
	MethodSingle   Method = "single"
	MethodComplete Method = "complete"
	MethodAverage  Method = "average"
	MethodWard     Method = "ward"
)

// Linkage performs agglomerative hierarchical clustering over a precomputed
// distance matrix. distMatrix is flat []float64, n×n row-major, symmetric
// with a zero diagonal. Returns n-1 merge rows in scipy linkage format:
// [left, right, distance, size], with leaves 0..n-1 and merged clusters
// numbered n, n+1, ... in merge order.
//
// MethodSingle runs Prim's MST followed by union-find labeling. The other
// methods agglomerate with the matching Lance-Williams update. MethodWard
// assumes Euclidean distances.
func Linkage(distMatrix []float64, n int, method Method) ([][4]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("heatcluster: need at least 2 items to cluster, got %d", n)
	}
	if len(distMatrix) != n*n {
		return nil, fmt.Errorf("heatcluster: distance matrix length %d does not match n*n = %d (n=%d)", len(distMatrix), n*n, n)
	}

	switch method {
	case MethodSingle:
		return Label(PrimMST(distMatrix, n), n), nil
	case MethodComplete, MethodAverage, MethodWard:
		return lanceWilliams(distMatrix, n, method), nil
	default:
		return nil, fmt.Errorf("heatcluster: invalid Method %q", method)
	}
}

// lanceWilliams runs plain agglomerative clustering: scan for the closest
// active pair, merge it, then update the merged cluster's distance to every
// other active cluster with the method's Lance-Williams rule. The merged
// cluster takes over the lower of the two matrix slots.
func lanceWilliams(distMatrix []float64, n int, method Method) [][4]float64 {
	d := make([]float64, len(distMatrix))
	copy(d, distMatrix)

	active := make([]bool, n)
	size := make([]float64, n)
	id := make([]int, n)
	for i := 0; i < n; i++ {
		active[i] = true
		size[i] = 1
		id[i] = i
	}

	result := make([][4]float64, 0, n-1)

	for step := 0; step < n-1; step++ {
		// Closest active pair. Seeding with the first pair keeps the scan
		// deterministic even when every remaining distance is +Inf or NaN.
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if bi == -1 || d[i*n+j] < best {
					best = d[i*n+j]
					bi, bj = i, j
				}
			}
		}

		ni, nj := size[bi], size[bj]
		result = append(result, [4]float64{float64(id[bi]), float64(id[bj]), best, ni + nj})

		// Fold bj into bi: slot bi now holds cluster n+step.
		for k := 0; k < n; k++ {
			if !active[k] || k == bi || k == bj {
				continue
			}
			dik := d[bi*n+k]
			djk := d[bj*n+k]

			var nd float64
			switch method {
			case MethodComplete:
				nd = math.Max(dik, djk)
			case MethodAverage:
				nd = (ni*dik + nj*djk) / (ni + nj)
			case MethodWard:
				nk := size[k]
				nd = math.Sqrt(((ni+nk)*dik*dik + (nj+nk)*djk*djk - nk*best*best) / (ni + nj + nk))
			}
			d[bi*n+k] = nd
			d[k*n+bi] = nd
		}

		size[bi] += size[bj]
		id[bi] = n + step
		active[bj] = false
	}

	return result
}
