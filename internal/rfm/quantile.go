package rfm

import (
	"math"
	"sort"
)

// QuantileEdges returns the q+1 quantile edges of the finite values, using
// linear interpolation between order statistics, with duplicate edges collapsed.
// Fewer than two edges means the values cannot be binned.
func QuantileEdges(values []float64, q int) []float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 || q < 1 {
		return nil
	}
	sort.Float64s(sorted)

	m := len(sorted)
	edges := make([]float64, 0, q+1)
	for k := 0; k <= q; k++ {
		pos := float64(k*(m-1)) / float64(q)
		lo := int(math.Floor(pos))
		e := sorted[lo]
		if lo+1 < m {
			e += (sorted[lo+1] - sorted[lo]) * (pos - float64(lo))
		}
		if len(edges) > 0 && edges[len(edges)-1] == e {
			continue
		}
		edges = append(edges, e)
	}
	return edges
}

// QuantileBins assigns each value to a quantile bin. Bins are right-closed
// intervals between consecutive edges, the first one also holding its lower
// edge. Values that cannot be binned get -1. The second result is the number
// of bins that survived edge collapsing.
func QuantileBins(values []float64, q int) ([]int, int) {
	bins := make([]int, len(values))
	edges := QuantileEdges(values, q)
	n := len(edges) - 1
	for i, v := range values {
		if n < 1 || math.IsNaN(v) || math.IsInf(v, 0) {
			bins[i] = -1
			continue
		}
		b := sort.SearchFloat64s(edges, v) - 1
		if b < 0 {
			b = 0
		}
		if b >= n {
			b = n - 1
		}
		bins[i] = b
	}
	return bins, n
}
