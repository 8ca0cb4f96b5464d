package regress

import "sort"

// Spearman returns the rank correlation of two equal-length samples:
//
//	ρ = 1 - 6·Σd² / (n·(n²-1))
//
// Ties get distinct ranks in input order, matching the small-sample panels
// this is used on (biennial entropy gaps, where ties do not occur).
func Spearman(x, y []float64) float64 {
	n := len(x)
	if n != len(y) || n < 2 {
		return 0
	}

	rx := ranks(x)
	ry := ranks(y)

	var d2 float64
	for i := 0; i < n; i++ {
		d := rx[i] - ry[i]
		d2 += d * d
	}
	fn := float64(n)
	return 1 - 6*d2/(fn*(fn*fn-1))
}

func ranks(v []float64) []float64 {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	r := make([]float64, len(v))
	for rank, i := range idx {
		r[i] = float64(rank + 1)
	}
	return r
}
