// Package regress provides small-sample ordinary least squares with
// heteroskedasticity-robust (HC1) standard errors, plus the segmented
// regression designs used for entropy event studies: regression
// discontinuity in time (RDiT) and a two-sector difference-in-differences.
package regress

import (
	"errors"
	"fmt"
	"math"
)

// Model holds a fitted regression: coefficients with their HC1 standard
// errors, t statistics, and two-tailed p values, plus fit diagnostics.
type Model struct {
	Names []string  `json:"names"`
	Coef  []float64 `json:"coef"`
	SE    []float64 `json:"se"`
	T     []float64 `json:"t"`
	P     []float64 `json:"p"`
	R2    float64   `json:"r2"`
	N     int       `json:"n"`
	DOF   int       `json:"dof"`
}

// Coefficient returns the coefficient value for a named design column.
func (m *Model) Coefficient(name string) (float64, bool) {
	for i, n := range m.Names {
		if n == name {
			return m.Coef[i], true
		}
	}
	return 0, false
}

// Fit estimates y = X*beta + e by OLS via the normal equations and computes
// the HC1 sandwich covariance
//
//	V = (n/(n-k)) * (X'X)^-1 * (Σ e_i² x_i x_i') * (X'X)^-1
//
// Every row of X must include its own intercept column if one is wanted.
func Fit(x [][]float64, y []float64) (*Model, error) {
	n := len(y)
	if n == 0 || len(x) != n {
		return nil, fmt.Errorf("regress: design has %d rows for %d observations", len(x), n)
	}
	k := len(x[0])
	if k == 0 {
		return nil, errors.New("regress: empty design row")
	}
	if n <= k {
		return nil, fmt.Errorf("regress: %d observations cannot identify %d coefficients", n, k)
	}
	for i, row := range x {
		if len(row) != k {
			return nil, fmt.Errorf("regress: row %d has %d columns, want %d", i, len(row), k)
		}
	}

	// X'X and X'y.
	xtx := make([][]float64, k)
	xty := make([]float64, k)
	for r := 0; r < k; r++ {
		xtx[r] = make([]float64, k)
		for i := 0; i < n; i++ {
			xty[r] += x[i][r] * y[i]
			for c := 0; c < k; c++ {
				xtx[r][c] += x[i][r] * x[i][c]
			}
		}
	}

	inv, err := invert(xtx)
	if err != nil {
		return nil, err
	}

	beta := matVec(inv, xty)

	resid := make([]float64, n)
	var rss float64
	for i := 0; i < n; i++ {
		var yhat float64
		for c := 0; c < k; c++ {
			yhat += x[i][c] * beta[c]
		}
		resid[i] = y[i] - yhat
		rss += resid[i] * resid[i]
	}

	// HC1 meat: X' diag(e²) X.
	meat := make([][]float64, k)
	for r := 0; r < k; r++ {
		meat[r] = make([]float64, k)
	}
	for i := 0; i < n; i++ {
		e2 := resid[i] * resid[i]
		for r := 0; r < k; r++ {
			for c := 0; c < k; c++ {
				meat[r][c] += x[i][r] * x[i][c] * e2
			}
		}
	}

	dof := n - k
	scale := float64(n) / float64(dof)
	cov := matMul(matMul(inv, meat), inv)

	m := &Model{
		Coef: beta,
		SE:   make([]float64, k),
		T:    make([]float64, k),
		P:    make([]float64, k),
		N:    n,
		DOF:  dof,
	}
	for c := 0; c < k; c++ {
		v := scale * cov[c][c]
		if v < 0 {
			v = 0
		}
		m.SE[c] = math.Sqrt(v)
		if m.SE[c] > 0 {
			m.T[c] = beta[c] / m.SE[c]
		} else if beta[c] != 0 {
			m.T[c] = math.Inf(1)
			if beta[c] < 0 {
				m.T[c] = math.Inf(-1)
			}
		}
		m.P[c] = StudentPValue(m.T[c], dof)
	}

	var ybar float64
	for _, v := range y {
		ybar += v
	}
	ybar /= float64(n)
	var tss float64
	for _, v := range y {
		tss += (v - ybar) * (v - ybar)
	}
	if tss > 0 {
		m.R2 = 1 - rss/tss
	}
	return m, nil
}

// invert computes the inverse of a square matrix by Gauss-Jordan elimination
// with partial pivoting.
func invert(a [][]float64) ([][]float64, error) {
	k := len(a)
	aug := make([][]float64, k)
	for i := range aug {
		aug[i] = make([]float64, 2*k)
		copy(aug[i], a[i])
		aug[i][k+i] = 1
	}

	for col := 0; col < k; col++ {
		pivot := col
		for r := col + 1; r < k; r++ {
			if math.Abs(aug[r][col]) > math.Abs(aug[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(aug[pivot][col]) < 1e-12 {
			return nil, errors.New("regress: singular design matrix")
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pv := aug[col][col]
		for j := 0; j < 2*k; j++ {
			aug[col][j] /= pv
		}
		for r := 0; r < k; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*k; j++ {
				aug[r][j] -= factor * aug[col][j]
			}
		}
	}

	inv := make([][]float64, k)
	for i := range inv {
		inv[i] = aug[i][k:]
	}
	return inv, nil
}

func matMul(a, b [][]float64) [][]float64 {
	m, inner, n := len(a), len(b), len(b[0])
	out := make([][]float64, m)
	for i := 0; i < m; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			var s float64
			for l := 0; l < inner; l++ {
				s += a[i][l] * b[l][j]
			}
			out[i][j] = s
		}
	}
	return out
}

func matVec(a [][]float64, v []float64) []float64 {
	out := make([]float64, len(a))
	for i, row := range a {
		var s float64
		for j, x := range row {
			s += x * v[j]
		}
		out[i] = s
	}
	return out
}
