package regress

import "fmt"

// RDiT fits a regression discontinuity in time around the event at tau = 0:
//
//	y(τ) = β0 + β1·1(τ≥0) + β2·τ + β3·τ·1(τ≥0) + ε
//
// β1 is the level break at the event, β3 the slope change. tau holds the
// period of each observation relative to the event.
func RDiT(y []float64, tau []int) (*Model, error) {
	if len(y) != len(tau) {
		return nil, fmt.Errorf("regress: %d outcomes for %d periods", len(y), len(tau))
	}

	x := make([][]float64, len(y))
	for i, t := range tau {
		post := 0.0
		if t >= 0 {
			post = 1
		}
		ft := float64(t)
		x[i] = []float64{1, post, ft, ft * post}
	}

	m, err := Fit(x, y)
	if err != nil {
		return nil, err
	}
	m.Names = []string{"intercept", "post", "tau", "tau*post"}
	return m, nil
}

// DiD fits a stacked two-sector difference-in-differences around tau = 0:
//
//	y(s,τ) = α + β1·Post + β2·τ + β3·τ·Post
//	       + γ·Treat + δ·Treat·Post + ζ·Treat·τ·Post + ε
//
// δ ("treat*post") is the differential level break of the treated sector and
// ζ the differential slope change. treated and control hold each sector's
// outcome at the periods in tau.
func DiD(treated, control []float64, tau []int) (*Model, error) {
	if len(treated) != len(tau) || len(control) != len(tau) {
		return nil, fmt.Errorf("regress: sector lengths %d/%d do not match %d periods",
			len(treated), len(control), len(tau))
	}

	n := len(tau)
	x := make([][]float64, 0, 2*n)
	y := make([]float64, 0, 2*n)
	for sector, series := range [][]float64{treated, control} {
		treat := 1.0
		if sector == 1 {
			treat = 0
		}
		for i, t := range tau {
			post := 0.0
			if t >= 0 {
				post = 1
			}
			ft := float64(t)
			x = append(x, []float64{
				1, post, ft, ft * post,
				treat, treat * post, treat * ft * post,
			})
			y = append(y, series[i])
		}
	}

	m, err := Fit(x, y)
	if err != nil {
		return nil, err
	}
	m.Names = []string{
		"intercept", "post", "tau", "tau*post",
		"treat", "treat*post", "treat*tau*post",
	}
	return m, nil
}
