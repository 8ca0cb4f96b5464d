// Package replicator implements replicator-equation dynamics for platform
// share competition: explicit-Euler integration of share vectors on the
// simplex, and the separatrix (unstable interior equilibrium) of the
// two-platform network-effects model.
package replicator

import (
	"errors"
	"fmt"
)

// Fitness maps a share vector to per-type fitness values. Implementations
// must return a slice of the same length as the input.
type Fitness func(shares []float64) []float64

// ErrNoInteriorRoot is returned by Separatrix when the fitness difference
// does not change sign on (0,1), i.e. one platform dominates from every
// interior starting share.
var ErrNoInteriorRoot = errors.New("replicator: no interior equilibrium")

// Step performs one explicit-Euler update of the replicator equation
//
//	dx_i/dt = x_i * (f_i(x) - f̄(x)),  f̄ = Σ x_j f_j
//
// and renormalizes the result to the simplex. Types whose share would
// overshoot below zero are clamped at zero before renormalizing, which keeps
// large dt values from producing negative shares.
func Step(shares []float64, fit Fitness, dt float64) ([]float64, error) {
	if len(shares) == 0 {
		return nil, errors.New("replicator: empty share vector")
	}

	f := fit(shares)
	if len(f) != len(shares) {
		return nil, fmt.Errorf("replicator: fitness length %d does not match %d types",
			len(f), len(shares))
	}

	var fbar float64
	for i, x := range shares {
		fbar += x * f[i]
	}

	next := make([]float64, len(shares))
	var sum float64
	for i, x := range shares {
		v := x + dt*x*(f[i]-fbar)
		if v < 0 {
			v = 0
		}
		next[i] = v
		sum += v
	}
	if sum == 0 {
		// Everything clamped out: keep the previous state rather than
		// leave the simplex.
		copy(next, shares)
		return next, nil
	}
	for i := range next {
		next[i] /= sum
	}
	return next, nil
}

// Trajectory integrates the replicator equation from x0 for the given number
// of steps and returns every visited state, x0 included. The input state is
// not modified.
func Trajectory(x0 []float64, fit Fitness, dt float64, steps int) ([][]float64, error) {
	x := make([]float64, len(x0))
	copy(x, x0)

	out := make([][]float64, 0, steps+1)
	out = append(out, x)
	for i := 0; i < steps; i++ {
		next, err := Step(x, fit, dt)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
		x = next
	}
	return out, nil
}
