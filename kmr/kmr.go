// Package kmr simulates a Kandori-Mailath-Rob style stochastic adoption
// process: a finite population of agents repeatedly revises its platform
// choice by myopic best response, perturbed by a small mutation rate. The
// long-run visit distribution over adoption counts identifies the
// stochastically stable platform.
package kmr

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Chain is a birth-death Markov chain over k = 0..N, the number of agents on
// platform 1. A revising agent on share x = k/N weighs the payoff difference
//
//	ΔU(x) = (H1 - H2) + Nu * (x^Gamma - (1-x)^Gamma)
//
// choosing platform 1 when ΔU > 0, platform 2 when ΔU < 0, and keeping its
// current platform on a tie. With probability Epsilon the agent ignores
// payoffs and randomizes uniformly instead.
type Chain struct {
	N       int
	H1, H2  float64
	Nu      float64
	Gamma   float64
	Epsilon float64
}

// Validate checks the chain parameters.
func (c Chain) Validate() error {
	if c.N < 1 {
		return fmt.Errorf("kmr: population size must be positive, got %d", c.N)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("kmr: mutation rate must be in [0,1], got %g", c.Epsilon)
	}
	return nil
}

// payoffDiff is ΔU at adoption share x.
func (c Chain) payoffDiff(x float64) float64 {
	return (c.H1 - c.H2) + c.Nu*(math.Pow(x, c.Gamma)-math.Pow(1-x, c.Gamma))
}

// TransitionProbs returns the one-step probabilities of moving from k to k+1
// (up) and to k-1 (down); the chain holds with the remaining probability.
// An upward move requires selecting one of the N-k platform-2 agents and
// having it switch; downward is symmetric.
func (c Chain) TransitionProbs(k int) (up, down float64) {
	x := float64(k) / float64(c.N)
	du := c.payoffDiff(x)

	var brUp, brDown float64
	if du > 0 {
		brUp = 1 // platform-2 agent switches to 1
	} else if du < 0 {
		brDown = 1 // platform-1 agent switches to 2
	}
	// Ties keep the current platform, contributing to neither move.

	pSwitchTo1 := c.Epsilon/2 + (1-c.Epsilon)*brUp
	pSwitchTo2 := c.Epsilon/2 + (1-c.Epsilon)*brDown

	up = (float64(c.N-k) / float64(c.N)) * pSwitchTo1
	down = (float64(k) / float64(c.N)) * pSwitchTo2
	return up, down
}

// Stationary simulates the chain for the given number of revision steps and
// returns the normalized visit histogram over k = 0..N. The first 10% of
// steps are discarded as burn-in and the walk starts from the even split
// k = N/2. The trajectory is fully determined by seed.
func (c Chain) Stationary(steps int, seed int64) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, fmt.Errorf("kmr: steps must be positive, got %d", steps)
	}

	rng := rand.New(rand.NewSource(seed))
	hist := make([]float64, c.N+1)
	burnIn := steps / 10
	k := c.N / 2

	for i := 0; i < steps; i++ {
		up, down := c.TransitionProbs(k)
		u := rng.Float64()
		switch {
		case u < up:
			k++
		case u < up+down:
			k--
		}
		if i >= burnIn {
			hist[k]++
		}
	}

	counted := float64(steps - burnIn)
	for i := range hist {
		hist[i] /= counted
	}
	return hist, nil
}

// ExactStationary solves the stationary distribution in closed form using
// the detailed-balance relation of birth-death chains,
//
//	π_{k+1} / π_k = up(k) / down(k+1)
//
// normalized to sum to one. Requires Epsilon > 0: without mutations the
// boundary states are absorbing and no unique stationary distribution
// exists.
func (c Chain) ExactStationary() ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Epsilon == 0 {
		return nil, errors.New("kmr: exact stationary distribution requires a positive mutation rate")
	}

	// Work with log weights: up/down ratios compound across N states and
	// overflow float64 for sharp payoff differences.
	logw := make([]float64, c.N+1)
	for k := 0; k < c.N; k++ {
		up, _ := c.TransitionProbs(k)
		_, down := c.TransitionProbs(k + 1)
		logw[k+1] = logw[k] + math.Log(up) - math.Log(down)
	}

	maxw := logw[0]
	for _, w := range logw[1:] {
		if w > maxw {
			maxw = w
		}
	}
	pi := make([]float64, c.N+1)
	var sum float64
	for k, w := range logw {
		pi[k] = math.Exp(w - maxw)
		sum += pi[k]
	}
	for k := range pi {
		pi[k] /= sum
	}
	return pi, nil
}
