package entropy

import "math"

// underflowGuard skips terms whose inclusion probability is numerically zero.
const underflowGuard = 1e-15

// ChaoShen calculates the bias-corrected Shannon entropy of a frequency
// vector, in nats, using the Horvitz-Thompson weighting of Chao & Shen
// (2003). Each label's contribution is inflated by the probability that the
// label appears at least once in a sample of size n:
//
//	H_CS(X) = -Σ p(x) * ln(p(x)) / (1 - (1 - p(x))^n)
//
// Rare labels, which the plug-in estimator undercounts, receive weights
// well above one; labels with p near 1 are left almost unchanged. For a
// fully sampled distribution ChaoShen converges to Plugin from above.
func ChaoShen(c Counts) float64 {
	n := c.Total()
	if n == 0 {
		return 0
	}

	var h float64
	fn := float64(n)
	for _, count := range c {
		if count <= 0 {
			continue
		}
		p := float64(count) / fn
		d := 1.0 - math.Pow(1.0-p, fn)
		if d < underflowGuard {
			continue
		}
		h -= p * math.Log(p) / d
	}

	return h
}

// ChaoShenCoverage is the coverage-adjusted form of the estimator: raw
// proportions are shrunk by the Good-Turing sample coverage C = 1 - f1/n
// before Horvitz-Thompson weighting, where f1 is the singleton count.
//
//	p~(x) = C * p(x)
//	H(X)  = -Σ p~(x) * ln(p~(x)) / (1 - (1 - p~(x))^n)
//
// This is the estimator as published; ChaoShen keeps the unshrunk form used
// throughout the accompanying analysis so the two can be compared directly.
func ChaoShenCoverage(c Counts) float64 {
	n := c.Total()
	if n == 0 {
		return 0
	}

	fn := float64(n)
	coverage := 1.0 - float64(c.Singletons())/fn
	if coverage <= 0 {
		// Every label a singleton: coverage is undefined, fall back to
		// the unshrunk weighting.
		return ChaoShen(c)
	}

	var h float64
	for _, count := range c {
		if count <= 0 {
			continue
		}
		p := coverage * float64(count) / fn
		d := 1.0 - math.Pow(1.0-p, fn)
		if d < underflowGuard {
			continue
		}
		h -= p * math.Log(p) / d
	}

	return h
}
