package entropy

import "math"

// Plugin calculates the naive plug-in (maximum likelihood) Shannon entropy
// of a frequency vector, in nats.
//
// Formula: H(X) = -Σ p(x) * ln(p(x))  with p(x) = count(x)/n
//
// The plug-in estimator is downward biased for small samples: labels that
// were never observed contribute nothing, so undersampled distributions look
// more concentrated than they are. Use ChaoShen when n is small relative to
// the support.
func Plugin(c Counts) float64 {
	n := float64(c.Total())
	if n == 0 {
		return 0
	}

	var h float64
	for _, count := range c {
		if count > 0 {
			p := float64(count) / n
			h -= p * math.Log(p)
		}
	}

	return h
}

// Normalized calculates the plug-in entropy divided by its maximum possible
// value ln(k), where k is the observed support size.
//
// Returns:
//   - 0: no entropy (all observations share one label)
//   - 1: maximum entropy (perfectly uniform over the observed labels)
func Normalized(c Counts) float64 {
	k := c.Support()
	if k < 2 {
		return 0
	}
	return Plugin(c) / math.Log(float64(k))
}
