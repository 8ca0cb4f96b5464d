package regress

import "math"

// StudentPValue returns the two-tailed p value of a t statistic with the
// given degrees of freedom, via the identity
//
//	p = I_x(ν/2, 1/2),  x = ν / (ν + t²)
//
// where I is the regularized incomplete beta function.
func StudentPValue(t float64, dof int) float64 {
	if dof <= 0 {
		return 1
	}
	if math.IsInf(t, 0) {
		return 0
	}
	nu := float64(dof)
	x := nu / (nu + t*t)
	p := regIncBeta(nu/2, 0.5, x)
	return math.Min(1, math.Max(0, p))
}

// regIncBeta is the regularized incomplete beta function I_x(a,b), computed
// with the continued-fraction expansion (Numerical Recipes 6.4). The
// expansion converges fastest for x < (a+1)/(a+b+2); beyond that the
// complement identity I_x(a,b) = 1 - I_{1-x}(b,a) is used.
func regIncBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	front := math.Exp(
		lgamma(a+b) - lgamma(a) - lgamma(b) +
			a*math.Log(x) + b*math.Log(1-x),
	)

	if x < (a+1)/(a+b+2) {
		return front * betaCF(a, b, x) / a
	}
	return 1 - front*betaCF(b, a, 1-x)/b
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// betaCF evaluates the continued fraction for the incomplete beta function
// by the modified Lentz method.
func betaCF(a, b, x float64) float64 {
	const (
		maxIter = 200
		epsilon = 1e-12
		tiny    = 1e-30
	)

	qab, qap, qam := a+b, a+1, a-1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIter; m++ {
		m2 := float64(2 * m)
		fm := float64(m)

		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c

		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		delta := d * c
		h *= delta

		if math.Abs(delta-1) < epsilon {
			break
		}
	}
	return h
}
