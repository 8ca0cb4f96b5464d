package replicator

import "math"

// TwoType is the two-platform competition model. Platform 1 carries an
// intrinsic fitness advantage DeltaH (its entropy edge, in nats) and both
// platforms enjoy network effects of strength Nu with curvature Gamma:
//
//	ΔF(x) = DeltaH + Nu * (x^Gamma - (1-x)^Gamma)
//
// where x is platform 1's adoption share. With Nu > 0 the network term
// rewards the larger platform, so ΔF crosses zero at most once on (0,1) and
// that crossing is the unstable equilibrium separating the two basins.
type TwoType struct {
	DeltaH float64
	Nu     float64
	Gamma  float64
}

// DeltaF returns the fitness difference between the two platforms at share x.
func (m TwoType) DeltaF(x float64) float64 {
	return m.DeltaH + m.Nu*(math.Pow(x, m.Gamma)-math.Pow(1-x, m.Gamma))
}

// Fitness returns the two-type fitness vector [f1, f2] with platform 2's
// intrinsic fitness normalized to zero, so f1-f2 = ΔF(x).
func (m TwoType) Fitness() Fitness {
	return func(shares []float64) []float64 {
		x := shares[0]
		return []float64{
			m.DeltaH + m.Nu*math.Pow(x, m.Gamma),
			m.Nu * math.Pow(1-x, m.Gamma),
		}
	}
}

const (
	sepTolerance = 1e-10
	sepNudge     = 1e-9
	sepMaxIter   = 200
)

// Separatrix locates the interior root of ΔF on (0,1) by bisection. The
// bracket endpoints are nudged just inside the interval so boundary fixed
// points never masquerade as interior equilibria. Returns ErrNoInteriorRoot
// when ΔF does not change sign across the bracket.
func (m TwoType) Separatrix() (float64, error) {
	lo, hi := sepNudge, 1-sepNudge
	flo, fhi := m.DeltaF(lo), m.DeltaF(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, ErrNoInteriorRoot
	}

	for i := 0; i < sepMaxIter && hi-lo > sepTolerance; i++ {
		mid := 0.5 * (lo + hi)
		fmid := m.DeltaF(mid)
		if fmid == 0 {
			return mid, nil
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}

// SolveShare integrates the scalar share equation
//
//	dx/dt = x * (1-x) * ΔF(x)
//
// from x0 with explicit Euler and returns every visited share, x0 included.
// Shares are clamped to [0,1] after each step.
func (m TwoType) SolveShare(x0, dt float64, steps int) []float64 {
	out := make([]float64, 0, steps+1)
	x := clamp01(x0)
	out = append(out, x)
	for i := 0; i < steps; i++ {
		x = clamp01(x + dt*x*(1-x)*m.DeltaF(x))
		out = append(out, x)
	}
	return out
}

// Basin reports which monomorphic attractor the share x0 flows to: 1 when
// platform 1 fixates (x→1), 0 when it dies out (x→0). When an interior
// equilibrium exists it is the basin boundary; otherwise the flow direction
// is read off a forward integration. The boundary itself is an unstable
// equilibrium belonging to neither basin; Basin assigns it to 1 so callers
// get a total classification of [0,1].
func (m TwoType) Basin(x0 float64) int {
	if s, err := m.Separatrix(); err == nil {
		if x0 >= s {
			return 1
		}
		return 0
	}
	traj := m.SolveShare(x0, 0.01, 5000)
	if traj[len(traj)-1] >= 0.5 {
		return 1
	}
	return 0
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
