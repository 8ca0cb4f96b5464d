package figures

import (
	"errors"

	"github.com/evostat/entrokit/replicator"
)

// SweepPoint is the separatrix share at one entropy-gap value.
type SweepPoint struct {
	DeltaH float64 `json:"delta_h"`
	Share  float64 `json:"share"`
}

// SweepData is the basin boundary as a function of the entropy gap: the
// share of the market platform 1 must already hold to win, for each ΔH.
type SweepData struct {
	Nu     float64      `json:"nu"`
	Gamma  float64      `json:"gamma"`
	Points []SweepPoint `json:"points"`
}

// SeparatrixSweep solves the separatrix at n evenly spaced entropy gaps in
// [dhMin, dhMax]. Gaps where one platform dominates from every interior
// share carry no interior equilibrium and are omitted from the curve.
func SeparatrixSweep(nu, gamma, dhMin, dhMax float64, n int) SweepData {
	data := SweepData{Nu: nu, Gamma: gamma}
	if n < 2 {
		n = 2
	}
	step := (dhMax - dhMin) / float64(n-1)

	for i := 0; i < n; i++ {
		dh := dhMin + float64(i)*step
		m := replicator.TwoType{DeltaH: dh, Nu: nu, Gamma: gamma}
		s, err := m.Separatrix()
		if errors.Is(err, replicator.ErrNoInteriorRoot) {
			continue
		}
		if err != nil {
			continue
		}
		data.Points = append(data.Points, SweepPoint{DeltaH: dh, Share: s})
	}
	return data
}
