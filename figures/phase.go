package figures

import (
	"errors"

	"github.com/evostat/entrokit/replicator"
)

// ShareSeries is one integrated share trajectory.
type ShareSeries struct {
	X0     float64   `json:"x0"`
	Shares []float64 `json:"shares"`
}

// PhasePortraitData is a family of two-platform share trajectories together
// with the model's separatrix, when one exists.
type PhasePortraitData struct {
	DeltaH     float64       `json:"delta_h"`
	Nu         float64       `json:"nu"`
	Gamma      float64       `json:"gamma"`
	Dt         float64       `json:"dt"`
	Separatrix *float64      `json:"separatrix,omitempty"`
	Series     []ShareSeries `json:"series"`
}

// PhasePortrait integrates the two-platform share dynamics from each initial
// share in inits for the given number of steps.
func PhasePortrait(m replicator.TwoType, inits []float64, dt float64, steps int) (PhasePortraitData, error) {
	data := PhasePortraitData{
		DeltaH: m.DeltaH,
		Nu:     m.Nu,
		Gamma:  m.Gamma,
		Dt:     dt,
		Series: make([]ShareSeries, 0, len(inits)),
	}

	if s, err := m.Separatrix(); err == nil {
		data.Separatrix = &s
	} else if !errors.Is(err, replicator.ErrNoInteriorRoot) {
		return PhasePortraitData{}, err
	}

	for _, x0 := range inits {
		data.Series = append(data.Series, ShareSeries{
			X0:     x0,
			Shares: m.SolveShare(x0, dt, steps),
		})
	}
	return data, nil
}
