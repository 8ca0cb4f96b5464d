package figures

import "github.com/evostat/entrokit/kmr"

// KMRHistogram pairs the simulated and closed-form stationary distributions
// for one mutation rate.
type KMRHistogram struct {
	Epsilon   float64   `json:"epsilon"`
	Empirical []float64 `json:"empirical"`
	Exact     []float64 `json:"exact"`
}

// KMRData is a family of stationary distributions across mutation rates for
// a fixed population and payoff structure.
type KMRData struct {
	N          int            `json:"n"`
	H1         float64        `json:"h1"`
	H2         float64        `json:"h2"`
	Nu         float64        `json:"nu"`
	Gamma      float64        `json:"gamma"`
	Steps      int            `json:"steps"`
	Histograms []KMRHistogram `json:"histograms"`
}

// KMRHistograms simulates and solves the chain's stationary distribution for
// each mutation rate. Runs for different rates are seeded independently off
// the base seed so adding a rate does not perturb the others.
func KMRHistograms(base kmr.Chain, epsilons []float64, steps int, seed int64) (KMRData, error) {
	data := KMRData{
		N:     base.N,
		H1:    base.H1,
		H2:    base.H2,
		Nu:    base.Nu,
		Gamma: base.Gamma,
		Steps: steps,
	}

	for i, eps := range epsilons {
		chain := base
		chain.Epsilon = eps

		emp, err := chain.Stationary(steps, seed+int64(i))
		if err != nil {
			return KMRData{}, err
		}
		exact, err := chain.ExactStationary()
		if err != nil {
			return KMRData{}, err
		}
		data.Histograms = append(data.Histograms, KMRHistogram{
			Epsilon:   eps,
			Empirical: emp,
			Exact:     exact,
		})
	}
	return data, nil
}
