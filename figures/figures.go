// Package figures produces the datasets behind the paper's charts. Every
// generator is deterministic given its seed and returns a JSON-serializable
// struct; WriteAll renders the default figure set to a directory, one file
// per figure.
package figures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evostat/entrokit/kmr"
	"github.com/evostat/entrokit/replicator"
)

// WriteAll generates the default figure set into dir, creating it if needed.
// Returns the list of files written.
func WriteAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	model := replicator.TwoType{DeltaH: 0.1, Nu: 0.8, Gamma: 1.5}
	chain := kmr.Chain{N: 50, H1: 5.85, H2: 5.47, Nu: 1.0, Gamma: 1.2, Epsilon: 0.05}

	phase, err := PhasePortrait(model, []float64{0.05, 0.2, 0.35, 0.5, 0.65, 0.8, 0.95}, 0.05, 400)
	if err != nil {
		return nil, err
	}
	kmrData, err := KMRHistograms(chain, []float64{0.02, 0.05, 0.1, 0.2}, 500000, 42)
	if err != nil {
		return nil, err
	}
	study, err := EventStudy(42, 123)
	if err != nil {
		return nil, err
	}

	datasets := map[string]any{
		"phase_portrait.json": phase,
		"separatrix.json":     SeparatrixSweep(0.8, 1.5, -0.75, 0.75, 151),
		"kmr.json":            kmrData,
		"estimator_bias.json": EstimatorBias(200, 1.2, []int{20, 50, 100, 200, 500, 1000, 2000}, 200, 42),
		"event_study.json":    study,
	}

	files := make([]string, 0, len(datasets))
	for name, data := range datasets {
		path := filepath.Join(dir, name)
		if err := writeJSON(path, data); err != nil {
			return nil, fmt.Errorf("figures: %s: %w", name, err)
		}
		files = append(files, path)
	}
	return files, nil
}

func writeJSON(path string, data any) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
