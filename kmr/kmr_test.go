package kmr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("accepts sane parameters", func(t *testing.T) {
		c := Chain{N: 50, H1: 5.8, H2: 5.5, Nu: 1.0, Gamma: 1.2, Epsilon: 0.05}
		assert.NoError(t, c.Validate())
	})

	t.Run("rejects empty population", func(t *testing.T) {
		assert.Error(t, Chain{N: 0, Epsilon: 0.1}.Validate())
	})

	t.Run("rejects mutation rate outside unit interval", func(t *testing.T) {
		assert.Error(t, Chain{N: 10, Epsilon: -0.1}.Validate())
		assert.Error(t, Chain{N: 10, Epsilon: 1.5}.Validate())
	})
}

func TestTransitionProbs(t *testing.T) {
	t.Run("boundaries move only inward", func(t *testing.T) {
		c := Chain{N: 10, H1: 1, H2: 0, Nu: 0.5, Gamma: 1, Epsilon: 0.1}
		up, down := c.TransitionProbs(0)
		assert.Greater(t, up, 0.0)
		assert.Equal(t, 0.0, down)

		up, down = c.TransitionProbs(c.N)
		assert.Equal(t, 0.0, up)
		assert.Greater(t, down, 0.0)
	})

	t.Run("pure mutation dynamics are symmetric", func(t *testing.T) {
		c := Chain{N: 10, Epsilon: 1.0}
		up, down := c.TransitionProbs(5)
		assert.InDelta(t, up, down, 1e-12)
		assert.InDelta(t, 0.25, up, 1e-12) // (5/10) * (1/2)
	})

	t.Run("best response follows payoff sign", func(t *testing.T) {
		c := Chain{N: 10, H1: 2, H2: 0, Nu: 0, Gamma: 1, Epsilon: 0}
		up, down := c.TransitionProbs(5)
		assert.InDelta(t, 0.5, up, 1e-12) // every revising platform-2 agent switches
		assert.Equal(t, 0.0, down)
	})

	t.Run("tie keeps current platform", func(t *testing.T) {
		// ΔU ≡ 0: no best-response moves, only mutations.
		c := Chain{N: 10, Epsilon: 0}
		up, down := c.TransitionProbs(5)
		assert.Equal(t, 0.0, up)
		assert.Equal(t, 0.0, down)
	})

	t.Run("probabilities stay in range", func(t *testing.T) {
		c := Chain{N: 25, H1: 6, H2: 5, Nu: 2, Gamma: 1.5, Epsilon: 0.2}
		for k := 0; k <= c.N; k++ {
			up, down := c.TransitionProbs(k)
			assert.GreaterOrEqual(t, up, 0.0)
			assert.GreaterOrEqual(t, down, 0.0)
			assert.LessOrEqual(t, up+down, 1.0+1e-12)
		}
	})
}

func TestExactStationary(t *testing.T) {
	t.Run("sums to one", func(t *testing.T) {
		c := Chain{N: 30, H1: 5.8, H2: 5.6, Nu: 1.0, Gamma: 1.2, Epsilon: 0.05}
		pi, err := c.ExactStationary()
		require.NoError(t, err)
		require.Len(t, pi, c.N+1)
		var sum float64
		for _, p := range pi {
			assert.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("symmetric payoffs give symmetric distribution", func(t *testing.T) {
		c := Chain{N: 20, H1: 5, H2: 5, Nu: 1.0, Gamma: 1, Epsilon: 0.1}
		pi, err := c.ExactStationary()
		require.NoError(t, err)
		for k := 0; k <= c.N; k++ {
			assert.InDelta(t, pi[c.N-k], pi[k], 1e-9, "k=%d", k)
		}
	})

	t.Run("entropy advantage concentrates mass near fixation", func(t *testing.T) {
		c := Chain{N: 40, H1: 6.0, H2: 5.5, Nu: 0.4, Gamma: 1, Epsilon: 0.02}
		pi, err := c.ExactStationary()
		require.NoError(t, err)
		var upper float64
		for k := 3 * c.N / 4; k <= c.N; k++ {
			upper += pi[k]
		}
		assert.Greater(t, upper, 0.95)
	})

	t.Run("smaller epsilon sharpens selection", func(t *testing.T) {
		loose := Chain{N: 30, H1: 5.9, H2: 5.7, Nu: 0.5, Gamma: 1, Epsilon: 0.2}
		tight := loose
		tight.Epsilon = 0.02
		pl, err := loose.ExactStationary()
		require.NoError(t, err)
		pt, err := tight.ExactStationary()
		require.NoError(t, err)
		assert.Greater(t, pt[tight.N], pl[loose.N])
	})

	t.Run("requires positive mutation rate", func(t *testing.T) {
		c := Chain{N: 10, H1: 1, H2: 0, Nu: 0, Gamma: 1, Epsilon: 0}
		_, err := c.ExactStationary()
		assert.Error(t, err)
	})
}

func TestStationary(t *testing.T) {
	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		c := Chain{N: 12, H1: 5.8, H2: 5.6, Nu: 0.8, Gamma: 1, Epsilon: 0.1}
		h1, err := c.Stationary(50000, 7)
		require.NoError(t, err)
		h2, err := c.Stationary(50000, 7)
		require.NoError(t, err)
		assert.Equal(t, h1, h2)
	})

	t.Run("matches the exact distribution", func(t *testing.T) {
		c := Chain{N: 8, H1: 5.0, H2: 4.9, Nu: 0.5, Gamma: 1, Epsilon: 0.2}
		emp, err := c.Stationary(400000, 42)
		require.NoError(t, err)
		exact, err := c.ExactStationary()
		require.NoError(t, err)

		var tv float64
		for k := range exact {
			tv += math.Abs(emp[k] - exact[k])
		}
		assert.Less(t, tv/2, 0.05, "total variation distance too large")
	})

	t.Run("histogram is a distribution", func(t *testing.T) {
		c := Chain{N: 15, H1: 5.8, H2: 5.5, Nu: 1.0, Gamma: 1.5, Epsilon: 0.05}
		hist, err := c.Stationary(100000, 1)
		require.NoError(t, err)
		var sum float64
		for _, p := range hist {
			assert.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		c := Chain{N: 10, Epsilon: 0.1}
		_, err := c.Stationary(0, 1)
		assert.Error(t, err)
		_, err = Chain{N: 0, Epsilon: 0.1}.Stationary(100, 1)
		assert.Error(t, err)
	})
}

func BenchmarkStationary(b *testing.B) {
	c := Chain{N: 50, H1: 5.8, H2: 5.6, Nu: 1.0, Gamma: 1.2, Epsilon: 0.05}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := c.Stationary(10000, 42); err != nil {
			b.Fatal(err)
		}
	}
}
