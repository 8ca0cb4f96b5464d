package collect

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/evostat/entrokit/entropy"
)

// Platform describes one ecosystem to measure: a GitHub search query and the
// query's own topics, which are excluded from the entropy pool so a platform
// is not credited for its own label.
type Platform struct {
	Label   string
	Query   string
	Exclude []string
}

// Snapshot summarizes one platform-year: both entropy estimates over the
// pooled topic distribution with an analytic confidence interval, sample
// sizes, and the dominant topics.
type Snapshot struct {
	HCS      float64          `json:"h_cs"`
	HPlugin  float64          `json:"h_plugin"`
	Interval entropy.Interval `json:"interval"`
	NRepos   int              `json:"n_repos"`
	NTopics  int              `json:"n_topics"`
	Top      []string         `json:"top10"`
}

// Yearly measures every platform over every year, fanning out one goroutine
// per platform. Results are keyed by platform label, then year. The first
// collector error cancels the remaining fetches.
func (c *Client) Yearly(ctx context.Context, platforms []Platform, years []int) (map[string]map[int]Snapshot, error) {
	out := make(map[string]map[int]Snapshot, len(platforms))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, p := range platforms {
		p := p
		g.Go(func() error {
			byYear := make(map[int]Snapshot, len(years))
			for _, yr := range years {
				counts, repos, err := c.GitHubTopics(ctx, p.Query, yr, 0, p.Exclude...)
				if err != nil {
					return err
				}
				byYear[yr] = snapshot(counts, repos)
			}
			mu.Lock()
			out[p.Label] = byYear
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func snapshot(counts entropy.Counts, repos int) Snapshot {
	hcs := entropy.ChaoShen(counts)
	return Snapshot{
		HCS:      hcs,
		HPlugin:  entropy.Plugin(counts),
		Interval: entropy.AnalyticInterval(hcs, repos),
		NRepos:   repos,
		NTopics:  counts.Support(),
		Top:      counts.Top(10),
	}
}
