package collect

import (
	"context"
	"fmt"
	"net/url"
)

type npmRangeResponse struct {
	Downloads []struct {
		Downloads int64  `json:"downloads"`
		Day       string `json:"day"`
	} `json:"downloads"`
}

// NPMDownloads returns the total downloads of a package for one calendar
// year from the npm range API. The endpoint needs no authentication.
func (c *Client) NPMDownloads(ctx context.Context, pkg string, year int) (int64, error) {
	u := fmt.Sprintf("%s/downloads/range/%d-01-01:%d-12-31/%s",
		c.NPMBase, year, year, url.PathEscape(pkg))

	var resp npmRangeResponse
	if err := c.getJSON(ctx, u, false, &resp); err != nil {
		return 0, err
	}

	var total int64
	for _, d := range resp.Downloads {
		total += d.Downloads
	}
	return total, nil
}

// AnnualShares fetches yearly downloads for every package and returns each
// package's share of the yearly total, keyed by package then year.
func (c *Client) AnnualShares(ctx context.Context, pkgs []string, years []int) (map[string]map[int]float64, error) {
	totals := make(map[int]int64, len(years))
	counts := make(map[string]map[int]int64, len(pkgs))

	for _, pkg := range pkgs {
		counts[pkg] = make(map[int]int64, len(years))
		for _, yr := range years {
			n, err := c.NPMDownloads(ctx, pkg, yr)
			if err != nil {
				return nil, fmt.Errorf("collect: npm %s %d: %w", pkg, yr, err)
			}
			counts[pkg][yr] = n
			totals[yr] += n
		}
	}

	shares := make(map[string]map[int]float64, len(pkgs))
	for pkg, byYear := range counts {
		shares[pkg] = make(map[int]float64, len(byYear))
		for yr, n := range byYear {
			if totals[yr] > 0 {
				shares[pkg][yr] = float64(n) / float64(totals[yr])
			}
		}
	}
	return shares, nil
}
