package collect

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/evostat/entrokit/entropy"
	"github.com/evostat/entrokit/xcmd"
)

type searchResponse struct {
	TotalCount int `json:"total_count"`
	Items      []struct {
		FullName string   `json:"full_name"`
		Topics   []string `json:"topics"`
	} `json:"items"`
}

const perPage = 100

// GitHubTopics searches repositories matching query created in the given
// window (the whole year when month is zero, a single month otherwise),
// pools their topic labels minus the excluded ones, and returns the count
// vector along with the number of repositories pooled. Pagination stops at
// cfg.MaxPages or the first short page, pacing requests by cfg.PageDelay.
func (c *Client) GitHubTopics(ctx context.Context, query string, year, month int, exclude ...string) (entropy.Counts, int, error) {
	q := fmt.Sprintf("%s created:%s", query, createdRange(year, month))

	excluded := make(map[string]struct{}, len(exclude))
	for _, t := range exclude {
		excluded[t] = struct{}{}
	}

	counts := make(entropy.Counts)
	var repos int
	for page := 1; page <= c.cfg.MaxPages; page++ {
		u := fmt.Sprintf(
			"%s/search/repositories?q=%s&per_page=%d&page=%d&sort=stars&order=desc",
			c.GitHubBase, url.QueryEscape(q), perPage, page,
		)

		var resp searchResponse
		if err := c.getJSON(ctx, u, true, &resp); err != nil {
			return nil, 0, err
		}

		repos += len(resp.Items)
		for _, item := range resp.Items {
			for _, topic := range item.Topics {
				if _, skip := excluded[topic]; !skip {
					counts[topic]++
				}
			}
		}

		if len(resp.Items) < perPage {
			break
		}
		if page < c.cfg.MaxPages {
			if err := xcmd.Sleep(ctx, c.cfg.PageDelay); err != nil {
				return nil, 0, err
			}
		}
	}

	c.log.Debug("github topics collected",
		"query", query, "year", year, "month", month,
		"repos", repos, "topics", counts.Support())
	return counts, repos, nil
}

// createdRange formats a GitHub created: qualifier for a year or month.
func createdRange(year, month int) string {
	if month == 0 {
		return fmt.Sprintf("%d-01-01..%d-12-31", year, year)
	}
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return fmt.Sprintf("%d-%02d-01..%d-%02d-%02d", year, month, year, month, lastDay)
}
