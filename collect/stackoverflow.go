package collect

import (
	"context"
	"fmt"
	"net/url"

	"github.com/evostat/entrokit/entropy"
)

type relatedTagsResponse struct {
	Items []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	} `json:"items"`
}

// RelatedTags returns the question counts of tags co-occurring with tag on
// Stack Overflow. This is the demand-side analogue of the GitHub topic
// measure: it captures what problems developers are trying to solve rather
// than what they are building.
func (c *Client) RelatedTags(ctx context.Context, tag string) (entropy.Counts, error) {
	u := fmt.Sprintf("%s/2.3/tags/%s/related?site=stackoverflow&pagesize=100",
		c.SEBase, url.PathEscape(tag))

	var resp relatedTagsResponse
	if err := c.getJSON(ctx, u, false, &resp); err != nil {
		return nil, err
	}

	counts := make(entropy.Counts, len(resp.Items))
	for _, item := range resp.Items {
		if item.Name == tag {
			continue
		}
		counts[item.Name] = item.Count
	}
	return counts, nil
}
