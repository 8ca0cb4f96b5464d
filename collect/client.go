package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/evostat/entrokit/xcmd"
)

// Default API endpoints, overridable for tests.
const (
	defaultGitHubBase = "https://api.github.com"
	defaultNPMBase    = "https://api.npmjs.org"
	defaultSEBase     = "https://api.stackexchange.com"
)

// Client talks to the public data sources. The zero HTTP client and logger
// are replaced with sane defaults; base URLs are exported so tests can point
// the client at an httptest server.
type Client struct {
	GitHubBase string
	NPMBase    string
	SEBase     string

	cfg  Config
	http *http.Client
	log  *slog.Logger
}

// NewClient builds a collector client from cfg. hc and log may be nil.
func NewClient(cfg Config, hc *http.Client, log *slog.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = slog.Default()
	}
	if cfg.MaxPages < 1 {
		cfg.MaxPages = 1
	}
	return &Client{
		GitHubBase: defaultGitHubBase,
		NPMBase:    defaultNPMBase,
		SEBase:     defaultSEBase,
		cfg:        cfg,
		http:       hc,
		log:        log,
	}
}

// getJSON fetches url and decodes the response body into out. GitHub-bound
// requests carry the REST API Accept header and the token; the npm and Stack
// Exchange endpoints get neither. Rate-limited responses (403/429) are
// retried after the window advertised in X-RateLimit-Reset, capped at
// cfg.MaxWait and aborted by ctx.
func (c *Client) getJSON(ctx context.Context, url string, github bool, out any) error {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		if github {
			req.Header.Set("Accept", "application/vnd.github.v3+json")
			if c.cfg.GitHubToken != "" {
				req.Header.Set("Authorization", "Bearer "+c.cfg.GitHubToken)
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}

		switch resp.StatusCode {
		case http.StatusOK:
			err = json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusForbidden, http.StatusTooManyRequests:
			wait := c.rateWait(resp.Header.Get("X-RateLimit-Reset"))
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			c.log.Warn("rate limited", "url", url, "wait", wait)
			if err := xcmd.Sleep(ctx, wait); err != nil {
				return err
			}

		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
			resp.Body.Close()
			return fmt.Errorf("collect: GET %s: status %d: %s", url, resp.StatusCode, body)
		}
	}
}

// rateWait converts a unix-epoch reset header into a bounded sleep.
func (c *Client) rateWait(reset string) time.Duration {
	wait := 5 * time.Second
	if epoch, err := strconv.ParseInt(reset, 10, 64); err == nil {
		if d := time.Until(time.Unix(epoch, 0)); d > wait {
			wait = d
		}
	}
	if c.cfg.MaxWait > 0 && wait > c.cfg.MaxWait {
		wait = c.cfg.MaxWait
	}
	return wait
}
