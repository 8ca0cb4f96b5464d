package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evostat/entrokit/entropy"
)

func testConfig() Config {
	return Config{
		GitHubToken: "test-token",
		Timeout:     5 * time.Second,
		PageDelay:   time.Millisecond,
		MaxPages:    5,
		MaxWait:     50 * time.Millisecond,
	}
}

type ghRepo struct {
	FullName string   `json:"full_name"`
	Topics   []string `json:"topics"`
}

func ghPage(topics ...[]string) map[string]any {
	items := make([]ghRepo, len(topics))
	for i, t := range topics {
		items[i] = ghRepo{FullName: fmt.Sprintf("owner/repo-%d", i), Topics: t}
	}
	return map[string]any{"total_count": len(items), "items": items}
}

func TestGitHubTopics(t *testing.T) {
	t.Run("pools topics minus exclusions", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
			assert.Contains(t, r.URL.Query().Get("q"), "created:2023-01-01..2023-12-31")
			json.NewEncoder(w).Encode(ghPage(
				[]string{"ethereum", "defi", "nft"},
				[]string{"ethereum", "defi"},
				[]string{"ethereum", "wallet"},
			))
		}))
		defer srv.Close()

		c := NewClient(testConfig(), srv.Client(), nil)
		c.GitHubBase = srv.URL

		counts, repos, err := c.GitHubTopics(context.Background(),
			"topic:ethereum stars:>=5", 2023, 0, "ethereum")
		require.NoError(t, err)
		assert.Equal(t, 3, repos)
		assert.Equal(t, entropy.Counts{"defi": 2, "nft": 1, "wallet": 1}, counts)
	})

	t.Run("paginates until a short page", func(t *testing.T) {
		var pages []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			page := r.URL.Query().Get("page")
			pages = append(pages, page)
			if page == "1" {
				// Full page keeps pagination going.
				full := make([][]string, perPage)
				for i := range full {
					full[i] = []string{"solidity"}
				}
				json.NewEncoder(w).Encode(ghPage(full...))
				return
			}
			json.NewEncoder(w).Encode(ghPage([]string{"dapp"}))
		}))
		defer srv.Close()

		c := NewClient(testConfig(), srv.Client(), nil)
		c.GitHubBase = srv.URL

		counts, repos, err := c.GitHubTopics(context.Background(), "topic:ethereum", 2021, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, pages)
		assert.Equal(t, perPage+1, repos)
		assert.Equal(t, perPage, counts["solidity"])
		assert.Equal(t, 1, counts["dapp"])
	})

	t.Run("monthly window uses the last day", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Query().Get("q"), "created:2023-02-01..2023-02-28")
			json.NewEncoder(w).Encode(ghPage())
		}))
		defer srv.Close()

		c := NewClient(testConfig(), srv.Client(), nil)
		c.GitHubBase = srv.URL

		_, repos, err := c.GitHubTopics(context.Background(), "topic:ethereum", 2023, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, repos)
	})

	t.Run("retries after a rate limit response", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Unix(), 10))
				w.WriteHeader(http.StatusForbidden)
				return
			}
			json.NewEncoder(w).Encode(ghPage([]string{"lightning-network"}))
		}))
		defer srv.Close()

		c := NewClient(testConfig(), srv.Client(), nil)
		c.GitHubBase = srv.URL

		counts, _, err := c.GitHubTopics(context.Background(), "topic:bitcoin", 2020, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 1, counts["lightning-network"])
	})

	t.Run("hard failures surface", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(testConfig(), srv.Client(), nil)
		c.GitHubBase = srv.URL

		_, _, err := c.GitHubTopics(context.Background(), "topic:android", 2019, 0)
		assert.ErrorContains(t, err, "status 500")
	})

	t.Run("cancellation aborts the rate limit wait", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("X-RateLimit-Reset",
				strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		cfg := testConfig()
		cfg.MaxWait = time.Hour // force the context to be the limiter
		c := NewClient(cfg, srv.Client(), nil)
		c.GitHubBase = srv.URL

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, _, err := c.GitHubTopics(ctx, "topic:ios", 2018, 0)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestNPMDownloads(t *testing.T) {
	t.Run("sums daily downloads", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "/downloads/range/2020-01-01:2020-12-31/react")
			// GitHub headers stay off the npm endpoint.
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.NotContains(t, r.Header.Get("Accept"), "github")
			json.NewEncoder(w).Encode(map[string]any{
				"downloads": []map[string]any{
					{"downloads": 100, "day": "2020-01-01"},
					{"downloads": 250, "day": "2020-01-02"},
				},
			})
		}))
		defer srv.Close()

		c := NewClient(testConfig(), srv.Client(), nil)
		c.NPMBase = srv.URL

		total, err := c.NPMDownloads(context.Background(), "react", 2020)
		require.NoError(t, err)
		assert.Equal(t, int64(350), total)
	})

	t.Run("scoped packages are escaped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"downloads": []map[string]any{}})
		}))
		defer srv.Close()

		c := NewClient(testConfig(), srv.Client(), nil)
		c.NPMBase = srv.URL

		total, err := c.NPMDownloads(context.Background(), "@angular/core", 2021)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

func TestAnnualShares(t *testing.T) {
	downloads := map[string]int64{"react": 900, "angularjs": 100}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n int64
		for pkg, v := range downloads {
			if strings.HasSuffix(r.URL.Path, pkg) {
				n = v
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"downloads": []map[string]any{{"downloads": n, "day": "2022-06-01"}},
		})
	}))
	defer srv.Close()

	c := NewClient(testConfig(), srv.Client(), nil)
	c.NPMBase = srv.URL

	shares, err := c.AnnualShares(context.Background(),
		[]string{"react", "angularjs"}, []int{2022})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, shares["react"][2022], 1e-12)
	assert.InDelta(t, 0.1, shares["angularjs"][2022], 1e-12)
}

func TestRelatedTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/2.3/tags/android/related")
		assert.Equal(t, "stackoverflow", r.URL.Query().Get("site"))
		assert.NotContains(t, r.Header.Get("Accept"), "github")
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"name": "android", "count": 99999}, // the query tag itself
				{"name": "kotlin", "count": 500},
				{"name": "java", "count": 1200},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(testConfig(), srv.Client(), nil)
	c.SEBase = srv.URL

	counts, err := c.RelatedTags(context.Background(), "android")
	require.NoError(t, err)
	assert.Equal(t, entropy.Counts{"kotlin": 500, "java": 1200}, counts)
}

func TestYearly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		switch {
		case strings.Contains(q, "topic:android"):
			json.NewEncoder(w).Encode(ghPage(
				[]string{"android", "kotlin", "camera"},
				[]string{"android", "kotlin"},
			))
		default:
			json.NewEncoder(w).Encode(ghPage([]string{"ios", "swift"}))
		}
	}))
	defer srv.Close()

	c := NewClient(testConfig(), srv.Client(), nil)
	c.GitHubBase = srv.URL

	platforms := []Platform{
		{Label: "android", Query: "topic:android stars:>=3", Exclude: []string{"android"}},
		{Label: "ios", Query: "topic:ios stars:>=3", Exclude: []string{"ios"}},
	}
	out, err := c.Yearly(context.Background(), platforms, []int{2023})
	require.NoError(t, err)
	require.Contains(t, out, "android")
	require.Contains(t, out, "ios")

	and := out["android"][2023]
	assert.Equal(t, 2, and.NRepos)
	assert.Equal(t, 2, and.NTopics) // kotlin, camera
	assert.Greater(t, and.HCS, 0.0)
	assert.GreaterOrEqual(t, and.HCS, and.HPlugin)
	assert.Contains(t, and.Top, "kotlin")

	ios := out["ios"][2023]
	assert.Equal(t, 1, ios.NRepos)
	assert.Equal(t, 1, ios.NTopics)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "abc")
	t.Setenv("COLLECT_MAX_PAGES", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.GitHubToken)
	assert.Equal(t, 7, cfg.MaxPages)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 800*time.Millisecond, cfg.PageDelay)
}
