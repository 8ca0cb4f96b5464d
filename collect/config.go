// Package collect measures ecosystem entropy for competing platforms from
// public data sources: GitHub repository topics (supply side), npm download
// counts (adoption proxy), and Stack Exchange co-tags (demand side). Each
// collector produces frequency vectors for the entropy estimators.
package collect

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the collector configuration, read from the environment.
type Config struct {
	GitHubToken string        `env:"GITHUB_TOKEN"`
	Timeout     time.Duration `env:"COLLECT_TIMEOUT" envDefault:"30s"`
	PageDelay   time.Duration `env:"COLLECT_PAGE_DELAY" envDefault:"800ms"`
	MaxPages    int           `env:"COLLECT_MAX_PAGES" envDefault:"5"`
	MaxWait     time.Duration `env:"COLLECT_MAX_RATE_WAIT" envDefault:"2m"`
}

// LoadConfig parses the collector configuration from environment variables.
func LoadConfig() (Config, error) {
	return env.ParseAs[Config]()
}
