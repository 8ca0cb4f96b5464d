package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evostat/entrokit/collect"
)

var (
	collectOut   string
	collectYears []int
)

// Platform panels from the accompanying paper: each pairs a GitHub search
// with the query's own topics so entropy is measured over what gets built on
// a platform, not the platform label itself.
var platformSets = map[string][]collect.Platform{
	"mobile": {
		{Label: "android", Query: "topic:android stars:>=3", Exclude: []string{"android"}},
		{Label: "ios", Query: "topic:ios stars:>=3", Exclude: []string{"ios"}},
	},
	"blockchain": {
		{Label: "ethereum_app", Query: "topic:ethereum topic:solidity stars:>=2", Exclude: []string{"ethereum", "solidity"}},
		{Label: "ethereum_all", Query: "topic:ethereum stars:>=5", Exclude: []string{"ethereum"}},
		{Label: "bitcoin_app", Query: "topic:bitcoin topic:lightning-network stars:>=2", Exclude: []string{"bitcoin", "lightning-network"}},
		{Label: "bitcoin_all", Query: "topic:bitcoin stars:>=5", Exclude: []string{"bitcoin"}},
	},
	"frontend": {
		{Label: "react", Query: "topic:react stars:>=5", Exclude: []string{"react"}},
		{Label: "angular", Query: "topic:angular stars:>=5", Exclude: []string{"angular"}},
	},
}

var collectCmd = &cobra.Command{
	Use:   "collect [panel]",
	Short: "Measure yearly ecosystem entropy from GitHub topics",
	Long: `Collects repository topic distributions for a platform panel (mobile,
blockchain, or frontend) across the given years and writes per-year entropy
snapshots as JSON. Requires GITHUB_TOKEN for a usable rate limit.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"mobile", "blockchain", "frontend"},
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, ok := platformSets[args[0]]
		if !ok {
			return fmt.Errorf("unknown panel %q (want mobile, blockchain, or frontend)", args[0])
		}

		cfg, err := collect.LoadConfig()
		if err != nil {
			return err
		}
		client := collect.NewClient(cfg, nil, logger)

		logger.Info("collecting", "panel", args[0], "years", intsToString(collectYears))
		out, err := client.Yearly(cmd.Context(), panel, collectYears)
		if err != nil {
			return err
		}

		buf, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		if collectOut == "-" {
			fmt.Println(string(buf))
			return nil
		}
		return os.WriteFile(collectOut, buf, 0o644)
	},
}

func init() {
	collectCmd.Flags().StringVarP(&collectOut, "out", "o", "-", "output file, - for stdout")
	collectCmd.Flags().IntSliceVar(&collectYears, "years",
		[]int{2011, 2013, 2015, 2017, 2019, 2021, 2023}, "years to sample")
}

func intsToString(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
