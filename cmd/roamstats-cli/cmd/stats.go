package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"roamstats/internal/application"
	"roamstats/internal/application/commands"
	"roamstats/internal/bootstrap"
	"roamstats/internal/domain"
)

var (
	statsMetrics []string
	statsTags    []string
	statsJSON    bool
)

type statsOutput struct {
	Graph   string           `json:"graph"`
	Metrics map[string]int64 `json:"metrics,omitempty"`
	Tags    map[string]int64 `json:"tags,omitempty"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count graph statistics",
	Long: `Run the stats queries against the graph and print the results.

Without flags every metric and tag is counted. Failed queries count as 0.

Examples:
  roamstats-cli stats
  roamstats-cli stats --metric pages --metric codeBlocks
  roamstats-cli stats --tag TODO --tag DONE --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := selectedKeys(statsMetrics, statsTags)
		if err != nil {
			return err
		}

		client, err := bootstrap.NewClient(GetConfig())
		if err != nil {
			return err
		}
		loader := bootstrap.NewLoader(GetConfig(), client)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		res, err := commands.NewCollectStatsCommand(loader, keys...).Execute(ctx)
		if err != nil {
			return err
		}

		if statsJSON {
			return writeJSON(client.Graph(), res)
		}
		if len(keys) == 0 {
			fmt.Print(application.FormatReport(client.Graph(), res))
			return nil
		}
		for _, k := range keys {
			v, _ := res.Get(k)
			fmt.Printf("%s: %s\n", keyLabel(k), application.FormatInt(v))
		}
		return nil
	},
}

func selectedKeys(metrics, tags []string) ([]domain.Key, error) {
	var keys []domain.Key
	for _, m := range metrics {
		id, err := application.ParseMetric(m)
		if err != nil {
			return nil, err
		}
		keys = append(keys, domain.MetricKey(id))
	}
	for _, t := range tags {
		tag, err := application.ParseTag(t)
		if err != nil {
			return nil, err
		}
		keys = append(keys, domain.TagKey(tag))
	}
	return keys, nil
}

func keyLabel(k domain.Key) string {
	if k.Kind == domain.KeyTag {
		return string(k.Tag)
	}
	return k.Metric.Label()
}

func writeJSON(graph string, res domain.Results) error {
	out := statsOutput{
		Graph:   graph,
		Metrics: make(map[string]int64, len(res.Metrics)),
		Tags:    make(map[string]int64, len(res.Tags)),
	}
	for id, v := range res.Metrics {
		out.Metrics[string(id)] = v
	}
	for tag, v := range res.Tags {
		out.Tags[string(tag)] = v
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringArrayVarP(&statsMetrics, "metric", "m", nil, "metric id to count (repeatable)")
	statsCmd.Flags().StringArrayVarP(&statsTags, "tag", "t", nil, "tag name to count (repeatable)")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print results as JSON")
}
