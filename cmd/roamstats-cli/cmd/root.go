package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roamstats/internal/bootstrap"
	"roamstats/internal/config"
	"roamstats/internal/log"
)

var (
	cfg       *config.AppConfig
	graphFlag string
	tokenFlag string
)

var rootCmd = &cobra.Command{
	Use:   "roamstats-cli",
	Short: "Statistics for a Roam Research graph",
	Long: `roamstats-cli counts pages, blocks, words, references and tags in a
Roam Research graph through the backend query API.

Configuration comes from ROAMSTATS_* environment variables; at least
ROAMSTATS_GRAPH and ROAMSTATS_TOKEN are needed for commands that query
the graph.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		c, err := config.Load()
		if err != nil {
			return err
		}
		if graphFlag != "" {
			c.Graph = graphFlag
		}
		if tokenFlag != "" {
			c.Token = tokenFlag
		}
		cfg = c
		return bootstrap.ConfigureLogging(cfg, "stderr")
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&graphFlag, "graph", "g", "", "graph name (overrides ROAMSTATS_GRAPH)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "backend API token (overrides ROAMSTATS_TOKEN)")
}

// GetConfig returns the loaded configuration
func GetConfig() *config.AppConfig {
	return cfg
}
