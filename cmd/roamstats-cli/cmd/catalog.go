package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"roamstats/internal/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the metric ids and tags that can be counted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Metrics:")
		for _, id := range domain.Metrics {
			fmt.Printf("  %-24s %s\n", id, id.Label())
		}
		fmt.Println("Tags:")
		for _, tag := range domain.Tags {
			fmt.Printf("  %s\n", tag)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
