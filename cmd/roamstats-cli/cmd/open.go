package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"roamstats/internal/adapters/browser"
	"roamstats/internal/application/commands"
	"roamstats/internal/bootstrap"
)

var openCmd = &cobra.Command{
	Use:   "open <page-title>",
	Short: "Open a graph page in the browser",
	Long: `Resolve a page by title and open it in the Roam web app.

Examples:
  roamstats-cli open TODO
  roamstats-cli open ">"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := bootstrap.NewClient(GetConfig())
		if err != nil {
			return err
		}
		nav := browser.NewNavigator(client.Graph(), client)

		if err := commands.NewOpenPageCommand(nav, args[0]).Execute(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Opened %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
