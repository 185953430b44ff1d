package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"roamstats/internal/application/commands"
	"roamstats/internal/bootstrap"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read or change extension preferences",
	Long: `Read or change preferences stored in the settings database.

Examples:
  roamstats-cli settings get auto-load
  roamstats-cli settings set auto-load off`,
}

var settingsGetCmd = &cobra.Command{
	Use:       "get auto-load",
	Short:     "Print a preference",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"auto-load"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkSettingName(args[0]); err != nil {
			return err
		}
		ctx := cmd.Context()
		store, err := bootstrap.OpenSettings(ctx, GetConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		enabled, err := commands.NewGetAutoLoadCommand(store).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %t\n", commands.AutoLoadSetting, enabled)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set auto-load <on|off>",
	Short: "Change a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkSettingName(args[0]); err != nil {
			return err
		}
		enabled, err := commands.ParseAutoLoad(args[1])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		store, err := bootstrap.OpenSettings(ctx, GetConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		if err := commands.NewSetAutoLoadCommand(store, enabled).Execute(ctx); err != nil {
			return err
		}
		fmt.Printf("%s: %t\n", commands.AutoLoadSetting, enabled)
		return nil
	},
}

func checkSettingName(name string) error {
	if name != "auto-load" && name != commands.AutoLoadSetting {
		return fmt.Errorf("unknown setting %q (available: auto-load)", name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
