package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"roamstats/internal/adapters/browser"
	"roamstats/internal/adapters/clipboard"
	"roamstats/internal/adapters/tui"
	"roamstats/internal/bootstrap"
	"roamstats/internal/config"
	"roamstats/internal/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// the alt screen owns stdout and stderr, so log only to a file
	if err := bootstrap.ConfigureLogging(cfg, ""); err != nil {
		return err
	}
	defer log.Sync()

	client, err := bootstrap.NewClient(cfg)
	if err != nil {
		return err
	}

	settings, err := bootstrap.OpenSettings(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer settings.Close()

	app := tui.NewApp(tui.Deps{
		Loader:    bootstrap.NewLoader(cfg, client),
		Settings:  settings,
		Navigator: browser.NewNavigator(cfg.Graph, client),
		Clipboard: clipboard.System{},
		Graph:     cfg.Graph,
		Dev:       cfg.IsDev(),
	})
	if err := app.Register(); err != nil {
		return err
	}
	defer func() {
		if err := app.Unregister(); err != nil {
			log.Warn(map[string]any{"error": err.Error()}, "unregister commands")
		}
	}()

	log.Info(map[string]any{"graph": cfg.Graph, "env": cfg.Env}, "starting roamstats")

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
