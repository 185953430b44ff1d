package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"roamstats/internal/adapters/prom"
	"roamstats/internal/bootstrap"
	"roamstats/internal/log"
)

var (
	exportListen   string
	exportInterval time.Duration
)

const shutdownTimeout = 10 * time.Second

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Serve graph statistics as Prometheus metrics",
	Long: `Refresh every statistic on an interval and serve the values on
/metrics for Prometheus to scrape.

Examples:
  roamstats-cli export
  roamstats-cli export --listen :9464 --interval 15m`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportInterval <= 0 {
			return fmt.Errorf("--interval must be positive, got %s", exportInterval)
		}
		client, err := bootstrap.NewClient(GetConfig())
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		metrics := prom.NewMetrics(reg)
		loader := bootstrap.NewLoader(GetConfig(), prom.Instrument(client, metrics))
		exporter := prom.NewExporter(loader, metrics)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{
			Addr:              exportListen,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info(map[string]any{"listen": exportListen, "graph": client.Graph()}, "serving metrics")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			err := exporter.Run(ctx, exportInterval)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportListen, "listen", ":9464", "address to serve /metrics on")
	exportCmd.Flags().DurationVar(&exportInterval, "interval", 10*time.Minute, "time between refreshes")
}
