package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/Pomi44/OIB/internal/services/search/coordinator"
	"github.com/Pomi44/OIB/internal/services/search/digest"
	"github.com/Pomi44/OIB/internal/services/search/notifier"
	"github.com/Pomi44/OIB/internal/services/search/progress"
	"github.com/Pomi44/OIB/internal/services/search/searchservice"
	"github.com/Pomi44/OIB/pkg/logging"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:           "cardsearch",
		Short:         "Recovers the hidden digits of a card number from its digest",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().
		StringVarP(&cfgPath, "config", "c", "configs/cardsearch.yaml", "path to configuration file")

	rootCmd.AddCommand(
		newSearchCmd(&cfgPath),
		newHashCmd(),
		newBenchCmd(&cfgPath),
	)

	return rootCmd
}

func newSearchCmd(cfgPath *string) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search every configured bin for the card number matching the target hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runSearch(ctx, *cfgPath, workers)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of parallel workers (default from config, then CPU count)")

	return cmd
}

func runSearch(ctx context.Context, cfgPath string, workers int) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	logging.InitLogger(cfg.Logger, slog.String("service", "cardsearch"))

	req, alg, err := cfg.Request(workers)
	if err != nil {
		slog.Error("build search request failed", slog.Any("error", err))
		return err
	}

	slog.Info("initializing dependencies...")

	notifiers := []notifier.Notifier{
		notifier.NewLogNotifier(slog.Default()),
		notifier.NewFileNotifier(&cfg.FileNotifierConfig),
	}
	if cfg.Notifier != nil {
		notifiers = append(notifiers, notifier.NewHTTPNotifier(cfg.Notifier))
	}

	coord := coordinator.New(cfg.Coordinator, alg, progress.LogReporter(slog.Default()))
	service := searchservice.NewService(cfg.Service, coord, notifiers...)

	slog.Info("dependencies initialized")

	result, err := service.Find(ctx, req)
	if err != nil {
		slog.Error("search failed", slog.Any("error", err))
		return err
	}

	if !result.Found() {
		return fmt.Errorf("card number not found")
	}

	return nil
}

func newHashCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "hash CARD...",
		Short: "Print the digest of each card number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := digest.Lookup(algorithm)
			if err != nil {
				return err
			}

			for _, card := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", alg.HexSum(card), card)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", digest.DefaultAlgorithm, "digest algorithm")

	return cmd
}

func newBenchCmd(cfgPath *string) *cobra.Command {
	var maxWorkers int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the search of the first configured bin for 1..N workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxWorkers < 1 {
				return fmt.Errorf("max-workers must be at least 1")
			}

			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}

			logging.InitLogger(cfg.Logger, slog.String("service", "cardsearch-bench"))

			req, alg, err := cfg.Request(0)
			if err != nil {
				return err
			}

			spec := req.Spec(req.Prefixes[0])
			coord := coordinator.New(&coordinator.Config{}, alg, nil)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WORKERS\tSECONDS\tEXAMINED\tSTATUS")
			for w := 1; w <= maxWorkers; w++ {
				start := time.Now()
				result, err := coord.Search(cmd.Context(), spec, w)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%d\t%.3f\t%d\t%s\n", w, time.Since(start).Seconds(), result.Examined, result.Status)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&maxWorkers, "max-workers", "m", runtime.NumCPU(), "largest worker count to measure")

	return cmd
}
