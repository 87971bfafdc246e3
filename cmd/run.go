package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"playermove/internal/logger"
	"playermove/internal/runner"
)

func newRunCmd() *cobra.Command {
	var cfg runner.Config

	cmd := &cobra.Command{
		Use:   "run <scene.yaml>...",
		Short: "Simulate scenes headlessly and print final positions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, "runner")
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			cfg.OverrideTicks = cmd.Flags().Changed("ticks")
			ctx := logger.WithLogger(cmd.Context(), log)

			reports, runErr := runner.New(cfg, nil).Run(ctx, args)
			printReports(cmd.OutOrStdout(), reports)
			return runErr
		},
	}
	cmd.Flags().IntVarP(&cfg.Workers, "workers", "w", 0, "scenes simulated at once (0 = all)")
	cmd.Flags().IntVarP(&cfg.Ticks, "ticks", "t", 0, "override every scene's tick count; 0 builds scenes without stepping")
	return cmd
}

func printReports(w io.Writer, reports []runner.Report) {
	for _, rep := range reports {
		if rep.Err != nil {
			fmt.Fprintf(w, "%s: failed\n", rep.Scene)
			continue
		}
		fmt.Fprintf(w, "%s: %d ticks, %d clamped, %s\n", rep.Scene, rep.Ticks, rep.Clamped, rep.Duration)
		for _, p := range rep.Players {
			fmt.Fprintf(w, "  %-12s %v  extents %v  id %s\n", p.Name, p.Position, p.Extents, p.ID)
		}
	}
}
