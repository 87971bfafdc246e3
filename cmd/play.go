package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"playermove/internal/controller"
	"playermove/internal/loader/loader"
	"playermove/internal/terminal"
)

func newPlayCmd() *cobra.Command {
	var (
		player  string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "play <scene.yaml>",
		Short: "Drive a player from the keyboard in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := loader.LoadScene(args[0])
			if err != nil {
				return err
			}
			if player == "" {
				player = scene.Players[0].Name
			}

			// The screen owns the terminal; logs go to a file.
			log, err := newLogger(cmd, "play", logFile)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			sim, err := controller.NewSimulation(&scene, log)
			if err != nil {
				return err
			}
			defer sim.Close()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			session, err := terminal.NewSession(screen, sim, player, log)
			if err != nil {
				return err
			}
			return session.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&player, "player", "p", "", "player to control (default: first in scene)")
	cmd.Flags().StringVar(&logFile, "log-file", "playermove.log", "file receiving logs while the screen is open")
	return cmd
}
