package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"lantern"
	"lantern/config"
)

func newBannerCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "banner",
		Short: "Print the server-ready banner while concurrent log lines wait for it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg.ApplyEnv()

			logger, err := lantern.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}

			coord := lantern.DefaultCoordinator()

			// Writers arriving after the banner starts block on the gate
			// until it has finished printing.
			var wg sync.WaitGroup
			for i := 0; i < 3; i++ {
				wg.Add(1)
				go func(worker int) {
					defer wg.Done()
					logger.Logf(cmd.Context(), lantern.LevelInfo, "worker online", "worker", worker)
				}(i)
			}

			lantern.EmitServerReady(coord, os.Stderr, lantern.ServerReadyInfo{
				App:       "lantern",
				Version:   "lantern v0.1.0",
				Mode:      "run",
				Status:    "ready",
				Scheme:    "http",
				Host:      "localhost",
				Port:      8080,
				ShowWS:    true,
				WSHost:    "localhost",
				WSPort:    9090,
				ReadyMS:   12,
				Threads:   3,
				ShowHints: true,
				Suppress:  cfg.SuppressBanner,
			})

			wg.Wait()
			return logger.Close()
		},
	}
}
