package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lantern"
	"lantern/config"
)

func newDemoCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Emit sample log events in every format",
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

			env := os.Getenv("APP_ENV")
			if env == "" {
				env = "dev"
			}
			ctx := lantern.WithContext(cmd.Context(), lantern.Context{
				CorrelationID: lantern.NewCorrelationID(),
				Module:        "demo",
				Fields:        map[string]string{"service": "lantern", "env": env},
			})

			logger.Log(lantern.LevelInfo, "hello from lantern demo")
			logger.Log(lantern.LevelDebug, "debug enabled = %t", logger.Enabled(lantern.LevelDebug))
			logger.Logf(ctx, lantern.LevelInfo, "boot args", "port", 8080, "async", logger.Async())
			logger.LogModule("demo", lantern.LevelWarn, "this is a warning")

			logger.SetFormat(lantern.FormatJSON)
			logger.Logf(ctx, lantern.LevelInfo, "request complete",
				"method", "GET", "path", "/health", "status", 200, "elapsed_ms", 3)

			logger.SetFormat(lantern.FormatPrettyJSON)
			logger.Logf(ctx, lantern.LevelError, "request failed",
				"method", "POST", "path", "/items", "status", 500, "elapsed_ms", 128)

			return logger.Close()
		},
	}
}
