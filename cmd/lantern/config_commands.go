package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lantern/config"
)

func newConfigCommand(configFlag *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(configFlag))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration after environment overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg.ApplyEnv()

			source := path
			if !exists {
				source = "(defaults; no config file found)"
			}

			rows := [][2]string{
				{"level", cfg.Level},
				{"format", cfg.Format},
				{"pattern", cfg.Pattern},
				{"flush_level", cfg.FlushLevel},
				{"async", strconv.FormatBool(cfg.Async)},
				{"queue_capacity", strconv.Itoa(cfg.QueueCapacity)},
				{"overflow_policy", cfg.OverflowPolicy},
				{"log_dir", cfg.LogDir},
				{"file_name", cfg.FileName},
				{"max_file_size_mb", strconv.Itoa(cfg.MaxFileSizeMB)},
				{"max_backups", strconv.Itoa(cfg.MaxBackups)},
				{"retention_days", strconv.Itoa(cfg.RetentionDays)},
				{"color", cfg.Color},
				{"console_sync", strconv.FormatBool(cfg.ConsoleSync)},
				{"suppress_banner", strconv.FormatBool(cfg.SuppressBanner)},
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration source: %s\n", source)
			fmt.Fprintln(out, renderSettingsTable(rows))
			return nil
		},
	}
}
