package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfraquete/BookFlow/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write a default config file",
	Long: `Write the default configuration to PATH (default: ./bookflow.yaml).
An existing file is kept unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "bookflow.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cfgManager.Get()
		out := cmd.OutOrStdout()
		if f := cfgManager.ConfigFile(); f != "" {
			fmt.Fprintf(out, "# from %s\n", f)
		}
		fmt.Fprintf(out, "output_dir: %s\nformat: %s\njobs: %d\nlog_level: %s\nlang: %s\nvalidate: %t\nwatch.debounce: %s\n",
			cfg.OutputDir, cfg.Format, cfg.Jobs, cfg.LogLevel, cfg.Lang, cfg.Validate, cfg.Watch.Debounce)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
