package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfraquete/BookFlow/internal/config"
	"github.com/pfraquete/BookFlow/version"
)

var (
	cfgFile  string
	logLevel string

	// cfgManager is set by the root command before any subcommand runs
	cfgManager *config.Manager
)

var (
	logLevelVar = new(slog.LevelVar)
	logger      = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevelVar}))
)

var rootCmd = &cobra.Command{
	Use:   "bookflow",
	Short: "Recover chapters and structure from book PDFs",
	Long: `BookFlow turns the text layer of a book PDF into a structured book:
chapters, headings, paragraphs, quotes and lists, with page numbers
removed.

Each book is written as standalone HTML and, optionally, as JSON or YAML
for downstream tooling.`,
	Version:       version.GitRelease,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			if err := cm.Set("log_level", logLevel); err != nil {
				return err
			}
		}
		cfgManager = cm

		logLevelVar.Set(cm.Get().SlogLevel())
		cm.OnChange(func(c *config.Config) {
			logLevelVar.Set(c.SlogLevel())
		})
		slog.SetDefault(logger)

		if f := cm.ConfigFile(); f != "" {
			logger.Debug("loaded config", "file", f)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./bookflow.yaml or ~/.bookflow/bookflow.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn or error",
	)

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
