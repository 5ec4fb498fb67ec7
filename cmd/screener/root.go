package main

import (
	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags shared by every command
type rootOptions struct {
	configPath string
	debug      bool
	jsonLogs   bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "screener",
		Short:         "Résumé screener",
		Long:          "Extracts skills, education and experience from résumés and ranks candidates against a job profile.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML/JSON/TOML config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json", false, "Emit logs as JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print human-readable summaries to stderr")

	cmd.AddCommand(
		newExtractCmd(opts),
		newRankCmd(opts),
		newScreenCmd(opts),
		newVersionCmd(),
	)
	return cmd
}
