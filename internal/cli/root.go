package cli

import (
	"fmt"
	"os"

	"github.com/chemaware/catalog/config"
	"github.com/chemaware/catalog/internal/logging"
	"github.com/spf13/cobra"
)

// options carries the persistent flags and the config they resolve to
type options struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
}

// NewRootCmd builds the chemaware command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "chemaware",
		Short: "Browse household chemical products by hazard and eco rating",
		Long: `chemaware merges a built-in list of household chemicals with a product
API, and lets you search, filter, favorite and compare them from the
terminal, a full-screen browser or an HTTP API.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(opts.cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("loglevel") {
				cfg.Log.Level = opts.logLevel
			}
			if err := logging.SetLevel(cfg.Log.Level); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./chemaware.yaml or $HOME/.chemaware/chemaware.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.logLevel, "loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newBrowseCmd(opts),
		newListCmd(opts),
		newShowCmd(opts),
		newFavoritesCmd(opts),
		newCompareCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
