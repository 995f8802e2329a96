package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "tilegame",
		Short: "CLI tool for the tile game API",
		Long: `tilegame is a CLI tool for interacting with the tile game JSON API.

It creates games, shows boards and makes plays, swaps and passes. The rules
command works offline and explains a rules file without a server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: TILEGAME_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Player, "player", "p", cfg.Player, "Player ID to act as (env: TILEGAME_PLAYER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: "+OutputText+" or "+OutputJSON)

	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure. Cobra has
// already printed the error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
