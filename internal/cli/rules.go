package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/tilegame-go/internal/config"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect rules files (works offline)",
	}

	cmd.AddCommand(newRulesShowCmd())
	cmd.AddCommand(newRulesDefaultCmd())

	return cmd
}

func newRulesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Show the board geometry and tile set a rules file describes",
		Long: `Show the board geometry and tile set a rules file describes.

Without a file, ./configs/rules.yaml is used if present, otherwise the
built-in default rules.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			loaded, err := config.LoadRules(path)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(RulesInfoFromLoaded(loaded))
			return nil
		},
	}
}

func newRulesDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the built-in rules file, as a starting point for your own",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.DefaultRulesYAML())
			return err
		},
	}
}
