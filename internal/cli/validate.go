package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/roster/internal/wire"
)

// ValidateCmd returns the validate command
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [roster.csv]",
		Short: "Validate a CSV roster of player identifiers",
		Long: `Validate every player identifier in a CSV roster and print a report.

The file must have a header row with player_name and player_id columns.

Examples:
  roster validate roster.csv
  roster validate roster.csv --strict   # exit 1 if any identifier is invalid`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")

			adapter := wire.RosterAdapterWithOutput(cmd.OutOrStdout())
			return adapter.Validate(cmd.Context(), args[0], strict)
		},
	}

	cmd.Flags().Bool("strict", false, "Exit with status 1 when the roster has invalid identifiers")

	return cmd
}
