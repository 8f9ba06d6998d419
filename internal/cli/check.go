package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/roster/internal/wire"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [player-id]",
		Short: "Validate a single player identifier",
		Long: `Validate a single player identifier.

A valid identifier is a 32-character lowercase hexadecimal string
(an MD5 hash). Exits with status 1 when the identifier is invalid.

Examples:
  roster check d33fe4ac81338c97290d2acd810c15e3`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.RosterAdapterWithOutput(cmd.OutOrStdout())
			return adapter.Check(cmd.Context(), args[0])
		},
	}
}
