package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/roster/internal/adapters/cli"
	"github.com/example/roster/internal/cli"
	"github.com/example/roster/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "roster",
		Short:   "Roster - player identifier validator",
		Version: version.String(),
		Long: `Roster validates player identifiers for roster submission.
Identifiers must be 32-character lowercase hexadecimal strings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.ValidateCmd())
	rootCmd.AddCommand(cli.BotCmd())

	if err := rootCmd.Execute(); err != nil {
		// The status line was already printed.
		if !errors.Is(err, cliadapter.ErrInvalidIdentifier) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
