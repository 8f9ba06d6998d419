package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/roster/internal/wire"
)

// BotCmd returns the bot command
func BotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Discord roster bot",
		Long: `Run the Discord bot that answers /validate with a roster report.

Reads DISCORD_BOT_TOKEN from the environment or a .env file in the
current directory. Runs until interrupted.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := wire.DiscordBot()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return b.Run(ctx)
		},
	}
}
