// Package discord exposes the roster bot as a Discord slash command.
package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/example/roster/internal/bot"
)

// Slash command and option names.
const (
	CommandName    = "validate"
	FileOptionName = "file"
)

// ValidateCommand is the slash command registered on startup.
var ValidateCommand = &discordgo.ApplicationCommand{
	Name:        CommandName,
	Description: "Validate CSV roster file",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionAttachment,
			Name:        FileOptionName,
			Description: "Roster CSV with player_name and player_id columns",
			Required:    true,
		},
	},
}

// Bot connects a bot.Handler to a Discord gateway session.
type Bot struct {
	session *discordgo.Session
	handler *bot.Handler
	logger  *slog.Logger
}

// NewBot creates a Bot authenticated with token.
func NewBot(token string, handler *bot.Handler, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		session: session,
		handler: handler,
		logger:  logger,
	}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)

	return b, nil
}

// Run opens the gateway connection, registers the slash command and blocks
// until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	defer b.session.Close()

	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", ValidateCommand); err != nil {
		return fmt.Errorf("failed to register /%s command: %w", CommandName, err)
	}
	b.logger.Info("slash command registered", "command", CommandName)

	<-ctx.Done()
	b.logger.Info("shutting down bot")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("logged in", "user", r.User.String())
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.Name != CommandName {
		return
	}

	// Downloads can outlast the 3s acknowledgement window.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.logger.Error("failed to acknowledge interaction", "error", err)
		return
	}

	msg := b.handler.HandleValidate(context.Background(), attachmentFrom(data))

	if _, err := s.InteractionResponseEdit(i.Interaction, responseEdit(msg)); err != nil {
		b.logger.Error("failed to post report", "error", err)
	}
}

// responseEdit builds the report reply. Player names come from user uploads,
// so mentions such as @everyone must never ping anyone.
func responseEdit(msg string) *discordgo.WebhookEdit {
	return &discordgo.WebhookEdit{
		Content:         &msg,
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	}
}

// attachmentFrom resolves the file option of a validate command.
func attachmentFrom(data discordgo.ApplicationCommandInteractionData) *bot.Attachment {
	if data.Resolved == nil {
		return nil
	}
	for _, opt := range data.Options {
		if opt.Name != FileOptionName || opt.Type != discordgo.ApplicationCommandOptionAttachment {
			continue
		}
		id, ok := opt.Value.(string)
		if !ok {
			return nil
		}
		a, ok := data.Resolved.Attachments[id]
		if !ok || a == nil {
			return nil
		}
		return &bot.Attachment{
			Filename: a.Filename,
			URL:      a.URL,
			Size:     int64(a.Size),
		}
	}
	return nil
}
