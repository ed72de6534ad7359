package v2

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/core"
	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/handlers"
	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/middleware"
	restrules "github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/events"
	"github.com/KirkDiggler/dnd-long-rest/internal/services"
)

// Bot wires the long rest handlers into one pipeline
type Bot struct {
	pipeline *core.Pipeline
}

// BotConfig holds configuration for the bot
type BotConfig struct {
	Provider *services.Provider // Required
	// Sender posts rest summaries; usually the Discord session
	Sender         handlers.ChannelSender // Required
	ConfirmTimeout time.Duration
}

// NewBot creates the bot and subscribes its summary listener to the provider bus
func NewBot(cfg *BotConfig) (*Bot, error) {
	if cfg == nil || cfg.Provider == nil {
		return nil, dnderr.InvalidArgument("provider is required")
	}
	if cfg.Sender == nil {
		return nil, dnderr.InvalidArgument("channel sender is required")
	}

	summary := handlers.NewSummaryListener(cfg.Sender)
	cfg.Provider.Bus.Subscribe(events.EventTypeLongRestCompleted, summary)
	cfg.Provider.Bus.Subscribe(events.EventTypeLongRestAborted, summary)

	confirmer := handlers.NewButtonConfirmer(&handlers.ButtonConfirmerConfig{
		Timeout: cfg.ConfirmTimeout,
	})

	longRest := handlers.NewLongRestHandler(&handlers.LongRestHandlerConfig{
		Service:       cfg.Provider.RestService,
		CharacterRepo: cfg.Provider.CharacterRepository,
		Confirmer:     confirmer,
		Summary:       summary,
	})
	settings := handlers.NewSettingsHandler(cfg.Provider.RestService)

	pipeline := core.NewPipeline()
	pipeline.Use(
		middleware.RecoveryMiddleware(),
		middleware.LoggingMiddleware(nil),
	)
	pipeline.Register(
		longRest.Router().Build(),
		settings.Router().Build(),
	)

	return &Bot{pipeline: pipeline}, nil
}

// Pipeline exposes the handler pipeline
func (b *Bot) Pipeline() *core.Pipeline {
	return b.pipeline
}

// HandleInteraction is the discordgo interaction callback
func (b *Bot) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := b.pipeline.Execute(context.Background(), s, i); err != nil {
		log.Printf("Bot: failed to handle interaction %s: %v", i.ID, err)
	}
}

// RegisterCommands replaces the application commands of guildID, or the
// global commands when guildID is empty
func RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	if _, err := s.ApplicationCommandBulkOverwrite(appID, guildID, Commands()); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to register commands").
			WithMeta("guild_id", guildID)
	}
	return nil
}

// Commands returns the slash command definitions
func Commands() []*discordgo.ApplicationCommand {
	settingChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(restrules.SettingKeys))
	for _, key := range restrules.SettingKeys {
		settingChoices = append(settingChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  key,
			Value: key,
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        handlers.Domain,
			Description: "Take a long rest",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "character",
					Description: "Character name, needed when you have more than one",
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "dialog",
					Description: "Ask before finishing the rest (default true)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "newday",
					Description: "A new day has begun (default true)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "chat",
					Description: "Post a summary to the channel (default true)",
				},
			},
		},
		{
			Name:        handlers.SettingsDomain,
			Description: "Long rest recovery settings",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "show",
					Description: "Show the current settings",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "set",
					Description: "Change one setting",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "key",
							Description: "Setting to change",
							Required:    true,
							Choices:     settingChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "value",
							Description: "none, quarter, half, full, true, false, up or down",
							Required:    true,
						},
					},
				},
				{
					Name:        "reset",
					Description: "Go back to the configured defaults",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}
}
