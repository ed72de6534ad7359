package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// InteractionContext wraps a Discord interaction with the parsed options and
// the responder used to answer it
type InteractionContext struct {
	Interaction *discordgo.InteractionCreate
	Responder   InteractionResponder

	UserID    string
	GuildID   string
	ChannelID string
	Member    *discordgo.Member

	// Context for cancellation
	Context context.Context

	params map[string]any
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, i *discordgo.InteractionCreate, responder InteractionResponder) *InteractionContext {
	ic := &InteractionContext{
		Interaction: i,
		Responder:   responder,
		Context:     ctx,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		params:      make(map[string]any),
	}

	if i.Member != nil && i.Member.User != nil {
		ic.Member = i.Member
		ic.UserID = i.Member.User.ID
	} else if i.User != nil {
		ic.UserID = i.User.ID
	}

	if i.Type == discordgo.InteractionApplicationCommand {
		ic.parseOptions(i.ApplicationCommandData().Options)
	}

	return ic
}

// parseOptions recursively extracts command options
func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			ic.params["subcommand"] = opt.Name
			ic.parseOptions(opt.Options)
			continue
		}
		ic.params[opt.Name] = opt.Value
	}
}

// HasParam reports whether the user supplied an option
func (ic *InteractionContext) HasParam(name string) bool {
	_, ok := ic.params[name]
	return ok
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name].(string); ok {
		return val
	}
	return ""
}

// GetBoolParam retrieves a bool parameter or returns def when it is absent
func (ic *InteractionContext) GetBoolParam(name string, def bool) bool {
	if val, ok := ic.params[name].(bool); ok {
		return val
	}
	return def
}

// IsCommand checks if this is a slash command interaction
func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

// IsComponent checks if this is a message component interaction
func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// GetCustomID returns the custom ID for component interactions
func (ic *InteractionContext) GetCustomID() string {
	if ic.IsComponent() {
		return ic.Interaction.MessageComponentData().CustomID
	}
	return ""
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommand returns the subcommand name if present
func (ic *InteractionContext) GetSubcommand() string {
	return ic.GetStringParam("subcommand")
}

// HasPermission reports whether the invoking member holds perm
func (ic *InteractionContext) HasPermission(perm int64) bool {
	if ic.Member == nil {
		return false
	}
	return ic.Member.Permissions&perm == perm
}
