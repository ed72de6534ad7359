package core

import (
	"github.com/bwmarrin/discordgo"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// InteractionResponder provides an abstraction over Discord's interaction response API
type InteractionResponder interface {
	// Defer sends a deferred response, optionally ephemeral
	Defer(ephemeral bool) error

	// Respond sends an immediate response, or edits when already answered
	Respond(response *Response) error

	// Edit updates a previous response (after defer or respond)
	Edit(response *Response) error

	HasResponded() bool
}

// DiscordResponder implements InteractionResponder using Discord's API
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
	responded   bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(s *discordgo.Session, i *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Defer sends a deferred response
func (r *DiscordResponder) Defer(ephemeral bool) error {
	if r.responded {
		return dnderr.InvalidArgument("interaction already responded to")
	}

	responseType := discordgo.InteractionResponseDeferredChannelMessageWithSource
	if r.interaction.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseDeferredMessageUpdate
	}

	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: data,
	})
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to defer interaction")
	}

	r.responded = true
	return nil
}

// Respond sends an immediate response
func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		return r.Edit(response)
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if response.Update {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	data := &discordgo.InteractionResponseData{
		Content:    response.Content,
		Embeds:     response.Embeds,
		Components: response.Components,
	}
	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: data,
	})
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to respond to interaction")
	}

	r.responded = true
	return nil
}

// Edit updates a previous response
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.responded {
		return dnderr.InvalidArgument("cannot edit before responding")
	}

	embeds := response.Embeds
	if embeds == nil {
		embeds = []*discordgo.MessageEmbed{}
	}
	components := response.Components
	if components == nil {
		components = []discordgo.MessageComponent{}
	}

	_, err := r.session.InteractionResponseEdit(r.interaction.Interaction, &discordgo.WebhookEdit{
		Content:    &response.Content,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to edit interaction response")
	}
	return nil
}

// HasResponded returns whether this responder has already sent a response
func (r *DiscordResponder) HasResponded() bool {
	return r.responded
}
