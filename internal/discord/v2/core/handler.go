package core

import (
	"github.com/bwmarrin/discordgo"
)

// Handler defines the interface for all interaction handlers
type Handler interface {
	// CanHandle determines if this handler should process the interaction
	CanHandle(ctx *InteractionContext) bool

	// Handle processes the interaction and returns a result
	Handle(ctx *InteractionContext) (*HandlerResult, error)
}

// HandlerFunc allows functions to implement the Handler interface
type HandlerFunc func(ctx *InteractionContext) (*HandlerResult, error)

// CanHandle for HandlerFunc always returns true
func (f HandlerFunc) CanHandle(ctx *InteractionContext) bool {
	return true
}

// Handle calls the function
func (f HandlerFunc) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return f(ctx)
}

// HandlerResult contains the response from a handler. A nil Response means
// the handler already answered through the responder.
type HandlerResult struct {
	Response *Response
}

// Response represents a Discord-agnostic response
type Response struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent

	// Ephemeral responses are only visible to the user
	Ephemeral bool

	// Update replaces the message a component belongs to
	Update bool
}

// NewResponse creates a new response with the given content
func NewResponse(content string) *Response {
	return &Response{
		Content: content,
	}
}

// NewEphemeralResponse creates a new ephemeral response
func NewEphemeralResponse(content string) *Response {
	return &Response{
		Content:   content,
		Ephemeral: true,
	}
}

// NewEmbedResponse creates a response with an embed
func NewEmbedResponse(embed *discordgo.MessageEmbed) *Response {
	return &Response{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
}

// WithComponents adds components to the response
func (r *Response) WithComponents(components ...discordgo.MessageComponent) *Response {
	r.Components = components
	return r
}

// AsEphemeral sets the response to be ephemeral
func (r *Response) AsEphemeral() *Response {
	r.Ephemeral = true
	return r
}

// AsUpdate sets the response to update the original message
func (r *Response) AsUpdate() *Response {
	r.Update = true
	return r
}
