package core

import (
	"context"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	handlers     []Handler
	middleware   []Middleware
	errorHandler ErrorHandler

	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler turns a handler error into the response the user sees
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		errorHandler: defaultErrorHandler,
	}
}

// Register adds handlers to the pipeline
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, &middlewareHandler{match: h, wrapped: wrapped})
	}
}

// middlewareHandler runs the middleware chain but keeps the routing of the
// handler it wraps
type middlewareHandler struct {
	match   Handler
	wrapped Handler
}

func (m *middlewareHandler) CanHandle(ctx *InteractionContext) bool {
	return m.match.CanHandle(ctx)
}

func (m *middlewareHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return m.wrapped.Handle(ctx)
}

// Use adds middleware applied to handlers registered afterwards
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// Execute runs the pipeline for a Discord interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	responder := NewDiscordResponder(s, i)
	return p.Dispatch(NewInteractionContext(ctx, i, responder))
}

// Dispatch hands the interaction to the first handler that accepts it and
// sends whatever it returns
func (p *Pipeline) Dispatch(ctx *InteractionContext) error {
	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(ctx) {
			continue
		}

		result, err := handler.Handle(ctx)
		if err != nil {
			log.Printf("Pipeline: handler failed for user %s: %v", ctx.UserID, err)
			result = errorHandler(ctx, err)
		}

		if result != nil && result.Response != nil {
			if err := ctx.Responder.Respond(result.Response); err != nil {
				return dnderr.Wrap(err, "failed to send response")
			}
		}
		return nil
	}

	if ctx.Responder.HasResponded() {
		return nil
	}
	return ctx.Responder.Respond(NewEphemeralResponse("I don't know how to handle that command."))
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

func defaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	return &HandlerResult{
		Response: NewEphemeralResponse(UserMessage(err)),
	}
}
