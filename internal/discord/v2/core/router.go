package core

import (
	"fmt"
)

// Router manages the command and component handlers of one domain. The
// domain is both the slash command name and the custom ID prefix.
type Router struct {
	domain     string
	handlers   map[string]Handler
	middleware []Middleware
}

// NewRouter creates a new domain router
func NewRouter(domain string) *Router {
	return &Router{
		domain:   domain,
		handlers: make(map[string]Handler),
	}
}

// Use adds middleware to this router
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Handle registers a handler for a routing pattern
func (r *Router) Handle(pattern string, handler Handler) *Router {
	wrapped := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}

	r.handlers[pattern] = wrapped
	return r
}

// CommandFunc registers the handler of the bare slash command
func (r *Router) CommandFunc(fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Handle(fmt.Sprintf("cmd:%s", r.domain), HandlerFunc(fn))
}

// SubcommandFunc registers a subcommand handler function
func (r *Router) SubcommandFunc(sub string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Handle(fmt.Sprintf("cmd:%s:%s", r.domain, sub), HandlerFunc(fn))
}

// ComponentFunc registers a component handler; "*" matches every action
func (r *Router) ComponentFunc(action string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Handle(fmt.Sprintf("component:%s", action), HandlerFunc(fn))
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	return &routerHandler{
		domain:   r.domain,
		handlers: r.handlers,
	}
}

// routerHandler implements Handler for a router
type routerHandler struct {
	domain   string
	handlers map[string]Handler
}

// CanHandle checks if this router can handle the interaction
func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	return h.find(ctx) != nil
}

// Handle processes the interaction
func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler := h.find(ctx)
	if handler == nil {
		return nil, NewNotFoundError("handler")
	}
	return handler.Handle(ctx)
}

func (h *routerHandler) find(ctx *InteractionContext) Handler {
	pattern, wildcard := h.extractPattern(ctx)
	if pattern == "" {
		return nil
	}
	if handler, ok := h.handlers[pattern]; ok {
		return handler
	}
	if wildcard != "" {
		return h.handlers[wildcard]
	}
	return nil
}

// extractPattern extracts the routing pattern from the interaction
func (h *routerHandler) extractPattern(ctx *InteractionContext) (pattern, wildcard string) {
	if ctx.IsCommand() {
		if ctx.GetCommandName() != h.domain {
			return "", ""
		}
		if sub := ctx.GetSubcommand(); sub != "" {
			return fmt.Sprintf("cmd:%s:%s", h.domain, sub), ""
		}
		return fmt.Sprintf("cmd:%s", h.domain), ""
	}

	if ctx.IsComponent() {
		customID, err := ParseCustomID(ctx.GetCustomID())
		if err != nil || customID.Domain != h.domain {
			return "", ""
		}
		return fmt.Sprintf("component:%s", customID.Action), "component:*"
	}

	return "", ""
}
