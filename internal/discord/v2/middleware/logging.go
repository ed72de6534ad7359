package middleware

import (
	"log"
	"time"

	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/core"
	"github.com/KirkDiggler/dnd-long-rest/internal/uuid"
)

// LoggingMiddleware logs every interaction with a request ID and its duration
func LoggingMiddleware(gen uuid.Generator) core.Middleware {
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			requestID := gen.New()
			interaction := describe(ctx)
			log.Printf("[Discord][%s] %s from user %s in guild %s", requestID, interaction, ctx.UserID, ctx.GuildID)

			start := time.Now()
			result, err := next.Handle(ctx)
			if err != nil {
				log.Printf("[Discord][%s] %s failed after %v: %v", requestID, interaction, time.Since(start), err)
			} else {
				log.Printf("[Discord][%s] %s completed in %v", requestID, interaction, time.Since(start))
			}

			return result, err
		})
	}
}

func describe(ctx *core.InteractionContext) string {
	if ctx.IsCommand() {
		name := "/" + ctx.GetCommandName()
		if sub := ctx.GetSubcommand(); sub != "" {
			name += " " + sub
		}
		return name
	}
	if ctx.IsComponent() {
		if parsed, err := core.ParseCustomID(ctx.GetCustomID()); err == nil {
			return parsed.Domain + ":" + parsed.Action
		}
		return ctx.GetCustomID()
	}
	return "unknown interaction"
}
