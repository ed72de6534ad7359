package middleware

import (
	"log"
	"runtime/debug"

	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/core"
)

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Discord] Panic recovered in handler: %v\n%s", r, debug.Stack())
					result = &core.HandlerResult{
						Response: core.NewEphemeralResponse("An unexpected error occurred. Please try again later."),
					}
					err = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}
