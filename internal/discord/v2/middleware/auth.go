package middleware

import (
	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/core"
)

// RequirePermissions only lets members holding perms through. Used for the
// settings command, which changes every rest on the server.
func RequirePermissions(perms int64) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if ctx.GuildID == "" {
				return unauthorizedResponse("This command can only be used in a server."), nil
			}
			if !ctx.HasPermission(perms) {
				return unauthorizedResponse("You don't have the required permissions to use this command."), nil
			}
			return next.Handle(ctx)
		})
	}
}

func unauthorizedResponse(message string) *core.HandlerResult {
	return &core.HandlerResult{
		Response: core.NewEphemeralResponse(message),
	}
}
