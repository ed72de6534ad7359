package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/builders"
	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/core"
	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/middleware"
	restrules "github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	restservice "github.com/KirkDiggler/dnd-long-rest/internal/services/rest"
)

// SettingsDomain is the command name of the settings handler
const SettingsDomain = "restsettings"

// SettingsHandler handles /restsettings show, set and reset
type SettingsHandler struct {
	service restservice.Service
}

// NewSettingsHandler creates a settings handler
func NewSettingsHandler(service restservice.Service) *SettingsHandler {
	if service == nil {
		panic("rest service is required")
	}
	return &SettingsHandler{service: service}
}

// Router returns the routes of /restsettings. Changing settings needs the
// Manage Server permission.
func (h *SettingsHandler) Router() *core.Router {
	admin := middleware.RequirePermissions(discordgo.PermissionManageServer)

	return core.NewRouter(SettingsDomain).
		SubcommandFunc("show", h.Show).
		Handle(fmt.Sprintf("cmd:%s:set", SettingsDomain), admin(core.HandlerFunc(h.Set))).
		Handle(fmt.Sprintf("cmd:%s:reset", SettingsDomain), admin(core.HandlerFunc(h.Reset)))
}

// Show lists the effective settings
func (h *SettingsHandler) Show(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	current, err := h.service.Settings(ctx.Context)
	if err != nil {
		return nil, err
	}

	return &core.HandlerResult{
		Response: core.NewEmbedResponse(settingsEmbed("Long rest settings", current)).AsEphemeral(),
	}, nil
}

// Set stores one setting
func (h *SettingsHandler) Set(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	key := ctx.GetStringParam("key")
	value := ctx.GetStringParam("value")
	if key == "" || value == "" {
		return nil, core.NewUserError("Both key and value are required.")
	}

	updated, err := h.service.UpdateSetting(ctx.Context, key, value)
	if err != nil {
		return nil, err
	}
	log.Printf("SettingsHandler: %s set %s to %s", ctx.UserID, key, value)

	return &core.HandlerResult{
		Response: core.NewEmbedResponse(settingsEmbed(fmt.Sprintf("Updated %s", key), updated)).AsEphemeral(),
	}, nil
}

// Reset drops every stored setting
func (h *SettingsHandler) Reset(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if err := h.service.ResetSettings(ctx.Context); err != nil {
		return nil, err
	}
	log.Printf("SettingsHandler: %s reset the long rest settings", ctx.UserID)

	return &core.HandlerResult{
		Response: core.NewEmbedResponse(
			builders.SuccessEmbed("Settings reset", "Long rests use the configured defaults again.").Build(),
		).AsEphemeral(),
	}, nil
}

func settingsEmbed(title string, s restrules.Settings) *discordgo.MessageEmbed {
	embed := builders.InfoEmbed(title, "Fractions are none, quarter, half or full. Rounding is up or down.")
	values := s.Values()
	for _, key := range restrules.SettingKeys {
		embed.AddField(key, fmt.Sprintf("`%s`", values[key]), true)
	}
	return embed.Build()
}
