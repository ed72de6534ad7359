package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/builders"
	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/core"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	restrules "github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/repositories/characters"
	restservice "github.com/KirkDiggler/dnd-long-rest/internal/services/rest"
)

// LongRestHandler handles /longrest and the buttons of its prompt
type LongRestHandler struct {
	service       restservice.Service
	characterRepo characters.Repository
	confirmer     *ButtonConfirmer
	summary       *SummaryListener
}

// LongRestHandlerConfig holds configuration for the handler
type LongRestHandlerConfig struct {
	Service       restservice.Service   // Required
	CharacterRepo characters.Repository // Required
	Confirmer     *ButtonConfirmer
	// Summary is optional; without it no chat card is routed
	Summary *SummaryListener
}

// NewLongRestHandler creates a long rest handler
func NewLongRestHandler(cfg *LongRestHandlerConfig) *LongRestHandler {
	if cfg.Service == nil {
		panic("rest service is required")
	}
	if cfg.CharacterRepo == nil {
		panic("character repository is required")
	}

	confirmer := cfg.Confirmer
	if confirmer == nil {
		confirmer = NewButtonConfirmer(nil)
	}

	return &LongRestHandler{
		service:       cfg.Service,
		characterRepo: cfg.CharacterRepo,
		confirmer:     confirmer,
		summary:       cfg.Summary,
	}
}

// Router returns the routes of /longrest
func (h *LongRestHandler) Router() *core.Router {
	return core.NewRouter(Domain).
		CommandFunc(h.Handle).
		ComponentFunc("*", h.confirmer.HandleComponent)
}

// Handle runs a long rest on one of the caller's characters
func (h *LongRestHandler) Handle(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.resolveCharacter(ctx)
	if err != nil {
		return nil, err
	}

	// the prompt can wait for minutes
	if err := ctx.Responder.Defer(false); err != nil {
		return nil, err
	}

	input := &restservice.LongRestInput{
		CharacterID: char.ID,
		OwnerID:     ctx.UserID,
		Chat:        ctx.GetBoolParam("chat", true),
		Dialog:      ctx.GetBoolParam("dialog", true),
		NewDay:      ctx.GetBoolParam("newday", true),
	}
	if input.Dialog {
		input.Confirmer = h.confirmer.For(ctx.Responder, ctx.UserID)
	}

	if h.summary != nil && input.Chat {
		input.Origin = h.summary.Track(ctx.ChannelID)
		defer h.summary.Untrack(input.Origin)
	}

	out, err := h.service.LongRest(ctx.Context, input)
	if err != nil {
		return nil, err
	}

	if out.Rest.Aborted() {
		log.Printf("LongRestHandler: %s cancelled the rest of %s", ctx.UserID, char.ID)
		return &core.HandlerResult{
			Response: core.NewResponse(fmt.Sprintf("🚫 %s got up before finishing the long rest. Recovery so far was kept.", out.Character.Name)),
		}, nil
	}

	return &core.HandlerResult{
		Response: core.NewEmbedResponse(restDetailsEmbed(out.Character, out.Rest)),
	}, nil
}

// resolveCharacter picks the character named by the option, or the caller's
// only character
func (h *LongRestHandler) resolveCharacter(ctx *core.InteractionContext) (*character.Character, error) {
	owned, err := h.characterRepo.GetByOwner(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list your characters")
	}
	if len(owned) == 0 {
		return nil, core.NewUserError("You don't have any characters yet.")
	}

	wanted := strings.TrimSpace(ctx.GetStringParam("character"))
	if wanted == "" {
		if len(owned) > 1 {
			return nil, core.NewUserError("You have several characters. Pick one with the character option.")
		}
		return owned[0], nil
	}

	for _, c := range owned {
		if c.ID == wanted || strings.EqualFold(c.Name, wanted) {
			return c, nil
		}
	}
	return nil, core.NewUserError(fmt.Sprintf("You don't have a character named '%s'.", wanted))
}

func restDetailsEmbed(c *character.Character, out *restrules.LongRestOutput) *discordgo.MessageEmbed {
	embed := builders.NewRestEmbed(fmt.Sprintf("✅ %s is rested", c.Name)).
		AddHitPoints(c.HP.Value, c.HP.Max, c.HP.Temp).
		AddHitDice(c.HitDice(), c.MaxHitDice()).
		AddDelta("HP before rolling", out.HitPointsRecovered).
		AddDelta("Hit dice before rolling", out.HitDicePreRecovered)

	if out.AutoSpend != nil && out.AutoSpend.DiceSpent > 0 {
		embed.AddField("Hit dice spent",
			fmt.Sprintf("%d for %d HP", out.AutoSpend.DiceSpent, out.AutoSpend.HitPointsHealed), true)
	}
	if !out.NewDay {
		embed.Footer("Daily uses were not restored")
	}

	return embed.Build()
}
