package dnd5e

import (
	"context"
	"log"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/events"
)

// FinalizeRest gathers every recovery batch from the configured recoverers,
// applies them in one write and announces the result
func (h *Host) FinalizeRest(ctx context.Context, c *character.Character, input *FinalizeInput) (*rest.RestResult, error) {
	if c == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}
	if input == nil {
		return nil, dnderr.InvalidArgument("finalize input is required")
	}

	updates := character.Updates{}
	var itemUpdates []character.ItemUpdate
	dhd, dhp := input.DeltaHitDice, input.DeltaHitPoints

	if input.LongRest {
		hp := h.recoverers.HitPoints.RecoverHitPoints(c, rest.HitPointOptions{RecoverTemp: true, RecoverTempMax: true})
		updates = updates.Merge(hp.Updates)
		dhp += hp.HitPointsRecovered

		hd := h.recoverers.HitDice.RecoverHitDice(c, rest.HitDiceOptions{Mode: rest.HitDiceModeNormal})
		itemUpdates = append(itemUpdates, hd.Updates...)
		dhd += hd.HitDiceRecovered
	}

	updates = updates.Merge(h.recoverers.Resources.RecoverResources(c, rest.ResourceOptions{
		RecoverShortRestResources: true,
		RecoverLongRestResources:  input.LongRest,
	}))
	updates = updates.Merge(h.recoverers.Spells.RecoverSpells(c, rest.SpellOptions{
		RecoverPact:   true,
		RecoverSpells: input.LongRest,
	}))
	itemUpdates = append(itemUpdates, h.recoverers.ItemUses.RecoverItemUses(c, rest.ItemUsesOptions{
		RecoverShortRestUses: true,
		RecoverLongRestUses:  input.LongRest,
		RecoverDailyUses:     input.NewDay,
	})...)

	err := h.commit(ctx, c, func(clone *character.Character) error {
		if err := clone.Apply(updates); err != nil {
			return err
		}
		return clone.ApplyItemUpdates(itemUpdates)
	})
	if err != nil {
		return nil, err
	}

	result := &rest.RestResult{
		ID:             h.uuidGenerator.New(),
		CharacterID:    c.ID,
		LongRest:       input.LongRest,
		NewDay:         input.NewDay,
		DeltaHitDice:   dhd,
		DeltaHitPoints: dhp,
		Updates:        updates,
		ItemUpdates:    itemUpdates,
	}
	log.Printf("Host: rest %s finalized for %s (long=%t newDay=%t dHD=%d dHP=%d)",
		result.ID, c.ID, result.LongRest, result.NewDay, dhd, dhp)

	if h.bus != nil {
		completed := events.NewLongRestCompletedEvent(c, result, input.Chat)
		completed.Origin = input.Origin
		if err := h.bus.Emit(completed); err != nil {
			// The rest is already stored; a failing listener must not undo it
			log.Printf("Host: rest %s completed but a listener failed: %v", result.ID, err)
		}
	}

	return result, nil
}

// FinalizeInput is re-exported so callers of the host need not import rest
type FinalizeInput = rest.FinalizeInput
