package dnd5e

import (
	"context"
	"log"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// LongRest is the plain rules long rest used when fractional recovery is
// switched off. There is nothing to roll; the dialog only confirms and asks
// about the new day.
func (h *Host) LongRest(ctx context.Context, c *character.Character, input *rest.LongRestInput) (*rest.LongRestOutput, error) {
	if c == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}
	if input == nil {
		input = rest.DefaultLongRestInput()
	}

	out := &rest.LongRestOutput{State: rest.StateStart, Trail: []rest.State{rest.StateStart}}
	newDay := input.NewDay

	if input.Dialog {
		if h.confirmer == nil {
			return nil, dnderr.InvalidArgument("a confirmer is required for a long rest dialog").
				WithMeta("character_id", c.ID)
		}

		out.State = rest.StateAwaitingConfirmation
		out.Trail = append(out.Trail, rest.StateAwaitingConfirmation)

		confirmation, err := h.confirmer.ConfirmLongRest(ctx, &rest.ConfirmationRequest{
			Character:    c,
			PromptNewDay: h.variant.PromptNewDay(),
			NewDay:       h.variant.DefaultNewDay(),
		})
		if err != nil {
			if dnderr.IsCancelled(err) {
				log.Printf("Host: %s cancelled the long rest", c.ID)
				out.State = rest.StateAborted
				out.Trail = append(out.Trail, rest.StateAborted)
				return out, nil
			}
			return nil, dnderr.Wrap(err, "long rest confirmation failed").
				WithMeta("character_id", c.ID)
		}

		newDay = confirmation.NewDay
		if !h.variant.PromptNewDay() {
			newDay = true
		}
	}

	result, err := h.FinalizeRest(ctx, c, &FinalizeInput{
		Origin:   input.Origin,
		Chat:     input.Chat,
		NewDay:   newDay,
		LongRest: true,
	})
	if err != nil {
		return nil, err
	}

	out.NewDay = newDay
	out.Result = result
	out.State = rest.StateFinalized
	out.Trail = append(out.Trail, rest.StateFinalized)
	return out, nil
}
