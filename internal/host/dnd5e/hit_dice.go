package dnd5e

import (
	"context"
	"log"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// RollHitDie spends one hit die and heals by the roll plus the constitution
// bonus, never less than 0. A denomination of 0 picks the largest die left.
func (h *Host) RollHitDie(ctx context.Context, c *character.Character, denomination int) (*rest.HitDieRoll, error) {
	if c == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}

	class := pickClass(c, denomination)
	if class == nil {
		if denomination == 0 {
			return nil, dnderr.InvalidArgumentf("%s has no hit dice remaining", c.Name).
				WithMeta("character_id", c.ID)
		}
		return nil, dnderr.InvalidArgumentf("%s has no d%d hit dice remaining", c.Name, denomination).
			WithMeta("character_id", c.ID)
	}

	denomination = class.HitDice.Denomination
	result, err := h.roller.Roll(1, denomination, c.ConstitutionBonus)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll hit die").
			WithMeta("character_id", c.ID)
	}

	healing := result.Total
	if healing < 0 {
		healing = 0
	}

	roll := &rest.HitDieRoll{
		Denomination: denomination,
		Roll:         result.RawTotal,
		Bonus:        result.Bonus,
	}
	err = h.commit(ctx, c, func(clone *character.Character) error {
		clone.Item(class.ID).HitDice.Used++
		roll.Healed = clone.HP.Heal(healing)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Host: %s rolled d%d: %d%+d, healed %d", c.ID, denomination, roll.Roll, roll.Bonus, roll.Healed)
	return roll, nil
}

// AutoSpendHitDice rolls the largest hit die left until missing hit points are
// at or below threshold or the dice run out
func (h *Host) AutoSpendHitDice(ctx context.Context, c *character.Character, threshold int) (*rest.AutoSpendResult, error) {
	if c == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}

	result := &rest.AutoSpendResult{}
	for c.HP.Missing() > threshold && c.HitDice() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, dnderr.Wrap(err, "hit dice auto spend interrupted").
				WithMeta("character_id", c.ID)
		}

		roll, err := h.RollHitDie(ctx, c, 0)
		if err != nil {
			return nil, err
		}

		result.DiceSpent++
		result.HitPointsHealed += roll.Healed
		result.Rolls = append(result.Rolls, roll)
	}

	return result, nil
}

// pickClass finds a class with an unspent die of the given size, or the
// largest one when denomination is 0
func pickClass(c *character.Character, denomination int) *character.Item {
	for _, class := range c.Classes() {
		if class.HitDice.Remaining() == 0 {
			continue
		}
		if denomination == 0 || class.HitDice.Denomination == denomination {
			return class
		}
	}
	return nil
}
