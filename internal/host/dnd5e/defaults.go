package dnd5e

import (
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
)

// Rules is the stock 5e recovery: everything a rest touches comes back in full,
// except hit dice which return up to half the character's level.
type Rules struct{}

// DefaultRecoverers returns the stock rules for every recovery routine
func DefaultRecoverers() rest.Recoverers {
	rules := &Rules{}
	return rest.Recoverers{
		HitPoints: rules,
		HitDice:   rules,
		Resources: rules,
		Spells:    rules,
		ItemUses:  rules,
	}
}

// RecoverHitPoints restores hit points to max and optionally clears temp values
func (r *Rules) RecoverHitPoints(c *character.Character, opts rest.HitPointOptions) rest.HitPointResult {
	updates := character.Updates{
		character.PathHPValue: c.HP.Max,
	}
	if opts.RecoverTemp {
		updates[character.PathHPTemp] = 0
	}
	if opts.RecoverTempMax {
		updates[character.PathHPTempMax] = 0
	}

	return rest.HitPointResult{
		Updates:            updates,
		HitPointsRecovered: c.HP.Missing(),
	}
}

// RecoverHitDice returns spent dice to the class pools, largest die first.
// Without a cap it restores half the character's level, at least one.
func (r *Rules) RecoverHitDice(c *character.Character, opts rest.HitDiceOptions) rest.HitDiceResult {
	remaining := opts.MaxHitDice
	if remaining <= 0 {
		remaining = c.Level / 2
		if remaining < 1 {
			remaining = 1
		}
	}

	var result rest.HitDiceResult
	for _, class := range c.Classes() {
		if remaining == 0 {
			break
		}
		used := class.HitDice.Used
		if used <= 0 {
			continue
		}

		recovered := used
		if recovered > remaining {
			recovered = remaining
		}
		remaining -= recovered

		result.Updates = append(result.Updates, character.ItemUpdate{
			ID:     class.ID,
			Fields: map[string]any{character.PathHitDiceUsed: used - recovered},
		})
		result.HitDiceRecovered += recovered
	}

	return result
}

// RecoverResources resets flagged pools to their max
func (r *Rules) RecoverResources(c *character.Character, opts rest.ResourceOptions) character.Updates {
	updates := character.Updates{}
	for key, res := range c.Resources {
		if res == nil || res.Max == nil {
			continue
		}
		if (opts.RecoverShortRestResources && res.ShortRest) || (opts.RecoverLongRestResources && res.LongRest) {
			updates[character.ResourcePath(key)] = *res.Max
		}
	}
	return updates
}

// RecoverSpells fills pact slots and regular slots as requested
func (r *Rules) RecoverSpells(c *character.Character, opts rest.SpellOptions) character.Updates {
	updates := character.Updates{}
	for key, slot := range c.Spells {
		if slot == nil || slot.EffectiveMax() == 0 {
			continue
		}

		isPact := key == rest.PactSlotKey
		if (isPact && opts.RecoverPact) || (!isPact && opts.RecoverSpells) {
			updates[character.SpellPath(key)] = slot.EffectiveMax()
		}
	}
	return updates
}

// RecoverItemUses refills limited uses for the requested periods and recharges
// abilities on a long rest
func (r *Rules) RecoverItemUses(c *character.Character, opts rest.ItemUsesOptions) []character.ItemUpdate {
	var updates []character.ItemUpdate
	for _, item := range c.Items {
		if item == nil {
			continue
		}

		if item.Uses != nil {
			per := item.Uses.Per
			if (opts.RecoverShortRestUses && per == character.RecoveryPeriodShortRest) ||
				(opts.RecoverLongRestUses && per == character.RecoveryPeriodLongRest) ||
				(opts.RecoverDailyUses && per == character.RecoveryPeriodDay) {
				updates = append(updates, character.ItemUpdate{
					ID:     item.ID,
					Fields: map[string]any{character.PathUsesValue: item.Uses.Max},
				})
			}
			continue
		}

		if opts.RecoverLongRestUses && item.Recharge != nil && item.Recharge.Value != 0 {
			updates = append(updates, character.ItemUpdate{
				ID:     item.ID,
				Fields: map[string]any{character.PathRechargeCharged: true},
			})
		}
	}
	return updates
}
