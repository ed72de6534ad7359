package rest

import (
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
)

// UseMultipliers are the multipliers for limited use items
type UseMultipliers struct {
	Feat  float64
	Other float64
	Daily float64
}

// RecoverItemUses computes long rest and daily use recovery over the owned items.
// Items with a recharge but no uses are always recharged on a long rest.
func RecoverItemUses(items []*character.Item, opts ItemUsesOptions, m UseMultipliers) []character.ItemUpdate {
	var updates []character.ItemUpdate
	for _, item := range items {
		if item == nil {
			continue
		}

		switch {
		case item.Uses != nil:
			mult, ok := useMultiplier(item, opts, m)
			if !ok || mult == 0 {
				continue
			}
			updates = append(updates, character.ItemUpdate{
				ID: item.ID,
				Fields: map[string]any{
					character.PathUsesValue: restore(item.Uses.Value, item.Uses.Max, mult),
				},
			})
		case opts.RecoverLongRestUses && item.Recharge != nil && item.Recharge.Value != 0:
			updates = append(updates, character.ItemUpdate{
				ID: item.ID,
				Fields: map[string]any{
					character.PathRechargeCharged: true,
				},
			})
		}
	}
	return updates
}

func useMultiplier(item *character.Item, opts ItemUsesOptions, m UseMultipliers) (float64, bool) {
	switch {
	case opts.RecoverLongRestUses && item.Uses.Per == character.RecoveryPeriodLongRest:
		if item.IsFeat() {
			return m.Feat, true
		}
		return m.Other, true
	case opts.RecoverDailyUses && item.Uses.Per == character.RecoveryPeriodDay:
		return m.Daily, true
	}
	return 0, false
}

// RecoverItemUses keeps the host's short rest handling and recomputes the long
// rest and daily periods
func (o *Overrides) RecoverItemUses(c *character.Character, opts ItemUsesOptions) []character.ItemUpdate {
	updates := o.defaults.ItemUses.RecoverItemUses(c, ItemUsesOptions{
		RecoverShortRestUses: opts.RecoverShortRestUses,
	})

	return append(updates, RecoverItemUses(c.Items, opts, UseMultipliers{
		Feat:  o.mult.FeatUses,
		Other: o.mult.OtherUses,
		Daily: o.mult.DailyUses,
	})...)
}
