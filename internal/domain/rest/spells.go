package rest

import (
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
)

// PactSlotKey is the spell map entry holding pact magic slots
const PactSlotKey = "pact"

// RecoverSpellSlots restores a fraction of every non-pact spell level
func RecoverSpellSlots(spells map[string]*character.SpellSlot, m float64) character.Updates {
	updates := character.Updates{}
	if m == 0 {
		return updates
	}

	for key, slot := range spells {
		if key == PactSlotKey || slot == nil {
			continue
		}
		if slot.Override == 0 && slot.Max == 0 {
			continue
		}

		updates[character.SpellPath(key)] = restore(slot.Value, slot.EffectiveMax(), m)
	}
	return updates
}

// RecoverSpells lets the host handle pact slots and computes the rest itself
func (o *Overrides) RecoverSpells(c *character.Character, opts SpellOptions) character.Updates {
	updates := o.defaults.Spells.RecoverSpells(c, SpellOptions{
		RecoverPact:   opts.RecoverPact,
		RecoverSpells: false,
	})

	if !opts.RecoverSpells || o.mult.Spells == 0 {
		return updates
	}

	return character.Updates{}.Merge(updates).Merge(RecoverSpellSlots(c.Spells, o.mult.Spells))
}
