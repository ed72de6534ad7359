package character

import (
	"sort"
	"time"
)

// Character is the sheet a long rest operates on. It is owned and persisted by
// the character repository; the rest rules only read it and propose updates.
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Level   int    `json:"level"`

	HP HitPoints `json:"hp"`

	// ConstitutionBonus is added to every hit die rolled for healing
	ConstitutionBonus int `json:"constitution_bonus"`

	Resources map[string]*Resource  `json:"resources"`
	Spells    map[string]*SpellSlot `json:"spells"`
	Items     []*Item               `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HitPoints tracks current, maximum and temporary hit points
type HitPoints struct {
	Value   int `json:"value"`
	Max     int `json:"max"`
	Temp    int `json:"temp"`
	TempMax int `json:"tempmax"`
}

// Missing returns how many hit points are needed to reach max
func (hp HitPoints) Missing() int {
	if hp.Value >= hp.Max {
		return 0
	}
	return hp.Max - hp.Value
}

// Heal restores hit points up to max and returns the amount actually healed
func (hp *HitPoints) Heal(amount int) int {
	if amount <= 0 || hp.Value >= hp.Max {
		return 0
	}

	old := hp.Value
	hp.Value += amount
	if hp.Value > hp.Max {
		hp.Value = hp.Max
	}

	return hp.Value - old
}

// Resource is a generic pool on the sheet (ki points, sorcery points, ...)
type Resource struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	// Max is nil when the sheet holds no numeric maximum for the pool
	Max       *int `json:"max,omitempty"`
	ShortRest bool `json:"sr"`
	LongRest  bool `json:"lr"`
}

// SpellSlot tracks the slots of one spell level, or the pact slots
type SpellSlot struct {
	Value    int `json:"value"`
	Max      int `json:"max"`
	Override int `json:"override,omitempty"`
}

// EffectiveMax is the override when one is set, otherwise the max
func (s *SpellSlot) EffectiveMax() int {
	if s.Override != 0 {
		return s.Override
	}
	return s.Max
}

// HitDice returns the number of unspent hit dice across all class items
func (c *Character) HitDice() int {
	total := 0
	for _, item := range c.Items {
		if item == nil || item.HitDice == nil {
			continue
		}
		total += item.HitDice.Remaining()
	}
	return total
}

// MaxHitDice is the hit dice capacity, one die per character level
func (c *Character) MaxHitDice() int {
	return c.Level
}

// Item finds an owned item by id
func (c *Character) Item(id string) *Item {
	for _, item := range c.Items {
		if item != nil && item.ID == id {
			return item
		}
	}
	return nil
}

// Classes returns the class items ordered by hit die size, largest first
func (c *Character) Classes() []*Item {
	var classes []*Item
	for _, item := range c.Items {
		if item != nil && item.HitDice != nil {
			classes = append(classes, item)
		}
	}

	sort.SliceStable(classes, func(i, j int) bool {
		return classes[i].HitDice.Denomination > classes[j].HitDice.Denomination
	})
	return classes
}

// Clone returns a deep copy so callers can mutate without touching the original.
// Nil entries stored on the sheet are copied as nil.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := *c

	if c.Resources != nil {
		clone.Resources = make(map[string]*Resource, len(c.Resources))
		for key, r := range c.Resources {
			if r == nil {
				clone.Resources[key] = nil
				continue
			}
			rc := *r
			if r.Max != nil {
				m := *r.Max
				rc.Max = &m
			}
			clone.Resources[key] = &rc
		}
	}

	if c.Spells != nil {
		clone.Spells = make(map[string]*SpellSlot, len(c.Spells))
		for key, s := range c.Spells {
			if s == nil {
				clone.Spells[key] = nil
				continue
			}
			sc := *s
			clone.Spells[key] = &sc
		}
	}

	if c.Items != nil {
		clone.Items = make([]*Item, len(c.Items))
		for i, item := range c.Items {
			clone.Items[i] = item.clone()
		}
	}

	return &clone
}
