package rest

import (
	"log"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// Overrides replaces the host's full long rest recovery with the configured
// fractions. It implements every recoverer interface and delegates to the
// host defaults where the host keeps ownership (pact slots, short rest uses,
// hit dice pool selection).
type Overrides struct {
	settings Settings
	mult     *Multipliers
	defaults Recoverers
}

// NewOverrides resolves the settings and wraps the host defaults.
// An unparseable setting fails here, before any rest work starts.
func NewOverrides(settings Settings, defaults Recoverers) (*Overrides, error) {
	if defaults.HitPoints == nil || defaults.HitDice == nil || defaults.Resources == nil ||
		defaults.Spells == nil || defaults.ItemUses == nil {
		return nil, dnderr.InvalidArgument("all default recoverers are required")
	}

	mult, err := settings.Resolve()
	if err != nil {
		return nil, err
	}

	log.Printf("LongRest: recovery multipliers hp=%.2f hd=%.2f (%s) resources=%.2f spells=%.2f uses=%.2f/%.2f day=%.2f",
		mult.HitPoints, mult.HitDice, mult.Rounding, mult.Resources, mult.Spells, mult.OtherUses, mult.FeatUses, mult.DailyUses)

	return &Overrides{
		settings: settings,
		mult:     mult,
		defaults: defaults,
	}, nil
}

// Recoverers returns the override set to hand to a rest finalizer
func (o *Overrides) Recoverers() Recoverers {
	return Recoverers{
		HitPoints: o,
		HitDice:   o,
		Resources: o,
		Spells:    o,
		ItemUses:  o,
	}
}

// Settings returns the settings the overrides were built from
func (o *Overrides) Settings() Settings {
	return o.settings
}

// Multipliers returns the resolved multipliers
func (o *Overrides) Multipliers() Multipliers {
	return *o.mult
}
