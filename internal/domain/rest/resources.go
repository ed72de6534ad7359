package rest

import (
	"math"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
)

// RecoverResources computes resource pool updates. Short rest pools are reset
// in full whenever requested; long rest pools get the fraction, at least one.
func RecoverResources(resources map[string]*character.Resource, opts ResourceOptions, m float64) character.Updates {
	updates := character.Updates{}
	for key, r := range resources {
		if r == nil || r.Max == nil {
			continue
		}
		limit := *r.Max

		switch {
		case opts.RecoverShortRestResources && r.ShortRest:
			updates[character.ResourcePath(key)] = limit
		case opts.RecoverLongRestResources && r.LongRest && m > 0:
			updates[character.ResourcePath(key)] = restore(r.Value, limit, m)
		}
	}
	return updates
}

// RecoverResources replaces the host routine outright
func (o *Overrides) RecoverResources(c *character.Character, opts ResourceOptions) character.Updates {
	return RecoverResources(c.Resources, opts, o.mult.Resources)
}

// restore adds max(floor(limit*m), 1) to value without passing limit
func restore(value, limit int, m float64) int {
	recovered := int(math.Floor(float64(limit) * m))
	if recovered < 1 {
		recovered = 1
	}

	next := value + recovered
	if next > limit {
		next = limit
	}
	return next
}
