package rest

import (
	"math"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
)

// RecoverHitPoints restores a fraction of the missing hit points.
// With a zero multiplier there is nothing to write and the batch is nil.
func RecoverHitPoints(hp, maxHP int, m float64) (character.Updates, int) {
	if m == 0 {
		return nil, 0
	}

	missing := maxHP - hp
	if missing < 0 {
		missing = 0
	}

	recovered := int(math.Floor(float64(missing) * m))
	return character.Updates{
		character.PathHPValue: hp + recovered,
	}, recovered
}

// RecoverHitPoints wraps the host routine: temp hit point handling is kept,
// but current hit points are pinned because the long rest already restored
// its fraction before any dice were rolled.
func (o *Overrides) RecoverHitPoints(c *character.Character, opts HitPointOptions) HitPointResult {
	result := o.defaults.HitPoints.RecoverHitPoints(c, opts)

	updates := character.Updates{}.Merge(result.Updates)
	updates[character.PathHPValue] = c.HP.Value

	return HitPointResult{
		Updates:            updates,
		HitPointsRecovered: 0,
	}
}
