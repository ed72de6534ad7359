package rest

import (
	"math"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
)

// HitDiceToRecover returns how many hit dice a long rest restores out of total.
// A positive multiplier always restores at least one die; capOverride <= 0
// means the cap is total.
func HitDiceToRecover(total int, m float64, rounding Rounding, capOverride int) int {
	if m == 0 {
		return 0
	}

	raw := float64(total) * m
	var dice int
	if rounding == RoundingUp {
		dice = int(math.Ceil(raw))
	} else {
		dice = int(math.Floor(raw))
	}

	limit := total
	if capOverride > 0 {
		limit = capOverride
	}

	if dice < 1 {
		dice = 1
	}
	if dice > limit {
		dice = limit
	}
	return dice
}

// RecoverHitDice decides how many dice come back and lets the host pick the pools.
// While hit dice are pre-recovered, only the pre-recovery call does anything so
// the finalizing call cannot hand out a second batch.
func (o *Overrides) RecoverHitDice(c *character.Character, opts HitDiceOptions) HitDiceResult {
	capOverride := opts.MaxHitDice
	if o.settings.PreRecoverHitDice() {
		if opts.Mode != HitDiceModePreRecovery {
			return HitDiceResult{}
		}
		capOverride = 0
	}

	if o.mult.HitDice == 0 {
		return HitDiceResult{}
	}

	count := HitDiceToRecover(c.MaxHitDice(), o.mult.HitDice, o.mult.Rounding, capOverride)
	if count <= 0 {
		return HitDiceResult{}
	}

	return o.defaults.HitDice.RecoverHitDice(c, HitDiceOptions{
		MaxHitDice: count,
		Mode:       opts.Mode,
	})
}
