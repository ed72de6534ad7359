package rest

import (
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
)

//go:generate mockgen -destination=mock/mock_recovery.go -package=mockrest -source=recovery.go

// HitPointOptions controls temporary hit point handling during recovery
type HitPointOptions struct {
	RecoverTemp    bool
	RecoverTempMax bool
}

// HitPointResult is the update batch for hit points
type HitPointResult struct {
	Updates            character.Updates
	HitPointsRecovered int
}

// HitPointRecoverer computes hit point recovery for a rest
type HitPointRecoverer interface {
	RecoverHitPoints(c *character.Character, opts HitPointOptions) HitPointResult
}

// HitDiceMode tells the hit dice routine which call site is asking
type HitDiceMode int

const (
	// HitDiceModeNormal is the call made while finalizing a rest
	HitDiceModeNormal HitDiceMode = iota
	// HitDiceModePreRecovery is the call made before the player rolls hit dice
	HitDiceModePreRecovery
)

func (m HitDiceMode) String() string {
	if m == HitDiceModePreRecovery {
		return "pre-recovery"
	}
	return "normal"
}

// HitDiceOptions parameterizes hit dice recovery
type HitDiceOptions struct {
	// MaxHitDice caps the dice recovered; 0 means no explicit cap
	MaxHitDice int
	Mode       HitDiceMode
}

// HitDiceResult is the item update batch for hit dice pools
type HitDiceResult struct {
	Updates          []character.ItemUpdate
	HitDiceRecovered int
}

// HitDiceRecoverer computes hit dice recovery for a rest
type HitDiceRecoverer interface {
	RecoverHitDice(c *character.Character, opts HitDiceOptions) HitDiceResult
}

// ResourceOptions selects which resource pools are recovered
type ResourceOptions struct {
	RecoverShortRestResources bool
	RecoverLongRestResources  bool
}

// ResourceRecoverer computes resource recovery for a rest
type ResourceRecoverer interface {
	RecoverResources(c *character.Character, opts ResourceOptions) character.Updates
}

// SpellOptions selects pact and regular slot recovery
type SpellOptions struct {
	RecoverPact   bool
	RecoverSpells bool
}

// SpellRecoverer computes spell slot recovery for a rest
type SpellRecoverer interface {
	RecoverSpells(c *character.Character, opts SpellOptions) character.Updates
}

// ItemUsesOptions selects which recovery periods come back
type ItemUsesOptions struct {
	RecoverShortRestUses bool
	RecoverLongRestUses  bool
	RecoverDailyUses     bool
}

// ItemUsesRecoverer computes limited use and recharge recovery for a rest
type ItemUsesRecoverer interface {
	RecoverItemUses(c *character.Character, opts ItemUsesOptions) []character.ItemUpdate
}

// Recoverers is the set of recovery routines a rest finalizer runs
type Recoverers struct {
	HitPoints HitPointRecoverer
	HitDice   HitDiceRecoverer
	Resources ResourceRecoverer
	Spells    SpellRecoverer
	ItemUses  ItemUsesRecoverer
}
