package character

// ItemType is the sheet category of an owned item
type ItemType string

const (
	ItemTypeFeat       ItemType = "feat"
	ItemTypeClass      ItemType = "class"
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeEquipment  ItemType = "equipment"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeSpell      ItemType = "spell"
	ItemTypeTool       ItemType = "tool"
	ItemTypeLoot       ItemType = "loot"
)

// RecoveryPeriod says when an item's limited uses come back
type RecoveryPeriod string

const (
	RecoveryPeriodShortRest RecoveryPeriod = "sr"
	RecoveryPeriodLongRest  RecoveryPeriod = "lr"
	RecoveryPeriodDay       RecoveryPeriod = "day"
	RecoveryPeriodCharges   RecoveryPeriod = "charges"
)

// Item is anything a character owns: feats, class levels, gear
type Item struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type ItemType `json:"type"`

	Uses     *Uses         `json:"uses,omitempty"`
	Recharge *Recharge     `json:"recharge,omitempty"`
	HitDice  *ClassHitDice `json:"hit_dice,omitempty"`
}

// Uses is a limited-use descriptor
type Uses struct {
	Value int            `json:"value"`
	Max   int            `json:"max"`
	Per   RecoveryPeriod `json:"per"`
}

// Recharge is a binary charged/uncharged capability (breath weapons and the like)
type Recharge struct {
	// Value is the d6 result that recharges the ability, 0 when unused
	Value   int  `json:"value"`
	Charged bool `json:"charged"`
}

// ClassHitDice is the hit dice pool contributed by a class item
type ClassHitDice struct {
	Denomination int `json:"denomination"` // 6, 8, 10, 12
	Levels       int `json:"levels"`
	Used         int `json:"used"`
}

// Remaining returns the unspent dice of this pool
func (h *ClassHitDice) Remaining() int {
	remaining := h.Levels - h.Used
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFeat reports whether the item is a feat
func (i *Item) IsFeat() bool {
	return i.Type == ItemTypeFeat
}

func (i *Item) clone() *Item {
	if i == nil {
		return nil
	}

	clone := *i
	if i.Uses != nil {
		u := *i.Uses
		clone.Uses = &u
	}
	if i.Recharge != nil {
		r := *i.Recharge
		clone.Recharge = &r
	}
	if i.HitDice != nil {
		h := *i.HitDice
		clone.HitDice = &h
	}
	return &clone
}
