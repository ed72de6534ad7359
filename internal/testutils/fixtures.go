package testutils

import (
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
)

// CreateTestClass creates a class item holding a hit dice pool
func CreateTestClass(key string, hitDie, levels, used int) *character.Item {
	return &character.Item{
		ID:   key,
		Name: key,
		Type: character.ItemTypeClass,
		HitDice: &character.ClassHitDice{
			Denomination: hitDie,
			Levels:       levels,
			Used:         used,
		},
	}
}

// CreateTestCharacter creates a wounded level 5 fighter/wizard with spent resources
func CreateTestCharacter(id, ownerID, name string) *character.Character {
	secondWindMax := 1
	return &character.Character{
		ID:                id,
		OwnerID:           ownerID,
		Name:              name,
		Level:             5,
		HP:                character.HitPoints{Value: 9, Max: 44, Temp: 3},
		ConstitutionBonus: 2,
		Resources: map[string]*character.Resource{
			"primary": {Label: "Second Wind", Value: 0, Max: &secondWindMax, ShortRest: true},
		},
		Spells: map[string]*character.SpellSlot{
			"spell1": {Value: 0, Max: 3},
		},
		Items: []*character.Item{
			CreateTestClass("fighter", 10, 3, 3),
			CreateTestClass("wizard", 6, 2, 1),
			{
				ID:   "action-surge",
				Name: "Action Surge",
				Type: character.ItemTypeFeat,
				Uses: &character.Uses{Value: 0, Max: 1, Per: character.RecoveryPeriodShortRest},
			},
			{
				ID:   "wand-of-magic-missiles",
				Name: "Wand of Magic Missiles",
				Type: character.ItemTypeEquipment,
				Uses: &character.Uses{Value: 1, Max: 7, Per: character.RecoveryPeriodDay},
			},
		},
	}
}
