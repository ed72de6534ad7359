package character_test

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newCharacter() *character.Character {
	return &character.Character{
		ID:    "char-1",
		Name:  "Mirela",
		Level: 5,
		HP:    character.HitPoints{Value: 10, Max: 30, Temp: 4, TempMax: 2},
		Resources: map[string]*character.Resource{
			"primary": {Label: "Ki", Value: 1, Max: intPtr(5), ShortRest: true},
		},
		Spells: map[string]*character.SpellSlot{
			"spell1": {Value: 0, Max: 4},
		},
		Items: []*character.Item{
			{ID: "wizard", Type: character.ItemTypeClass, HitDice: &character.ClassHitDice{Denomination: 6, Levels: 2, Used: 1}},
			{ID: "monk", Type: character.ItemTypeClass, HitDice: &character.ClassHitDice{Denomination: 8, Levels: 3, Used: 3}},
			{ID: "wand", Type: character.ItemTypeEquipment, Uses: &character.Uses{Value: 0, Max: 7, Per: character.RecoveryPeriodDay}},
			{ID: "breath", Type: character.ItemTypeFeat, Recharge: &character.Recharge{Value: 5}},
		},
	}
}

func TestHitPoints_Heal(t *testing.T) {
	hp := character.HitPoints{Value: 25, Max: 30}

	assert.Equal(t, 5, hp.Heal(8))
	assert.Equal(t, 30, hp.Value)
	assert.Equal(t, 0, hp.Heal(3))
	assert.Equal(t, 0, hp.Missing())
}

func TestCharacter_HitDice(t *testing.T) {
	c := newCharacter()

	assert.Equal(t, 1, c.HitDice())
	assert.Equal(t, 5, c.MaxHitDice())
}

func TestCharacter_ClassesLargestDieFirst(t *testing.T) {
	classes := newCharacter().Classes()

	require.Len(t, classes, 2)
	assert.Equal(t, "monk", classes[0].ID)
	assert.Equal(t, "wizard", classes[1].ID)
}

func TestCharacter_Apply(t *testing.T) {
	c := newCharacter()

	err := c.Apply(character.Updates{
		character.PathHPValue:             float64(20),
		character.PathHPTemp:              0,
		character.ResourcePath("primary"): 5,
		character.SpellPath("spell1"):     int64(2),
	})
	require.NoError(t, err)

	assert.Equal(t, 20, c.HP.Value)
	assert.Equal(t, 0, c.HP.Temp)
	assert.Equal(t, 2, c.HP.TempMax)
	assert.Equal(t, 5, c.Resources["primary"].Value)
	assert.Equal(t, 2, c.Spells["spell1"].Value)
}

func TestCharacter_ApplyRejectsWholeBatch(t *testing.T) {
	tests := []struct {
		name    string
		updates character.Updates
		check   func(error) bool
	}{
		{
			name: "unknown resource",
			updates: character.Updates{
				character.PathHPValue:               30,
				character.ResourcePath("secondary"): 1,
			},
			check: dnderr.IsNotFound,
		},
		{
			name: "unknown path",
			updates: character.Updates{
				character.PathHPValue: 30,
				"attributes.ac.value": 18,
			},
			check: dnderr.IsInvalidArgument,
		},
		{
			name: "not a number",
			updates: character.Updates{
				character.PathHPValue: "thirty",
			},
			check: dnderr.IsInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCharacter()

			err := c.Apply(tt.updates)
			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.Equal(t, 10, c.HP.Value)
		})
	}
}

func TestCharacter_ApplyItemUpdates(t *testing.T) {
	c := newCharacter()

	err := c.ApplyItemUpdates([]character.ItemUpdate{
		{ID: "monk", Fields: map[string]any{character.PathHitDiceUsed: 1}},
		{ID: "wand", Fields: map[string]any{character.PathUsesValue: 7}},
		{ID: "breath", Fields: map[string]any{character.PathRechargeCharged: true}},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, c.HitDice())
	assert.Equal(t, 7, c.Item("wand").Uses.Value)
	assert.True(t, c.Item("breath").Recharge.Charged)
}

func TestCharacter_ApplyItemUpdatesIsAllOrNothing(t *testing.T) {
	c := newCharacter()

	err := c.ApplyItemUpdates([]character.ItemUpdate{
		{ID: "monk", Fields: map[string]any{character.PathHitDiceUsed: 0}},
		{ID: "wand", Fields: map[string]any{character.PathHitDiceUsed: 0}},
	})
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
	assert.Equal(t, 3, c.Item("monk").HitDice.Used)

	err = c.ApplyItemUpdates([]character.ItemUpdate{
		{ID: "missing", Fields: map[string]any{character.PathUsesValue: 1}},
	})
	assert.True(t, dnderr.IsNotFound(err))
}

func TestCharacter_Clone(t *testing.T) {
	c := newCharacter()
	clone := c.Clone()

	clone.HP.Value = 1
	*clone.Resources["primary"].Max = 99
	clone.Spells["spell1"].Value = 4
	clone.Items[0].HitDice.Used = 0
	clone.Items[2].Uses.Value = 3

	assert.Equal(t, 10, c.HP.Value)
	assert.Equal(t, 5, *c.Resources["primary"].Max)
	assert.Equal(t, 0, c.Spells["spell1"].Value)
	assert.Equal(t, 1, c.Items[0].HitDice.Used)
	assert.Equal(t, 0, c.Items[2].Uses.Value)
}

func TestCharacter_NilEntries(t *testing.T) {
	doc := `{
		"id": "char-2",
		"level": 3,
		"hp": {"value": 4, "max": 20},
		"resources": {"primary": null, "secondary": {"label": "Rage", "value": 0, "max": 2, "lr": true}},
		"spells": {"spell1": null},
		"items": [null, {"id": "barbarian", "type": "class", "hit_dice": {"denomination": 12, "levels": 3, "used": 1}}]
	}`
	var c character.Character
	require.NoError(t, json.Unmarshal([]byte(doc), &c))

	assert.Equal(t, 2, c.HitDice())
	require.Len(t, c.Classes(), 1)
	assert.Equal(t, "barbarian", c.Classes()[0].ID)
	assert.Nil(t, c.Item("missing"))
	assert.NotNil(t, c.Item("barbarian"))

	clone := c.Clone()
	require.NotNil(t, clone)
	assert.Nil(t, clone.Resources["primary"])
	assert.Nil(t, clone.Spells["spell1"])
	assert.Nil(t, clone.Items[0])
	assert.Equal(t, 2, *clone.Resources["secondary"].Max)

	err := c.Apply(character.Updates{character.ResourcePath("primary"): 1})
	assert.True(t, dnderr.IsNotFound(err))
	err = c.Apply(character.Updates{character.SpellPath("spell1"): 1})
	assert.True(t, dnderr.IsNotFound(err))
}

func TestUpdates_Merge(t *testing.T) {
	var u character.Updates
	merged := u.Merge(character.Updates{character.PathHPValue: 3})
	merged = merged.Merge(character.Updates{character.PathHPValue: 5, character.PathHPTemp: 0})

	assert.Equal(t, character.Updates{character.PathHPValue: 5, character.PathHPTemp: 0}, merged)
}
