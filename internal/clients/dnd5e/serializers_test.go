package dnd5e

import (
	"testing"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
)

func TestApiClassToClass(t *testing.T) {
	class := apiClassToClass(&apiEntities.Class{Key: "fighter", Name: "Fighter", HitDie: 10})
	assert.Equal(t, &Class{Key: "fighter", Name: "Fighter", HitDie: 10}, class)

	assert.Equal(t, &Class{}, apiClassToClass(nil))
}

func TestApiReferenceItemsToClasses(t *testing.T) {
	classes := apiReferenceItemsToClasses([]*apiEntities.ReferenceItem{
		{Key: "wizard", Name: "Wizard"},
		nil,
		{Key: "barbarian", Name: "Barbarian"},
	})

	assert.Equal(t, []*Class{
		{Key: "wizard", Name: "Wizard"},
		{Key: "barbarian", Name: "Barbarian"},
	}, classes)
}
