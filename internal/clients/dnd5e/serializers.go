package dnd5e

import (
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

func apiReferenceItemToClass(apiClass *apiEntities.ReferenceItem) *Class {
	return &Class{
		Key:  apiClass.Key,
		Name: apiClass.Name,
	}
}

func apiReferenceItemsToClasses(input []*apiEntities.ReferenceItem) []*Class {
	output := make([]*Class, 0, len(input))
	for _, apiClass := range input {
		if apiClass == nil {
			continue
		}
		output = append(output, apiReferenceItemToClass(apiClass))
	}
	return output
}

func apiClassToClass(input *apiEntities.Class) *Class {
	if input == nil {
		return &Class{}
	}

	return &Class{
		Key:    input.Key,
		Name:   input.Name,
		HitDie: input.HitDie,
	}
}
