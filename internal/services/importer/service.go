package importer

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/dnd-long-rest/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-long-rest/internal/uuid"
)

// ClassLevels is one class of a (possibly multiclassed) character
type ClassLevels struct {
	Key    string
	Levels int
}

// ImportInput describes the character to create
type ImportInput struct {
	OwnerID           string
	Name              string
	Classes           []ClassLevels
	ConstitutionBonus int
}

// Service builds character sheets from class levels, taking hit dice from the
// D&D 5e API
type Service struct {
	dndClient     dnd5e.Client
	repository    characters.Repository
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	DNDClient     dnd5e.Client          // Required
	Repository    characters.Repository // Required
	UUIDGenerator uuid.Generator
}

// NewService creates a new importer
func NewService(cfg *ServiceConfig) *Service {
	if cfg.DNDClient == nil {
		panic("dnd client is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &Service{
		dndClient:     cfg.DNDClient,
		repository:    cfg.Repository,
		uuidGenerator: gen,
	}
}

// Import creates and stores a rested character: full hit points and hit dice.
// Hit points follow the fixed value rule, max die at first level and the
// rounded-up average after.
func (s *Service) Import(ctx context.Context, input *ImportInput) (*character.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, dnderr.InvalidArgument("name is required")
	}
	if input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if len(input.Classes) == 0 {
		return nil, dnderr.InvalidArgument("at least one class is required")
	}

	char := &character.Character{
		ID:                s.uuidGenerator.New(),
		OwnerID:           input.OwnerID,
		Name:              strings.TrimSpace(input.Name),
		ConstitutionBonus: input.ConstitutionBonus,
		Resources:         map[string]*character.Resource{},
		Spells:            map[string]*character.SpellSlot{},
	}

	seen := map[string]bool{}
	for i, cl := range input.Classes {
		if cl.Levels < 1 {
			return nil, dnderr.InvalidArgumentf("class %s needs at least one level", cl.Key).
				WithMeta("class", cl.Key)
		}
		if seen[cl.Key] {
			return nil, dnderr.InvalidArgumentf("class %s is listed twice", cl.Key).
				WithMeta("class", cl.Key)
		}
		seen[cl.Key] = true

		class, err := s.dndClient.GetClass(cl.Key)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to look up class %s", cl.Key)
		}

		levels := cl.Levels
		if i == 0 {
			char.HP.Max += class.HitDie + input.ConstitutionBonus
			levels--
		}
		char.HP.Max += levels * (class.HitDie/2 + 1 + input.ConstitutionBonus)
		char.Level += cl.Levels

		char.Items = append(char.Items, &character.Item{
			ID:   class.Key,
			Name: class.Name,
			Type: character.ItemTypeClass,
			HitDice: &character.ClassHitDice{
				Denomination: class.HitDie,
				Levels:       cl.Levels,
			},
		})
	}

	if char.HP.Max < char.Level {
		char.HP.Max = char.Level
	}
	char.HP.Value = char.HP.Max

	if err := s.repository.Create(ctx, char); err != nil {
		return nil, dnderr.Wrap(err, "failed to store character")
	}

	log.Printf("Importer: created %s (%s) level %d with %d hit points", char.Name, char.ID, char.Level, char.HP.Max)
	return char, nil
}
