package dnd5e

import (
	"context"
	"log"

	"github.com/KirkDiggler/dnd-long-rest/internal/dice"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/events"
	"github.com/KirkDiggler/dnd-long-rest/internal/uuid"
)

// Store persists a character after every change the host makes
type Store interface {
	Update(ctx context.Context, char *character.Character) error
}

// Host is the 5e character engine. It applies update batches, rolls hit dice
// and runs the rest bookkeeping, persisting through its Store.
type Host struct {
	store         Store
	roller        dice.Roller
	bus           *events.Bus
	uuidGenerator uuid.Generator
	recoverers    rest.Recoverers
	confirmer     rest.Confirmer
	variant       rest.Variant
}

// Config holds configuration for the host
type Config struct {
	Store         Store // Required
	Roller        dice.Roller
	Bus           *events.Bus
	UUIDGenerator uuid.Generator
	// Recoverers used by FinalizeRest; nil means DefaultRecoverers
	Recoverers *rest.Recoverers
	// Confirmer is asked by the stock LongRest when a dialog is requested
	Confirmer rest.Confirmer
	Variant   rest.Variant
}

// New creates a host
func New(cfg *Config) *Host {
	if cfg == nil {
		panic("host config cannot be nil")
	}
	if cfg.Store == nil {
		panic("character store is required")
	}

	h := &Host{
		store:         cfg.Store,
		roller:        cfg.Roller,
		bus:           cfg.Bus,
		uuidGenerator: cfg.UUIDGenerator,
		recoverers:    DefaultRecoverers(),
		confirmer:     cfg.Confirmer,
		variant:       cfg.Variant,
	}
	if cfg.Recoverers != nil {
		h.recoverers = *cfg.Recoverers
	}
	if h.roller == nil {
		h.roller = dice.NewRandomRoller()
	}
	if h.uuidGenerator == nil {
		h.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if h.variant == "" {
		h.variant = rest.VariantNormal
	}

	return h
}

// WithRecoverers returns a copy of the host whose rests use r
func (h *Host) WithRecoverers(r rest.Recoverers) *Host {
	clone := *h
	clone.recoverers = r
	return &clone
}

// WithConfirmer returns a copy of the host whose stock long rest asks c
func (h *Host) WithConfirmer(c rest.Confirmer) *Host {
	clone := *h
	clone.confirmer = c
	return &clone
}

// UpdateCharacter implements rest.Host
func (h *Host) UpdateCharacter(ctx context.Context, c *character.Character, updates character.Updates) error {
	if len(updates) == 0 {
		return nil
	}
	return h.commit(ctx, c, func(clone *character.Character) error {
		return clone.Apply(updates)
	})
}

// UpdateItems implements rest.Host
func (h *Host) UpdateItems(ctx context.Context, c *character.Character, updates []character.ItemUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return h.commit(ctx, c, func(clone *character.Character) error {
		return clone.ApplyItemUpdates(updates)
	})
}

// commit mutates a copy, persists it and only then copies it back into c, so
// a failed write leaves c as it was
func (h *Host) commit(ctx context.Context, c *character.Character, mutate func(*character.Character) error) error {
	if c == nil {
		return dnderr.InvalidArgument("character is required")
	}

	clone := c.Clone()
	if err := mutate(clone); err != nil {
		return err
	}

	if err := h.store.Update(ctx, clone); err != nil {
		log.Printf("Host: failed to persist character %s: %v", c.ID, err)
		return dnderr.Wrap(err, "failed to persist character").
			WithMeta("character_id", c.ID)
	}

	*c = *clone
	return nil
}

var _ rest.Host = (*Host)(nil)
var _ rest.LongRester = (*Host)(nil)
