package rest

import (
	"context"
	"log"
	"sync"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	restrules "github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/events"
	"github.com/KirkDiggler/dnd-long-rest/internal/host/dnd5e"
	"github.com/KirkDiggler/dnd-long-rest/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-long-rest/internal/repositories/settings"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockrestservice -source=service.go

// Service runs long rests for stored characters and manages the recovery settings
type Service interface {
	// LongRest runs a long rest on one character
	LongRest(ctx context.Context, input *LongRestInput) (*LongRestOutput, error)

	// PartyLongRest rests several characters at once without a dialog
	PartyLongRest(ctx context.Context, input *PartyLongRestInput) (*PartyLongRestOutput, error)

	// Settings returns the effective recovery settings
	Settings(ctx context.Context) (restrules.Settings, error)

	// UpdateSetting validates and stores one setting, returning the new settings
	UpdateSetting(ctx context.Context, key, value string) (restrules.Settings, error)

	// ResetSettings drops every stored setting
	ResetSettings(ctx context.Context) error
}

// LongRestInput identifies the character and the rest options
type LongRestInput struct {
	CharacterID string
	// OwnerID, when set, must own the character
	OwnerID string
	Chat    bool
	Dialog  bool
	NewDay  bool
	// Origin is handed to the completion and abort events
	Origin string
	// Confirmer replaces the service confirmer for this rest
	Confirmer restrules.Confirmer
}

// LongRestOutput is the rested character and how the rest went
type LongRestOutput struct {
	Character *character.Character
	Rest      *restrules.LongRestOutput
}

// PartyLongRestInput lists the characters to rest together
type PartyLongRestInput struct {
	CharacterIDs []string
	Chat         bool
	NewDay       bool
}

// PartyLongRestOutput holds one output per character ID
type PartyLongRestOutput struct {
	Results map[string]*LongRestOutput
}

type service struct {
	characterRepo characters.Repository
	settingsRepo  settings.Repository
	host          *dnd5e.Host
	bus           *events.Bus
	confirmer     restrules.Confirmer
	variant       restrules.Variant
	moduleEnabled bool

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	CharacterRepo characters.Repository // Required
	SettingsRepo  settings.Repository   // Required
	Host          *dnd5e.Host           // Required
	Bus           *events.Bus
	Confirmer     restrules.Confirmer
	Variant       restrules.Variant
	// ModuleEnabled switches fractional recovery on; off runs the stock rest
	ModuleEnabled bool
}

// NewService creates a new rest service
func NewService(cfg *ServiceConfig) Service {
	if cfg.CharacterRepo == nil {
		panic("character repository is required")
	}
	if cfg.SettingsRepo == nil {
		panic("settings repository is required")
	}
	if cfg.Host == nil {
		panic("host is required")
	}

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
	}

	return &service{
		characterRepo: cfg.CharacterRepo,
		settingsRepo:  cfg.SettingsRepo,
		host:          cfg.Host,
		bus:           bus,
		confirmer:     cfg.Confirmer,
		variant:       cfg.Variant,
		moduleEnabled: cfg.ModuleEnabled,
		locks:         make(map[string]*sync.Mutex),
	}
}

// lock serializes rests of one character
func (s *service) lock(characterID string) func() {
	s.mu.Lock()
	l, ok := s.locks[characterID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[characterID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// LongRest loads the character, lets listeners veto and runs the rest
func (s *service) LongRest(ctx context.Context, input *LongRestInput) (*LongRestOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	unlock := s.lock(input.CharacterID)
	defer unlock()

	char, err := s.characterRepo.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get character '%s'", input.CharacterID).
			WithMeta("character_id", input.CharacterID)
	}
	if input.OwnerID != "" && char.OwnerID != input.OwnerID {
		return nil, dnderr.InvalidArgumentf("character '%s' does not belong to you", char.Name).
			WithMeta("character_id", char.ID).
			WithMeta("owner_id", input.OwnerID)
	}

	restInput := &restrules.LongRestInput{
		Origin: input.Origin,
		Chat:   input.Chat,
		Dialog: input.Dialog,
		NewDay: input.NewDay,
	}

	before := events.NewBeforeLongRestEvent(char, restInput)
	if err := s.bus.Emit(before); err != nil {
		return nil, dnderr.Wrap(err, "before long rest listener failed").
			WithMeta("character_id", char.ID)
	}
	if before.IsCancelled() {
		log.Printf("RestService: long rest of %s vetoed: %s", char.ID, before.Reason)
		return nil, dnderr.Newf(dnderr.CodeCancelled, "long rest prevented: %s", before.Reason).
			WithMeta("character_id", char.ID)
	}

	confirmer := input.Confirmer
	if confirmer == nil {
		confirmer = s.confirmer
	}

	out, err := s.run(ctx, char, restInput, confirmer)
	if err != nil {
		return nil, err
	}

	if out.Aborted() {
		aborted := events.NewLongRestAbortedEvent(char, out)
		aborted.Chat = input.Chat
		aborted.Origin = input.Origin
		if err := s.bus.Emit(aborted); err != nil {
			log.Printf("RestService: abort listener failed for %s: %v", char.ID, err)
		}
	}

	return &LongRestOutput{Character: char, Rest: out}, nil
}

func (s *service) run(ctx context.Context, char *character.Character, input *restrules.LongRestInput, confirmer restrules.Confirmer) (*restrules.LongRestOutput, error) {
	if !s.moduleEnabled {
		log.Printf("RestService: fractional recovery disabled, running the stock long rest for %s", char.ID)
		return s.host.WithConfirmer(confirmer).LongRest(ctx, char, input)
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load recovery settings")
	}

	overrides, err := restrules.NewOverrides(current, dnd5e.DefaultRecoverers())
	if err != nil {
		return nil, err
	}

	orchestrator, err := restrules.NewOrchestrator(&restrules.OrchestratorConfig{
		Host:      s.host.WithRecoverers(overrides.Recoverers()),
		Overrides: overrides,
		Confirmer: confirmer,
		Variant:   s.variant,
	})
	if err != nil {
		return nil, err
	}

	return orchestrator.LongRest(ctx, char, input)
}

// PartyLongRest rests distinct characters concurrently. The first failure
// cancels the rests that have not finished.
func (s *service) PartyLongRest(ctx context.Context, input *PartyLongRestInput) (*PartyLongRestOutput, error) {
	if input == nil || len(input.CharacterIDs) == 0 {
		return nil, dnderr.InvalidArgument("at least one character is required")
	}

	seen := make(map[string]bool, len(input.CharacterIDs))
	for _, id := range input.CharacterIDs {
		if seen[id] {
			return nil, dnderr.InvalidArgumentf("character '%s' is listed twice", id).
				WithMeta("character_id", id)
		}
		seen[id] = true
	}

	var mu sync.Mutex
	results := make(map[string]*LongRestOutput, len(input.CharacterIDs))

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range input.CharacterIDs {
		id := id
		g.Go(func() error {
			out, err := s.LongRest(gctx, &LongRestInput{
				CharacterID: id,
				Chat:        input.Chat,
				NewDay:      input.NewDay,
			})
			if err != nil {
				return err
			}

			mu.Lock()
			results[id] = out
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, dnderr.Wrap(err, "party long rest failed")
	}

	log.Printf("RestService: party of %d rested", len(results))
	return &PartyLongRestOutput{Results: results}, nil
}
