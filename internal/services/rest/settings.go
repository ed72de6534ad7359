package rest

import (
	"context"
	"log"

	restrules "github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/events"
)

func (s *service) Settings(ctx context.Context) (restrules.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return restrules.Settings{}, dnderr.Wrap(err, "failed to load recovery settings")
	}
	return current, nil
}

// UpdateSetting refuses values a rest could not resolve, so a stored setting
// never breaks the next rest
func (s *service) UpdateSetting(ctx context.Context, key, value string) (restrules.Settings, error) {
	current, err := s.Settings(ctx)
	if err != nil {
		return restrules.Settings{}, err
	}

	updated, err := current.With(key, value)
	if err != nil {
		return restrules.Settings{}, err
	}
	if err := updated.Validate(); err != nil {
		return restrules.Settings{}, err
	}

	if err := s.settingsRepo.Set(ctx, key, value); err != nil {
		return restrules.Settings{}, dnderr.Wrapf(err, "failed to store setting %s", key).
			WithMeta("setting", key)
	}
	log.Printf("RestService: setting %s = %s", key, value)

	if err := s.bus.Emit(events.NewSettingChangedEvent(key, value)); err != nil {
		log.Printf("RestService: setting listener failed for %s: %v", key, err)
	}

	return updated, nil
}

func (s *service) ResetSettings(ctx context.Context) error {
	if err := s.settingsRepo.Reset(ctx); err != nil {
		return dnderr.Wrap(err, "failed to reset recovery settings")
	}
	log.Printf("RestService: settings reset to defaults")
	return nil
}
