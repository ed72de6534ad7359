package settings

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// InMemoryRepository keeps settings for the life of the process
type InMemoryRepository struct {
	mu       sync.RWMutex
	defaults rest.Settings
	stored   map[string]string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(defaults rest.Settings) Repository {
	return &InMemoryRepository{
		defaults: defaults,
		stored:   make(map[string]string),
	}
}

func (r *InMemoryRepository) Get(ctx context.Context) (rest.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings := r.defaults
	for _, key := range rest.SettingKeys {
		value, ok := r.stored[key]
		if !ok {
			continue
		}

		var err error
		settings, err = settings.With(key, value)
		if err != nil {
			return rest.Settings{}, err
		}
	}
	return settings, nil
}

func (r *InMemoryRepository) Set(ctx context.Context, key, value string) error {
	if !isKnownKey(key) {
		return dnderr.InvalidArgumentf("unknown setting '%s'", key).
			WithMeta("setting", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored[key] = value
	return nil
}

func (r *InMemoryRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored = make(map[string]string)
	return nil
}
