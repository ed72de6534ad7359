package settings

//go:generate mockgen -destination=mock/mock.go -package=mocksettings -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
)

// Repository stores the long rest recovery settings of a world. Values not
// stored fall back to the defaults the repository was built with.
type Repository interface {
	// Get returns the effective settings
	Get(ctx context.Context) (rest.Settings, error)

	// Set stores one setting by its persisted key
	Set(ctx context.Context, key, value string) error

	// Reset drops every stored value
	Reset(ctx context.Context) error
}

func isKnownKey(key string) bool {
	for _, k := range rest.SettingKeys {
		if k == key {
			return true
		}
	}
	return false
}
