package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// GetByOwner retrieves all characters for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)

	// Update replaces an existing character
	Update(ctx context.Context, char *character.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}
