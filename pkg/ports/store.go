package ports

import (
	"context"

	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

// ConfigStore persists screen definitions. The engine only consumes already
// resolved definitions; stores are free to keep them in memory, on disk or
// in Redis.
type ConfigStore interface {
	// Save persists a definition, replacing any existing one with the same name.
	Save(ctx context.Context, def *domain.ScreenDefinition) error
	// Get retrieves a definition by screen name.
	// Returns domain.ErrScreenNotFound if absent.
	Get(ctx context.Context, name string) (*domain.ScreenDefinition, error)
	// Delete removes a definition. Deleting an absent name is not an error.
	Delete(ctx context.Context, name string) error
	// List returns all known screen names.
	List(ctx context.Context) ([]string, error)
}
