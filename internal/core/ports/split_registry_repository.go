package ports

import (
	"context"

	"servicearea/internal/core/domain/model/split"
)

// SplitRegistryRepository defines the persistence contract for the global
// city-split province set.
type SplitRegistryRepository interface {
	// Get loads the current split registry.
	Get(ctx context.Context) (*split.Registry, error)

	// Save persists the registry's province set as a whole, replacing the
	// previously stored set.
	Save(ctx context.Context, registry *split.Registry) error
}
