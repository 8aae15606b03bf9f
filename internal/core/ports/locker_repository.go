// Package ports defines repository and gateway interfaces for the locker
// laundry domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/locker"
)

// LockerRepository defines the persistence contract for locker site
// aggregates. A site is stored with its full compartment inventory and the
// occupancy flags the claim/release operations maintain.
type LockerRepository interface {
	// Add persists a new site aggregate to storage.
	// The site must be valid and not already exist in the repository.
	Add(ctx context.Context, site *locker.Site) error

	// Update persists changes to an existing site aggregate, including
	// compartment occupancy flips from claims and releases.
	Update(ctx context.Context, site *locker.Site) error

	// Get retrieves a site aggregate by its unique identifier.
	// Returns the complete site with every compartment and its current state.
	Get(ctx context.Context, id kernel.UUID) (*locker.Site, error)

	// GetAll retrieves every locker site.
	GetAll(ctx context.Context) ([]*locker.Site, error)
}
