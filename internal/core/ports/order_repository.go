package ports

import (
	"context"
	"errors"
	"time"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/order"
)

// ErrConcurrentUpdate is returned by Update when the aggregate's version no
// longer matches the stored row, meaning another request changed the order
// after this one loaded it.
var ErrConcurrentUpdate = errors.New("order was modified concurrently")

// ErrDuplicateOrderNumber is returned by Add when another order already
// carries the generated order number. Callers regenerate and retry.
var ErrDuplicateOrderNumber = errors.New("order number is already taken")

// OrderRepository defines the persistence contract for order aggregates.
//
// Update applies optimistic concurrency: the write succeeds only against the
// version the aggregate was loaded with, and the stored version increments on
// success. Lost races surface as ErrConcurrentUpdate so use cases can map
// them to a conflict instead of silently overwriting.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Fails when the order number is already taken, since the number is the
	// customer-facing key typed at locker screens.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns ErrConcurrentUpdate when the stored version moved on.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its order number.
	GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// GetReadyForLockerPickup retrieves the orders waiting at the given
	// drop-off site for a rider: dropped off, not collected, not claimed by
	// another job, and not suspended on an open discrepancy rejection.
	GetReadyForLockerPickup(ctx context.Context, siteID kernel.UUID) ([]*order.Order, error)

	// GetReadyForLaundryPickup retrieves the orders whose processing is
	// complete and that are bound for the given collection site, excluding
	// orders already out for delivery or claimed by another job.
	GetReadyForLaundryPickup(ctx context.Context, siteID kernel.UUID) ([]*order.Order, error)

	// SelectForJob atomically claims the given orders for a rider job by
	// flipping selectedByRider on every row where it is still false.
	// Returns the identifiers actually claimed; callers treat the missing
	// ones as taken by a concurrent job.
	SelectForJob(ctx context.Context, ids []kernel.UUID) ([]kernel.UUID, error)

	// ReleaseFromJob reverses SelectForJob for orders the routing service
	// declined to include in a job, clearing selectedByRider so a later
	// batch can claim them again.
	ReleaseFromJob(ctx context.Context, ids []kernel.UUID) error

	// GetStaleUnconfirmed retrieves orders created before the cutoff whose
	// bag never arrived: no drop-off, not cancelled. Used by the
	// reservation expiry job to free compartments.
	GetStaleUnconfirmed(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
