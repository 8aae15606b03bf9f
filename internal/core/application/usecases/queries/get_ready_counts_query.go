package queries

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrGetReadyCountsQueryIsNotConstructed = errors.New(
	"GetReadyCountsQuery must be created via NewGetReadyCountsQuery constructor",
)

// GetReadyCountsQuery retrieves, per site, how many orders wait for the
// locker-to-laundry pickup leg and how many wait for the return delivery leg.
// Dispatchers use the counts to decide which sites are worth sending a rider
// to before pulling the full queues.
type GetReadyCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyCountsQuery creates a query for per-site ready counts.
// This is a parameterless query; the counts span all sites.
func NewGetReadyCountsQuery() GetReadyCountsQuery {
	return GetReadyCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReadyCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyCountsQueryIsNotConstructed)
}

// SiteReadyCounts is one row of the ready-counts read model. PickupReady
// counts orders waiting at the site's lockers; DeliveryReady counts cleaned
// orders waiting at the laundry for return to the site.
type SiteReadyCounts struct {
	SiteID        kernel.UUID
	PickupReady   int
	DeliveryReady int
}
