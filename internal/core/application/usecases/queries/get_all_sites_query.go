package queries

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrGetAllSitesQueryIsNotConstructed = errors.New(
	"GetAllSitesQuery must be created via NewGetAllSitesQuery constructor",
)

// GetAllSitesQuery retrieves every locker site with its location and overall
// compartment occupancy, for the site picker map.
type GetAllSitesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllSitesQuery creates a query to retrieve all sites.
// This is a parameterless query that fetches the complete site list.
func NewGetAllSitesQuery() GetAllSitesQuery {
	return GetAllSitesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllSitesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSitesQueryIsNotConstructed)
}

// SiteOverview is one row of the site list read model.
type SiteOverview struct {
	ID                    kernel.UUID
	Name                  string
	Location              kernel.Location
	TotalCompartments     int
	AvailableCompartments int
}
