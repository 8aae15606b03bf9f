package queries

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrGetSiteAvailabilityQueryIsNotConstructed = errors.New(
	"GetSiteAvailabilityQuery must be created via NewGetSiteAvailabilityQuery constructor",
)

// GetSiteAvailabilityQuery retrieves the per-size compartment availability of
// one locker site. The customer app uses it to decide which sizes can still
// be booked at a site before creating an order.
type GetSiteAvailabilityQuery struct { //nolint:recvcheck //using for validation
	siteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSiteAvailabilityQuery creates an availability query for one site.
func NewGetSiteAvailabilityQuery(siteID kernel.UUID) (GetSiteAvailabilityQuery, error) {
	q := GetSiteAvailabilityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setSiteID(siteID); err != nil {
		return GetSiteAvailabilityQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSiteAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetSiteAvailabilityQueryIsNotConstructed)
}

// SiteID returns the requested site.
func (q GetSiteAvailabilityQuery) SiteID() kernel.UUID {
	return q.siteID
}

func (q *GetSiteAvailabilityQuery) setSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}
	q.siteID = siteID
	return nil
}

// SizeAvailability is one row of the availability read model: how many
// compartments of a size the site has and how many are free right now.
type SizeAvailability struct {
	Size      string
	Total     int
	Available int
}
