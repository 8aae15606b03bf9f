package queries

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrGetDeliveryQueueQueryIsNotConstructed = errors.New(
	"GetDeliveryQueueQuery must be created via NewGetDeliveryQueueQuery constructor",
)

// GetDeliveryQueueQuery retrieves the cleaned orders waiting at the laundry
// for the return leg to one collection site: processing complete, not out for
// delivery, not claimed by a delivery job.
type GetDeliveryQueueQuery struct { //nolint:recvcheck //using for validation
	siteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQueueQuery creates a delivery queue query for one site.
func NewGetDeliveryQueueQuery(siteID kernel.UUID) (GetDeliveryQueueQuery, error) {
	q := GetDeliveryQueueQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setSiteID(siteID); err != nil {
		return GetDeliveryQueueQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueueQueryIsNotConstructed)
}

// SiteID returns the collection site to list the queue of.
func (q GetDeliveryQueueQuery) SiteID() kernel.UUID {
	return q.siteID
}

func (q *GetDeliveryQueueQuery) setSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}
	q.siteID = siteID
	return nil
}
