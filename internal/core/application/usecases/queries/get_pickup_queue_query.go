package queries

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrGetPickupQueueQueryIsNotConstructed = errors.New(
	"GetPickupQueueQuery must be created via NewGetPickupQueueQuery constructor",
)

// GetPickupQueueQuery retrieves the orders waiting at one drop-off site for
// the locker-to-laundry leg: dropped off, not collected, not claimed by a
// pickup job. Dispatchers use it to decide what to put into the next batch.
type GetPickupQueueQuery struct { //nolint:recvcheck //using for validation
	siteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickupQueueQuery creates a pickup queue query for one site.
func NewGetPickupQueueQuery(siteID kernel.UUID) (GetPickupQueueQuery, error) {
	q := GetPickupQueueQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setSiteID(siteID); err != nil {
		return GetPickupQueueQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupQueueQueryIsNotConstructed)
}

// SiteID returns the drop-off site to list the queue of.
func (q GetPickupQueueQuery) SiteID() kernel.UUID {
	return q.siteID
}

func (q *GetPickupQueueQuery) setSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}
	q.siteID = siteID
	return nil
}
