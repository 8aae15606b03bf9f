package ports

import (
	"context"

	"washcubes/internal/core/domain/model/kernel"
)

// JobType distinguishes the two rider transport legs.
type JobType string

const (
	// JobTypePickup moves dropped-off bags from a locker site to the laundry.
	JobTypePickup JobType = "pickup"
	// JobTypeDelivery returns cleaned orders from the laundry to a locker site.
	JobTypeDelivery JobType = "delivery"
)

// RiderJobRequest describes a batch of orders to move in one rider trip.
type RiderJobRequest struct {
	JobType      JobType
	SiteID       kernel.UUID
	OrderIDs     []kernel.UUID
	OrderNumbers []string
}

// RiderJob is the routing service's record of a created job.
// UnavailableOrderIDs lists the requested orders the routing service left
// out of the job, typically because the assigned rider has no capacity for
// them. Callers must release their local claims on those orders.
type RiderJob struct {
	JobID               string
	JobType             JobType
	UnavailableOrderIDs []kernel.UUID
}

// RiderJobClient creates rider jobs in the external routing service.
// The job dispatch use cases claim orders locally first and only then create
// the job, so a routing failure rolls the claims back. A partial acceptance
// comes back through RiderJob.UnavailableOrderIDs rather than an error.
type RiderJobClient interface {
	CreateJob(ctx context.Context, req RiderJobRequest) (RiderJob, error)
}
