package commands

import (
	"context"
	"log/slog"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/order"
	"washcubes/internal/core/ports"
)

// BatchResult reports the outcome of a batch job assignment: the routing
// job that was created, the orders it claimed, and the orders left for a
// later batch because they were not ready or were claimed by a concurrent
// job first.
type BatchResult struct {
	JobID               string
	AssignedOrderIDs    []kernel.UUID
	UnavailableOrderIDs []kernel.UUID
}

// AssignPickupBatchCommandHandler creates a rider job for the locker-to-
// laundry leg.
//
// Claiming is exclusive: selectedByRider flips atomically for every order
// the job includes, so two concurrently created jobs can never share an
// order. Orders that fail the readiness predicate or lose the claim race are
// reported back as unavailable with their readiness flags untouched. The
// routing job is created inside the transaction; a routing failure rolls
// every claim back.
type AssignPickupBatchCommandHandler struct {
	uowFactory OrderUoWFactory
	jobClient  ports.RiderJobClient
	logger     *slog.Logger
}

// NewAssignPickupBatchCommandHandler creates a handler for pickup batch assignment.
func NewAssignPickupBatchCommandHandler(
	uowFactory OrderUoWFactory,
	jobClient ports.RiderJobClient,
	logger *slog.Logger,
) AssignPickupBatchCommandHandler {
	return AssignPickupBatchCommandHandler{
		uowFactory: uowFactory,
		jobClient:  jobClient,
		logger:     logger.With("component", "assign_pickup_batch_handler"),
	}
}

// Handle processes the pickup batch assignment.
func (h AssignPickupBatchCommandHandler) Handle(ctx context.Context, cmd AssignPickupBatchCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	return assignBatch(ctx, h.uowFactory, h.jobClient, h.logger, batchSpec{
		jobType:    ports.JobTypePickup,
		siteID:     cmd.SiteID(),
		orderIDs:   cmd.OrderIDs(),
		fetchReady: ports.OrderRepository.GetReadyForLockerPickup,
		// an order suspended on a rejected discrepancy stays in its locker
		// until an operator resolves it
		eligible: func(o *order.Order) bool {
			return !o.Stage().AwaitingManualResolution()
		},
	})
}

// batchSpec carries the per-leg parameters of a batch assignment. fetchReady
// retrieves the orders ready for this leg at the site; eligible, when set,
// filters that set further.
type batchSpec struct {
	jobType    ports.JobType
	siteID     kernel.UUID
	orderIDs   []kernel.UUID
	fetchReady func(ports.OrderRepository, context.Context, kernel.UUID) ([]*order.Order, error)
	eligible   func(*order.Order) bool
}

// assignBatch is the shared workflow behind the pickup and delivery batch
// handlers: intersect the request with the site's ready set, claim
// atomically, create the routing job, and release whatever the routing
// service declined to plan in.
func assignBatch(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	jobClient ports.RiderJobClient,
	logger *slog.Logger,
	spec batchSpec,
) (BatchResult, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BatchResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	readyOrders, err := spec.fetchReady(orderRepo, ctx, spec.siteID)
	if err != nil {
		return BatchResult{}, err
	}

	readyByID := make(map[kernel.UUID]*order.Order, len(readyOrders))
	for _, o := range readyOrders {
		if spec.eligible != nil && !spec.eligible(o) {
			continue
		}
		readyByID[o.ID()] = o
	}

	candidates := make([]kernel.UUID, 0, len(spec.orderIDs))
	numbersByID := make(map[kernel.UUID]string, len(spec.orderIDs))
	unavailable := make([]kernel.UUID, 0)

	for _, id := range spec.orderIDs {
		o, ok := readyByID[id]
		if !ok {
			unavailable = append(unavailable, id)
			continue
		}
		candidates = append(candidates, id)
		numbersByID[id] = o.OrderNumber()
	}

	claimed, err := orderRepo.SelectForJob(ctx, candidates)
	if err != nil {
		return BatchResult{}, err
	}

	claimedSet := make(map[kernel.UUID]struct{}, len(claimed))
	for _, id := range claimed {
		claimedSet[id] = struct{}{}
	}
	for _, id := range candidates {
		if _, ok := claimedSet[id]; !ok {
			unavailable = append(unavailable, id)
		}
	}

	if len(claimed) == 0 {
		return BatchResult{UnavailableOrderIDs: unavailable}, uow.Commit(ctx)
	}

	numbers := make([]string, 0, len(claimed))
	for _, id := range claimed {
		numbers = append(numbers, numbersByID[id])
	}

	job, err := jobClient.CreateJob(ctx, ports.RiderJobRequest{
		JobType:      spec.jobType,
		SiteID:       spec.siteID,
		OrderIDs:     claimed,
		OrderNumbers: numbers,
	})
	if err != nil {
		return BatchResult{}, err
	}

	assigned, unavailable, err := releaseDeclined(ctx, orderRepo, claimed, job.UnavailableOrderIDs, unavailable)
	if err != nil {
		return BatchResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return BatchResult{}, err
	}

	logger.Info("rider job created",
		"jobId", job.JobID,
		"jobType", string(spec.jobType),
		"assigned", len(assigned),
		"unavailable", len(unavailable))

	return BatchResult{
		JobID:               job.JobID,
		AssignedOrderIDs:    assigned,
		UnavailableOrderIDs: unavailable,
	}, nil
}

// releaseDeclined rolls back the claims on orders the routing service left
// out of the job. The release runs inside the same transaction as the claim,
// so a declined order is never observable as selected.
func releaseDeclined(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	claimed, declinedByRouting, unavailable []kernel.UUID,
) (assigned, stillUnavailable []kernel.UUID, err error) {
	if len(declinedByRouting) == 0 {
		return claimed, unavailable, nil
	}

	declinedSet := make(map[kernel.UUID]struct{}, len(declinedByRouting))
	for _, id := range declinedByRouting {
		declinedSet[id] = struct{}{}
	}

	assigned = make([]kernel.UUID, 0, len(claimed))
	declined := make([]kernel.UUID, 0, len(declinedSet))
	for _, id := range claimed {
		if _, ok := declinedSet[id]; ok {
			declined = append(declined, id)
			unavailable = append(unavailable, id)
			continue
		}
		assigned = append(assigned, id)
	}

	if err = orderRepo.ReleaseFromJob(ctx, declined); err != nil {
		return nil, nil, err
	}

	return assigned, unavailable, nil
}
