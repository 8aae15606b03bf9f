package commands

import (
	"context"
	"log/slog"

	"washcubes/internal/core/ports"
)

// AssignDeliveryBatchCommandHandler creates a rider job for the laundry-to-
// locker return leg. Shares the claim-then-create workflow with the pickup
// handler; only the readiness predicate differs.
type AssignDeliveryBatchCommandHandler struct {
	uowFactory OrderUoWFactory
	jobClient  ports.RiderJobClient
	logger     *slog.Logger
}

// NewAssignDeliveryBatchCommandHandler creates a handler for delivery batch assignment.
func NewAssignDeliveryBatchCommandHandler(
	uowFactory OrderUoWFactory,
	jobClient ports.RiderJobClient,
	logger *slog.Logger,
) AssignDeliveryBatchCommandHandler {
	return AssignDeliveryBatchCommandHandler{
		uowFactory: uowFactory,
		jobClient:  jobClient,
		logger:     logger.With("component", "assign_delivery_batch_handler"),
	}
}

// Handle processes the delivery batch assignment.
func (h AssignDeliveryBatchCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryBatchCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	return assignBatch(ctx, h.uowFactory, h.jobClient, h.logger, batchSpec{
		jobType:    ports.JobTypeDelivery,
		siteID:     cmd.SiteID(),
		orderIDs:   cmd.OrderIDs(),
		fetchReady: ports.OrderRepository.GetReadyForLaundryPickup,
	})
}
