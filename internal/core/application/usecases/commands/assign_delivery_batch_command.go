package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrAssignDeliveryBatchCommandIsNotConstructed = errors.New(
	"AssignDeliveryBatchCommand must be created via NewAssignDeliveryBatchCommand constructor",
)

// AssignDeliveryBatchCommand represents a request to bundle cleaned orders
// bound for one collection site into a single rider delivery job.
type AssignDeliveryBatchCommand struct { //nolint:recvcheck //using for validation
	siteID   kernel.UUID
	riderID  string
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryBatchCommand creates a delivery batch command.
func NewAssignDeliveryBatchCommand(
	siteID kernel.UUID,
	riderID string,
	orderIDs []kernel.UUID,
) (AssignDeliveryBatchCommand, error) {
	cmd := AssignDeliveryBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSiteID(siteID),
		cmd.setRiderID(riderID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return AssignDeliveryBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryBatchCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryBatchCommandIsNotConstructed)
}

// SiteID returns the collection locker site of the batch.
func (c AssignDeliveryBatchCommand) SiteID() kernel.UUID {
	return c.siteID
}

// RiderID returns the rider the job is for.
func (c AssignDeliveryBatchCommand) RiderID() string {
	return c.riderID
}

// OrderIDs returns the orders requested for the batch.
func (c AssignDeliveryBatchCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *AssignDeliveryBatchCommand) setSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}
	c.siteID = siteID
	return nil
}

func (c *AssignDeliveryBatchCommand) setRiderID(riderID string) error {
	if riderID == "" {
		return ErrRiderIDIsRequired
	}
	c.riderID = riderID
	return nil
}

func (c *AssignDeliveryBatchCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.orderIDs = orderIDs
	return nil
}
