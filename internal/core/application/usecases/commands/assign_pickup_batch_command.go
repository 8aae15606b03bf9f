package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var (
	ErrAssignPickupBatchCommandIsNotConstructed = errors.New(
		"AssignPickupBatchCommand must be created via NewAssignPickupBatchCommand constructor",
	)
	ErrRiderIDIsRequired = errors.New("riderId is required")
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// AssignPickupBatchCommand represents a request to bundle dropped-off orders
// at one locker site into a single rider pickup job.
//
// Example:
//
//	cmd, err := NewAssignPickupBatchCommand(siteID, "rider-42", orderIDs)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	// result.UnavailableOrderIDs holds the orders another job claimed first
type AssignPickupBatchCommand struct { //nolint:recvcheck //using for validation
	siteID   kernel.UUID
	riderID  string
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPickupBatchCommand creates a pickup batch command.
func NewAssignPickupBatchCommand(
	siteID kernel.UUID,
	riderID string,
	orderIDs []kernel.UUID,
) (AssignPickupBatchCommand, error) {
	cmd := AssignPickupBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSiteID(siteID),
		cmd.setRiderID(riderID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return AssignPickupBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPickupBatchCommand) Validate() error {
	return c.guard.Validate(ErrAssignPickupBatchCommandIsNotConstructed)
}

// SiteID returns the drop-off locker site of the batch.
func (c AssignPickupBatchCommand) SiteID() kernel.UUID {
	return c.siteID
}

// RiderID returns the rider the job is for.
func (c AssignPickupBatchCommand) RiderID() string {
	return c.riderID
}

// OrderIDs returns the orders requested for the batch.
func (c AssignPickupBatchCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *AssignPickupBatchCommand) setSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}
	c.siteID = siteID
	return nil
}

func (c *AssignPickupBatchCommand) setRiderID(riderID string) error {
	if riderID == "" {
		return ErrRiderIDIsRequired
	}
	c.riderID = riderID
	return nil
}

func (c *AssignPickupBatchCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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
