package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrApproveReturnCommandIsNotConstructed = errors.New(
	"ApproveReturnCommand must be created via NewApproveReturnCommand constructor",
)

// ApproveReturnCommand represents the operator sending a rejected order back
// unprocessed, closing the error cycle.
type ApproveReturnCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveReturnCommand creates a return approval command.
func NewApproveReturnCommand(orderID kernel.UUID) (ApproveReturnCommand, error) {
	cmd := ApproveReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ApproveReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveReturnCommand) Validate() error {
	return c.guard.Validate(ErrApproveReturnCommandIsNotConstructed)
}

// OrderID returns the order being returned.
func (c ApproveReturnCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ApproveReturnCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
