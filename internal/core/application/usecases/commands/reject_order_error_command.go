package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrRejectOrderErrorCommandIsNotConstructed = errors.New(
	"RejectOrderErrorCommand must be created via NewRejectOrderErrorCommand constructor",
)

// RejectOrderErrorCommand represents the customer rejecting the operator's
// revised order. The order stays suspended until an operator approves a
// return.
type RejectOrderErrorCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectOrderErrorCommand creates a discrepancy rejection command.
func NewRejectOrderErrorCommand(orderID kernel.UUID) (RejectOrderErrorCommand, error) {
	cmd := RejectOrderErrorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RejectOrderErrorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderErrorCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderErrorCommandIsNotConstructed)
}

// OrderID returns the order whose discrepancy is rejected.
func (c RejectOrderErrorCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RejectOrderErrorCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
