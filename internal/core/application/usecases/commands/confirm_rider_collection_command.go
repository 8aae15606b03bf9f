package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrConfirmRiderCollectionCommandIsNotConstructed = errors.New(
	"ConfirmRiderCollectionCommand must be created via NewConfirmRiderCollectionCommand constructor",
)

// ConfirmRiderCollectionCommand represents a rider confirming they took the
// bag out of its drop-off compartment for the trip to the laundry.
type ConfirmRiderCollectionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmRiderCollectionCommand creates a rider collection command.
func NewConfirmRiderCollectionCommand(orderID kernel.UUID) (ConfirmRiderCollectionCommand, error) {
	cmd := ConfirmRiderCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmRiderCollectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmRiderCollectionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmRiderCollectionCommandIsNotConstructed)
}

// OrderID returns the collected order.
func (c ConfirmRiderCollectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmRiderCollectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
