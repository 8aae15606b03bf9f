package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrConfirmCollectionCommandIsNotConstructed = errors.New(
	"ConfirmCollectionCommand must be created via NewConfirmCollectionCommand constructor",
)

// ConfirmCollectionCommand represents the customer taking their cleaned
// order out of the collection compartment, completing the order.
type ConfirmCollectionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCollectionCommand creates a collection confirmation command.
func NewConfirmCollectionCommand(orderID kernel.UUID) (ConfirmCollectionCommand, error) {
	cmd := ConfirmCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmCollectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCollectionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCollectionCommandIsNotConstructed)
}

// OrderID returns the collected order.
func (c ConfirmCollectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmCollectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
