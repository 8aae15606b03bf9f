package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrConfirmDropOffCommandIsNotConstructed = errors.New(
	"ConfirmDropOffCommand must be created via NewConfirmDropOffCommand constructor",
)

// ConfirmDropOffCommand represents the customer confirming they placed the
// bag into the claimed compartment.
type ConfirmDropOffCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDropOffCommand creates a command to confirm a drop-off.
func NewConfirmDropOffCommand(orderID kernel.UUID) (ConfirmDropOffCommand, error) {
	cmd := ConfirmDropOffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmDropOffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDropOffCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDropOffCommandIsNotConstructed)
}

// OrderID returns the order being dropped off.
func (c ConfirmDropOffCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmDropOffCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
