package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrCompleteProcessingCommandIsNotConstructed = errors.New(
	"CompleteProcessingCommand must be created via NewCompleteProcessingCommand constructor",
)

// CompleteProcessingCommand represents the operator marking laundering as
// finished, readying the order for the return transport leg.
type CompleteProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteProcessingCommand creates a processing completion command.
func NewCompleteProcessingCommand(orderID kernel.UUID) (CompleteProcessingCommand, error) {
	cmd := CompleteProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CompleteProcessingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteProcessingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProcessingCommandIsNotConstructed)
}

// OrderID returns the order whose processing finished.
func (c CompleteProcessingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteProcessingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
