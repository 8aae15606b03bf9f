package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var ErrResolveOrderErrorCommandIsNotConstructed = errors.New(
	"ResolveOrderErrorCommand must be created via NewResolveOrderErrorCommand constructor",
)

// ResolveOrderErrorCommand represents the customer accepting the operator's
// revised order.
type ResolveOrderErrorCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveOrderErrorCommand creates a discrepancy acceptance command.
func NewResolveOrderErrorCommand(orderID kernel.UUID) (ResolveOrderErrorCommand, error) {
	cmd := ResolveOrderErrorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ResolveOrderErrorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveOrderErrorCommand) Validate() error {
	return c.guard.Validate(ErrResolveOrderErrorCommandIsNotConstructed)
}

// OrderID returns the order whose discrepancy is accepted.
func (c ResolveOrderErrorCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResolveOrderErrorCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
