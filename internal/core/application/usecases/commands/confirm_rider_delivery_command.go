package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/errs"
	"washcubes/internal/pkg/guard"
)

var ErrConfirmRiderDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmRiderDeliveryCommand must be created via NewConfirmRiderDeliveryCommand constructor",
)

// ConfirmRiderDeliveryCommand represents a rider depositing a cleaned order
// into a compartment at its collection site. The rider scans the compartment
// they used, so the command carries the compartment number rather than
// asking the allocator for one.
type ConfirmRiderDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	compartmentNumber string

	guard guard.ConstructorGuard
}

// NewConfirmRiderDeliveryCommand creates a rider delivery command.
func NewConfirmRiderDeliveryCommand(orderID kernel.UUID, compartmentNumber string) (ConfirmRiderDeliveryCommand, error) {
	cmd := ConfirmRiderDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCompartmentNumber(compartmentNumber),
	); err != nil {
		return ConfirmRiderDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmRiderDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmRiderDeliveryCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c ConfirmRiderDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CompartmentNumber returns the compartment the rider deposited into.
func (c ConfirmRiderDeliveryCommand) CompartmentNumber() string {
	return c.compartmentNumber
}

func (c *ConfirmRiderDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmRiderDeliveryCommand) setCompartmentNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("compartmentNumber is required")
	}
	c.compartmentNumber = number
	return nil
}
