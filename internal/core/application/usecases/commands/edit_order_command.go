package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/guard"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
	ErrFinalPriceIsInvalid = errors.New("final price must not be negative")
	ErrProofPicsAreRequired = errors.New(
		"at least one proof picture is required to document a discrepancy",
	)
)

// EditOrderCommand represents the operator correcting an order after finding
// that the bag contents do not match the items the customer selected.
// The revised items are re-priced from the service catalog by the handler;
// the command carries the selections, the documentary proof pictures and the
// corrected final price.
//
// Example:
//
//	cmd, err := NewEditOrderCommand(orderID,
//	    []ItemSelection{{Name: "Shirt", Quantity: 5}},
//	    []string{"https://cdn.example.com/proof-1.jpg"},
//	    22.50)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	// The customer has been asked to accept or reject the revision
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	items        []ItemSelection
	proofPicURLs []string
	finalPrice   float64

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates an operator edit command.
// Requires at least one positive-quantity item, at least one proof picture
// and a non-negative final price.
func NewEditOrderCommand(
	orderID kernel.UUID,
	items []ItemSelection,
	proofPicURLs []string,
	finalPrice float64,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
		cmd.setProofPicURLs(proofPicURLs),
		cmd.setFinalPrice(finalPrice),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the order being corrected.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the revised item selections.
func (c EditOrderCommand) Items() []ItemSelection {
	return c.items
}

// ProofPicURLs returns the discrepancy proof pictures.
func (c EditOrderCommand) ProofPicURLs() []string {
	return c.proofPicURLs
}

// FinalPrice returns the corrected price.
func (c EditOrderCommand) FinalPrice() float64 {
	return c.finalPrice
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setItems(items []ItemSelection) error {
	kept := make([]ItemSelection, 0, len(items))
	for _, item := range items {
		if item.Quantity == 0 {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		return ErrItemSelectionIsRequired
	}
	c.items = kept
	return nil
}

func (c *EditOrderCommand) setProofPicURLs(urls []string) error {
	if len(urls) == 0 {
		return ErrProofPicsAreRequired
	}
	c.proofPicURLs = urls
	return nil
}

func (c *EditOrderCommand) setFinalPrice(finalPrice float64) error {
	if finalPrice < 0 {
		return ErrFinalPriceIsInvalid
	}
	c.finalPrice = finalPrice
	return nil
}
