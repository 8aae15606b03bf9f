package commands

import (
	"errors"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/locker"
	"washcubes/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemSelectionIsRequired = errors.New("at least one item with a positive quantity is required")
)

// ItemSelection is one customer-picked catalog item with its quantity.
// Zero-quantity selections are tolerated on input and skipped during pricing.
type ItemSelection struct {
	Name     string
	Quantity int
}

// CreateOrderCommand represents a request to place a new laundry order:
// which service prices the items, which site the bag is dropped at, which
// site the cleaned order returns to, and what compartment size is needed.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), userID, serviceID,
//	    dropOffSiteID, collectionSiteID, locker.SizeMedium,
//	    []ItemSelection{{Name: "Shirt", Quantity: 3}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoCompartmentAvailable) {
//	    // Ask the customer to try another site or size
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	userID           kernel.UUID
	serviceID        kernel.UUID
	dropOffSiteID    kernel.UUID
	collectionSiteID kernel.UUID
	requestedSize    locker.Size
	items            []ItemSelection

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Zero-quantity selections are dropped here; the command is invalid when
// nothing with a positive quantity remains.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	serviceID kernel.UUID,
	dropOffSiteID kernel.UUID,
	collectionSiteID kernel.UUID,
	requestedSize locker.Size,
	items []ItemSelection,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setServiceID(serviceID),
		cmd.setDropOffSiteID(dropOffSiteID),
		cmd.setCollectionSiteID(collectionSiteID),
		cmd.setRequestedSize(requestedSize),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the customer placing the order.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ServiceID returns the service catalog to price items from.
func (c CreateOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// DropOffSiteID returns the locker site the bag will be dropped at.
func (c CreateOrderCommand) DropOffSiteID() kernel.UUID {
	return c.dropOffSiteID
}

// CollectionSiteID returns the locker site the cleaned order returns to.
func (c CreateOrderCommand) CollectionSiteID() kernel.UUID {
	return c.collectionSiteID
}

// RequestedSize returns the compartment size the customer asked for.
func (c CreateOrderCommand) RequestedSize() locker.Size {
	return c.requestedSize
}

// Items returns the positive-quantity item selections.
func (c CreateOrderCommand) Items() []ItemSelection {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	c.serviceID = serviceID
	return nil
}

func (c *CreateOrderCommand) setDropOffSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}
	c.dropOffSiteID = siteID
	return nil
}

func (c *CreateOrderCommand) setCollectionSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}
	c.collectionSiteID = siteID
	return nil
}

func (c *CreateOrderCommand) setRequestedSize(size locker.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.requestedSize = size
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSelection) error {
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
