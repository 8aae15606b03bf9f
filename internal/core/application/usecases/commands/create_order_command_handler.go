package commands

import (
	"context"
	"errors"
	"time"

	"washcubes/internal/core/domain/model/locker"
	"washcubes/internal/core/domain/model/order"
	"washcubes/internal/core/domain/model/service"
	"washcubes/internal/core/domain/services"
	"washcubes/internal/core/ports"
)

// CreateOrderResult reports what the placed order looks like: the generated
// order number the customer will type at the locker screen, the claimed
// compartment, and the estimated price.
type CreateOrderResult struct {
	OrderNumber        string
	DropOffCompartment string
	EstimatedPrice     float64
}

// CreateOrderCommandHandler handles the business logic for placing an order.
//
// In one transaction it prices the selected items from the service catalog,
// allocates and claims a drop-off compartment, generates the order number
// and persists the order. The order-number uniqueness constraint is the
// integrity check against the generator's small collision probability; on a
// collision the handler retries once with a fresh number before giving up.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning the order, locker and service repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Returns services.ErrNoCompartmentAvailable when the drop-off site has no
// free compartment of the requested size or larger, and an ObjectNotFoundError
// when the site, service or a selected item does not exist.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	svc, err := uow.ServiceRepository().Get(ctx, cmd.ServiceID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	items, err := priceItems(svc.FindItem, cmd.Items())
	if err != nil {
		return CreateOrderResult{}, err
	}

	compartment, err := h.claimCompartment(ctx, uow.LockerRepository(), cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := time.Now().UTC()
	orderRepo := uow.OrderRepository()

	newOrder, err := h.buildAndAdd(ctx, orderRepo, cmd, compartment.Number(), items, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderNumber:        newOrder.OrderNumber(),
		DropOffCompartment: newOrder.DropOffCompartment(),
		EstimatedPrice:     newOrder.EstimatedPrice(),
	}, nil
}

// claimCompartment allocates a compartment and persists the claim, reloading
// the site and allocating again when a concurrent order wins the chosen
// compartment between the read and the conditional occupancy write. One
// reallocation is enough in practice; losing twice surfaces the conflict.
func (h CreateOrderCommandHandler) claimCompartment(
	ctx context.Context,
	lockerRepo ports.LockerRepository,
	cmd CreateOrderCommand,
) (*locker.Compartment, error) {
	var lastErr error
	for range 2 {
		site, err := lockerRepo.Get(ctx, cmd.DropOffSiteID())
		if err != nil {
			return nil, err
		}

		compartment, err := services.NewCompartmentAllocator().Allocate(site, cmd.RequestedSize())
		if err != nil {
			return nil, err
		}

		err = lockerRepo.Update(ctx, site)
		if err == nil {
			return compartment, nil
		}
		if !errors.Is(err, locker.ErrCompartmentOccupied) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// buildAndAdd constructs the aggregate and persists it, regenerating the
// order number once if the first draw collides with an existing order.
func (h CreateOrderCommandHandler) buildAndAdd(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cmd CreateOrderCommand,
	compartmentNumber string,
	items []order.Item,
	now time.Time,
) (*order.Order, error) {
	var lastErr error
	for range 2 {
		newOrder, err := order.NewOrder(
			cmd.OrderID(),
			order.GenerateOrderNumber(now),
			cmd.UserID(),
			cmd.ServiceID(),
			cmd.DropOffSiteID(),
			compartmentNumber,
			cmd.CollectionSiteID(),
			items,
		)
		if err != nil {
			return nil, err
		}
		newOrder.SetCreatedAt(now)

		err = orderRepo.Add(ctx, newOrder)
		if err == nil {
			return newOrder, nil
		}
		if !errors.Is(err, ports.ErrDuplicateOrderNumber) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// priceItems resolves each selection against the catalog and builds the
// order lines with a price snapshot.
func priceItems(findItem func(string) (service.CatalogItem, error), selections []ItemSelection) ([]order.Item, error) {
	items := make([]order.Item, 0, len(selections))
	for _, selection := range selections {
		catalogItem, err := findItem(selection.Name)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(catalogItem.Name(), catalogItem.Unit(), catalogItem.Price(), selection.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
