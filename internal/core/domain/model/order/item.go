package order

import (
	"errors"
	"fmt"

	"washcubes/internal/pkg/errs"
	"washcubes/internal/pkg/guard"
)

// ErrItemIsNotConstructed indicates that an Item was not created through
// the NewItem constructor function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a priced line within an order: a service-catalog item resolved to
// its name, unit and unit price, with the quantity the customer selected.
// The line total is computed at construction and never stored by callers.
//
// Item is an immutable value object; the zero value is invalid.
type Item struct { //nolint:recvcheck //using for validation
	name      string
	unit      string
	unitPrice float64
	quantity  int
	lineTotal float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
// Name must not be empty, quantity must be positive and the unit price must
// not be negative. The line total is quantity times unit price.
func NewItem(name string, unit string, unitPrice float64, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setUnit(unit),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.lineTotal = item.unitPrice * float64(item.quantity)
	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the catalog item name.
func (i Item) Name() string {
	return i.name
}

// Unit returns the pricing unit, e.g. "per kg" or "per piece".
func (i Item) Unit() string {
	return i.unit
}

// UnitPrice returns the price per unit at the time the order was created.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns quantity times unit price.
func (i Item) LineTotal() float64 {
	return i.lineTotal
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	i.name = name
	return nil
}

func (i *Item) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit is required")
	}
	i.unit = unit
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
