package service

import (
	"errors"
	"fmt"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/errs"
	"washcubes/internal/pkg/guard"
)

var (
	// ErrServiceIsNotConstructed is returned when a Service instance was not
	// created through the NewService factory method.
	ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

	// ErrCatalogItemIsNotConstructed indicates a CatalogItem that bypassed
	// the NewCatalogItem constructor.
	ErrCatalogItemIsNotConstructed = errors.New("CatalogItem must be created via NewCatalogItem constructor")

	// ErrCatalogItemsAreRequired indicates a service without any priced items.
	ErrCatalogItemsAreRequired = errors.New("service requires at least one catalog item")

	// ErrDuplicateCatalogItemName indicates two catalog items sharing a name
	// within one service.
	ErrDuplicateCatalogItemName = errors.New("duplicate catalog item name")
)

// CatalogItem is one priced entry of a service catalog, e.g. "Shirt" washed
// per piece. Immutable value object; order lines are priced from it at order
// creation time.
type CatalogItem struct { //nolint:recvcheck //using for validation
	name  string
	unit  string
	price float64

	guard guard.ConstructorGuard
}

// NewCatalogItem creates a validated catalog entry.
func NewCatalogItem(name string, unit string, price float64) (CatalogItem, error) {
	item := CatalogItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setUnit(unit),
		item.setPrice(price),
	); err != nil {
		return CatalogItem{}, err
	}

	return item, nil
}

// Validate ensures the CatalogItem was created through NewCatalogItem.
func (i CatalogItem) Validate() error {
	return i.guard.Validate(ErrCatalogItemIsNotConstructed)
}

// Name returns the item name as shown to customers.
func (i CatalogItem) Name() string {
	return i.name
}

// Unit returns the pricing unit, e.g. "per kg" or "per piece".
func (i CatalogItem) Unit() string {
	return i.unit
}

// Price returns the current price per unit.
func (i CatalogItem) Price() float64 {
	return i.price
}

func (i *CatalogItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	i.name = name
	return nil
}

func (i *CatalogItem) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit is required")
	}
	i.unit = unit
	return nil
}

func (i *CatalogItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%f is negative", price))
	}
	i.price = price
	return nil
}

// Service is a laundry service offering, e.g. "Wash & Fold", with the
// catalog of items it prices. Orders reference a service and snapshot the
// prices of the items they include.
type Service struct {
	id    kernel.UUID
	name  string
	items []CatalogItem

	isConstructed bool
}

// NewService creates a new Service with validation. Item names must be
// unique within the catalog.
func NewService(id kernel.UUID, name string, items []CatalogItem) (*Service, error) {
	s := &Service{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreService reconstructs a Service aggregate from persistent storage.
func RestoreService(id kernel.UUID, name string, items []CatalogItem) (*Service, error) {
	return NewService(id, name, items)
}

// Validate ensures the Service instance was properly constructed.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two services by their unique identifiers.
func (s *Service) IsEqual(other *Service) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// Name returns the service name.
func (s *Service) Name() string {
	return s.name
}

// Items returns the service's catalog.
func (s *Service) Items() []CatalogItem {
	return s.items
}

// FindItem looks a catalog item up by name.
// Returns an ObjectNotFoundError when the service does not price that item.
func (s *Service) FindItem(name string) (CatalogItem, error) {
	for _, item := range s.items {
		if item.name == name {
			return item, nil
		}
	}
	return CatalogItem{}, errs.NewObjectNotFoundError("itemName", name)
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	s.name = name
	return nil
}

func (s *Service) setItems(items []CatalogItem) error {
	if len(items) == 0 {
		return ErrCatalogItemsAreRequired
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateCatalogItemName, item.name)
		}
		seen[item.name] = struct{}{}
	}

	s.items = items
	return nil
}
