package locker

import (
	"errors"

	"washcubes/internal/pkg/errs"
	"washcubes/internal/pkg/guard"
)

var (
	// ErrCompartmentOccupied indicates that a claim was attempted on a
	// compartment whose availability flag is already false.
	ErrCompartmentOccupied = errors.New("compartment is already occupied")

	// ErrCompartmentIsNotConstructed indicates that the Compartment was not
	// properly initialized through the NewCompartment constructor function.
	ErrCompartmentIsNotConstructed = errors.New("Compartment must be created via NewCompartment constructor")
)

// Compartment represents a single physical slot within a locker site.
// It is an entity owned exclusively by its Site aggregate; compartments have
// no lifecycle outside their site and are identified by a number that is
// unique within the site.
//
// The availability flag is the single source of truth for occupancy. A claim
// on an occupied compartment fails; a release of an available compartment is
// a no-op so that collection flows stay idempotent.
//
// Example usage:
//
//	c, err := locker.NewCompartment("L02", locker.SizeMedium)
//	if err != nil {
//	    return err
//	}
//
//	if err := c.Claim(); err != nil {
//	    // compartment was already occupied
//	}
type Compartment struct {
	// number identifies the compartment within its site, e.g. "L01"
	number string

	// size is the physical size class of the compartment
	size Size

	// isAvailable is true while no order occupies the compartment
	isAvailable bool

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewCompartment creates an available Compartment with the given number and size.
// The number must not be empty and the size must be valid.
func NewCompartment(number string, size Size) (*Compartment, error) {
	c := &Compartment{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setNumber(number), c.setSize(size)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCompartment reconstructs a Compartment from persistent storage,
// including its occupancy state. The restored compartment behaves identically
// to one created through normal domain operations.
func RestoreCompartment(number string, size Size, isAvailable bool) (*Compartment, error) {
	c, err := NewCompartment(number, size)
	if err != nil {
		return nil, err
	}

	c.isAvailable = isAvailable
	return c, nil
}

// Number returns the compartment number, unique within the owning site.
func (c *Compartment) Number() string {
	return c.number
}

// Size returns the physical size class of the compartment.
func (c *Compartment) Size() Size {
	return c.size
}

// IsAvailable reports whether the compartment is currently unoccupied.
func (c *Compartment) IsAvailable() bool {
	return c.isAvailable
}

// Validate ensures the Compartment was created through its constructor.
func (c *Compartment) Validate() error {
	if c == nil {
		return ErrCompartmentIsNotConstructed
	}
	return c.guard.Validate(ErrCompartmentIsNotConstructed)
}

// Claim marks the compartment as occupied.
// Returns ErrCompartmentOccupied if the compartment is not available; the
// occupancy flag is left untouched in that case so two concurrent claims
// can never both succeed.
func (c *Compartment) Claim() error {
	if !c.isAvailable {
		return ErrCompartmentOccupied
	}

	c.isAvailable = false
	return nil
}

// Release marks the compartment as available again.
// Releasing an already-available compartment is a no-op, which keeps order
// cancellation and collection idempotent.
func (c *Compartment) Release() {
	c.isAvailable = true
}

func (c *Compartment) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number is required")
	}
	c.number = number
	return nil
}

func (c *Compartment) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.size = size
	return nil
}
