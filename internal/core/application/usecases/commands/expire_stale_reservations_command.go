package commands

import (
	"errors"
	"time"

	"washcubes/internal/pkg/guard"
)

var (
	ErrExpireStaleReservationsCommandIsNotConstructed = errors.New(
		"ExpireStaleReservationsCommand must be created via NewExpireStaleReservationsCommand constructor",
	)
	ErrTTLIsInvalid = errors.New("reservation ttl must be greater than 0")
)

// ExpireStaleReservationsCommand represents a sweep for orders whose bag
// never arrived: created longer than the TTL ago, never dropped off, not
// cancelled. Their compartments go back into the pool.
type ExpireStaleReservationsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleReservationsCommand creates an expiry sweep command.
func NewExpireStaleReservationsCommand(ttl time.Duration) (ExpireStaleReservationsCommand, error) {
	cmd := ExpireStaleReservationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTTL(ttl); err != nil {
		return ExpireStaleReservationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleReservationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleReservationsCommandIsNotConstructed)
}

// TTL returns how long a reservation may wait for its drop-off.
func (c ExpireStaleReservationsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *ExpireStaleReservationsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return ErrTTLIsInvalid
	}
	c.ttl = ttl
	return nil
}
