package services

import (
	"errors"

	"washcubes/internal/core/domain/model/locker"
)

// ErrNoCompartmentAvailable is returned when a site has no free compartment
// of the requested size or of any larger size.
var ErrNoCompartmentAvailable = errors.New("no compartment available")

// CompartmentAllocator is a domain service responsible for choosing and
// claiming a compartment at a locker site for a new order.
//
// Selection algorithm:
//   - Try the exact requested size first
//   - On exhaustion, fall back strictly upward through larger sizes in
//     ascending order; smaller compartments are never considered
//   - Within a size, pick the lowest compartment number
//
// The upward-only fallback keeps a small bag out of the last large
// compartment only when a medium one is free, and never wedges a large bag
// into a small compartment. Given the same inventory the allocator always
// returns the same compartment, which keeps retries and tests predictable.
//
// Example usage:
//
//	allocator := NewCompartmentAllocator()
//	compartment, err := allocator.Allocate(site, locker.SizeSmall)
//	if errors.Is(err, ErrNoCompartmentAvailable) {
//	    // Site is full for this size and everything above it
//	    return
//	}
type CompartmentAllocator struct{}

// NewCompartmentAllocator creates a new CompartmentAllocator instance.
func NewCompartmentAllocator() CompartmentAllocator {
	return CompartmentAllocator{}
}

// Allocate picks a free compartment for the requested size and claims it on
// the site aggregate in one step. Returns the claimed compartment, or
// ErrNoCompartmentAvailable when the requested size and every larger size
// are exhausted.
func (a CompartmentAllocator) Allocate(site *locker.Site, requested locker.Size) (*locker.Compartment, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}
	if err := requested.Validate(); err != nil {
		return nil, err
	}

	for _, size := range AllocationSizes(requested) {
		candidates := site.Available(size)
		if len(candidates) == 0 {
			continue
		}

		// candidates come back sorted by compartment number
		chosen := candidates[0]
		if err := site.Claim(chosen.Number()); err != nil {
			return nil, err
		}
		return chosen, nil
	}

	return nil, ErrNoCompartmentAvailable
}

// AllocationSizes returns the fallback chain for a requested size: the size
// itself followed by every larger size in ascending order.
func AllocationSizes(requested locker.Size) []locker.Size {
	var chain []locker.Size
	for _, size := range locker.AllSizes() {
		if size.Fits(requested) {
			chain = append(chain, size)
		}
	}
	return chain
}
