// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the locker laundry system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CompartmentAllocator: A domain service that chooses and claims a locker
//     compartment for a new order, falling back strictly upward through sizes
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
