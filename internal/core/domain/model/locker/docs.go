// Package locker provides domain entities and business logic for locker site
// and compartment management. It implements the Site aggregate root that owns
// all compartment occupancy state.
//
// The package includes:
//   - Site: The aggregate root owning a locker installation's compartments
//   - Compartment: A single physical slot with size and availability
//   - Size: An ordered size enumeration driving allocation fallback
//
// Key business rules:
//   - Compartment numbers are unique within a site
//   - The availability flag is the single source of truth for occupancy
//   - Claims on occupied compartments fail; releases are idempotent
//   - All occupancy mutation goes through the Site aggregate
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package locker
