// Package order provides domain entities and business logic for order management
// in the locker laundry system. It implements the Order aggregate root with
// lifecycle management and guarded stage transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, pricing and lifecycle
//   - Stage: A composite state record tracking drop-off, verification, errors,
//     processing, delivery and collection
//   - Item: A priced line resolved from the service catalog
//   - Order number generation and validation
//
// Key business rules:
//   - Orders must reference a drop-off site/compartment and a collection site
//   - The lifecycle runs dropOff -> inProgress -> processingComplete ->
//     outForDelivery -> completed, with an orderError branch opened by operator
//     edits and closed by customer acceptance or an approved return
//   - Cancellation is allowed only before drop-off
//   - A rider job claims orders exclusively via the selectedByRider flag
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
