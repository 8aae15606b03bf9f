package order

import (
	"errors"
	"fmt"
	"time"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidTransition indicates that a lifecycle transition was attempted
	// while its guard precondition did not hold. The order is never left
	// half-mutated when this error is returned.
	ErrInvalidTransition = errors.New("invalid order stage transition")

	// ErrAlreadySelectedByRider indicates that a rider job tried to claim an
	// order that another job already claimed.
	ErrAlreadySelectedByRider = errors.New("order already selected by a rider job")

	// ErrItemsAreRequired indicates an order or edit with no priced lines.
	ErrItemsAreRequired = errors.New("order requires at least one item")
)

// Order represents one customer's laundry transaction. It is the aggregate
// root that manages the lifecycle from creation through drop-off, operator
// verification, the return transport leg, and final collection.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a well-formed order number
//   - Must reference a drop-off site/compartment and a collection site
//   - Must carry at least one validated item line
//   - Stage sub-flags only change through guarded transition methods
//   - An open orderError suspends forward progress until resolved
//   - Cancellation is only reachable before drop-off
//
// The compartment tied to an order is occupied from allocation until either
// cancellation (before drop-off) or final collection. The aggregate only
// records the compartment references; the Site aggregate owns the occupancy
// flags themselves.
type Order struct {
	id          kernel.UUID
	orderNumber string
	userID      kernel.UUID
	serviceID   kernel.UUID

	// dropOffSiteID and dropOffCompartment locate the claimed drop-off slot
	dropOffSiteID      kernel.UUID
	dropOffCompartment string

	// collectionSiteID is chosen at creation; the compartment is assigned
	// when the rider returns the cleaned order
	collectionSiteID      kernel.UUID
	collectionCompartment string

	items    []Item
	oldItems []Item

	estimatedPrice float64
	finalPrice     float64

	stage           Stage
	selectedByRider bool
	cancelled       bool

	createdAt time.Time

	// version supports optimistic concurrency control in the repository
	version int

	isConstructed bool
}

// NewOrder creates a new Order with validation. The estimated price is the
// sum of the item line totals; the final price defaults to the estimate until
// an operator overrides it.
//
// The constructor does not touch compartment occupancy. Allocation and claim
// happen in the create-order use case before the order is confirmed.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	userID kernel.UUID,
	serviceID kernel.UUID,
	dropOffSiteID kernel.UUID,
	dropOffCompartment string,
	collectionSiteID kernel.UUID,
	items []Item,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setUserID(userID),
		o.setServiceID(serviceID),
		o.setDropOff(dropOffSiteID, dropOffCompartment),
		o.setCollectionSite(collectionSiteID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.estimatedPrice = sumLineTotals(o.items)
	o.finalPrice = o.estimatedPrice
	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID                    kernel.UUID
	OrderNumber           string
	UserID                kernel.UUID
	ServiceID             kernel.UUID
	DropOffSiteID         kernel.UUID
	DropOffCompartment    string
	CollectionSiteID      kernel.UUID
	CollectionCompartment string
	Items                 []Item
	OldItems              []Item
	EstimatedPrice        float64
	FinalPrice            float64
	Stage                 Stage
	SelectedByRider       bool
	Cancelled             bool
	CreatedAt             time.Time
	Version               int
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its stage flags, audit copy and optimistic-concurrency version.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(
		p.ID, p.OrderNumber, p.UserID, p.ServiceID,
		p.DropOffSiteID, p.DropOffCompartment, p.CollectionSiteID, p.Items,
	)
	if err != nil {
		return nil, err
	}

	o.collectionCompartment = p.CollectionCompartment
	o.oldItems = p.OldItems
	o.estimatedPrice = p.EstimatedPrice
	o.finalPrice = p.FinalPrice
	o.stage = p.Stage
	o.selectedByRider = p.SelectedByRider
	o.cancelled = p.Cancelled
	o.createdAt = p.CreatedAt
	o.version = p.Version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string { return o.orderNumber }

// UserID returns the customer who placed the order.
func (o *Order) UserID() kernel.UUID { return o.userID }

// ServiceID returns the service catalog the items were resolved from.
func (o *Order) ServiceID() kernel.UUID { return o.serviceID }

// DropOffSiteID returns the locker site where the bag is dropped off.
func (o *Order) DropOffSiteID() kernel.UUID { return o.dropOffSiteID }

// DropOffCompartment returns the claimed drop-off compartment number.
func (o *Order) DropOffCompartment() string { return o.dropOffCompartment }

// CollectionSiteID returns the locker site the cleaned order returns to.
func (o *Order) CollectionSiteID() kernel.UUID { return o.collectionSiteID }

// CollectionCompartment returns the compartment at the collection site,
// empty until the return delivery assigns one.
func (o *Order) CollectionCompartment() string { return o.collectionCompartment }

// Items returns the current priced lines of the order.
func (o *Order) Items() []Item { return o.items }

// OldItems returns the audit copy of the item list taken before an operator
// edit, nil if the order was never edited.
func (o *Order) OldItems() []Item { return o.oldItems }

// EstimatedPrice returns the price computed from the customer's selection.
func (o *Order) EstimatedPrice() float64 { return o.estimatedPrice }

// FinalPrice returns the operator-confirmed price.
func (o *Order) FinalPrice() float64 { return o.finalPrice }

// Stage returns the composite lifecycle state.
func (o *Order) Stage() Stage { return o.stage }

// SelectedByRider reports whether a rider job has claimed this order.
func (o *Order) SelectedByRider() bool { return o.selectedByRider }

// Cancelled reports whether the order was cancelled before drop-off.
func (o *Order) Cancelled() bool { return o.cancelled }

// CreatedAt returns the confirmation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Version returns the optimistic-concurrency version of the aggregate.
func (o *Order) Version() int { return o.version }

// SetCreatedAt stamps the confirmation time. Called once when the order is
// first persisted.
func (o *Order) SetCreatedAt(now time.Time) {
	o.createdAt = now
}

// Cancel aborts the order before drop-off.
//
// Cancellation is an absorbing state reachable only while the bag has not
// been dropped off; afterwards the order must run its course. The caller is
// responsible for releasing the held compartment via the Site aggregate.
func (o *Order) Cancel() error {
	if o.cancelled {
		return fmt.Errorf("%w: order is already cancelled", ErrInvalidTransition)
	}
	if o.stage.DropOff.Status {
		return fmt.Errorf("%w: cannot cancel after drop-off", ErrInvalidTransition)
	}

	o.cancelled = true
	return nil
}

// ConfirmDropOff records that the customer placed the bag in the claimed
// compartment.
func (o *Order) ConfirmDropOff(now time.Time) error {
	if o.cancelled {
		return fmt.Errorf("%w: order is cancelled", ErrInvalidTransition)
	}
	if o.stage.DropOff.Status {
		return fmt.Errorf("%w: drop-off already confirmed", ErrInvalidTransition)
	}

	o.stage.DropOff.set(now)
	return nil
}

// OperatorApprove records that the operator verified the bag contents match
// the order as placed. Processing starts and the final price is fixed to the
// estimate. Legal only after drop-off and while no discrepancy is open.
func (o *Order) OperatorApprove(now time.Time) error {
	if err := o.requireDroppedOff(); err != nil {
		return err
	}
	if o.stage.OrderError.Status {
		return fmt.Errorf("%w: discrepancy is open", ErrInvalidTransition)
	}

	o.stage.InProgress.Verified = true
	o.stage.InProgress.Processing = true
	o.stage.InProgress.DateUpdated = now
	o.finalPrice = o.estimatedPrice
	return nil
}

// OperatorEdit records a discrepancy found during verification: the operator
// replaces the item list (keeping the prior list as an audit copy), sets the
// corrected final price and opens the orderError stage with proof pictures.
//
// This is the sole path that raises the error state. Notifying the customer
// is the use case layer's job; the aggregate only mutates state.
func (o *Order) OperatorEdit(newItems []Item, proofPicURLs []string, finalPrice float64, now time.Time) error {
	if err := o.requireDroppedOff(); err != nil {
		return err
	}
	if len(newItems) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range newItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if finalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("finalPrice is invalid",
			fmt.Errorf("%f is negative", finalPrice))
	}

	o.oldItems = o.items
	o.items = newItems
	o.finalPrice = finalPrice

	o.stage.InProgress.Verified = true
	o.stage.InProgress.DateUpdated = now

	o.stage.OrderError.Status = true
	o.stage.OrderError.DateUpdated = now
	o.stage.OrderError.ProofPicURLs = append(o.stage.OrderError.ProofPicURLs, proofPicURLs...)
	return nil
}

// ResolveError records the customer accepting the operator's revision.
// The discrepancy closes and processing resumes.
func (o *Order) ResolveError(now time.Time) error {
	if !o.stage.OrderError.Status {
		return fmt.Errorf("%w: no open discrepancy to resolve", ErrInvalidTransition)
	}

	o.stage.OrderError.Status = false
	o.stage.OrderError.UserAccepted = true
	o.stage.OrderError.DateUpdated = now
	o.stage.InProgress.Processing = true
	o.stage.InProgress.DateUpdated = now
	return nil
}

// RejectError records the customer rejecting the operator's revision.
// The discrepancy stays open and the order is suspended awaiting manual
// resolution; the only forward path is ApproveReturn.
func (o *Order) RejectError(now time.Time) error {
	if !o.stage.OrderError.Status {
		return fmt.Errorf("%w: no open discrepancy to reject", ErrInvalidTransition)
	}

	o.stage.OrderError.UserRejected = true
	o.stage.OrderError.DateUpdated = now
	return nil
}

// ConfirmProcessingComplete records that laundering finished and the order is
// ready for the return transport leg.
func (o *Order) ConfirmProcessingComplete(now time.Time) error {
	if !o.stage.InProgress.Processing {
		return fmt.Errorf("%w: order is not processing", ErrInvalidTransition)
	}
	if o.stage.OrderError.Status {
		return fmt.Errorf("%w: discrepancy is open", ErrInvalidTransition)
	}

	o.stage.ProcessingComplete.set(now)
	return nil
}

// ApproveReturn closes an error/return cycle: the rejected items are sent
// back unprocessed. This is an alternate entry into the processing-complete
// state that bypasses the normal approval path.
func (o *Order) ApproveReturn(now time.Time) error {
	if !o.stage.OrderError.Status {
		return fmt.Errorf("%w: no open discrepancy to return", ErrInvalidTransition)
	}

	o.stage.OrderError.ReturnProcessed = true
	o.stage.OrderError.DateUpdated = now
	o.stage.ProcessingComplete.set(now)
	return nil
}

// MarkSelectedByRider claims the order for a rider job.
// Only the job dispatch gateway may call this, and exactly for the orders the
// created job includes. Fails if another job already claimed the order.
func (o *Order) MarkSelectedByRider() error {
	if o.selectedByRider {
		return ErrAlreadySelectedByRider
	}

	o.selectedByRider = true
	return nil
}

// MarkCollectedByRider records the rider picking the bag out of the drop-off
// compartment for the locker-to-laundry leg. The rider selection resets so a
// later delivery job can claim the order again.
func (o *Order) MarkCollectedByRider(now time.Time) error {
	if !o.stage.DropOff.Status {
		return fmt.Errorf("%w: order was never dropped off", ErrInvalidTransition)
	}
	if !o.selectedByRider {
		return fmt.Errorf("%w: order is not part of a pickup job", ErrInvalidTransition)
	}
	if o.stage.CollectedByRider.Status {
		return fmt.Errorf("%w: order already collected by a rider", ErrInvalidTransition)
	}

	o.stage.CollectedByRider.set(now)
	o.selectedByRider = false
	return nil
}

// MarkOutForDelivery records the rider leaving the laundry site with the
// cleaned order and the collection compartment assigned for it.
func (o *Order) MarkOutForDelivery(collectionCompartment string, now time.Time) error {
	if !o.stage.ProcessingComplete.Status {
		return fmt.Errorf("%w: processing is not complete", ErrInvalidTransition)
	}
	if !o.selectedByRider {
		return fmt.Errorf("%w: order is not part of a delivery job", ErrInvalidTransition)
	}
	if o.stage.OutForDelivery.Status {
		return fmt.Errorf("%w: order is already out for delivery", ErrInvalidTransition)
	}
	if collectionCompartment == "" {
		return errs.NewValueIsRequiredError("collectionCompartment is required")
	}

	o.stage.OutForDelivery.set(now)
	o.collectionCompartment = collectionCompartment
	o.selectedByRider = false
	return nil
}

// ConfirmCollection records the customer taking the cleaned order out of the
// collection compartment. Completed is the final state; releasing the
// compartment is the caller's job and is idempotent on the Site aggregate.
func (o *Order) ConfirmCollection(now time.Time) error {
	if !o.stage.OutForDelivery.Status {
		return fmt.Errorf("%w: order is not out for delivery", ErrInvalidTransition)
	}
	if o.stage.Completed.Status {
		return fmt.Errorf("%w: order is already completed", ErrInvalidTransition)
	}

	o.stage.Completed.set(now)
	return nil
}

func (o *Order) requireDroppedOff() error {
	if o.cancelled {
		return fmt.Errorf("%w: order is cancelled", ErrInvalidTransition)
	}
	if !o.stage.DropOff.Status {
		return fmt.Errorf("%w: order was never dropped off", ErrInvalidTransition)
	}
	if o.stage.Completed.Status {
		return fmt.Errorf("%w: order is already completed", ErrInvalidTransition)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if err := ValidateOrderNumber(orderNumber); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return fmt.Errorf("userId: %w", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return fmt.Errorf("serviceId: %w", err)
	}
	o.serviceID = serviceID
	return nil
}

func (o *Order) setDropOff(siteID kernel.UUID, compartment string) error {
	if err := siteID.Validate(); err != nil {
		return fmt.Errorf("dropOffSiteId: %w", err)
	}
	if compartment == "" {
		return errs.NewValueIsRequiredError("dropOffCompartment is required")
	}
	o.dropOffSiteID = siteID
	o.dropOffCompartment = compartment
	return nil
}

func (o *Order) setCollectionSite(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return fmt.Errorf("collectionSiteId: %w", err)
	}
	o.collectionSiteID = siteID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func sumLineTotals(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}
