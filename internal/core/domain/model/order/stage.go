package order

import "time"

// Checkpoint is one named milestone track within an order's lifecycle.
// Each checkpoint carries its own status flag and the time it last changed,
// because several tracks advance independently - delivery-leg progress and
// error resolution are not mutually exclusive.
type Checkpoint struct {
	Status      bool
	DateUpdated time.Time
}

// set flips the checkpoint on and stamps the transition time.
func (c *Checkpoint) set(now time.Time) {
	c.Status = true
	c.DateUpdated = now
}

// InProgressStage tracks the operator-side verification and processing of an
// order after drop-off. Verified means the operator inspected the bag;
// Processing means laundering is underway.
type InProgressStage struct {
	Verified    bool
	Processing  bool
	DateUpdated time.Time
}

// ErrorStage tracks a discrepancy raised by the operator during verification.
// While Status is true, forward progress through processing is suspended until
// the customer accepts the revised order or the operator processes a return.
type ErrorStage struct {
	Status          bool
	ProofPicURLs    []string
	UserAccepted    bool
	UserRejected    bool
	ReturnProcessed bool
	DateUpdated     time.Time
}

// Stage is the composite lifecycle state of an order. It is not a single
// enumeration: sub-stages flip independently and the legal combinations are
// enforced by the Order aggregate's transition methods, never by free-form
// flag mutation.
//
// The forward path is:
//
//	dropOff -> inProgress (verified, processing) -> processingComplete
//	        -> outForDelivery -> completed
//
// with orderError suspending inProgress until resolved, and collectedByRider
// tracking the locker-to-laundry transport leg.
type Stage struct {
	DropOff            Checkpoint
	InProgress         InProgressStage
	OrderError         ErrorStage
	ProcessingComplete Checkpoint
	OutForDelivery     Checkpoint
	CollectedByRider   Checkpoint
	Completed          Checkpoint
}

// ReadyForLockerPickup reports whether the order is waiting at a drop-off
// locker for a rider: dropped off, not yet collected by a rider, and not
// already claimed by a pickup job.
func (s Stage) ReadyForLockerPickup(selectedByRider bool) bool {
	return s.DropOff.Status && !s.CollectedByRider.Status && !selectedByRider
}

// ReadyForLaundryPickup reports whether the cleaned order is waiting at the
// laundry site for the return leg: processing complete, not yet out for
// delivery, and not already claimed by a delivery job.
func (s Stage) ReadyForLaundryPickup(selectedByRider bool) bool {
	return s.ProcessingComplete.Status && !s.OutForDelivery.Status && !selectedByRider
}

// AwaitingManualResolution reports whether the order is suspended with a
// rejected discrepancy. No automatic forward transition exists from this
// state; an operator return approval is the only way out.
func (s Stage) AwaitingManualResolution() bool {
	return s.OrderError.Status && s.OrderError.UserRejected
}
