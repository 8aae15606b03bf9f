package queries

import (
	"database/sql"
	"time"

	"washcubes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Order status labels exposed by the read model. They collapse the composite
// stage flags into the single most advanced milestone for display.
const (
	StatusCreated            = "created"
	StatusDroppedOff         = "droppedOff"
	StatusProcessing         = "processing"
	StatusDiscrepancy        = "discrepancy"
	StatusAwaitingResolution = "awaitingResolution"
	StatusProcessingComplete = "processingComplete"
	StatusOutForDelivery     = "outForDelivery"
	StatusCompleted          = "completed"
	StatusCancelled          = "cancelled"
)

// OrderSummary is the read model row shared by the order queries.
type OrderSummary struct {
	ID                    kernel.UUID
	OrderNumber           string
	UserID                kernel.UUID
	ServiceID             kernel.UUID
	DropOffSiteID         kernel.UUID
	DropOffCompartment    string
	CollectionSiteID      kernel.UUID
	CollectionCompartment string
	EstimatedPrice        float64
	FinalPrice            float64
	Status                string
	SelectedByRider       bool
	CreatedAt             time.Time
}

// orderSummaryColumns is the select list every order query scans with
// scanOrderSummary. Keep the two in lockstep.
const orderSummaryColumns = `
	id,
	order_number,
	user_id,
	service_id,
	drop_off_site_id,
	drop_off_compartment,
	collection_site_id,
	collection_compartment,
	estimated_price,
	final_price,
	selected_by_rider,
	cancelled,
	created_at,
	drop_off_status,
	processing,
	error_status,
	error_user_rejected,
	processing_complete_status,
	out_for_delivery_status,
	completed_status
`

// stageFlags carries the raw stage booleans a summary row is derived from.
type stageFlags struct {
	cancelled          bool
	droppedOff         bool
	processing         bool
	errorOpen          bool
	errorUserRejected  bool
	processingComplete bool
	outForDelivery     bool
	completed          bool
}

// statusLabel collapses the stage flags into one display status. An open
// discrepancy outranks processing progress because the customer has to act
// on it before anything else happens to the order.
func statusLabel(f stageFlags) string {
	switch {
	case f.cancelled:
		return StatusCancelled
	case f.completed:
		return StatusCompleted
	case f.outForDelivery:
		return StatusOutForDelivery
	case f.errorOpen && f.errorUserRejected:
		return StatusAwaitingResolution
	case f.errorOpen:
		return StatusDiscrepancy
	case f.processingComplete:
		return StatusProcessingComplete
	case f.processing:
		return StatusProcessing
	case f.droppedOff:
		return StatusDroppedOff
	default:
		return StatusCreated
	}
}

// scanOrderSummary reads one orderSummaryColumns row into a summary.
func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var (
		summary OrderSummary
		id      uuid.UUID
		userID  uuid.UUID
		svcID   uuid.UUID
		dropID  uuid.UUID
		collID  uuid.UUID
		flags   stageFlags
	)

	err := rows.Scan(
		&id,
		&summary.OrderNumber,
		&userID,
		&svcID,
		&dropID,
		&summary.DropOffCompartment,
		&collID,
		&summary.CollectionCompartment,
		&summary.EstimatedPrice,
		&summary.FinalPrice,
		&summary.SelectedByRider,
		&flags.cancelled,
		&summary.CreatedAt,
		&flags.droppedOff,
		&flags.processing,
		&flags.errorOpen,
		&flags.errorUserRejected,
		&flags.processingComplete,
		&flags.outForDelivery,
		&flags.completed,
	)
	if err != nil {
		return OrderSummary{}, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.ServiceID, err = kernel.UUIDFromBytes(svcID[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.DropOffSiteID, err = kernel.UUIDFromBytes(dropID[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.CollectionSiteID, err = kernel.UUIDFromBytes(collID[:]); err != nil {
		return OrderSummary{}, err
	}

	summary.Status = statusLabel(flags)
	return summary, nil
}
