package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOperatorWorklistQueryHandler retrieves every order an operator may have
// to act on: bags that arrived at the laundry and await verification, orders
// being processed, orders suspended with an open discrepancy, and cleaned
// orders sitting in a locker awaiting customer collection. Completed and
// cancelled orders drop off the list.
type GetOperatorWorklistQueryHandler struct {
	db *gorm.DB
}

// NewGetOperatorWorklistQueryHandler creates a handler for worklist queries.
// Requires a GORM database connection for query execution.
func NewGetOperatorWorklistQueryHandler(db *gorm.DB) GetOperatorWorklistQueryHandler {
	return GetOperatorWorklistQueryHandler{db: db}
}

// Handle executes the worklist query. Oldest orders come first so the queue
// drains in arrival order.
func (h GetOperatorWorklistQueryHandler) Handle(
	ctx context.Context,
	query GetOperatorWorklistQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE cancelled = ?
		  AND completed_status = ?
		  AND (
			(collected_by_rider_status = ? AND verified = ?)
			OR processing = ?
			OR (error_status = ? AND error_return_processed = ?)
			OR out_for_delivery_status = ?
		  )
		ORDER BY created_at
	`, false, false, true, false, true, true, false, true).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	worklist := make([]OrderSummary, 0)
	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		worklist = append(worklist, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return worklist, nil
}
