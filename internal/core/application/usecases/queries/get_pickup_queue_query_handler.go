package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPickupQueueQueryHandler retrieves the locker-to-laundry pickup queue of
// one drop-off site from the database.
type GetPickupQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupQueueQueryHandler creates a handler for pickup queue queries.
func NewGetPickupQueueQueryHandler(db *gorm.DB) GetPickupQueueQueryHandler {
	return GetPickupQueueQueryHandler{db: db}
}

// Handle executes the query, oldest drop-off first.
func (h GetPickupQueueQueryHandler) Handle(ctx context.Context, query GetPickupQueueQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE drop_off_site_id = ?
			AND drop_off_status = ?
			AND collected_by_rider_status = ?
			AND selected_by_rider = ?
			AND cancelled = ?
		ORDER BY created_at
	`, query.SiteID().Bytes(), true, false, false, false).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
