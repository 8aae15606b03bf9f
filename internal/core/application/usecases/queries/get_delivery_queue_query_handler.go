package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveryQueueQueryHandler retrieves the laundry-to-locker delivery queue
// of one collection site from the database.
type GetDeliveryQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueueQueryHandler creates a handler for delivery queue queries.
func NewGetDeliveryQueueQueryHandler(db *gorm.DB) GetDeliveryQueueQueryHandler {
	return GetDeliveryQueueQueryHandler{db: db}
}

// Handle executes the query, oldest order first.
func (h GetDeliveryQueueQueryHandler) Handle(ctx context.Context, query GetDeliveryQueueQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE collection_site_id = ?
			AND processing_complete_status = ?
			AND out_for_delivery_status = ?
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
