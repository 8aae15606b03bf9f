package queries

import (
	"context"

	"washcubes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReadyCountsQueryHandler retrieves per-site ready counts for both rider
// legs from the database.
type GetReadyCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyCountsQueryHandler creates a handler for ready count queries.
func NewGetReadyCountsQueryHandler(db *gorm.DB) GetReadyCountsQueryHandler {
	return GetReadyCountsQueryHandler{db: db}
}

// Handle executes the query. Sites with nothing waiting on either leg are
// omitted from the result.
func (h GetReadyCountsQueryHandler) Handle(ctx context.Context, query GetReadyCountsQuery) ([]SiteReadyCounts, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT site_id, SUM(pickup_ready), SUM(delivery_ready)
		FROM (
			SELECT drop_off_site_id AS site_id, 1 AS pickup_ready, 0 AS delivery_ready
			FROM orders
			WHERE drop_off_status = ?
				AND collected_by_rider_status = ?
				AND selected_by_rider = ?
				AND cancelled = ?
			UNION ALL
			SELECT collection_site_id, 0, 1
			FROM orders
			WHERE processing_complete_status = ?
				AND out_for_delivery_status = ?
				AND selected_by_rider = ?
				AND cancelled = ?
		) AS ready
		GROUP BY site_id
		ORDER BY site_id
	`, true, false, false, false, true, false, false, false).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]SiteReadyCounts, 0)
	for rows.Next() {
		var (
			siteID        uuid.UUID
			pickupReady   int
			deliveryReady int
		)
		if err = rows.Scan(&siteID, &pickupReady, &deliveryReady); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(siteID[:])
		if idErr != nil {
			return nil, idErr
		}

		counts = append(counts, SiteReadyCounts{
			SiteID:        id,
			PickupReady:   pickupReady,
			DeliveryReady: deliveryReady,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
