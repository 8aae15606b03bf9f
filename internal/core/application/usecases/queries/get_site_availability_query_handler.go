package queries

import (
	"context"

	"washcubes/internal/core/domain/model/locker"

	"gorm.io/gorm"
)

// GetSiteAvailabilityQueryHandler retrieves per-size compartment counts for
// one locker site from the database.
type GetSiteAvailabilityQueryHandler struct {
	db *gorm.DB
}

// NewGetSiteAvailabilityQueryHandler creates a handler for site availability queries.
// Requires a GORM database connection for query execution.
func NewGetSiteAvailabilityQueryHandler(db *gorm.DB) GetSiteAvailabilityQueryHandler {
	return GetSiteAvailabilityQueryHandler{db: db}
}

// Handle executes the availability query. Sizes the site has no compartments
// of are omitted from the result; rows are ordered smallest size first.
func (h GetSiteAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetSiteAvailabilityQuery,
) ([]SizeAvailability, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			size,
			COUNT(*),
			SUM(CASE WHEN is_available THEN 1 ELSE 0 END)
		FROM compartments
		WHERE site_id = ?
		GROUP BY size
		ORDER BY size
	`, query.SiteID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	availability := make([]SizeAvailability, 0)
	for rows.Next() {
		var (
			size      int
			total     int
			available int
		)
		if err = rows.Scan(&size, &total, &available); err != nil {
			return nil, err
		}

		availability = append(availability, SizeAvailability{
			Size:      locker.Size(size).String(),
			Total:     total,
			Available: available,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return availability, nil
}
