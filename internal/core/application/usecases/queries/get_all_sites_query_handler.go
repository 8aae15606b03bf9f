package queries

import (
	"context"

	"washcubes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllSitesQueryHandler retrieves the locker site list with occupancy
// counts from the database.
type GetAllSitesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllSitesQueryHandler creates a handler for site list queries.
// Requires a GORM database connection for query execution.
func NewGetAllSitesQueryHandler(db *gorm.DB) GetAllSitesQueryHandler {
	return GetAllSitesQueryHandler{db: db}
}

// Handle executes the site list query. Results are sorted by name for
// consistent output.
func (h GetAllSitesQueryHandler) Handle(ctx context.Context, query GetAllSitesQuery) ([]SiteOverview, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sites.id,
			sites.name,
			sites.location_latitude,
			sites.location_longitude,
			COUNT(compartments.number),
			COALESCE(SUM(CASE WHEN compartments.is_available THEN 1 ELSE 0 END), 0)
		FROM sites
		LEFT JOIN compartments ON compartments.site_id = sites.id
		GROUP BY sites.id, sites.name, sites.location_latitude, sites.location_longitude
		ORDER BY sites.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sites := make([]SiteOverview, 0)
	for rows.Next() {
		var (
			overview  SiteOverview
			id        uuid.UUID
			latitude  float64
			longitude float64
		)

		err = rows.Scan(
			&id,
			&overview.Name,
			&latitude,
			&longitude,
			&overview.TotalCompartments,
			&overview.AvailableCompartments,
		)
		if err != nil {
			return nil, err
		}

		siteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		overview.ID = siteID

		location, locErr := kernel.NewLocation(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		overview.Location = location

		sites = append(sites, overview)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sites, nil
}
