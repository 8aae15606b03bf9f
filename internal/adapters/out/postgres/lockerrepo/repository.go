package lockerrepo

import (
	"context"
	"errors"
	"fmt"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/locker"
	"washcubes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLockerRepository implements LockerRepository using GORM.
type GormLockerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLockerRepository creates a new GORM locker site repository.
func NewGormLockerRepository(db *gorm.DB, tracker aggregateTracker) *GormLockerRepository {
	return &GormLockerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new site with its compartments to the database.
func (r *GormLockerRepository) Add(ctx context.Context, aggregate *locker.Site) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing site to the database.
//
// Occupancy flips are written one row at a time. A claim only lands on a row
// that is still available, so when two transactions loaded the same site and
// picked the same compartment, the second write affects zero rows and fails
// with locker.ErrCompartmentOccupied instead of silently double-booking the
// slot. Releases are unconditional, which keeps them idempotent.
func (r *GormLockerRepository) Update(ctx context.Context, aggregate *locker.Site) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&SiteDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":               dto.Name,
		"location_latitude":  dto.Location.Latitude,
		"location_longitude": dto.Location.Longitude,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	claimed, released := aggregate.TakePendingChanges()

	for _, number := range released {
		if err := db.Model(&CompartmentDTO{}).
			Where("site_id = ? AND number = ?", dto.ID, number).
			Update("is_available", true).Error; err != nil {
			return err
		}
	}

	for _, number := range claimed {
		res := db.Model(&CompartmentDTO{}).
			Where("site_id = ? AND number = ? AND is_available = ?", dto.ID, number, true).
			Update("is_available", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", locker.ErrCompartmentOccupied, number)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a site with its compartments by ID.
func (r *GormLockerRepository) Get(ctx context.Context, id kernel.UUID) (*locker.Site, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SiteDTO
	if err := r.db.WithContext(ctx).
		Preload("Compartments", func(db *gorm.DB) *gorm.DB {
			return db.Order("compartments.number")
		}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("site", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every site in the network.
func (r *GormLockerRepository) GetAll(ctx context.Context) ([]*locker.Site, error) {
	var dtos []SiteDTO
	if err := r.db.WithContext(ctx).
		Preload("Compartments", func(db *gorm.DB) *gorm.DB {
			return db.Order("compartments.number")
		}).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	sites := make([]*locker.Site, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}

	return sites, nil
}
