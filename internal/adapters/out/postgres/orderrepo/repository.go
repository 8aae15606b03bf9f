package orderrepo

import (
	"context"
	"errors"
	"time"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/order"
	"washcubes/internal/core/ports"
	"washcubes/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
// A unique index on order_number turns number collisions into
// ports.ErrDuplicateOrderNumber so the caller can regenerate and retry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicateOrderNumber
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// The update is guarded by the version the aggregate was loaded with; a row
// modified by a concurrent transaction yields ports.ErrConcurrentUpdate.
// Select("*") forces false booleans and cleared fields to persist.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ports.ErrConcurrentUpdate
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its customer-facing order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetReadyForLockerPickup retrieves orders waiting at the given drop-off site
// for a rider: dropped off, not collected, not claimed by a pickup job.
func (r *GormOrderRepository) GetReadyForLockerPickup(ctx context.Context, siteID kernel.UUID) ([]*order.Order, error) {
	if err := siteID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Find(&dtos,
		"drop_off_site_id = ? AND drop_off_status = ? AND collected_by_rider_status = ? AND selected_by_rider = ? AND cancelled = ?",
		siteID.Bytes(), true, false, false, false,
	).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetReadyForLaundryPickup retrieves cleaned orders waiting for the return
// leg towards the given collection site.
func (r *GormOrderRepository) GetReadyForLaundryPickup(ctx context.Context, siteID kernel.UUID) ([]*order.Order, error) {
	if err := siteID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Find(&dtos,
		"collection_site_id = ? AND processing_complete_status = ? AND out_for_delivery_status = ? AND selected_by_rider = ? AND cancelled = ?",
		siteID.Bytes(), true, false, false, false,
	).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// SelectForJob atomically claims the given orders for a rider job and returns
// the ids it actually claimed. Rows already claimed by a concurrent job are
// left untouched, so two jobs can never share an order.
func (r *GormOrderRepository) SelectForJob(ctx context.Context, ids []kernel.UUID) ([]kernel.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		UPDATE orders
		SET selected_by_rider = TRUE,
		    version = version + 1
		WHERE id IN ?
		  AND selected_by_rider = FALSE
		RETURNING id
	`, rawIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claimed := make([]kernel.UUID, 0, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		claimedID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		claimed = append(claimed, claimedID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return claimed, nil
}

// ReleaseFromJob reverses SelectForJob for orders the routing service left
// out of a job, so a later batch can claim them again.
func (r *GormOrderRepository) ReleaseFromJob(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET selected_by_rider = FALSE,
		    version = version + 1
		WHERE id IN ?
		  AND selected_by_rider = TRUE
	`, rawIDs).Error
}

// GetStaleUnconfirmed retrieves orders created before the cutoff whose bag
// never arrived at the drop-off compartment and that were not cancelled.
func (r *GormOrderRepository) GetStaleUnconfirmed(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Find(&dtos,
		"created_at < ? AND drop_off_status = ? AND cancelled = ?",
		cutoff, false, false,
	).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
