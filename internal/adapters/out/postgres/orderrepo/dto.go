// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composite stage is flattened into prefixed boolean and timestamp columns
// so readiness predicates stay plain indexed column filters instead of JSON
// path expressions. Item lines are stored as JSON because they are never
// filtered on, only loaded with the aggregate.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"uniqueIndex;size:10"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	ServiceID   uuid.UUID `gorm:"type:uuid"`

	DropOffSiteID      uuid.UUID `gorm:"type:uuid;index"`
	DropOffCompartment string

	CollectionSiteID      uuid.UUID `gorm:"type:uuid;index"`
	CollectionCompartment string

	Items    []ItemDTO `gorm:"serializer:json"`
	OldItems []ItemDTO `gorm:"serializer:json"`

	EstimatedPrice float64
	FinalPrice     float64

	Stage StageDTO `gorm:"embedded"`

	SelectedByRider bool `gorm:"index"`
	Cancelled       bool
	CreatedAt       time.Time
	Version         int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one priced order line in its JSON storage form.
type ItemDTO struct {
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// CheckpointDTO is the flattened form of a single lifecycle checkpoint.
type CheckpointDTO struct {
	Status      bool
	DateUpdated time.Time
}

// StageDTO flattens the composite order stage into one set of columns.
type StageDTO struct {
	DropOff CheckpointDTO `gorm:"embedded;embeddedPrefix:drop_off_"`

	Verified              bool
	Processing            bool
	InProgressDateUpdated time.Time

	ErrorStatus          bool
	ErrorProofPicURLs    []string `gorm:"serializer:json"`
	ErrorUserAccepted    bool
	ErrorUserRejected    bool
	ErrorReturnProcessed bool
	ErrorDateUpdated     time.Time

	ProcessingComplete CheckpointDTO `gorm:"embedded;embeddedPrefix:processing_complete_"`
	OutForDelivery     CheckpointDTO `gorm:"embedded;embeddedPrefix:out_for_delivery_"`
	CollectedByRider   CheckpointDTO `gorm:"embedded;embeddedPrefix:collected_by_rider_"`
	Completed          CheckpointDTO `gorm:"embedded;embeddedPrefix:completed_"`
}

func checkpointFromDomain(c order.Checkpoint) CheckpointDTO {
	return CheckpointDTO{Status: c.Status, DateUpdated: c.DateUpdated}
}

func checkpointToDomain(dto CheckpointDTO) order.Checkpoint {
	return order.Checkpoint{Status: dto.Status, DateUpdated: dto.DateUpdated}
}

func itemsFromDomain(items []order.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemDTO{
			Name:      item.Name(),
			Unit:      item.Unit(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}
	return dtos
}

func itemsToDomain(dtos []ItemDTO) ([]order.Item, error) {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := order.NewItem(dto.Name, dto.Unit, dto.UnitPrice, dto.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	stage := aggregate.Stage()

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		UserID:      aggregate.UserID().Bytes(),
		ServiceID:   aggregate.ServiceID().Bytes(),

		DropOffSiteID:      aggregate.DropOffSiteID().Bytes(),
		DropOffCompartment: aggregate.DropOffCompartment(),

		CollectionSiteID:      aggregate.CollectionSiteID().Bytes(),
		CollectionCompartment: aggregate.CollectionCompartment(),

		Items:    itemsFromDomain(aggregate.Items()),
		OldItems: itemsFromDomain(aggregate.OldItems()),

		EstimatedPrice: aggregate.EstimatedPrice(),
		FinalPrice:     aggregate.FinalPrice(),

		Stage: StageDTO{
			DropOff: checkpointFromDomain(stage.DropOff),

			Verified:              stage.InProgress.Verified,
			Processing:            stage.InProgress.Processing,
			InProgressDateUpdated: stage.InProgress.DateUpdated,

			ErrorStatus:          stage.OrderError.Status,
			ErrorProofPicURLs:    stage.OrderError.ProofPicURLs,
			ErrorUserAccepted:    stage.OrderError.UserAccepted,
			ErrorUserRejected:    stage.OrderError.UserRejected,
			ErrorReturnProcessed: stage.OrderError.ReturnProcessed,
			ErrorDateUpdated:     stage.OrderError.DateUpdated,

			ProcessingComplete: checkpointFromDomain(stage.ProcessingComplete),
			OutForDelivery:     checkpointFromDomain(stage.OutForDelivery),
			CollectedByRider:   checkpointFromDomain(stage.CollectedByRider),
			Completed:          checkpointFromDomain(stage.Completed),
		},

		SelectedByRider: aggregate.SelectedByRider(),
		Cancelled:       aggregate.Cancelled(),
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including stage flags and the
// optimistic-concurrency version using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}
	dropOffSiteID, err := kernel.UUIDFromBytes(dto.DropOffSiteID[:])
	if err != nil {
		return nil, err
	}
	collectionSiteID, err := kernel.UUIDFromBytes(dto.CollectionSiteID[:])
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}
	oldItems, err := itemsToDomain(dto.OldItems)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                    id,
		OrderNumber:           dto.OrderNumber,
		UserID:                userID,
		ServiceID:             serviceID,
		DropOffSiteID:         dropOffSiteID,
		DropOffCompartment:    dto.DropOffCompartment,
		CollectionSiteID:      collectionSiteID,
		CollectionCompartment: dto.CollectionCompartment,
		Items:                 items,
		OldItems:              oldItems,
		EstimatedPrice:        dto.EstimatedPrice,
		FinalPrice:            dto.FinalPrice,
		Stage: order.Stage{
			DropOff: checkpointToDomain(dto.Stage.DropOff),
			InProgress: order.InProgressStage{
				Verified:    dto.Stage.Verified,
				Processing:  dto.Stage.Processing,
				DateUpdated: dto.Stage.InProgressDateUpdated,
			},
			OrderError: order.ErrorStage{
				Status:          dto.Stage.ErrorStatus,
				ProofPicURLs:    dto.Stage.ErrorProofPicURLs,
				UserAccepted:    dto.Stage.ErrorUserAccepted,
				UserRejected:    dto.Stage.ErrorUserRejected,
				ReturnProcessed: dto.Stage.ErrorReturnProcessed,
				DateUpdated:     dto.Stage.ErrorDateUpdated,
			},
			ProcessingComplete: checkpointToDomain(dto.Stage.ProcessingComplete),
			OutForDelivery:     checkpointToDomain(dto.Stage.OutForDelivery),
			CollectedByRider:   checkpointToDomain(dto.Stage.CollectedByRider),
			Completed:          checkpointToDomain(dto.Stage.Completed),
		},
		SelectedByRider: dto.SelectedByRider,
		Cancelled:       dto.Cancelled,
		CreatedAt:       dto.CreatedAt,
		Version:         dto.Version,
	})
}
