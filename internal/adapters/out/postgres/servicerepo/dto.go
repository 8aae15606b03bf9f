// Package servicerepo provides data transfer objects and mapping functions for
// service catalog persistence.
package servicerepo

import (
	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/service"

	"github.com/google/uuid"
)

// ServiceDTO represents the database structure for persisting service catalogs.
// Catalog items are stored as JSON; they are loaded with the aggregate and
// never queried individually.
type ServiceDTO struct {
	ID    uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name  string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	Items []CatalogItemDTO `gorm:"serializer:json"`
}

// TableName specifies the database table name for service entities.
func (ServiceDTO) TableName() string {
	return "services"
}

// CatalogItemDTO is one priced catalog entry in its JSON storage form.
type CatalogItemDTO struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}

// fromDomain converts a service domain aggregate to its database representation.
func fromDomain(svc *service.Service) ServiceDTO {
	items := make([]CatalogItemDTO, 0, len(svc.Items()))
	for _, item := range svc.Items() {
		items = append(items, CatalogItemDTO{
			Name:  item.Name(),
			Unit:  item.Unit(),
			Price: item.Price(),
		})
	}

	return ServiceDTO{
		ID:    svc.ID().Bytes(),
		Name:  svc.Name(),
		Items: items,
	}
}

// toDomain converts a database DTO to a service domain aggregate.
func toDomain(dto ServiceDTO) (*service.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]service.CatalogItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := service.NewCatalogItem(itemDto.Name, itemDto.Unit, itemDto.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return service.RestoreService(id, dto.Name, items)
}
