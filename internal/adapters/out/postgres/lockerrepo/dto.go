// Package lockerrepo provides data transfer objects and mapping functions for locker site persistence.
// This package implements the repository pattern for the site domain aggregate, handling
// the conversion between domain entities and database representations.
package lockerrepo

import (
	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/locker"

	"github.com/google/uuid"
)

// SiteDTO represents the database structure for persisting locker site aggregates.
// Compartments live in their own table keyed by site and compartment number.
type SiteDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Location     LocationDTO      `gorm:"embedded;embeddedPrefix:location_"`
	Compartments []CompartmentDTO `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for site entities.
// Overrides GORM's default naming convention to use "sites".
func (SiteDTO) TableName() string {
	return "sites"
}

// LocationDTO represents the embedded geographic coordinates within the site table.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// CompartmentDTO represents the database structure for a single compartment.
// The site id and compartment number form the composite primary key.
type CompartmentDTO struct {
	SiteID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"type:varchar(16);primaryKey"`
	Size        int       `gorm:"type:smallint;not null"`
	IsAvailable bool      `gorm:"not null"`
}

// TableName specifies the database table name for compartment entities.
func (CompartmentDTO) TableName() string {
	return "compartments"
}

// fromDomain converts a site domain aggregate to its database representation.
func fromDomain(site *locker.Site) SiteDTO {
	siteID := site.ID().Bytes()
	compartments := make([]CompartmentDTO, 0, len(site.Compartments()))

	for _, c := range site.Compartments() {
		compartments = append(compartments, CompartmentDTO{
			SiteID:      siteID,
			Number:      c.Number(),
			Size:        int(c.Size()),
			IsAvailable: c.IsAvailable(),
		})
	}

	return SiteDTO{
		ID:   siteID,
		Name: site.Name(),
		Location: LocationDTO{
			Latitude:  site.Location().Latitude(),
			Longitude: site.Location().Longitude(),
		},
		Compartments: compartments,
	}
}

// toDomain converts a database DTO to a site domain aggregate.
// Reconstructs the complete aggregate including all compartments using RestoreSite.
func toDomain(dto SiteDTO) (*locker.Site, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	compartments := make([]*locker.Compartment, 0, len(dto.Compartments))
	for _, cDto := range dto.Compartments {
		c, cErr := locker.RestoreCompartment(cDto.Number, locker.Size(cDto.Size), cDto.IsAvailable)
		if cErr != nil {
			return nil, cErr
		}
		compartments = append(compartments, c)
	}

	return locker.RestoreSite(id, dto.Name, loc, compartments)
}
