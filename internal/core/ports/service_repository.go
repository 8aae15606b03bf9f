package ports

import (
	"context"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/service"
)

// ServiceRepository defines the persistence contract for the laundry service
// catalog. The catalog is read-mostly; orders price their lines from it at
// creation time.
type ServiceRepository interface {
	// Add persists a new service with its catalog.
	Add(ctx context.Context, svc *service.Service) error

	// Get retrieves a service aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*service.Service, error)

	// GetAll retrieves every service offering.
	GetAll(ctx context.Context) ([]*service.Service, error)
}
