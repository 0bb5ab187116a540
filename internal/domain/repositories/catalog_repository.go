package repositories

import (
	"context"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// CatalogRepository defines read access to the service and nurse tables
type CatalogRepository interface {
	// ListCategories returns every service category in display order
	ListCategories(ctx context.Context) ([]*entities.ServiceCategory, error)

	// GetCategory retrieves a category by ID
	GetCategory(ctx context.Context, id string) (*entities.ServiceCategory, error)

	// ListNurses returns the nurse pool
	ListNurses(ctx context.Context) ([]*entities.NurseRecord, error)
}
