package catalog

import (
	"context"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
)

// StaticCatalogAdapter serves the built-in service and nurse tables
type StaticCatalogAdapter struct {
	categories []entities.ServiceCategory
	nurses     []entities.NurseRecord
}

// NewStaticCatalogAdapter creates a catalog over the default tables
func NewStaticCatalogAdapter() repositories.CatalogRepository {
	return NewStaticCatalogAdapterWith(DefaultCategories(), DefaultNurses())
}

// NewStaticCatalogAdapterWith creates a catalog over the given tables
func NewStaticCatalogAdapterWith(categories []entities.ServiceCategory, nurses []entities.NurseRecord) *StaticCatalogAdapter {
	return &StaticCatalogAdapter{
		categories: categories,
		nurses:     nurses,
	}
}

// ListCategories returns copies of every category in display order
func (a *StaticCatalogAdapter) ListCategories(ctx context.Context) ([]*entities.ServiceCategory, error) {
	out := make([]*entities.ServiceCategory, 0, len(a.categories))
	for i := range a.categories {
		out = append(out, copyCategory(&a.categories[i]))
	}
	return out, nil
}

// GetCategory retrieves a category by ID
func (a *StaticCatalogAdapter) GetCategory(ctx context.Context, id string) (*entities.ServiceCategory, error) {
	for i := range a.categories {
		if a.categories[i].ID == id {
			return copyCategory(&a.categories[i]), nil
		}
	}
	return nil, apperrors.NewNotFoundError("service not found")
}

// ListNurses returns copies of the nurse pool
func (a *StaticCatalogAdapter) ListNurses(ctx context.Context) ([]*entities.NurseRecord, error) {
	out := make([]*entities.NurseRecord, 0, len(a.nurses))
	for i := range a.nurses {
		n := a.nurses[i]
		n.Languages = append([]string(nil), n.Languages...)
		out = append(out, &n)
	}
	return out, nil
}

func copyCategory(c *entities.ServiceCategory) *entities.ServiceCategory {
	cp := *c
	cp.Details = append([]entities.ServiceLineItem(nil), c.Details...)
	return &cp
}
