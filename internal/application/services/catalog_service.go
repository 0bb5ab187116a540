package services

import (
	"context"
	"sort"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/repositories"
	"github.com/zatekoja/nursecare/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// CatalogService exposes the read-only service and nurse tables
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListCategories returns every service category in display order
func (s *CatalogService) ListCategories(ctx context.Context) ([]*entities.ServiceCategory, error) {
	return s.repo.ListCategories(ctx)
}

// GetCategory retrieves a category by ID
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*entities.ServiceCategory, error) {
	ctx, span := observability.StartSpan(ctx, "CatalogService.GetCategory")
	defer span.End()
	observability.SetSpanAttributes(span, attribute.String("category.id", id))

	category, err := s.repo.GetCategory(ctx, id)
	observability.RecordError(span, err)
	return category, err
}

// FindLineItem resolves a line item within a category
func (s *CatalogService) FindLineItem(ctx context.Context, categoryID, itemID string) (entities.ServiceLineItem, error) {
	category, err := s.GetCategory(ctx, categoryID)
	if err != nil {
		return entities.ServiceLineItem{}, err
	}

	item, ok := category.LineItem(itemID)
	if !ok {
		return entities.ServiceLineItem{}, apperrors.NewNotFoundError("service item not found")
	}
	return item, nil
}

// ListNurses returns the nurse pool
func (s *CatalogService) ListNurses(ctx context.Context) ([]*entities.NurseRecord, error) {
	return s.repo.ListNurses(ctx)
}

// AvailableNursesByDistance returns the available nurses, nearest first.
// Nurses at the same distance keep their pool order.
func (s *CatalogService) AvailableNursesByDistance(ctx context.Context) ([]*entities.NurseRecord, error) {
	nurses, err := s.repo.ListNurses(ctx)
	if err != nil {
		return nil, err
	}
	return RankAvailableNurses(nurses), nil
}

// RankAvailableNurses filters nurses by availability and sorts them by distance
func RankAvailableNurses(nurses []*entities.NurseRecord) []*entities.NurseRecord {
	available := make([]*entities.NurseRecord, 0, len(nurses))
	for _, n := range nurses {
		if n.Available {
			available = append(available, n)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].DistanceKm < available[j].DistanceKm
	})
	return available
}
