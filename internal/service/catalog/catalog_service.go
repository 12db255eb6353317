package catalog

import (
	"context"

	"github.com/mzhdanova/autoservice/internal/domain"
	"github.com/mzhdanova/autoservice/internal/repository"
)

type CatalogUseCase interface {
	List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
	Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
}

type CreateServiceInput struct {
	Name           string              `json:"name"`
	Location       string              `json:"location"`
	ContactInfo    string              `json:"contact_info"`
	HourlyRate     float64             `json:"hourly_rate"`
	AvailableSlots domain.Availability `json:"available_slots"`
}

type CatalogService struct {
	services repository.ServiceRepository
}

func NewCatalogService(services repository.ServiceRepository) *CatalogService {
	return &CatalogService{services: services}
}

func (s *CatalogService) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	return s.services.List(ctx, filter)
}

// Create persists the listing as given. Beyond the schema constraints
// (non-negative rate) there is deliberately no validation here.
func (s *CatalogService) Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error) {
	service := &domain.Service{
		Name:           input.Name,
		Location:       input.Location,
		ContactInfo:    input.ContactInfo,
		HourlyRate:     input.HourlyRate,
		AvailableSlots: input.AvailableSlots,
	}
	if err := s.services.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
