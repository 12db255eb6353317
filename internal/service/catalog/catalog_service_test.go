package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mzhdanova/autoservice/internal/domain"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func TestCatalogService_List_PassesFilter(t *testing.T) {
	mockRepo := &MockServiceRepository{}
	service := NewCatalogService(mockRepo)

	maxRate := 50.0
	filter := domain.ServiceFilter{Location: "lon", MaxRate: &maxRate, AvailableDay: "monday"}

	ctx := context.Background()
	mockRepo.On("List", ctx, filter).Return([]domain.Service{{ID: 1, Name: "Oil change"}}, nil).Once()

	services, err := service.List(ctx, filter)

	assert.NoError(t, err)
	assert.Len(t, services, 1)
	assert.Equal(t, "Oil change", services[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Create(t *testing.T) {
	mockRepo := &MockServiceRepository{}
	service := NewCatalogService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Service")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Service).ID = 3
	}).Return(nil).Once()

	created, err := service.Create(ctx, CreateServiceInput{
		Name:           "Tire rotation",
		Location:       "London",
		ContactInfo:    "020 1234",
		HourlyRate:     40,
		AvailableSlots: domain.Availability{"monday": "09:00-17:00"},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, "Tire rotation", created.Name)
	assert.Equal(t, 40.0, created.HourlyRate)
	mockRepo.AssertExpectations(t)
}
