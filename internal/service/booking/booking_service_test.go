package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mzhdanova/autoservice/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

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

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendBookingConfirmation(ctx context.Context, confirmation domain.BookingConfirmation) error {
	args := m.Called(ctx, confirmation)
	return args.Error(0)
}

func validInput() BookInput {
	return BookInput{
		ServiceID:   7,
		ClientName:  "Ana",
		ClientEmail: "ana@example.com",
		Date:        "2024-05-01",
		Time:        "10:00",
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockServices := &MockServiceRepository{}
	mockNotifier := &MockNotifier{}

	service := NewBookingService(mockBookings, mockServices, mockNotifier, zerolog.Nop())

	ctx := context.Background()
	mockServices.On("GetByID", ctx, int64(7)).Return(&domain.Service{ID: 7, Name: "Brake check"}, nil).Once()
	mockBookings.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Booking).ID = 1
	}).Return(nil).Once()
	mockNotifier.On("SendBookingConfirmation", ctx, mock.MatchedBy(func(c domain.BookingConfirmation) bool {
		return c.To == "ana@example.com" && c.ServiceName == "Brake check" && c.Date == "2024-05-01" && c.Time == "10:00"
	})).Return(nil).Once()

	result, err := service.Book(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.Notified)
	assert.Equal(t, int64(7), result.Booking.ServiceID)
	assert.Equal(t, "Ana", result.Booking.ClientName)
	assert.NotEmpty(t, result.Booking.Reference)

	mockServices.AssertExpectations(t)
	mockBookings.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestBookingService_Book_Validation(t *testing.T) {
	service := NewBookingService(&MockBookingRepository{}, &MockServiceRepository{}, &MockNotifier{}, zerolog.Nop())
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(*BookInput)
	}{
		{"missing client name", func(i *BookInput) { i.ClientName = "" }},
		{"missing client email", func(i *BookInput) { i.ClientEmail = "" }},
		{"missing date", func(i *BookInput) { i.Date = "" }},
		{"missing time", func(i *BookInput) { i.Time = "" }},
		{"malformed date", func(i *BookInput) { i.Date = "01.05.2024" }},
		{"malformed time", func(i *BookInput) { i.Time = "10am" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			result, err := service.Book(ctx, input)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Book_ServiceNotFound(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockServices := &MockServiceRepository{}

	service := NewBookingService(mockBookings, mockServices, &MockNotifier{}, zerolog.Nop())

	ctx := context.Background()
	mockServices.On("GetByID", ctx, int64(7)).Return(nil, domain.ErrServiceNotFound).Once()

	result, err := service.Book(ctx, validInput())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
	mockBookings.AssertNotCalled(t, "Create")
}

func TestBookingService_Book_SlotTaken(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockServices := &MockServiceRepository{}
	mockNotifier := &MockNotifier{}

	service := NewBookingService(mockBookings, mockServices, mockNotifier, zerolog.Nop())

	ctx := context.Background()
	mockServices.On("GetByID", ctx, int64(7)).Return(&domain.Service{ID: 7, Name: "Brake check"}, nil).Once()
	mockBookings.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(domain.ErrSlotTaken).Once()

	result, err := service.Book(ctx, validInput())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
	mockNotifier.AssertNotCalled(t, "SendBookingConfirmation")
}

// A failed notification must not demote the committed booking.
func TestBookingService_Book_NotificationFailure(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockServices := &MockServiceRepository{}
	mockNotifier := &MockNotifier{}

	service := NewBookingService(mockBookings, mockServices, mockNotifier, zerolog.Nop())

	ctx := context.Background()
	mockServices.On("GetByID", ctx, int64(7)).Return(&domain.Service{ID: 7, Name: "Brake check"}, nil).Once()
	mockBookings.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockNotifier.On("SendBookingConfirmation", ctx, mock.Anything).Return(fmt.Errorf("smtp: connection refused")).Once()

	result, err := service.Book(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.False(t, result.Notified)
	assert.NotNil(t, result.Booking)
	mockNotifier.AssertExpectations(t)
}

// slotRepo enforces the (service_id, date, time) uniqueness the way the
// database index does, so the race between concurrent bookings is real.
type slotRepo struct {
	mu    sync.Mutex
	slots map[string]struct{}
}

func newSlotRepo() *slotRepo {
	return &slotRepo{slots: make(map[string]struct{})}
}

func (r *slotRepo) Create(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%d/%s/%s", booking.ServiceID, booking.Date, booking.Time)
	if _, taken := r.slots[key]; taken {
		return domain.ErrSlotTaken
	}
	r.slots[key] = struct{}{}
	booking.ID = int64(len(r.slots))
	return nil
}

type staticServiceRepo struct {
	service domain.Service
}

func (r *staticServiceRepo) List(context.Context, domain.ServiceFilter) ([]domain.Service, error) {
	return []domain.Service{r.service}, nil
}

func (r *staticServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if id != r.service.ID {
		return nil, domain.ErrServiceNotFound
	}
	s := r.service
	return &s, nil
}

func (r *staticServiceRepo) Create(context.Context, *domain.Service) error {
	return nil
}

type noopNotifier struct{}

func (noopNotifier) SendBookingConfirmation(context.Context, domain.BookingConfirmation) error {
	return nil
}

func TestBookingService_Book_ConcurrentSameSlot(t *testing.T) {
	const callers = 16

	service := NewBookingService(
		newSlotRepo(),
		&staticServiceRepo{service: domain.Service{ID: 7, Name: "Brake check"}},
		noopNotifier{},
		zerolog.Nop(),
	)

	ctx := context.Background()
	errs := make(chan error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Book(ctx, validInput())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var committed, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			committed++
		case assert.ErrorIs(t, err, domain.ErrSlotTaken):
			conflicts++
		}
	}

	assert.Equal(t, 1, committed)
	assert.Equal(t, callers-1, conflicts)
}
