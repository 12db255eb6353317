package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mzhdanova/autoservice/internal/domain"
	"github.com/mzhdanova/autoservice/internal/repository"
)

type BookingUseCase interface {
	Book(ctx context.Context, input BookInput) (*BookResult, error)
}

// Notifier delivers the confirmation message. One attempt, no retry; a
// failure never affects the committed booking.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, confirmation domain.BookingConfirmation) error
}

type BookInput struct {
	ServiceID   int64  `json:"service_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// BookResult reports the committed booking together with the outcome of the
// notification attempt, so callers can signal partial success.
type BookResult struct {
	Booking  *domain.Booking
	Notified bool
}

type BookingService struct {
	bookings repository.BookingRepository
	services repository.ServiceRepository
	notifier Notifier
	log      zerolog.Logger
}

func NewBookingService(bookings repository.BookingRepository, services repository.ServiceRepository, notifier Notifier, log zerolog.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		services: services,
		notifier: notifier,
		log:      log,
	}
}

// Book reserves a slot. The slot-uniqueness invariant is not checked with a
// read before the write: the insert alone carries it, backed by the unique
// index, so two concurrent calls for the same slot end as one booking and
// one ErrSlotTaken.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*BookResult, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	service, err := s.services.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Reference:  uuid.NewString(),
		ServiceID:  service.ID,
		ClientName: input.ClientName,
		Date:       input.Date,
		Time:       input.Time,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	confirmation := domain.BookingConfirmation{
		Reference:   booking.Reference,
		To:          input.ClientEmail,
		ClientName:  input.ClientName,
		ServiceName: service.Name,
		Date:        input.Date,
		Time:        input.Time,
	}

	notified := true
	if err := s.notifier.SendBookingConfirmation(ctx, confirmation); err != nil {
		notified = false
		s.log.Warn().
			Err(err).
			Str("reference", booking.Reference).
			Str("to", input.ClientEmail).
			Msg("booking confirmed but notification failed")
	}

	return &BookResult{Booking: booking, Notified: notified}, nil
}

func validate(input BookInput) error {
	if input.ClientName == "" || input.ClientEmail == "" || input.Date == "" || input.Time == "" {
		return fmt.Errorf("%w: client_name, client_email, date and time are required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, input.Date); err != nil {
		return fmt.Errorf("%w: date must be in %s format", domain.ErrValidation, domain.DateLayout)
	}
	if _, err := time.Parse(domain.TimeLayout, input.Time); err != nil {
		return fmt.Errorf("%w: time must be in %s format", domain.ErrValidation, domain.TimeLayout)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
