package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mzhdanova/autoservice/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Create inserts the booking in a single statement. The unique index on
// (service_id, date, time) is what prevents double booking: a concurrent
// insert for the same slot surfaces here as ErrSlotTaken. There is no prior
// existence check on purpose.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (reference, service_id, client_name, date, time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`, booking.Reference, booking.ServiceID, booking.ClientName, booking.Date, booking.Time).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		if pgErrCode(err, uniqueViolation) {
			return domain.ErrSlotTaken
		}
		if pgErrCode(err, foreignKeyViolation) {
			return domain.ErrServiceNotFound
		}
		return err
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
