package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mzhdanova/autoservice/internal/domain"
)

type ServiceRepository interface {
	List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) error
}

type PGServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) ServiceRepository {
	return &PGServiceRepository{db: db}
}

// buildListQuery composes the listing statement from the optional filters.
// Every filter value travels as a bind parameter, including the weekday key
// used against the availability document.
func buildListQuery(filter domain.ServiceFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, name, location, contact_info, hourly_rate, available_slots, created_at FROM services`)

	var (
		clauses []string
		args    []any
	)
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		clauses = append(clauses, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.MaxRate != nil {
		args = append(args, *filter.MaxRate)
		clauses = append(clauses, fmt.Sprintf("hourly_rate <= $%d", len(args)))
	}
	if filter.AvailableDay != "" {
		args = append(args, filter.AvailableDay)
		clauses = append(clauses, fmt.Sprintf("available_slots->>$%d IS NOT NULL", len(args)))
	}

	if len(clauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}
	return sb.String(), args
}

func (r *PGServiceRepository) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	query, args := buildListQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &s.ContactInfo, &s.HourlyRate, &s.AvailableSlots, &s.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *PGServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, location, contact_info, hourly_rate, available_slots, created_at FROM services WHERE id=$1`, id)
	var s domain.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Location, &s.ContactInfo, &s.HourlyRate, &s.AvailableSlots, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	if service.AvailableSlots == nil {
		service.AvailableSlots = domain.Availability{}
	}
	return r.db.QueryRow(ctx, `INSERT INTO services (name, location, contact_info, hourly_rate, available_slots)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`, service.Name, service.Location, service.ContactInfo, service.HourlyRate, service.AvailableSlots).
		Scan(&service.ID, &service.CreatedAt)
}

var _ ServiceRepository = (*PGServiceRepository)(nil)
