package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbraun22/privatechef/internal/domain"
)

// BookingPatch carries the mutable fields of a booking.
type BookingPatch struct {
	Status        *domain.BookingStatus
	PaymentStatus *domain.PaymentStatus
}

// BookedSlot is the date/time footprint of an existing booking, used for
// availability computation.
type BookedSlot struct {
	EventDate     time.Time
	EventTime     string
	DurationHours float64
}

// BookingRepository encapsulates booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByChef(ctx context.Context, chefID string) ([]domain.Booking, error)
	Update(ctx context.Context, bookingID string, patch BookingPatch) (*domain.Booking, error)
	// HasConflict reports whether a pending or confirmed booking already
	// occupies the exact chef+date+time. Range overlap is not considered.
	HasConflict(ctx context.Context, chefID string, date time.Time, eventTime string) (bool, error)
	// SlotsBetween lists pending/confirmed booking slots in [from, to].
	SlotsBetween(ctx context.Context, chefID string, from, to time.Time) ([]BookedSlot, error)
	// IsOwnedBy reports whether the booking's chef profile is owned by
	// the user, via the user->chef->booking join.
	IsOwnedBy(ctx context.Context, bookingID, userID string) (bool, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository returns a Postgres-backed implementation.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `id, chef_id, customer_id, menu_id, customer_name, customer_email,
    customer_phone, event_date, event_time, duration_hours, number_of_guests,
    location_address, special_requests, total_price, status, payment_status,
    created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (
            chef_id, customer_id, menu_id, customer_name, customer_email,
            customer_phone, event_date, event_time, duration_hours,
            number_of_guests, location_address, special_requests,
            total_price, status, payment_status
        )
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		booking.ChefID,
		booking.CustomerID,
		booking.MenuID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.EventDate,
		booking.EventTime,
		booking.DurationHours,
		booking.NumberOfGuests,
		booking.LocationAddress,
		booking.SpecialRequests,
		booking.TotalPrice,
		string(booking.Status),
		string(booking.PaymentStatus),
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) ListByChef(ctx context.Context, chefID string) ([]domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE chef_id=$1
        ORDER BY event_date DESC, event_time DESC`, bookingColumns)
	rows, err := r.pool.Query(ctx, query, chefID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) Update(ctx context.Context, bookingID string, patch BookingPatch) (*domain.Booking, error) {
	var sc setClause
	if patch.Status != nil {
		sc.set("status", string(*patch.Status))
	}
	if patch.PaymentStatus != nil {
		sc.set("payment_status", string(*patch.PaymentStatus))
	}
	if sc.empty() {
		return nil, ErrEmptyPatch
	}

	body, next := sc.build()
	query := fmt.Sprintf(`UPDATE bookings SET %s WHERE id=$%d RETURNING %s`, body, next, bookingColumns)
	args := append(sc.args, bookingID)

	var booking domain.Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, args...), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) HasConflict(ctx context.Context, chefID string, date time.Time, eventTime string) (bool, error) {
	const query = `
        SELECT id FROM bookings
        WHERE chef_id=$1 AND event_date=$2 AND event_time=$3
        AND status IN ('pending', 'confirmed')`

	var id string
	err := r.pool.QueryRow(ctx, query, chefID, date, eventTime).Scan(&id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *bookingRepository) SlotsBetween(ctx context.Context, chefID string, from, to time.Time) ([]BookedSlot, error) {
	const query = `
        SELECT event_date, event_time, duration_hours
        FROM bookings
        WHERE chef_id=$1 AND event_date BETWEEN $2 AND $3
        AND status IN ('pending', 'confirmed')`

	rows, err := r.pool.Query(ctx, query, chefID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []BookedSlot
	for rows.Next() {
		var slot BookedSlot
		if err := rows.Scan(&slot.EventDate, &slot.EventTime, &slot.DurationHours); err != nil {
			return nil, err
		}
		result = append(result, slot)
	}
	return result, rows.Err()
}

func (r *bookingRepository) IsOwnedBy(ctx context.Context, bookingID, userID string) (bool, error) {
	const query = `
        SELECT c.id FROM chefs c
        INNER JOIN bookings b ON b.chef_id = c.id
        WHERE c.user_id=$1 AND b.id=$2`

	var chefID string
	err := r.pool.QueryRow(ctx, query, userID, bookingID).Scan(&chefID)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func scanBooking(row rowScanner, booking *domain.Booking) error {
	var status, paymentStatus string
	if err := row.Scan(
		&booking.ID,
		&booking.ChefID,
		&booking.CustomerID,
		&booking.MenuID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.EventDate,
		&booking.EventTime,
		&booking.DurationHours,
		&booking.NumberOfGuests,
		&booking.LocationAddress,
		&booking.SpecialRequests,
		&booking.TotalPrice,
		&status,
		&paymentStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		return err
	}
	booking.Status = domain.BookingStatus(status)
	booking.PaymentStatus = domain.PaymentStatus(paymentStatus)
	return nil
}

func scanBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var result []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := scanBooking(rows, &booking); err != nil {
			return nil, err
		}
		result = append(result, booking)
	}
	return result, rows.Err()
}
