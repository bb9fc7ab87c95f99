package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/ridewise/cabbook/internal/booking/domain"
)

type bookingsRepo struct {
	db *sql.DB
}

const bookingColumns = `id, user_id, trip_type, from_city, to_city,
	departure_date, return_date, pickup_time, status, created_at, updated_at`

func (r *bookingsRepo) GetBookingByID(ctx context.Context, id string) (domain.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)

	b, err := scanBooking(row.Scan)
	if err != nil {
		return domain.Booking{}, mapNotFound(err)
	}
	return b, nil
}

func (r *bookingsRepo) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingsRepo) ListAllBookings(ctx context.Context) ([]domain.BookingWithUser, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id, b.user_id, b.trip_type, b.from_city, b.to_city,
		        b.departure_date, b.return_date, b.pickup_time, b.status,
		        b.created_at, b.updated_at, u.email
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.BookingWithUser
	for rows.Next() {
		var bw domain.BookingWithUser
		var returnDate sql.NullTime
		err := rows.Scan(
			&bw.ID, &bw.UserID, &bw.TripType, &bw.FromCity, &bw.ToCity,
			&bw.DepartureDate, &returnDate, &bw.PickupTime, &bw.Status,
			&bw.CreatedAt, &bw.UpdatedAt, &bw.UserEmail,
		)
		if err != nil {
			return nil, err
		}
		if returnDate.Valid {
			t := returnDate.Time
			bw.ReturnDate = &t
		}
		bookings = append(bookings, bw)
	}
	return bookings, rows.Err()
}

func (r *bookingsRepo) CreateBooking(ctx context.Context, b domain.Booking) error {
	now := time.Now().UTC()
	var returnDate sql.NullTime
	if b.ReturnDate != nil {
		returnDate = sql.NullTime{Time: *b.ReturnDate, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings (id, user_id, trip_type, from_city, to_city,
		   departure_date, return_date, pickup_time, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.TripType, b.FromCity, b.ToCity,
		b.DepartureDate, returnDate, b.PickupTime, b.Status, now, now)
	return mapConflict(err)
}

func (r *bookingsRepo) UpdateBookingStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *bookingsRepo) DeleteBooking(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanBooking(scan func(dest ...any) error) (domain.Booking, error) {
	var b domain.Booking
	var returnDate sql.NullTime
	err := scan(
		&b.ID, &b.UserID, &b.TripType, &b.FromCity, &b.ToCity,
		&b.DepartureDate, &returnDate, &b.PickupTime, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return domain.Booking{}, err
	}
	if returnDate.Valid {
		t := returnDate.Time
		b.ReturnDate = &t
	}
	return b, nil
}
