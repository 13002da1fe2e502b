package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/usecase"
)

// BookingRepository implements usecase.BookingRepository.
type BookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const insertBookingSQL = `
INSERT INTO bookings (id, reference, client_name, event_type, event_date, package_name, assigned_staff, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Create creates a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	_, err := r.pool.Exec(ctx, insertBookingSQL,
		booking.ID,
		booking.Reference,
		booking.ClientName,
		booking.EventType,
		timeToPgTimestamptz(booking.EventDate),
		booking.PackageName,
		booking.AssignedStaff,
		timeToPgTimestamptz(booking.CreatedAt),
		timeToPgTimestamptz(booking.UpdatedAt),
	)
	return err
}

const selectBookingSQL = `
SELECT id, reference, client_name, event_type, event_date, package_name, assigned_staff, created_at, updated_at
FROM bookings
WHERE id = $1`

// GetByID retrieves a booking with its financial entry, if any.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.pool.QueryRow(ctx, selectBookingSQL, id)

	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	if err := r.attachFinances(ctx, []*domain.Booking{booking}); err != nil {
		return nil, err
	}
	return booking, nil
}

const listBookingsSQL = `
SELECT id, reference, client_name, event_type, event_date, package_name, assigned_staff, created_at, updated_at
FROM bookings
WHERE event_date >= $1 AND event_date < $2
ORDER BY event_date, reference
LIMIT $3 OFFSET $4`

// List retrieves bookings whose event date falls inside the window.
func (r *BookingRepository) List(ctx context.Context, window usecase.Window, limit, offset int) ([]*domain.Booking, error) {
	rows, err := r.pool.Query(ctx, listBookingsSQL,
		timeToPgTimestamptz(window.From), timeToPgTimestamptz(window.To), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachFinances(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

const updateBookingStaffSQL = `
UPDATE bookings SET assigned_staff = $2, updated_at = $3 WHERE id = $1`

// UpdateAssignedStaff replaces a booking's assigned-staff set inside tx.
func (r *BookingRepository) UpdateAssignedStaff(ctx context.Context, tx usecase.Transaction, id string, staffNames []string, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, updateBookingStaffSQL, id, staffNames, timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// Delete removes a booking; the schema cascades to its financial entry and
// commission lines.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

const selectBookingFinancesSQL = `
SELECT booking_id, package_category, package_name, package_amount,
       photographer_expenses, videographer_expenses, editor_expenses,
       company_expenses, other_expenses, final_amount, updated_at
FROM booking_finances
WHERE booking_id = ANY($1)`

// attachFinances loads breakdowns and commission lines for the given
// bookings in two batched queries.
func (r *BookingRepository) attachFinances(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]string, len(bookings))
	byID := make(map[string]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	rows, err := r.pool.Query(ctx, selectBookingFinancesSQL, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingID string
			fin       domain.BookingFinance
			amounts   [7]pgtype.Numeric
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&bookingID, &fin.PackageCategory, &fin.PackageName, &amounts[0],
			&amounts[1], &amounts[2], &amounts[3], &amounts[4], &amounts[5],
			&amounts[6], &updatedAt,
		); err != nil {
			return err
		}
		fin.PackageAmount = numericToDecimal(amounts[0])
		fin.PhotographerExpenses = numericToDecimal(amounts[1])
		fin.VideographerExpenses = numericToDecimal(amounts[2])
		fin.EditorExpenses = numericToDecimal(amounts[3])
		fin.CompanyExpenses = numericToDecimal(amounts[4])
		fin.OtherExpenses = numericToDecimal(amounts[5])
		fin.FinalAmount = numericToDecimal(amounts[6])
		fin.UpdatedAt = updatedAt.Time

		if booking, ok := byID[bookingID]; ok {
			booking.Finance = &fin
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	lines, err := loadCommissionLines(ctx, r.pool, ids)
	if err != nil {
		return err
	}
	for id, entityLines := range lines {
		if booking, ok := byID[id]; ok && booking.Finance != nil {
			booking.Finance.CommissionLines = entityLines
		}
	}
	return nil
}

// scanBooking scans one booking row.
func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		eventDate pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.ClientName,
		&booking.EventType,
		&eventDate,
		&booking.PackageName,
		&booking.AssignedStaff,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	booking.EventDate = eventDate.Time
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}
