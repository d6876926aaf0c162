package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
	"github.com/broomaam/BAAM-BookingService/pkg/psqlbuilder"
	"github.com/broomaam/BAAM-BookingService/pkg/types"
)

var bookingColumns = []string{
	"id",
	"reference",
	"name",
	"email",
	"phone",
	"event_date",
	"start_time",
	"event_type",
	"venue",
	"guests",
	"package_id",
	"package_name",
	"status",
	"created_at",
	"updated_at",
}

// Repository persistence for bookings
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in the generated fields.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	var startTime *string
	if b.StartTime != nil {
		s := b.StartTime.String()
		startTime = &s
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"name",
			"email",
			"phone",
			"event_date",
			"start_time",
			"event_type",
			"venue",
			"guests",
			"package_id",
			"package_name",
			"status",
		).
		Values(
			b.Reference,
			b.Name,
			b.Email,
			b.Phone,
			b.EventDate,
			startTime,
			b.EventType,
			b.Venue,
			b.Guests,
			b.PackageID,
			b.PackageName,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches a booking by its primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// List fetches bookings matching the filter.
// Default ordering is newest first; the upcoming filter switches to
// accepted bookings with event_date >= today, soonest first.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.Upcoming {
		today := domain.DayOnly(time.Now())
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"status": domain.StatusAccepted}).
			Where(squirrel.GtOrEq{"event_date": today}).
			OrderBy("event_date ASC, created_at ASC")
	} else {
		if len(filter.Statuses) > 0 {
			statuses := make([]string, len(filter.Statuses))
			for i, s := range filter.Statuses {
				statuses[i] = string(s)
			}
			selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statuses})
		}
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	}

	// Case-insensitive substring match over contact fields
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus moves a booking from one status to another and returns
// the write timestamp. The update is guarded by the expected current
// status, so a concurrent transition surfaces as ErrStatusConflict
// instead of silently winning.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (time.Time, error) {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == nil {
		return updatedAt, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		// Row missing entirely vs status changed under us
		if _, err := r.GetByID(ctx, id); err != nil {
			return time.Time{}, err
		}
		return time.Time{}, ErrStatusConflict
	}

	return time.Time{}, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var startTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.EventDate,
		&startTime,
		&b.EventType,
		&b.Venue,
		&b.Guests,
		&b.PackageID,
		&b.PackageName,
		&b.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startTime.Valid {
		ts := types.TimeString(startTime.String)
		b.StartTime = &ts
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
