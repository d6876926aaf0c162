package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
	"github.com/broomaam/BAAM-BookingService/pkg/psqlbuilder"
)

// Repository persistence for the unavailable-dates ledger.
// The day column is the primary key, so a date can appear at most once.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an availability repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Block marks a date as unavailable. Idempotent: blocking an already
// blocked date is not an error.
func (r *Repository) Block(ctx context.Context, date time.Time) error {
	query, args, err := psqlbuilder.Insert("unavailable_dates").
		Columns("day").
		Values(domain.DayOnly(date)).
		Suffix("ON CONFLICT (day) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Block - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Block - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Unblock clears a date. Idempotent: unblocking a date that was never
// blocked is not an error.
func (r *Repository) Unblock(ctx context.Context, date time.Time) error {
	query, args, err := psqlbuilder.Delete("unavailable_dates").
		Where(squirrel.Eq{"day": domain.DayOnly(date)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Unblock - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Unblock - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// IsBlocked reports whether a date is in the ledger.
func (r *Repository) IsBlocked(ctx context.Context, date time.Time) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("unavailable_dates").
		Where(squirrel.Eq{"day": domain.DayOnly(date)}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListRange returns all blocked dates in the inclusive range, ascending.
func (r *Repository) ListRange(ctx context.Context, dateRange domain.DateRange) ([]time.Time, error) {
	query, args, err := psqlbuilder.Select("day").
		From("unavailable_dates").
		Where(squirrel.GtOrEq{"day": domain.DayOnly(dateRange.From)}).
		Where(squirrel.LtOrEq{"day": domain.DayOnly(dateRange.To)}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("%w: ListRange - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRange - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}
