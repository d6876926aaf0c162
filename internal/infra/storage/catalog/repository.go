package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
	"github.com/broomaam/BAAM-BookingService/pkg/psqlbuilder"
)

var packageColumns = []string{
	"id",
	"name",
	"capacity",
	"price",
	"power",
	"inclusions",
	"add_ons",
	"recommended_events",
	"duration_hours",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository persistence for the package catalog
type Repository struct {
	db DBExecutor
}

// NewRepository creates a catalog repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new package offering.
func (r *Repository) Create(ctx context.Context, p *domain.PackageOffering) (*domain.PackageOffering, error) {
	query, args, err := psqlbuilder.Insert("packages").
		Columns(
			"name",
			"capacity",
			"price",
			"power",
			"inclusions",
			"add_ons",
			"recommended_events",
			"duration_hours",
			"image_url",
		).
		Values(
			p.Name,
			p.Capacity,
			p.Price,
			p.Power,
			pq.Array(p.Inclusions),
			pq.Array(p.AddOns),
			pq.Array(p.RecommendedEvents),
			p.DurationHours,
			p.ImageURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID fetches a package by its primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PackageOffering, error) {
	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := r.scanPackage(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan package: %v", ErrScanRow, err)
	}

	return p, nil
}

// List fetches all packages, newest first (admin console ordering).
// The recommendation filter re-sorts by capacity on its own.
func (r *Repository) List(ctx context.Context) ([]*domain.PackageOffering, error) {
	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]*domain.PackageOffering, 0)
	for rows.Next() {
		p, err := r.scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		packages = append(packages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

// ListByInsertionOrder fetches all packages oldest first.
// Insertion order is the tie-break contract of the recommendation filter.
func (r *Repository) ListByInsertionOrder(ctx context.Context) ([]*domain.PackageOffering, error) {
	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByInsertionOrder - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByInsertionOrder - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]*domain.PackageOffering, 0)
	for rows.Next() {
		p, err := r.scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByInsertionOrder - scan row: %v", ErrScanRow, err)
		}
		packages = append(packages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByInsertionOrder - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

// Update rewrites all editable fields of a package.
func (r *Repository) Update(ctx context.Context, id int64, p *domain.PackageOffering) (*domain.PackageOffering, error) {
	query, args, err := psqlbuilder.Update("packages").
		Set("name", p.Name).
		Set("capacity", p.Capacity).
		Set("price", p.Price).
		Set("power", p.Power).
		Set("inclusions", pq.Array(p.Inclusions)).
		Set("add_ons", pq.Array(p.AddOns)).
		Set("recommended_events", pq.Array(p.RecommendedEvents)).
		Set("duration_hours", p.DurationHours).
		Set("image_url", p.ImageURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	p.ID = id
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// SetImageURL stores the durable image URL after an upload.
func (r *Repository) SetImageURL(ctx context.Context, id int64, url string) error {
	query, args, err := psqlbuilder.Update("packages").
		Set("image_url", url).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetImageURL - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetImageURL - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetImageURL - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPackageNotFound
	}

	return nil
}

// Delete removes a package.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPackageNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanPackage(row rowScanner) (*domain.PackageOffering, error) {
	var p domain.PackageOffering
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Capacity,
		&p.Price,
		&p.Power,
		pq.Array(&p.Inclusions),
		pq.Array(&p.AddOns),
		pq.Array(&p.RecommendedEvents),
		&p.DurationHours,
		&p.ImageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
