package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/studioops/internal/domain"
)

// PackageRepository implements usecase.PackageRepository.
type PackageRepository struct {
	pool *pgxpool.Pool
}

// NewPackageRepository creates a new PackageRepository.
func NewPackageRepository(pool *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{pool: pool}
}

const insertPackageSQL = `
INSERT INTO service_packages (id, name, category, price, created_at)
VALUES ($1, $2, $3, $4, $5)`

// Create creates a new service package.
func (r *PackageRepository) Create(ctx context.Context, pkg *domain.ServicePackage) error {
	_, err := r.pool.Exec(ctx, insertPackageSQL,
		pkg.ID, pkg.Name, pkg.Category, pkg.Price, timeToPgTimestamptz(pkg.CreatedAt))
	return err
}

const selectPackageByNameSQL = `
SELECT id, name, category, price, created_at
FROM service_packages
WHERE name = $1`

// GetByName retrieves a service package by its unique name.
func (r *PackageRepository) GetByName(ctx context.Context, name string) (*domain.ServicePackage, error) {
	row := r.pool.QueryRow(ctx, selectPackageByNameSQL, name)

	pkg, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

const listPackagesSQL = `
SELECT id, name, category, price, created_at
FROM service_packages
ORDER BY name`

// List retrieves all service packages.
func (r *PackageRepository) List(ctx context.Context) ([]*domain.ServicePackage, error) {
	rows, err := r.pool.Query(ctx, listPackagesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []*domain.ServicePackage
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, rows.Err()
}

func scanPackage(row pgx.Row) (*domain.ServicePackage, error) {
	var (
		pkg       domain.ServicePackage
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(&pkg.ID, &pkg.Name, &pkg.Category, &pkg.Price, &createdAt)
	if err != nil {
		return nil, err
	}
	pkg.CreatedAt = createdAt.Time
	return &pkg, nil
}
