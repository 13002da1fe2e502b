package usecase

import (
	"context"
	"time"

	"github.com/iho/studioops/internal/domain"
)

// PackageUseCase handles the service package reference collection.
type PackageUseCase struct {
	packageRepo PackageRepository
	idGen       IDGenerator
}

// NewPackageUseCase creates a new PackageUseCase.
func NewPackageUseCase(packageRepo PackageRepository, idGen IDGenerator) *PackageUseCase {
	return &PackageUseCase{
		packageRepo: packageRepo,
		idGen:       idGen,
	}
}

// CreatePackageInput represents input for creating a service package.
type CreatePackageInput struct {
	Name     string
	Category string
	Price    string
}

// CreatePackage creates a new service package. The price field is kept as
// entered but must contain a parseable amount so aggregation can price
// bookings against it.
func (uc *PackageUseCase) CreatePackage(ctx context.Context, input CreatePackageInput) (*domain.ServicePackage, error) {
	pkg := &domain.ServicePackage{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := pkg.ParsePrice(); err != nil {
		return nil, err
	}
	if err := uc.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// ListPackages lists all service packages.
func (uc *PackageUseCase) ListPackages(ctx context.Context) ([]*domain.ServicePackage, error) {
	return uc.packageRepo.List(ctx)
}
