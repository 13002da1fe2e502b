package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/usecase"
	"github.com/iho/studioops/internal/usecase/mocks"
)

func TestPackageUseCase_CreatePackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockPackageRepository(ctrl)
	uc := usecase.NewPackageUseCase(packageRepo, mocks.NewMockIDGenerator())

	var created *domain.ServicePackage
	packageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, pkg *domain.ServicePackage) error {
			created = pkg
			return nil
		})

	pkg, err := uc.CreatePackage(context.Background(), usecase.CreatePackageInput{
		Name:     "Gold",
		Category: "Wedding",
		Price:    "Rs. 50,000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pkg.ID == "" {
		t.Error("expected generated ID")
	}
	if created == nil || created.Name != "Gold" {
		t.Fatalf("persisted package = %+v", created)
	}
	// The price field survives as entered; parsing is for aggregation only.
	if created.Price != "Rs. 50,000" {
		t.Errorf("price = %q, want raw field preserved", created.Price)
	}
}

func TestPackageUseCase_CreatePackage_RejectsUnparseablePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockPackageRepository(ctrl)
	uc := usecase.NewPackageUseCase(packageRepo, mocks.NewMockIDGenerator())

	_, err := uc.CreatePackage(context.Background(), usecase.CreatePackageInput{
		Name:     "Mystery",
		Category: "Wedding",
		Price:    "call for pricing",
	})
	if !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestPackageUseCase_ListPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockPackageRepository(ctrl)
	uc := usecase.NewPackageUseCase(packageRepo, mocks.NewMockIDGenerator())

	packageRepo.EXPECT().List(gomock.Any()).Return([]*domain.ServicePackage{
		{Name: "Gold"}, {Name: "Silver"},
	}, nil)

	pkgs, err := uc.ListPackages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pkgs) != 2 {
		t.Errorf("expected 2 packages, got %d", len(pkgs))
	}
}
