package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/studioops/internal/adapter/http/dto"
	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/usecase"
)

type packageService interface {
	CreatePackage(ctx context.Context, input usecase.CreatePackageInput) (*domain.ServicePackage, error)
	ListPackages(ctx context.Context) ([]*domain.ServicePackage, error)
}

// PackageHandler handles service-package HTTP requests.
type PackageHandler struct {
	packageUC packageService
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(packageUC packageService) *PackageHandler {
	return &PackageHandler{packageUC: packageUC}
}

// Create creates a new service package.
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	pkg, err := h.packageUC.CreatePackage(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create package", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PackageFromDomain(pkg))
}

// List lists all service packages.
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.packageUC.ListPackages(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list packages", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PackagesFromDomain(packages))
}
