package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/usecase"
)

// CreateBookingRequest represents a request to create a booking.
type CreateBookingRequest struct {
	Reference     string    `json:"reference"`
	ClientName    string    `json:"client_name"`
	EventType     string    `json:"event_type"`
	EventDate     time.Time `json:"event_date"`
	PackageName   string    `json:"package_name"`
	AssignedStaff []string  `json:"assigned_staff"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateBookingRequest) ToUseCaseInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		Reference:     r.Reference,
		ClientName:    r.ClientName,
		EventType:     r.EventType,
		EventDate:     r.EventDate,
		PackageName:   r.PackageName,
		AssignedStaff: r.AssignedStaff,
	}
}

// CreateOrderRequest represents a request to create a product order.
type CreateOrderRequest struct {
	Reference     string          `json:"reference"`
	ClientName    string          `json:"client_name"`
	OrderTotal    decimal.Decimal `json:"order_total"`
	AssignedStaff []string        `json:"assigned_staff"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateOrderRequest) ToUseCaseInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		Reference:     r.Reference,
		ClientName:    r.ClientName,
		OrderTotal:    r.OrderTotal,
		AssignedStaff: r.AssignedStaff,
	}
}

// CreatePackageRequest represents a request to create a service package.
type CreatePackageRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePackageRequest) ToUseCaseInput() usecase.CreatePackageInput {
	return usecase.CreatePackageInput{
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
	}
}

// AssignStaffRequest represents a request to replace an entity's assigned
// staff set.
type AssignStaffRequest struct {
	StaffNames []string `json:"staff_names"`
}

// CommissionLineRequest is one per-staff allocation in a breakdown payload.
type CommissionLineRequest struct {
	StaffName string          `json:"staff_name"`
	Amount    decimal.Decimal `json:"amount"`
}

// SaveBookingFinanceRequest represents a booking breakdown to validate or
// save.
type SaveBookingFinanceRequest struct {
	PackageCategory      string                  `json:"package_category"`
	PackageName          string                  `json:"package_name"`
	PackageAmount        decimal.Decimal         `json:"package_amount"`
	PhotographerExpenses decimal.Decimal         `json:"photographer_expenses"`
	VideographerExpenses decimal.Decimal         `json:"videographer_expenses"`
	EditorExpenses       decimal.Decimal         `json:"editor_expenses"`
	CompanyExpenses      decimal.Decimal         `json:"company_expenses"`
	OtherExpenses        decimal.Decimal         `json:"other_expenses"`
	FinalAmount          decimal.Decimal         `json:"final_amount"`
	CommissionLines      []CommissionLineRequest `json:"commission_lines"`
}

// ToDomain converts to a domain breakdown.
func (r *SaveBookingFinanceRequest) ToDomain() *domain.BookingFinance {
	return &domain.BookingFinance{
		PackageCategory:      r.PackageCategory,
		PackageName:          r.PackageName,
		PackageAmount:        r.PackageAmount,
		PhotographerExpenses: r.PhotographerExpenses,
		VideographerExpenses: r.VideographerExpenses,
		EditorExpenses:       r.EditorExpenses,
		CompanyExpenses:      r.CompanyExpenses,
		OtherExpenses:        r.OtherExpenses,
		FinalAmount:          r.FinalAmount,
		CommissionLines:      commissionLinesToDomain(r.CommissionLines),
	}
}

// SaveOrderFinanceRequest represents a product-order breakdown to validate or
// save.
type SaveOrderFinanceRequest struct {
	OrderAmount     decimal.Decimal         `json:"order_amount"`
	StudioFee       decimal.Decimal         `json:"studio_fee"`
	OtherExpenses   decimal.Decimal         `json:"other_expenses"`
	Profit          decimal.Decimal         `json:"profit"`
	CommissionLines []CommissionLineRequest `json:"commission_lines"`
}

// ToDomain converts to a domain breakdown.
func (r *SaveOrderFinanceRequest) ToDomain() *domain.OrderFinance {
	return &domain.OrderFinance{
		OrderAmount:     r.OrderAmount,
		StudioFee:       r.StudioFee,
		OtherExpenses:   r.OtherExpenses,
		Profit:          r.Profit,
		CommissionLines: commissionLinesToDomain(r.CommissionLines),
	}
}

// ValidateBreakdownRequest represents an interactive balance check.
type ValidateBreakdownRequest struct {
	DeclaredAmount  decimal.Decimal         `json:"declared_amount"`
	CategoryAmounts []decimal.Decimal       `json:"category_amounts"`
	CommissionLines []CommissionLineRequest `json:"commission_lines"`
}

// ToUseCaseInput converts to use case input.
func (r *ValidateBreakdownRequest) ToUseCaseInput() usecase.ValidateBreakdownInput {
	return usecase.ValidateBreakdownInput{
		DeclaredAmount:  r.DeclaredAmount,
		CategoryAmounts: r.CategoryAmounts,
		CommissionLines: commissionLinesToDomain(r.CommissionLines),
	}
}

func commissionLinesToDomain(lines []CommissionLineRequest) []domain.CommissionLine {
	result := make([]domain.CommissionLine, len(lines))
	for i, l := range lines {
		result[i] = domain.CommissionLine{StaffName: l.StaffName, Amount: l.Amount}
	}
	return result
}
