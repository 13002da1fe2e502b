package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/report"
)

// CommissionLineResponse is one per-staff allocation in API responses.
type CommissionLineResponse struct {
	StaffName string          `json:"staff_name"`
	Amount    decimal.Decimal `json:"amount"`
}

// BookingFinanceResponse represents a booking breakdown in API responses.
type BookingFinanceResponse struct {
	PackageCategory      string                   `json:"package_category"`
	PackageName          string                   `json:"package_name"`
	PackageAmount        decimal.Decimal          `json:"package_amount"`
	PhotographerExpenses decimal.Decimal          `json:"photographer_expenses"`
	VideographerExpenses decimal.Decimal          `json:"videographer_expenses"`
	EditorExpenses       decimal.Decimal          `json:"editor_expenses"`
	CompanyExpenses      decimal.Decimal          `json:"company_expenses"`
	OtherExpenses        decimal.Decimal          `json:"other_expenses"`
	FinalAmount          decimal.Decimal          `json:"final_amount"`
	CommissionLines      []CommissionLineResponse `json:"commission_lines"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

// BookingFinanceFromDomain converts a domain breakdown to a response.
func BookingFinanceFromDomain(f *domain.BookingFinance) *BookingFinanceResponse {
	if f == nil {
		return nil
	}
	return &BookingFinanceResponse{
		PackageCategory:      f.PackageCategory,
		PackageName:          f.PackageName,
		PackageAmount:        f.PackageAmount,
		PhotographerExpenses: f.PhotographerExpenses,
		VideographerExpenses: f.VideographerExpenses,
		EditorExpenses:       f.EditorExpenses,
		CompanyExpenses:      f.CompanyExpenses,
		OtherExpenses:        f.OtherExpenses,
		FinalAmount:          f.FinalAmount,
		CommissionLines:      commissionLinesFromDomain(f.CommissionLines),
		UpdatedAt:            f.UpdatedAt,
	}
}

// OrderFinanceResponse represents a product-order breakdown in API responses.
type OrderFinanceResponse struct {
	OrderAmount     decimal.Decimal          `json:"order_amount"`
	StudioFee       decimal.Decimal          `json:"studio_fee"`
	OtherExpenses   decimal.Decimal          `json:"other_expenses"`
	Profit          decimal.Decimal          `json:"profit"`
	CommissionTotal decimal.Decimal          `json:"commission_total"`
	CommissionLines []CommissionLineResponse `json:"commission_lines"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// OrderFinanceFromDomain converts a domain breakdown to a response.
func OrderFinanceFromDomain(f *domain.OrderFinance) *OrderFinanceResponse {
	if f == nil {
		return nil
	}
	return &OrderFinanceResponse{
		OrderAmount:     f.OrderAmount,
		StudioFee:       f.StudioFee,
		OtherExpenses:   f.OtherExpenses,
		Profit:          f.Profit,
		CommissionTotal: f.PhotographerCommissionTotal(),
		CommissionLines: commissionLinesFromDomain(f.CommissionLines),
		UpdatedAt:       f.UpdatedAt,
	}
}

// BookingResponse represents a booking in API responses.
type BookingResponse struct {
	ID            string                  `json:"id"`
	Reference     string                  `json:"reference"`
	ClientName    string                  `json:"client_name"`
	EventType     string                  `json:"event_type"`
	EventDate     time.Time               `json:"event_date"`
	PackageName   string                  `json:"package_name"`
	AssignedStaff []string                `json:"assigned_staff"`
	Reconciled    bool                    `json:"reconciled"`
	Finance       *BookingFinanceResponse `json:"finance,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// BookingFromDomain converts a domain booking to a response.
func BookingFromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		ClientName:    b.ClientName,
		EventType:     b.EventType,
		EventDate:     b.EventDate,
		PackageName:   b.PackageName,
		AssignedStaff: b.AssignedStaff,
		Reconciled:    b.IsReconciled(),
		Finance:       BookingFinanceFromDomain(b.Finance),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// BookingsFromDomain converts domain bookings to responses.
func BookingsFromDomain(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = BookingFromDomain(b)
	}
	return result
}

// OrderResponse represents a product order in API responses.
type OrderResponse struct {
	ID            string                `json:"id"`
	Reference     string                `json:"reference"`
	ClientName    string                `json:"client_name"`
	OrderTotal    decimal.Decimal       `json:"order_total"`
	AssignedStaff []string              `json:"assigned_staff"`
	Reconciled    bool                  `json:"reconciled"`
	Finance       *OrderFinanceResponse `json:"finance,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// OrderFromDomain converts a domain product order to a response.
func OrderFromDomain(o *domain.ProductOrder) *OrderResponse {
	return &OrderResponse{
		ID:            o.ID,
		Reference:     o.Reference,
		ClientName:    o.ClientName,
		OrderTotal:    o.OrderTotal,
		AssignedStaff: o.AssignedStaff,
		Reconciled:    o.IsReconciled(),
		Finance:       OrderFinanceFromDomain(o.Finance),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// OrdersFromDomain converts domain product orders to responses.
func OrdersFromDomain(orders []*domain.ProductOrder) []*OrderResponse {
	result := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = OrderFromDomain(o)
	}
	return result
}

// PackageResponse represents a service package in API responses.
type PackageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// PackageFromDomain converts a domain service package to a response.
func PackageFromDomain(p *domain.ServicePackage) *PackageResponse {
	return &PackageResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}
}

// PackagesFromDomain converts domain service packages to responses.
func PackagesFromDomain(packages []*domain.ServicePackage) []*PackageResponse {
	result := make([]*PackageResponse, len(packages))
	for i, p := range packages {
		result[i] = PackageFromDomain(p)
	}
	return result
}

// BalanceResultResponse represents a balance check in API responses.
type BalanceResultResponse struct {
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	Difference     decimal.Decimal `json:"difference"`
	IsBalanced     bool            `json:"is_balanced"`
}

// BalanceResultFromDomain converts a domain balance result to a response.
func BalanceResultFromDomain(r domain.BalanceResult) BalanceResultResponse {
	return BalanceResultResponse{
		TotalAllocated: r.TotalAllocated,
		Difference:     r.Difference,
		IsBalanced:     r.IsBalanced,
	}
}

// SheetResponse is one report section in API responses.
type SheetResponse struct {
	Name string       `json:"name"`
	Rows []report.Row `json:"rows"`
}

// ReportResponse represents an assembled report in API responses.
type ReportResponse struct {
	Period string          `json:"period"`
	Sheets []SheetResponse `json:"sheets"`
}

// ReportFromDomain converts an assembled report to a response.
func ReportFromDomain(rep *report.Report) *ReportResponse {
	sheets := make([]SheetResponse, len(rep.Sheets))
	for i, s := range rep.Sheets {
		sheets[i] = SheetResponse{Name: s.Name, Rows: s.Rows}
	}
	return &ReportResponse{
		Period: rep.Period.String(),
		Sheets: sheets,
	}
}

// StaffEarningsResponse represents one staff member's salary statement.
type StaffEarningsResponse struct {
	Name            string          `json:"name"`
	BookingEarnings decimal.Decimal `json:"booking_earnings"`
	ProductEarnings decimal.Decimal `json:"product_earnings"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
}

// StaffEarningsFromReport converts computed earnings to a response.
func StaffEarningsFromReport(e report.StaffEarnings) StaffEarningsResponse {
	return StaffEarningsResponse{
		Name:            e.Name,
		BookingEarnings: e.BookingEarnings,
		ProductEarnings: e.ProductEarnings,
		TotalEarnings:   e.TotalEarnings,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message,omitempty"`
	Balance *BalanceResultResponse `json:"balance,omitempty"`
}

func commissionLinesFromDomain(lines []domain.CommissionLine) []CommissionLineResponse {
	result := make([]CommissionLineResponse, len(lines))
	for i, l := range lines {
		result[i] = CommissionLineResponse{StaffName: l.StaffName, Amount: l.Amount}
	}
	return result
}
