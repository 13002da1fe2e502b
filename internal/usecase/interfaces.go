package usecase

import (
	"context"
	"time"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/report"
)

// Window is a half-open reporting interval [From, To). Callers compute the
// boundary values; repositories only apply them.
type Window struct {
	From time.Time
	To   time.Time
}

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, window Window, limit, offset int) ([]*domain.Booking, error)
	UpdateAssignedStaff(ctx context.Context, tx Transaction, id string, staff []string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// ProductOrderRepository defines data access for product orders.
type ProductOrderRepository interface {
	Create(ctx context.Context, order *domain.ProductOrder) error
	GetByID(ctx context.Context, id string) (*domain.ProductOrder, error)
	List(ctx context.Context, window Window, limit, offset int) ([]*domain.ProductOrder, error)
	UpdateAssignedStaff(ctx context.Context, tx Transaction, id string, staff []string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// PackageRepository defines data access for the service package reference
// collection.
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.ServicePackage) error
	GetByName(ctx context.Context, name string) (*domain.ServicePackage, error)
	List(ctx context.Context) ([]*domain.ServicePackage, error)
}

// LedgerRepository defines data access for financial entries. A breakdown and
// its commission lines are always written inside one transaction so a partial
// write can never break the balance invariant on reload.
type LedgerRepository interface {
	SaveBookingFinance(ctx context.Context, tx Transaction, bookingID string, fin *domain.BookingFinance) error
	SaveOrderFinance(ctx context.Context, tx Transaction, orderID string, fin *domain.OrderFinance) error
	ReplaceCommissionLines(ctx context.Context, tx Transaction, entityID string, lines []domain.CommissionLine) error
}

// ReportRenderer renders an assembled report for download.
type ReportRenderer interface {
	Render(rep *report.Report) ([]byte, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient persistence errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
