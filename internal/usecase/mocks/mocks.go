package mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/report"
	"github.com/iho/studioops/internal/usecase"
)

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	CreateFunc              func(ctx context.Context, booking *domain.Booking) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.Booking, error)
	ListFunc                func(ctx context.Context, window usecase.Window, limit, offset int) ([]*domain.Booking, error)
	UpdateAssignedStaffFunc func(ctx context.Context, tx usecase.Transaction, id string, staff []string, updatedAt time.Time) error
	DeleteFunc              func(ctx context.Context, id string) error
}

func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.bookings[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBookingNotFound
}

func (m *MockBookingRepository) List(ctx context.Context, window usecase.Window, limit, offset int) ([]*domain.Booking, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, window, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var bookings []*domain.Booking
	for _, b := range m.bookings {
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (m *MockBookingRepository) UpdateAssignedStaff(ctx context.Context, tx usecase.Transaction, id string, staff []string, updatedAt time.Time) error {
	if m.UpdateAssignedStaffFunc != nil {
		return m.UpdateAssignedStaffFunc(ctx, tx, id, staff, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.bookings[id]; ok {
		b.AssignedStaff = staff
		b.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bookings, id)
	return nil
}

// MockProductOrderRepository is a mock implementation of ProductOrderRepository.
type MockProductOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.ProductOrder

	CreateFunc              func(ctx context.Context, order *domain.ProductOrder) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.ProductOrder, error)
	ListFunc                func(ctx context.Context, window usecase.Window, limit, offset int) ([]*domain.ProductOrder, error)
	UpdateAssignedStaffFunc func(ctx context.Context, tx usecase.Transaction, id string, staff []string, updatedAt time.Time) error
	DeleteFunc              func(ctx context.Context, id string) error
}

func NewMockProductOrderRepository() *MockProductOrderRepository {
	return &MockProductOrderRepository{
		orders: make(map[string]*domain.ProductOrder),
	}
}

func (m *MockProductOrderRepository) Create(ctx context.Context, order *domain.ProductOrder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return nil
}

func (m *MockProductOrderRepository) GetByID(ctx context.Context, id string) (*domain.ProductOrder, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (m *MockProductOrderRepository) List(ctx context.Context, window usecase.Window, limit, offset int) ([]*domain.ProductOrder, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, window, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var orders []*domain.ProductOrder
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (m *MockProductOrderRepository) UpdateAssignedStaff(ctx context.Context, tx usecase.Transaction, id string, staff []string, updatedAt time.Time) error {
	if m.UpdateAssignedStaffFunc != nil {
		return m.UpdateAssignedStaffFunc(ctx, tx, id, staff, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		o.AssignedStaff = staff
		o.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockProductOrderRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, id)
	return nil
}

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	mu              sync.RWMutex
	BookingFinances map[string]*domain.BookingFinance
	OrderFinances   map[string]*domain.OrderFinance
	Lines           map[string][]domain.CommissionLine

	SaveBookingFinanceFunc     func(ctx context.Context, tx usecase.Transaction, bookingID string, fin *domain.BookingFinance) error
	SaveOrderFinanceFunc       func(ctx context.Context, tx usecase.Transaction, orderID string, fin *domain.OrderFinance) error
	ReplaceCommissionLinesFunc func(ctx context.Context, tx usecase.Transaction, entityID string, lines []domain.CommissionLine) error
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{
		BookingFinances: make(map[string]*domain.BookingFinance),
		OrderFinances:   make(map[string]*domain.OrderFinance),
		Lines:           make(map[string][]domain.CommissionLine),
	}
}

func (m *MockLedgerRepository) SaveBookingFinance(ctx context.Context, tx usecase.Transaction, bookingID string, fin *domain.BookingFinance) error {
	if m.SaveBookingFinanceFunc != nil {
		return m.SaveBookingFinanceFunc(ctx, tx, bookingID, fin)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BookingFinances[bookingID] = fin
	return nil
}

func (m *MockLedgerRepository) SaveOrderFinance(ctx context.Context, tx usecase.Transaction, orderID string, fin *domain.OrderFinance) error {
	if m.SaveOrderFinanceFunc != nil {
		return m.SaveOrderFinanceFunc(ctx, tx, orderID, fin)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OrderFinances[orderID] = fin
	return nil
}

func (m *MockLedgerRepository) ReplaceCommissionLines(ctx context.Context, tx usecase.Transaction, entityID string, lines []domain.CommissionLine) error {
	if m.ReplaceCommissionLinesFunc != nil {
		return m.ReplaceCommissionLinesFunc(ctx, tx, entityID, lines)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Lines[entityID] = lines
	return nil
}

// MockTransaction is a no-op transaction recording its outcome.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	LastTx    *MockTransaction
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockRetrier is a mock implementation of Retrier. The default runs the
// operation exactly once.
type MockRetrier struct {
	Attempts  int
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	m.Attempts++
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu           sync.Mutex
	counter      int
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + string(rune('0'+m.counter%10))
}

// ErrCacheMiss is returned by MockCache for unknown keys.
var ErrCacheMiss = errors.New("cache miss")

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu      sync.RWMutex
	values  map[string]string
	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key, value string, ttl time.Duration) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// MockReportRenderer is a mock implementation of ReportRenderer.
type MockReportRenderer struct {
	Rendered   []*report.Report
	RenderFunc func(rep *report.Report) ([]byte, error)
}

func NewMockReportRenderer() *MockReportRenderer {
	return &MockReportRenderer{}
}

func (m *MockReportRenderer) Render(rep *report.Report) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(rep)
	}
	m.Rendered = append(m.Rendered, rep)
	return []byte("rendered:" + rep.Period.String()), nil
}
