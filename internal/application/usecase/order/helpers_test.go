package order

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

// fakeRepository is an in-memory outbound.OrderRepository. Setting failWith
// makes every call fail the way a broken connection would.
type fakeRepository struct {
	mu       sync.Mutex
	orders   map[int64]entity.Order
	nextID   int64
	failWith error

	createCalls int
	updateCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{orders: make(map[int64]entity.Order)}
}

func (f *fakeRepository) Create(_ context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	if f.failWith != nil {
		return f.failWith
	}

	f.nextID++
	order.ID = f.nextID
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeRepository) FindAll(_ context.Context) ([]entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}

	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}

	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeRepository) Update(_ context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.updateCalls++
	if f.failWith != nil {
		return f.failWith
	}

	f.orders[order.ID] = *order
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return false, f.failWith
	}

	_, ok := f.orders[id]
	delete(f.orders, id)
	return ok, nil
}

type recordedReport struct {
	operation string
	success   bool
	detail    string
	orderID   *int64
}

// fakeReporter records every report synchronously so tests can assert the
// exactly-one-report-per-operation contract.
type fakeReporter struct {
	mu      sync.Mutex
	reports []recordedReport
}

func (f *fakeReporter) ReportSuccess(operation string, orderID *int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, recordedReport{operation: operation, success: true, orderID: orderID})
}

func (f *fakeReporter) ReportFailure(operation string, detail string, orderID *int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, recordedReport{operation: operation, success: false, detail: detail, orderID: orderID})
}

func (f *fakeReporter) all() []recordedReport {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedReport(nil), f.reports...)
}

func seedOrder(repo *fakeRepository, customer, product string, quantity int, unitPrice string) entity.Order {
	order := entity.NewOrder(customer, product, quantity, decimal.RequireFromString(unitPrice), time.Now().UTC())
	_ = repo.Create(context.Background(), order)
	repo.createCalls = 0
	return *order
}

func validCreateInput() CreateInput {
	return CreateInput{
		CustomerName: "Alice",
		ProductName:  "Widget",
		Quantity:     3,
		UnitPrice:    decimal.RequireFromString("9.99"),
	}
}
