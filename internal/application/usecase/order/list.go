package order

import (
	"context"

	"github.com/DioGolang/GoOrders/internal/application/port/outbound"
	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

const opList = "get_orders"

type ListUseCaseImpl struct {
	OrderRepository outbound.OrderRepository
	StatusReporter  outbound.StatusReporter
}

func NewListUseCase(repo outbound.OrderRepository, reporter outbound.StatusReporter) *ListUseCaseImpl {
	return &ListUseCaseImpl{
		OrderRepository: repo,
		StatusReporter:  reporter,
	}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context) ([]entity.Order, error) {
	orders, err := uc.OrderRepository.FindAll(ctx)
	if err != nil {
		uc.StatusReporter.ReportFailure(opList, "failed to get orders: "+err.Error(), nil)
		return nil, err
	}

	// No associated order id, the report covers the listing as a whole.
	uc.StatusReporter.ReportSuccess(opList, nil)
	return orders, nil
}
