package order

import (
	"context"
	"time"

	"github.com/DioGolang/GoOrders/internal/application/port/outbound"
	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

const opCreate = "create_order"

type CreateUseCaseImpl struct {
	OrderRepository outbound.OrderRepository
	StatusReporter  outbound.StatusReporter
}

func NewCreateUseCase(repo outbound.OrderRepository, reporter outbound.StatusReporter) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{
		OrderRepository: repo,
		StatusReporter:  reporter,
	}
}

func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (*entity.Order, error) {
	if err := input.Validate(); err != nil {
		uc.StatusReporter.ReportFailure(opCreate, err.Error(), nil)
		return nil, err
	}

	order := entity.NewOrder(input.CustomerName, input.ProductName, input.Quantity, input.UnitPrice, time.Now().UTC())

	if err := uc.OrderRepository.Create(ctx, order); err != nil {
		uc.StatusReporter.ReportFailure(opCreate, "failed to create order: "+err.Error(), nil)
		return nil, err
	}

	uc.StatusReporter.ReportSuccess(opCreate, &order.ID)
	return order, nil
}
