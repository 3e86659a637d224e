package order

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoOrders/internal/application/port/outbound"
	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

const opGet = "get_order"

type GetUseCaseImpl struct {
	OrderRepository outbound.OrderRepository
	StatusReporter  outbound.StatusReporter
}

func NewGetUseCase(repo outbound.OrderRepository, reporter outbound.StatusReporter) *GetUseCaseImpl {
	return &GetUseCaseImpl{
		OrderRepository: repo,
		StatusReporter:  reporter,
	}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := uc.OrderRepository.FindByID(ctx, id)
	if err != nil {
		uc.StatusReporter.ReportFailure(opGet, fmt.Sprintf("failed to get order %d: %s", id, err), &id)
		return nil, err
	}

	if order == nil {
		notFound := &entity.NotFoundError{ID: id}
		uc.StatusReporter.ReportFailure(opGet, notFound.Error(), &id)
		return nil, notFound
	}

	uc.StatusReporter.ReportSuccess(opGet, &id)
	return order, nil
}
