package order

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoOrders/internal/application/port/outbound"
	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

const opDelete = "delete_order"

type DeleteUseCaseImpl struct {
	OrderRepository outbound.OrderRepository
	StatusReporter  outbound.StatusReporter
}

func NewDeleteUseCase(repo outbound.OrderRepository, reporter outbound.StatusReporter) *DeleteUseCaseImpl {
	return &DeleteUseCaseImpl{
		OrderRepository: repo,
		StatusReporter:  reporter,
	}
}

func (uc *DeleteUseCaseImpl) Execute(ctx context.Context, id int64) error {
	removed, err := uc.OrderRepository.Delete(ctx, id)
	if err != nil {
		uc.StatusReporter.ReportFailure(opDelete, fmt.Sprintf("failed to delete order %d: %s", id, err), &id)
		return err
	}

	if !removed {
		notFound := &entity.NotFoundError{ID: id}
		uc.StatusReporter.ReportFailure(opDelete, notFound.Error(), &id)
		return notFound
	}

	uc.StatusReporter.ReportSuccess(opDelete, &id)
	return nil
}
