package order

import (
	"context"
	"fmt"
	"time"

	"github.com/DioGolang/GoOrders/internal/application/port/outbound"
	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

const opUpdate = "update_order"

type UpdateUseCaseImpl struct {
	OrderRepository outbound.OrderRepository
	StatusReporter  outbound.StatusReporter
}

func NewUpdateUseCase(repo outbound.OrderRepository, reporter outbound.StatusReporter) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{
		OrderRepository: repo,
		StatusReporter:  reporter,
	}
}

func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, id int64, input UpdateInput) (*entity.Order, error) {
	if err := input.Validate(); err != nil {
		uc.StatusReporter.ReportFailure(opUpdate, err.Error(), &id)
		return nil, err
	}

	current, err := uc.OrderRepository.FindByID(ctx, id)
	if err != nil {
		uc.StatusReporter.ReportFailure(opUpdate, fmt.Sprintf("failed to update order %d: %s", id, err), &id)
		return nil, err
	}
	if current == nil {
		notFound := &entity.NotFoundError{ID: id}
		uc.StatusReporter.ReportFailure(opUpdate, notFound.Error(), &id)
		return nil, notFound
	}

	// Read-then-write is not wrapped in a transaction: two concurrent updates
	// to the same id can race and the later write wins wholesale.
	updated := current.Apply(input.patch(), time.Now().UTC())

	if err := uc.OrderRepository.Update(ctx, &updated); err != nil {
		uc.StatusReporter.ReportFailure(opUpdate, fmt.Sprintf("failed to update order %d: %s", id, err), &id)
		return nil, err
	}

	uc.StatusReporter.ReportSuccess(opUpdate, &id)
	return &updated, nil
}
