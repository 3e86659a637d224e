package order

import (
	"context"
	"time"

	"github.com/DioGolang/GoOrders/internal/domain/entity"
	"github.com/DioGolang/GoOrders/pkg/metrics"
)

// Metrics decorators wrap each use case so instrumentation stays out of the
// business path.

type CreateMetricsDecorator struct {
	Next    CreateUseCase
	Metrics metrics.Metrics
}

func (d *CreateMetricsDecorator) Execute(ctx context.Context, input CreateInput) (*entity.Order, error) {
	start := time.Now()
	order, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("CreateOrder", err == nil, time.Since(start))
	if err == nil {
		d.Metrics.RecordOrderMutation("created")
	}
	return order, err
}

type ListMetricsDecorator struct {
	Next    ListUseCase
	Metrics metrics.Metrics
}

func (d *ListMetricsDecorator) Execute(ctx context.Context) ([]entity.Order, error) {
	start := time.Now()
	orders, err := d.Next.Execute(ctx)
	d.Metrics.RecordUseCaseExecution("ListOrders", err == nil, time.Since(start))
	return orders, err
}

type GetMetricsDecorator struct {
	Next    GetUseCase
	Metrics metrics.Metrics
}

func (d *GetMetricsDecorator) Execute(ctx context.Context, id int64) (*entity.Order, error) {
	start := time.Now()
	order, err := d.Next.Execute(ctx, id)
	d.Metrics.RecordUseCaseExecution("GetOrder", err == nil, time.Since(start))
	return order, err
}

type UpdateMetricsDecorator struct {
	Next    UpdateUseCase
	Metrics metrics.Metrics
}

func (d *UpdateMetricsDecorator) Execute(ctx context.Context, id int64, input UpdateInput) (*entity.Order, error) {
	start := time.Now()
	order, err := d.Next.Execute(ctx, id, input)
	d.Metrics.RecordUseCaseExecution("UpdateOrder", err == nil, time.Since(start))
	if err == nil {
		d.Metrics.RecordOrderMutation("updated")
	}
	return order, err
}

type DeleteMetricsDecorator struct {
	Next    DeleteUseCase
	Metrics metrics.Metrics
}

func (d *DeleteMetricsDecorator) Execute(ctx context.Context, id int64) error {
	start := time.Now()
	err := d.Next.Execute(ctx, id)
	d.Metrics.RecordUseCaseExecution("DeleteOrder", err == nil, time.Since(start))
	if err == nil {
		d.Metrics.RecordOrderMutation("deleted")
	}
	return err
}
