package order

import (
	"context"

	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

type CreateUseCase interface {
	Execute(ctx context.Context, input CreateInput) (*entity.Order, error)
}

type ListUseCase interface {
	Execute(ctx context.Context) ([]entity.Order, error)
}

type GetUseCase interface {
	Execute(ctx context.Context, id int64) (*entity.Order, error)
}

type UpdateUseCase interface {
	Execute(ctx context.Context, id int64, input UpdateInput) (*entity.Order, error)
}

type DeleteUseCase interface {
	Execute(ctx context.Context, id int64) error
}
