package outbound

import (
	"context"

	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

// OrderRepository is the single boundary to the orders table. Implementations
// hold no business rules and wrap every genuine storage fault in
// *entity.RepositoryError.
type OrderRepository interface {
	// Create persists the order and fills in the store-assigned id.
	Create(ctx context.Context, order *entity.Order) error

	// FindAll returns every order, most recently created first. An empty
	// result is success.
	FindAll(ctx context.Context) ([]entity.Order, error)

	// FindByID returns (nil, nil) when no row exists: absence is a normal
	// outcome the caller turns into a not-found, never a fault.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// Update persists the already-merged field values for order.ID.
	Update(ctx context.Context, order *entity.Order) error

	// Delete reports whether a row was actually removed. false is the
	// caller's cue to produce a not-found, it is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
