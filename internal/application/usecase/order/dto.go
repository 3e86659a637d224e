package order

import (
	"github.com/shopspring/decimal"

	"github.com/DioGolang/GoOrders/internal/domain/entity"
	"github.com/DioGolang/GoOrders/internal/validation"
)

// Input

type CreateInput struct {
	CustomerName string          `json:"customer_name" validate:"min=1,max=100"`
	ProductName  string          `json:"product_name" validate:"min=1,max=100"`
	Quantity     int             `json:"quantity" validate:"min=1"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"dgt0"`
}

func (i CreateInput) Validate() error {
	return validation.Struct(i)
}

// UpdateInput is a full optional-field replace: nil keeps the current value.
// omitnil (not omitempty) so an explicit empty string still fails validation.
type UpdateInput struct {
	CustomerName *string          `json:"customer_name" validate:"omitnil,min=1,max=100"`
	ProductName  *string          `json:"product_name" validate:"omitnil,min=1,max=100"`
	Quantity     *int             `json:"quantity" validate:"omitnil,min=1"`
	UnitPrice    *decimal.Decimal `json:"unit_price" validate:"omitnil,dgt0"`
	Status       *entity.Status   `json:"status" validate:"omitnil,oneof=Pending Processing Shipped Delivered Cancelled"`
}

func (i UpdateInput) Validate() error {
	return validation.Struct(i)
}

func (i UpdateInput) patch() entity.Patch {
	return entity.Patch{
		CustomerName: i.CustomerName,
		ProductName:  i.ProductName,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice,
		Status:       i.Status,
	}
}
