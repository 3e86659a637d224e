package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// Valid reports whether s is a member of the closed status set. There is no
// transition graph: any valid status may replace any other.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	OrderDate    time.Time       `json:"order_date"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewOrder builds a not-yet-persisted order. The id is assigned by the store
// on insert; order_date, created_at and updated_at are all set to now and the
// first two never change afterwards.
func NewOrder(customerName, productName string, quantity int, unitPrice decimal.Decimal, now time.Time) *Order {
	return &Order{
		CustomerName: customerName,
		ProductName:  productName,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TotalAmount:  Total(unitPrice, quantity),
		OrderDate:    now,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Total derives total_amount from unit_price and quantity. It is recomputed
// on every create and update and never accepted as input.
func Total(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Patch carries the optional replacement values of an update. A nil field
// keeps the current value. id, order_date and created_at are immutable and
// have no slot here.
type Patch struct {
	CustomerName *string
	ProductName  *string
	Quantity     *int
	UnitPrice    *decimal.Decimal
	Status       *Status
}

// Apply merges the patch over the current order, recomputes total_amount from
// the merged quantity and unit_price and stamps updated_at. The receiver is
// copied, not mutated.
func (o Order) Apply(p Patch, now time.Time) Order {
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.ProductName != nil {
		o.ProductName = *p.ProductName
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		o.UnitPrice = *p.UnitPrice
	}
	if p.Status != nil {
		o.Status = *p.Status
	}

	o.TotalAmount = Total(o.UnitPrice, o.Quantity)
	o.UpdatedAt = now

	return o
}
