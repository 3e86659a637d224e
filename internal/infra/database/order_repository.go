package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

type OrderRepositoryImpl struct {
	Db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{Db: db}
}

const orderColumns = `id, customer_name, product_name, quantity, unit_price, total_amount, order_date, status, created_at, updated_at`

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	err := r.Db.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, product_name, quantity, unit_price, total_amount, order_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		order.CustomerName,
		order.ProductName,
		order.Quantity,
		order.UnitPrice,
		order.TotalAmount,
		order.OrderDate,
		string(order.Status),
		order.CreatedAt,
		order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return &entity.RepositoryError{Cause: fmt.Errorf("insert order: %w", err)}
	}

	return nil
}

func (r *OrderRepositoryImpl) FindAll(ctx context.Context) ([]entity.Order, error) {
	rows, err := r.Db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, &entity.RepositoryError{Cause: fmt.Errorf("select orders: %w", err)}
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, &entity.RepositoryError{Cause: fmt.Errorf("scan order: %w", err)}
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, &entity.RepositoryError{Cause: fmt.Errorf("iterate orders: %w", err)}
	}

	return orders, nil
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := scanOrder(r.Db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		// Absence is a normal outcome, not a fault.
		return nil, nil
	}
	if err != nil {
		return nil, &entity.RepositoryError{Cause: fmt.Errorf("select order %d: %w", id, err)}
	}

	return order, nil
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, order *entity.Order) error {
	_, err := r.Db.ExecContext(ctx, `
		UPDATE orders
		SET customer_name = $1, product_name = $2, quantity = $3,
		    unit_price = $4, total_amount = $5, status = $6, updated_at = $7
		WHERE id = $8`,
		order.CustomerName,
		order.ProductName,
		order.Quantity,
		order.UnitPrice,
		order.TotalAmount,
		string(order.Status),
		order.UpdatedAt,
		order.ID,
	)
	if err != nil {
		return &entity.RepositoryError{Cause: fmt.Errorf("update order %d: %w", order.ID, err)}
	}

	return nil
}

func (r *OrderRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.Db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, &entity.RepositoryError{Cause: fmt.Errorf("delete order %d: %w", id, err)}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, &entity.RepositoryError{Cause: fmt.Errorf("delete order %d: %w", id, err)}
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	var order entity.Order
	var status string

	err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.ProductName,
		&order.Quantity,
		&order.UnitPrice,
		&order.TotalAmount,
		&order.OrderDate,
		&status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Status = entity.Status(status)
	return &order, nil
}
