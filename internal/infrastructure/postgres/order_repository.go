package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta un pedido. ordernumber lo asigna la secuencia y ordertime el default NOW().
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (customerid, storeid, productname, unitsordered)
		VALUES ($1, $2, $3, $4)
		RETURNING ordernumber, ordertime`
	err := r.q.QueryRow(ctx, query,
		order.CustomerID, order.StoreID, order.ProductName, order.Units,
	).Scan(&order.Number, &order.OrderTime)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}
