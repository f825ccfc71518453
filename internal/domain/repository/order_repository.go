package repository

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (append-only).
// El número de orden y ordertime los asigna la base.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
}
