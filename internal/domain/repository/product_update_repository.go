package repository

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/domain/entity"
)

// ProductUpdateRepository define el puerto para la auditoría de productos
// (tabla productupdates, append-only).
type ProductUpdateRepository interface {
	Create(ctx context.Context, update *entity.ProductUpdate) error
	// RecentByStore devuelve las últimas actualizaciones de una tienda,
	// más recientes primero.
	RecentByStore(ctx context.Context, storeID, limit int) ([]entity.ProductUpdate, error)
}
