package repository

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/domain/entity"
)

// SupplyRequestRepository define el puerto para solicitudes de suministro
// (tabla productsupplyrequests, append-only).
type SupplyRequestRepository interface {
	Create(ctx context.Context, req *entity.SupplyRequest) error
}

// WarehouseRepository define el puerto de lectura para Warehouse.
type WarehouseRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Warehouse, error)
}
