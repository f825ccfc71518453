package repository

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/domain/entity"
)

// StoreRepository define el puerto de lectura para Store. Las tiendas se
// crean fuera de este sistema; aquí solo se consultan.
type StoreRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Store, error)
	List(ctx context.Context) ([]entity.Store, error)
	// IsManagedBy responde si managerID administra la tienda storeID.
	IsManagedBy(ctx context.Context, storeID, managerID int) (bool, error)
}
