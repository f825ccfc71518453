package repository

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// La clave es compuesta: (storeID, name).
type ProductRepository interface {
	Get(ctx context.Context, storeID int, name string) (*entity.Product, error)
	ListByStore(ctx context.Context, storeID int) ([]entity.Product, error)
	ListByName(ctx context.Context, name string) ([]entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	// Update fija numberofunits y priceperunit del producto.
	Update(ctx context.Context, product *entity.Product) error
	// AdjustUnits suma delta (negativo para decrementar) a numberofunits.
	AdjustUnits(ctx context.Context, storeID int, name string, delta int) error
}
