package shopping

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/application/auth"
	"github.com/tu-usuario/retail-shop/internal/application/dto"
	"github.com/tu-usuario/retail-shop/internal/domain"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/geo"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

// recentOrdersLimit pedidos que muestra el reporte "pedidos recientes".
const recentOrdersLimit = 5

// TxRunner ejecuta la secuencia pedido + descuento de stock de forma atómica.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ShoppingUseCase casos de uso del cliente: tiendas cercanas, catálogo,
// pedidos y pedidos recientes.
type ShoppingUseCase struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	reportRepo  repository.ReportRepository
	tx          TxRunner
}

// NewShoppingUseCase construye el caso de uso de compras.
func NewShoppingUseCase(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	reportRepo repository.ReportRepository,
	tx TxRunner,
) *ShoppingUseCase {
	return &ShoppingUseCase{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		reportRepo:  reportRepo,
		tx:          tx,
	}
}

// StoresInRange devuelve las tiendas a 30 unidades o menos del usuario,
// anotadas con su distancia y ordenadas de la más cercana a la más lejana.
func (uc *ShoppingUseCase) StoresInRange(ctx context.Context, sess auth.Session) ([]geo.StoreDistance, error) {
	stores, err := uc.storeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return geo.StoresWithinRadius(stores, sess.Location, geo.DefaultRadius), nil
}

// Products lista el catálogo de una tienda.
func (uc *ShoppingUseCase) Products(ctx context.Context, storeID int) ([]entity.Product, error) {
	return uc.productRepo.ListByStore(ctx, storeID)
}

// PlaceOrder coloca un pedido: la tienda debe existir y estar dentro del
// radio de 30 unidades, el producto debe existir en la tienda y el stock debe
// alcanzar. El pedido y el descuento de stock confirman en una transacción.
func (uc *ShoppingUseCase) PlaceOrder(ctx context.Context, sess auth.Session, in dto.PlaceOrderRequest) (*entity.Order, error) {
	if in.Units < 1 {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByID(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	storeLoc := geo.Point{Latitude: store.Latitude, Longitude: store.Longitude}
	if geo.Distance(storeLoc, sess.Location) > geo.DefaultRadius {
		return nil, domain.ErrStoreOutOfRange
	}
	product, err := uc.productRepo.Get(ctx, in.StoreID, in.ProductName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Units > product.Units {
		return nil, domain.ErrInsufficientStock
	}

	order := &entity.Order{
		CustomerID:  sess.UserID,
		StoreID:     in.StoreID,
		ProductName: in.ProductName,
		Units:       in.Units,
	}
	err = uc.tx.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		return productRepo.AdjustUnits(ctx, in.StoreID, in.ProductName, -in.Units)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// RecentOrders devuelve los últimos 5 pedidos del cliente, más recientes primero.
func (uc *ShoppingUseCase) RecentOrders(ctx context.Context, sess auth.Session) ([]repository.CustomerOrderRow, error) {
	return uc.reportRepo.RecentOrdersByCustomer(ctx, sess.UserID, recentOrdersLimit)
}
