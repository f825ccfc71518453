package manage

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/application/auth"
	"github.com/tu-usuario/retail-shop/internal/application/dto"
	"github.com/tu-usuario/retail-shop/internal/domain"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

// topLimit filas que muestran los reportes top-5 del manager.
const topLimit = 5

// TxRunner ejecuta mutación de producto + auditoría (+ solicitud de
// suministro) de forma atómica.
type TxRunner interface {
	RunMaintenance(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		updateRepo repository.ProductUpdateRepository,
		supplyRepo repository.SupplyRequestRepository,
	) error) error
}

// ManageUseCase casos de uso del manager: reportes de su tienda,
// actualización de productos y solicitudes de reposición.
type ManageUseCase struct {
	storeRepo     repository.StoreRepository
	productRepo   repository.ProductRepository
	updateRepo    repository.ProductUpdateRepository
	warehouseRepo repository.WarehouseRepository
	reportRepo    repository.ReportRepository
	tx            TxRunner
}

// NewManageUseCase construye el caso de uso de administración de tienda.
func NewManageUseCase(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	updateRepo repository.ProductUpdateRepository,
	warehouseRepo repository.WarehouseRepository,
	reportRepo repository.ReportRepository,
	tx TxRunner,
) *ManageUseCase {
	return &ManageUseCase{
		storeRepo:     storeRepo,
		productRepo:   productRepo,
		updateRepo:    updateRepo,
		warehouseRepo: warehouseRepo,
		reportRepo:    reportRepo,
		tx:            tx,
	}
}

// requireOwnership verifica que la sesión administre la tienda.
// Devuelve ErrNotStoreManager si no; las operaciones de manager abortan ahí
// sin tocar nada.
func (uc *ManageUseCase) requireOwnership(ctx context.Context, sess auth.Session, storeID int) error {
	ok, err := uc.storeRepo.IsManagedBy(ctx, storeID, sess.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotStoreManager
	}
	return nil
}

// StoreOrders lista todos los pedidos de una tienda administrada por la sesión.
func (uc *ManageUseCase) StoreOrders(ctx context.Context, sess auth.Session, storeID int) ([]repository.StoreOrderRow, error) {
	if err := uc.requireOwnership(ctx, sess, storeID); err != nil {
		return nil, err
	}
	return uc.reportRepo.OrdersByStore(ctx, storeID)
}

// UpdateProduct actualiza unidades y/o precio de un producto de una tienda
// administrada por la sesión. El sentinela -1 conserva el valor actual; con
// ambos campos en sentinela no hay nada que actualizar. La mutación y la fila
// de auditoría confirman en una transacción.
func (uc *ManageUseCase) UpdateProduct(ctx context.Context, sess auth.Session, in dto.UpdateProductRequest) error {
	if err := uc.requireOwnership(ctx, sess, in.StoreID); err != nil {
		return err
	}
	if in.KeepUnits() && in.KeepPrice() {
		return domain.ErrNothingToUpdate
	}
	product, err := uc.productRepo.Get(ctx, in.StoreID, in.ProductName)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if !in.KeepUnits() {
		product.Units = in.Units
	}
	if !in.KeepPrice() {
		product.Price = in.Price
	}
	audit := &entity.ProductUpdate{
		ManagerID:   sess.UserID,
		StoreID:     in.StoreID,
		ProductName: in.ProductName,
	}
	return uc.tx.RunMaintenance(ctx, func(
		productRepo repository.ProductRepository,
		updateRepo repository.ProductUpdateRepository,
		_ repository.SupplyRequestRepository,
	) error {
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		return updateRepo.Create(ctx, audit)
	})
}

// RecentUpdates lista las últimas 5 actualizaciones de producto de la tienda.
func (uc *ManageUseCase) RecentUpdates(ctx context.Context, sess auth.Session, storeID int) ([]entity.ProductUpdate, error) {
	if err := uc.requireOwnership(ctx, sess, storeID); err != nil {
		return nil, err
	}
	return uc.updateRepo.RecentByStore(ctx, storeID, topLimit)
}

// PopularProducts lista los 5 productos con más pedidos en la tienda.
func (uc *ManageUseCase) PopularProducts(ctx context.Context, sess auth.Session, storeID int) ([]repository.PopularProductRow, error) {
	if err := uc.requireOwnership(ctx, sess, storeID); err != nil {
		return nil, err
	}
	return uc.reportRepo.PopularProducts(ctx, storeID, topLimit)
}

// PopularCustomers lista los 5 clientes con más pedidos en la tienda.
func (uc *ManageUseCase) PopularCustomers(ctx context.Context, sess auth.Session, storeID int) ([]repository.PopularCustomerRow, error) {
	if err := uc.requireOwnership(ctx, sess, storeID); err != nil {
		return nil, err
	}
	return uc.reportRepo.PopularCustomers(ctx, storeID, topLimit)
}

// PlaceSupplyRequest coloca una solicitud de reposición: tienda, producto y
// bodega deben existir y la cantidad ser >= 1. La solicitud, el incremento de
// stock y la fila de auditoría confirman en una transacción.
func (uc *ManageUseCase) PlaceSupplyRequest(ctx context.Context, sess auth.Session, in dto.SupplyRequestInput) error {
	store, err := uc.storeRepo.GetByID(ctx, in.StoreID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	product, err := uc.productRepo.Get(ctx, in.StoreID, in.ProductName)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrWarehouseNotFound
	}
	if in.Units < 1 {
		return domain.ErrInvalidInput
	}

	req := &entity.SupplyRequest{
		ManagerID:   sess.UserID,
		WarehouseID: in.WarehouseID,
		StoreID:     in.StoreID,
		ProductName: in.ProductName,
		Units:       in.Units,
	}
	audit := &entity.ProductUpdate{
		ManagerID:   sess.UserID,
		StoreID:     in.StoreID,
		ProductName: in.ProductName,
	}
	return uc.tx.RunMaintenance(ctx, func(
		productRepo repository.ProductRepository,
		updateRepo repository.ProductUpdateRepository,
		supplyRepo repository.SupplyRequestRepository,
	) error {
		if err := supplyRepo.Create(ctx, req); err != nil {
			return err
		}
		if err := productRepo.AdjustUnits(ctx, in.StoreID, in.ProductName, in.Units); err != nil {
			return err
		}
		return updateRepo.Create(ctx, audit)
	})
}
