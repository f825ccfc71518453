package cli

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/application/dto"
)

func (a *App) storeOrders(ctx context.Context) error {
	storeID, err := a.prompt.ReadInt("\tID de tienda: ")
	if err != nil {
		return err
	}
	rows, err := a.manage.StoreOrders(ctx, *a.sess, storeID)
	if err != nil {
		return err
	}
	a.render.StoreOrders(rows)
	return nil
}

func (a *App) updateProduct(ctx context.Context) error {
	storeID, err := a.prompt.ReadInt("\tID de tienda: ")
	if err != nil {
		return err
	}
	productName, err := a.prompt.ReadLine("\tProducto: ")
	if err != nil {
		return err
	}
	units, err := a.prompt.ReadInt("\tNuevas unidades (-1 conserva): ")
	if err != nil {
		return err
	}
	price, err := a.prompt.ReadDecimal("\tNuevo precio (-1 conserva): ")
	if err != nil {
		return err
	}

	in := dto.UpdateProductRequest{
		StoreID:     storeID,
		ProductName: productName,
		Units:       units,
		Price:       price,
	}
	if err := a.manage.UpdateProduct(ctx, *a.sess, in); err != nil {
		return err
	}
	a.log.Info().
		Str("session", a.sess.ID).
		Int("store_id", storeID).
		Str("product", productName).
		Msg("producto actualizado")
	a.render.Println("¡Producto actualizado!")
	return nil
}

func (a *App) recentUpdates(ctx context.Context) error {
	storeID, err := a.prompt.ReadInt("\tID de tienda: ")
	if err != nil {
		return err
	}
	rows, err := a.manage.RecentUpdates(ctx, *a.sess, storeID)
	if err != nil {
		return err
	}
	a.render.ProductUpdates(rows)
	return nil
}

func (a *App) popularProducts(ctx context.Context) error {
	storeID, err := a.prompt.ReadInt("\tID de tienda: ")
	if err != nil {
		return err
	}
	rows, err := a.manage.PopularProducts(ctx, *a.sess, storeID)
	if err != nil {
		return err
	}
	a.render.PopularProducts(rows)
	return nil
}

func (a *App) popularCustomers(ctx context.Context) error {
	storeID, err := a.prompt.ReadInt("\tID de tienda: ")
	if err != nil {
		return err
	}
	rows, err := a.manage.PopularCustomers(ctx, *a.sess, storeID)
	if err != nil {
		return err
	}
	a.render.PopularCustomers(rows)
	return nil
}

func (a *App) placeSupplyRequest(ctx context.Context) error {
	storeID, err := a.prompt.ReadInt("\tID de tienda: ")
	if err != nil {
		return err
	}
	productName, err := a.prompt.ReadLine("\tProducto: ")
	if err != nil {
		return err
	}
	units, err := a.prompt.ReadInt("\tUnidades solicitadas: ")
	if err != nil {
		return err
	}
	warehouseID, err := a.prompt.ReadInt("\tID de bodega: ")
	if err != nil {
		return err
	}

	in := dto.SupplyRequestInput{
		StoreID:     storeID,
		ProductName: productName,
		Units:       units,
		WarehouseID: warehouseID,
	}
	if err := a.manage.PlaceSupplyRequest(ctx, *a.sess, in); err != nil {
		return err
	}
	a.log.Info().
		Str("session", a.sess.ID).
		Int("store_id", storeID).
		Int("warehouse_id", warehouseID).
		Str("product", productName).
		Int("units", units).
		Msg("solicitud de suministro colocada")
	a.render.Println("¡Solicitud de suministro registrada!")
	return nil
}
