package cli

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/application/dto"
)

func (a *App) viewStores(ctx context.Context) error {
	stores, err := a.shop.StoresInRange(ctx, *a.sess)
	if err != nil {
		return err
	}
	a.render.Stores(stores)
	return nil
}

func (a *App) viewProducts(ctx context.Context) error {
	storeID, err := a.prompt.ReadInt("\tID de tienda: ")
	if err != nil {
		return err
	}
	products, err := a.shop.Products(ctx, storeID)
	if err != nil {
		return err
	}
	a.render.Products(products)
	return nil
}

func (a *App) placeOrder(ctx context.Context) error {
	storeID, err := a.prompt.ReadInt("\tID de tienda: ")
	if err != nil {
		return err
	}
	productName, err := a.prompt.ReadLine("\tProducto: ")
	if err != nil {
		return err
	}
	units, err := a.prompt.ReadInt("\tCantidad: ")
	if err != nil {
		return err
	}

	order, err := a.shop.PlaceOrder(ctx, *a.sess, dto.PlaceOrderRequest{
		StoreID:     storeID,
		ProductName: productName,
		Units:       units,
	})
	if err != nil {
		return err
	}
	a.log.Info().
		Str("session", a.sess.ID).
		Int("order_number", order.Number).
		Int("store_id", order.StoreID).
		Str("product", order.ProductName).
		Int("units", order.Units).
		Msg("pedido colocado")
	a.render.Printf("¡Pedido #%d registrado!\n", order.Number)
	return nil
}

func (a *App) recentOrders(ctx context.Context) error {
	rows, err := a.shop.RecentOrders(ctx, *a.sess)
	if err != nil {
		return err
	}
	a.render.CustomerOrders(rows)
	return nil
}
