package repository

import (
	"context"
	"time"
)

// Filas de reporte (consultas con JOIN/agregación que no corresponden a una
// sola entidad).

// CustomerOrderRow es un pedido reciente del cliente con el nombre de la tienda.
type CustomerOrderRow struct {
	StoreName   string
	StoreID     int
	ProductName string
	Units       int
	OrderTime   time.Time
}

// StoreOrderRow es un pedido de una tienda con el nombre del cliente.
type StoreOrderRow struct {
	Number       int
	StoreID      int
	OrderTime    time.Time
	CustomerName string
	ProductName  string
	Units        int
}

// PopularProductRow es un producto con su conteo de pedidos en la tienda.
type PopularProductRow struct {
	ProductName string
	OrderCount  int64
}

// PopularCustomerRow es un cliente con su conteo de pedidos en la tienda.
type PopularCustomerRow struct {
	CustomerID   int
	CustomerName string
	OrderCount   int64
}

// ReportRepository define el puerto de solo lectura para los reportes del menú.
type ReportRepository interface {
	RecentOrdersByCustomer(ctx context.Context, customerID, limit int) ([]CustomerOrderRow, error)
	OrdersByStore(ctx context.Context, storeID int) ([]StoreOrderRow, error)
	PopularProducts(ctx context.Context, storeID, limit int) ([]PopularProductRow, error)
	PopularCustomers(ctx context.Context, storeID, limit int) ([]PopularCustomerRow, error)
}
