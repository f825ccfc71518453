package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes del menú
// (pedidos recientes, pedidos por tienda, productos y clientes populares).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// RecentOrdersByCustomer devuelve los últimos pedidos del cliente con el
// nombre de la tienda, más recientes primero.
func (r *ReportRepo) RecentOrdersByCustomer(ctx context.Context, customerID, limit int) ([]repository.CustomerOrderRow, error) {
	const query = `
	SELECT s.name, o.storeid, o.productname, o.unitsordered, o.ordertime
	FROM orders o
	JOIN store s ON s.storeid = o.storeid
	WHERE o.customerid = $1
	ORDER BY o.ordertime DESC
	LIMIT $2`

	rows, err := r.q.Query(ctx, query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.RecentOrdersByCustomer: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerOrderRow
	for rows.Next() {
		var row repository.CustomerOrderRow
		if err := rows.Scan(&row.StoreName, &row.StoreID, &row.ProductName, &row.Units, &row.OrderTime); err != nil {
			return nil, fmt.Errorf("reports.RecentOrdersByCustomer scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// OrdersByStore devuelve todos los pedidos de una tienda con el nombre del cliente.
func (r *ReportRepo) OrdersByStore(ctx context.Context, storeID int) ([]repository.StoreOrderRow, error) {
	const query = `
	SELECT o.ordernumber, o.storeid, o.ordertime, u.name, o.productname, o.unitsordered
	FROM orders o
	JOIN users u ON u.userid = o.customerid
	WHERE o.storeid = $1
	ORDER BY o.ordertime DESC`

	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("reports.OrdersByStore: %w", err)
	}
	defer rows.Close()

	var results []repository.StoreOrderRow
	for rows.Next() {
		var row repository.StoreOrderRow
		if err := rows.Scan(&row.Number, &row.StoreID, &row.OrderTime, &row.CustomerName, &row.ProductName, &row.Units); err != nil {
			return nil, fmt.Errorf("reports.OrdersByStore scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PopularProducts agrupa los pedidos de la tienda por producto, más pedidos primero.
func (r *ReportRepo) PopularProducts(ctx context.Context, storeID, limit int) ([]repository.PopularProductRow, error) {
	const query = `
	SELECT productname, COUNT(ordernumber) AS order_count
	FROM orders
	WHERE storeid = $1
	GROUP BY productname
	ORDER BY order_count DESC
	LIMIT $2`

	rows, err := r.q.Query(ctx, query, storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.PopularProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.PopularProductRow
	for rows.Next() {
		var row repository.PopularProductRow
		if err := rows.Scan(&row.ProductName, &row.OrderCount); err != nil {
			return nil, fmt.Errorf("reports.PopularProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PopularCustomers agrupa los pedidos de la tienda por cliente, más pedidos primero.
func (r *ReportRepo) PopularCustomers(ctx context.Context, storeID, limit int) ([]repository.PopularCustomerRow, error) {
	const query = `
	SELECT o.customerid, u.name, COUNT(o.ordernumber) AS order_count
	FROM orders o
	JOIN users u ON u.userid = o.customerid
	WHERE o.storeid = $1
	GROUP BY o.customerid, u.name
	ORDER BY order_count DESC
	LIMIT $2`

	rows, err := r.q.Query(ctx, query, storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.PopularCustomers: %w", err)
	}
	defer rows.Close()

	var results []repository.PopularCustomerRow
	for rows.Next() {
		var row repository.PopularCustomerRow
		if err := rows.Scan(&row.CustomerID, &row.CustomerName, &row.OrderCount); err != nil {
			return nil, fmt.Errorf("reports.PopularCustomers scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
