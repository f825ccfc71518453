package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/retail-shop/internal/application/manage"
	"github.com/tu-usuario/retail-shop/internal/application/shopping"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

// Ensure TxRunner implements shopping.TxRunner and manage.TxRunner.
var _ shopping.TxRunner = (*TxRunner)(nil)
var _ manage.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El cliente histórico dejaba estas secuencias en autocommit; aquí pedido +
// descuento de stock (y mutación + auditoría) confirman o revierten juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia una transacción con repos de pedidos y productos
// (inserción del pedido + descuento de stock) y hace Commit o Rollback.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(orderRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMaintenance inicia una transacción con repos de productos, auditoría y
// solicitudes de suministro (mutación + fila de auditoría + solicitud).
func (r *TxRunner) RunMaintenance(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	updateRepo repository.ProductUpdateRepository,
	supplyRepo repository.SupplyRequestRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	updateRepo := NewProductUpdateRepository(tx)
	supplyRepo := NewSupplyRequestRepository(tx)

	if err := fn(productRepo, updateRepo, supplyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
