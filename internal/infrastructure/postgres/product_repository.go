package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Get obtiene un producto por clave compuesta (storeID, name). (nil, nil) si no existe.
func (r *ProductRepo) Get(ctx context.Context, storeID int, name string) (*entity.Product, error) {
	query := `
		SELECT storeid, productname, numberofunits, priceperunit
		FROM product WHERE storeid = $1 AND productname = $2`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, storeID, name).Scan(
		&p.StoreID, &p.Name, &p.Units, &p.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByStore lista los productos de una tienda.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID int) ([]entity.Product, error) {
	query := `
		SELECT storeid, productname, numberofunits, priceperunit
		FROM product WHERE storeid = $1 ORDER BY productname`
	return r.list(ctx, query, storeID)
}

// ListByName lista las apariciones de un producto en todas las tiendas (vista de admin).
func (r *ProductRepo) ListByName(ctx context.Context, name string) ([]entity.Product, error) {
	query := `
		SELECT storeid, productname, numberofunits, priceperunit
		FROM product WHERE productname = $1 ORDER BY storeid`
	return r.list(ctx, query, name)
}

// List devuelve todos los productos (vista de admin).
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT storeid, productname, numberofunits, priceperunit
		FROM product ORDER BY storeid, productname`
	return r.list(ctx, query)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.StoreID, &p.Name, &p.Units, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update fija numberofunits y priceperunit del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE product SET numberofunits = $3, priceperunit = $4
		WHERE storeid = $1 AND productname = $2`
	_, err := r.q.Exec(ctx, query,
		product.StoreID, product.Name, product.Units, product.Price,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AdjustUnits suma delta a numberofunits (negativo para decrementar al ordenar).
func (r *ProductRepo) AdjustUnits(ctx context.Context, storeID int, name string, delta int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE product SET numberofunits = numberofunits + $3 WHERE storeid = $1 AND productname = $2`,
		storeID, name, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust product units: %w", err)
	}
	return nil
}
