package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

var _ repository.ProductUpdateRepository = (*ProductUpdateRepo)(nil)

// ProductUpdateRepo implementación del puerto de auditoría sobre PostgreSQL (usable con pool o tx).
type ProductUpdateRepo struct {
	q Querier
}

// NewProductUpdateRepository construye el adaptador de auditoría de productos.
func NewProductUpdateRepository(q Querier) *ProductUpdateRepo {
	return &ProductUpdateRepo{q: q}
}

// Create inserta la fila de auditoría con updatedon = NOW().
func (r *ProductUpdateRepo) Create(ctx context.Context, update *entity.ProductUpdate) error {
	query := `
		INSERT INTO productupdates (managerid, storeid, productname, updatedon)
		VALUES ($1, $2, $3, NOW())
		RETURNING updatenumber, updatedon`
	err := r.q.QueryRow(ctx, query,
		update.ManagerID, update.StoreID, update.ProductName,
	).Scan(&update.Number, &update.UpdatedOn)
	if err != nil {
		return fmt.Errorf("insert product update: %w", err)
	}
	return nil
}

// RecentByStore devuelve las últimas actualizaciones de la tienda, más recientes primero.
func (r *ProductUpdateRepo) RecentByStore(ctx context.Context, storeID, limit int) ([]entity.ProductUpdate, error) {
	query := `
		SELECT updatenumber, managerid, storeid, productname, updatedon
		FROM productupdates WHERE storeid = $1
		ORDER BY updatedon DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("list product updates: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductUpdate
	for rows.Next() {
		var u entity.ProductUpdate
		if err := rows.Scan(&u.Number, &u.ManagerID, &u.StoreID, &u.ProductName, &u.UpdatedOn); err != nil {
			return nil, fmt.Errorf("scan product update: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
