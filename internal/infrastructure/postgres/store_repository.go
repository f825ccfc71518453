package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL (solo lectura).
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de lectura para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// GetByID obtiene una tienda por id. (nil, nil) si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id int) (*entity.Store, error) {
	query := `
		SELECT storeid, name, latitude, longitude, managerid
		FROM store WHERE storeid = $1`
	var s entity.Store
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.ManagerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// List devuelve todas las tiendas. El filtro por radio se aplica en dominio (geo).
func (r *StoreRepo) List(ctx context.Context) ([]entity.Store, error) {
	query := `
		SELECT storeid, name, latitude, longitude, managerid
		FROM store ORDER BY storeid`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.ManagerID); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// IsManagedBy responde si managerID administra la tienda storeID.
func (r *StoreRepo) IsManagedBy(ctx context.Context, storeID, managerID int) (bool, error) {
	var one int
	err := r.q.QueryRow(ctx,
		`SELECT 1 FROM store WHERE storeid = $1 AND managerid = $2`,
		storeID, managerID,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check store manager: %w", err)
	}
	return true, nil
}
