package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

var _ repository.SupplyRequestRepository = (*SupplyRequestRepo)(nil)
var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// SupplyRequestRepo implementación del puerto de solicitudes de suministro (usable con pool o tx).
type SupplyRequestRepo struct {
	q Querier
}

// NewSupplyRequestRepository construye el adaptador de solicitudes de suministro.
func NewSupplyRequestRepository(q Querier) *SupplyRequestRepo {
	return &SupplyRequestRepo{q: q}
}

// Create inserta la solicitud de reposición a bodega.
func (r *SupplyRequestRepo) Create(ctx context.Context, req *entity.SupplyRequest) error {
	query := `
		INSERT INTO productsupplyrequests (managerid, warehouseid, storeid, productname, unitsrequested)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING requestnumber`
	err := r.q.QueryRow(ctx, query,
		req.ManagerID, req.WarehouseID, req.StoreID, req.ProductName, req.Units,
	).Scan(&req.Number)
	if err != nil {
		return fmt.Errorf("insert supply request: %w", err)
	}
	return nil
}

// WarehouseRepo implementación del puerto de lectura de bodegas.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de lectura para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// GetByID obtiene una bodega por id. (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int) (*entity.Warehouse, error) {
	query := `
		SELECT warehouseid, area, latitude, longitude
		FROM warehouse WHERE warehouseid = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, id).Scan(&w.ID, &w.Area, &w.Latitude, &w.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}
