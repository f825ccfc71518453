package dto

import "github.com/shopspring/decimal"

// KeepCurrent es el sentinela numérico del protocolo de consola: el operador
// escribe -1 para conservar el valor actual de un campo.
const KeepCurrent = -1

// CreateUserRequest datos de registro. El rol siempre inicia en customer.
type CreateUserRequest struct {
	Name      string
	Password  string
	Latitude  float64
	Longitude float64
}

// PlaceOrderRequest datos para colocar un pedido.
type PlaceOrderRequest struct {
	StoreID     int
	ProductName string
	Units       int
}

// UpdateProductRequest actualización de producto por el manager de la tienda.
// Units < 0 o Price negativo significan "conservar el valor actual".
type UpdateProductRequest struct {
	StoreID     int
	ProductName string
	Units       int
	Price       decimal.Decimal
}

// KeepUnits indica si el campo de unidades trae el sentinela.
func (r UpdateProductRequest) KeepUnits() bool { return r.Units < 0 }

// KeepPrice indica si el campo de precio trae el sentinela.
func (r UpdateProductRequest) KeepPrice() bool { return r.Price.IsNegative() }

// SupplyRequestInput datos de una solicitud de reposición a bodega.
type SupplyRequestInput struct {
	StoreID     int
	ProductName string
	Units       int
	WarehouseID int
}

// UpdateUserPatch actualización de usuario por un admin. String vacío y
// coordenada negativa significan "conservar el valor actual".
type UpdateUserPatch struct {
	UserID    int
	Name      string
	Password  string
	Latitude  float64
	Longitude float64
	Role      string
}

// UpdateProductPatch actualización directa de producto por un admin.
// Units < 0 y Price negativo significan "conservar el valor actual".
type UpdateProductPatch struct {
	StoreID     int
	ProductName string
	Units       int
	Price       decimal.Decimal
}
