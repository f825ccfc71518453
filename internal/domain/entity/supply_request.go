package entity

// SupplyRequest representa una fila de productsupplyrequests: la solicitud de
// reposición de un manager a una bodega. Append-only.
type SupplyRequest struct {
	Number      int
	ManagerID   int
	WarehouseID int
	StoreID     int
	ProductName string
	Units       int
}
