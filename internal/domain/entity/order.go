package entity

import "time"

// Order representa una fila de orders (append-only).
// Number lo asigna la secuencia de la base; OrderTime el default NOW() del esquema.
type Order struct {
	Number      int
	CustomerID  int
	StoreID     int
	ProductName string
	Units       int
	OrderTime   time.Time
}
