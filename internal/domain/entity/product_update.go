package entity

import "time"

// ProductUpdate es la fila de auditoría (productupdates) que registra quién
// modificó un producto y cuándo. Append-only.
type ProductUpdate struct {
	Number      int
	ManagerID   int
	StoreID     int
	ProductName string
	UpdatedOn   time.Time
}
