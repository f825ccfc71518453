package entity

// Store representa una fila de store. De solo lectura para este sistema:
// la creación de tiendas es externa.
type Store struct {
	ID        int
	Name      string
	Latitude  float64
	Longitude float64
	ManagerID int // userid del manager responsable
}
