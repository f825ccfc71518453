package entity

// Warehouse representa una fila de warehouse. Solo se consulta su existencia
// al colocar solicitudes de suministro.
type Warehouse struct {
	ID        int
	Area      int
	Latitude  float64
	Longitude float64
}
