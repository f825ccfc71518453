package entity

// Roles válidos para User (columna type del esquema externo).
const (
	RoleCustomer = "customer"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// User representa una fila de users. Las coordenadas viven en un plano
// sintético [0,100]x[0,100], no son geodésicas.
type User struct {
	ID           int
	Name         string // único en el esquema
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Latitude     float64
	Longitude    float64
	Role         string // customer, manager, admin
}

// ValidRole indica si el string corresponde a un rol conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleManager, RoleAdmin:
		return true
	}
	return false
}
