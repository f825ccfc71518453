package auth

import (
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/geo"
)

// Session es el contexto autenticado del proceso: un snapshot del usuario
// tomado en el login. Es un valor que el bucle del CLI pasa explícitamente a
// cada operación; se reemplaza completo al iniciar sesión y se descarta al
// salir (no hay estado mutable global).
type Session struct {
	ID       string // uuid para correlacionar eventos de log de esta sesión
	UserID   int
	Name     string
	Role     string
	Location geo.Point
}

// IsCustomer indica si la sesión pertenece a un cliente.
func (s Session) IsCustomer() bool { return s.Role == entity.RoleCustomer }

// IsManager indica si la sesión pertenece a un manager.
func (s Session) IsManager() bool { return s.Role == entity.RoleManager }

// IsAdmin indica si la sesión pertenece a un admin.
func (s Session) IsAdmin() bool { return s.Role == entity.RoleAdmin }
