package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El borde CLI los traduce a mensajes para el operador; ninguno corrompe la sesión.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUserAlreadyExists  = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrCoordinatesRange   = errors.New("latitud/longitud fuera de rango [0, 100]")
	ErrInvalidRole        = errors.New("tipo de usuario inválido (customer, manager o admin)")
	ErrStoreNotFound      = errors.New("la tienda no existe")
	ErrStoreOutOfRange    = errors.New("la tienda está fuera del radio de 30 unidades")
	ErrProductNotFound    = errors.New("el producto no existe en esa tienda")
	ErrWarehouseNotFound  = errors.New("la bodega no existe")
	ErrInsufficientStock  = errors.New("stock insuficiente para completar el pedido")
	ErrNotStoreManager    = errors.New("no administras esa tienda")
	ErrNothingToUpdate    = errors.New("no hay información para actualizar")
)
