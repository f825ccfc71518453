package cli

import (
	"io"

	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/geo"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Renderer escribe los reportes del menú en stdout. Usa un printer de
// x/text para el formato localizado de números (separadores de miles en los
// conteos de pedidos).
type Renderer struct {
	w io.Writer
	p *message.Printer
}

// NewRenderer construye el renderizador de consola.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, p: message.NewPrinter(language.Spanish)}
}

// Println imprime una línea suelta.
func (r *Renderer) Println(args ...any) {
	r.p.Fprintln(r.w, args...)
}

// Printf imprime con formato.
func (r *Renderer) Printf(format string, args ...any) {
	r.p.Fprintf(r.w, format, args...)
}

// Stores imprime las tiendas dentro del radio con su distancia.
func (r *Renderer) Stores(list []geo.StoreDistance) {
	r.p.Fprintln(r.w, "Tiendas a 30 unidades o menos:")
	for _, sd := range list {
		r.p.Fprintf(r.w, "Tienda #%d\n", sd.Store.ID)
		r.p.Fprintf(r.w, "Nombre:    %s\n", sd.Store.Name)
		r.p.Fprintf(r.w, "Distancia: %.2f\n\n", sd.Distance)
	}
	if len(list) == 0 {
		r.p.Fprintln(r.w, "No hay tiendas dentro del radio")
	}
}

// Products imprime el catálogo de una tienda (o de la vista de admin).
func (r *Renderer) Products(list []entity.Product) {
	for _, p := range list {
		r.p.Fprintf(r.w, "Tienda:   #%d\n", p.StoreID)
		r.p.Fprintf(r.w, "Producto: %s\n", p.Name)
		r.p.Fprintf(r.w, "Stock:    %d\n", p.Units)
		r.p.Fprintf(r.w, "Precio:   $%s\n\n", p.Price.StringFixed(2))
	}
	if len(list) == 0 {
		r.p.Fprintln(r.w, "Sin resultados")
	}
}

// CustomerOrders imprime los pedidos recientes del cliente.
func (r *Renderer) CustomerOrders(rows []repository.CustomerOrderRow) {
	for _, o := range rows {
		r.p.Fprintf(r.w, "Tienda:   %s (#%d)\n", o.StoreName, o.StoreID)
		r.p.Fprintf(r.w, "Producto: %s\n", o.ProductName)
		r.p.Fprintf(r.w, "Cantidad: %d\n", o.Units)
		r.p.Fprintf(r.w, "Fecha:    %s\n\n", o.OrderTime.Format("2006-01-02 15:04:05"))
	}
	if len(rows) == 0 {
		r.p.Fprintln(r.w, "No hay pedidos recientes")
	}
}

// StoreOrders imprime los pedidos de una tienda con el cliente que los colocó.
func (r *Renderer) StoreOrders(rows []repository.StoreOrderRow) {
	for _, o := range rows {
		r.p.Fprintf(r.w, "Pedido:   #%d\n", o.Number)
		r.p.Fprintf(r.w, "Tienda:   #%d\n", o.StoreID)
		r.p.Fprintf(r.w, "Fecha:    %s\n", o.OrderTime.Format("2006-01-02 15:04:05"))
		r.p.Fprintf(r.w, "Cliente:  %s\n", o.CustomerName)
		r.p.Fprintf(r.w, "Producto: %s\n", o.ProductName)
		r.p.Fprintf(r.w, "Cantidad: %d\n\n", o.Units)
	}
	if len(rows) == 0 {
		r.p.Fprintln(r.w, "No hay pedidos para esa tienda")
	}
}

// ProductUpdates imprime las filas de auditoría recientes.
func (r *Renderer) ProductUpdates(rows []entity.ProductUpdate) {
	for _, u := range rows {
		r.p.Fprintf(r.w, "Actualización: #%d\n", u.Number)
		r.p.Fprintf(r.w, "Manager:       #%d\n", u.ManagerID)
		r.p.Fprintf(r.w, "Producto:      %s\n", u.ProductName)
		r.p.Fprintf(r.w, "Fecha:         %s\n\n", u.UpdatedOn.Format("2006-01-02 15:04:05"))
	}
	if len(rows) == 0 {
		r.p.Fprintln(r.w, "No hay actualizaciones recientes")
	}
}

// PopularProducts imprime el top de productos por pedidos.
func (r *Renderer) PopularProducts(rows []repository.PopularProductRow) {
	for _, row := range rows {
		r.p.Fprintf(r.w, "Producto: %s\n", row.ProductName)
		r.p.Fprintf(r.w, "Pedidos:  %d\n\n", row.OrderCount)
	}
	if len(rows) == 0 {
		r.p.Fprintln(r.w, "No hay productos populares")
	}
}

// PopularCustomers imprime el top de clientes por pedidos.
func (r *Renderer) PopularCustomers(rows []repository.PopularCustomerRow) {
	for _, row := range rows {
		r.p.Fprintf(r.w, "Cliente: %s (#%d)\n", row.CustomerName, row.CustomerID)
		r.p.Fprintf(r.w, "Pedidos: %d\n\n", row.OrderCount)
	}
	if len(rows) == 0 {
		r.p.Fprintln(r.w, "No hay clientes populares")
	}
}

// Users imprime filas de usuario (vista de admin; password muestra el hash almacenado).
func (r *Renderer) Users(list []entity.User) {
	for _, u := range list {
		r.p.Fprintf(r.w, "userid:    %d\n", u.ID)
		r.p.Fprintf(r.w, "name:      %s\n", u.Name)
		r.p.Fprintf(r.w, "password:  %s\n", u.PasswordHash)
		r.p.Fprintf(r.w, "latitude:  %.2f\n", u.Latitude)
		r.p.Fprintf(r.w, "longitude: %.2f\n", u.Longitude)
		r.p.Fprintf(r.w, "type:      %s\n\n", u.Role)
	}
	if len(list) == 0 {
		r.p.Fprintln(r.w, "No se encontraron usuarios")
	}
}
