package entity

import "github.com/shopspring/decimal"

// Product representa una fila de product. Clave compuesta (storeid, productname).
// Units se decrementa al ordenar y se incrementa con solicitudes de suministro.
type Product struct {
	StoreID int
	Name    string
	Units   int             // numberofunits, >= 0
	Price   decimal.Decimal // priceperunit, NUMERIC en el esquema
}
