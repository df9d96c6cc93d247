package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesEvent una transacción de venta (una fila del dataset de ventas).
// HasDate es false cuando la fecha original no pudo parsearse; esas filas
// se consideran siempre fuera de cualquier rango de fechas.
type SalesEvent struct {
	Date        time.Time
	HasDate     bool
	Store       string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// Revenue ingreso de la transacción (quantity * unit_price).
func (e SalesEvent) Revenue() decimal.Decimal {
	return decimal.NewFromInt(e.Quantity).Mul(e.UnitPrice)
}
